package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Jeevan-J/smart-contract-deployer/internal/domain"
	"github.com/Jeevan-J/smart-contract-deployer/internal/domain/config"
	"github.com/Jeevan-J/smart-contract-deployer/internal/domain/models"
)

// InteractContract invokes a method on an already-deployed contract
// instance, signed by the session's active account.
type InteractContract struct {
	projects ProjectLoader
	session  *Session
	cfg      *config.RuntimeConfig
	log      *slog.Logger
}

// NewInteractContract creates the interaction workflow use case.
func NewInteractContract(
	projects ProjectLoader,
	session *Session,
	cfg *config.RuntimeConfig,
	log *slog.Logger,
) *InteractContract {
	return &InteractContract{
		projects: projects,
		session:  session,
		cfg:      cfg,
		log:      log.With("component", "InteractContract"),
	}
}

// InteractParams are the inputs for one method invocation.
type InteractParams struct {
	ContractName    string
	ContractAddress string
	Method          string
	// Args are the raw JSON-decoded method arguments, in call order.
	Args []any
}

// Run resolves the contract's interface, coerces the arguments against the
// method's declared parameter types, and submits the transaction.
func (uc *InteractContract) Run(ctx context.Context, p InteractParams) (*models.InteractionResult, error) {
	if err := domain.ValidateName(p.ContractName); err != nil {
		return nil, err
	}
	if !common.IsHexAddress(p.ContractAddress) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, p.ContractAddress)
	}

	project, err := uc.projects.LoadContract(ctx, p.ContractName)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := project.Close(); err != nil {
			uc.log.Warn("failed to release project", "error", err)
		}
	}()

	artifact, ok := project.Contract(p.ContractName)
	if !ok {
		return nil, &domain.ContractNameMismatchError{
			Requested: p.ContractName,
			Declared:  project.Names(),
		}
	}

	method, ok := artifact.ABI.Methods[p.Method]
	if !ok {
		return nil, &domain.MethodNotFoundError{
			Contract: p.ContractName,
			Method:   p.Method,
			Known:    artifact.Methods(),
		}
	}

	// Coercion turns type mismatches into caught validation errors before
	// anything is signed or submitted.
	args, err := CoerceArgs(method, p.Args)
	if err != nil {
		return nil, err
	}

	account, conn, err := uc.session.Use()
	if err != nil {
		return nil, err
	}

	subCtx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	receipt, err := conn.Transact(subCtx, account, artifact, common.HexToAddress(p.ContractAddress), p.Method, args)
	if err != nil {
		return nil, &domain.SubmissionError{Op: "transaction", Err: err}
	}

	uc.log.Info("method invoked",
		"contract", p.ContractName,
		"address", p.ContractAddress,
		"method", p.Method,
		"tx", receipt.TxHash.Hex(),
	)

	return &models.InteractionResult{
		TxHash:   receipt.TxHash.Hex(),
		TxStatus: receipt.Status,
	}, nil
}
