package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Jeevan-J/smart-contract-deployer/internal/domain"
	"github.com/Jeevan-J/smart-contract-deployer/internal/domain/config"
	"github.com/Jeevan-J/smart-contract-deployer/internal/domain/models"
)

// DeployTemplate turns a template + params + contract name into a deployed
// on-chain contract instance.
type DeployTemplate struct {
	templates TemplateStore
	contracts ContractWriter
	projects  ProjectLoader
	session   *Session
	cfg       *config.RuntimeConfig
	log       *slog.Logger
}

// NewDeployTemplate creates the deployment workflow use case.
func NewDeployTemplate(
	templates TemplateStore,
	contracts ContractWriter,
	projects ProjectLoader,
	session *Session,
	cfg *config.RuntimeConfig,
	log *slog.Logger,
) *DeployTemplate {
	return &DeployTemplate{
		templates: templates,
		contracts: contracts,
		projects:  projects,
		session:   session,
		cfg:       cfg,
		log:       log.With("component", "DeployTemplate"),
	}
}

// DeployTemplateParams are the inputs for one deployment attempt.
type DeployTemplateParams struct {
	TemplateName  string
	ContractName  string
	Params        map[string]string
	PublishSource bool
	// StrictRender fails the deployment when placeholder tokens survive
	// substitution, instead of handing incomplete source to the compiler.
	StrictRender bool
}

// Run executes the deployment pipeline: validate, render, persist, compile,
// resolve, submit. Each invocation is atomic from the caller's point of
// view: it fully succeeds or reports one terminal error.
func (uc *DeployTemplate) Run(ctx context.Context, p DeployTemplateParams) (*models.DeploymentResult, error) {
	// Names are validated before any file or network I/O.
	if err := domain.ValidateName(p.TemplateName); err != nil {
		return nil, err
	}
	if err := domain.ValidateName(p.ContractName); err != nil {
		return nil, err
	}

	tmpl, err := uc.templates.Read(ctx, p.TemplateName)
	if err != nil {
		return nil, err
	}

	source := domain.RenderTemplate(tmpl.Source, p.Params)
	if p.StrictRender {
		if err := domain.CheckRendered(source); err != nil {
			return nil, err
		}
	}

	// The rendered source is written before compilation and never rolled
	// back: a failed deployment leaves it behind for inspection and retry.
	if err := uc.contracts.WriteContract(ctx, p.ContractName, source); err != nil {
		return nil, fmt.Errorf("failed to write contract source: %w", err)
	}

	project, err := uc.projects.CompileSource(ctx, source)
	if err != nil {
		return nil, &domain.SubmissionError{Op: "compilation", Err: err}
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

	account, conn, err := uc.session.Use()
	if err != nil {
		return nil, err
	}

	subCtx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	receipt, err := conn.Deploy(subCtx, account, artifact, p.PublishSource)
	if err != nil {
		return nil, &domain.SubmissionError{Op: "deployment", Err: err}
	}

	uc.log.Info("contract deployed",
		"contract", p.ContractName,
		"address", receipt.ContractAddress.Hex(),
		"network", conn.Network().Name,
		"deployer", account.Address.Hex(),
	)

	return &models.DeploymentResult{
		ContractName:    p.ContractName,
		ContractAddress: receipt.ContractAddress.Hex(),
		DeployerAddress: account.Address.Hex(),
		Network:         conn.Network().Name,
		TxHash:          receipt.TxHash.Hex(),
		ABI:             artifact.RawABI,
		Bytecode:        artifact.Bytecode,
		SourceCode:      source,
		Params:          p.Params,
		SourcePublished: receipt.SourcePublished,
	}, nil
}
