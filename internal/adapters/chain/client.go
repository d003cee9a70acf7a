package chain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/Jeevan-J/smart-contract-deployer/internal/domain"
	"github.com/Jeevan-J/smart-contract-deployer/internal/domain/models"
	"github.com/Jeevan-J/smart-contract-deployer/internal/usecase"
)

// Dialer establishes JSON-RPC connections to configured networks.
type Dialer struct {
	log *slog.Logger
}

// NewDialer creates a network dialer.
func NewDialer(log *slog.Logger) *Dialer {
	return &Dialer{log: log.With("component", "Dialer")}
}

// Dial connects to the network's RPC endpoint and confirms the chain ID.
func (d *Dialer) Dial(ctx context.Context, network *models.Network) (usecase.Connection, error) {
	client, err := ethclient.DialContext(ctx, network.RPCURL)
	if err != nil {
		return nil, &domain.ConnectionError{Network: network.Name, Err: err}
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, &domain.ConnectionError{Network: network.Name, Err: fmt.Errorf("endpoint unreachable: %w", err)}
	}

	if network.ChainID != 0 && chainID.Uint64() != network.ChainID {
		client.Close()
		return nil, &domain.ConnectionError{
			Network: network.Name,
			Err:     fmt.Errorf("chain ID mismatch: endpoint reports %s, networks file declares %d", chainID, network.ChainID),
		}
	}

	resolved := *network
	resolved.ChainID = chainID.Uint64()

	d.log.Debug("dialed network", "network", network.Name, "chain_id", chainID)

	return &Connection{
		client:  client,
		network: &resolved,
		chainID: chainID,
		log:     d.log.With("network", network.Name),
	}, nil
}

// Connection is one live JSON-RPC connection.
type Connection struct {
	client  *ethclient.Client
	network *models.Network
	chainID *big.Int
	log     *slog.Logger
}

func (c *Connection) Network() *models.Network {
	return c.network
}

func (c *Connection) Close() {
	c.client.Close()
}

// Deploy submits a contract creation transaction and waits until the
// contract code lands on chain.
func (c *Connection) Deploy(ctx context.Context, from *models.Account, artifact *models.ContractArtifact, publishSource bool) (*usecase.DeployReceipt, error) {
	bytecode := common.FromHex(artifact.Bytecode)
	if len(bytecode) == 0 {
		return nil, fmt.Errorf("contract %s compiled to empty bytecode", artifact.Name)
	}

	auth, err := bind.NewKeyedTransactorWithChainID(from.PrivateKey, c.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to build transactor: %w", err)
	}
	auth.Context = ctx

	address, tx, _, err := bind.DeployContract(auth, artifact.ABI, bytecode, c.client)
	if err != nil {
		return nil, err
	}

	c.log.Debug("deployment submitted", "contract", artifact.Name, "tx", tx.Hash().Hex())

	if _, err := bind.WaitDeployed(ctx, c.client, tx); err != nil {
		return nil, fmt.Errorf("deployment not mined: %w", err)
	}

	if publishSource {
		// Source verification belongs to explorer tooling; nothing is
		// configured to receive it here.
		c.log.Warn("publish_source requested but no explorer API is configured", "contract", artifact.Name)
	}

	return &usecase.DeployReceipt{
		ContractAddress: address,
		TxHash:          tx.Hash(),
		SourcePublished: false,
	}, nil
}

// Transact invokes a state-changing method on a deployed contract and
// waits for the transaction to be mined.
func (c *Connection) Transact(ctx context.Context, from *models.Account, artifact *models.ContractArtifact, address common.Address, method string, args []any) (*usecase.TransactReceipt, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(from.PrivateKey, c.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to build transactor: %w", err)
	}
	auth.Context = ctx

	bound := bind.NewBoundContract(address, artifact.ABI, c.client, c.client, c.client)
	tx, err := bound.Transact(auth, method, args...)
	if err != nil {
		return nil, err
	}

	c.log.Debug("transaction submitted", "method", method, "tx", tx.Hash().Hex())

	receipt, err := bind.WaitMined(ctx, c.client, tx)
	if err != nil {
		return nil, fmt.Errorf("transaction not mined: %w", err)
	}

	return &usecase.TransactReceipt{
		TxHash: tx.Hash(),
		Status: receipt.Status,
	}, nil
}

var (
	_ usecase.NetworkDialer = (*Dialer)(nil)
	_ usecase.Connection    = (*Connection)(nil)
)
