package usecase

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Jeevan-J/smart-contract-deployer/internal/domain"
	"github.com/Jeevan-J/smart-contract-deployer/internal/domain/models"
)

// Session is the process-wide deployment session: at most one active
// signing account and at most one active network connection. All fields
// are guarded by a single mutex so the read-then-use span of a workflow
// observes a consistent snapshot even under concurrent requests.
type Session struct {
	mu      sync.Mutex
	log     *slog.Logger
	dialer  NetworkDialer
	account *models.Account
	conn    Connection
}

// NewSession creates an empty session.
func NewSession(dialer NetworkDialer, log *slog.Logger) *Session {
	return &Session{
		log:    log.With("component", "Session"),
		dialer: dialer,
	}
}

// SetAccount replaces the active signing account.
func (s *Session) SetAccount(account *models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = account
	s.log.Info("active account set", "name", account.Name, "address", account.Address.Hex())
}

// ActiveAccount returns the active account, if set.
func (s *Session) ActiveAccount() (*models.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.account == nil {
		return nil, false
	}
	return s.account, true
}

// ClearAccount drops the active account.
func (s *Session) ClearAccount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = nil
}

// Connect switches the session to the given network. Any existing
// connection is torn down first; on dial failure the connection field is
// left cleared, never partially set.
func (s *Session) Connect(ctx context.Context, network *models.Network) (*models.Network, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != nil {
		s.log.Info("disconnecting active network", "network", s.conn.Network().Name)
		s.conn.Close()
		s.conn = nil
	}

	conn, err := s.dialer.Dial(ctx, network)
	if err != nil {
		return nil, err
	}

	s.conn = conn
	s.log.Info("connected to network", "network", network.Name, "chain_id", conn.Network().ChainID)
	return conn.Network(), nil
}

// ActiveNetwork returns the connected network, if any.
func (s *Session) ActiveNetwork() (*models.Network, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil, false
	}
	return s.conn.Network(), true
}

// Disconnect tears down the active connection, if any.
func (s *Session) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		s.conn.Close()
		s.conn = nil
	}
}

// Use snapshots the signing context for one workflow invocation under a
// single lock acquisition. Fails with ErrNoActiveAccount before anything
// else so no chain submission is ever attempted without a signer.
func (s *Session) Use() (*models.Account, Connection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.account == nil {
		return nil, nil, domain.ErrNoActiveAccount
	}
	if s.conn == nil {
		return nil, nil, domain.ErrNotConnected
	}
	return s.account, s.conn, nil
}
