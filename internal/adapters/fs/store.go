package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"github.com/Jeevan-J/smart-contract-deployer/internal/domain"
	"github.com/Jeevan-J/smart-contract-deployer/internal/domain/config"
	"github.com/Jeevan-J/smart-contract-deployer/internal/domain/models"
	"github.com/Jeevan-J/smart-contract-deployer/internal/usecase"
)

const sourceExt = ".sol"

// TemplateStoreAdapter is the file-backed template store: one template per
// .sol file, filename = template name.
type TemplateStoreAdapter struct {
	dir string
}

// NewTemplateStoreAdapter creates a template store over the configured
// templates directory.
func NewTemplateStoreAdapter(cfg *config.RuntimeConfig) *TemplateStoreAdapter {
	return &TemplateStoreAdapter{dir: cfg.TemplatesDir}
}

func (s *TemplateStoreAdapter) List(ctx context.Context) ([]string, error) {
	return listSources(s.dir)
}

func (s *TemplateStoreAdapter) Read(ctx context.Context, name string) (*models.Template, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &domain.TemplateNotFoundError{Template: name}
		}
		return nil, fmt.Errorf("failed to read template %q: %w", name, err)
	}
	return &models.Template{Name: name, Source: string(data)}, nil
}

func (s *TemplateStoreAdapter) Exists(ctx context.Context, name string) (bool, error) {
	_, err := os.Stat(s.path(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (s *TemplateStoreAdapter) Write(ctx context.Context, name, source string) error {
	return os.WriteFile(s.path(name), []byte(source), 0o644)
}

func (s *TemplateStoreAdapter) Remove(ctx context.Context, name string) error {
	return os.Remove(s.path(name))
}

func (s *TemplateStoreAdapter) path(name string) string {
	return filepath.Join(s.dir, withSourceExt(name))
}

// ContractWriterAdapter persists rendered contract sources, one file per
// contract, filename = contract name.
type ContractWriterAdapter struct {
	dir string
}

// NewContractWriterAdapter creates a writer over the configured contracts
// directory.
func NewContractWriterAdapter(cfg *config.RuntimeConfig) *ContractWriterAdapter {
	return &ContractWriterAdapter{dir: cfg.ContractsDir}
}

func (w *ContractWriterAdapter) WriteContract(ctx context.Context, name, source string) error {
	return os.WriteFile(filepath.Join(w.dir, withSourceExt(name)), []byte(source), 0o644)
}

func (w *ContractWriterAdapter) ListContracts(ctx context.Context) ([]string, error) {
	return listSources(w.dir)
}

func listSources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	names := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), sourceExt) {
			return "", false
		}
		return strings.TrimSuffix(entry.Name(), sourceExt), true
	})
	return names, nil
}

func withSourceExt(name string) string {
	if strings.HasSuffix(name, sourceExt) {
		return name
	}
	return name + sourceExt
}

// Ensure the adapters implement their ports
var (
	_ usecase.TemplateStore  = (*TemplateStoreAdapter)(nil)
	_ usecase.ContractWriter = (*ContractWriterAdapter)(nil)
)
