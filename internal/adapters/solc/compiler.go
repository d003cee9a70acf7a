package solc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/Jeevan-J/smart-contract-deployer/internal/domain"
	"github.com/Jeevan-J/smart-contract-deployer/internal/domain/config"
	"github.com/Jeevan-J/smart-contract-deployer/internal/domain/models"
	"github.com/Jeevan-J/smart-contract-deployer/internal/usecase"
)

// CompilerAdapter compiles contract source by exec'ing the solc binary
// with --combined-json output. A fresh compilation is run per call; the
// resulting Project owns its scratch directory until Close.
type CompilerAdapter struct {
	solcPath     string
	contractsDir string
	log          *slog.Logger
}

// NewCompilerAdapter creates a compiler adapter using the configured solc
// binary and contracts directory.
func NewCompilerAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *CompilerAdapter {
	return &CompilerAdapter{
		solcPath:     cfg.SolcPath,
		contractsDir: cfg.ContractsDir,
		log:          log.With("component", "CompilerAdapter"),
	}
}

// CompileSource compiles raw source text in a scratch directory.
func (c *CompilerAdapter) CompileSource(ctx context.Context, source string) (usecase.Project, error) {
	dir, err := os.MkdirTemp("", "scd-build-")
	if err != nil {
		return nil, fmt.Errorf("failed to create build directory: %w", err)
	}

	file := filepath.Join(dir, "Contract.sol")
	if err := os.WriteFile(file, []byte(source), 0o644); err != nil {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("failed to stage source: %w", err)
	}

	project, err := c.compile(ctx, dir, file)
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, err
	}
	return project, nil
}

// LoadContract compiles a previously written contract from the contracts
// directory.
func (c *CompilerAdapter) LoadContract(ctx context.Context, name string) (usecase.Project, error) {
	path := filepath.Join(c.contractsDir, name+".sol")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &domain.ContractNotFoundError{Contract: name}
		}
		return nil, fmt.Errorf("failed to stat contract source: %w", err)
	}
	return c.compile(ctx, "", path)
}

func (c *CompilerAdapter) compile(ctx context.Context, scratchDir, file string) (*Project, error) {
	start := time.Now()
	c.log.Debug("running solc", "file", file)

	cmd := exec.CommandContext(ctx, c.solcPath, "--combined-json", "abi,bin", file)
	output, err := cmd.Output()
	if err != nil {
		stderr := ""
		if ee, ok := err.(*exec.ExitError); ok {
			stderr = strings.TrimSpace(string(ee.Stderr))
		}
		c.log.Error("solc failed", "error", err, "stderr", stderr)
		if stderr != "" {
			return nil, fmt.Errorf("solc failed: %s", stderr)
		}
		return nil, fmt.Errorf("solc failed: %w", err)
	}

	artifacts, err := parseCombinedJSON(output)
	if err != nil {
		return nil, err
	}

	c.log.Debug("solc completed", "duration", time.Since(start), "contracts", len(artifacts))

	return &Project{scratchDir: scratchDir, artifacts: artifacts}, nil
}

// combinedOutput mirrors solc's --combined-json format. Depending on the
// solc version the abi field is either inline JSON or a JSON-quoted string.
type combinedOutput struct {
	Contracts map[string]struct {
		ABI json.RawMessage `json:"abi"`
		Bin string          `json:"bin"`
	} `json:"contracts"`
	Version string `json:"version"`
}

func parseCombinedJSON(data []byte) (map[string]*models.ContractArtifact, error) {
	var combined combinedOutput
	if err := json.Unmarshal(data, &combined); err != nil {
		return nil, fmt.Errorf("failed to parse solc output: %w", err)
	}

	artifacts := make(map[string]*models.ContractArtifact, len(combined.Contracts))
	for key, contract := range combined.Contracts {
		// Keys look like "path/to/Contract.sol:Name"
		name := key
		if idx := strings.LastIndex(key, ":"); idx >= 0 {
			name = key[idx+1:]
		}

		rawABI := contract.ABI
		var quoted string
		if err := json.Unmarshal(contract.ABI, &quoted); err == nil {
			rawABI = json.RawMessage(quoted)
		}

		parsed, err := abi.JSON(strings.NewReader(string(rawABI)))
		if err != nil {
			return nil, fmt.Errorf("failed to parse ABI of %s: %w", name, err)
		}

		artifacts[name] = &models.ContractArtifact{
			Name:     name,
			ABI:      parsed,
			RawABI:   rawABI,
			Bytecode: contract.Bin,
		}
	}
	return artifacts, nil
}

// Project is one compiled source unit.
type Project struct {
	scratchDir string
	artifacts  map[string]*models.ContractArtifact
}

func (p *Project) Contract(name string) (*models.ContractArtifact, bool) {
	artifact, ok := p.artifacts[name]
	return artifact, ok
}

func (p *Project) Names() []string {
	names := make([]string, 0, len(p.artifacts))
	for name := range p.artifacts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p *Project) Close() error {
	if p.scratchDir == "" {
		return nil
	}
	return os.RemoveAll(p.scratchDir)
}

var _ usecase.ProjectLoader = (*CompilerAdapter)(nil)
