package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Jeevan-J/smart-contract-deployer/internal/domain/config"
)

const defaultTimeout = 5 * time.Minute

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		projectRoot = "."
	}
	if !filepath.IsAbs(projectRoot) {
		abs, err := filepath.Abs(projectRoot)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve project root: %w", err)
		}
		projectRoot = abs
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:  projectRoot,
		TemplatesDir: resolveDir(projectRoot, v.GetString("templates_dir")),
		ContractsDir: resolveDir(projectRoot, v.GetString("contracts_dir")),
		KeystoreDir:  resolveDir(projectRoot, v.GetString("keystore_dir")),
		NetworksFile: resolveDir(projectRoot, v.GetString("networks_file")),
		SolcPath:     v.GetString("solc_path"),
		ListenAddr:   v.GetString("listen_addr"),
		EnableCORS:   v.GetBool("enable_cors"),
		Timeout:      v.GetDuration("timeout"),
		Debug:        v.GetBool("debug"),
	}

	// A zero or negative timeout would make every chain submission expire
	// immediately; treat it as "use the default".
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	if origins := v.GetString("cors_origins"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
			}
		}
	}

	return cfg, nil
}

func resolveDir(projectRoot, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(projectRoot, dir)
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	// Load .env from the project root before viper reads the environment
	_ = godotenv.Load(filepath.Join(projectRoot, ".env"))

	v := viper.New()

	// Set up config file
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".scd"))

	// Set up environment variables
	v.SetEnvPrefix("SCD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("project_root", projectRoot)
	v.SetDefault("templates_dir", "templates")
	v.SetDefault("contracts_dir", "contracts")
	v.SetDefault("keystore_dir", "keystore")
	v.SetDefault("networks_file", "networks.toml")
	v.SetDefault("solc_path", "solc")
	v.SetDefault("listen_addr", ":8000")
	v.SetDefault("enable_cors", false)
	v.SetDefault("timeout", "5m")
	v.SetDefault("debug", false)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	// Flag names use dashes, viper keys use underscores
	replacer := strings.NewReplacer("-", "_")
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(replacer.Replace(f.Name), f); err != nil {
			panic(err)
		}
	})

	return v
}

// EnsureProjectLayout creates the directories the server works against.
func EnsureProjectLayout(cfg *config.RuntimeConfig) error {
	for _, dir := range []string{cfg.TemplatesDir, cfg.ContractsDir, cfg.KeystoreDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}
