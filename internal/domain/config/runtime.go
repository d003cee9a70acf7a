package config

import "time"

// RuntimeConfig is the resolved configuration for one server process.
type RuntimeConfig struct {
	// ProjectRoot is the directory holding templates/, contracts/ and the
	// keystore.
	ProjectRoot string

	// TemplatesDir holds the parameterized contract templates.
	TemplatesDir string

	// ContractsDir holds rendered contract sources, one file per contract.
	ContractsDir string

	// KeystoreDir holds encrypted account key files.
	KeystoreDir string

	// NetworksFile is the TOML file defining known networks.
	NetworksFile string

	// SolcPath is the solidity compiler binary to exec.
	SolcPath string

	// ListenAddr is the HTTP bind address.
	ListenAddr string

	// EnableCORS switches the CORS middleware on.
	EnableCORS bool

	// CORSOrigins is the allow-list applied when CORS is enabled.
	CORSOrigins []string

	// Timeout bounds each chain submission so a request never hangs forever.
	Timeout time.Duration

	// Debug enables debug logging.
	Debug bool
}
