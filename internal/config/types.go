package config

// ProviderType identifies an answering-engine provider.
type ProviderType string

const (
	ProviderGoogle ProviderType = "google"
	ProviderOpenAI ProviderType = "openai"
	ProviderOllama ProviderType = "ollama"
)

// Config is the top-level docuchat configuration, corresponding to
// .docuchat.yml.
type Config struct {
	Provider    ProviderType `yaml:"provider" koanf:"provider"`
	Model       string       `yaml:"model" koanf:"model"`
	Temperature float64      `yaml:"temperature" koanf:"temperature"`

	// StoreConfig is the path to the catalog snapshot written by the
	// upload pipeline.
	StoreConfig string `yaml:"store_config" koanf:"store_config"`

	// DataDir holds the chat history database.
	DataDir string `yaml:"data_dir" koanf:"data_dir"`

	Server ServerConfig `yaml:"server" koanf:"server"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string `yaml:"host" koanf:"host"`
	Port            int    `yaml:"port" koanf:"port"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
