package config

// defaultModels maps each provider to its default answering model.
var defaultModels = map[ProviderType]string{
	ProviderGoogle: "gemini-2.5-flash-lite",
	ProviderOpenAI: "gpt-4o-mini",
	ProviderOllama: "llama3",
}

// DefaultConfig returns a Config with sensible defaults. The low
// temperature keeps answers grounded in the retrieved documents.
func DefaultConfig() *Config {
	return &Config{
		Provider:    ProviderGoogle,
		Model:       defaultModels[ProviderGoogle],
		Temperature: 0.1,
		StoreConfig: "store_config.json",
		DataDir:     ".docuchat",
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            5000,
			AllowAllOrigins: true,
		},
	}
}

// DefaultModel returns the default model for the given provider, falling
// back to the Google default for unknown providers.
func DefaultModel(provider ProviderType) string {
	if m, ok := defaultModels[provider]; ok {
		return m
	}
	return defaultModels[ProviderGoogle]
}
