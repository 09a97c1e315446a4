package config

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration session and returns the
// resulting Config, saved to .docuchat.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to docuchat! Let's configure your assistant.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Provider selection.
	providerPrompt := promptui.Select{
		Label: "Select answering provider",
		Items: []string{"google", "openai", "ollama"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	cfg.Provider = ProviderType(providerStr)
	cfg.Model = DefaultModel(cfg.Provider)

	// 2. Model override.
	modelPrompt := promptui.Prompt{
		Label:   "Model",
		Default: cfg.Model,
	}
	model, err := modelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("model prompt: %w", err)
	}
	cfg.Model = model

	// 3. Catalog snapshot path.
	storePrompt := promptui.Prompt{
		Label:   "Catalog snapshot file (written by the upload pipeline)",
		Default: cfg.StoreConfig,
	}
	storePath, err := storePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("store config prompt: %w", err)
	}
	cfg.StoreConfig = storePath

	// 4. Server port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: fmt.Sprintf("%d", cfg.Server.Port),
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port prompt: %w", err)
	}
	if _, err := fmt.Sscanf(portStr, "%d", &cfg.Server.Port); err != nil {
		return nil, fmt.Errorf("invalid port %q", portStr)
	}

	// Check for API key.
	envVar := APIKeyEnvVar(cfg.Provider)
	if envVar != "" && os.Getenv(envVar) == "" {
		fmt.Printf("\nNote: Set %s in your environment before starting the server.\n", envVar)
	}

	// Warn when the catalog has not been built yet.
	if _, err := os.Stat(cfg.StoreConfig); os.IsNotExist(err) {
		fmt.Printf("Note: %s does not exist yet. Run the upload pipeline to index your documents.\n", cfg.StoreConfig)
	}

	configPath := ".docuchat.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}
