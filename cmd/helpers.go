package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/mhassouna/docuchat/internal/catalog"
	"github.com/mhassouna/docuchat/internal/chat"
	"github.com/mhassouna/docuchat/internal/config"
	"github.com/mhassouna/docuchat/internal/db"
	"github.com/mhassouna/docuchat/internal/history"
	"github.com/mhassouna/docuchat/internal/llm"
)

// buildChatService wires the catalog reader, answering provider, and
// optional history store into a chat service from the loaded config.
func buildChatService(cfg *config.Config, withHistory bool) (*chat.Service, *catalog.Reader, *db.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("creating provider: %w", err)
	}

	reader := catalog.NewReader(cfg.StoreConfig)

	var hist *history.Store
	var database *db.DB
	if withHistory {
		database, err = db.Open(filepath.Join(cfg.DataDir, "docuchat.db"))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("opening database: %w", err)
		}
		hist = history.NewStore(database)
	}

	svc := chat.NewService(reader, provider, cfg.Model, cfg.Temperature, hist)
	return svc, reader, database, nil
}
