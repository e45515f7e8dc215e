package config

import (
	"fmt"

	"todo/internal/repository/sqlite"
)

// CreateRepository creates the in-memory task repository. Nothing outlives the process.
func CreateRepository(config *Config) (sqlite.Repository, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	repo, err := sqlite.NewInMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize task store: %w", err)
	}

	return repo, nil
}
