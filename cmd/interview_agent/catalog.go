package main

import (
	"fmt"

	"github.com/jonathan/interview-prep/internal/catalog"
	"github.com/jonathan/interview-prep/internal/config"
	"github.com/jonathan/interview-prep/internal/types"
)

// resolveConfig loads the optional config file and merges flag values over it.
// Flag values win; config file values fill in whatever the flags left empty.
func resolveConfig(configPath string, flags config.Config) (config.Config, error) {
	if configPath == "" {
		return flags, nil
	}

	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := fileCfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return flags.MergeWithDefaults(*fileCfg), nil
}

// loadCatalog builds the in-memory catalog and vocabulary from the resolved
// configuration. The vocabulary path is optional; the built-in vocabulary is
// used when it is empty.
func loadCatalog(cfg config.Config) (*catalog.Catalog, *catalog.Vocabulary, error) {
	if cfg.Roles == "" {
		return nil, nil, fmt.Errorf("no role catalog configured (use --roles or a config file)")
	}
	if cfg.Questions == "" {
		return nil, nil, fmt.Errorf("no question catalog configured (use --questions or a config file)")
	}

	roles, err := catalog.LoadRoles(cfg.Roles)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load role catalog: %w", err)
	}

	questions, err := catalog.LoadQuestions(cfg.Questions)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load question catalog: %w", err)
	}

	vocab := catalog.DefaultVocabulary()
	if cfg.Vocabulary != "" {
		vocab, err = catalog.LoadVocabulary(cfg.Vocabulary)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load vocabulary: %w", err)
		}
	}

	return catalog.New(roles, questions), vocab, nil
}

// loadRolesOnly loads just the role catalog, for commands that never touch
// questions or the vocabulary.
func loadRolesOnly(cfg config.Config) ([]types.Role, error) {
	roles, err := catalog.LoadRoles(cfg.Roles)
	if err != nil {
		return nil, fmt.Errorf("failed to load role catalog: %w", err)
	}
	return roles, nil
}
