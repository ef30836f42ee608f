package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/interview-prep/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestResolveConfigNoFile(t *testing.T) {
	flags := config.Config{Roles: "roles.csv", TopN: 5}

	cfg, err := resolveConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, flags, cfg)
}

func TestResolveConfigFlagsWin(t *testing.T) {
	dir := t.TempDir()
	rolesPath := writeFixture(t, dir, "roles.csv", "Job_Role,Key_Skills\nX,Python\n")
	configPath := writeFixture(t, dir, "config.json",
		`{"roles": "`+rolesPath+`", "top_n": 10}`)

	cfg, err := resolveConfig(configPath, config.Config{TopN: 3})
	require.NoError(t, err)

	assert.Equal(t, rolesPath, cfg.Roles, "config file fills unset flags")
	assert.Equal(t, 3, cfg.TopN, "explicit flag wins over config file")
}

func TestResolveConfigMissingFile(t *testing.T) {
	_, err := resolveConfig(filepath.Join(t.TempDir(), "nope.json"), config.Config{})
	assert.Error(t, err)
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	roles := writeFixture(t, dir, "roles.csv",
		"Job_Role,Key_Skills\nData Scientist,\"Python, SQL\"\n")
	questions := writeFixture(t, dir, "questions.csv",
		"Job_Role,Question_Type,Question\nData Scientist,Technical,Explain overfitting.\n")

	cat, vocab, err := loadCatalog(config.Config{Roles: roles, Questions: questions})
	require.NoError(t, err)

	assert.Len(t, cat.Roles(), 1)
	assert.Greater(t, vocab.Len(), 0, "built-in vocabulary used when no file is configured")
}

func TestLoadCatalogMissingPaths(t *testing.T) {
	_, _, err := loadCatalog(config.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "role catalog")

	_, _, err = loadCatalog(config.Config{Roles: "roles.csv"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question catalog")
}

func TestLoadCatalogCustomVocabulary(t *testing.T) {
	dir := t.TempDir()
	roles := writeFixture(t, dir, "roles.csv",
		"Job_Role,Key_Skills\nData Scientist,Python\n")
	questions := writeFixture(t, dir, "questions.csv",
		"Job_Role,Question_Type,Question\nData Scientist,Technical,Q\n")
	vocabPath := writeFixture(t, dir, "vocab.txt", "Python\nSQL\n")

	_, vocab, err := loadCatalog(config.Config{Roles: roles, Questions: questions, Vocabulary: vocabPath})
	require.NoError(t, err)

	assert.Equal(t, 2, vocab.Len())
}
