package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecuteExists(t *testing.T) {
	// Execute() calls os.Exit(1) on error, so only the happy path is
	// exercised through the subcommand tests.
	assert.NotNil(t, Execute)
}

func TestVersionVariables(t *testing.T) {
	assert.NotEmpty(t, Version, "Version should not be empty")
	assert.NotEmpty(t, Commit, "Commit should not be empty")
}

func TestPersistentFlags(t *testing.T) {
	for _, name := range []string{"config", "log-level", "log-format", "verbose"} {
		flag := rootCmd.PersistentFlags().Lookup(name)
		assert.NotNil(t, flag, "persistent flag %q should be registered", name)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	originalCfgFile := cfgFile
	defer func() { cfgFile = originalCfgFile }()
	cfgFile = ""

	cfg, err := loadConfig("", 0, false)
	assert.NoError(t, err)
	assert.Equal(t, "lattice", cfg.Search.Universe)
	assert.Equal(t, 3, cfg.Search.Size)
	assert.True(t, cfg.Search.Pruning)
}

func TestLoadConfig_Overrides(t *testing.T) {
	originalCfgFile := cfgFile
	defer func() { cfgFile = originalCfgFile }()
	cfgFile = ""

	cfg, err := loadConfig("residue", 5, true)
	assert.NoError(t, err)
	assert.Equal(t, "residue", cfg.Search.Universe)
	assert.Equal(t, 5, cfg.Search.Size)
	assert.False(t, cfg.Search.Pruning)
}

func TestLoadConfig_RejectsUnknownUniverse(t *testing.T) {
	originalCfgFile := cfgFile
	defer func() { cfgFile = originalCfgFile }()
	cfgFile = ""

	_, err := loadConfig("plane", 3, false)
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	originalCfgFile := cfgFile
	defer func() { cfgFile = originalCfgFile }()
	cfgFile = "/nonexistent/mincover.yaml"

	_, err := loadConfig("", 0, false)
	assert.Error(t, err)
}
