package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"envseek/internal/resolver"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, path string, content Config) {
	t.Helper()
	data, err := yaml.Marshal(&content)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, data, 0644))
}

// mockConfigPaths points both config layers into tempDir and restores the
// originals on cleanup.
func mockConfigPaths(t *testing.T, tempDir string) (userPath, projectPath string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
	})

	userPath = filepath.Join(tempDir, "user", configFileName)
	projectPath = filepath.Join(tempDir, "project", projectConfigFile)
	getUserConfigPath = func() (string, error) { return userPath, nil }
	getProjectConfigPath = func() (string, error) { return projectPath, nil }
	return userPath, projectPath
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	mockConfigPaths(t, t.TempDir())

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, GetDefaultConfig(), loaded)
	assert.Equal(t,
		[]resolver.SearchType{resolver.File, resolver.System, resolver.Input},
		loaded.SearchOrder())
}

func TestLoadConfig_UserOverride(t *testing.T) {
	userPath, _ := mockConfigPaths(t, t.TempDir())

	createTempConfigFile(t, userPath, Config{
		Order:       []string{"system", "file"},
		StrictParse: true,
	})

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"system", "file"}, loaded.Order)
	assert.True(t, loaded.StrictParse)
	// Untouched fields keep their defaults
	assert.Equal(t, "info", loaded.LogLevel)
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	userPath, projectPath := mockConfigPaths(t, t.TempDir())

	createTempConfigFile(t, userPath, Config{EnvFile: "/home/user/.env", LogLevel: "warn"})
	createTempConfigFile(t, projectPath, Config{EnvFile: "/project/.env"})

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/project/.env", loaded.EnvFile)
	// User-layer value survives where the project layer is silent
	assert.Equal(t, "warn", loaded.LogLevel)
}

func TestLoadConfig_EnvironmentOverridesFiles(t *testing.T) {
	_, projectPath := mockConfigPaths(t, t.TempDir())
	createTempConfigFile(t, projectPath, Config{EnvFile: "/project/.env"})

	t.Setenv("ENVSEEK_FILE", "/env/.env")
	t.Setenv("ENVSEEK_ORDER", "system,file")

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/env/.env", loaded.EnvFile)
	assert.Equal(t, []string{"system", "file"}, loaded.Order)
}

func TestLoadConfig_InvalidOrderEntry(t *testing.T) {
	_, projectPath := mockConfigPaths(t, t.TempDir())
	createTempConfigFile(t, projectPath, Config{Order: []string{"file", "clipboard"}})

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clipboard")
}

func TestLoadConfig_OrderMayNotContainAll(t *testing.T) {
	_, projectPath := mockConfigPaths(t, t.TempDir())
	createTempConfigFile(t, projectPath, Config{Order: []string{"all"}})

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	_, projectPath := mockConfigPaths(t, t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Dir(projectPath), 0755))
	require.NoError(t, os.WriteFile(projectPath, []byte("order: [unclosed"), 0644))

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestSearchOrderSkipsUnparseableEntries(t *testing.T) {
	cfg := Config{Order: []string{"file", "bogus", "input"}}
	assert.Equal(t,
		[]resolver.SearchType{resolver.File, resolver.Input},
		cfg.SearchOrder())
}
