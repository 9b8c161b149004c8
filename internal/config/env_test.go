package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnv(t *testing.T) {
	// Reset env for clean test
	ResetEnv()

	// Set test environment
	os.Setenv("DUML_DIAGRAM", "billing")
	os.Setenv("DUML_SESSION_ID", "sess-123")
	os.Setenv("DUML_NO_COLOR", "1")
	os.Setenv("NEO4J_URI", "bolt://testhost:7687")
	defer func() {
		os.Unsetenv("DUML_DIAGRAM")
		os.Unsetenv("DUML_SESSION_ID")
		os.Unsetenv("DUML_NO_COLOR")
		os.Unsetenv("NEO4J_URI")
		ResetEnv()
	}()

	env := Env()

	assert.Equal(t, "billing", env.Diagram)
	assert.Equal(t, "sess-123", env.SessionID)
	assert.True(t, env.NoColor)
	assert.Equal(t, "bolt://testhost:7687", env.Neo4jURI)
}

func TestEnvDefaults(t *testing.T) {
	ResetEnv()

	// Clear environment
	os.Unsetenv("NEO4J_URI")
	os.Unsetenv("DUML_AUTOSAVE")
	defer ResetEnv()

	env := Env()

	// Check defaults
	assert.Equal(t, "bolt://localhost:7687", env.Neo4jURI)
	assert.True(t, env.AutoSave)
}

func TestAutoSaveDisabled(t *testing.T) {
	ResetEnv()
	os.Setenv("DUML_AUTOSAVE", "0")
	defer func() {
		os.Unsetenv("DUML_AUTOSAVE")
		ResetEnv()
	}()

	assert.False(t, Env().AutoSave)
}

func TestEnvSingleton(t *testing.T) {
	ResetEnv()
	defer ResetEnv()

	env1 := Env()
	env2 := Env()

	// Should return same instance
	assert.Same(t, env1, env2)
}

func TestResetEnv(t *testing.T) {
	ResetEnv()
	os.Setenv("DUML_DIAGRAM", "first")
	env1 := Env()
	assert.Equal(t, "first", env1.Diagram)

	os.Setenv("DUML_DIAGRAM", "second")
	ResetEnv()

	env2 := Env()
	assert.Equal(t, "second", env2.Diagram)

	// Cleanup
	os.Unsetenv("DUML_DIAGRAM")
	ResetEnv()
}

func TestGetEnvDefault(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		envVal   string
		fallback string
		want     string
	}{
		{"env set", "TEST_KEY", "value", "default", "value"},
		{"env empty", "TEST_KEY", "", "default", "default"},
		{"env not set", "TEST_KEY_NOTSET", "", "fallback", "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envVal != "" {
				os.Setenv(tt.key, tt.envVal)
				defer os.Unsetenv(tt.key)
			}
			got := getEnvDefault(tt.key, tt.fallback)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetPaths(t *testing.T) {
	ResetEnv()
	defer ResetEnv()

	paths := GetPaths()

	assert.NotEmpty(t, paths.Home)
	assert.Contains(t, paths.Home, ".duml")
	assert.Equal(t, filepath.Join(paths.Home, "data"), paths.Data)
	assert.Equal(t, filepath.Join(paths.Home, "diagrams"), paths.Diagrams)
	assert.Equal(t, filepath.Join(paths.Home, "data", "registry.db"), paths.Registry)
}

func TestHomeOverride(t *testing.T) {
	ResetEnv()
	os.Setenv("DUML_HOME", "/tmp/duml-home")
	defer func() {
		os.Unsetenv("DUML_HOME")
		ResetEnv()
	}()

	paths := GetPaths()
	assert.Equal(t, "/tmp/duml-home", paths.Home)
	assert.Equal(t, filepath.Join("/tmp/duml-home", "diagrams"), paths.Diagrams)
}

func TestPath(t *testing.T) {
	ResetEnv()
	defer ResetEnv()

	result := Path("subdir", "file.txt")

	assert.Contains(t, result, ".duml")
	assert.Contains(t, result, "subdir")
	assert.Contains(t, result, "file.txt")
}

func TestDiagramPath(t *testing.T) {
	ResetEnv()
	defer ResetEnv()

	result := DiagramPath("shop")

	assert.Equal(t, filepath.Join(GetPaths().Diagrams, "shop.json"), result)
}

func TestEnsureDir(t *testing.T) {
	// Create temp directory
	tempDir := filepath.Join(os.TempDir(), "duml-test-ensure")
	defer os.RemoveAll(tempDir)

	// Ensure it doesn't exist
	os.RemoveAll(tempDir)

	// Create it
	err := EnsureDir(tempDir)
	assert.NoError(t, err)

	// Verify it exists
	info, err := os.Stat(tempDir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())

	// Running again should be idempotent
	err = EnsureDir(tempDir)
	assert.NoError(t, err)
}
