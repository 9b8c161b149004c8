// Package config provides centralized configuration management.
// Eliminates scattered os.Getenv calls across the codebase.
package config

import (
	"os"
	"path/filepath"
	"sync"
)

// DumlEnv holds all duml environment variables.
type DumlEnv struct {
	// Diagram is the current diagram name (DUML_DIAGRAM)
	Diagram string

	// SessionID is the current session identifier (DUML_SESSION_ID)
	SessionID string

	// Home overrides the duml home directory (DUML_HOME)
	Home string

	// NoColor disables colored output (DUML_NO_COLOR)
	NoColor bool

	// AutoSave persists the diagram after each mutating command (DUML_AUTOSAVE)
	AutoSave bool

	// Neo4jURI is the graph database URI for diagram mirroring (NEO4J_URI)
	Neo4jURI string

	// Neo4jUser is the graph database user (NEO4J_USER)
	Neo4jUser string

	// Neo4jPassword is the graph database password (NEO4J_PASSWORD)
	Neo4jPassword string
}

var (
	env     *DumlEnv
	envOnce sync.Once
)

// Env returns the singleton environment configuration.
// Thread-safe, loads once on first call.
func Env() *DumlEnv {
	envOnce.Do(func() {
		env = &DumlEnv{
			Diagram:       os.Getenv("DUML_DIAGRAM"),
			SessionID:     os.Getenv("DUML_SESSION_ID"),
			Home:          os.Getenv("DUML_HOME"),
			NoColor:       os.Getenv("DUML_NO_COLOR") == "1",
			AutoSave:      os.Getenv("DUML_AUTOSAVE") != "0",
			Neo4jURI:      getEnvDefault("NEO4J_URI", "bolt://localhost:7687"),
			Neo4jUser:     os.Getenv("NEO4J_USER"),
			Neo4jPassword: os.Getenv("NEO4J_PASSWORD"),
		}
	})
	return env
}

// ResetEnv resets the cached environment (for testing).
func ResetEnv() {
	envOnce = sync.Once{}
	env = nil
	pathsOnce = sync.Once{}
	paths = nil
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Paths holds standard duml directory paths.
type Paths struct {
	// Home is the duml home directory (~/.duml)
	Home string

	// Data is the data directory (~/.duml/data)
	Data string

	// Diagrams is the diagram files directory (~/.duml/diagrams)
	Diagrams string

	// Registry is the registry database path (~/.duml/data/registry.db)
	Registry string
}

var (
	paths     *Paths
	pathsOnce sync.Once
)

// GetPaths returns the singleton paths configuration.
func GetPaths() *Paths {
	pathsOnce.Do(func() {
		dumlHome := Env().Home
		if dumlHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				home = "."
			}
			dumlHome = filepath.Join(home, ".duml")
		}

		paths = &Paths{
			Home:     dumlHome,
			Data:     filepath.Join(dumlHome, "data"),
			Diagrams: filepath.Join(dumlHome, "diagrams"),
			Registry: filepath.Join(dumlHome, "data", "registry.db"),
		}
	})
	return paths
}

// Path returns a path under the duml home directory.
// Equivalent to filepath.Join(~/.duml, parts...)
func Path(parts ...string) string {
	p := GetPaths()
	allParts := append([]string{p.Home}, parts...)
	return filepath.Join(allParts...)
}

// DiagramPath returns the file path for a named diagram.
func DiagramPath(name string) string {
	return filepath.Join(GetPaths().Diagrams, name+".json")
}

// EnsureDir creates a directory if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
