package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/yuki-dev/imagewsbackend/models"
)

const (
	defaultPort                = "22113"
	defaultWorkspaceConfigPath = "./config.json"
)

type Config struct {
	// port the HTTP server listens on
	Port string

	// path of the workspace registry file (JSON, workspace_list)
	WorkspaceConfigPath string
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func LoadConfig() (Config, error) {
	cfg := Config{
		Port:                getEnvOrDefault("PORT", defaultPort),
		WorkspaceConfigPath: getEnvOrDefault("WORKSPACE_CONFIG_PATH", defaultWorkspaceConfigPath),
	}
	return cfg, nil
}

// LoadWorkspaceRegistry reads the static workspace list. Any failure here is
// fatal to startup: the server must not begin serving without knowing its
// workspaces.
func LoadWorkspaceRegistry(path string) (*models.WorkspaceRegistry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workspace config %s: %w", path, err)
	}
	defer f.Close()

	var registry models.WorkspaceRegistry
	if err := json.NewDecoder(f).Decode(&registry); err != nil {
		return nil, fmt.Errorf("failed to parse workspace config %s: %w", path, err)
	}
	return &registry, nil
}
