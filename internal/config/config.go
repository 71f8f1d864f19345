package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appDir = "newschat"

// Config collects the process-wide settings read from the environment.
type Config struct {
	// Port the API server listens on.
	Port string
	// Provider selects the model backend: gemini (default), openai or
	// claude. Model overrides the provider's default model name.
	Provider string
	Model    string
	// FrontendURL is an extra allowed CORS origin.
	FrontendURL string
	// CredentialFile and ArchiveFile are the two persisted JSON files.
	CredentialFile string
	ArchiveFile    string
}

// Load reads configuration from the environment. The data directory
// defaults to the XDG data home and can be overridden with
// NEWSCHAT_DATA_DIR.
func Load() Config {
	dataDir := os.Getenv("NEWSCHAT_DATA_DIR")
	if dataDir == "" {
		dataDir = filepath.Join(xdg.DataHome, appDir)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return Config{
		Port:           port,
		Provider:       os.Getenv("LLM_PROVIDER"),
		Model:          os.Getenv("LLM_MODEL"),
		FrontendURL:    os.Getenv("FRONTEND_URL"),
		CredentialFile: filepath.Join(dataDir, "api_key.json"),
		ArchiveFile:    filepath.Join(dataDir, "saved_news.json"),
	}
}
