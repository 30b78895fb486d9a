package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var allVars = []string{
	"GEMINI_API_KEY", "HOST", "PORT", "PROVIDER", "MODEL",
	"OPENAI_API_KEY", "OPENAI_BASE_URL", "ALLOWED_ORIGINS", "LOG_LEVEL",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	req := require.New(t)

	cfg, err := LoadFiles()

	req.NoError(err)
	req.Equal(3000, cfg.Port)
	req.Equal(":3000", cfg.Addr())
	req.Equal(ProviderGemini, cfg.Provider)
	req.Equal("gemini-2.0-flash", cfg.Model)
	req.Equal(DefaultOpenAIBaseURL, cfg.OpenAIBaseURL)
	req.Equal([]string{"*"}, cfg.Origins())
	req.Empty(cfg.APIKey())
	req.Equal("GEMINI_API_KEY", cfg.APIKeyVar())
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	req := require.New(t)
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("PORT", "8081")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := LoadFiles()

	req.NoError(err)
	req.Equal("127.0.0.1:8081", cfg.Addr())
	req.Equal("g-key", cfg.APIKey())
	req.Equal([]string{"http://a.test", "http://b.test"}, cfg.Origins())
}

func TestLoad_OpenAIProvider(t *testing.T) {
	clearEnv(t)
	req := require.New(t)
	t.Setenv("PROVIDER", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "o-key")
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg, err := LoadFiles()

	req.NoError(err)
	req.Equal(ProviderOpenAI, cfg.Provider)
	req.Equal("o-key", cfg.APIKey())
	req.Equal("OPENAI_API_KEY", cfg.APIKeyVar())
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("unknown provider", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PROVIDER", "bedrock")
		_, err := LoadFiles()
		require.Error(t, err)
	})

	t.Run("port out of range", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "70000")
		_, err := LoadFiles()
		require.Error(t, err)
	})
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	req := require.New(t)
	path := filepath.Join(t.TempDir(), ".env")
	req.NoError(os.WriteFile(path, []byte("GEMINI_API_KEY=from-file\nPORT=4000\n"), 0o600))
	t.Setenv("PORT", "5000")

	cfg, err := LoadFiles(path, filepath.Join(t.TempDir(), "missing.env"))

	req.NoError(err)
	req.Equal("from-file", cfg.APIKey())
	req.Equal(5000, cfg.Port, "environment wins over the file")
}
