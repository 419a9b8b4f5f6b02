// File: internal/config/config_test.go

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// isolate points every config location at a temp dir and clears overrides
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("CLIPLATE_CONFIG_DIR", filepath.Join(dir, "config"))
	t.Setenv("CLIPLATE_DATA_DIR", filepath.Join(dir, "data"))
	t.Setenv("CLIPLATE_CONFIG", "")
	for _, key := range []string{
		"CLIPLATE_LANGUAGE",
		"CLIPLATE_POLLING_INTERVAL",
		"CLIPLATE_LOG_LEVEL",
		"CLIPLATE_CLIPBOARD_BACKEND",
		"CLIPLATE_TRANSLATOR",
		"CLIPLATE_SPEECH",
		"CLIPLATE_HISTORY",
	} {
		t.Setenv(key, "")
	}
	return dir
}

func TestLoad_CreatesDefault(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	defaults := DefaultConfig()
	assert.Equal(t, defaults.Language, cfg.Language)
	assert.Equal(t, defaults.Languages, cfg.Languages)
	assert.Equal(t, time.Second, cfg.Interval())
	assert.Equal(t, filepath.Join(dir, "config", "config.yaml"), cfg.SystemPaths.ConfigFile)
	assert.Equal(t, filepath.Join(dir, "data", "history.db"), cfg.Storage.DBPath)

	_, err = os.Stat(cfg.SystemPaths.ConfigFile)
	assert.NoError(t, err, "default config should be written")
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("language: pt\npolling_interval: 250\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "pt", cfg.Language)
	assert.Equal(t, 250*time.Millisecond, cfg.Interval())
	assert.Equal(t, TranslatorGoogle, cfg.Translator.Provider)
	assert.Equal(t, []string{"Arial", "Times New Roman", "Courier New", "Verdana"}, cfg.FontNames())
	assert.Equal(t, path, cfg.SystemPaths.ConfigFile)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "language: [unterminated"},
		{"invalid language", "language: \"not a language!\""},
		{"zero interval", "polling_interval: 0"},
		{"unknown translator", "translator:\n  provider: babelfish"},
		{"unknown speech", "speech:\n  provider: carrier-pigeon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("CLIPLATE_LANGUAGE", "de")
	t.Setenv("CLIPLATE_POLLING_INTERVAL", "500")
	t.Setenv("CLIPLATE_TRANSLATOR", TranslatorOpenAI)
	t.Setenv("CLIPLATE_SPEECH", SpeechNone)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "de", cfg.Language)
	assert.Equal(t, int64(500), cfg.PollingInterval)
	assert.Equal(t, TranslatorOpenAI, cfg.Translator.Provider)
	assert.Equal(t, SpeechNone, cfg.Speech.Provider)
	assert.Equal(t, "sk-test", cfg.Translator.OpenAI.APIKey)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.Unsetenv("CLIPLATE_LANGUAGE"))
	t.Cleanup(func() { os.Unsetenv("CLIPLATE_LANGUAGE") })

	configDir := filepath.Join(dir, "config")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, ".env"), []byte("CLIPLATE_LANGUAGE=fr\n"), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.Language)
}

func TestSave_DoesNotWriteAPIKey(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "out", "config.yaml")

	cfg := DefaultConfig()
	cfg.Language = "es"
	cfg.Translator.OpenAI.APIKey = "sk-secret"
	require.NoError(t, cfg.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "sk-secret")

	var loaded Config
	require.NoError(t, yaml.Unmarshal(data, &loaded))
	assert.Equal(t, "es", loaded.Language)
	assert.Equal(t, cfg.Translator.Timeout, loaded.Translator.Timeout)
	assert.Equal(t, cfg.Display.Fonts, loaded.Display.Fonts)
}

func TestNormalizeLanguage(t *testing.T) {
	got, err := NormalizeLanguage(" pt ")
	require.NoError(t, err)
	assert.Equal(t, "pt", got)

	got, err = NormalizeLanguage("zh-cn")
	require.NoError(t, err)
	assert.Equal(t, "zh-CN", got)

	_, err = NormalizeLanguage("")
	assert.Error(t, err)

	_, err = NormalizeLanguage("123456789")
	assert.Error(t, err)
}

func TestLookupFont(t *testing.T) {
	cfg := DefaultConfig()

	f, ok := cfg.LookupFont("courier new")
	require.True(t, ok)
	assert.True(t, f.Monospace)

	_, ok = cfg.LookupFont("Comic Sans")
	assert.False(t, ok)
}

func TestLoadFile_IgnoresEnv(t *testing.T) {
	dir := isolate(t)
	t.Setenv("CLIPLATE_LANGUAGE", "de")
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("language: pt\n"), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pt", cfg.Language)

	cfg, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Language)
}
