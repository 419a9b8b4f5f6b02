// File: internal/config/config.go

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// ConfigPaths holds all relevant paths for the application
type ConfigPaths struct {
	BaseDir    string // Directory holding config.yaml and an optional .env
	ConfigFile string // Path to the active config file
	DataDir    string // Directory for application data
	DBFile     string // Path to the translation history database
	LogDir     string // Directory for log files
}

// Config holds all application configuration
type Config struct {
	// Target language for translations, a BCP 47 tag such as "en" or "pt"
	Language string `yaml:"language"`
	// Languages offered in the language menu
	Languages []string `yaml:"languages"`
	// Clipboard polling interval in milliseconds
	PollingInterval int64 `yaml:"polling_interval"`

	SystemPaths ConfigPaths `yaml:"-"`

	Log        LogConfig        `yaml:"log"`
	Clipboard  ClipboardConfig  `yaml:"clipboard"`
	Translator TranslatorConfig `yaml:"translator"`
	Speech     SpeechConfig     `yaml:"speech"`
	Display    DisplayConfig    `yaml:"display"`
	Storage    StorageConfig    `yaml:"storage"`
}

// LogConfig holds logging-related configuration
type LogConfig struct {
	Level             string `yaml:"level"`
	Format            string `yaml:"format"` // "console" or "json"
	EnableFileLogging bool   `yaml:"enable_file_logging"`
}

// ClipboardConfig controls how clipboard text is read and filtered
type ClipboardConfig struct {
	Backend        string   `yaml:"backend"` // auto, windows, atotto, native
	MaxChars       int      `yaml:"max_chars"`
	Trim           bool     `yaml:"trim"`
	IgnorePatterns []string `yaml:"ignore_patterns,omitempty"`
}

// TranslatorConfig selects and configures the translation provider
type TranslatorConfig struct {
	Provider string        `yaml:"provider"` // google, openai
	Endpoint string        `yaml:"endpoint,omitempty"`
	Timeout  time.Duration `yaml:"timeout"`
	OpenAI   OpenAIConfig  `yaml:"openai"`
}

// OpenAIConfig holds settings for the OpenAI translator. The API key is
// only read from OPENAI_API_KEY (environment or .env) and never written back.
type OpenAIConfig struct {
	APIKey  string `yaml:"-"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url,omitempty"`
}

// SpeechConfig selects and configures the speech provider
type SpeechConfig struct {
	Provider    string            `yaml:"provider"` // gtranslate, google-cloud, none
	Endpoint    string            `yaml:"endpoint,omitempty"`
	Timeout     time.Duration     `yaml:"timeout"`
	VolumeDB    float64           `yaml:"volume_db"`
	GoogleCloud GoogleCloudConfig `yaml:"google_cloud"`
}

// GoogleCloudConfig holds Google Cloud Text-to-Speech voice settings.
// Credentials come from GOOGLE_APPLICATION_CREDENTIALS.
type GoogleCloudConfig struct {
	Voice        string  `yaml:"voice,omitempty"`
	SpeakingRate float64 `yaml:"speaking_rate"`
	Pitch        float64 `yaml:"pitch"`
	VolumeGainDB float64 `yaml:"volume_gain_db"`
}

// DisplayConfig holds window settings
type DisplayConfig struct {
	Title    string       `yaml:"title"`
	IconPath string       `yaml:"icon_path,omitempty"`
	Width    float32      `yaml:"width"`
	Height   float32      `yaml:"height"`
	Font     string       `yaml:"font"`
	Fonts    []FontConfig `yaml:"fonts"`
}

// FontConfig is one entry of the font menu. Path optionally points to a
// TTF file; without it the toolkit's default face is used.
type FontConfig struct {
	Name      string `yaml:"name"`
	Path      string `yaml:"path,omitempty"`
	Monospace bool   `yaml:"monospace,omitempty"`
}

// StorageConfig holds translation history configuration
type StorageConfig struct {
	Enabled   bool   `yaml:"enabled"`
	DBPath    string `yaml:"db_path,omitempty"`
	KeepItems int    `yaml:"keep_items"`
}

// Provider names
const (
	TranslatorGoogle = "google"
	TranslatorOpenAI = "openai"

	SpeechGoogleTranslate = "gtranslate"
	SpeechGoogleCloud     = "google-cloud"
	SpeechNone            = "none"
)

// GetConfigPaths returns the platform-specific configuration paths
func GetConfigPaths() (*ConfigPaths, error) {
	baseDir := os.Getenv("CLIPLATE_CONFIG_DIR")
	if baseDir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}

		switch runtime.GOOS {
		case "windows":
			baseDir = filepath.Join(configDir, "Cliplate")
		case "darwin":
			baseDir = filepath.Join(configDir, "com.berrythewa.cliplate")
		default: // Linux and others
			baseDir = filepath.Join(configDir, "cliplate")
		}
	}

	dataDir := os.Getenv("CLIPLATE_DATA_DIR")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		switch runtime.GOOS {
		case "windows":
			if appData, err := os.UserConfigDir(); err == nil {
				dataDir = filepath.Join(appData, "Cliplate", "Data")
			} else {
				dataDir = filepath.Join(homeDir, "AppData", "Local", "Cliplate")
			}
		case "darwin":
			dataDir = filepath.Join(homeDir, "Library", "Application Support", "Cliplate")
		default: // Linux and others
			if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
				dataDir = filepath.Join(xdgDataHome, "cliplate")
			} else {
				dataDir = filepath.Join(homeDir, ".cliplate")
			}
		}
	}

	return &ConfigPaths{
		BaseDir:    baseDir,
		ConfigFile: filepath.Join(baseDir, "config.yaml"),
		DataDir:    dataDir,
		DBFile:     filepath.Join(dataDir, "history.db"),
		LogDir:     filepath.Join(dataDir, "logs"),
	}, nil
}

// EnsureDirs creates the config, data and log directories
func (p ConfigPaths) EnsureDirs() error {
	for _, dir := range []string{p.BaseDir, p.DataDir, p.LogDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		Language:        "en",
		Languages:       []string{"en", "pt", "es", "fr", "de"},
		PollingInterval: 1000,
		Log: LogConfig{
			Level:             "info",
			Format:            "console",
			EnableFileLogging: false,
		},
		Clipboard: ClipboardConfig{
			Backend:  "auto",
			MaxChars: 5000,
			Trim:     true,
		},
		Translator: TranslatorConfig{
			Provider: TranslatorGoogle,
			Timeout:  10 * time.Second,
			OpenAI: OpenAIConfig{
				Model: "gpt-4o-mini",
			},
		},
		Speech: SpeechConfig{
			Provider: SpeechGoogleTranslate,
			Timeout:  15 * time.Second,
			GoogleCloud: GoogleCloudConfig{
				SpeakingRate: 1.0,
			},
		},
		Display: DisplayConfig{
			Title:  "Cliplate",
			Width:  480,
			Height: 360,
			Font:   "Arial",
			Fonts: []FontConfig{
				{Name: "Arial"},
				{Name: "Times New Roman"},
				{Name: "Courier New", Monospace: true},
				{Name: "Verdana"},
			},
		},
		Storage: StorageConfig{
			Enabled:   true,
			KeepItems: 200,
		},
	}
}

// Load loads the configuration from the specified file, creating it with
// defaults if it does not exist. An empty path means the platform default.
func Load(configPath string) (*Config, error) {
	paths, err := GetConfigPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config paths: %w", err)
	}

	if configPath == "" {
		configPath = os.Getenv("CLIPLATE_CONFIG")
	}
	if configPath == "" {
		configPath = paths.ConfigFile
	}
	paths.ConfigFile = configPath

	loadDotEnv(filepath.Dir(configPath))

	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := cfg.Save(configPath); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	overrideFromEnv(cfg)

	if dataDir := os.Getenv("CLIPLATE_DATA_DIR"); dataDir != "" {
		paths.DataDir = dataDir
		paths.DBFile = filepath.Join(dataDir, "history.db")
		paths.LogDir = filepath.Join(dataDir, "logs")
	}
	cfg.SystemPaths = *paths
	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath = paths.DBFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a configuration file on top of the defaults without applying
// environment overrides or validation. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Save saves the configuration to the specified file
func (c *Config) Save(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration for values the program cannot run with
func (c *Config) Validate() error {
	if c.PollingInterval <= 0 {
		return fmt.Errorf("polling_interval must be positive, got %d", c.PollingInterval)
	}
	if _, err := NormalizeLanguage(c.Language); err != nil {
		return err
	}
	for _, code := range c.Languages {
		if _, err := NormalizeLanguage(code); err != nil {
			return fmt.Errorf("languages: %w", err)
		}
	}

	switch c.Translator.Provider {
	case TranslatorGoogle, TranslatorOpenAI:
	default:
		return fmt.Errorf("unknown translator provider %q", c.Translator.Provider)
	}

	switch c.Speech.Provider {
	case SpeechGoogleTranslate, SpeechGoogleCloud, SpeechNone:
	default:
		return fmt.Errorf("unknown speech provider %q", c.Speech.Provider)
	}
	return nil
}

// Interval returns the polling interval as a duration
func (c *Config) Interval() time.Duration {
	return time.Duration(c.PollingInterval) * time.Millisecond
}

// FontNames returns the names offered in the font menu
func (c *Config) FontNames() []string {
	names := make([]string, 0, len(c.Display.Fonts))
	for _, f := range c.Display.Fonts {
		names = append(names, f.Name)
	}
	return names
}

// LookupFont returns the font entry with the given name
func (c *Config) LookupFont(name string) (FontConfig, bool) {
	for _, f := range c.Display.Fonts {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return FontConfig{}, false
}

// NormalizeLanguage validates a language code and returns its canonical form
func NormalizeLanguage(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", errors.New("language code is empty")
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", fmt.Errorf("invalid language code %q: %w", code, err)
	}
	return tag.String(), nil
}

// loadDotEnv loads .env files from the working directory and the config
// directory. Variables already set in the environment win.
func loadDotEnv(configDir string) {
	for _, path := range []string{".env", filepath.Join(configDir, ".env")} {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
		}
	}
}

// overrideFromEnv overrides configuration values from environment variables
func overrideFromEnv(config *Config) {
	if val := os.Getenv("CLIPLATE_LANGUAGE"); val != "" {
		config.Language = val
	}
	if val := os.Getenv("CLIPLATE_POLLING_INTERVAL"); val != "" {
		if ms, err := strconv.ParseInt(val, 10, 64); err == nil {
			config.PollingInterval = ms
		}
	}
	if val := os.Getenv("CLIPLATE_LOG_LEVEL"); val != "" {
		config.Log.Level = val
	}
	if val := os.Getenv("CLIPLATE_CLIPBOARD_BACKEND"); val != "" {
		config.Clipboard.Backend = val
	}
	if val := os.Getenv("CLIPLATE_TRANSLATOR"); val != "" {
		config.Translator.Provider = val
	}
	if val := os.Getenv("CLIPLATE_SPEECH"); val != "" {
		config.Speech.Provider = val
	}
	if val := os.Getenv("OPENAI_API_KEY"); val != "" {
		config.Translator.OpenAI.APIKey = val
	}
	if val := os.Getenv("CLIPLATE_HISTORY"); val != "" {
		config.Storage.Enabled = val == "true"
	}
}
