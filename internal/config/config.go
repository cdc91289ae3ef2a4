package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is a typed snapshot of the persisted settings.
type Config struct {
	APIKey      string
	APIEndpoint string
	Model       string
	AutoCommit  bool
	Language    string
	Prefix      string
	BaseBranch  string
}

const (
	KeyAPIKey      = "apiKey"
	KeyAPIEndpoint = "apiEndpoint"
	KeyModel       = "model"
	KeyAutoCommit  = "autoCommit"
	KeyLanguage    = "language"
	KeyPrefix      = "prefix"
	KeyBaseBranch  = "baseBranch"
)

const (
	DefaultAPIEndpoint = "https://api.deepseek.com/chat/completions"
	DefaultModel       = "deepseek-chat"
	DefaultLanguage    = "zh-CN"
	DefaultBaseBranch  = "master"

	DefaultConfigDir  = "gma-cli"
	DefaultConfigName = "config"
	DefaultConfigType = "yaml"
	EnvPrefix         = "GMA"
	ConfigPathEnv     = EnvPrefix + "_CONFIG"
	DotEnvFile        = ".env"
)

var (
	ErrUnknownKey   = errors.New("unknown configuration key")
	ErrTypeMismatch = errors.New("invalid value type")
)

// Kind is the declared type of a setting.
type Kind int

const (
	KindString Kind = iota
	KindBool
)

func (k Kind) String() string {
	if k == KindBool {
		return "boolean"
	}
	return "string"
}

// Setting describes one schema entry.
type Setting struct {
	Key         string
	Kind        Kind
	Default     any
	Env         string
	Description string
}

var schema = []Setting{
	{Key: KeyAPIKey, Kind: KindString, Default: "", Env: "GMA_API_KEY",
		Description: "API key sent as a bearer token"},
	{Key: KeyAPIEndpoint, Kind: KindString, Default: DefaultAPIEndpoint, Env: "GMA_API_ENDPOINT",
		Description: "Chat completion endpoint or base URL"},
	{Key: KeyModel, Kind: KindString, Default: DefaultModel, Env: "GMA_MODEL",
		Description: "Model name"},
	{Key: KeyAutoCommit, Kind: KindBool, Default: false, Env: "GMA_AUTO_COMMIT",
		Description: "Commit without confirmation"},
	{Key: KeyLanguage, Kind: KindString, Default: DefaultLanguage, Env: "GMA_LANGUAGE",
		Description: "Language of generated commit messages"},
	{Key: KeyPrefix, Kind: KindString, Default: "", Env: "GMA_PREFIX",
		Description: "Prefix inserted into generated branch names"},
	{Key: KeyBaseBranch, Kind: KindString, Default: DefaultBaseBranch, Env: "GMA_BASE_BRANCH",
		Description: "Branch new branches are created from"},
}

// Schema returns a copy of the settings schema in declaration order.
func Schema() []Setting {
	out := make([]Setting, len(schema))
	copy(out, schema)
	return out
}

// Keys returns the schema keys in declaration order.
func Keys() []string {
	keys := make([]string, 0, len(schema))
	for _, s := range schema {
		keys = append(keys, s.Key)
	}
	return keys
}

// Lookup finds a setting by its exact key.
func Lookup(key string) (Setting, bool) {
	for _, s := range schema {
		if s.Key == key {
			return s, true
		}
	}
	return Setting{}, false
}

// Coerce turns the literals "true" and "false" into booleans.
func Coerce(raw string) any {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	default:
		return raw
	}
}

func (s Setting) check(value any) error {
	switch s.Kind {
	case KindBool:
		if _, ok := value.(bool); ok {
			return nil
		}
	default:
		if _, ok := value.(string); ok {
			return nil
		}
	}
	return fmt.Errorf("%w: %s must be a %s, got %q", ErrTypeMismatch, s.Key, s.Kind, fmt.Sprint(value))
}

// Store reads and persists settings for a single config file.
type Store struct {
	v    *viper.Viper
	path string
}

// Load resolves the config file, creating it when missing, and applies
// schema defaults and GMA_* environment overrides.
func Load(cfgFile string) (*Store, error) {
	if err := loadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}

	path, err := ResolvePath(cfgFile)
	if err != nil {
		return nil, err
	}

	if err := ensureConfigFile(path); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(DefaultConfigType)
	for _, s := range schema {
		v.SetDefault(s.Key, s.Default)
		if err := v.BindEnv(s.Key, s.Env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", s.Env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	return &Store{v: v, path: path}, nil
}

// ResolvePath returns the config file location: the explicit path, then
// $GMA_CONFIG, then $XDG_CONFIG_HOME/gma-cli/config.yaml, then ~/.config.
func ResolvePath(cfgFile string) (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	if env := os.Getenv(ConfigPathEnv); env != "" {
		return env, nil
	}

	fileName := DefaultConfigName + "." + DefaultConfigType
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, DefaultConfigDir, fileName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(home, ".config", DefaultConfigDir, fileName), nil
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

func ensureConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return os.Chmod(path, 0o600)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat configuration file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create configuration directory: %w", err)
	}

	defaults := viper.New()
	defaults.SetConfigType(DefaultConfigType)
	for _, s := range schema {
		defaults.Set(s.Key, s.Default)
	}
	return writeFile(defaults, path)
}

func writeFile(v *viper.Viper, path string) error {
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	if err := os.Chmod(path, 0o600); err != nil {
		return fmt.Errorf("failed to set configuration file permissions: %w", err)
	}
	return nil
}

// Path reports the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// Get returns the stored value, an environment override, or the schema default.
func (s *Store) Get(key string) (any, error) {
	setting, ok := Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if setting.Kind == KindBool {
		return s.v.GetBool(key), nil
	}
	return s.v.GetString(key), nil
}

// Set coerces raw, checks it against the schema and persists it. Only values
// read from the file are written back, so environment overrides stay out of it.
func (s *Store) Set(key, raw string) (any, error) {
	return s.set(key, Coerce(raw))
}

// SetString persists value verbatim, for keys whose input is free text such as
// the branch prefix, where "true" or "123" must stay strings.
func (s *Store) SetString(key, value string) (any, error) {
	return s.set(key, value)
}

func (s *Store) set(key string, value any) (any, error) {
	setting, ok := Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if err := setting.check(value); err != nil {
		return nil, err
	}

	file := viper.New()
	file.SetConfigFile(s.path)
	file.SetConfigType(DefaultConfigType)
	if err := file.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}
	file.Set(key, value)
	if err := writeFile(file, s.path); err != nil {
		return nil, err
	}

	s.v.Set(key, value)
	return value, nil
}

// Config returns a typed snapshot of the current settings.
func (s *Store) Config() *Config {
	return &Config{
		APIKey:      strings.TrimSpace(s.v.GetString(KeyAPIKey)),
		APIEndpoint: s.v.GetString(KeyAPIEndpoint),
		Model:       s.v.GetString(KeyModel),
		AutoCommit:  s.v.GetBool(KeyAutoCommit),
		Language:    s.v.GetString(KeyLanguage),
		Prefix:      s.v.GetString(KeyPrefix),
		BaseBranch:  s.v.GetString(KeyBaseBranch),
	}
}

// FormatValue renders a setting value the way the CLI prints it.
func FormatValue(value any) string {
	return fmt.Sprint(value)
}
