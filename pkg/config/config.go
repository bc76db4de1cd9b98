/*
Package config manages TOML config for CodeServe services.
*/
package config

import (
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/bastiangx/codeserve/internal/utils"
	"github.com/bastiangx/codeserve/pkg/lang"
	"github.com/bastiangx/codeserve/pkg/session"
	"github.com/bastiangx/codeserve/pkg/suggest"
)

// FileName is the name of the config file inside the config directory.
const FileName = "config.toml"

// Config holds the entire config structure
type Config struct {
	Completion CompletionConfig `toml:"completion"`
	Server     ServerConfig     `toml:"server"`
	CLI        CliConfig        `toml:"cli"`
}

// CompletionConfig tunes the matcher and the popup session.
type CompletionConfig struct {
	MaxItems        int    `toml:"max_items"`
	MinWordLen      int    `toml:"min_word_len"`
	GuardDelayMs    int    `toml:"guard_delay_ms"`
	DefaultLanguage string `toml:"default_language"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxPrefix    int  `toml:"max_prefix"`
	MaxTextBytes int  `toml:"max_text_bytes"`
	WatchConfig  bool `toml:"watch_config"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLanguage string `toml:"default_language"`
	ShowDocs        bool   `toml:"show_docs"`
	PageSize        int    `toml:"page_size"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Completion: CompletionConfig{
			MaxItems:        suggest.DefaultMaxItems,
			MinWordLen:      suggest.DefaultMinWordLen,
			GuardDelayMs:    int(session.DefaultGuardDelay / time.Millisecond),
			DefaultLanguage: lang.Generic.String(),
		},
		Server: ServerConfig{
			MaxPrefix:    60,
			MaxTextBytes: 1 << 20,
			WatchConfig:  true,
		},
		CLI: CliConfig{
			DefaultLanguage: lang.Rust.String(),
			ShowDocs:        true,
			PageSize:        session.DefaultPageSize,
		},
	}
}

// MatcherOptions converts the completion section for suggest.NewMatcher.
func (c *Config) MatcherOptions() suggest.Options {
	return suggest.Options{
		MaxItems:   c.Completion.MaxItems,
		MinWordLen: c.Completion.MinWordLen,
	}
}

// SessionOptions converts the completion and cli sections for session.NewController.
func (c *Config) SessionOptions() session.Options {
	return session.Options{
		GuardDelay: time.Duration(c.Completion.GuardDelayMs) * time.Millisecond,
		PageSize:   c.CLI.PageSize,
	}
}

// GetDefaultConfigPath returns the default path for config.toml. The first
// writable candidate of utils.PathResolver wins.
func GetDefaultConfigPath() (string, error) {
	pr, err := utils.NewPathResolver()
	if err != nil {
		log.Errorf("Failed to resolve executable path: %v", err)
		return "", errors.Wrap(err, "resolve config dir")
	}
	return pr.GetConfigPath(FileName)
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/codeserve/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Keys missing from the file keep their
// defaults; a file that does not decode cleanly is salvaged section by section.
func LoadConfig(configPath string) (*Config, error) {
	if !utils.FileExists(configPath) {
		return nil, errors.Newf("config file %s does not exist", configPath)
	}
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	config.sanitize()
	return config, nil
}

// tryPartialParse salvages what it can from a TOML file that did not decode
// into Config.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "completion"); ok {
		extractCompletionConfig(section, &config.Completion)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	config.sanitize()
	return config, nil
}

func extractCompletionConfig(data map[string]any, c *CompletionConfig) {
	if val, ok := utils.ExtractInt64(data, "max_items"); ok {
		c.MaxItems = val
	}
	if val, ok := utils.ExtractInt64(data, "min_word_len"); ok {
		c.MinWordLen = val
	}
	if val, ok := utils.ExtractInt64(data, "guard_delay_ms"); ok {
		c.GuardDelayMs = val
	}
	if val, ok := utils.ExtractString(data, "default_language"); ok {
		c.DefaultLanguage = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_prefix"); ok {
		server.MaxPrefix = val
	}
	if val, ok := utils.ExtractInt64(data, "max_text_bytes"); ok {
		server.MaxTextBytes = val
	}
	if val, ok := utils.ExtractBool(data, "watch_config"); ok {
		server.WatchConfig = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractString(data, "default_language"); ok {
		cli.DefaultLanguage = val
	}
	if val, ok := utils.ExtractBool(data, "show_docs"); ok {
		cli.ShowDocs = val
	}
	if val, ok := utils.ExtractInt64(data, "page_size"); ok {
		cli.PageSize = val
	}
}

// sanitize replaces out of range values with their defaults.
func (c *Config) sanitize() {
	def := DefaultConfig()
	if c.Completion.MaxItems <= 0 {
		log.Warnf("Invalid max_items %d, using %d", c.Completion.MaxItems, def.Completion.MaxItems)
		c.Completion.MaxItems = def.Completion.MaxItems
	}
	if c.Completion.MinWordLen <= 0 {
		c.Completion.MinWordLen = def.Completion.MinWordLen
	}
	if c.Completion.GuardDelayMs <= 0 {
		c.Completion.GuardDelayMs = def.Completion.GuardDelayMs
	}
	if c.Server.MaxPrefix <= 0 {
		c.Server.MaxPrefix = def.Server.MaxPrefix
	}
	if c.Server.MaxTextBytes <= 0 {
		c.Server.MaxTextBytes = def.Server.MaxTextBytes
	}
	if c.CLI.PageSize <= 0 {
		c.CLI.PageSize = def.CLI.PageSize
	}
	c.Completion.DefaultLanguage = lang.Parse(c.Completion.DefaultLanguage).String()
	c.CLI.DefaultLanguage = lang.Parse(c.CLI.DefaultLanguage).String()
}

// RebuildConfigFile overwrites the config at configPath with the defaults.
// An empty configPath targets the default location. It returns the path written.
func RebuildConfigFile(configPath string) (string, error) {
	if configPath == "" {
		defaultPath, err := GetDefaultConfigPath()
		if err != nil {
			return "", err
		}
		configPath = defaultPath
	}
	if err := utils.EnsureDir(filepath.Dir(configPath)); err != nil {
		return "", errors.Wrapf(err, "create config dir for %s", configPath)
	}
	return configPath, SaveConfig(DefaultConfig(), configPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig atomically writes the config as TOML.
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes the completion limits and saves to file
func (c *Config) Update(configPath string, maxItems, minWordLen *int, defaultLanguage *string) error {
	if maxItems != nil {
		c.Completion.MaxItems = *maxItems
	}
	if minWordLen != nil {
		c.Completion.MinWordLen = *minWordLen
	}
	if defaultLanguage != nil {
		c.Completion.DefaultLanguage = *defaultLanguage
	}
	c.sanitize()
	return SaveConfig(c, configPath)
}
