package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Default values for the mirror settings. They can all be overridden in the
// config file; tests inject their own values directly.
var (
	DefaultBackupDir    = "BACKUP"
	DefaultIndexFile    = "README.md"
	DefaultAnchorCount  = 5
	DefaultIgnoreLabels = []string{"Top", "TODO", "Friends", "About", "Things"}
)

// Config holds GitHub connection and mirror settings.
type Config struct {
	Token        string   `yaml:"token"         mapstructure:"token"`
	Repo         string   `yaml:"repo"          mapstructure:"repo"`
	BackupDir    string   `yaml:"backup_dir"    mapstructure:"backup_dir"`
	IndexFile    string   `yaml:"index_file"    mapstructure:"index_file"`
	AnchorCount  int      `yaml:"anchor_count"  mapstructure:"anchor_count"`
	IgnoreLabels []string `yaml:"ignore_labels" mapstructure:"ignore_labels"`
}

// DefaultPath returns the default config file path (~/.gitblog.yaml).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gitblog.yaml"
	}
	return filepath.Join(home, ".gitblog.yaml")
}

// Load reads config from the YAML file and applies env var overrides.
// configPath may be empty to use the default path.
func Load(configPath string) (Config, error) {
	v := viper.New()

	if configPath == "" {
		configPath = DefaultPath()
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Env var overrides
	v.BindEnv("token", "GITHUB_TOKEN")
	v.BindEnv("repo", "GITBLOG_REPO")

	v.SetDefault("backup_dir", DefaultBackupDir)
	v.SetDefault("index_file", DefaultIndexFile)
	v.SetDefault("anchor_count", DefaultAnchorCount)
	v.SetDefault("ignore_labels", DefaultIgnoreLabels)

	// Read the config file (ignore "not found" errors so env vars still work)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only ignore file-not-found; other errors (e.g. parse) are real
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Validate checks that required fields are present.
func (c Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("GitHub token is required (set in config file or GITHUB_TOKEN env var)")
	}
	if c.Repo == "" {
		return fmt.Errorf("repository is required (set in config file or GITBLOG_REPO env var)")
	}
	if err := validRepo(c.Repo); err != nil {
		return err
	}
	if c.AnchorCount < 0 {
		return fmt.Errorf("anchor_count must not be negative, got %d", c.AnchorCount)
	}
	return nil
}

// SplitRepo splits an "owner/repo" string into its two parts.
func SplitRepo(repo string) (owner, name string, err error) {
	if err := validRepo(repo); err != nil {
		return "", "", err
	}
	parts := strings.SplitN(repo, "/", 2)
	return parts[0], parts[1], nil
}

func validRepo(repo string) error {
	parts := strings.SplitN(repo, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("repository must be in owner/repo form, got %q", repo)
	}
	return nil
}

// Save writes the config to the given path (or default path if empty).
func Save(cfg Config, configPath string) error {
	if configPath == "" {
		configPath = DefaultPath()
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
