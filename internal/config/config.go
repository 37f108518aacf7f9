// Package config resolves the command-line configuration from flags,
// DIR_PRINTER_* environment variables and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Version is reported by the version subcommand.
const Version = "1.0.0"

const (
	// EnvPrefix prefixes environment overrides, e.g. DIR_PRINTER_FORMAT.
	EnvPrefix = "DIR_PRINTER"
	// DirName is the per-user directory for config.yaml and preferences.
	DirName        = ".dir-printer"
	ConfigFileName = "config.yaml"
)

// Config holds all application configuration settings
type Config struct {
	// Directory settings
	RootDir string `mapstructure:"-"`
	Last    bool   `mapstructure:"last"`

	// Filtering settings
	IgnoreFile   string `mapstructure:"ignore_file"`
	CustomIgnore string `mapstructure:"ignore"`
	UseGitignore bool   `mapstructure:"gitignore"`
	IgnoreHidden bool   `mapstructure:"hidden"`
	IgnoreGit    bool   `mapstructure:"git"`

	// Output settings
	Format      string `mapstructure:"format"`
	OutputFile  string `mapstructure:"output"`
	Copy        bool   `mapstructure:"copy"`
	NoHeader    bool   `mapstructure:"no_header"`
	ShowSkipped bool   `mapstructure:"show_skipped"`
	Language    string `mapstructure:"lang"`

	// Processing settings
	ShowProgress bool          `mapstructure:"progress"`
	Timeout      time.Duration `mapstructure:"timeout"`

	// Logging settings
	Verbose  bool   `mapstructure:"verbose"`
	Quiet    bool   `mapstructure:"quiet"`
	LogLevel string `mapstructure:"log_level"`
	LogJSON  bool   `mapstructure:"log_json"`
	NoColor  bool   `mapstructure:"no_color"`

	PreferencesDir string `mapstructure:"preferences_dir"`

	// Derived after loading
	UseColors      bool   `mapstructure:"-"`
	ConfigFileUsed string `mapstructure:"-"`
}

// flagBinding ties a viper key to its command-line flag.
type flagBinding struct {
	key  string
	flag string
}

var bindings = []flagBinding{
	{"last", "last"},
	{"ignore_file", "ignore-file"},
	{"ignore", "ignore"},
	{"gitignore", "gitignore"},
	{"hidden", "hidden"},
	{"git", "git"},
	{"format", "format"},
	{"output", "output"},
	{"copy", "copy"},
	{"no_header", "no-header"},
	{"show_skipped", "show-skipped"},
	{"lang", "lang"},
	{"progress", "progress"},
	{"timeout", "timeout"},
	{"verbose", "verbose"},
	{"quiet", "quiet"},
	{"log_level", "log-level"},
	{"log_json", "log-json"},
	{"no_color", "no-color"},
	{"preferences_dir", "preferences-dir"},
}

// RegisterFlags defines the printing flags on flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.StringP("ignore-file", "i", "", "Ignore rule file in gitignore syntax")
	flags.String("ignore", "", "Extra ignore patterns (comma-separated, gitignore syntax; write \\, for a literal comma)")
	flags.Bool("gitignore", false, "Also honour .gitignore files found in the tree")
	flags.Bool("hidden", false, "Ignore hidden files/directories (starting with '.')")
	flags.Bool("git", false, "Ignore .git directories")
	flags.StringP("format", "f", "text", "Output format: text, markdown, json or yaml")
	flags.StringP("output", "o", "", "Save output to a file instead of stdout")
	flags.BoolP("copy", "c", false, "Copy the tree to the clipboard")
	flags.Bool("no-header", false, "Omit the 'Folder structure for' header line")
	flags.Bool("show-skipped", false, "Show a list of ignored entries and reasons at the end")
	flags.String("lang", "", "Message language (en, es, zh); defaults to the saved preference")
	flags.BoolP("progress", "p", false, "Show a progress bar on stderr")
	flags.Duration("timeout", 0, "Stop the walk after this long (e.g. '30s', '5m')")
	flags.Bool("last", false, "Print the most recently used directory again")
	flags.BoolP("verbose", "v", false, "Enable verbose logging (DEBUG, WARN, ERROR)")
	flags.BoolP("quiet", "q", false, "Suppress INFO messages (only show WARN, ERROR)")
	flags.String("log-level", "", "Set the logging level (DEBUG, INFO, WARN, ERROR, NONE)")
	flags.Bool("log-json", false, "Write logs as JSON")
	flags.Bool("no-color", false, "Disable color output")
	flags.String("preferences-dir", "", "Directory holding preferences (default $HOME/"+DirName+")")
}

// Load merges flags, environment and the config file into a Config.
// Precedence: changed flag, environment, config file, flag default.
// An explicit configFile must exist; the default one is optional.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()
	for _, b := range bindings {
		if f := flags.Lookup(b.flag); f != nil {
			if err := v.BindPFlag(b.key, f); err != nil {
				return nil, fmt.Errorf("config: bind flag %s: %w", b.flag, err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	path, err := resolveConfigFile(configFile)
	if err != nil {
		return nil, err
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.ConfigFileUsed = path

	if cfg.PreferencesDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.PreferencesDir = filepath.Join(home, DirName)
		}
	}

	cfg.UseColors = !cfg.NoColor && isatty.IsTerminal(os.Stderr.Fd()) && cfg.OutputFile == ""
	return cfg, nil
}

func resolveConfigFile(explicit string) (string, error) {
	if explicit != "" {
		info, err := os.Stat(explicit)
		if err != nil {
			return "", fmt.Errorf("config: %w", err)
		}
		if info.IsDir() {
			return "", fmt.Errorf("config: %s is a directory", explicit)
		}
		return explicit, nil
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", nil
	}
	path := filepath.Join(home, DirName, ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("config: %w", err)
	}
	return path, nil
}
