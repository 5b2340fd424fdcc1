package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/spotlight-manager/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides. Nested keys use "__",
// e.g. SPOTLIGHT_MANAGER_SCAN__HIDDEN=true sets scan.hidden.
const EnvPrefix = "SPOTLIGHT_MANAGER_"

// DefaultConcurrency bounds concurrent rule scans when none is configured
const DefaultConcurrency = 4

// Config is the effective configuration
type Config struct {
	// StorePath is the Spotlight plist holding the exclusion list
	StorePath string `koanf:"spotlightPList"`

	Scan    ScanConfig    `koanf:"scan"`
	Store   StoreConfig   `koanf:"store"`
	Service ServiceConfig `koanf:"service"`

	// File is the rule document the configuration was read from
	File string `koanf:"-"`
}

// ScanConfig tunes directory discovery
type ScanConfig struct {
	// Hidden enables descending into dot-directories
	Hidden bool `koanf:"hidden"`

	// Concurrency bounds how many rules are scanned at once during a job
	Concurrency int `koanf:"concurrency"`
}

// StoreConfig tunes the exclusion store writes
type StoreConfig struct {
	// LockFile is the advisory lock held while replacing the plist
	LockFile string `koanf:"lock_file"`

	// VerifyUnchanged refuses to write when the plist changed since it was read
	VerifyUnchanged bool `koanf:"verify_unchanged"`
}

// ServiceConfig describes how the indexing service is restarted after a write
type ServiceConfig struct {
	Enabled bool          `koanf:"enabled"`
	Timeout time.Duration `koanf:"timeout"`
	Restart [][]string    `koanf:"restart"`
}

// LoadOptions controls Load
type LoadOptions struct {
	// File is the rule document; it may not exist yet
	File string

	// DefaultLockFile is used when store.lock_file is unset
	DefaultLockFile string

	// Environ replaces os.Environ for env overrides (tests)
	Environ []string
}

// Load layers defaults, the rule document and the environment into a Config
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(bytesProvider(defaultConfig), yaml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if opts.File != "" {
		if info, err := os.Stat(opts.File); err == nil && info.Size() > 0 {
			if err := k.Load(file.Provider(opts.File), parserFor(opts.File)); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", opts.File).
					WithHint("fix the syntax of the file or point --config elsewhere")
			}
		} else if err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat config %s", opts.File)
		}
	}

	if err := loadEnv(k, opts.Environ); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	cfg.File = opts.File
	if cfg.Store.LockFile == "" {
		cfg.Store.LockFile = opts.DefaultLockFile
	}
	if cfg.Scan.Concurrency <= 0 {
		cfg.Scan.Concurrency = DefaultConcurrency
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields that downstream components rely on
func (c *Config) Validate() error {
	if strings.TrimSpace(c.StorePath) == "" {
		return errors.New(errors.ErrConfigValid, "spotlightPList must not be empty")
	}
	if c.Service.Enabled {
		if c.Service.Timeout <= 0 {
			return errors.Newf(errors.ErrConfigValid, "service.timeout must be positive, got %s", c.Service.Timeout)
		}
		for i, argv := range c.Service.Restart {
			if len(argv) == 0 || argv[0] == "" {
				return errors.Newf(errors.ErrConfigValid, "service.restart[%d] is empty", i)
			}
		}
	}
	return nil
}

// IsTOML reports whether a rule document path is TOML (otherwise YAML)
func IsTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func parserFor(path string) koanf.Parser {
	if IsTOML(path) {
		return toml.Parser()
	}
	return yaml.Parser()
}

func loadEnv(k *koanf.Koanf, environ []string) error {
	tempK := koanf.New(".")
	if environ != nil {
		vars := map[string]interface{}{}
		for _, kv := range environ {
			name, value, ok := strings.Cut(kv, "=")
			if !ok || !strings.HasPrefix(name, EnvPrefix) {
				continue
			}
			if key := envKey(name); key != "" {
				vars[key] = value
			}
		}
		if err := tempK.Load(confmap.Provider(vars, "."), nil); err != nil {
			return err
		}
	} else if err := tempK.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return err
	}
	return k.Merge(tempK)
}

// envKey maps SPOTLIGHT_MANAGER_SCAN__HIDDEN to scan.hidden. Variables
// consumed by package paths map to "" and are skipped.
func envKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	switch key {
	case "config", "state_dir":
		return ""
	case "plist":
		return "spotlightPList"
	}
	return strings.ReplaceAll(key, "__", ".")
}

// String renders a short human summary used in debug logs
func (c *Config) String() string {
	return fmt.Sprintf("store=%s hidden=%t concurrency=%d service=%t",
		c.StorePath, c.Scan.Hidden, c.Scan.Concurrency, c.Service.Enabled)
}
