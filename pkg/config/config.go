// Package config loads the mobinit project configuration and derives the
// per-platform metadata consumed by the project generators.
//
// Resolution order, later layers overriding earlier ones:
//  1. embedded defaults (defaults.toml)
//  2. mobinit.toml or mobinit.yaml in the project root
//  3. MOBINIT_* environment variables
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tauri-community/mobinit/pkg/paths"
)

// AppConfig is the cross-platform facet of the configuration.
type AppConfig struct {
	Name         string `koanf:"name"`
	StylizedName string `koanf:"stylized-name"`
	Identifier   string `koanf:"identifier"`
	AssetDir     string `koanf:"asset-dir"`

	// RootDir is the absolute project root. It is resolved at load time from
	// the invocation directory, never read from the file.
	RootDir string `koanf:"-"`
}

// AndroidConfig is the Android facet.
type AndroidConfig struct {
	MinSdkVersion int      `koanf:"min-sdk-version"`
	Features      []string `koanf:"features"`
}

// AppleConfig is the iOS facet.
type AppleConfig struct {
	DevelopmentTeam string   `koanf:"development-team"`
	IosVersion      string   `koanf:"ios-version"`
	Frameworks      []string `koanf:"frameworks"`
}

// Config is the immutable configuration tree for one init run.
type Config struct {
	App     AppConfig     `koanf:"app"`
	Android AndroidConfig `koanf:"android"`
	Apple   AppleConfig   `koanf:"apple"`
}

// AndroidMetadata carries Android-only values derived from the Config.
type AndroidMetadata struct {
	Features      []string
	TargetTriples []string
}

// AppleMetadata carries iOS-only values derived from the Config.
type AppleMetadata struct {
	Frameworks    []string
	TargetTriples []string
}

// Metadata holds the platform auxiliary values needed only by the delegated
// generators. Same lifetime as Config.
type Metadata struct {
	Android AndroidMetadata
	Apple   AppleMetadata
}

// Filenames probed for the project configuration, in order.
var configFiles = []string{"mobinit.toml", "mobinit.yaml"}

// rawBytesProvider implements a koanf provider for embedded raw bytes.
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, fmt.Errorf("not implemented")
}

// Load reads and merges the configuration for the project rooted at dir.
func Load(dir string) (*Config, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve project root: %w", err)
	}

	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	for _, filename := range configFiles {
		path := filepath.Join(root, filename)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		parser := koanf.Parser(toml.Parser())
		if strings.HasSuffix(filename, ".yaml") {
			parser = yaml.Parser()
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("load config from %s: %w", path, err)
		}
		break
	}

	if err := k.Load(env.Provider("MOBINIT_", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment overrides: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.App.RootDir = root

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.App.StylizedName) == "" {
		cfg.App.StylizedName = cfg.App.Name
	}
	return &cfg, nil
}

// envKey maps MOBINIT_APP_IDENTIFIER to app.identifier.
func envKey(s string) string {
	s = strings.TrimPrefix(s, "MOBINIT_")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "__", "-")
	return strings.ReplaceAll(s, "_", ".")
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.App.Name) == "" {
		return fmt.Errorf("app.name must be set")
	}
	identifier := strings.TrimSpace(c.App.Identifier)
	if identifier == "" {
		return fmt.Errorf("app.identifier must be set")
	}
	if !strings.Contains(identifier, ".") {
		return fmt.Errorf("app.identifier %q must be a reverse-domain identifier", identifier)
	}
	if strings.TrimSpace(c.App.AssetDir) == "" {
		return fmt.Errorf("app.asset-dir must be set")
	}
	return nil
}

// AssetDirPath resolves the asset directory against the project root.
func (c *Config) AssetDirPath() string {
	return paths.Prefix(c.App.RootDir, c.App.AssetDir)
}

// Android rust compilation targets, keyed the way cargo names them.
var androidTargetTriples = []string{
	"aarch64-linux-android",
	"armv7-linux-androideabi",
	"i686-linux-android",
	"x86_64-linux-android",
}

var appleTargetTriples = []string{
	"aarch64-apple-ios",
	"aarch64-apple-ios-sim",
	"x86_64-apple-ios",
}

// DeriveMetadata computes the platform metadata views. Pure projection, no
// failure path.
func DeriveMetadata(cfg *Config) Metadata {
	return Metadata{
		Android: AndroidMetadata{
			Features:      append([]string(nil), cfg.Android.Features...),
			TargetTriples: append([]string(nil), androidTargetTriples...),
		},
		Apple: AppleMetadata{
			Frameworks:    append([]string(nil), cfg.Apple.Frameworks...),
			TargetTriples: append([]string(nil), appleTargetTriples...),
		},
	}
}
