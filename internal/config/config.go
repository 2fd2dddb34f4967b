// Package config loads service and CLI configuration from a TOML file and the environment
package config

import (
	stderrors "errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"github.com/KirkDiggler/rpg-companion/internal/errors"
)

// DefaultPath is read when no config file is named; a missing default file is not an error
const DefaultPath = "companion.toml"

// Catalog source kinds
const (
	SourcePack   = "pack"
	SourceSQLite = "sqlite"
	SourceSRD    = "srd"
)

var catalogKinds = []string{SourcePack, SourceSQLite, SourceSRD}

// Sheet output formats
const (
	SheetPDF      = "pdf"
	SheetWorkbook = "xlsx"
	SheetJSON     = "json"
)

var sheetFormats = []string{SheetPDF, SheetWorkbook, SheetJSON}

// Config is the full companion configuration
type Config struct {
	Redis    RedisConfig     `toml:"redis"`
	Server   ServerConfig    `toml:"server"`
	SRD      SRDConfig       `toml:"srd"`
	Sheet    SheetConfig     `toml:"sheet"`
	Log      LogConfig       `toml:"log"`
	Catalogs []CatalogSource `toml:"catalogs" envPrefix:"COMPANION_CATALOGS_"`

	// WorldItems lets the resolver fall back to spells the host already owns
	WorldItems bool `toml:"world_items" env:"COMPANION_WORLD_ITEMS"`
}

// RedisConfig configures the host store and catalog caches
type RedisConfig struct {
	Endpoints []string `toml:"endpoints" env:"COMPANION_REDIS_ENDPOINTS" envSeparator:","`
	DB        int      `toml:"db" env:"COMPANION_REDIS_DB"`
	UseTLS    bool     `toml:"tls" env:"COMPANION_REDIS_TLS"`
	// CacheTTL applies to cached catalog indexes and documents
	CacheTTL Duration `toml:"cache_ttl" env:"COMPANION_CACHE_TTL"`
}

// ServerConfig configures the gRPC server
type ServerConfig struct {
	Port int `toml:"port" env:"COMPANION_GRPC_PORT"`
}

// SRDConfig configures the SRD API catalog
type SRDConfig struct {
	BaseURL     string   `toml:"base_url" env:"COMPANION_SRD_BASE_URL"`
	HTTPTimeout Duration `toml:"http_timeout" env:"COMPANION_SRD_HTTP_TIMEOUT"`
	CacheTTL    Duration `toml:"cache_ttl" env:"COMPANION_SRD_CACHE_TTL"`
}

// SheetConfig configures sheet projection output
type SheetConfig struct {
	// Format is the default output of the sheet command: pdf, xlsx or json
	Format string `toml:"format" env:"COMPANION_SHEET_FORMAT"`
	// TemplatePath is the fillable PDF character sheet
	TemplatePath string `toml:"template_path" env:"COMPANION_SHEET_TEMPLATE"`
	// WorkbookTemplate is an xlsx template with a Fields mapping sheet (optional)
	WorkbookTemplate string `toml:"workbook_template" env:"COMPANION_SHEET_WORKBOOK_TEMPLATE"`
}

// LogConfig configures the default slog handler
type LogConfig struct {
	Level string `toml:"level" env:"COMPANION_LOG_LEVEL"`
	JSON  bool   `toml:"json" env:"COMPANION_LOG_JSON"`
}

// CatalogSource is one reference catalog. Sources are searched in the order listed;
// COMPANION_CATALOGS_<n>_KIND and friends override or append entries, numbered from 0 without gaps.
type CatalogSource struct {
	Kind string `toml:"kind" env:"KIND"`
	// Path is the pack file or sqlite database; unused for srd
	Path string `toml:"path" env:"PATH"`
	// Cache wraps the catalog in the redis index cache when redis is configured
	Cache bool `toml:"cache" env:"CACHE"`
}

// Duration is a time.Duration that decodes from strings such as "24h"
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return errors.InvalidArgumentf("invalid duration %q", string(text))
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the standard library duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		Redis: RedisConfig{
			Endpoints: []string{"localhost:6379"},
			CacheTTL:  Duration(24 * time.Hour),
		},
		Server: ServerConfig{Port: 50051},
		SRD: SRDConfig{
			HTTPTimeout: Duration(30 * time.Second),
			CacheTTL:    Duration(24 * time.Hour),
		},
		Sheet: SheetConfig{Format: SheetPDF},
		Log:   LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path reads DefaultPath if it exists.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := Decode(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to decode %s", path)
		}
	case os.IsNotExist(err) && !explicit:
		slog.Debug("No config file, using defaults", "path", path)
	case os.IsNotExist(err):
		return nil, errors.NotFoundf("config file %s not found", path)
	default:
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode overlays TOML data onto cfg
func Decode(data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		var decodeErr *toml.DecodeError
		if stderrors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return errors.InvalidArgumentf("invalid config: %s", decodeErr.Error()).
				WithMeta("row", row).
				WithMeta("column", col)
		}
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid config")
	}
	return nil
}

// Validate checks the configuration is usable
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.port", c.Server.Port, 1, 65535, vb)
	if _, err := parseLevel(c.Log.Level); err != nil {
		vb.Fieldf("log.level", "unknown level %q", c.Log.Level)
	}
	errors.ValidateEnum("sheet.format", c.Sheet.Format, sheetFormats, vb)
	for i, src := range c.Catalogs {
		switch src.Kind {
		case SourcePack, SourceSQLite:
			errors.ValidateRequired(errors.Indexed("catalogs", i, "path"), src.Path, vb)
		case "":
			vb.RequiredField(errors.Indexed("catalogs", i, "kind"))
		default:
			errors.ValidateEnum(errors.Indexed("catalogs", i, "kind"), src.Kind, catalogKinds, vb)
		}
	}

	return vb.Build()
}

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// Logger builds the slog logger described by the log section
func (c *Config) Logger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.Log.JSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	err := level.UnmarshalText([]byte(s))
	return level, err
}
