package config_test

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-companion/internal/config"
	"github.com/KirkDiggler/rpg-companion/internal/entities/actor"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
	"github.com/KirkDiggler/rpg-companion/internal/testutils"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) write(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefault() {
	cfg := config.Default()

	s.Require().NoError(cfg.Validate())
	s.Equal(50051, cfg.Server.Port)
	s.Equal([]string{"localhost:6379"}, cfg.Redis.Endpoints)
	s.Equal(24*time.Hour, cfg.Redis.CacheTTL.Std())
	s.Equal(slog.LevelInfo, cfg.SlogLevel())
	s.Equal(config.SheetPDF, cfg.Sheet.Format)
	s.Empty(cfg.Catalogs)
}

func (s *ConfigTestSuite) TestLoadFile() {
	path := s.write("companion.toml", `
world_items = true

[server]
port = 6000

[redis]
endpoints = ["redis-a:6379", "redis-b:6379"]
cache_ttl = "90m"

[srd]
http_timeout = "5s"

[sheet]
format = "xlsx"
template_path = "sheets/5e.pdf"
workbook_template = "sheets/5e.xlsx"

[log]
level = "debug"

[[catalogs]]
kind = "pack"
path = "packs/items.json"
cache = true

[[catalogs]]
kind = "srd"
`)

	cfg, err := config.Load(path)

	s.Require().NoError(err)
	s.True(cfg.WorldItems)
	s.Equal(6000, cfg.Server.Port)
	s.Equal([]string{"redis-a:6379", "redis-b:6379"}, cfg.Redis.Endpoints)
	s.Equal(90*time.Minute, cfg.Redis.CacheTTL.Std())
	s.Equal(5*time.Second, cfg.SRD.HTTPTimeout.Std())
	s.Equal(24*time.Hour, cfg.SRD.CacheTTL.Std(), "unset keys keep defaults")
	s.Equal(config.SheetConfig{
		Format:           config.SheetWorkbook,
		TemplatePath:     "sheets/5e.pdf",
		WorkbookTemplate: "sheets/5e.xlsx",
	}, cfg.Sheet)
	s.Equal(slog.LevelDebug, cfg.SlogLevel())
	s.Equal([]config.CatalogSource{
		{Kind: config.SourcePack, Path: "packs/items.json", Cache: true},
		{Kind: config.SourceSRD},
	}, cfg.Catalogs)
}

func (s *ConfigTestSuite) TestEnvironmentOverrides() {
	path := s.write("companion.toml", `
[server]
port = 6000

[[catalogs]]
kind = "pack"
path = "packs/items.json"
`)
	s.T().Setenv("COMPANION_GRPC_PORT", "7000")
	s.T().Setenv("COMPANION_REDIS_ENDPOINTS", "one:6379,two:6379")
	s.T().Setenv("COMPANION_CACHE_TTL", "1h")
	s.T().Setenv("COMPANION_LOG_LEVEL", "warn")
	s.T().Setenv("COMPANION_SHEET_FORMAT", "json")
	s.T().Setenv("COMPANION_SHEET_TEMPLATE", "sheets/override.pdf")
	s.T().Setenv("COMPANION_CATALOGS_0_PATH", "packs/override.json")
	s.T().Setenv("COMPANION_CATALOGS_1_KIND", "sqlite")
	s.T().Setenv("COMPANION_CATALOGS_1_PATH", "packs/items.db")

	cfg, err := config.Load(path)

	s.Require().NoError(err)
	s.Equal(7000, cfg.Server.Port)
	s.Equal([]string{"one:6379", "two:6379"}, cfg.Redis.Endpoints)
	s.Equal(time.Hour, cfg.Redis.CacheTTL.Std())
	s.Equal(slog.LevelWarn, cfg.SlogLevel())
	s.Equal(config.SheetJSON, cfg.Sheet.Format)
	s.Equal("sheets/override.pdf", cfg.Sheet.TemplatePath)
	s.Require().Len(cfg.Catalogs, 2)
	s.Equal(config.CatalogSource{Kind: config.SourcePack, Path: "packs/override.json"}, cfg.Catalogs[0])
	s.Equal(config.CatalogSource{Kind: config.SourceSQLite, Path: "packs/items.db"}, cfg.Catalogs[1])
}

func (s *ConfigTestSuite) TestLoadErrors() {
	testCases := []struct {
		name     string
		content  string
		path     string
		checkErr func(error) bool
		contains string
	}{
		{
			name:     "explicit file missing",
			path:     filepath.Join(s.T().TempDir(), "missing.toml"),
			checkErr: errors.IsNotFound,
		},
		{
			name:     "malformed toml",
			content:  "[server\nport = 1",
			checkErr: errors.IsInvalidArgument,
		},
		{
			name:     "bad duration",
			content:  "[redis]\ncache_ttl = \"soon\"",
			checkErr: errors.IsInvalidArgument,
		},
		{
			name:     "port out of range",
			content:  "[server]\nport = 70000",
			checkErr: errors.IsInvalidArgument,
			contains: "server.port",
		},
		{
			name:     "unknown log level",
			content:  "[log]\nlevel = \"chatty\"",
			checkErr: errors.IsInvalidArgument,
			contains: "log.level",
		},
		{
			name:     "unknown sheet format",
			content:  "[sheet]\nformat = \"docx\"",
			checkErr: errors.IsInvalidArgument,
			contains: "sheet.format",
		},
		{
			name:     "pack without path",
			content:  "[[catalogs]]\nkind = \"pack\"",
			checkErr: errors.IsInvalidArgument,
			contains: "catalogs[0].path",
		},
		{
			name:     "unknown kind",
			content:  "[[catalogs]]\nkind = \"scroll\"",
			checkErr: errors.IsInvalidArgument,
			contains: "catalogs[0].kind",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			path := tc.path
			if path == "" {
				path = s.write("bad.toml", tc.content)
			}

			cfg, err := config.Load(path)

			s.Require().Error(err)
			s.Nil(cfg)
			s.True(tc.checkErr(err), err.Error())
			if tc.contains != "" {
				s.Contains(err.Error(), tc.contains)
			}
		})
	}
}

func (s *ConfigTestSuite) TestDecodeErrorPosition() {
	cfg := config.Default()

	err := config.Decode([]byte("[server]\nport = \"abc"), cfg)

	s.Require().Error(err)
	var appErr *errors.Error
	s.Require().True(errors.As(err, &appErr))
	s.Contains(appErr.Meta, "row")
	s.Contains(appErr.Meta, "column")
}

func (s *ConfigTestSuite) TestOpenCatalogs() {
	items := []*actor.Item{{Name: "Longsword", Type: actor.ItemTypeWeapon}}
	data, err := json.Marshal(items)
	s.Require().NoError(err)
	packPath := s.write("items.json", string(data))

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	defer cleanup()

	cfg := config.Default()
	cfg.Catalogs = []config.CatalogSource{
		{Kind: config.SourcePack, Path: packPath, Cache: true},
		{Kind: config.SourceSQLite, Path: filepath.Join(s.dir, "items.db")},
		{Kind: config.SourceSRD},
	}

	catalogs, err := cfg.OpenCatalogs(client)

	s.Require().NoError(err)
	defer func() { s.NoError(catalogs.Close()) }()
	s.Require().Len(catalogs.List, 3)
	s.Equal("items", catalogs.List[0].Name())
	s.Equal("items", catalogs.List[1].Name())

	index, err := catalogs.List[0].GetIndex(s.T().Context(), nil)
	s.Require().NoError(err)
	s.Require().Len(index, 1)
	s.Equal("Longsword", index[0].Name)
}

func (s *ConfigTestSuite) TestOpenCatalogs_MissingPack() {
	cfg := config.Default()
	cfg.Catalogs = []config.CatalogSource{
		{Kind: config.SourceSQLite, Path: filepath.Join(s.dir, "first.db")},
		{Kind: config.SourcePack, Path: filepath.Join(s.dir, "nope.json")},
	}

	catalogs, err := cfg.OpenCatalogs(nil)

	s.Require().Error(err)
	s.Nil(catalogs)
	s.Contains(err.Error(), "catalog 1 (pack)")
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
