package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	sharedcfg "github.com/leapstack-labs/leapconn/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	// Import dialect packages to ensure dialects are registered via init()
	_ "github.com/leapstack-labs/leapconn/pkg/dialects/duckdb"
	_ "github.com/leapstack-labs/leapconn/pkg/dialects/mysql"
	_ "github.com/leapstack-labs/leapconn/pkg/dialects/postgres"
	_ "github.com/leapstack-labs/leapconn/pkg/dialects/snowflake"
	_ "github.com/leapstack-labs/leapconn/pkg/dialects/sqlite"
)

const testdataDir = "../testdata"

// TestExpandEnvVars tests the expandEnvVars function.
func TestExpandEnvVars(t *testing.T) {
	t.Setenv("LEAPCONN_TEST_VAR", "test_value")
	t.Setenv("LEAPCONN_TEST_EMPTY", "")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "no variables", input: "plain string", expected: "plain string"},
		{name: "single variable", input: "${LEAPCONN_TEST_VAR}", expected: "test_value"},
		{name: "embedded variable", input: "prefix_${LEAPCONN_TEST_VAR}_suffix", expected: "prefix_test_value_suffix"},
		{name: "multiple variables", input: "${LEAPCONN_TEST_VAR}:${LEAPCONN_TEST_VAR}", expected: "test_value:test_value"},
		{name: "unset variable kept", input: "${LEAPCONN_TEST_UNSET_XYZ}", expected: "${LEAPCONN_TEST_UNSET_XYZ}"},
		{name: "empty variable kept", input: "${LEAPCONN_TEST_EMPTY}", expected: "${LEAPCONN_TEST_EMPTY}"},
		{name: "bare dollar untouched", input: "$LEAPCONN_TEST_VAR", expected: "$LEAPCONN_TEST_VAR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandEnvVars(tt.input))
		})
	}
}

// TestMergeTargetConfig tests the MergeTargetConfig function.
func TestMergeTargetConfig(t *testing.T) {
	t.Run("nil base returns override", func(t *testing.T) {
		override := &TargetConfig{Type: "duckdb", Database: "test.db"}
		assert.Equal(t, override, MergeTargetConfig(nil, override))
	})

	t.Run("nil override returns base", func(t *testing.T) {
		base := &TargetConfig{Type: "duckdb", Database: "test.db"}
		assert.Equal(t, base, MergeTargetConfig(base, nil))
	})

	t.Run("both nil returns nil", func(t *testing.T) {
		assert.Nil(t, MergeTargetConfig(nil, nil))
	})

	t.Run("override replaces base fields", func(t *testing.T) {
		base := &TargetConfig{
			Type:      "SNOWFLAKEHV",
			Host:      "acme.snowflakecomputing.com",
			Database:  "ANALYTICS",
			Warehouse: "COMPUTE_WH",
		}
		override := &TargetConfig{
			Database:  "STAGING",
			Warehouse: "LOAD_WH",
			Access:    "odbc",
		}

		result := MergeTargetConfig(base, override)

		assert.Equal(t, "SNOWFLAKEHV", result.Type, "Type should be inherited from base")
		assert.Equal(t, "acme.snowflakecomputing.com", result.Host, "Host should be inherited from base")
		assert.Equal(t, "STAGING", result.Database, "Database should be from override")
		assert.Equal(t, "LOAD_WH", result.Warehouse, "Warehouse should be from override")
		assert.Equal(t, "odbc", result.Access, "Access should be from override")
	})

	t.Run("options and attributes are merged", func(t *testing.T) {
		base := &TargetConfig{
			Options:    map[string]string{"key1": "base_value1", "key2": "base_value2"},
			Attributes: map[string]any{"a": 1},
		}
		override := &TargetConfig{
			Options:    map[string]string{"key2": "override_value2", "key3": "override_value3"},
			Attributes: map[string]any{"b": true},
		}

		result := MergeTargetConfig(base, override)

		assert.Equal(t, map[string]string{
			"key1": "base_value1",
			"key2": "override_value2",
			"key3": "override_value3",
		}, result.Options)
		assert.Equal(t, map[string]any{"a": 1, "b": true}, result.Attributes)

		// base is left untouched
		assert.Equal(t, "base_value2", base.Options["key2"])
	})
}

// TestLoadConfig_Fixtures tests LoadConfig using fixture files.
func TestLoadConfig_Fixtures(t *testing.T) {
	t.Run("snowflake config with env expansion", func(t *testing.T) {
		ResetConfig()
		t.Setenv("LEAPCONN_TEST_USER", "loader")
		t.Setenv("LEAPCONN_TEST_PASSWORD", "s3cret")

		cfgPath := filepath.Join(testdataDir, "valid_snowflake.yaml")
		cfg, err := LoadConfig(cfgPath, nil)
		require.NoError(t, err)

		assert.Equal(t, cfgPath, GetConfigFileUsed())
		assert.Same(t, cfg, GetCurrentConfig())
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, DefaultOutput, cfg.OutputFormat)

		target, err := cfg.Target("")
		require.NoError(t, err)
		assert.Equal(t, "SNOWFLAKEHV", target.Type)
		assert.Equal(t, 443, target.Port)
		assert.Equal(t, "native", target.Access)
		assert.Equal(t, "loader", target.User)
		assert.Equal(t, "s3cret", target.Password)
		assert.Equal(t, "COMPUTE_WH", target.Warehouse)
		assert.Equal(t, map[string]string{"tracing": "ALL"}, target.Options)

		odbc, err := cfg.Target("odbc")
		require.NoError(t, err)
		assert.Equal(t, "odbc", odbc.Access)
	})

	t.Run("multiple targets", func(t *testing.T) {
		ResetConfig()
		cfg, err := LoadConfig(filepath.Join(testdataDir, "multi_target.yaml"), nil)
		require.NoError(t, err)

		assert.Equal(t, "json", cfg.OutputFormat)
		assert.Equal(t, []string{"app", "lite", "local", "shop"}, cfg.TargetNames())

		assert.Equal(t, "DUCKDB", cfg.Targets["local"].Type)
		assert.Equal(t, "POSTGRESQL", cfg.Targets["app"].Type)
		assert.Equal(t, 5432, cfg.Targets["app"].Port)
		assert.Equal(t, 3307, cfg.Targets["shop"].Port, "explicit port is kept")

		conn, err := sharedcfg.ToConnection(cfg.Targets["lite"])
		require.NoError(t, err)
		assert.Equal(t, "5000", conn.Attributes["busy_timeout"])
		assert.Equal(t, "true", conn.Attributes["foreign_keys"])
	})

	t.Run("unknown target", func(t *testing.T) {
		ResetConfig()
		cfg, err := LoadConfig(filepath.Join(testdataDir, "multi_target.yaml"), nil)
		require.NoError(t, err)

		_, err = cfg.Target("nope")
		require.ErrorIs(t, err, sharedcfg.ErrUnknownTarget)
		assert.Contains(t, err.Error(), "app")
	})

	t.Run("invalid dialect type", func(t *testing.T) {
		ResetConfig()
		_, err := LoadConfig(filepath.Join(testdataDir, "invalid_type.yaml"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `target "bad"`)
		assert.Contains(t, err.Error(), "ORACLE")
	})

	t.Run("undefined default target", func(t *testing.T) {
		ResetConfig()
		_, err := LoadConfig(filepath.Join(testdataDir, "invalid_default.yaml"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `default_target "missing"`)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		ResetConfig()
		_, err := LoadConfig(filepath.Join(testdataDir, "does_not_exist.yaml"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config file")
	})
}

// TestLoadConfig_NoFile checks that defaults apply without any config file.
func TestLoadConfig_NoFile(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Empty(t, GetConfigFileUsed())
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Empty(t, cfg.Targets)
}

// TestLoadConfig_DiscoversFileUpward checks the upward search from the working directory.
func TestLoadConfig_DiscoversFileUpward(t *testing.T) {
	ResetConfig()
	root := t.TempDir()
	content := "targets:\n  local:\n    type: sqlite\n    database: app.db\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "leapconn.yaml"), []byte(content), 0o600))
	nested := filepath.Join(root, "sub", "dir")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	t.Chdir(nested)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "leapconn.yaml"), GetConfigFileUsed())
	assert.Contains(t, cfg.Targets, "local")
}

// TestLoadConfig_EnvPrecedenceOverFile tests that env vars override config file values.
func TestLoadConfig_EnvPrecedenceOverFile(t *testing.T) {
	ResetConfig()
	t.Setenv("LEAPCONN_LOG_LEVEL", "debug")
	t.Setenv("LEAPCONN_TARGETS__APP__PORT", "6543")

	cfg, err := LoadConfig(filepath.Join(testdataDir, "multi_target.yaml"), nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel, "env var should override default")
	assert.Equal(t, 6543, cfg.Targets["app"].Port, "env var should override file")
}

// TestLoadConfig_FlagPrecedence tests that explicitly set flags override env and file.
func TestLoadConfig_FlagPrecedence(t *testing.T) {
	ResetConfig()
	t.Setenv("LEAPCONN_LOG_LEVEL", "debug")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "", "")
	flags.String("output", "", "")
	require.NoError(t, flags.Parse([]string{"--log-level=error"}))

	cfg, err := LoadConfig(filepath.Join(testdataDir, "multi_target.yaml"), flags)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.LogLevel, "flag should override env var")
	assert.Equal(t, "json", cfg.OutputFormat, "unset flag should not override file")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		errSubstr []string
	}{
		{
			name: "valid",
			cfg: Config{
				LogLevel:     "warn",
				OutputFormat: "auto",
				Targets:      map[string]*TargetConfig{"a": {Type: "SQLITE"}},
			},
		},
		{
			name:      "bad log level and output",
			cfg:       Config{LogLevel: "loud", OutputFormat: "xml"},
			errSubstr: []string{"invalid log_level", "invalid output format"},
		},
		{
			name: "bad access type",
			cfg: Config{
				LogLevel: "info",
				Targets:  map[string]*TargetConfig{"a": {Type: "SQLITE", Access: "telepathy"}},
			},
			errSubstr: []string{`target "a"`, "unknown access type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if len(tt.errSubstr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, s := range tt.errSubstr {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = ParseLogLevel("verbose")
	assert.Error(t, err)
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()), "fallback logger should not be nil")

	logger := slog.New(slog.DiscardHandler)
	ctx := context.WithValue(context.Background(), LoggerKey(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}
