package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/salesboard/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.ChartWidth, convey.ShouldEqual, 960)
				convey.So(cfg.PreferenceTTLMinutes, convey.ShouldEqual, 43200)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("SALESBOARD_ADDR", ":8080")
			_ = os.Setenv("SALESBOARD_LOG_FORMAT", "json")
			_ = os.Setenv("SALESBOARD_CHART_WIDTH", "640")
			_ = os.Setenv("SALESBOARD_PREFERENCE_TTL_MINUTES", "60")
			_ = os.Setenv("SALESBOARD_DATA_FILE", "/tmp/dataset.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
				convey.So(cfg.ChartWidth, convey.ShouldEqual, 640)
				convey.So(cfg.ChartHeight, convey.ShouldEqual, 288)
				convey.So(cfg.PreferenceTTLMinutes, convey.ShouldEqual, 60)
				convey.So(cfg.DataFile, convey.ShouldEqual, "/tmp/dataset.yaml")
			})
		})

		convey.Convey("When metrics settings come from the environment", func() {
			_ = os.Setenv("SALESBOARD_METRICS_ENABLED", "false")
			_ = os.Setenv("SALESBOARD_METRICS_NAMESPACE", "shop")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then they should be applied", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.MetricsEnabled, convey.ShouldBeFalse)
				convey.So(cfg.MetricsNamespace, convey.ShouldEqual, "shop")
				convey.So(cfg.MetricsSubsystem, convey.ShouldEqual, "dashboard")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
# dashboard settings
addr: ":9090"  # inline comment
client_cookie: sb_id
chart_width: 800
chart_height: 300
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("SALESBOARD_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file and keep other defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.ClientCookie, convey.ShouldEqual, "sb_id")
				convey.So(cfg.ChartWidth, convey.ShouldEqual, 800)
				convey.So(cfg.ChartHeight, convey.ShouldEqual, 300)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			tmpFile := createTempConfigFile("addr: \":9090\"\nchart_width: 800\n")
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("SALESBOARD_CONFIG", tmpFile)
			_ = os.Setenv("SALESBOARD_ADDR", ":8080")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.ChartWidth, convey.ShouldEqual, 800)
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("SALESBOARD_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("SALESBOARD_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("SALESBOARD_CHART_WIDTH", "wide")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func TestConfigValidation(t *testing.T) {
	convey.Convey("Given config validation", t, func() {
		ctx := context.Background()

		cases := map[string]map[string]string{
			"empty addr":        {"SALESBOARD_ADDR": ""},
			"empty cookie":      {"SALESBOARD_CLIENT_COOKIE": ""},
			"zero ttl":          {"SALESBOARD_PREFERENCE_TTL_MINUTES": "0"},
			"negative width":    {"SALESBOARD_CHART_WIDTH": "-1"},
			"zero height":       {"SALESBOARD_CHART_HEIGHT": "0"},
			"unknown logformat": {"SALESBOARD_LOG_FORMAT": "xml"},
			"zero toggle rate":  {"SALESBOARD_TOGGLE_RATE_PER_SECOND": "0"},
			"negative burst":    {"SALESBOARD_TOGGLE_BURST": "-2"},
			"dashed namespace":  {"SALESBOARD_METRICS_NAMESPACE": "sales-board"},
			"empty subsystem":   {"SALESBOARD_METRICS_SUBSYSTEM": ""},
		}
		for name, env := range cases {
			convey.Convey("When loading config with "+name, func() {
				for k, v := range env {
					_ = os.Setenv(k, v)
				}
				defer clearConfigEnvVars()

				cfg, err := config.Load(ctx)

				convey.Convey("Then it should return a validation error", func() {
					convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
					convey.So(cfg, convey.ShouldBeNil)
				})
			})
		}
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"SALESBOARD_CONFIG",
		"SALESBOARD_ADDR",
		"SALESBOARD_LOG_LEVEL",
		"SALESBOARD_LOG_FORMAT",
		"SALESBOARD_DATA_FILE",
		"SALESBOARD_CLIENT_COOKIE",
		"SALESBOARD_PREFERENCE_TTL_MINUTES",
		"SALESBOARD_CHART_WIDTH",
		"SALESBOARD_CHART_HEIGHT",
		"SALESBOARD_TOGGLE_RATE_PER_SECOND",
		"SALESBOARD_TOGGLE_BURST",
		"SALESBOARD_METRICS_ENABLED",
		"SALESBOARD_METRICS_NAMESPACE",
		"SALESBOARD_METRICS_SUBSYSTEM",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "salesboard-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
