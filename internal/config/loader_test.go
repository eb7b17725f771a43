package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/mondialsim/mondial/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"MONDIAL_CONFIG",
		"MONDIAL_LOG_LEVEL",
		"MONDIAL_RUNS",
		"MONDIAL_WORKER_COUNT",
		"MONDIAL_SEED",
		"MONDIAL_FINAL_COMMENTARY",
	} {
		_ = os.Unsetenv(key)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.Runs, convey.ShouldEqual, 1000)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, runtime.NumCPU())
				convey.So(cfg.Seed, convey.ShouldEqual, 1)
				convey.So(cfg.FinalCommentary, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("MONDIAL_LOG_LEVEL", "debug")
			_ = os.Setenv("MONDIAL_RUNS", "250")
			_ = os.Setenv("MONDIAL_WORKER_COUNT", "3")
			_ = os.Setenv("MONDIAL_SEED", "42")
			_ = os.Setenv("MONDIAL_FINAL_COMMENTARY", "true")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.Runs, convey.ShouldEqual, 250)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 3)
				convey.So(cfg.Seed, convey.ShouldEqual, 42)
				convey.So(cfg.FinalCommentary, convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config from a YAML file", func() {
			clearConfigEnvVars()

			dir := t.TempDir()
			path := filepath.Join(dir, "mondial.yaml")
			content := "log_level: warn\nruns: 5000\nseed: 9\n"
			err := os.WriteFile(path, []byte(content), 0o600)
			convey.So(err, convey.ShouldBeNil)

			_ = os.Setenv("MONDIAL_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.Runs, convey.ShouldEqual, 5000)
				convey.So(cfg.Seed, convey.ShouldEqual, 9)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, runtime.NumCPU())
			})

			convey.Convey("And env vars still win over the file", func() {
				_ = os.Setenv("MONDIAL_RUNS", "77")

				cfg, err := config.Load(ctx)

				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Runs, convey.ShouldEqual, 77)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
			})
		})

		convey.Convey("When the config file is missing", func() {
			clearConfigEnvVars()
			_ = os.Setenv("MONDIAL_CONFIG", "/nonexistent/mondial.yaml")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then it should report a load failure", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the run count is invalid", func() {
			clearConfigEnvVars()
			_ = os.Setenv("MONDIAL_RUNS", "0")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then it should reject the config", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}
