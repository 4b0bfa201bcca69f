package config_test

import (
	"testing"

	"github.com/okian/salesboard/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.DataFile, convey.ShouldEqual, "")
			convey.So(cfg.ClientCookie, convey.ShouldEqual, "salesboard_client")
			convey.So(cfg.PreferenceTTLMinutes, convey.ShouldEqual, 43200)
			convey.So(cfg.ChartWidth, convey.ShouldEqual, 960)
			convey.So(cfg.ChartHeight, convey.ShouldEqual, 288)
			convey.So(cfg.ToggleRatePerSecond, convey.ShouldEqual, 3.0)
			convey.So(cfg.ToggleBurst, convey.ShouldEqual, 5)
			convey.So(cfg.MetricsEnabled, convey.ShouldBeTrue)
			convey.So(cfg.MetricsNamespace, convey.ShouldEqual, "salesboard")
			convey.So(cfg.MetricsSubsystem, convey.ShouldEqual, "dashboard")
		})

		convey.Convey("And the defaults should validate", func() {
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}
