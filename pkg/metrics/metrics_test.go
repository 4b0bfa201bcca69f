package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When applying them to a manager", func() {
			registry := prometheus.NewRegistry()
			m := NewManager(
				WithNamespace("test_namespace"),
				WithSubsystem("test_subsystem"),
				WithMetricsEnabled(false),
				WithPrometheusRegistry(registry),
			)

			Convey("Then the manager should carry the configuration", func() {
				So(m.namespace, ShouldEqual, "test_namespace")
				So(m.subsystem, ShouldEqual, "test_subsystem")
				So(m.enabled, ShouldBeFalse)
			})

			Convey("And metric names should use namespace and subsystem", func() {
				m.themeToggles.WithLabelValues("dark").Inc()
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				found := false
				for _, f := range families {
					if f.GetName() == "test_namespace_test_subsystem_theme_toggles_total" {
						found = true
					}
				}
				So(found, ShouldBeTrue)
			})
		})

		Convey("When options carry empty values", func() {
			m := NewManager(
				WithNamespace(""),
				WithSubsystem(""),
				WithPrometheusRegistry(prometheus.NewRegistry()),
			)

			Convey("Then the defaults should be kept", func() {
				So(m.namespace, ShouldEqual, DefaultNamespace)
				So(m.subsystem, ShouldEqual, DefaultSubsystem)
				So(m.enabled, ShouldBeTrue)
			})
		})
	})
}

func TestConfigure(t *testing.T) {
	Convey("Given the global manager", t, func() {
		savedManager, savedRegistry := globalManager, customRegistry
		defer func() { globalManager, customRegistry = savedManager, savedRegistry }()

		Convey("When configuring a different namespace", func() {
			Configure(WithNamespace("shop"), WithSubsystem("board"))
			RecordHTTPRequest("kpis", "GET", "200")
			families, err := GetRegistry().Gather()

			Convey("Then the served registry should carry the new names only", func() {
				So(err, ShouldBeNil)
				So(GetRegistry(), ShouldNotEqual, savedRegistry)
				So(len(families), ShouldBeGreaterThan, 0)
				for _, f := range families {
					So(strings.HasPrefix(f.GetName(), "shop_board_"), ShouldBeTrue)
				}
			})
		})

		Convey("When configuring metrics off", func() {
			Configure(WithMetricsEnabled(false))
			RecordThemeToggle("dark")

			Convey("Then toggles should not be counted", func() {
				So(testutil.ToFloat64(globalManager.themeToggles.WithLabelValues("dark")), ShouldEqual, 0)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording view metrics", func() {
			before := testutil.ToFloat64(globalManager.dashboardRenders.WithLabelValues("detail"))
			RecordDashboardRender("detail")
			RecordDashboardRender("detail")

			Convey("Then the render counter should advance", func() {
				So(testutil.ToFloat64(globalManager.dashboardRenders.WithLabelValues("detail")), ShouldEqual, before+2)
			})
		})

		Convey("When recording a roster filter", func() {
			before := testutil.ToFloat64(globalManager.rosterFilters.WithLabelValues("overperforming"))
			RecordRosterFilter("overperforming", 3)
			So(testutil.ToFloat64(globalManager.rosterFilters.WithLabelValues("overperforming")), ShouldEqual, before+1)
		})

		Convey("When recording chart renders", func() {
			before := testutil.ToFloat64(globalManager.chartRenders.WithLabelValues("Sales", "full"))
			errsBefore := testutil.ToFloat64(globalManager.chartRenderErrors)
			RecordChartRender("Sales", "full", 3.5)
			RecordChartRenderError()
			So(testutil.ToFloat64(globalManager.chartRenders.WithLabelValues("Sales", "full")), ShouldEqual, before+1)
			So(testutil.ToFloat64(globalManager.chartRenderErrors), ShouldEqual, errsBefore+1)
		})

		Convey("When recording theme and preference metrics", func() {
			RecordThemeToggle("light")
			UpdatePreferenceEntries(7)
			UpdateDatasetRows("roster", 5)
			So(testutil.ToFloat64(globalManager.preferenceEntries), ShouldEqual, 7)
			So(testutil.ToFloat64(globalManager.datasetRows.WithLabelValues("roster")), ShouldEqual, 5)
		})

		Convey("When recording an error by component", func() {
			before := testutil.ToFloat64(globalManager.errorRateByComponent.WithLabelValues("chart", "render"))
			RecordErrorByComponent("chart", "render")
			So(testutil.ToFloat64(globalManager.errorRateByComponent.WithLabelValues("chart", "render")), ShouldEqual, before+1)
		})

		Convey("When recording HTTP, error and system metrics", func() {
			So(func() {
				RecordHTTPRequest("roster", "GET", "200")
				RecordHTTPRequestDuration("roster", "GET", "200", 1.5)
				RecordErrorByType("client_error", "medium")
				RecordErrorByEndpoint("roster", "GET", "client_error")
				RecordErrorLatency("http", "client_error", 2)
				UpdateSystemMemoryUsage(1 << 20)
				UpdateSystemGoroutineCount(12)
				RecordSystemGCPauseTime(0.3)
			}, ShouldNotPanic)
		})

		Convey("When gathering the custom registry", func() {
			RecordHTTPRequest("kpis", "GET", "200")
			families, err := GetRegistry().Gather()
			So(err, ShouldBeNil)

			Convey("Then every family should be in the salesboard namespace", func() {
				So(len(families), ShouldBeGreaterThan, 0)
				for _, f := range families {
					So(strings.HasPrefix(f.GetName(), "salesboard_dashboard_"), ShouldBeTrue)
				}
			})
		})
	})
}

func TestMetricsDisabled(t *testing.T) {
	Convey("Given a disabled global manager", t, func() {
		saved := globalManager
		globalManager = NewManager(WithMetricsEnabled(false), WithPrometheusRegistry(prometheus.NewRegistry()))
		defer func() { globalManager = saved }()

		Convey("When recording view metrics", func() {
			RecordDashboardRender("overview")
			RecordThemeToggle("dark")

			Convey("Then nothing should be counted", func() {
				So(testutil.ToFloat64(globalManager.dashboardRenders.WithLabelValues("overview")), ShouldEqual, 0)
				So(testutil.ToFloat64(globalManager.themeToggles.WithLabelValues("dark")), ShouldEqual, 0)
			})
		})
	})
}
