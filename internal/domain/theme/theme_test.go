package theme_test

import (
	"testing"

	"github.com/okian/salesboard/internal/domain/theme"
	. "github.com/smartystreets/goconvey/convey"
)

func TestResolve(t *testing.T) {
	Convey("Given a stored preference and an OS preference", t, func() {
		Convey("When a preference is stored", func() {
			So(theme.Resolve("dark", false), ShouldEqual, theme.Dark)
			So(theme.Resolve("light", true), ShouldEqual, theme.Light)
			So(theme.Resolve(" DARK ", false), ShouldEqual, theme.Dark)
		})

		Convey("When nothing usable is stored", func() {
			So(theme.Resolve("", true), ShouldEqual, theme.Dark)
			So(theme.Resolve("", false), ShouldEqual, theme.Light)
			So(theme.Resolve("sepia", true), ShouldEqual, theme.Dark)
		})
	})
}

func TestToggle(t *testing.T) {
	Convey("Given a theme", t, func() {
		So(theme.Toggle(theme.Light), ShouldEqual, theme.Dark)
		So(theme.Toggle(theme.Dark), ShouldEqual, theme.Light)
		So(theme.Toggle(theme.Toggle(theme.Dark)), ShouldEqual, theme.Dark)

		Convey("When the theme is unknown", func() {
			So(func() { theme.Toggle(theme.Theme("sepia")) }, ShouldPanic)
		})
	})
}

func TestIcons(t *testing.T) {
	Convey("Given the toggle icons", t, func() {
		Convey("Then dark shows the light icon", func() {
			So(theme.IconsFor(theme.Dark), ShouldResemble, theme.Icons{DarkIconHidden: true, LightIconHidden: false})
		})

		Convey("And light shows the dark icon", func() {
			So(theme.IconsFor(theme.Light), ShouldResemble, theme.Icons{DarkIconHidden: false, LightIconHidden: true})
		})

		Convey("And toggling flips both flags", func() {
			before := theme.IconsFor(theme.Light)
			after := theme.IconsFor(theme.Toggle(theme.Light))
			So(after.DarkIconHidden, ShouldEqual, !before.DarkIconHidden)
			So(after.LightIconHidden, ShouldEqual, !before.LightIconHidden)
		})
	})
}
