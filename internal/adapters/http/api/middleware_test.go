package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("Given response status codes", t, func() {
		Convey("Then successes and redirects should not count as errors", func() {
			for _, code := range []int{http.StatusOK, http.StatusSeeOther} {
				_, failed := classify(code)
				So(failed, ShouldBeFalse)
			}
		})

		Convey("And failures should map to their class", func() {
			cases := map[int]errorClass{
				http.StatusBadRequest:          {kind: "client_error", severity: "medium"},
				http.StatusNotFound:            {kind: "not_found", severity: "low"},
				http.StatusUnprocessableEntity: {kind: "unprocessable", severity: "medium"},
				http.StatusTooManyRequests:     {kind: "rate_limit", severity: "low"},
				http.StatusInternalServerError: {kind: "server_error", severity: "high"},
				http.StatusServiceUnavailable:  {kind: "unavailable", severity: "high"},
			}
			for code, want := range cases {
				got, failed := classify(code)
				So(failed, ShouldBeTrue)
				So(got, ShouldResemble, want)
			}
		})
	})
}

func TestMetricsMiddleware(t *testing.T) {
	Convey("Given a handler wrapped in the metrics middleware", t, func() {
		h := MetricsMiddleware(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("short and stout"))
		}, "teapot")

		Convey("When it is served", func() {
			w := httptest.NewRecorder()
			h(w, httptest.NewRequest("GET", "/teapot", nil))

			Convey("Then the first status and the body should pass through", func() {
				So(w.Code, ShouldEqual, http.StatusTeapot)
				So(w.Body.String(), ShouldEqual, "short and stout")
			})
		})

		Convey("When the recorder sees a body before any header", func() {
			rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
			_, _ = rec.Write([]byte("x"))
			rec.WriteHeader(http.StatusInternalServerError)

			Convey("Then the implicit 200 should be kept", func() {
				So(rec.status, ShouldEqual, http.StatusOK)
			})
		})
	})
}
