package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/okian/salesboard/internal/domain/types"
)

// ThemeDependencies defines the interface for color scheme operations.
type ThemeDependencies interface {
	Theme(ctx context.Context, c types.Client) types.ThemeState
	ToggleTheme(ctx context.Context, c types.Client) types.ThemeState
}

// ThemeHandler handles theme requests.
type ThemeHandler struct {
	deps    ThemeDependencies
	clients *clientResolver
	limiter *clientLimiter
}

// NewThemeHandler creates a new theme handler.
func NewThemeHandler(deps ThemeDependencies, clients *clientResolver, limiter *clientLimiter) *ThemeHandler {
	return &ThemeHandler{deps: deps, clients: clients, limiter: limiter}
}

// HandleGetTheme handles GET /api/theme requests.
func (h *ThemeHandler) HandleGetTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	client, _ := h.clients.resolve(w, r)
	writeJSON(w, http.StatusOK, h.deps.Theme(r.Context(), client))
}

// HandleToggle handles POST /api/theme/toggle requests.
func (h *ThemeHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	client, ok := h.admit(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.deps.ToggleTheme(r.Context(), client))
}

// HandleToggleForm handles POST /theme/toggle form submissions and
// redirects back to the page named by the return field.
func (h *ThemeHandler) HandleToggleForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	client, ok := h.admit(w, r)
	if !ok {
		return
	}
	h.deps.ToggleTheme(r.Context(), client)
	http.Redirect(w, r, localPath(r.PostForm.Get("return")), http.StatusSeeOther)
}

// admit resolves the toggling client and applies the throttle. A request
// without a known id toggles anonymously and is throttled by peer address,
// so nothing is stored for ids the server just made up.
func (h *ThemeHandler) admit(w http.ResponseWriter, r *http.Request) (types.Client, bool) {
	client, known := h.clients.resolve(w, r)
	key := client.ID
	if !known {
		client.ID = ""
		key = remoteKey(r)
	}
	if !h.limiter.allow(key) {
		writeError(w, http.StatusTooManyRequests, "rate_limited", ErrRateLimited)
		return client, false
	}
	return client, true
}

// localPath returns v if it is a path on this host, or "/" otherwise.
func localPath(v string) string {
	if v == "" || !strings.HasPrefix(v, "/") || strings.HasPrefix(v, "//") || strings.ContainsAny(v, "\\\r\n") {
		return "/"
	}
	u, err := url.Parse(v)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/"
	}
	return u.RequestURI()
}
