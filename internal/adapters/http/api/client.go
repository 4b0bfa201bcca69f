package api

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okian/salesboard/internal/domain/types"
)

// prefersColorSchemeHint is the client hint carrying the OS color scheme.
const prefersColorSchemeHint = "Sec-CH-Prefers-Color-Scheme"

// clientResolver identifies browsers by a random id cookie.
type clientResolver struct {
	cookieName string
	maxAge     time.Duration
}

func newClientResolver(name string, maxAge time.Duration) *clientResolver {
	return &clientResolver{cookieName: name, maxAge: maxAge}
}

// resolve returns the client behind r, issuing a new id cookie when the
// request carries none or a malformed one. known is false for a freshly
// issued id.
func (c *clientResolver) resolve(w http.ResponseWriter, r *http.Request) (client types.Client, known bool) {
	w.Header().Set("Accept-CH", prefersColorSchemeHint)
	w.Header().Add("Vary", prefersColorSchemeHint)

	client = types.Client{PrefersDark: prefersDark(r)}
	if ck, err := r.Cookie(c.cookieName); err == nil {
		if id, err := uuid.Parse(ck.Value); err == nil {
			client.ID = id.String()
			return client, true
		}
	}

	client.ID = uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     c.cookieName,
		Value:    client.ID,
		Path:     "/",
		MaxAge:   int(c.maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return client, false
}

// remoteKey buckets requests without a known client id by peer address.
func remoteKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "addr:" + host
}

// prefersDark reads the structured-header string value of the hint.
func prefersDark(r *http.Request) bool {
	v := strings.Trim(strings.TrimSpace(r.Header.Get(prefersColorSchemeHint)), `"`)
	return strings.EqualFold(v, "dark")
}
