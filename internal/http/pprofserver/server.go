package pprofserver

import (
	"crypto/subtle"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Config stores debug server settings. Empty Addr disables the server.
type Config struct {
	Addr string
	User string
	Pass string
}

// Handler serves the runtime profiles under /debug/pprof. Loopback clients
// are always allowed; others need basic auth, and are refused when no
// credentials are configured.
func Handler(cfg Config) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler { return authOrLocalOnly(next, cfg) })
	r.Mount("/debug", middleware.Profiler())
	return r
}

// NewServer returns the debug server, or nil when cfg.Addr is empty.
func NewServer(cfg Config) *http.Server {
	if strings.TrimSpace(cfg.Addr) == "" {
		return nil
	}
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           Handler(cfg),
		ReadHeaderTimeout: 5 * time.Second,
		// profile and trace stream for up to their "seconds" parameter
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  time.Minute,
	}
}

func authOrLocalOnly(next http.Handler, cfg Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isLoopback(r.RemoteAddr) {
			next.ServeHTTP(w, r)
			return
		}
		u, p, ok := r.BasicAuth()
		if cfg.User == "" || cfg.Pass == "" || !ok || !secureEq(u, cfg.User) || !secureEq(p, cfg.Pass) {
			w.Header().Set("WWW-Authenticate", `Basic realm="pprof"`)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func secureEq(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func isLoopback(remoteAddr string) bool {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	ip := net.ParseIP(strings.TrimSpace(host))
	return ip != nil && ip.IsLoopback()
}
