// Package clientip provides an HTTP middleware that resolves the client IP
// address of each incoming request once and stores it in the request context.
//
// By default the address is the connection peer (user.IP). Behind a reverse
// proxy, WithTrustedHeaders switches to user.ForwardedIP, which honours
// X-Forwarded-For and X-Real-IP. Handlers further down the chain read the
// address back with GetIP. Optionally it is echoed in a response header.
//
// Example usage:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//		"log/slog"
//		"net/http"
//
//		"github.com/paccolamano/helpers/handlers/clientip"
//	)
//
//	func main() {
//		mux := http.NewServeMux()
//
//		myHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//			fmt.Fprintf(w, "your ip: %s\n", clientip.GetIP(r))
//		})
//
//		// Default middleware
//		mux.Handle("/api", clientip.New()(myHandler))
//
//		// Behind a proxy: trust forwarding headers, echo the address and
//		// warn when it cannot be resolved
//		mux.Handle("/debug", clientip.New(
//			clientip.WithTrustedHeaders(true),
//			clientip.WithHeaderKey("X-Client-IP"),
//			clientip.WithLogLevel(slog.LevelWarn),
//		)(myHandler))
//
//		log.Fatal(http.ListenAndServe(":8080", mux))
//	}
package clientip

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/paccolamano/helpers/user"
)

// Logger defines the minimal logging interface required by this handler.
// It matches log/slog.Logger's LogAttrs method, but allows plugging in custom loggers.
type Logger interface {
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
}

type clientIPKey string

const defaultClientIPKey clientIPKey = "clientIP"

// config holds configuration options for the client IP handler.
type config struct {
	contextKey     any
	headerKey      string
	trustedHeaders bool
	logger         Logger
	level          slog.Level
}

// Option represents a functional option for configuring the client IP handler.
type Option func(*config)

// WithContextKey sets a custom context key under which the address is stored.
func WithContextKey(key any) Option {
	return func(c *config) {
		c.contextKey = key
	}
}

// WithHeaderKey sets a response header that receives the resolved address.
// By default no header is written.
func WithHeaderKey(key string) Option {
	return func(c *config) {
		c.headerKey = key
	}
}

// WithTrustedHeaders makes the handler read the client address from
// forwarding headers set by a reverse proxy. Only enable it when every request
// passes through a proxy that overwrites those headers. Default is false.
func WithTrustedHeaders(trusted bool) Option {
	return func(c *config) {
		c.trustedHeaders = trusted
	}
}

// WithLogger sets a custom Logger. Defaults to slog.Default().
func WithLogger(l Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithLogLevel sets the level used to log requests whose address cannot be
// resolved. Defaults to slog.LevelDebug.
func WithLogLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// New returns a handler that resolves the client IP address of every request
// and stores it in the request context.
//
// Requests without a usable address are passed on with an empty address and
// logged together with their RemoteAddr.
//
// Example:
//
//	http.Handle("/api", New(WithContextKey("ip"))(yourHandler))
func New(opts ...Option) func(http.Handler) http.Handler {
	c := &config{
		contextKey: defaultClientIPKey,
		logger:     slog.Default(),
		level:      slog.LevelDebug,
	}

	for _, opt := range opts {
		opt(c)
	}

	resolve := user.IP
	if c.trustedHeaders {
		resolve = user.ForwardedIP
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := resolve(r)
			if ip == "" {
				c.logger.LogAttrs(r.Context(), c.level, "unable to resolve client ip",
					slog.String("remoteAddr", r.RemoteAddr),
					slog.String("path", r.URL.Path),
				)
			} else if c.headerKey != "" {
				w.Header().Set(c.headerKey, ip)
			}

			ctx := context.WithValue(r.Context(), c.contextKey, ip)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIP retrieves the address stored in the request context by New with the
// default key. It returns an empty string if nothing was stored.
func GetIP(r *http.Request) string {
	return getIP(r, defaultClientIPKey)
}

// GetIPWithKey retrieves the address stored in the request context by New
// with the given key. It returns an empty string if nothing was stored.
func GetIPWithKey(r *http.Request, key any) string {
	return getIP(r, key)
}

func getIP(r *http.Request, key any) string {
	if r == nil {
		return ""
	}

	ip, _ := r.Context().Value(key).(string)

	return ip
}
