package user

import (
	"net/http"
	"net/netip"
	"strings"
)

// Localhost is the address returned by LocalIP when no client address is known.
const Localhost = "127.0.0.1"

// IP returns the address of the peer that opened the connection, taken from
// r.RemoteAddr, or an empty string if it cannot be determined.
//
// Forwarding headers are ignored. Use ForwardedIP behind a proxy that sets
// them.
func IP(r *http.Request) string {
	if r == nil {
		return ""
	}

	return remoteAddr(r.RemoteAddr)
}

// ForwardedIP returns the client address reported by a reverse proxy.
//
// Lookup order:
//  1. X-Forwarded-For (first valid entry)
//  2. X-Real-IP
//  3. RemoteAddr
//
// Clients can send these headers themselves, so only call ForwardedIP when
// every request passes through a proxy that overwrites them.
func ForwardedIP(r *http.Request) string {
	if r == nil {
		return ""
	}

	for _, entry := range strings.Split(r.Header.Get("X-Forwarded-For"), ",") {
		if addr, ok := normalize(entry); ok {
			return addr
		}
	}

	if addr, ok := normalize(r.Header.Get("X-Real-IP")); ok {
		return addr
	}

	return remoteAddr(r.RemoteAddr)
}

// LocalIP is like IP but returns Localhost when r is nil or carries no usable
// address, which is the case for requests built outside of an HTTP server.
func LocalIP(r *http.Request) string {
	if ip := IP(r); ip != "" {
		return ip
	}

	return Localhost
}

// remoteAddr accepts both "host:port" and a bare address.
func remoteAddr(s string) string {
	if ap, err := netip.ParseAddrPort(s); err == nil {
		return ap.Addr().Unmap().String()
	}

	addr, _ := normalize(s)

	return addr
}

func normalize(s string) (string, bool) {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return "", false
	}

	return addr.Unmap().String(), true
}
