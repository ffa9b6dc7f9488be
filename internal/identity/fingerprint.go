// Package identity derives the client fingerprint that keys lead
// resolution. The fingerprint is the visitor's apparent IP address; it is
// an analytics identity, not an authentication mechanism.
package identity

import (
	"fmt"
	"hash/fnv"
	"net/http"
	"net/netip"
	"strings"
	"time"
)

// Environment gates behavior that must never run in production.
type Environment string

// DevFallback reports whether the synthetic loopback fingerprint variant
// is allowed. Only non-prod environments qualify, so production code paths
// cannot inherit it silently.
func (e Environment) DevFallback() bool {
	return e != "" && e != "prod"
}

// ClientFingerprint derives the lead fingerprint for an inbound request:
// the first X-Forwarded-For entry, else X-Real-IP, else loopback. In
// non-prod environments, where every local browser collapses onto
// loopback, the fingerprint is spread over 127.0.0.1–254 by hashing the
// user agent, accept-language and the current hour. That is a development
// convenience for telling local browsers apart; the bucket count is tiny
// and collisions are expected.
func ClientFingerprint(r *http.Request, env Environment) string {
	fp := remoteFingerprint(r)
	if env.DevFallback() && isLoopback(fp) {
		return loopbackVariant(r.UserAgent(), r.Header.Get("Accept-Language"), time.Now())
	}
	return fp
}

func remoteFingerprint(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	return "127.0.0.1"
}

func isLoopback(fp string) bool {
	addr, err := netip.ParseAddr(fp)
	return err == nil && addr.IsLoopback()
}

func loopbackVariant(userAgent, acceptLanguage string, now time.Time) string {
	h := fnv.New32a()
	fmt.Fprintf(h, "%s|%s|%d", userAgent, acceptLanguage, now.Unix()/3600)
	return fmt.Sprintf("127.0.0.%d", 1+h.Sum32()%254)
}
