package identity

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// TestForwardedForTakesPrecedence ensures the first X-Forwarded-For entry
// wins over every other source.
func TestForwardedForTakesPrecedence(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/leads", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
	r.Header.Set("X-Real-IP", "198.51.100.7")

	if fp := ClientFingerprint(r, "prod"); fp != "203.0.113.5" {
		t.Fatalf("expected first forwarded entry, got %q", fp)
	}
}

// TestRealIPFallback ensures X-Real-IP is used when X-Forwarded-For is
// absent or blank.
func TestRealIPFallback(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/leads", nil)
	r.Header.Set("X-Real-IP", "198.51.100.7")

	if fp := ClientFingerprint(r, "prod"); fp != "198.51.100.7" {
		t.Fatalf("expected X-Real-IP, got %q", fp)
	}

	r.Header.Set("X-Forwarded-For", "  ,10.0.0.1")
	if fp := ClientFingerprint(r, "prod"); fp != "198.51.100.7" {
		t.Fatalf("blank forwarded entry should fall through, got %q", fp)
	}
}

// TestLoopbackDefault ensures a request with no proxy headers resolves to
// loopback in production.
func TestLoopbackDefault(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/leads", nil)

	if fp := ClientFingerprint(r, "prod"); fp != "127.0.0.1" {
		t.Fatalf("expected loopback in prod, got %q", fp)
	}
}

// TestDevLoopbackVariant ensures non-prod environments spread loopback
// clients across synthetic 127.0.0.x fingerprints, deterministically per
// browser signature.
func TestDevLoopbackVariant(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/leads", nil)
	r.Header.Set("User-Agent", "test-browser/1.0")
	r.Header.Set("Accept-Language", "en-US")

	first := ClientFingerprint(r, "dev")
	second := ClientFingerprint(r, "dev")
	if first != second {
		t.Fatalf("variant must be stable within the hour: %q vs %q", first, second)
	}
	if !strings.HasPrefix(first, "127.0.0.") {
		t.Fatalf("variant must stay in the loopback range, got %q", first)
	}

	other := httptest.NewRequest("POST", "/api/leads", nil)
	other.Header.Set("User-Agent", "another-browser/2.0")
	other.Header.Set("Accept-Language", "de-DE")
	if ClientFingerprint(other, "dev") == first {
		t.Log("distinct browsers hashed to the same bucket; small range makes this possible")
	}
}

// TestDevFallbackGating ensures the synthetic variant never applies in
// prod or to non-loopback addresses.
func TestDevFallbackGating(t *testing.T) {
	if Environment("prod").DevFallback() || Environment("").DevFallback() {
		t.Fatal("prod and unset environments must not enable the fallback")
	}
	if !Environment("dev").DevFallback() {
		t.Fatal("dev environment must enable the fallback")
	}

	r := httptest.NewRequest("POST", "/api/leads", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.5")
	if fp := ClientFingerprint(r, "dev"); fp != "203.0.113.5" {
		t.Fatalf("real addresses must pass through untouched in dev, got %q", fp)
	}
}

// TestLoopbackVariantBuckets pins the variant to the documented range.
func TestLoopbackVariantBuckets(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for _, ua := range []string{"a", "b", "c", "d", "e"} {
		fp := loopbackVariant(ua, "en", now)
		if !strings.HasPrefix(fp, "127.0.0.") {
			t.Fatalf("variant outside loopback range: %q", fp)
		}
	}
}
