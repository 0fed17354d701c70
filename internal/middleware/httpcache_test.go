package middleware

import (
	"net/http"
	"testing"
)

func TestShouldSkipCachePath(t *testing.T) {
	patterns := []string{"/api/v1/health", "/api/v1/itineraries*"}

	cases := []struct {
		path string
		want bool
	}{
		{"/api/v1/health", true},
		{"/api/v1/itineraries", true},
		{"/api/v1/itineraries/abc", true},
		{"/api/v1/districts", false},
		{"/", false},
	}
	for _, tc := range cases {
		if got := shouldSkipCachePath(tc.path, patterns); got != tc.want {
			t.Errorf("shouldSkipCachePath(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestIsCacheableResponse(t *testing.T) {
	h := http.Header{}
	if !isCacheableResponse(http.StatusOK, h) {
		t.Error("plain 200 should be cacheable")
	}
	if isCacheableResponse(http.StatusNotFound, h) {
		t.Error("404 should not be cacheable")
	}

	h.Set("Cache-Control", "no-store")
	if isCacheableResponse(http.StatusOK, h) {
		t.Error("no-store response should not be cacheable")
	}
}

func TestCacheBodyWriterOverflow(t *testing.T) {
	w := &cacheBodyWriter{maxBodyBytes: 4}

	w.capture([]byte("ab"))
	w.capture([]byte("cdef"))

	if !w.overflow {
		t.Error("overflow = false, want true")
	}
	if got := string(w.body); got != "abcd" {
		t.Errorf("captured body = %q, want %q", got, "abcd")
	}
}
