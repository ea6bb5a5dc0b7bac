package feed

import (
	"math/rand/v2"
	"net/http"
)

// acceptLanguages contains common browser Accept-Language values, swedish first as the default feeds are swedish
var acceptLanguages = []string{
	"sv-SE,sv;q=0.9,en;q=0.8",
	"sv-SE,sv;q=0.9",
	"sv,en-US;q=0.9,en;q=0.8",
	"en-US,en;q=0.9,sv;q=0.8",
}

// addBrowserHeaders adds browser-like headers for feed fetching.
// some news sites reject requests without them
func addBrowserHeaders(req *http.Request) {
	// accept header for feeds - include both RSS and HTML
	req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,text/html;q=0.7,*/*;q=0.5")
	req.Header.Set("Cache-Control", "no-cache")

	// randomized language
	req.Header.Set("Accept-Language", acceptLanguages[rand.IntN(len(acceptLanguages))]) //nolint:gosec // non-cryptographic randomness is fine for header variation
}
