package media

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestExpander(t *testing.T, srv *httptest.Server) *ShortLinkExpander {
	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("Unable to parse test server URL: %v", err)
	}

	e := NewShortLinkExpander(discardLogger())
	e.shortHost = u.Host
	return e
}

func TestExpandPassthrough(t *testing.T) {
	urls := []string{
		"https://www.douyin.com/video/1234567890123456789",
		"https://example.com/whatever",
		"not a url at all",
	}

	e := NewShortLinkExpander(discardLogger())
	for _, raw := range urls {
		if got := e.Expand(context.Background(), raw); got != raw {
			t.Fatalf("Expand(%q) = %q, want input unchanged", raw, got)
		}
	}
}

func TestExpandFollowsRedirects(t *testing.T) {
	var gotUA, gotReferer string

	mux := http.NewServeMux()
	mux.HandleFunc("/iJNvRkF9/", func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotReferer = r.Header.Get("Referer")
		http.Redirect(w, r, "/video/1234567890123456789", http.StatusFound)
	})
	mux.HandleFunc("/video/1234567890123456789", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	e := newTestExpander(t, srv)
	got := e.Expand(context.Background(), srv.URL+"/iJNvRkF9/")

	want := srv.URL + "/video/1234567890123456789"
	if got != want {
		t.Fatalf("Expand = %q, want %q", got, want)
	}
	if gotUA != mobileUserAgent {
		t.Fatalf("User-Agent = %q, want mobile UA", gotUA)
	}
	if gotReferer != douyinReferer {
		t.Fatalf("Referer = %q, want %q", gotReferer, douyinReferer)
	}
}

func TestExpandTooManyRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/loop", http.StatusFound)
	}))
	defer srv.Close()

	e := newTestExpander(t, srv)
	raw := srv.URL + "/loop"
	if got := e.Expand(context.Background(), raw); got != raw {
		t.Fatalf("Expand = %q, want raw URL back on redirect failure", got)
	}
}

func TestExpandUpstreamDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	e := newTestExpander(t, srv)
	srv.Close()

	raw := srv.URL + "/iJNvRkF9/"
	if got := e.Expand(context.Background(), raw); got != raw {
		t.Fatalf("Expand = %q, want raw URL back on transport failure", got)
	}
}
