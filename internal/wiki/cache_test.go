package wiki

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tmadsen/bracketstats/internal/tourney"
)

func testDesc() tourney.Description {
	return tourney.Description{
		Group: "bbm", Tourney: "D1",
		Title:  "NCAA Division I",
		Suffix: "Men's Basketball Tournament",
	}
}

func TestCachePath(t *testing.T) {
	cache := NewCache("pages")
	desc := tourney.Description{Group: "professional", Tourney: "NFL_"}
	want := filepath.Join("pages", "professional", "NFL", "1970.txt")
	if got := cache.Path(desc, 1970); got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
	want = filepath.Join("pages", "professional", "NFL", "none.txt")
	if got := cache.Path(desc, 0); got != want {
		t.Errorf("Path with no year = %q, want %q", got, want)
	}
}

func TestCacheRoundTrip(t *testing.T) {
	cache := NewCache(t.TempDir())
	path := cache.Path(testDesc(), 2012)

	if cache.Fresh(path) {
		t.Error("missing file reported fresh")
	}
	if err := cache.Write(path, "{{Bracket}}"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !cache.Fresh(path) {
		t.Error("just-written file reported stale")
	}
	content, err := cache.Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if content != "{{Bracket}}" {
		t.Errorf("content = %q", content)
	}
}

func TestCacheExpiry(t *testing.T) {
	cache := NewCache(t.TempDir())
	path := cache.Path(testDesc(), 2012)
	if err := cache.Write(path, "old"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	past := time.Now().Add(-2 * cache.TTL)
	if err := os.Chtimes(path, past, past); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}
	if cache.Fresh(path) {
		t.Error("expired file reported fresh")
	}
}

func TestProviderCachesPages(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Query().Get("title") != "2012 NCAA Division I Men's Basketball Tournament" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("{{Bracket}}"))
	}))
	defer srv.Close()
	provider := NewProvider(NewCache(t.TempDir()),
		NewClientWithBase(srv.URL, zerolog.Nop()), zerolog.Nop())

	for i := 0; i < 2; i++ {
		content, err := provider.PageContent(context.Background(), testDesc(), 2012)
		if err != nil {
			t.Fatalf("PageContent: %v", err)
		}
		if content != "{{Bracket}}" {
			t.Errorf("content = %q", content)
		}
	}
	if calls.Load() != 1 {
		t.Errorf("server saw %d calls, want 1", calls.Load())
	}
}

func TestProviderMissingPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(http.NotFound))
	defer srv.Close()
	provider := NewProvider(NewCache(t.TempDir()),
		NewClientWithBase(srv.URL, zerolog.Nop()), zerolog.Nop())

	_, err := provider.PageContent(context.Background(), testDesc(), 2012)
	if !errors.Is(err, ErrPageMissing) {
		t.Errorf("error = %v, want ErrPageMissing", err)
	}
}

func TestProviderStaleFallback(t *testing.T) {
	cache := NewCache(t.TempDir())
	path := cache.Path(testDesc(), 2012)
	if err := cache.Write(path, "stale copy"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	past := time.Now().Add(-2 * cache.TTL)
	if err := os.Chtimes(path, past, past); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer srv.Close()
	provider := NewProvider(cache, NewClientWithBase(srv.URL, zerolog.Nop()), zerolog.Nop())

	content, err := provider.PageContent(context.Background(), testDesc(), 2012)
	if err != nil {
		t.Fatalf("PageContent: %v", err)
	}
	if content != "stale copy" {
		t.Errorf("content = %q, want stale copy", content)
	}
}
