package wiki

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
)

// pageServer serves raw page source the way index.php?action=raw does, plus
// a minimal Special:Search results page.
func pageServer(pages map[string]string, searchHit string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		title := r.URL.Query().Get("title")
		if title == "Special:Search" {
			fmt.Fprintf(w, `<html><body><div class="mw-search-result-heading">`+
				`<a href="/wiki/x" title="%s">%s</a></div></body></html>`, searchHit, searchHit)
			return
		}
		content, ok := pages[title]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, content)
	}))
}

func TestFetch(t *testing.T) {
	srv := pageServer(map[string]string{"2012 Tournament": "{{Bracket}}"}, "")
	defer srv.Close()
	client := NewClientWithBase(srv.URL, zerolog.Nop())

	content, err := client.Fetch(context.Background(), "2012 Tournament")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if content != "{{Bracket}}" {
		t.Errorf("content = %q", content)
	}

	if _, err := client.Fetch(context.Background(), "No Such Page"); !errors.Is(err, ErrPageMissing) {
		t.Errorf("missing page error = %v, want ErrPageMissing", err)
	}
}

func TestFetchRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "backend down", http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, "recovered")
	}))
	defer srv.Close()
	client := NewClientWithBase(srv.URL, zerolog.Nop())

	content, err := client.Fetch(context.Background(), "Any")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if content != "recovered" || calls.Load() != 2 {
		t.Errorf("content = %q after %d calls", content, calls.Load())
	}
}

func TestFetchFirst(t *testing.T) {
	srv := pageServer(map[string]string{"Second Choice": "found it"}, "")
	defer srv.Close()
	client := NewClientWithBase(srv.URL, zerolog.Nop())

	content, title, err := client.FetchFirst(context.Background(),
		[]string{"First Choice", "Second Choice"})
	if err != nil {
		t.Fatalf("FetchFirst: %v", err)
	}
	if title != "Second Choice" || content != "found it" {
		t.Errorf("got %q from %q", content, title)
	}
}

func TestFetchFirstFollowsRedirect(t *testing.T) {
	srv := pageServer(map[string]string{
		"Old Name": "#REDIRECT [[New Name]]",
		"New Name": "the real page",
	}, "")
	defer srv.Close()
	client := NewClientWithBase(srv.URL, zerolog.Nop())

	content, title, err := client.FetchFirst(context.Background(), []string{"Old Name"})
	if err != nil {
		t.Fatalf("FetchFirst: %v", err)
	}
	if title != "New Name" || content != "the real page" {
		t.Errorf("got %q from %q", content, title)
	}
}

func TestFetchFirstSearchFallback(t *testing.T) {
	srv := pageServer(map[string]string{"Actual Title": "found by search"}, "Actual Title")
	defer srv.Close()
	client := NewClientWithBase(srv.URL, zerolog.Nop())

	content, title, err := client.FetchFirst(context.Background(),
		[]string{"Guess One", "Guess Two"})
	if err != nil {
		t.Fatalf("FetchFirst: %v", err)
	}
	if title != "Actual Title" || content != "found by search" {
		t.Errorf("got %q from %q", content, title)
	}
}

func TestFetchFirstAllMissing(t *testing.T) {
	srv := pageServer(nil, "")
	defer srv.Close()
	client := NewClientWithBase(srv.URL, zerolog.Nop())

	_, _, err := client.FetchFirst(context.Background(), []string{"Nope"})
	if !errors.Is(err, ErrPageMissing) {
		t.Errorf("error = %v, want ErrPageMissing", err)
	}
}

func TestRedirectTitle(t *testing.T) {
	tests := []struct {
		content string
		target  string
		ok      bool
	}{
		{"#REDIRECT [[New Name]]", "New Name", true},
		{"#redirect [[New Name|display]]", "New Name|display", true},
		{"a normal page with a [[link]]", "", false},
		{"#REDIRECT with no link", "", false},
	}
	for _, tt := range tests {
		target, ok := redirectTitle(tt.content)
		if target != tt.target || ok != tt.ok {
			t.Errorf("redirectTitle(%q) = %q, %v", tt.content, target, ok)
		}
	}
}
