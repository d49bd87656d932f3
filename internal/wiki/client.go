package wiki

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// ErrPageMissing means no page exists under any of the candidate titles.
var ErrPageMissing = errors.New("page not found")

// redirectTarget pulls the first [[link]] out of a redirect page's source.
var redirectTarget = regexp.MustCompile(`(?s)^[^\[]*\[\[([^]]*)]]`)

// Client fetches raw page source from a MediaWiki site.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a client for English Wikipedia.
func NewClient(logger zerolog.Logger) *Client {
	return &Client{
		baseURL: "https://en.wikipedia.org",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// NewClientWithBase creates a client against a different site. Used against
// test servers.
func NewClientWithBase(baseURL string, logger zerolog.Logger) *Client {
	client := NewClient(logger)
	client.baseURL = baseURL
	return client
}

// Fetch retrieves the raw source of one page. Missing pages return
// ErrPageMissing; transient failures are retried with exponential backoff.
func (c *Client) Fetch(ctx context.Context, title string) (string, error) {
	reqURL := fmt.Sprintf("%s/w/index.php?title=%s&action=raw",
		c.baseURL, url.QueryEscape(title))
	var content string
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("making request: %w", err)
		}
		defer resp.Body.Close()
		switch {
		case resp.StatusCode == http.StatusNotFound:
			return backoff.Permanent(ErrPageMissing)
		case resp.StatusCode >= 500:
			return fmt.Errorf("server returned status %d", resp.StatusCode)
		case resp.StatusCode != http.StatusOK:
			return backoff.Permanent(fmt.Errorf("server returned status %d", resp.StatusCode))
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading response: %w", err)
		}
		content = string(body)
		return nil
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 4), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", err
	}
	return content, nil
}

// FetchFirst tries each candidate title in order and returns the first page
// that exists, following redirects to wherever they point. When every
// candidate is missing, the site's search is consulted for one more guess.
func (c *Client) FetchFirst(ctx context.Context, titles []string) (content, title string, err error) {
	searched := false
	queue := append([]string(nil), titles...)
	for len(queue) > 0 {
		title, queue = queue[0], queue[1:]
		content, err = c.Fetch(ctx, title)
		if errors.Is(err, ErrPageMissing) {
			if len(queue) == 0 && !searched && len(titles) > 0 {
				searched = true
				if found, searchErr := c.searchTitle(ctx, titles[0]); searchErr == nil && found != "" {
					c.logger.Debug().Str("title", found).Msg("found page through search")
					queue = append(queue, found)
				}
			}
			continue
		}
		if err != nil {
			return "", "", fmt.Errorf("fetching %q: %w", title, err)
		}
		if target, ok := redirectTitle(content); ok {
			c.logger.Debug().Str("from", title).Str("to", target).Msg("following redirect")
			queue = append([]string{target}, queue...)
			continue
		}
		return content, title, nil
	}
	return "", "", ErrPageMissing
}

// redirectTitle reports where a redirect page points.
func redirectTitle(content string) (string, bool) {
	if !strings.HasPrefix(strings.TrimSpace(strings.ToUpper(content)), "#REDIRECT") {
		return "", false
	}
	m := redirectTarget.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// searchTitle asks the site's full-text search for the closest page title.
func (c *Client) searchTitle(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("search", query)
	params.Set("title", "Special:Search")
	params.Set("fulltext", "1")
	reqURL := fmt.Sprintf("%s/w/index.php?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("search returned status %d", resp.StatusCode)
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing search results: %w", err)
	}
	title, _ := doc.Find(".mw-search-result-heading a").First().Attr("title")
	return title, nil
}
