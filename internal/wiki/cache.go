package wiki

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/tmadsen/bracketstats/internal/tourney"
)

// Cache stores raw page source on disk, one file per tournament year, laid
// out as {group}/{tourney}/{year}.txt under the root. Pages change rarely;
// entries stay fresh for a year.
type Cache struct {
	Root string
	TTL  time.Duration
}

// NewCache creates a cache rooted at dir with the default one-year TTL.
func NewCache(dir string) *Cache {
	return &Cache{Root: dir, TTL: 365 * 24 * time.Hour}
}

// Path is the cache file for one tournament year.
func (c *Cache) Path(desc tourney.Description, year int) string {
	name := "none"
	if year != 0 {
		name = strconv.Itoa(year)
	}
	return filepath.Join(c.Root, filepath.FromSlash(desc.Directory()), name+".txt")
}

// Fresh reports whether a cache file exists and has not expired.
func (c *Cache) Fresh(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return time.Since(info.ModTime()) < c.TTL
}

// Read returns a cache file's content.
func (c *Cache) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading cache: %w", err)
	}
	return string(data), nil
}

// Write stores content, creating the tournament's directory as needed.
func (c *Cache) Write(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	return nil
}

// Provider serves page content cache-first, going to the site only for
// missing or stale entries.
type Provider struct {
	cache  *Cache
	client *Client
	logger zerolog.Logger
}

// NewProvider wires a cache and a client together.
func NewProvider(cache *Cache, client *Client, logger zerolog.Logger) *Provider {
	return &Provider{cache: cache, client: client, logger: logger}
}

// PageContent returns the raw source of one tournament year's page.
// A page that exists nowhere returns ErrPageMissing; a stale cache file is
// better than nothing when the site can't be reached.
func (p *Provider) PageContent(ctx context.Context, desc tourney.Description, year int) (string, error) {
	path := p.cache.Path(desc, year)
	if p.cache.Fresh(path) {
		return p.cache.Read(path)
	}
	titles := PotentialTitles(desc, year, desc.Tourney == "NFL_")
	content, title, err := p.client.FetchFirst(ctx, titles)
	if errors.Is(err, ErrPageMissing) {
		p.logger.Debug().Str("path", path).Msg("no page found")
		return "", err
	}
	if err != nil {
		if stale, readErr := p.cache.Read(path); readErr == nil {
			p.logger.Warn().Err(err).Str("path", path).Msg("using stale cache")
			return stale, nil
		}
		return "", err
	}
	p.logger.Info().Str("path", path).Str("title", title).Msg("caching page")
	if err := p.cache.Write(path, content); err != nil {
		return "", err
	}
	return content, nil
}
