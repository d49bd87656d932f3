// Package wikitext strips markup noise from raw MediaWiki page source so the
// bracket templates inside it can be parsed line by line.
//
// Only the subset of wikitext that shows up around tournament brackets is
// handled: citation tags, HTML comments, footnote and formatting templates,
// wiki links, and a handful of decorative symbols. This is deliberately not a
// general wikitext parser.
package wikitext
