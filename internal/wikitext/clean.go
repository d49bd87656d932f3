package wikitext

import (
	"regexp"
	"sort"
	"strings"
)

// literalRemovals are markup fragments deleted outright before the regex
// passes run.
var literalRemovals = []string{
	"&nbsp;", "{{Snd}}", "{{dagger}}", "{{nbsp}}", "{{pen.}}", "{{aet}}", "{{pso}}",
}

// noisePatterns delete decorative markup: citations, comments, footnotes,
// superscripts, line breaks, strikeouts (content and all), and a fixed set of
// symbol characters. Order follows the shape of the markup, not precedence;
// the deletions are independent of each other.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)<ref[^/>]*>.*?</ref>`),
	regexp.MustCompile(`<ref [^/>]*/>`),
	regexp.MustCompile(`'{2,}`),
	regexp.MustCompile(`(?s)<!--.*?-->`),
	regexp.MustCompile(`(?s)\{\{efn.*?\}\}`),
	regexp.MustCompile(`<sup>[^<>]*</sup>`),
	regexp.MustCompile(`<br\s*/?>`),
	regexp.MustCompile(`\{\{#tag:ref[^}]*\}\}`),
	regexp.MustCompile(`\{\{sup[^}]*\}\}`),
	regexp.MustCompile(`<small>[^<>]*</small>`),
	regexp.MustCompile(`(?s)\{\{small.*?\}\}`),
	regexp.MustCompile(`\{\{flagicon\|[^}]*\}\}`),
	regexp.MustCompile(`[†*^~#]`),
	// A struck-out name was replaced or vacated; either way it is gone.
	regexp.MustCompile(`<s>[^<]*</s>`),
	regexp.MustCompile(`\{\{s\|[^}]*\}\}`),
}

// unwrapPatterns rewrite a template invocation into its display argument.
// RE2 has no lookahead, so the capture stops at the first pipe rather than
// backtracking to the last one; the display title never contains a pipe.
var unwrapPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)\{\{c(?:b|s|f)b [^}]*title=([^}|]*)[^}]*\}\}`),
	regexp.MustCompile(`(?s)\[\[[^\[\]]*?\|([^\[\]]*?)\]\]`),
	regexp.MustCompile(`(?s)\[\[([^\[\]]*?)\]\]`),
	regexp.MustCompile(`\{\{color\|#[0-9A-F]{6}\|([^}]*)\}\}`),
	regexp.MustCompile(`(?s)\{\{(?i:CBSB) [^}]*title=([^}|]*)[^}]*\}\}`),
	regexp.MustCompile(`\{\{\s*(?i:nowrap|strikethrough)\|([^}]*)\}\}`),
	regexp.MustCompile(`(?s)\{\{(?i:csoc link)[^}]*title=([^}|]*)[^}]*\}\}`),
	regexp.MustCompile(`(?s)\{\{Alternative links\|[^}]*title=([^}|]*)[^}]*\}\}`),
}

var okinaPattern = regexp.MustCompile(`(?i)\{\{Okina\}\}`)

// Clean strips markup noise from raw page source. The replacements map holds
// literal whole-word substitutions (typically from a Disambiguator) applied
// before anything else is touched. The step order is fixed: later passes
// assume the earlier ones already ran. Cleaning already-clean text is a no-op.
func Clean(content string, replacements map[string]string) string {
	content = applyReplacements(content, replacements)
	for _, remove := range literalRemovals {
		content = strings.ReplaceAll(content, remove, "")
	}
	for _, pattern := range noisePatterns {
		content = pattern.ReplaceAllString(content, "")
	}
	content = strings.TrimSpace(content)
	for _, pattern := range unwrapPatterns {
		content = pattern.ReplaceAllString(content, "$1")
	}
	content = strings.ReplaceAll(content, " & ", " and ")
	content = okinaPattern.ReplaceAllString(content, "'")
	return content
}

// applyReplacements substitutes each key as a whole word. Longer keys run
// first so that "USC Aiken" is rewritten before a bare "USC" rule can eat its
// prefix; the ordering also keeps the output deterministic.
func applyReplacements(content string, replacements map[string]string) string {
	keys := make([]string, 0, len(replacements))
	for key := range replacements {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for _, key := range keys {
		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(key) + `\b`)
		content = pattern.ReplaceAllString(content, replacements[key])
	}
	return content
}
