package core

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strings"
)

// KeywordMode selects the keyword-resolution policy.
type KeywordMode int

const (
	// CombineSources unions tokens from every keyword-bearing source.
	// This is the default policy for the public keyword accessor.
	CombineSources KeywordMode = iota
	// FirstSource stops at the first source yielding at least one token.
	FirstSource
)

// keywordSources is the single fixed candidate list consumed by both
// policies, in priority order.
var keywordSources = []tagKey{
	{"XMP", "Subject"},
	{"IPTC", "Keywords"},
	{"EXIF", "XP Keywords"},
	{"XMP", "Category"},
	{"XMP", "Weighted Flat Subject"},
	{"XMP", "Hierarchical Subject"},
	{"XMP", "Tags List"},
	{"XMP", "Catalog Sets"},
	{"XMP", "Last Keyword XMP"},
	{"XMP", "Last Keyword IPTC"},
	{"XMP", "TagList"},
	{"XMP", "Categories"},
}

// keywordDelims split a plain keyword value into tokens.
const keywordDelims = ";,|/\\"

// ResolveKeywords resolves the keyword set for a tag list under the
// given policy. Results are trimmed, deduplicated case-sensitively,
// and sorted lexicographically (byte-wise, so "A" sorts before "a").
// Malformed embedded XML in a source is a fatal error.
func ResolveKeywords(tags []TagRecord, mode KeywordMode) ([]string, error) {
	var combined []string
	seen := map[string]bool{}

	for _, src := range keywordSources {
		var fromSource []string
		for _, t := range tags {
			if !t.Is(src.container, src.name) {
				continue
			}
			tokens, err := extractKeywords(t.Value)
			if err != nil {
				return nil, err
			}
			fromSource = append(fromSource, tokens...)
		}
		if len(fromSource) == 0 {
			continue
		}
		if mode == FirstSource {
			out := dedupe(fromSource)
			sort.Strings(out)
			return out, nil
		}
		for _, tok := range fromSource {
			if !seen[tok] {
				seen[tok] = true
				combined = append(combined, tok)
			}
		}
	}

	sort.Strings(combined)
	return combined, nil
}

// extractKeywords turns one raw tag value into tokens. A value that
// looks like an embedded XML fragment is parsed as a Photoshop
// Categories structure; anything else is split on the delimiters.
func extractKeywords(raw string) ([]string, error) {
	if strings.Contains(raw, "</") {
		return parseCategoriesXML(raw)
	}
	return splitKeywords(raw), nil
}

// splitKeywords splits on the delimiter set, trims tokens, drops
// empties, and dedupes case-sensitively preserving first occurrence.
func splitKeywords(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return strings.ContainsRune(keywordDelims, r)
	})
	var tokens []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return dedupe(tokens)
}

// categoriesDoc is the Photoshop "Categories" micro-format: a single
// root with repeated Category children holding text content.
type categoriesDoc struct {
	XMLName    xml.Name `xml:"Categories"`
	Categories []string `xml:"Category"`
}

// parseCategoriesXML extracts Category text from an embedded XML
// fragment. Malformed XML propagates as an error, never swallowed.
func parseCategoriesXML(raw string) ([]string, error) {
	var doc categoriesDoc
	if err := xml.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("malformed Categories XML: %w", err)
	}
	var tokens []string
	for _, c := range doc.Categories {
		c = strings.TrimSpace(c)
		if c != "" {
			tokens = append(tokens, c)
		}
	}
	return dedupe(tokens), nil
}

// NormalizeKeywords trims, drops empties, dedupes case-sensitively,
// and sorts a proposed keyword list. Used when planning writes.
func NormalizeKeywords(values []string) []string {
	var tokens []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			tokens = append(tokens, v)
		}
	}
	out := dedupe(tokens)
	sort.Strings(out)
	return out
}

func dedupe(tokens []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, t := range tokens {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
