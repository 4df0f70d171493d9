package core

import (
	"strconv"
	"strings"
)

// Candidate tables for the logical fields. Resolution tries each
// (container, name) pair in order and the first match wins; the order
// is fixed and not configurable.
var (
	titleCandidates = []tagKey{
		{"IPTC", "ObjectName"},
		{"XMP", "Title"},
		{"EXIF", "XPTitle"},
	}
	captionCandidates = []tagKey{
		{"IPTC", "Caption-Abstract"},
		{"XMP", "Caption"},
	}
	copyrightCandidates = []tagKey{
		{"IPTC", "Copyright Notice"},
	}
	descriptionCandidates = []tagKey{
		{"EXIF", "Image Description"},
		{"XMP", "Description"},
	}
	ratingCandidates = []tagKey{
		{"EXIF", "Rating"},
		{"XMP", "Rating"},
		{"IPTC", "Urgency"},
	}
	labelCandidates = []tagKey{
		{"XMP", "Label"},
		{"XMP", "ColorLabel"},
		{"XMP", "Urgency"},
	}
)

// findTag returns the value of the first record matching any candidate,
// in candidate order. Container and name match case-insensitively.
func findTag(tags []TagRecord, candidates []tagKey) (string, bool) {
	for _, c := range candidates {
		for _, t := range tags {
			if t.Is(c.container, c.name) {
				return t.Value, true
			}
		}
	}
	return "", false
}

// resolveText returns the first matching candidate value, or "".
func resolveText(tags []TagRecord, candidates []tagKey) string {
	v, _ := findTag(tags, candidates)
	return v
}

// ResolveTitle resolves the logical title field.
func ResolveTitle(tags []TagRecord) string { return resolveText(tags, titleCandidates) }

// ResolveCaption resolves the logical caption field.
func ResolveCaption(tags []TagRecord) string { return resolveText(tags, captionCandidates) }

// ResolveCopyright resolves the logical copyright field.
func ResolveCopyright(tags []TagRecord) string { return resolveText(tags, copyrightCandidates) }

// ResolveDescription resolves the logical description field.
func ResolveDescription(tags []TagRecord) string { return resolveText(tags, descriptionCandidates) }

// ResolveLabel resolves the logical color-label field.
func ResolveLabel(tags []TagRecord) string { return resolveText(tags, labelCandidates) }

// ResolveRating resolves the numeric rating. A candidate whose value
// does not parse as an integer is treated as a non-match and resolution
// falls through to the next candidate. Returns nil when nothing matches.
func ResolveRating(tags []TagRecord) *int {
	for _, c := range ratingCandidates {
		for _, t := range tags {
			if !t.Is(c.container, c.name) {
				continue
			}
			n, err := strconv.Atoi(strings.TrimSpace(t.Value))
			if err != nil {
				break // non-integer, try the next candidate
			}
			return &n
		}
	}
	return nil
}
