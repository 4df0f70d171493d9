package core

import (
	"regexp"
	"strings"
)

// tagLine matches one line of the tool's tag dump, in the form
// "[Container] Name : Value". Container and name are non-greedy up to
// their delimiters; the value is the rest of the line.
var tagLine = regexp.MustCompile(`^\[(.+?)\]\s+(.+?)\s+:\s?(.*)$`)

// noiseContainers are synthetic/summary containers the tool emits that
// do not correspond to literal embedded metadata. Matched case-sensitively.
var noiseContainers = map[string]bool{
	"ExifTool":  true,
	"Composite": true,
	"RIFF":      true,
}

// ParseTags converts a raw tag dump into an ordered list of records.
// Blank lines and lines that do not match the tag pattern are skipped
// silently. No deduplication happens at this stage.
func ParseTags(raw string) []TagRecord {
	lines := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\r' || r == '\n'
	})

	var tags []TagRecord
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m := tagLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if noiseContainers[m[1]] {
			continue
		}
		tags = append(tags, TagRecord{
			Container: m[1],
			Name:      strings.TrimSpace(m[2]),
			Value:     m[3],
		})
	}
	return tags
}
