package core

import (
	"path/filepath"
	"strings"
)

// File is a handle on one metadata-bearing file. Tag records are read
// lazily on first access and memoized until an Update succeeds, which
// discards the whole cached view. A File is not safe for concurrent
// use; callers must serialize access or use independent handles.
type File struct {
	path      string
	ext       string
	inv       Invoker
	readFlags []string

	tags   []TagRecord
	loaded bool
}

// NewFile validates the path against the extension allow-list and
// returns a handle. No tool invocation happens here. Extra flags are
// appended to the default read flags on every read.
func NewFile(path string, inv Invoker, extraFlags ...string) (*File, error) {
	if err := CheckExt(path); err != nil {
		return nil, err
	}
	return &File{
		path:      path,
		ext:       strings.ToLower(filepath.Ext(path)),
		inv:       inv,
		readFlags: append(append([]string{}, ReadFlags...), extraFlags...),
	}, nil
}

// Path returns the handle's file path.
func (f *File) Path() string { return f.path }

// load fetches and parses the tag dump once per cache generation.
func (f *File) load() error {
	if f.loaded {
		return nil
	}
	out, err := f.inv.Run(f.path, f.readFlags...)
	if err != nil {
		return err
	}
	f.tags = ParseTags(out)
	f.loaded = true
	return nil
}

// invalidate discards the cached tag records so the next access
// re-reads the file.
func (f *File) invalidate() {
	f.tags = nil
	f.loaded = false
}

// Tags returns the raw parsed tag records in tool output order.
func (f *File) Tags() ([]TagRecord, error) {
	if err := f.load(); err != nil {
		return nil, err
	}
	return f.tags, nil
}

// Title resolves the logical title field.
func (f *File) Title() (string, error) {
	if err := f.load(); err != nil {
		return "", err
	}
	return ResolveTitle(f.tags), nil
}

// Caption resolves the logical caption field.
func (f *File) Caption() (string, error) {
	if err := f.load(); err != nil {
		return "", err
	}
	return ResolveCaption(f.tags), nil
}

// Copyright resolves the logical copyright field.
func (f *File) Copyright() (string, error) {
	if err := f.load(); err != nil {
		return "", err
	}
	return ResolveCopyright(f.tags), nil
}

// Description resolves the logical description field.
func (f *File) Description() (string, error) {
	if err := f.load(); err != nil {
		return "", err
	}
	return ResolveDescription(f.tags), nil
}

// Rating resolves the numeric rating; nil means no usable rating tag.
func (f *File) Rating() (*int, error) {
	if err := f.load(); err != nil {
		return nil, err
	}
	return ResolveRating(f.tags), nil
}

// Label resolves the logical color-label field.
func (f *File) Label() (string, error) {
	if err := f.load(); err != nil {
		return "", err
	}
	return ResolveLabel(f.tags), nil
}

// Keywords resolves the combined keyword set across every known
// keyword-bearing tag.
func (f *File) Keywords() ([]string, error) {
	if err := f.load(); err != nil {
		return nil, err
	}
	return ResolveKeywords(f.tags, CombineSources)
}

// KeywordsFirstSource resolves keywords from only the first source
// that yields any tokens.
func (f *File) KeywordsFirstSource() ([]string, error) {
	if err := f.load(); err != nil {
		return nil, err
	}
	return ResolveKeywords(f.tags, FirstSource)
}

// FileType maps the tool's MIME Type tag to a FileType. A missing or
// unrecognized MIME tag is a fatal error.
func (f *File) FileType() (FileType, error) {
	if err := f.load(); err != nil {
		return "", err
	}
	for _, t := range f.tags {
		if t.Is("File", "MIME Type") {
			return FileTypeForMIME(t.Value)
		}
	}
	return "", ErrUnknownMIME
}
