package core

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// backupSuffix is appended by the tool to the backup artifact it may
// leave next to the original after a write.
const backupSuffix = "_original"

// Update plans and executes one batched write. Each provided field is
// compared against its currently resolved value and skipped when equal,
// unless req.Force is set. When nothing needs writing and no clear was
// requested, no tool invocation happens at all. On success the backup
// artifact is removed and the cached view is discarded; on failure the
// cache is left intact.
func (f *File) Update(req UpdateRequest) error {
	if err := f.load(); err != nil {
		return err
	}

	var args []string

	addText := func(proposed *string, current string, targets ...string) {
		if proposed == nil {
			return
		}
		if *proposed == current && !req.Force {
			return
		}
		for _, t := range targets {
			args = append(args, t+"="+*proposed)
		}
	}

	addText(req.Title, ResolveTitle(f.tags),
		"-Title", "-IPTC:ObjectName", "-EXIF:XPTitle")
	addText(req.Caption, ResolveCaption(f.tags),
		"-Caption", "-IPTC:Caption-Abstract")
	addText(req.Copyright, ResolveCopyright(f.tags),
		"-Copyright", "-IPTC:CopyrightNotice")
	addText(req.Description, ResolveDescription(f.tags),
		"-Description", "-EXIF:ImageDescription")

	if req.Rating != nil {
		cur := ResolveRating(f.tags)
		if cur == nil || *cur != *req.Rating || req.Force {
			args = append(args, "-Rating="+strconv.Itoa(*req.Rating))
		}
	}

	addText(req.Label, ResolveLabel(f.tags), "-XMP:Label")

	if req.Keywords != nil {
		kwArgs, err := f.keywordArgs(req)
		if err != nil {
			return err
		}
		args = append(args, kwArgs...)
	}

	if len(args) == 0 && !req.DeleteOtherTags {
		return nil
	}

	if req.DeleteOtherTags {
		args = append([]string{"-all="}, args...)
	}

	if _, err := f.inv.Run(f.path, args...); err != nil {
		return err
	}

	f.removeBackup()
	f.invalidate()
	return nil
}

// keywordArgs builds the keyword write arguments. The target tags
// depend on the file's extension; extensions with no keyword write
// support are skipped silently.
func (f *File) keywordArgs(req UpdateRequest) ([]string, error) {
	proposed := strings.Join(NormalizeKeywords(req.Keywords), ", ")

	current, err := ResolveKeywords(f.tags, CombineSources)
	if err != nil {
		return nil, err
	}
	if proposed == strings.Join(current, ", ") && !req.Force {
		return nil, nil
	}

	switch f.ext {
	case ".jpg", ".jpeg":
		return []string{"-Subject=" + proposed, "-IPTC:Keywords=" + proposed}, nil
	case ".mp4":
		return []string{"-Category=" + proposed}, nil
	default:
		return nil, nil
	}
}

// removeBackup deletes the tool's backup artifact if it exists.
func (f *File) removeBackup() {
	backup := f.path + backupSuffix
	if err := os.Remove(backup); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.WithField("file", backup).WithError(err).Warn("could not remove backup artifact")
	}
}
