package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInvoker records every invocation and replies with canned output.
type fakeInvoker struct {
	out   string
	err   error
	calls [][]string
}

func (f *fakeInvoker) Run(path string, args ...string) (string, error) {
	f.calls = append(f.calls, args)
	if f.err != nil {
		return "", f.err
	}
	return f.out, nil
}

const sampleDump = `[ExifTool]      ExifTool Version Number         : 12.60
[File]          MIME Type                       : image/jpeg
[IPTC]          ObjectName                      : Sunset
[IPTC]          Caption-Abstract                : Evening glow
[IPTC]          Copyright Notice                : (c) 2024 A. Chaubey
[EXIF]          Image Description               : A sunset
[EXIF]          Rating                          : 3
[XMP]           Label                           : Red
[XMP]           Subject                         : beach, sunset
`

func newTestFile(t *testing.T, path, dump string) (*File, *fakeInvoker) {
	t.Helper()
	inv := &fakeInvoker{out: dump}
	f, err := NewFile(path, inv)
	require.NoError(t, err)
	return f, inv
}

func TestNewFileRejectsUnsupportedExtension(t *testing.T) {
	inv := &fakeInvoker{}
	_, err := NewFile("/photos/report.docx", inv)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedExt))
	// rejected before any invocation
	assert.Empty(t, inv.calls)
}

func TestNewFileAcceptsAllowListedExtensions(t *testing.T) {
	for _, name := range []string{
		"a.jpg", "a.JPEG", "a.png", "a.gif", "a.bmp", "a.webp",
		"a.webm", "a.mp4", "a.avi", "a.tif", "a.tiff", "a.pdf", "a.mts",
	} {
		_, err := NewFile(name, &fakeInvoker{})
		assert.NoError(t, err, name)
	}
}

func TestAccessorsShareOneInvocation(t *testing.T) {
	f, inv := newTestFile(t, "sunset.jpg", sampleDump)

	title, err := f.Title()
	require.NoError(t, err)
	assert.Equal(t, "Sunset", title)

	caption, err := f.Caption()
	require.NoError(t, err)
	assert.Equal(t, "Evening glow", caption)

	rating, err := f.Rating()
	require.NoError(t, err)
	require.NotNil(t, rating)
	assert.Equal(t, 3, *rating)

	keywords, err := f.Keywords()
	require.NoError(t, err)
	assert.Equal(t, []string{"beach", "sunset"}, keywords)

	// every accessor was served from the one cached read
	require.Len(t, inv.calls, 1)
	assert.Equal(t, ReadFlags, inv.calls[0])
}

func TestReadFailurePropagates(t *testing.T) {
	inv := &fakeInvoker{err: errors.New("exit status 1")}
	f, err := NewFile("broken.jpg", inv)
	require.NoError(t, err)

	_, err = f.Title()
	require.Error(t, err)
}

func TestFileType(t *testing.T) {
	f, _ := newTestFile(t, "sunset.jpg", sampleDump)
	ft, err := f.FileType()
	require.NoError(t, err)
	assert.Equal(t, FtJPEG, ft)
}

func TestFileTypeMissingMIMEIsFatal(t *testing.T) {
	f, _ := newTestFile(t, "sunset.jpg", "[IPTC] ObjectName : Sunset\n")
	_, err := f.FileType()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownMIME))
}

func TestFileTypeUnrecognizedMIMEIsFatal(t *testing.T) {
	f, _ := newTestFile(t, "sunset.jpg", "[File] MIME Type : image/x-sunset\n")
	_, err := f.FileType()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownMIME))
}

func TestResolveSnapshot(t *testing.T) {
	f, inv := newTestFile(t, "sunset.jpg", sampleDump)
	r, err := f.Resolve()
	require.NoError(t, err)

	assert.Equal(t, FtJPEG, r.FileType)
	assert.Equal(t, "Sunset", r.Title)
	assert.Equal(t, "Evening glow", r.Caption)
	assert.Equal(t, "(c) 2024 A. Chaubey", r.Copyright)
	assert.Equal(t, "A sunset", r.Description)
	require.NotNil(t, r.Rating)
	assert.Equal(t, 3, *r.Rating)
	assert.Equal(t, "Red", r.Label)
	assert.Equal(t, []string{"beach", "sunset"}, r.Keywords)
	assert.Len(t, inv.calls, 1)
}

func TestExtraReadFlags(t *testing.T) {
	inv := &fakeInvoker{out: sampleDump}
	f, err := NewFile("sunset.jpg", inv, "-charset", "utf8")
	require.NoError(t, err)

	_, err = f.Tags()
	require.NoError(t, err)
	require.Len(t, inv.calls, 1)
	assert.Equal(t, append(append([]string{}, ReadFlags...), "-charset", "utf8"), inv.calls[0])
}
