package core

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileType enumerates every recognised file type, keyed off the MIME
// type the external tool reports.
type FileType string

const (
	FtJPEG FileType = "jpeg"
	FtPNG  FileType = "png"
	FtGIF  FileType = "gif"
	FtBMP  FileType = "bmp"
	FtWebP FileType = "webp"
	FtTIF  FileType = "tif"
	FtWebM FileType = "webm"
	FtMP4  FileType = "mp4"
	FtAVI  FileType = "avi"
	FtPDF  FileType = "pdf"
	FtM2TS FileType = "m2ts"
)

// supportedExts is the closed allow-list of extensions the engine will
// hand to the external tool. Anything else is rejected up front.
var supportedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
	".webm": true,
	".mp4":  true,
	".avi":  true,
	".tif":  true,
	".tiff": true,
	".pdf":  true,
	".mts":  true,
}

// mimeMap maps the tool's reported MIME Type values to file types.
var mimeMap = map[string]FileType{
	"image/jpeg":      FtJPEG,
	"image/png":       FtPNG,
	"image/gif":       FtGIF,
	"image/bmp":       FtBMP,
	"image/x-ms-bmp":  FtBMP,
	"image/webp":      FtWebP,
	"image/tiff":      FtTIF,
	"video/webm":      FtWebM,
	"video/mp4":       FtMP4,
	"video/x-msvideo": FtAVI,
	"video/avi":       FtAVI,
	"application/pdf": FtPDF,
	"video/m2ts":      FtM2TS,
}

// CheckExt validates a path against the extension allow-list. The
// returned error wraps ErrUnsupportedExt.
func CheckExt(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExts[ext] {
		return fmt.Errorf("%w: %q", ErrUnsupportedExt, ext)
	}
	return nil
}

// FileTypeForMIME maps a MIME Type tag value to its FileType. The
// returned error wraps ErrUnknownMIME.
func FileTypeForMIME(mime string) (FileType, error) {
	ft, ok := mimeMap[strings.TrimSpace(strings.ToLower(mime))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMIME, mime)
	}
	return ft, nil
}
