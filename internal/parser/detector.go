// internal/parser/detector.go
package parser

import (
	"bytes"
	"os"
	"unicode"
	"unicode/utf8"
)

type FileType string

const (
	FileTypeFIT     FileType = "fit"
	FileTypeTCX     FileType = "tcx"
	FileTypeGPX     FileType = "gpx"
	FileTypeText    FileType = "text"
	FileTypeUnknown FileType = "unknown"
)

func DetectFileType(filepath string) (FileType, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return FileTypeUnknown, err
	}
	defer file.Close()

	// Read first 512 bytes for detection, plus one to tell a cut-off read
	header := make([]byte, 513)
	n, err := file.Read(header)
	if err != nil && n == 0 {
		return FileTypeUnknown, err
	}

	return DetectFileTypeFromData(header[:n]), nil
}

func DetectFileTypeFromData(data []byte) FileType {
	// FIT header: size byte, protocol, profile (2), data size (4), ".FIT"
	if len(data) >= 12 && bytes.Equal(data[8:12], []byte(".FIT")) {
		return FileTypeFIT
	}

	head, truncated := data, false
	if len(head) > 512 {
		head, truncated = head[:512], true
	}
	head = bytes.TrimPrefix(head, []byte("\xef\xbb\xbf"))
	trimmed := bytes.TrimSpace(head)

	if bytes.HasPrefix(trimmed, []byte("<")) {
		if bytes.Contains(head, []byte("TrainingCenterDatabase")) {
			return FileTypeTCX
		}
		if bytes.Contains(head, []byte("<gpx")) ||
			bytes.Contains(head, []byte("topografix.com/GPX")) {
			return FileTypeGPX
		}
		return FileTypeUnknown
	}

	if len(trimmed) > 0 && isText(head, truncated) {
		return FileTypeText
	}

	return FileTypeUnknown
}

// isText reports whether data looks like UTF-8 text. When data was cut from a
// longer input, a broken rune in its last bytes is tolerated.
func isText(data []byte, truncated bool) bool {
	for i, r := range string(data) {
		if r == utf8.RuneError && !(truncated && i > len(data)-utf8.UTFMax) {
			return false
		}
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return false
		}
	}
	return true
}
