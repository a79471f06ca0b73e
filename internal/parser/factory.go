package parser

import (
	"fmt"
	"path/filepath"
	"strings"
)

// NewParser creates a parser based on file extension or content
func NewParser(filename string, athlete Athlete) (Parser, error) {
	// First try by extension
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".fit":
		return NewFITParser(athlete), nil
	case ".tcx":
		return NewTCXParser(athlete), nil
	case ".gpx":
		return NewGPXParser(athlete), nil
	case ".txt":
		return NewTextParser(), nil
	}

	// If extension doesn't match, detect by content
	fileType, err := DetectFileType(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to detect file type: %w", err)
	}

	return parserFor(fileType, athlete)
}

// NewParserFromData creates a parser based on file content
func NewParserFromData(data []byte, athlete Athlete) (Parser, error) {
	return parserFor(DetectFileTypeFromData(data), athlete)
}

func parserFor(fileType FileType, athlete Athlete) (Parser, error) {
	switch fileType {
	case FileTypeFIT:
		return NewFITParser(athlete), nil
	case FileTypeTCX:
		return NewTCXParser(athlete), nil
	case FileTypeGPX:
		return NewGPXParser(athlete), nil
	case FileTypeText:
		return NewTextParser(), nil
	default:
		return nil, fmt.Errorf("unsupported file type: %s", fileType)
	}
}
