package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/sstent/trainingstats/internal/training"
)

// TextParser reads sensor packages written one per line:
//
//	SWM 720 1 80 25 40
//	RUN: 15000, 1, 75
//
// Blank lines and anything after '#' are ignored.
type TextParser struct{}

func NewTextParser() *TextParser {
	return &TextParser{}
}

func (p *TextParser) ParseData(data []byte) ([]training.Package, error) {
	var packages []training.Package

	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		fields := strings.FieldsFunc(line, isPackageSeparator)
		if len(fields) == 0 {
			continue
		}

		values := make([]float64, 0, len(fields)-1)
		for _, field := range fields[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad value %q: %w", lineNo, field, err)
			}
			values = append(values, v)
		}

		packages = append(packages, training.Package{
			WorkoutType: strings.ToUpper(fields[0]),
			Data:        values,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(packages) == 0 {
		return nil, ErrNoActivityData
	}
	return packages, nil
}

func isPackageSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\r', ',', ':', ';':
		return true
	}
	return false
}
