// ABOUTME: Plain text file reading with optional trailing-newline trimming
// ABOUTME: Interior newlines are always preserved; only the tail is stripped

package fsutil

import (
	"fmt"
	"os"
	"strings"
)

// ReadContents reads the whole file at path as UTF-8 text. When
// stripNewline is true, trailing newline characters are trimmed from
// the end of the result.
func ReadContents(path string, stripNewline bool) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	contents := string(data)
	if stripNewline {
		contents = strings.TrimRight(contents, "\n")
	}
	return contents, nil
}
