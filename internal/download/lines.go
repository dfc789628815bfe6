package download

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"unicode"
)

// maxLineSize bounds a single output line
const maxLineSize = 1024 * 1024

// scanOutputLines is a bufio.SplitFunc that ends a line at "\n", "\r\n" or
// a lone "\r". yt-dlp redraws its progress line with bare carriage returns.
func scanOutputLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		// A trailing "\r" may be the first half of "\r\n".
		if !atEOF {
			return 0, nil, nil
		}
		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// readLines calls emit for every line of r, blank ones included, with
// trailing whitespace removed, in stream order.
func readLines(r io.Reader, emit func(string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(scanOutputLines)

	for scanner.Scan() {
		emit(strings.TrimRightFunc(scanner.Text(), unicode.IsSpace))
	}
	return scanner.Err()
}
