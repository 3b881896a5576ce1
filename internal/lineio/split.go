package lineio

import (
	"bytes"
	"io"

	textunicode "golang.org/x/text/encoding/unicode"
	xtransform "golang.org/x/text/transform"
)

// ScanUniversalLines is a bufio.SplitFunc that ends a line at "\n",
// "\r\n" or a lone "\r". The terminator is not part of the token. A final
// line without a terminator is returned as is.
func ScanUniversalLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
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
		if atEOF {
			return i + 1, data[:i], nil
		}
		// Lone '\r' at the end of the buffer: wait to see if '\n' follows.
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// NewDecodingReader strips a UTF-8 byte order mark and decodes UTF-16
// input that starts with one. Anything else is passed through untouched.
func NewDecodingReader(r io.Reader) io.Reader {
	return xtransform.NewReader(r, textunicode.BOMOverride(xtransform.Nop))
}
