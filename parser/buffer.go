package parser

import (
	"bufio"
	"errors"
	"io"
)

// ReadBytes reads r to the end and returns its contents as an input sequence.
func ReadBytes(r io.Reader) ([]byte, error) {
	return io.ReadAll(r)
}

// ReadRunes reads r to the end, decoding UTF-8 into an input sequence of
// runes. Invalid encodings become utf8.RuneError, one per bad byte.
func ReadRunes(r io.Reader) ([]rune, error) {
	return ReadRunesSize(r, 0)
}

// ReadRunesSize is ReadRunes with a custom internal buffer size.
func ReadRunesSize(r io.Reader, size int) ([]rune, error) {
	var br *bufio.Reader
	if size > 0 {
		br = bufio.NewReaderSize(r, size)
	} else {
		br = bufio.NewReader(r)
	}

	rs := make([]rune, 0, br.Size())
	for {
		c, _, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			return rs, nil
		}
		if err != nil {
			return rs, err
		}
		rs = append(rs, c)
	}
}
