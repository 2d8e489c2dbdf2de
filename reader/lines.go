package reader

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// maxLineSize bounds a single input line. Longer lines fail with
// bufio.ErrTooLong.
const maxLineSize = 16 << 20

// LineSource splits each text line on the literal comma character.
//
// There is no quoting or escaping: a comma inside a value is a field
// separator. Line endings ("\n" and "\r\n") are stripped before splitting;
// other surrounding whitespace is kept and is part of the first and last
// fields. No header row is skipped. A line longer than 16 MiB is an error
// wrapping bufio.ErrTooLong.
type LineSource struct {
	scanner *bufio.Scanner
	closer  io.Closer
}

// NewLineSource reads comma separated lines from r. Closing the source does
// not close r.
func NewLineSource(r io.Reader) *LineSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &LineSource{scanner: scanner}
}

func (s *LineSource) Next() (Row, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "failed to read line")
		}
		return nil, io.EOF
	}
	return strings.Split(s.scanner.Text(), ","), nil
}

func (s *LineSource) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}

// CSVSource parses RFC 4180 records, so double-quoted fields may contain
// commas, quotes and newlines. Records may have differing field counts.
type CSVSource struct {
	reader *csv.Reader
	closer io.Closer
}

// NewCSVSource reads quoted CSV records from r. Closing the source does not
// close r.
func NewCSVSource(r io.Reader) *CSVSource {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	return &CSVSource{reader: reader}
}

func (s *CSVSource) Next() (Row, error) {
	record, err := s.reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse CSV record")
	}
	return Row(record), nil
}

func (s *CSVSource) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}
