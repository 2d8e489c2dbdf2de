package reader

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ErrResourceNotFound is matched by every error returned when an input path
// does not exist or cannot be read.
var ErrResourceNotFound = errors.New("resource not found")

// NotFoundError reports an input path that could not be opened.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find file %s. Please provide a valid path", e.Path)
}

// Is reports true for ErrResourceNotFound and fs.ErrNotExist.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrResourceNotFound || target == fs.ErrNotExist
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// Row is one record of a table: an ordered sequence of string fields.
type Row []string

// Source yields table rows one at a time.
//
// Next returns io.EOF once the table is exhausted. Close releases any file
// handle held by the source and is safe to call more than once.
type Source interface {
	Next() (Row, error)
	Close() error
}

// sliceSource serves an already materialized table.
type sliceSource struct {
	rows []Row
	pos  int
}

// FromRows returns a Source over rows. The slice is not copied.
func FromRows(rows []Row) Source {
	return &sliceSource{rows: rows}
}

func (s *sliceSource) Next() (Row, error) {
	if s.pos >= len(s.rows) {
		return nil, io.EOF
	}
	row := s.rows[s.pos]
	s.pos++
	return row, nil
}

func (s *sliceSource) Close() error { return nil }

// ReadAll drains src into memory. It does not close src.
func ReadAll(src Source) ([]Row, error) {
	rows := make([]Row, 0)
	for {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

type options struct {
	quoted bool
	sheet  string
}

// Option configures how Open interprets a file.
type Option func(*options)

// WithQuoted switches text files from naive comma splitting to RFC 4180
// parsing, so quoted fields may contain commas.
func WithQuoted(quoted bool) Option {
	return func(o *options) { o.quoted = quoted }
}

// WithSheet selects the workbook sheet read from xlsx files. The first
// sheet is used when name is empty.
func WithSheet(name string) Option {
	return func(o *options) { o.sheet = name }
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// maxFiles caps how many files a single glob pattern may expand to.
const maxFiles = 1000

// Open returns a Source for the table stored at path.
//
// The format is chosen from the file extension: ".parquet" files are read
// with parquet-go, ".xlsx" and ".xlsm" workbooks with excelize, and anything
// else as comma separated text lines. A path containing glob wildcards is
// expanded and the matching files are read one after another in lexical
// order, unless a file exists under that literal name.
func Open(path string, opts ...Option) (Source, error) {
	o := newOptions(opts)

	if !isGlob(path) || exists(path) {
		return openFile(path, o)
	}

	matches, err := filepath.Glob(path)
	if err != nil {
		return nil, errors.Wrap(err, "invalid glob pattern")
	}
	if len(matches) == 0 {
		return nil, &NotFoundError{Path: path, Err: fs.ErrNotExist}
	}
	if len(matches) > maxFiles {
		return nil, errors.Errorf("glob pattern matched too many files (%d), maximum is %d", len(matches), maxFiles)
	}
	return &multiSource{paths: matches, opts: o}, nil
}

func isGlob(path string) bool {
	return strings.ContainsAny(path, "*?[")
}

// exists reports whether path names an existing file or directory.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func openFile(path string, o options) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return openParquet(path)
	case ".xlsx", ".xlsm":
		return openWorkbook(path, o.sheet)
	}

	f, err := openReadable(path)
	if err != nil {
		return nil, err
	}
	if o.quoted {
		src := NewCSVSource(f)
		src.closer = f
		return src, nil
	}
	src := NewLineSource(f)
	src.closer = f
	return src, nil
}

// openReadable opens path for reading, mapping missing, unreadable and
// directory paths to a NotFoundError.
func openReadable(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}

	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(err, "failed to stat %s", path)
	}
	if stat.IsDir() {
		_ = f.Close()
		return nil, &NotFoundError{Path: path, Err: errors.Errorf("%s is a directory", path)}
	}
	return f, nil
}

// multiSource concatenates the rows of several files, opening each lazily.
type multiSource struct {
	paths   []string
	opts    options
	current Source
}

func (m *multiSource) Next() (Row, error) {
	for {
		if m.current == nil {
			if len(m.paths) == 0 {
				return nil, io.EOF
			}
			src, err := openFile(m.paths[0], m.opts)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to read %s", m.paths[0])
			}
			m.current = src
			m.paths = m.paths[1:]
		}

		row, err := m.current.Next()
		if errors.Is(err, io.EOF) {
			closeErr := m.current.Close()
			m.current = nil
			if closeErr != nil {
				return nil, errors.Wrap(closeErr, "failed to close source")
			}
			continue
		}
		return row, err
	}
}

func (m *multiSource) Close() error {
	m.paths = nil
	if m.current == nil {
		return nil
	}
	err := m.current.Close()
	m.current = nil
	return err
}
