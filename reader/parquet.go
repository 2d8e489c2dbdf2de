package reader

import (
	"io"
	"os"
	"strconv"

	"github.com/parquet-go/parquet-go"
	"github.com/pkg/errors"
)

// rowBatchSize is how many parquet rows are decoded per ReadRows call.
const rowBatchSize = 128

// ParquetReader reads a parquet file as string rows.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type ParquetReader struct {
	file   *os.File
	pqFile *parquet.File
}

// NewParquetReader opens path and validates it as a parquet file.
//
// Example:
//
//	r, err := NewParquetReader("emissions.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
func NewParquetReader(path string) (*ParquetReader, error) {
	file, err := openReadable(path)
	if err != nil {
		return nil, err
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, errors.Wrap(err, "failed to stat file")
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, errors.Wrap(err, "failed to open parquet file")
	}

	return &ParquetReader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// ReadAll reads every row into memory.
//
// Each leaf column becomes one field, in schema order, rendered the way it
// would appear in a CSV export. Null values become empty strings. Repeated
// leaves keep their first value.
func (r *ParquetReader) ReadAll() ([]Row, error) {
	width := len(r.pqFile.Schema().Columns())
	rows := make([]Row, 0, r.pqFile.NumRows())

	reader := parquet.NewReader(r.pqFile)
	defer func() { _ = reader.Close() }()

	buf := make([]parquet.Row, rowBatchSize)
	for {
		n, err := reader.ReadRows(buf)
		for _, values := range buf[:n] {
			rows = append(rows, toRow(values, width))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, errors.Wrap(err, "failed to read row")
		}
		if n == 0 {
			break
		}
	}

	return rows, nil
}

func toRow(values parquet.Row, width int) Row {
	row := make(Row, width)
	seen := make([]bool, width)
	for _, v := range values {
		col := v.Column()
		if col < 0 || col >= width || seen[col] {
			continue
		}
		seen[col] = true
		if v.IsNull() {
			continue
		}
		row[col] = formatParquetValue(v)
	}
	return row
}

func formatParquetValue(v parquet.Value) string {
	switch v.Kind() {
	case parquet.Boolean:
		return strconv.FormatBool(v.Boolean())
	case parquet.Int32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case parquet.Int64:
		return strconv.FormatInt(v.Int64(), 10)
	case parquet.Float:
		return strconv.FormatFloat(float64(v.Float()), 'g', -1, 32)
	case parquet.Double:
		return strconv.FormatFloat(v.Double(), 'g', -1, 64)
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return string(v.ByteArray())
	default:
		return v.String()
	}
}

// Schema returns the parquet file schema.
func (r *ParquetReader) Schema() *parquet.Schema {
	return r.pqFile.Schema()
}

// Close releases the file handle. It is safe to call Close multiple times.
func (r *ParquetReader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// openParquet materializes a parquet file so the handle is released before
// the first row is served.
func openParquet(path string) (Source, error) {
	r, err := NewParquetReader(path)
	if err != nil {
		return nil, err
	}

	rows, readErr := r.ReadAll()
	closeErr := r.Close()

	if readErr != nil {
		return nil, errors.Wrapf(readErr, "failed to read rows from %s", path)
	}
	if closeErr != nil {
		return nil, errors.Wrapf(closeErr, "failed to close %s", path)
	}
	return FromRows(rows), nil
}
