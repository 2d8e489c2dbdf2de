package reader

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// openWorkbook reads one sheet of an Excel workbook into memory. Cell values
// are taken as excelize formats them; trailing empty cells of a row are
// dropped, so such rows may be shorter than the header.
func openWorkbook(path, sheet string) (Source, error) {
	file, err := openReadable(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open workbook %s", path)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, errors.Errorf("workbook %s has no sheets", path)
		}
	}

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %q of %s", sheet, path)
	}

	rows := make([]Row, len(cells))
	for i, cell := range cells {
		rows[i] = Row(cell)
	}
	return FromRows(rows), nil
}
