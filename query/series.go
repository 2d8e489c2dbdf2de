package query

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/vegasq/agrostat/reader"
)

// SeriesColumns names the column indexes used to build a Series.
type SeriesColumns struct {
	Country int
	Year    int
	Value   int
}

// Series holds per-country values and years in row order, the shape a
// plotting consumer needs for line charts and heatmaps.
type Series struct {
	countries []string
	Values    map[string][]float64
	Years     map[string][]int

	// TableYears is the year axis of the whole table, every country
	// included. See TableYears.
	TableYears []int
}

// BuildSeries filters rows for each country and extracts its years and
// values. Countries keep the order given; duplicates are collapsed. A country
// without rows maps to empty slices.
func BuildSeries(rows []reader.Row, countries []string, cols SeriesColumns) (*Series, error) {
	tableYears, err := TableYears(rows, cols.Year)
	if err != nil {
		return nil, err
	}

	s := &Series{
		Values:     make(map[string][]float64, len(countries)),
		Years:      make(map[string][]int, len(countries)),
		TableYears: tableYears,
	}

	for _, country := range countries {
		if _, seen := s.Values[country]; seen {
			continue
		}

		matched, err := FilterRows(reader.FromRows(rows), country, cols.Country)
		if err != nil {
			return nil, errors.Wrapf(err, "country %q", country)
		}

		values, err := ExtractColumn(matched, cols.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "country %q", country)
		}

		years := make([]int, len(matched))
		for i, row := range matched {
			field, err := fieldAt(row, i+1, cols.Year)
			if err != nil {
				return nil, errors.Wrapf(err, "country %q", country)
			}
			if years[i], err = parseYear(field, cols.Year); err != nil {
				return nil, errors.Wrapf(err, "country %q", country)
			}
		}

		s.countries = append(s.countries, country)
		s.Values[country] = values
		s.Years[country] = years
	}

	return s, nil
}

// Countries returns the countries in the order they were requested.
func (s *Series) Countries() []string {
	return slices.Clone(s.countries)
}

// AllYears returns every year present for any requested country, ascending
// and without duplicates. Use TableYears for the axis of the whole table.
func (s *Series) AllYears() []int {
	var all []int
	for _, country := range s.countries {
		all = append(all, s.Years[country]...)
	}
	return distinctSorted(all)
}

// TableYears returns the distinct years in column over all rows, ascending.
// A first row whose year field is not an integer is taken as the header and
// skipped; any later such field is a *ParseError.
func TableYears(rows []reader.Row, column int) ([]int, error) {
	years := make([]int, 0, len(rows))
	for i, row := range rows {
		field, err := fieldAt(row, i+1, column)
		if err != nil {
			return nil, err
		}
		year, err := parseYear(field, column)
		if err != nil {
			if i == 0 {
				continue
			}
			return nil, err
		}
		years = append(years, year)
	}
	return distinctSorted(years), nil
}

func distinctSorted[T constraints.Ordered](xs []T) []T {
	out := slices.Clone(xs)
	slices.Sort(out)
	return slices.Compact(out)
}
