// Package query filters table rows by a column value and summarizes a
// numeric column of the result.
//
// The pipeline has three steps that are usable on their own:
//
//   - FilterRows / FilterFile select rows whose field at a column index
//     equals a query value (exact string equality, input order preserved).
//   - ExtractColumn parses one column of those rows into float64 values.
//   - Aggregate (or Operation.Apply) computes sum, mean, median or
//     population standard deviation.
//
// # Basic Usage
//
//	rows, err := query.FilterFile("Agrofood_co2_emission.csv", "Canada", 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	values, err := query.ExtractColumn(rows, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	mean, err := query.Aggregate(values, "mean")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Operations
//
// The accepted names are "sum", "mean", "median" and "standard deviation".
// Any other name fails with ErrUnsupportedOperation; nothing falls back to
// a default. Mean, median and standard deviation of zero values fail with
// ErrDivisionByZero, while the sum of zero values is 0.
//
// # Series
//
// BuildSeries groups the values and years of several countries for a
// plotting consumer:
//
//	s, err := query.BuildSeries(rows, []string{"Canada", "Mexico"},
//	    query.SeriesColumns{Country: 0, Year: 1, Value: 2})
//
// # Errors
//
// Failures carry typed details: *IndexError for rows with too few fields,
// *ParseError for non-numeric fields and *UnsupportedOperationError for
// unknown operation names. Each matches its Err* sentinel under errors.Is.
package query
