// Package reader turns table files into rows of string fields.
//
// Every format is exposed through the same pull-based Source interface, so
// the filtering and aggregation code in package query never needs to know
// where a row came from.
//
// # Text Files
//
// By default each line is one record and fields are separated by the literal
// comma character. There is no quoting and no header skipping:
//
//	src, err := reader.Open("Agrofood_co2_emission.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	for {
//	    row, err := src.Next()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(row[0])
//	}
//
// Pass WithQuoted(true) to parse RFC 4180 quoted fields instead.
//
// # Parquet and Excel
//
// Files ending in ".parquet" are read with parquet-go and each leaf column
// becomes one field. Files ending in ".xlsx" are read with excelize; the
// first sheet is used unless WithSheet names another.
//
// # Multiple Files
//
// A path containing glob wildcards reads every matching file in lexical
// order as one table:
//
//	src, err := reader.Open("data/emissions-*.csv")
//
// # Errors
//
// A path that does not exist or cannot be read fails with a *NotFoundError,
// which matches ErrResourceNotFound and fs.ErrNotExist under errors.Is.
package reader
