// Package output renders rows, statistics, series and column listings.
//
// Three formats implement the Formatter interface:
//
//   - text: statistics as sentences, everything else as aligned tables
//   - json / jsonl: one JSON value per line (a series is a single object)
//   - csv: comma-separated records, with a header where one applies
//
// # Basic Usage
//
//	formatter := output.New("text", os.Stdout)
//	err := formatter.FormatResults([]output.Result{{
//	    Dataset:   "test.csv",
//	    Country:   "USA",
//	    Operation: "sum",
//	    Column:    2,
//	    Value:     6,
//	}})
//
// prints
//
//	In the test.csv dataset, for country='USA', the sum of values in column 2 is 6.
//
// # Writing to Different Destinations
//
// Change output destination dynamically:
//
//	formatter := output.NewCSVFormatter(os.Stdout)
//	file, err := os.Create("matches.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer file.Close()
//
//	formatter.SetOutput(file)
//	if err := formatter.FormatRows(rows); err != nil {
//	    log.Fatal(err)
//	}
//
// # CSV Injection
//
// The CSV formatter prefixes fields that would start a spreadsheet formula
// ('=', '+', '-', '@', tab, carriage return, newline, '|') with a single
// quote. Fields that are plain signed numbers are written unchanged.
package output
