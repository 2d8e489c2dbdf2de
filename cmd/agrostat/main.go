package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vegasq/agrostat/internal/config"
	"github.com/vegasq/agrostat/internal/logger"
	"github.com/vegasq/agrostat/output"
	"github.com/vegasq/agrostat/query"
	"github.com/vegasq/agrostat/reader"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command with args and returns the process exit code:
// 0 on success, 1 when the work fails, 2 when the flags cannot be parsed.
func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.New()

	fs := flag.NewFlagSet("agrostat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.RegisterFlags(fs)
	fs.Usage = func() { usage(fs, stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	// Get filename from positional args when --file_path is not given
	if cfg.FilePath == "" && fs.NArg() > 0 {
		cfg.FilePath = fs.Arg(0)
	}

	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		fs.Usage()
		return 1
	}

	if err := execute(cfg, output.New(cfg.Format, stdout)); err != nil {
		report(stderr, err)
		return 1
	}
	return 0
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: agrostat [options] [file]\n\n")
	fmt.Fprintf(w, "Given the Agrofood_co2_emission.csv dataset, performs an operation on a column for a country.\n")
	fmt.Fprintf(w, "Operations you can perform are: 'sum', 'mean', 'median', 'standard deviation'\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  agrostat --country Canada --country_column 0 --emissions_column 29 data.csv\n")
	fmt.Fprintf(w, "  agrostat --country Canada --country_column 0 --emissions_column 29 --operation median data.csv\n")
	fmt.Fprintf(w, "  agrostat --country Canada --country Mexico --country_column 0 --year_column 1 --emissions_column 29 -format json data.csv\n")
	fmt.Fprintf(w, "  agrostat --country Canada --country_column 0 --rows -format csv data.parquet\n")
	fmt.Fprintf(w, "  agrostat --columns data.xlsx\n")
}

func execute(cfg *config.Config, formatter output.Formatter) error {
	opts := []reader.Option{reader.WithQuoted(cfg.Quoted), reader.WithSheet(cfg.Sheet)}
	log := logger.L.WithField("path", cfg.FilePath)

	switch cfg.Mode() {
	case config.ModeColumns:
		columns, err := reader.Columns(cfg.FilePath, opts...)
		if err != nil {
			return err
		}
		return formatter.FormatColumns(columns)

	case config.ModeSeries:
		return executeSeries(cfg, formatter, opts, log)

	case config.ModeRows:
		var all []reader.Row
		for _, country := range cfg.Countries {
			rows, err := filterCountry(cfg, country, opts, log)
			if err != nil {
				return err
			}
			all = append(all, rows...)
		}
		if cfg.Limit > 0 && len(all) > cfg.Limit {
			all = all[:cfg.Limit]
		}
		return formatter.FormatRows(all)
	}

	operation, err := query.ParseOperation(cfg.Operation)
	if err != nil {
		return err
	}

	results := make([]output.Result, 0, len(cfg.Countries))
	for _, country := range cfg.Countries {
		rows, err := filterCountry(cfg, country, opts, log)
		if err != nil {
			return err
		}

		values, err := query.ExtractColumn(rows, cfg.EmissionsColumn)
		if err != nil {
			return errors.Wrapf(err, "country %q", country)
		}

		value, err := operation.Apply(values)
		if err != nil {
			return errors.Wrapf(err, "%s for country %q", operation, country)
		}

		results = append(results, output.Result{
			Dataset:   filepath.Base(cfg.FilePath),
			Country:   country,
			Operation: operation.String(),
			Column:    cfg.EmissionsColumn,
			Count:     len(values),
			Value:     value,
		})
	}
	return formatter.FormatResults(results)
}

func filterCountry(cfg *config.Config, country string, opts []reader.Option, log *logrus.Entry) ([]reader.Row, error) {
	rows, err := query.FilterFile(cfg.FilePath, country, cfg.CountryColumn, opts...)
	if err != nil {
		return nil, err
	}

	entry := log.WithFields(logrus.Fields{
		"country": country,
		"column":  cfg.CountryColumn,
		"matched": len(rows),
	})
	if len(rows) == 0 {
		entry.Warn("no rows matched")
	} else {
		entry.Debug("filtered rows")
	}
	return rows, nil
}

func executeSeries(cfg *config.Config, formatter output.Formatter, opts []reader.Option, log *logrus.Entry) error {
	src, err := reader.Open(cfg.FilePath, opts...)
	if err != nil {
		return err
	}
	table, err := reader.ReadAll(src)
	closeErr := src.Close()
	if err != nil {
		return err
	}
	if closeErr != nil {
		return errors.Wrap(closeErr, "failed to close source")
	}
	log.WithField("rows", len(table)).Debug("loaded table")

	series, err := query.BuildSeries(table, cfg.Countries, query.SeriesColumns{
		Country: cfg.CountryColumn,
		Year:    cfg.YearColumn,
		Value:   cfg.EmissionsColumn,
	})
	if err != nil {
		return err
	}
	return formatter.FormatSeries(series)
}

// report prints err and, where it helps, a hint on how to fix the input.
func report(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	var indexErr *query.IndexError
	switch {
	case errors.Is(err, reader.ErrResourceNotFound):
		fmt.Fprintf(w, "Please check the file path and try again.\n")
	case errors.As(err, &indexErr):
		fmt.Fprintf(w, "Use --columns to list the available columns.\n")
	case errors.Is(err, query.ErrDivisionByZero):
		fmt.Fprintf(w, "No values matched; check --country and --country_column.\n")
	}
}
