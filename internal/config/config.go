// Package config holds the command-line settings of agrostat.
package config

import (
	"flag"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/vegasq/agrostat/output"
	"github.com/vegasq/agrostat/query"
)

// Config is the parsed command line.
type Config struct {
	FilePath        string
	Countries       []string
	CountryColumn   int
	EmissionsColumn int
	YearColumn      int
	Operation       string
	Format          string
	Rows            bool
	Columns         bool
	Limit           int
	Quoted          bool
	Sheet           string
	LogLevel        string
}

// unset marks a column flag that was not given.
const unset = -1

// New returns a Config with defaults applied.
func New() *Config {
	return &Config{
		CountryColumn:   unset,
		EmissionsColumn: unset,
		YearColumn:      unset,
		Operation:       query.Sum.String(),
		Format:          "text",
		LogLevel:        "warn",
	}
}

// Mode is what the command does with the filtered rows.
type Mode int

const (
	ModeAggregate Mode = iota
	ModeRows
	ModeSeries
	ModeColumns
)

// Mode reports which output the flags ask for.
func (c *Config) Mode() Mode {
	switch {
	case c.Columns:
		return ModeColumns
	case c.Rows:
		return ModeRows
	case c.YearColumn != unset:
		return ModeSeries
	default:
		return ModeAggregate
	}
}

// RegisterFlags binds c to fs. Flag names keep the underscore style of the
// historical command line.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.FilePath, "file_path", c.FilePath, "Path to the emissions CSV, Parquet or XLSX file (may also be given as the first argument)")
	fs.Var((*stringList)(&c.Countries), "country", "Country whose data you are interested in (repeatable)")
	fs.IntVar(&c.CountryColumn, "country_column", c.CountryColumn, "Index of the country column")
	fs.IntVar(&c.EmissionsColumn, "emissions_column", c.EmissionsColumn, "Index of the emissions column to aggregate")
	fs.IntVar(&c.YearColumn, "year_column", c.YearColumn, "Index of the year column; emits per-country series instead of a statistic")
	fs.StringVar(&c.Operation, "operation", c.Operation, "Operation to perform: "+strings.Join(query.OperationNames(), ", "))
	fs.StringVar(&c.Format, "format", c.Format, "Output format: "+strings.Join(output.Formats, ", "))
	fs.BoolVar(&c.Rows, "rows", c.Rows, "Print matching rows instead of a statistic")
	fs.BoolVar(&c.Columns, "columns", c.Columns, "List the columns of the file and exit")
	fs.IntVar(&c.Limit, "limit", c.Limit, "Limit number of printed rows (0 = unlimited)")
	fs.BoolVar(&c.Quoted, "quoted", c.Quoted, "Parse double-quoted CSV fields instead of splitting on every comma")
	fs.StringVar(&c.Sheet, "sheet", c.Sheet, "Workbook sheet to read from XLSX files (default first sheet)")
	fs.StringVar(&c.LogLevel, "log_level", c.LogLevel, "Diagnostic log level: debug, info, warn, error")
}

// Validate checks the flag combination for the selected mode.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return errors.New("missing --file_path")
	}
	if output.New(c.Format, nil) == nil {
		return errors.Errorf("unsupported format %q (supported: %s)", c.Format, strings.Join(output.Formats, ", "))
	}
	if c.Limit < 0 {
		return errors.Errorf("--limit must be non-negative, got %d", c.Limit)
	}

	mode := c.Mode()
	if mode == ModeColumns {
		return nil
	}

	if len(c.Countries) == 0 {
		return errors.New("missing --country")
	}
	if c.CountryColumn < 0 {
		return errors.New("missing or negative --country_column")
	}

	switch mode {
	case ModeAggregate:
		if c.EmissionsColumn < 0 {
			return errors.New("missing or negative --emissions_column")
		}
		if _, err := query.ParseOperation(c.Operation); err != nil {
			return err
		}
	case ModeSeries:
		if c.EmissionsColumn < 0 {
			return errors.New("missing or negative --emissions_column")
		}
		if c.YearColumn < 0 {
			return errors.New("negative --year_column")
		}
	}
	return nil
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string {
	if s == nil {
		return ""
	}
	quoted := make([]string, len(*s))
	for i, v := range *s {
		quoted[i] = strconv.Quote(v)
	}
	return strings.Join(quoted, ", ")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}
