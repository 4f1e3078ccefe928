// Command sheetfill fills, copies, and aggregates ranges in xlsx workbooks
// from the command line.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/javajack/sheetfill"
)

var (
	cfgFile  string
	logLevel string

	// fill flags
	dataPath   string
	gridInput  bool
	columns    []string
	headerRow  string
	startRow   int
	overwrite  bool
	skipNulls  bool
	strict     bool
	filterExpr string

	// copy flags
	transpose bool

	// aggregate flags
	opName   string
	axisName string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetfill",
		Short: "Fill, copy, and aggregate tabular data in xlsx workbooks",
		Long: `sheetfill places tabular data into existing xlsx sheets whose header row
is not necessarily the first row, copies rectangular ranges between
workbooks, and reduces numeric ranges by row or column.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.sheetfill.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	fillCmd := &cobra.Command{
		Use:   "fill <book.xlsx> <sheet>",
		Short: "Fill a sheet with JSON records",
		Args:  cobra.ExactArgs(2),
		RunE:  runFill,
	}
	fillCmd.Flags().StringVarP(&dataPath, "data", "d", "", "JSON input file (default: stdin)")
	fillCmd.Flags().BoolVar(&gridInput, "grid", false, "input is an array of row arrays instead of objects")
	fillCmd.Flags().StringSliceVar(&columns, "columns", nil, "column names for --grid input")
	fillCmd.Flags().StringVar(&headerRow, "header-row", "last", "header row: first, last, or a row number")
	fillCmd.Flags().IntVar(&startRow, "start-row", 0, "override the computed write-start row")
	fillCmd.Flags().BoolVar(&overwrite, "overwrite", false, "write immediately below the header instead of appending")
	fillCmd.Flags().BoolVar(&skipNulls, "skip-nulls", false, "leave destination cells untouched for null inputs")
	fillCmd.Flags().BoolVar(&strict, "strict", false, "require input columns to match the header exactly")
	fillCmd.Flags().StringVar(&filterExpr, "filter", "", "boolean expression selecting input rows")

	copyCmd := &cobra.Command{
		Use:   "copy <src.xlsx> <sheet> <range> <dst.xlsx> <sheet> <anchor>",
		Short: "Copy a cell range between sheets or workbooks",
		Args:  cobra.ExactArgs(6),
		RunE:  runCopy,
	}
	copyCmd.Flags().BoolVar(&transpose, "transpose", false, "swap rows and columns while copying")

	aggCmd := &cobra.Command{
		Use:   "aggregate <src.xlsx> <sheet> <range> <dst.xlsx> <sheet> <anchor>",
		Short: "Reduce a numeric range and write the result vector",
		Args:  cobra.ExactArgs(6),
		RunE:  runAggregate,
	}
	aggCmd.Flags().StringVar(&opName, "op", "sum", "operation: sum, count, average")
	aggCmd.Flags().StringVar(&axisName, "axis", "row", "axis: row, column")

	rootCmd.AddCommand(fillCmd, copyCmd, aggCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads config file defaults and configures logging. Flags the user
// set explicitly win over config values.
func setup(cmd *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".sheetfill")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("SHEETFILL")
	viper.AutomaticEnv()

	viper.SetDefault("header_row", "last")
	viper.SetDefault("log_level", "error")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if !cmd.Flags().Changed("log-level") {
		logLevel = viper.GetString("log_level")
	}
	if f := cmd.Flags().Lookup("header-row"); f != nil && !f.Changed {
		headerRow = viper.GetString("header_row")
	}
	if f := cmd.Flags().Lookup("overwrite"); f != nil && !f.Changed {
		overwrite = viper.GetBool("overwrite")
	}
	if f := cmd.Flags().Lookup("skip-nulls"); f != nil && !f.Changed {
		skipNulls = viper.GetBool("skip_nulls")
	}
	if f := cmd.Flags().Lookup("strict"); f != nil && !f.Changed {
		strict = viper.GetBool("strict")
	}
	if f := cmd.Flags().Lookup("start-row"); f != nil && !f.Changed {
		startRow = viper.GetInt("start_row")
	}
	if f := cmd.Flags().Lookup("columns"); f != nil && !f.Changed {
		if v := viper.GetStringSlice("columns"); len(v) > 0 {
			columns = v
		}
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.ErrorLevel
	}
	logger.SetLevel(level)
	sheetfill.SetLogger(logger)
	return nil
}

func runFill(_ *cobra.Command, args []string) error {
	src, err := readSource()
	if err != nil {
		return err
	}

	opts, err := fillOptions()
	if err != nil {
		return err
	}

	n, err := sheetfill.FillSheet(args[0], args[1], src, opts...)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %d rows to %s!%s\n", n, args[0], args[1])
	return nil
}

// readSource decodes the JSON input into a TabularSource: an array of
// objects by default, an array of row arrays with --grid.
func readSource() (*sheetfill.TabularSource, error) {
	var r io.Reader = os.Stdin
	if dataPath != "" {
		f, err := os.Open(dataPath)
		if err != nil {
			return nil, fmt.Errorf("open data file: %w", err)
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	if gridInput {
		var rows [][]any
		if err := dec.Decode(&rows); err != nil {
			return nil, fmt.Errorf("decode grid input: %w", err)
		}
		return sheetfill.FromGrid(rows)
	}
	var records []map[string]any
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return sheetfill.FromRecords(records)
}

func fillOptions() ([]sheetfill.FillOption, error) {
	loc, err := parseHeaderRow(headerRow)
	if err != nil {
		return nil, err
	}
	opts := []sheetfill.FillOption{
		sheetfill.WithHeaderRow(loc),
		sheetfill.WithOverwrite(overwrite),
		sheetfill.WithSkipNulls(skipNulls),
		sheetfill.WithStrict(strict),
	}
	if len(columns) > 0 {
		opts = append(opts, sheetfill.WithColumns(columns))
	}
	if startRow > 0 {
		opts = append(opts, sheetfill.WithStartRow(startRow))
	}
	if filterExpr != "" {
		opts = append(opts, sheetfill.WithRowFilter(filterExpr))
	}
	return opts, nil
}

func parseHeaderRow(s string) (sheetfill.HeaderLocation, error) {
	switch s {
	case "first":
		return sheetfill.HeaderFirst, nil
	case "last":
		return sheetfill.HeaderLast, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return sheetfill.HeaderLocation{}, fmt.Errorf("invalid header row %q: use first, last, or a positive row number", s)
	}
	return sheetfill.HeaderRow(n), nil
}

func runCopy(_ *cobra.Command, args []string) error {
	rng, err := sheetfill.ParseRangeRef(args[2])
	if err != nil {
		return err
	}
	anchor, err := sheetfill.ParseCellRef(args[5])
	if err != nil {
		return err
	}

	rows, cols, err := sheetfill.CopyRange(args[0], args[1], rng, args[3], args[4], anchor, transpose)
	if err != nil {
		return err
	}
	fmt.Printf("copied %dx%d cells to %s!%s\n", rows, cols, args[3], args[4])
	return nil
}

func runAggregate(_ *cobra.Command, args []string) error {
	rng, err := sheetfill.ParseRangeRef(args[2])
	if err != nil {
		return err
	}
	anchor, err := sheetfill.ParseCellRef(args[5])
	if err != nil {
		return err
	}
	op, err := sheetfill.ParseAggOp(opName)
	if err != nil {
		return err
	}
	axis, err := sheetfill.ParseAxis(axisName)
	if err != nil {
		return err
	}

	n, err := sheetfill.AggregateRange(args[0], args[1], rng, op, axis, args[3], args[4], anchor)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %d aggregated values to %s!%s\n", n, args[3], args[4])
	return nil
}
