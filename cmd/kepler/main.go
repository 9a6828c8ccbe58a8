// Command kepler solves Kepler's equation for a batch of (M, ecc) rows.
//
// Input is CSV with two columns, mean anomaly and eccentricity, read from
// -in or stdin. Lines starting with '#' are comments. Output is CSV with
// columns E, cosf, sinf (plus residual with -check), or a JSON object of
// parallel arrays with -json.
//
//	kepler -in rows.csv -header -check
//	printf '1,0.5\n2.5,0.9\n' | kepler -json
package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/kepler/anomaly"
	"github.com/katalvlaran/kepler/batch"
)

func main() {
	log.SetFlags(0)

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("kepler: %v", err)
	}
}

// config holds the parsed command-line flags.
type config struct {
	in      string
	tol     float64
	workers int
	header  bool
	json    bool
	check   bool
}

// output is the -json document.
type output struct {
	E        []float64 `json:"E"`
	CosF     []float64 `json:"cosf"`
	SinF     []float64 `json:"sinf"`
	Residual []float64 `json:"residual,omitempty"`
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("kepler", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.in, "in", "", "input CSV file (default stdin)")
	fs.Float64Var(&cfg.tol, "tol", batch.DefaultTolerance, "apoapsis guard threshold on 1+cos(E)")
	fs.IntVar(&cfg.workers, "workers", 0, "max concurrent workers (0 = GOMAXPROCS)")
	fs.BoolVar(&cfg.header, "header", false, "skip the first input row")
	fs.BoolVar(&cfg.json, "json", false, "write JSON instead of CSV")
	fs.BoolVar(&cfg.check, "check", false, "also output the residual E - ecc*sin(E) - M (mod 2pi)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, `Usage: kepler [flags] < rows.csv

Reads "M,ecc" rows and writes "E,cosf,sinf" rows.

Flags:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if cfg.workers < 0 {
		return config{}, fmt.Errorf("-workers must be >= 0, got %d", cfg.workers)
	}
	if !(cfg.tol >= 0) || math.IsInf(cfg.tol, 1) {
		return config{}, fmt.Errorf("-tol must be finite and >= 0, got %v", cfg.tol)
	}

	return cfg, nil
}

// run is main without the process exit, so it can be tested.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	in := stdin
	if cfg.in != "" {
		f, err := os.Open(cfg.in)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	M, ecc, err := readRows(in, cfg.header)
	if err != nil {
		return err
	}

	opts := []batch.Option{batch.WithTolerance(cfg.tol)}
	if cfg.workers > 0 {
		opts = append(opts, batch.WithWorkers(cfg.workers))
	}
	res, err := batch.Solve(M, ecc, opts...)
	if err != nil {
		return err
	}

	var residual []float64
	if cfg.check {
		residual = make([]float64, res.Len())
		for i := range residual {
			residual[i] = anomaly.Residual(res.E[i], M[i], ecc[i])
		}
	}

	if cfg.json {
		enc := json.NewEncoder(stdout)
		return enc.Encode(output{E: res.E, CosF: res.CosF, SinF: res.SinF, Residual: residual})
	}

	return writeRows(stdout, res, residual)
}

// readRows parses "M,ecc" CSV rows.
func readRows(r io.Reader, header bool) (M, ecc []float64, err error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read input: %w", err)
	}
	if header && len(records) > 0 {
		records = records[1:]
	}

	M = make([]float64, len(records))
	ecc = make([]float64, len(records))
	for i, rec := range records {
		if M[i], err = strconv.ParseFloat(strings.TrimSpace(rec[0]), 64); err != nil {
			return nil, nil, fmt.Errorf("row %d: M: %w", i+1, err)
		}
		if ecc[i], err = strconv.ParseFloat(strings.TrimSpace(rec[1]), 64); err != nil {
			return nil, nil, fmt.Errorf("row %d: ecc: %w", i+1, err)
		}
	}

	return M, ecc, nil
}

// writeRows writes the result as CSV with a header line.
func writeRows(w io.Writer, res *batch.Result, residual []float64) error {
	cw := csv.NewWriter(w)

	head := []string{"E", "cosf", "sinf"}
	if residual != nil {
		head = append(head, "residual")
	}
	if err := cw.Write(head); err != nil {
		return err
	}

	row := make([]string, len(head))
	for i := 0; i < res.Len(); i++ {
		row[0] = formatFloat(res.E[i])
		row[1] = formatFloat(res.CosF[i])
		row[2] = formatFloat(res.SinF[i])
		if residual != nil {
			row[3] = formatFloat(residual[i])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
