// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Dec 12th 2025
// Project: DirectLiNGAM Causal Discovery with Kernel Independence Measures
// Class: 02-613 at Caregie Mellon University

package main

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/roronya/DirectLiNGAM/lingam"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Delimiter value that splits fields on any run of spaces or tabs
const whitespaceDelimiter = "whitespace"

// Dataset holds variable-major samples ready for lingam.Fit.
type Dataset struct {
	// n_variables x n_samples
	X *mat.Dense
	// One name per variable (row of X)
	VarNames []string
}

// TableOptions describes how a sample table is laid out on disk.
type TableOptions struct {
	// Field separator, a single character or "whitespace"
	Delimiter string
	// First row holds variable names
	Header bool
	// Subtract each variable's mean
	Center bool
}

// LoadTable loads a table with one sample per row and one variable per column
// and transposes it into a Dataset.
func LoadTable(path string, opts TableOptions) (*Dataset, error) {
	// 1. Open file
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	// 2. Split into records
	records, err := readRecords(f, opts.Delimiter)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty table in %s", path)
	}

	// 3. Header row, or generated names
	K := len(records[0]) // number of variables
	var names []string
	first := 0
	if opts.Header {
		names = records[0]
		first = 1
	} else {
		names = make([]string, K)
		for j := range names {
			names[j] = fmt.Sprintf("x%d", j)
		}
	}
	if K == 0 {
		return nil, fmt.Errorf("no columns in %s", path)
	}

	// 4. Parse each data row straight into variable-major layout
	T := len(records) - first // number of samples
	if T == 0 {
		return nil, fmt.Errorf("no data rows in %s", path)
	}
	X := mat.NewDense(K, T, nil)
	for row, record := range records[first:] {
		line := row + first + 1 // 1-based line number for messages
		if len(record) != K {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", line, K, len(record))
		}
		for j, s := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, fmt.Errorf("parse float at row %d col %d (%q): %w", line, j+1, s, err)
			}
			X.Set(j, row, v)
		}
	}

	// 5. Optional mean-centering
	if opts.Center {
		CenterVariables(X)
	}

	return &Dataset{X: X, VarNames: names}, nil
}

// CenterVariables subtracts the mean of every row of X in place.
func CenterVariables(X *mat.Dense) {
	n, _ := X.Dims()
	for i := 0; i < n; i++ {
		row := X.RawRowView(i)
		mean := stat.Mean(row, nil)
		for t := range row {
			row[t] -= mean
		}
	}
}

// readRecords splits r into fields using delim, skipping blank lines.
func readRecords(r io.Reader, delim string) ([][]string, error) {
	if delim == "" || delim == whitespaceDelimiter {
		var records [][]string
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
		for scanner.Scan() {
			fields := strings.Fields(scanner.Text())
			if len(fields) == 0 {
				continue
			}
			records = append(records, fields)
		}
		return records, scanner.Err()
	}

	if len([]rune(delim)) != 1 {
		return nil, fmt.Errorf("delimiter must be a single character or %q, got %q", whitespaceDelimiter, delim)
	}
	cr := csv.NewReader(r)
	cr.Comma = []rune(delim)[0]
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // checked per row with better messages

	var records [][]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		// Skip completely empty lines
		if len(record) == 1 && record[0] == "" {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// LoadPrior reads an n x n prior knowledge matrix of -1, 0 and 1 from a CSV file.
func LoadPrior(path string) (lingam.PriorKnowledge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := readRecords(f, ",")
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	pk := make(lingam.PriorKnowledge, len(records))
	for i, record := range records {
		pk[i] = make([]int, len(record))
		for j, s := range record {
			v, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return nil, fmt.Errorf("parse prior at row %d col %d (%q): %w", i+1, j+1, s, err)
			}
			pk[i][j] = v
		}
	}
	return pk, nil
}

// PrintResult prints the causal order and the coefficient matrix.
func PrintResult(w io.Writer, res *lingam.Result, varNames []string) {
	fmt.Fprintln(w, "\n=== Causal Order ===")
	names := make([]string, len(res.Order))
	for p, idx := range res.Order {
		names[p] = varNames[idx]
	}
	fmt.Fprintln(w, strings.Join(names, " -> "))

	fmt.Fprintln(w, "\n=== Coefficient Matrix (order space) ===")
	fmt.Fprintf(w, "%v\n", mat.Formatted(res.Coefficients, mat.Prefix(" ")))
}

// PrintEdges prints every nonzero effect as "cause -> effect : coefficient".
func PrintEdges(w io.Writer, edges []lingam.Edge) {
	fmt.Fprintln(w, "\n=== Causal Edges ===")
	fmt.Fprintf(w, "%-20s -> %-20s | Coefficient\n", "Cause", "Effect")
	fmt.Fprintln(w, "------------------------------------------------------------")
	for _, e := range edges {
		fmt.Fprintf(w, "%-20s -> %-20s | %11.6f\n", e.FromLabel, e.ToLabel, e.Weight)
	}
}

// OutputCoefficientsToCSV writes the coefficient matrix with variable names
// in causal order as both header and first column.
func OutputCoefficientsToCSV(path string, res *lingam.Result, varNames []string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	n := len(res.Order)
	header := make([]string, 0, n+1)
	header = append(header, "")
	for _, idx := range res.Order {
		header = append(header, varNames[idx])
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		record := make([]string, 0, n+1)
		record = append(record, varNames[res.Order[i]])
		for j := 0; j < n; j++ {
			record = append(record, strconv.FormatFloat(res.Coefficients.At(i, j), 'f', -1, 64))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// OutputEdgesToCSV writes the nonzero effects in long format.
// Columns: Cause, Effect, Coefficient
func OutputEdgesToCSV(path string, edges []lingam.Edge) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"Cause", "Effect", "Coefficient"}); err != nil {
		return err
	}
	for _, e := range edges {
		rec := []string{e.FromLabel, e.ToLabel, strconv.FormatFloat(e.Weight, 'f', -1, 64)}
		if err := writer.Write(rec); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
