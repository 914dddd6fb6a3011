// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Dec 12th 2025
// Project: DirectLiNGAM Causal Discovery with Kernel Independence Measures
// Class: 02-613 at Caregie Mellon University

package main

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/roronya/DirectLiNGAM/lingam"
)

// chainTable renders a = e_a, b = e_b + a, c = e_c + a + b as a CSV table
func chainTable(seed uint64, m int) string {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	var sb strings.Builder
	sb.WriteString("a,b,c\n")
	for t := 0; t < m; t++ {
		a := rng.ExpFloat64()
		b := rng.ExpFloat64() + a
		c := rng.ExpFloat64() + a + b
		fmt.Fprintf(&sb, "%g,%g,%g\n", a, b, c)
	}
	return sb.String()
}

func TestFitWritesAllOutputs(t *testing.T) {
	logger = zap.NewNop()
	dir := t.TempDir()
	data := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(data, []byte(chainTable(3, 40)), 0o644))

	cfg := DefaultConfig()
	cfg.Processes = 2
	cfg.Center = true
	cfg.Out = filepath.Join(dir, "coef.csv")
	cfg.Edges = filepath.Join(dir, "edges.csv")
	cfg.DOT = filepath.Join(dir, "graph.dot")

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, fit(cmd, data, cfg))

	out := buf.String()
	assert.Contains(t, out, "=== Causal Order ===")
	assert.Contains(t, out, "=== Causal Edges ===")

	coef := readCSV(t, cfg.Out)
	require.Len(t, coef, 4)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, coef[0][1:])

	edges := readCSV(t, cfg.Edges)
	assert.Equal(t, []string{"Cause", "Effect", "Coefficient"}, edges[0])

	dot, err := os.ReadFile(cfg.DOT)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(dot), "strict digraph causal {") ||
		strings.HasPrefix(string(dot), "digraph causal {"), "unexpected DOT header:\n%s", dot)
	for _, name := range []string{"a", "b", "c"} {
		assert.Contains(t, string(dot), name)
	}
}

func TestFitLabelsOverrideHeader(t *testing.T) {
	logger = zap.NewNop()
	data := writeFile(t, "res.txt", strings.ReplaceAll(chainTable(4, 20)[len("a,b,c\n"):], ",", " "))

	cfg := DefaultConfig()
	cfg.Processes = 1
	cfg.Delimiter = whitespaceDelimiter
	cfg.Header = false
	cfg.Labels = []string{"theta1", "theta2", "omega1"}

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	require.NoError(t, fit(cmd, data, cfg))
	assert.Contains(t, buf.String(), "theta1")

	cfg.Labels = []string{"only", "two"}
	err := fit(cmd, data, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got 2 labels for 3 variables")
}

func TestFitReportsEngineErrors(t *testing.T) {
	logger = zap.NewNop()
	data := writeFile(t, "data.csv", "a,b\n1,5\n2,5\n3,5\n")

	cfg := DefaultConfig()
	cfg.Processes = 1

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	err := fit(cmd, data, cfg)
	require.ErrorIs(t, err, lingam.ErrInvalidInput)
}

func TestResolveConfigFlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "lingam.yaml", "sigma: 0.8\nkappa: 0.05\nprocesses: 3\ncenter: true\n")

	configPath = path
	t.Cleanup(func() {
		configPath = ""
		fitCmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
		flagCfg = DefaultConfig()
	})

	require.NoError(t, fitCmd.Flags().Set("processes", "5"))

	cfg, err := resolveConfig(fitCmd)
	require.NoError(t, err)
	assert.Equal(t, 0.8, cfg.Sigma)
	assert.Equal(t, 0.05, cfg.Kappa)
	assert.Equal(t, 5, cfg.Processes)
	assert.True(t, cfg.Center)
	assert.True(t, cfg.Header)
}
