// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Dec 12th 2025
// Project: DirectLiNGAM Causal Discovery with Kernel Independence Measures
// Class: 02-613 at Caregie Mellon University

// Command lingam runs DirectLiNGAM causal discovery on a table of samples.
//
//	lingam fit data.csv --processes 6 --dot graph.dot
//	lingam fit res.txt --delimiter whitespace --header=false --labels theta1,theta2,omega1,omega2
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gonum.org/v1/gonum/mat"

	"github.com/roronya/DirectLiNGAM/lingam"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Flag values for fit, merged over the config file
	flagCfg = DefaultConfig()

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "lingam",
	Short: "Causal order discovery with DirectLiNGAM",
	Long: `lingam estimates a causal order and linear effect coefficients for
continuous variables, assuming a Linear Non-Gaussian Acyclic Model.

Each round the most exogenous remaining variable is chosen with a kernel
based mutual information criterion and regressed out of the others.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// fitCmd runs the ordering engine on one data file
var fitCmd = &cobra.Command{
	Use:   "fit [data-file]",
	Short: "Estimate the causal order of the variables in a data file",
	Long: `Reads a table with one sample per row and one variable per column,
optionally mean-centers every variable, and prints the causal order and the
lower triangular coefficient matrix. Results can also be written as CSV and
as a graphviz DOT graph with an edge cause -> effect for every nonzero effect.

Prior knowledge is an n x n CSV of -1 (unknown), 0 and 1. Entry (i,j) = 1 keeps
variable i from being chosen while j is unordered; entry (i,j) = 0 keeps j from
being chosen while i is unordered.`,
	Args: cobra.ExactArgs(1),
	RunE: runFit,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable per-round debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")

	f := fitCmd.Flags()
	f.Float64Var(&flagCfg.Sigma, "sigma", flagCfg.Sigma, "Gaussian kernel width")
	f.Float64Var(&flagCfg.Kappa, "kappa", flagCfg.Kappa, "Mutual information regularization")
	f.IntVarP(&flagCfg.Processes, "processes", "p", flagCfg.Processes, "Workers evaluating candidates in parallel")
	f.StringVar(&flagCfg.Prior, "prior", "", "Prior knowledge matrix CSV")
	f.StringSliceVar(&flagCfg.Labels, "labels", nil, "Variable names, overriding the header")
	f.StringVar(&flagCfg.Delimiter, "delimiter", flagCfg.Delimiter, `Field separator, or "whitespace"`)
	f.BoolVar(&flagCfg.Header, "header", flagCfg.Header, "First row holds variable names")
	f.BoolVar(&flagCfg.Center, "center", false, "Subtract each variable's mean before fitting")
	f.StringVarP(&flagCfg.Out, "out", "o", "", "Write the coefficient matrix to this CSV")
	f.StringVar(&flagCfg.Edges, "edges", "", "Write the causal edges to this CSV")
	f.StringVar(&flagCfg.DOT, "dot", "", "Write the causal graph to this DOT file")

	rootCmd.AddCommand(fitCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers explicitly set flags over the config file, or over the
// defaults when no config file is given.
func resolveConfig(cmd *cobra.Command) (Config, error) {
	cfg := DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
	}

	f := cmd.Flags()
	if f.Changed("sigma") {
		cfg.Sigma = flagCfg.Sigma
	}
	if f.Changed("kappa") {
		cfg.Kappa = flagCfg.Kappa
	}
	if f.Changed("processes") {
		cfg.Processes = flagCfg.Processes
	}
	if f.Changed("prior") {
		cfg.Prior = flagCfg.Prior
	}
	if f.Changed("labels") {
		cfg.Labels = flagCfg.Labels
	}
	if f.Changed("delimiter") {
		cfg.Delimiter = flagCfg.Delimiter
	}
	if f.Changed("header") {
		cfg.Header = flagCfg.Header
	}
	if f.Changed("center") {
		cfg.Center = flagCfg.Center
	}
	if f.Changed("out") {
		cfg.Out = flagCfg.Out
	}
	if f.Changed("edges") {
		cfg.Edges = flagCfg.Edges
	}
	if f.Changed("dot") {
		cfg.DOT = flagCfg.DOT
	}
	return cfg, nil
}

func runFit(cmd *cobra.Command, args []string) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return fit(cmd, args[0], cfg)
}

// fit runs the whole pipeline for one data file: load, fit, report, write.
func fit(cmd *cobra.Command, path string, cfg Config) error {
	out := cmd.OutOrStdout()

	// 1. Load the table into variable-major layout
	ds, err := LoadTable(path, cfg.TableOptions())
	if err != nil {
		return err
	}
	n, m := ds.X.Dims()
	if len(cfg.Labels) > 0 {
		if len(cfg.Labels) != n {
			return fmt.Errorf("got %d labels for %d variables", len(cfg.Labels), n)
		}
		ds.VarNames = cfg.Labels
	}
	logger.Info("loaded samples",
		zap.String("path", path),
		zap.Int("variables", n),
		zap.Int("samples", m),
		zap.Strings("names", ds.VarNames),
	)

	// 2. Optional prior knowledge
	var prior lingam.PriorKnowledge
	if cfg.Prior != "" {
		prior, err = LoadPrior(cfg.Prior)
		if err != nil {
			return err
		}
	}

	// 3. Run the ordering engine
	res, err := lingam.Fit(ds.X, lingam.Options{
		Sigma:     cfg.Sigma,
		Kappa:     cfg.Kappa,
		Processes: cfg.Processes,
		Prior:     prior,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("fit %s: %w", path, err)
	}

	// 4. Report
	edges, err := res.Edges(ds.VarNames)
	if err != nil {
		return err
	}
	PrintResult(out, res, ds.VarNames)
	PrintEdges(out, edges)
	if verbose {
		fmt.Fprintln(out, "\n=== Adjacency Matrix (variable space) ===")
		fmt.Fprintf(out, "%v\n", mat.Formatted(res.AdjacencyMatrix(), mat.Prefix(" ")))
	}

	// 5. Outputs
	if cfg.Out != "" {
		if err := OutputCoefficientsToCSV(cfg.Out, res, ds.VarNames); err != nil {
			return fmt.Errorf("write %s: %w", cfg.Out, err)
		}
		logger.Info("coefficients written", zap.String("path", cfg.Out))
	}
	if cfg.Edges != "" {
		if err := OutputEdgesToCSV(cfg.Edges, edges); err != nil {
			return fmt.Errorf("write %s: %w", cfg.Edges, err)
		}
		logger.Info("edges written", zap.String("path", cfg.Edges))
	}
	if cfg.DOT != "" {
		b, err := res.MarshalDOT("causal", ds.VarNames)
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.DOT, b, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", cfg.DOT, err)
		}
		logger.Info("graph written", zap.String("path", cfg.DOT))
	}
	return nil
}
