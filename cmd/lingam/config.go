// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Dec 12th 2025
// Project: DirectLiNGAM Causal Discovery with Kernel Independence Measures
// Class: 02-613 at Caregie Mellon University

package main

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/roronya/DirectLiNGAM/lingam"
)

// Config is everything a fit run needs besides the data path. It can be read
// from a YAML file and is then overridden by explicitly set flags.
type Config struct {
	Sigma     float64  `yaml:"sigma"`
	Kappa     float64  `yaml:"kappa"`
	Processes int      `yaml:"processes"`
	Prior     string   `yaml:"prior"`
	Labels    []string `yaml:"labels"`

	Delimiter string `yaml:"delimiter"`
	Header    bool   `yaml:"header"`
	Center    bool   `yaml:"center"`

	// Output paths, empty means skip
	Out   string `yaml:"out"`
	Edges string `yaml:"edges"`
	DOT   string `yaml:"dot"`
}

// DefaultConfig matches the kernel paper's parameters and uses every CPU.
func DefaultConfig() Config {
	return Config{
		Sigma:     lingam.DefaultSigma,
		Kappa:     lingam.DefaultKappa,
		Processes: runtime.NumCPU(),
		Delimiter: ",",
		Header:    true,
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// TableOptions returns how the data file should be parsed.
func (c Config) TableOptions() TableOptions {
	return TableOptions{Delimiter: c.Delimiter, Header: c.Header, Center: c.Center}
}
