package dscheck

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlathds/builder"
)

// ErrConfigFormat is returned for a config file that is neither YAML nor TOML.
var ErrConfigFormat = errors.New("dscheck: unsupported config file format")

// ErrBadInput is returned when the merged configuration is unusable.
var ErrBadInput = errors.New("dscheck: invalid input")

// Input contains the input for every dscheck command.
type Input struct {
	Seed     int64    `yaml:"seed" toml:"seed"`
	N        int      `yaml:"n" toml:"n"`
	Trials   int      `yaml:"trials" toml:"trials"`
	Heaps    []string `yaml:"heaps" toml:"heaps"`
	RMQs     []string `yaml:"rmqs" toml:"rmqs"`
	Verbose  bool     `yaml:"verbose" toml:"verbose"`
	JSONLogs bool     `yaml:"json_logs" toml:"json_logs"`

	configPath string
}

// DefaultInput returns the built-in defaults.
func DefaultInput() Input {
	return Input{
		Seed:   1,
		N:      500,
		Trials: 5,
	}
}

// bindFlags registers the shared flags on fs, writing into in.
func bindFlags(fs *pflag.FlagSet, in *Input) {
	fs.StringVarP(&in.configPath, "config", "c", "", "YAML (.yaml/.yml) or TOML (.toml) run configuration")
	fs.Int64VarP(&in.Seed, "seed", "s", in.Seed, "base random seed; trial t uses seed+t")
	fs.IntVarP(&in.N, "size", "n", in.N, "problem size per trial")
	fs.IntVarP(&in.Trials, "trials", "t", in.Trials, "number of trials per check")
	fs.StringSliceVar(&in.Heaps, "heap", in.Heaps, "heap implementations to check (default all: "+joinNames(builder.HeapImpls())+")")
	fs.StringSliceVar(&in.RMQs, "rmq", in.RMQs, "RMQ implementations to check (default all: "+joinNames(builder.RMQImpls())+")")
	fs.BoolVarP(&in.Verbose, "verbose", "v", in.Verbose, "verbose output")
	fs.BoolVar(&in.JSONLogs, "json", in.JSONLogs, "log as JSON")
}

// merge layers the config file (if any) under the flags that were set
// explicitly on fs.
func (in *Input) merge(fs *pflag.FlagSet) error {
	if in.configPath == "" {
		return nil
	}
	merged := DefaultInput()
	if err := loadConfig(in.configPath, &merged); err != nil {
		return err
	}

	var err error
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "seed":
			merged.Seed = in.Seed
		case "size":
			merged.N = in.N
		case "trials":
			merged.Trials = in.Trials
		case "heap":
			merged.Heaps = in.Heaps
		case "rmq":
			merged.RMQs = in.RMQs
		case "verbose":
			merged.Verbose = in.Verbose
		case "json":
			merged.JSONLogs = in.JSONLogs
		case "config":
		default:
			err = fmt.Errorf("dscheck: flag %q is not mergeable", f.Name)
		}
	})
	merged.configPath = in.configPath
	*in = merged

	return err
}

// loadConfig decodes path into in, picking the decoder by extension.
func loadConfig(path string, in *Input) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, in); err != nil {
			return fmt.Errorf("dscheck: %s: %w", path, err)
		}
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(in); err != nil {
			return fmt.Errorf("dscheck: %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrConfigFormat, path)
	}
	return nil
}

// validate checks sizes and resolves implementation names. Empty lists
// select every implementation.
func (in *Input) validate() ([]builder.HeapImpl, []builder.RMQImpl, error) {
	if in.N < 1 || in.Trials < 1 {
		return nil, nil, fmt.Errorf("%w: n=%d trials=%d must be positive", ErrBadInput, in.N, in.Trials)
	}

	heaps := builder.HeapImpls()
	if len(in.Heaps) > 0 {
		heaps = heaps[:0:0]
		for _, s := range in.Heaps {
			h, err := builder.ParseHeapImpl(s)
			if err != nil {
				return nil, nil, err
			}
			heaps = append(heaps, h)
		}
	}

	rmqs := builder.RMQImpls()
	if len(in.RMQs) > 0 {
		rmqs = rmqs[:0:0]
		for _, s := range in.RMQs {
			r, err := builder.ParseRMQImpl(s)
			if err != nil {
				return nil, nil, err
			}
			rmqs = append(rmqs, r)
		}
	}

	return heaps, rmqs, nil
}

func joinNames[T fmt.Stringer](xs []T) string {
	names := make([]string, len(xs))
	for i, x := range xs {
		names[i] = x.String()
	}
	return strings.Join(names, ",")
}
