// Package dscheck implements the dscheck command line: randomized
// cross-validation of the interchangeable lvlathds data structures against
// each other and against naive reference models.
//
// Every check runs Input.Trials independent trials of size Input.N. Trial t
// draws from rand.NewSource(Input.Seed + t), so a failing trial can be
// replayed alone with --seed and --trials 1.
//
// Configuration is layered: built-in defaults, then an optional YAML or
// TOML file (--config), then explicitly set flags.
package dscheck
