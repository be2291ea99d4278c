package dscheck

import (
	"context"
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlathds/builder"
)

// ErrMismatch is returned when at least one implementation disagreed with
// the reference.
var ErrMismatch = errors.New("dscheck: implementations disagree")

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) {
	in := DefaultInput()
	if err := createRootCommand(ctx, &in, version).Execute(); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(ctx context.Context, in *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "dscheck",
		Short:        "Cross-validate lvlathds data structure implementations on random input.",
		Version:      version,
		SilenceUsage: true,
		RunE:         newRunCommand(ctx, in, checks...),
	}
	bindFlags(rootCmd.PersistentFlags(), in)

	for _, c := range checks {
		rootCmd.AddCommand(&cobra.Command{
			Use:   c.name,
			Short: c.short,
			Args:  cobra.NoArgs,
			RunE:  newRunCommand(ctx, in, c),
		})
	}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List checks and implementation names.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, c := range checks {
				fmt.Fprintf(out, "%-10s %s\n", c.name, c.short)
			}
			fmt.Fprintf(out, "heaps: %s\n", joinNames(builder.HeapImpls()))
			fmt.Fprintf(out, "rmqs:  %s\n", joinNames(builder.RMQImpls()))
			return nil
		},
	})

	return rootCmd
}

// newRunCommand runs the given checks with the merged input. Without
// subcommand the root runs all of them.
func newRunCommand(ctx context.Context, in *Input, cs ...check) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		fs := cmd.Flags()
		if err := in.merge(fs); err != nil {
			return err
		}
		heaps, rmqs, err := in.validate()
		if err != nil {
			return err
		}

		logger := log.New()
		logger.SetOutput(cmd.ErrOrStderr())
		if in.Verbose {
			logger.SetLevel(log.DebugLevel)
		}
		if in.JSONLogs {
			logger.SetFormatter(&log.JSONFormatter{})
		}

		r := &runner{
			ctx:   ctx,
			in:    *in,
			heaps: heaps,
			rmqs:  rmqs,
			log:   logger,
		}
		return r.run(cs)
	}
}
