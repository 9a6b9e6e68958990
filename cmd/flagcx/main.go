// Command flagcx inspects and rewrites .flag files from the command line.
// It is a thin shell over the flagio/flagmat/homology packages; homology
// computation itself needs an engine binding and is out of scope here.
package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/flagcx/flagio"
	"github.com/katalvlaran/flagcx/flagmat"
	"github.com/katalvlaran/flagcx/homology"
)

const envPrefix = "FLAGCX"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("flagcx failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "flagcx",
		Short:         "Inspect and rewrite .flag flag-matrix files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("verbose", false, "enable debug logging")

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		_ = v.BindPFlags(cmd.Flags())
		level := slog.LevelInfo
		if v.GetBool("verbose") {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	}

	root.AddCommand(newInspectCmd(), newTrimCmd(v), newFiltrationsCmd())

	return root
}

// newInspectCmd reports order, edge count, domain and weight range.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Summarize a .flag file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := flagio.LoadFile(args[0])
			if err != nil {
				return err
			}

			minW, maxW := math.Inf(1), math.Inf(-1)
			_ = m.EdgesDo(func(_, _ int, w float64) error {
				minW = math.Min(minW, w)
				maxW = math.Max(maxW, w)
				return nil
			})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vertices: %d\n", m.Order())
			fmt.Fprintf(out, "edges:    %d\n", m.NumEdges())
			fmt.Fprintf(out, "domain:   %s\n", m.Domain())
			if m.NumEdges() > 0 {
				fmt.Fprintf(out, "weights:  [%g, %g]\n", minW, maxW)
			}
			return nil
		},
	}
}

// newTrimCmd drops edges above a maximum length and saves the result,
// mirroring the persistence-extraction trimming policy (strictly greater
// is dropped, equal is kept).
func newTrimCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trim FILE OUT",
		Short: "Copy a .flag file, dropping edges heavier than --max-edge-length",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			maxLen := v.GetFloat64("max-edge-length")

			src, err := flagio.LoadFile(args[0])
			if err != nil {
				return err
			}
			set, err := homology.ExtractPersistence(src, maxLen)
			if err != nil {
				return err
			}

			dst, err := flagmat.NewSparse(src.Order())
			if err != nil {
				return err
			}
			for i, w := range src.Diagonal() {
				if err = dst.SetVertexWeight(i, w); err != nil {
					return err
				}
			}
			for _, e := range set.Edges {
				if err = dst.SetEdge(e.Source, e.Target, e.Weight); err != nil {
					return err
				}
			}

			slog.Debug("trimmed", "kept", dst.NumEdges(), "dropped", src.NumEdges()-dst.NumEdges())
			return flagio.SaveFile(args[1], dst)
		},
	}
	cmd.Flags().Float64("max-edge-length", math.Inf(1), "maximum edge weight to keep")

	return cmd
}

// newFiltrationsCmd lists the filtration algorithms an engine may be asked for.
func newFiltrationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filtrations",
		Short: "List supported filtration algorithm names",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(homology.Filtrations(), "\n"))
		},
	}
}
