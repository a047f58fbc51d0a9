package main

import (
	"fmt"
	"os"

	"github.com/notargets/DGField/config"
	"github.com/notargets/DGField/field"
	"github.com/notargets/DGField/variable"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dgfield",
	Short: "Build and inspect mesh fields described by a case file",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
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
	SilenceUsage: true,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <case.yaml>",
	Short: "Load a case, build its fields and print a summary of each",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(cmd, args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(inspectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func inspect(cmd *cobra.Command, path string) error {
	cfg, err := config.LoadFromPath(path)
	if err != nil {
		return err
	}
	logger.Debug("Case loaded", zap.String("path", path), zap.Int("fields", len(cfg.Fields)))

	conn, err := cfg.Mesh.Connectivity()
	if err != nil {
		return err
	}
	if err = conn.Verify(); err != nil {
		return fmt.Errorf("mesh connectivity: %w", err)
	}
	counts := conn.Counts()
	logger.Info("Mesh ready",
		zap.Stringer("geometry", conn.Geometry),
		zap.Int("cells", counts.Cells),
		zap.Int("faces", counts.Faces),
		zap.Int("nodes", counts.Nodes),
		zap.Int("boundary_faces", conn.NumBoundaryFaces))

	out := cmd.OutOrStdout()
	for _, fc := range cfg.Fields {
		spec, err := fc.Resolve()
		if err != nil {
			return err
		}
		f, err := spec.Build(counts)
		if err != nil {
			return err
		}
		logger.Debug("Field built", zap.String("name", spec.Name), zap.Stringer("field", f))
		fmt.Fprintln(out, summarize(spec.Name, f))
	}
	return nil
}

func summarize(name string, f *field.Field[variable.Variable]) string {
	mx, imx := f.MaxMagnitude()
	mn, imn := f.MinMagnitude()
	return fmt.Sprintf("%-16s %v  |v|min=%.6g@%d  |v|max=%.6g@%d  L2=%.6g",
		name, f, mn, imn, mx, imx, f.L2Norm())
}
