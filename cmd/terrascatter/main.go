package main

import (
	"os"

	"github.com/pochu0083/blender-terrain-gen/internal/server"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "terrascatter",
		Short: "Specification-driven terrain decoration scatter engine",
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(sampleCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "generate [project-path]",
		Short: "Run the full scatter pipeline and emit a scene graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), args[0], out)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "write the scene graph to a file instead of stdout")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a scatter spec without running the full pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [project-path]",
		Short: "Run the pipeline and display per-category spacing statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.Context(), args[0])
		},
	}
}

func sampleCmd() *cobra.Command {
	var (
		size     float64
		minDist  float64
		attempts int
		seed     int64
		annulus  bool
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Run a standalone Poisson-disk pass and emit the points",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSample(size, minDist, attempts, seed, annulus)
		},
	}

	cmd.Flags().Float64Var(&size, "size", 100, "square domain edge length in meters")
	cmd.Flags().Float64Var(&minDist, "min-distance", 3.0, "minimum spacing between points")
	cmd.Flags().IntVar(&attempts, "attempts", 30, "candidate budget per frontier point")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().BoolVar(&annulus, "annulus", false, "use polar annulus candidate offsets")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local dev server with the scatter preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			srv := server.New(args[0], port)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
