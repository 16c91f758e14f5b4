package main

import (
	"fmt"

	"github.com/pochu0083/blender-terrain-gen/pkg/analytics"
	"github.com/pochu0083/blender-terrain-gen/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Path != "" {
				fmt.Printf("    -> %s = %v\n", e.Path, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Path != "" {
				fmt.Printf("    -> %s = %v\n", w.Path, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printStatsSummary(s *analytics.Summary, seed int64) {
	fmt.Println("Scatter Statistics")
	fmt.Println("==================")
	fmt.Printf("Total: %d placements over %.2f ha (seed %d)\n", s.Total, s.AreaHa, seed)
	fmt.Println()

	fmt.Printf("%-8s %8s %8s %10s %8s %12s %12s %12s\n",
		"Category", "Count", "Target", "Shortfall", "Per-ha", "NN min", "NN mean", "NN stddev")
	fmt.Printf("%-8s %8s %8s %10s %8s %12s %12s %12s\n",
		"--------", "--------", "--------", "----------", "--------", "------------", "------------", "------------")

	for _, cs := range s.Categories {
		fmt.Printf("%-8s %8d %8d %10d %8.1f %12.2f %12.2f %12.2f\n",
			cs.Category, cs.Count, cs.Target, cs.Shortfall, cs.PerHa,
			cs.NearestMin, cs.NearestMean, cs.NearestStdDev)
	}
}
