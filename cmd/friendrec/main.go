// Command friendrec loads training and testing connection snapshots,
// builds a friend-recommendation graph via depth-limited BFS, and prints
// precision/recall against the held-out testing edges.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/friendrec/edgelist"
	"github.com/katalvlaran/friendrec/evaluate"
	"github.com/katalvlaran/friendrec/recommend"
)

func main() {
	var (
		trainPath  string
		testPath   string
		maxDepth   int
		jsonReport bool
		verbose    bool
	)

	rootCmd := &cobra.Command{
		Use:   "friendrec",
		Short: "Friend recommendations from a social graph, scored against held-out connections",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			v.SetEnvPrefix("FRIENDREC")
			v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			v.AutomaticEnv()
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			return run(
				v.GetString("train"),
				v.GetString("test"),
				v.GetInt("max-depth"),
				v.GetBool("json"),
				v.GetBool("verbose"),
			)
		},
	}

	rootCmd.Flags().StringVar(&trainPath, "train", "", "Training edge list (existing connections)")
	rootCmd.Flags().StringVar(&testPath, "test", "", "Testing edge list (held-out future connections)")
	rootCmd.Flags().IntVar(&maxDepth, "max-depth", 2, "Maximum BFS depth for candidate discovery")
	rootCmd.Flags().BoolVar(&jsonReport, "json", false, "Output the report as JSON")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Log per-user progress")
	_ = rootCmd.MarkFlagRequired("train")
	_ = rootCmd.MarkFlagRequired("test")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(trainPath, testPath string, maxDepth int, jsonReport, verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	training, err := edgelist.ReadFile(trainPath)
	if err != nil {
		return err
	}
	logger.Info("loaded training graph",
		"path", trainPath,
		"vertices", training.VertexCount(),
		"edges", training.EdgeCount())

	testing, err := edgelist.ReadFile(testPath)
	if err != nil {
		return err
	}
	logger.Info("loaded testing graph",
		"path", testPath,
		"vertices", testing.VertexCount(),
		"edges", testing.EdgeCount())

	rec, err := recommend.All(training, maxDepth,
		recommend.WithOnUser(func(id string, candidates int) {
			logger.Debug("walked user", "user", id, "candidates", candidates)
		}),
	)
	if err != nil {
		return err
	}
	logger.Info("built recommendations",
		"max_depth", maxDepth,
		"vertices", rec.VertexCount(),
		"edges", rec.EdgeCount())

	report := evaluate.Evaluate(rec, testing)
	if jsonReport {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	fmt.Printf("precision: %.4f (%d/%d recommended edges confirmed)\n",
		report.Precision, report.Matched, report.Recommended)
	fmt.Printf("recall:    %.4f (%d/%d held-out edges predicted)\n",
		report.Recall, report.Matched, report.GroundTruth)

	return nil
}
