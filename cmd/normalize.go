package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/omeryagmurlu/crossformer/data/stats"
)

var (
	normDataPath  string
	normStatsPath string
	normType      string
	normOutPath   string
	normProprio   []string
	normSkipKeys  []string
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize a dataset using previously computed statistics",
	Long:  "Rescales the action field and the listed proprio fields of every trajectory using a statistics file produced by `crossformer stats`, with either the normal (mean/std) or bounds (p01/p99) scheme.",
	Run: func(cmd *cobra.Command, args []string) {
		ntype, err := stats.ParseNormalizationType(normType)
		if err != nil {
			logrus.Fatalf("Invalid --type: %v", err)
		}
		statistics, err := stats.Load(normStatsPath)
		if err != nil {
			logrus.Fatalf("Loading statistics failed: %v", err)
		}

		trajectories := readTrajectories(normDataPath)
		for i, t := range trajectories {
			if err := stats.Normalize(t, statistics, ntype, normProprio, normSkipKeys); err != nil {
				logrus.Fatalf("Normalizing trajectory %d failed: %v", i, err)
			}
		}
		writeTrajectories(normOutPath, trajectories)
	},
}

func init() {
	normalizeCmd.Flags().StringVar(&normDataPath, "data", "", "Path to JSONL trajectory file")
	normalizeCmd.Flags().StringVar(&normStatsPath, "stats", "", "Path to dataset statistics JSON file")
	normalizeCmd.Flags().StringVar(&normType, "type", "", "Normalization scheme (normal, bounds)")
	normalizeCmd.Flags().StringVar(&normOutPath, "out", "", "Output JSONL path")
	normalizeCmd.Flags().StringSliceVar(&normProprio, "proprio-key", nil, "Proprioceptive observation keys to normalize")
	normalizeCmd.Flags().StringSliceVar(&normSkipKeys, "skip-norm-key", nil, "Fields excluded from normalization")
	for _, flag := range []string{"data", "stats", "type", "out"} {
		if err := normalizeCmd.MarkFlagRequired(flag); err != nil {
			panic(err)
		}
	}
	rootCmd.AddCommand(normalizeCmd)
}
