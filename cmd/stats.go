package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/omeryagmurlu/crossformer/data"
	"github.com/omeryagmurlu/crossformer/data/stats"
)

var (
	statsDataPath  string
	statsProprio   []string
	statsHashDeps  []string
	statsSaveDir   string
	statsCacheDir  string
	statsRecompute bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Compute or load cached dataset statistics",
	Long:  "Compute per-timestep statistics (mean, std, min, max, p01, p99) over the action and proprio fields of a dataset, cached under a hash of the given dependencies. Output is written to stdout for piping.",
	Run: func(cmd *cobra.Command, args []string) {
		src, err := data.OpenJSONL(statsDataPath)
		if err != nil {
			logrus.Fatalf("Opening dataset failed: %v", err)
		}
		defer src.Close()

		cacheDir := statsCacheDir
		if cacheDir == "" {
			cacheDir = defaultCacheDir()
		}
		cache := stats.Cache{SaveDir: statsSaveDir, LocalDir: cacheDir}
		result, err := cache.Get(src, statsProprio, statsHashDeps, statsRecompute)
		if err != nil {
			logrus.Fatalf("Statistics failed: %v", err)
		}

		logrus.Infof("Statistics cover %s transitions across %s trajectories",
			humanize.Comma(result.NumTransitions), humanize.Comma(result.NumTrajectories))
		payload, err := json.Marshal(result)
		if err != nil {
			logrus.Fatalf("JSON marshal failed: %v", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(payload))
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsDataPath, "data", "", "Path to JSONL trajectory file")
	statsCmd.Flags().StringSliceVar(&statsProprio, "proprio-key", nil, "Proprioceptive observation keys to aggregate")
	statsCmd.Flags().StringSliceVar(&statsHashDeps, "hash-dep", nil, "Strings whose hash keys the statistics cache")
	statsCmd.Flags().StringVar(&statsSaveDir, "save-dir", "", "Preferred cache directory (falls back to --cache-dir on permission failure)")
	statsCmd.Flags().StringVar(&statsCacheDir, "cache-dir", "", "Per-user fallback cache directory (default: user cache dir)")
	statsCmd.Flags().BoolVar(&statsRecompute, "force-recompute", false, "Recompute even when a cache entry exists")
	if err := statsCmd.MarkFlagRequired("data"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(statsCmd)
}
