package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/omeryagmurlu/crossformer/data/mixture"
)

var (
	mixtureSpecPath string
	mixtureThreads  int
)

var mixtureCmd = &cobra.Command{
	Use:   "mixture",
	Short: "Summarize a dataset mixture and its thread allocation",
	Long:  "Prints the mixture banner and the per-dataset thread allocation for a YAML mixture spec. A budget of 0 assigns the auto sentinel, shown resolved against this machine's core count.",
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := mixture.LoadSpec(mixtureSpecPath)
		if err != nil {
			logrus.Fatalf("Loading mixture spec failed: %v", err)
		}
		if err := spec.Validate(); err != nil {
			logrus.Fatalf("Invalid mixture spec: %v", err)
		}

		budget := mixtureThreads
		if budget == 0 {
			budget = spec.Threads
		}
		if budget == 0 {
			budget = mixture.Auto
		}
		allocation, err := mixture.AllocateThreads(budget, spec.Weights())
		if err != nil {
			logrus.Fatalf("Thread allocation failed: %v", err)
		}

		out := cmd.OutOrStdout()
		mixture.FprintDataMixture(out, spec.Names(), spec.Weights())
		resolved := mixture.ResolveAuto(allocation)
		for i, ds := range spec.Datasets {
			if allocation[i] == mixture.Auto {
				fmt.Fprintf(out, "%s: auto (%d)\n", ds.Name, resolved[i])
			} else {
				fmt.Fprintf(out, "%s: %d\n", ds.Name, allocation[i])
			}
		}
	},
}

func init() {
	mixtureCmd.Flags().StringVar(&mixtureSpecPath, "spec", "", "Path to YAML mixture spec")
	mixtureCmd.Flags().IntVar(&mixtureThreads, "threads", 0, "Total thread budget (0 = use spec value or auto)")
	if err := mixtureCmd.MarkFlagRequired("spec"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(mixtureCmd)
}
