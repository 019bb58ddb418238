package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/omeryagmurlu/crossformer/data"
	"github.com/omeryagmurlu/crossformer/data/gripper"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Rewrite trajectory action representations",
}

// --- crossformer convert gripper ---

var (
	gripperDataPath      string
	gripperOutPath       string
	gripperMode          string
	gripperOpenBoundary  float64
	gripperCloseBoundary float64
)

var convertGripperCmd = &cobra.Command{
	Use:   "gripper",
	Short: "Convert the gripper action dimension of every trajectory",
	Long:  "Rewrites the last action dimension of every trajectory: binarize a continuous gripper signal, convert relative gripper actions to absolute, or invert the open/closed convention.",
	Run: func(cmd *cobra.Command, args []string) {
		var convert func([]float64) []float64
		switch gripperMode {
		case "binarize":
			convert = func(actions []float64) []float64 {
				return gripper.Binarize(actions, gripperOpenBoundary, gripperCloseBoundary)
			}
		case "rel2abs":
			convert = gripper.RelativeToAbsolute
		case "invert":
			convert = gripper.Invert
		default:
			logrus.Fatalf("Unknown gripper mode %q; valid: binarize, rel2abs, invert", gripperMode)
		}

		trajectories := readTrajectories(gripperDataPath)
		for _, t := range trajectories {
			column := make([]float64, t.Steps())
			for i, row := range t.Action {
				if len(row) == 0 {
					logrus.Fatalf("Trajectory has an empty action row at timestep %d", i)
				}
				column[i] = row[len(row)-1]
			}
			for i, v := range convert(column) {
				t.Action[i][len(t.Action[i])-1] = v
			}
		}
		writeTrajectories(gripperOutPath, trajectories)
	},
}

// --- crossformer convert relabel ---

var (
	relabelDataPath string
	relabelOutPath  string
)

var convertRelabelCmd = &cobra.Command{
	Use:   "relabel",
	Short: "Relabel actions from reached proprio state",
	Long:  "Recomputes the first 6 action dimensions as the finite difference of observation.state between consecutive timesteps, dropping the final timestep of every trajectory.",
	Run: func(cmd *cobra.Command, args []string) {
		trajectories := readTrajectories(relabelDataPath)
		out := make([]*data.Trajectory, len(trajectories))
		for i, t := range trajectories {
			relabeled, err := data.RelabelActionsFromProprio(t)
			if err != nil {
				logrus.Fatalf("Relabeling trajectory %d failed: %v", i, err)
			}
			out[i] = relabeled
		}
		writeTrajectories(relabelOutPath, out)
	},
}

func readTrajectories(path string) []*data.Trajectory {
	src, err := data.OpenJSONL(path)
	if err != nil {
		logrus.Fatalf("Opening dataset failed: %v", err)
	}
	defer src.Close()
	trajectories, err := data.ReadAll(src)
	if err != nil {
		logrus.Fatalf("Reading dataset failed: %v", err)
	}
	return trajectories
}

func writeTrajectories(path string, trajectories []*data.Trajectory) {
	if err := data.WriteJSONL(path, trajectories); err != nil {
		logrus.Fatalf("Writing dataset failed: %v", err)
	}
}

func init() {
	convertGripperCmd.Flags().StringVar(&gripperDataPath, "data", "", "Path to JSONL trajectory file")
	convertGripperCmd.Flags().StringVar(&gripperOutPath, "out", "", "Output JSONL path")
	convertGripperCmd.Flags().StringVar(&gripperMode, "mode", "", "Conversion mode (binarize, rel2abs, invert)")
	convertGripperCmd.Flags().Float64Var(&gripperOpenBoundary, "open-boundary", gripper.DefaultOpenBoundary, "Values above this classify as open (binarize)")
	convertGripperCmd.Flags().Float64Var(&gripperCloseBoundary, "close-boundary", gripper.DefaultCloseBoundary, "Values below this classify as closed (binarize)")
	for _, flag := range []string{"data", "out", "mode"} {
		if err := convertGripperCmd.MarkFlagRequired(flag); err != nil {
			panic(err)
		}
	}

	convertRelabelCmd.Flags().StringVar(&relabelDataPath, "data", "", "Path to JSONL trajectory file")
	convertRelabelCmd.Flags().StringVar(&relabelOutPath, "out", "", "Output JSONL path")
	for _, flag := range []string{"data", "out"} {
		if err := convertRelabelCmd.MarkFlagRequired(flag); err != nil {
			panic(err)
		}
	}

	convertCmd.AddCommand(convertGripperCmd)
	convertCmd.AddCommand(convertRelabelCmd)
	rootCmd.AddCommand(convertCmd)
}
