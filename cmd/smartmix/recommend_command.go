package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"smartmix/internal/logging"
)

// trackAndDatasetArgs validates the positional arguments shared by recommend
// and candidates: a track query plus a dataset path, unless the library
// supplies the tracks.
func trackAndDatasetArgs(fromLibrary *bool) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if *fromLibrary {
			if len(args) != 1 {
				return errors.New("expected one argument with --from-library: <track>")
			}
			return nil
		}
		if len(args) != 2 {
			return errors.New("expected two arguments: <track> <dataset.csv>")
		}
		return nil
	}
}

func newRecommendCommand(ctx *commandContext) *cobra.Command {
	var fromLibrary bool
	var top int

	cmd := &cobra.Command{
		Use:   "recommend <track> [dataset.csv]",
		Short: "Print the best track to crossfade into",
		Long: `Recommend scores every track pair by comparing the target's ending audio
characteristics against each candidate's starting characteristics, then prints
the single best candidate's name. Stdout carries only that name; all
diagnostics go to stderr.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]
			var datasetPath string
			if !fromLibrary {
				datasetPath = args[1]
			}

			col, err := ctx.loadCollection(datasetPath, fromLibrary)
			if err != nil {
				return err
			}

			engine, err := ctx.newEngine()
			if err != nil {
				return err
			}

			result, err := engine.Recommend(col, query)
			if err != nil {
				return err
			}

			if top > 0 {
				logger, err := ctx.ensureLogger()
				if err != nil {
					return err
				}
				for i, candidate := range result.Candidates {
					if i >= top {
						break
					}
					logger.Info("candidate",
						logging.Int("rank", i+1),
						logging.String("name", col.Tracks[candidate.Index].Name),
						logging.Float64("score", candidate.Score),
					)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.BestName)
			return nil
		},
	}
	cmd.Args = trackAndDatasetArgs(&fromLibrary)

	cmd.Flags().BoolVar(&fromLibrary, "from-library", false, "Read tracks from the imported library instead of a CSV file")
	cmd.Flags().IntVar(&top, "top", 0, "Additionally log the top N candidates to stderr")
	return cmd
}
