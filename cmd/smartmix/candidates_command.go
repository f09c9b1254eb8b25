package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newCandidatesCommand(ctx *commandContext) *cobra.Command {
	var fromLibrary bool
	var top int

	cmd := &cobra.Command{
		Use:   "candidates <track> [dataset.csv]",
		Short: "Show the ranked crossfade candidates for a track",
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

			candidates := result.Candidates
			if top > 0 && len(candidates) > top {
				candidates = candidates[:top]
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Target: %s (match score %.2f)\n", result.Target.Name, result.Target.Score)

			headers := []string{"#", "Track", "Score"}
			rows := make([][]string, 0, len(candidates))
			for i, candidate := range candidates {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					col.Tracks[candidate.Index].Name,
					fmt.Sprintf("%.4f", candidate.Score),
				})
			}
			printRows(out, headers, rows, []columnAlignment{alignRight, alignLeft, alignRight})
			return nil
		},
	}
	cmd.Args = trackAndDatasetArgs(&fromLibrary)

	cmd.Flags().BoolVar(&fromLibrary, "from-library", false, "Read tracks from the imported library instead of a CSV file")
	cmd.Flags().IntVar(&top, "top", 5, "Show at most N candidates (0 shows all)")
	return cmd
}
