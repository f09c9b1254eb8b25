package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"smartmix/internal/dataset"
)

func newDatasetCommand() *cobra.Command {
	datasetCmd := &cobra.Command{
		Use:   "dataset",
		Short: "Dataset utilities",
	}
	datasetCmd.AddCommand(newDatasetCheckCommand())
	return datasetCmd
}

func newDatasetCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "check <dataset.csv>",
		Short:       "Validate a feature dataset file",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := dataset.LoadCSV(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Dataset OK: %d tracks, mfcc dim %d, chroma dim %d\n",
				col.Len(), col.MFCCDim, col.ChromaDim)
			if col.Len() > 0 {
				minTempo, maxTempo := tempoRange(col)
				fmt.Fprintf(out, "Tempo range: %.1f-%.1f BPM\n", minTempo, maxTempo)
			}
			return nil
		},
	}
}

func tempoRange(col dataset.Collection) (minTempo, maxTempo float64) {
	minTempo = col.Tracks[0].TempoStart
	maxTempo = minTempo
	for _, track := range col.Tracks {
		for _, tempo := range []float64{track.TempoStart, track.TempoEnd} {
			if tempo < minTempo {
				minTempo = tempo
			}
			if tempo > maxTempo {
				maxTempo = tempo
			}
		}
	}
	return minTempo, maxTempo
}
