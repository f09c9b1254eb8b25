package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"smartmix/internal/dataset"
	"smartmix/internal/library"
)

func newLibraryCommand(ctx *commandContext) *cobra.Command {
	libraryCmd := &cobra.Command{
		Use:   "library",
		Short: "Manage the imported track library",
	}

	libraryCmd.AddCommand(newLibraryImportCommand(ctx))
	libraryCmd.AddCommand(newLibraryListCommand(ctx))
	libraryCmd.AddCommand(newLibraryClearCommand(ctx))

	return libraryCmd
}

func newLibraryImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <dataset.csv>",
		Short: "Import a feature dataset into the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := dataset.LoadCSV(args[0])
			if err != nil {
				return err
			}
			return ctx.withStore(func(store *library.Store) error {
				count, err := store.Import(cmd.Context(), col)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tracks into %s\n", count, store.Path())
				return nil
			})
		},
	}
}

func newLibraryListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List imported tracks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *library.Store) error {
				entries, err := store.List(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintf(out, "Library %s is empty\n", store.Path())
					return nil
				}

				headers := []string{"ID", "Track", "Start BPM", "End BPM", "Imported"}
				rows := make([][]string, 0, len(entries))
				for _, entry := range entries {
					rows = append(rows, []string{
						strconv.FormatInt(entry.ID, 10),
						entry.Name,
						fmt.Sprintf("%.1f", entry.TempoStart),
						fmt.Sprintf("%.1f", entry.TempoEnd),
						entry.ImportedAt.Local().Format("2006-01-02 15:04"),
					})
				}
				printRows(out, headers, rows, []columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignLeft})
				return nil
			})
		},
	}
}

func newLibraryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every imported track",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *library.Store) error {
				count, err := store.Count(cmd.Context())
				if err != nil {
					return err
				}
				if err := store.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d tracks from %s\n", count, store.Path())
				return nil
			})
		},
	}
}
