package main

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/takak2166/notion-clipper/internal/selection"
)

func newSelectCmd(root *rootOptions) *cobra.Command {
	var clearSelection bool

	cmd := &cobra.Command{
		Use:   "select [text]",
		Short: "Record a text selection, as highlighting it in a page would",
		Long: `Record a text selection for the next "add".

With --clear, behave like a click that leaves nothing selected: the stored
selection is emptied.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if clearSelection {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			ext, closeFn, err := root.openExtension(selection.PageFunc(func() string { return text }))
			if err != nil {
				return err
			}
			defer closeFn()

			ctx := cmd.Context()
			if clearSelection {
				ext.Content.Click(ctx)
				ext.Content.Wait()
				pterm.Info.Println("Selection cleared")
				return nil
			}

			ext.Content.PointerUp(ctx)
			if ext.Content.SelectedText() == "" {
				pterm.Warning.Println("Nothing selected")
				return nil
			}
			pterm.Success.Printfln("Selected %d characters", len(ext.Content.SelectedText()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&clearSelection, "clear", false, "Clear the stored selection")

	return cmd
}
