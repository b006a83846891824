package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/takak2166/notion-clipper/internal/popup"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	var token, databaseID string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Save the Notion integration token and database ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			ext, closeFn, err := root.openExtension(noSelection)
			if err != nil {
				return err
			}
			defer closeFn()

			ctx := cmd.Context()
			p := ext.OpenPopup()
			p.Open(ctx)
			p.Update(func(f *popup.Form) {
				if cmd.Flags().Changed("token") {
					f.Token = token
				}
				if cmd.Flags().Changed("database-id") {
					f.DatabaseID = databaseID
				}
			})

			err = p.SaveConfig(ctx)
			view := p.View()
			if err != nil {
				pterm.Error.Println(view.Errors[popup.ErrorToken])
				return err
			}
			pterm.Success.Println(view.ConfigSuccess)
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Notion integration token")
	cmd.Flags().StringVar(&databaseID, "database-id", "", "Target Notion database ID")

	return cmd
}
