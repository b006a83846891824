package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/takak2166/notion-clipper/internal/popup"
)

type addOptions struct {
	name        string
	date        string
	description string
	content     string
	reference   string
}

func newAddCmd(root *rootOptions) *cobra.Command {
	opts := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a page in the configured Notion database",
		Long: `Create a page in the configured Notion database.

The date defaults to today and the content to the recorded selection; flags
override both.`,
		Example: `  notion-clipper add --name "Buy milk" --description urgent
  notion-clipper add --name "Read later" --ref https://go.dev/doc/effective_go`,
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
				f.Name = opts.name
				f.Description = opts.description
				f.Reference = opts.reference
				if cmd.Flags().Changed("date") {
					f.Date = opts.date
				}
				if cmd.Flags().Changed("content") {
					f.Content = opts.content
				}
			})

			spinner, _ := pterm.DefaultSpinner.Start("Adding to Notion...")
			err = p.Submit(ctx)
			view := p.View()
			if err != nil {
				msg := view.Errors[popup.ErrorForm]
				if msg == "" {
					msg = view.Errors[popup.ErrorName]
				}
				spinner.Fail(msg)
				return err
			}
			spinner.Success(view.Success)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "Page name (required)")
	cmd.Flags().StringVar(&opts.date, "date", "", "Date in YYYY-MM-DD form (default today)")
	cmd.Flags().StringVar(&opts.description, "description", "", "Description text")
	cmd.Flags().StringVar(&opts.content, "content", "", "Page body (default the recorded selection)")
	cmd.Flags().StringVar(&opts.reference, "ref", "", "Reference URL linked from the description")

	return cmd
}
