package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newStatusCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show what the popup would be pre-filled with",
		RunE: func(cmd *cobra.Command, args []string) error {
			ext, closeFn, err := root.openExtension(noSelection)
			if err != nil {
				return err
			}
			defer closeFn()

			p := ext.OpenPopup()
			p.Open(cmd.Context())
			form := p.Form()

			return pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
				{"Field", "Value"},
				{"Token", mask(form.Token)},
				{"Database ID", orNone(form.DatabaseID)},
				{"Date", form.Date},
				{"Selection", orNone(form.Content)},
			}).Render()
		},
	}
}

func mask(secret string) string {
	if secret == "" {
		return orNone(secret)
	}
	if len(secret) <= 8 {
		return "********"
	}
	return secret[:4] + "…" + secret[len(secret)-4:]
}

func orNone(v string) string {
	if v == "" {
		return pterm.Gray("(not set)")
	}
	return v
}
