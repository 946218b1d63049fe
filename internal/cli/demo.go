package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/handiism/woodstock/internal/codec"
	"github.com/handiism/woodstock/internal/model"
)

const demoEntry = "woodstock-1969"

func demoCmd(a *app) *cobra.Command {
	var (
		save   bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the Woodstock 1969 festival",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := model.Woodstock1969()
			out := cmd.OutOrStdout()

			if asJSON {
				data, err := codec.EncodeIndent(f, "    ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
			} else {
				fmt.Fprintln(out, f)
			}

			if save {
				path, err := a.store.Save(demoEntry, f)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\nSaved to %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "store the festival as "+demoEntry)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the tagged JSON encoding")
	return cmd
}
