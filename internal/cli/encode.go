package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/handiism/woodstock/internal/codec"
	"github.com/handiism/woodstock/internal/model"
)

func encodeLineupCmd(a *app) *cobra.Command {
	var saveAs string

	cmd := &cobra.Command{
		Use:   `encode-lineup "<lineup>"`,
		Short: "Parse a lineup display string and print its tagged JSON",
		Example: `  woodstock encode-lineup "Lineup for Aug 16, 1969: Grateful Dead, The Who"
  woodstock encode-lineup --save day2 "Lineup for Aug 16, 1969: Grateful Dead, The Who"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := model.ParseLineup(args[0])
			if err != nil {
				return err
			}

			data, err := codec.EncodeIndent(l, "    ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))

			if saveAs != "" {
				path, err := a.store.Save(saveAs, l)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved to %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&saveAs, "save", "", "also store the lineup under this name")
	return cmd
}
