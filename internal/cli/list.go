package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/handiism/woodstock/internal/codec"
)

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := a.store.List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(names) == 0 {
				fmt.Fprintln(out, "(no entries found)")
				return nil
			}

			fmt.Fprintf(out, "Data dir: %s\n\n", a.store.Dir())
			for _, name := range names {
				fmt.Fprintf(out, "- %s  (%s)\n", name, entryKind(a, name))
			}
			return nil
		},
	}
}

func entryKind(a *app, name string) string {
	tag, err := a.store.Tag(name)
	if err != nil {
		return "untagged"
	}
	return tagKind(tag)
}

func tagKind(tag string) string {
	switch tag {
	case codec.TagFestival:
		return "festival"
	case codec.TagLineup:
		return "lineup"
	case codec.TagPerformer:
		return "performer"
	default:
		return "unknown"
	}
}
