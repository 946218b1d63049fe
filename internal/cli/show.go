package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/handiism/woodstock/internal/codec"
)

func showCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name|path>",
		Short: "Decode a stored entry or a JSON file and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				v   any
				err error
			)
			if looksLikePath(args[0]) {
				v, err = decodeFile(args[0])
			} else {
				v, err = a.store.Load(args[0])
			}
			if err != nil {
				return err
			}
			printEntity(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

// looksLikePath reports whether s names a file rather than a store entry.
func looksLikePath(s string) bool {
	return strings.ContainsRune(s, filepath.Separator) || strings.ContainsRune(s, '/') ||
		strings.HasSuffix(strings.ToLower(s), ".json") && fileExists(s)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func decodeFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	v, err := codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// printEntity prints display strings, one per line for decoded arrays.
func printEntity(w io.Writer, v any) {
	if items, ok := v.([]any); ok {
		for _, item := range items {
			printEntity(w, item)
		}
		return
	}
	fmt.Fprintln(w, v)
}
