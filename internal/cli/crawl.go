package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/handiism/woodstock/internal/crawl"
)

func crawlCmd(a *app) *cobra.Command {
	var (
		pages      int
		concurrent int
		postersDir string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "crawl <list-url>",
		Short: "Collect movies from a multi-page IMDb list",
		Example: `  woodstock crawl "https://www.imdb.com/search/keyword/?keywords=rock-music&mode=detail" --pages 2
  woodstock crawl "https://www.imdb.com/search/keyword/?keywords=rock-music" --posters data/posters`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := *a.settings
			if cmd.Flags().Changed("pages") {
				settings.MaxPages = pages
			}
			if cmd.Flags().Changed("concurrent") {
				settings.MaxConcurrentPages = concurrent
			}
			if err := settings.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errOut := cmd.ErrOrStderr()
			manager := crawl.NewManager(&settings,
				crawl.WithLogger(a.logger),
				crawl.WithProgress(func(event crawl.ProgressEvent) {
					if event.Level == crawl.LevelVerbose && !a.verbose {
						return
					}
					fmt.Fprintln(errOut, progressPrefix(event.Level)+event.Message)
				}),
			)

			movies, err := manager.Collect(ctx, args[0])
			if err != nil {
				if ctx.Err() == context.Canceled {
					fmt.Fprintln(errOut, "Crawl cancelled.")
				}
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(movies); err != nil {
					return err
				}
			} else {
				for _, m := range movies {
					fmt.Fprintf(out, "%s (%s)\t%s\n", m.Title, m.Year, m.Link)
				}
			}

			if postersDir == "" && settings.SavePosters {
				dir, err := settings.DataDir()
				if err != nil {
					return err
				}
				postersDir = filepath.Join(dir, "posters")
			}
			if postersDir != "" {
				paths, err := manager.SavePosters(ctx, movies, postersDir)
				if errors.Is(err, crawl.ErrNoPosters) {
					fmt.Fprintln(errOut, "No posters to save.")
					return nil
				}
				if err != nil {
					return err
				}
				a.logger.Info("posters saved", zap.Int("count", len(paths)), zap.String("dir", postersDir))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&pages, "pages", "p", 1, "number of list pages to crawl")
	cmd.Flags().IntVar(&concurrent, "concurrent", 4, "pages fetched at the same time")
	cmd.Flags().StringVar(&postersDir, "posters", "", "save poster thumbnails into this directory")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print movies as JSON")
	return cmd
}

func progressPrefix(level crawl.ProgressLevel) string {
	switch level {
	case crawl.LevelError:
		return "error: "
	case crawl.LevelWarning:
		return "warning: "
	case crawl.LevelSuccess:
		return "done: "
	default:
		return "  "
	}
}
