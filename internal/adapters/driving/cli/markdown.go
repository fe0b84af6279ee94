package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/slidedeck/internal/logger"
	"github.com/custodia-labs/slidedeck/internal/watch"
)

var markdownCmd = &cobra.Command{
	Use:     "markdown",
	Aliases: []string{"md"},
	Short:   "Edit the whole deck as markdown",
	Long: `Print the deck as one markdown document, or replace the deck with the
slides parsed from one.

Format:
  # Title              title slide when followed by a "## Subtitle" line
  ## Subtitle

  ---                  separates slides

  # Title              content slide: paragraph then "- " bullet points
  Paragraph text
  - Point`,
}

var markdownShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the deck as markdown",
	Args:  cobra.NoArgs,
	RunE:  runMarkdownShow,
}

var markdownCommitCmd = &cobra.Command{
	Use:   "commit FILE|-",
	Short: "Replace the deck with a markdown document",
	Long:  `Replace the whole deck with the slides parsed from FILE, or from stdin when FILE is "-".`,
	Args:  cobra.ExactArgs(1),
	RunE:  runMarkdownCommit,
}

var markdownWatchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Commit a markdown file every time it changes",
	Long: `Commit FILE once, then again every time it is saved, until interrupted.
Reloads closer together than watch.interval_ms are merged.`,
	Args: cobra.ExactArgs(1),
	RunE: runMarkdownWatch,
}

func init() {
	markdownCmd.AddCommand(markdownShowCmd)
	markdownCmd.AddCommand(markdownCommitCmd)
	markdownCmd.AddCommand(markdownWatchCmd)
	rootCmd.AddCommand(markdownCmd)
}

func runMarkdownShow(cmd *cobra.Command, _ []string) error {
	if deckService == nil {
		return errors.New("deck service not configured")
	}

	fmt.Fprintln(cmd.OutOrStdout(), deckService.Markdown())
	return nil
}

func runMarkdownCommit(cmd *cobra.Command, args []string) error {
	if deckService == nil {
		return errors.New("deck service not configured")
	}

	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read markdown: %w", err)
	}

	if err := deckService.CommitMarkdown(cmd.Context(), string(data)); err != nil {
		return fmt.Errorf("failed to commit markdown: %w", err)
	}

	cmd.Printf("Committed %d slides.\n", deckService.Len())
	return nil
}

func runMarkdownWatch(cmd *cobra.Command, args []string) error {
	if deckService == nil {
		return errors.New("deck service not configured")
	}

	path := args[0]
	ctx := cmd.Context()

	events, err := startWatch(ctx, path)
	if err != nil {
		return err
	}

	cmd.Printf("Committed %d slides from %s. Watching for changes, press Ctrl+C to stop.\n",
		deckService.Len(), path)

	for ev := range events {
		if ev.Err != nil {
			logger.Warn("reloading %s: %v", ev.Path, ev.Err)
			continue
		}
		if err := deckService.CommitMarkdown(ctx, ev.Content); err != nil {
			logger.Warn("committing %s: %v", ev.Path, err)
			continue
		}
		cmd.Printf("Reloaded %s: %d slides.\n", path, deckService.Len())
	}
	return nil
}

// startWatch commits the current content of path and then watches it.
// The returned channel is closed when ctx is done.
func startWatch(ctx context.Context, path string) (<-chan watch.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read markdown: %w", err)
	}
	if err := deckService.CommitMarkdown(ctx, string(data)); err != nil {
		return nil, fmt.Errorf("failed to commit markdown: %w", err)
	}

	events, err := watch.New(path, watchInterval()).Watch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}
	return events, nil
}

// watchInterval returns the configured reload interval.
func watchInterval() time.Duration {
	if settingsService == nil {
		return watch.DefaultInterval
	}
	settings, err := settingsService.Get()
	if err != nil {
		return watch.DefaultInterval
	}
	return time.Duration(settings.Watch.IntervalMS) * time.Millisecond
}
