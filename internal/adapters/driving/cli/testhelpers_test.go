package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/slidedeck/internal/adapters/driven/render/html"
	"github.com/custodia-labs/slidedeck/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/slidedeck/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/slidedeck/internal/converters/markdown"
	"github.com/custodia-labs/slidedeck/internal/core/services"
)

// setupTestServices installs a deck holding the default slides and
// in-memory settings. The returned deck service is the one the commands use.
func setupTestServices(t *testing.T) *services.DeckService {
	t.Helper()

	deck := services.NewDeckService(memory.NewStateStore(), file.NewDocumentFile(), markdown.New(), html.New())
	settings := services.NewSettingsService(memory.NewConfigStore())
	SetServices(deck, settings)

	t.Cleanup(func() {
		SetServices(nil, nil)
	})
	return deck
}

// execute runs the root command with args and returns everything it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	resetFlags(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.ExecuteContext(ctx)
	return buf.String(), err
}

// resetFlags restores every flag to its default. Cobra commands are
// package globals, so parsed values otherwise leak between tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
