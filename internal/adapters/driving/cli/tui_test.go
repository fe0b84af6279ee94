package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/slidedeck/internal/adapters/driving/tui"
	"github.com/custodia-labs/slidedeck/internal/adapters/driving/tui/messages"
)

// stubTerminal replaces the terminal check and the program runner.
// The returned pointer receives the app that would have been run.
func stubTerminal(t *testing.T, interactive bool) **tui.App {
	t.Helper()

	var ran *tui.App
	origTerminal, origRun := isTerminal, runProgram
	isTerminal = func() bool { return interactive }
	runProgram = func(app *tui.App) error {
		ran = app
		return nil
	}
	t.Cleanup(func() {
		isTerminal, runProgram = origTerminal, origRun
	})
	return &ran
}

func TestTUICmd_Exists(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "tui" {
			found = true
			break
		}
	}
	assert.True(t, found, "tui command should be registered")
}

func TestTUICmd_HelpOutput(t *testing.T) {
	out, err := execute(t, "tui", "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "interactive terminal editor")
	assert.Contains(t, out, "Controls:")
}

func TestTUICmd_RequiresTerminal(t *testing.T) {
	setupTestServices(t)
	ran := stubTerminal(t, false)

	_, err := execute(t, "tui")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
	assert.Nil(t, *ran)
}

func TestTUICmd_Runs(t *testing.T) {
	setupTestServices(t)
	ran := stubTerminal(t, true)

	_, err := execute(t, "tui")

	require.NoError(t, err)
	require.NotNil(t, *ran)
	assert.Equal(t, messages.ViewDeck, (*ran).CurrentView())
}

func TestTUICmd_WatchCommitsFile(t *testing.T) {
	deck := setupTestServices(t)
	stubTerminal(t, true)
	path := filepath.Join(t.TempDir(), "deck.md")
	require.NoError(t, os.WriteFile(path, []byte("# One\n- a\n---\n# Two\n- b\n---\n# Three\n- c"), 0o600))

	_, err := execute(t, "tui", "--watch", path)

	require.NoError(t, err)
	assert.Equal(t, 3, deck.Len())
}

func TestPresentCmd_StartsAtSlide(t *testing.T) {
	deck := setupTestServices(t)
	ran := stubTerminal(t, true)

	_, err := execute(t, "present", "--start", "2")

	require.NoError(t, err)
	require.NotNil(t, *ran)
	assert.Equal(t, messages.ViewPresenter, (*ran).CurrentView())
	assert.Equal(t, 1, deck.Current())
	assert.False(t, deck.Presenting())
}

func TestPresentCmd_InvalidStart(t *testing.T) {
	setupTestServices(t)
	ran := stubTerminal(t, true)

	_, err := execute(t, "present", "--start", "0")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --start")
	assert.Nil(t, *ran)
}

func TestPresentCmd_RequiresTerminal(t *testing.T) {
	setupTestServices(t)
	stubTerminal(t, false)

	_, err := execute(t, "present")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestRunApp_RecoversPanic(t *testing.T) {
	setupTestServices(t)
	stubTerminal(t, true)
	runProgram = func(*tui.App) error {
		panic("boom")
	}

	_, err := execute(t, "tui")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "TUI error: boom")
}
