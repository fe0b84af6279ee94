package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [PATH]",
	Short: "Write the deck to a JSON file",
	Long: `Write the deck as a JSON presentation document. Without PATH the
file name from the export.filename setting is used (presentation.json).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import PATH",
	Short: "Replace the deck with a JSON file",
	Long: `Replace the whole deck with the slides of a JSON presentation document.
When the file cannot be read or parsed the deck is left unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the deck to a standalone document",
}

var renderHTMLCmd = &cobra.Command{
	Use:   "html [PATH]",
	Short: "Render the deck as a single HTML page",
	Long: `Render the deck as one self-contained HTML page with arrow key
navigation. Without PATH the page is written to presentation.html.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRenderHTML,
}

func init() {
	renderCmd.AddCommand(renderHTMLCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(renderCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if deckService == nil {
		return errors.New("deck service not configured")
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	written, err := deckService.Export(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	cmd.Printf("Exported %d slides to %s\n", deckService.Len(), written)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	if deckService == nil {
		return errors.New("deck service not configured")
	}

	if err := deckService.Import(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to import: %w", err)
	}

	cmd.Printf("Imported %d slides from %s\n", deckService.Len(), args[0])
	return nil
}

func runRenderHTML(cmd *cobra.Command, args []string) error {
	if deckService == nil {
		return errors.New("deck service not configured")
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	written, err := deckService.Render(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	cmd.Printf("Rendered %d slides to %s\n", deckService.Len(), written)
	return nil
}
