package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/slidedeck/internal/core/domain"
)

var slideListJSON bool

var (
	slideSetTitle      string
	slideSetSubtitle   string
	slideSetContent    string
	slideSetPoints     []string
	slideSetPointsText string
)

var slideCmd = &cobra.Command{
	Use:   "slide",
	Short: "Manage individual slides",
	Long: `List, show, add, delete and edit slides. Slides are numbered from 1
in presentation order.`,
}

var slideListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all slides",
	Args:  cobra.NoArgs,
	RunE:  runSlideList,
}

var slideShowCmd = &cobra.Command{
	Use:   "show N",
	Short: "Show one slide",
	Args:  cobra.ExactArgs(1),
	RunE:  runSlideShow,
}

var slideAddCmd = &cobra.Command{
	Use:   "add TYPE",
	Short: "Append a new slide",
	Long: `Append a placeholder slide of the given type.

Types:
  title    - Title and subtitle
  content  - Title, paragraph and bullet points
  list     - Title and bullet points`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"title", "content", "list"},
	RunE:      runSlideAdd,
}

var slideDeleteCmd = &cobra.Command{
	Use:   "delete N",
	Short: "Delete a slide",
	Long:  `Delete slide N. Later slides move up by one.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSlideDelete,
}

var slideSetCmd = &cobra.Command{
	Use:   "set N",
	Short: "Edit fields of a slide",
	Long: `Edit individual fields of slide N. Only the given flags change.

--subtitle applies to title slides, --content to content slides, and
--point / --points-text to content and list slides.

Examples:
  slidedeck slide set 1 --title "Quarterly review" --subtitle "Q3 2026"
  slidedeck slide set 2 --point "Revenue up" --point "Costs down"
  slidedeck slide set 3 --points-text "$(cat points.txt)"`,
	Args: cobra.ExactArgs(1),
	RunE: runSlideSet,
}

func init() {
	slideListCmd.Flags().BoolVar(&slideListJSON, "json", false, "output the deck as a JSON presentation document")

	slideSetCmd.Flags().StringVar(&slideSetTitle, "title", "", "slide title")
	slideSetCmd.Flags().StringVar(&slideSetSubtitle, "subtitle", "", "subtitle of a title slide")
	slideSetCmd.Flags().StringVar(&slideSetContent, "content", "", "paragraph of a content slide")
	slideSetCmd.Flags().StringArrayVar(&slideSetPoints, "point", nil, "bullet point, repeat for each point")
	slideSetCmd.Flags().StringVar(&slideSetPointsText, "points-text", "", "bullet points, one per line")
	slideSetCmd.MarkFlagsMutuallyExclusive("point", "points-text")

	slideCmd.AddCommand(slideListCmd)
	slideCmd.AddCommand(slideShowCmd)
	slideCmd.AddCommand(slideAddCmd)
	slideCmd.AddCommand(slideDeleteCmd)
	slideCmd.AddCommand(slideSetCmd)
	rootCmd.AddCommand(slideCmd)
}

func runSlideList(cmd *cobra.Command, _ []string) error {
	if deckService == nil {
		return errors.New("deck service not configured")
	}

	slides := deckService.Slides()

	if slideListJSON {
		data, err := domain.EncodeDocument(slides)
		if err != nil {
			return fmt.Errorf("failed to encode slides: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if len(slides) == 0 {
		cmd.Println("No slides.")
		cmd.Println("Add one with 'slidedeck slide add content'.")
		return nil
	}

	cmd.Printf("%d slides:\n\n", len(slides))
	for i, s := range slides {
		cmd.Printf("  %2d. %-8s %s\n", i+1, s.Type(), s.Heading())
	}
	return nil
}

func runSlideShow(cmd *cobra.Command, args []string) error {
	if deckService == nil {
		return errors.New("deck service not configured")
	}

	index, err := parseSlideNumber(args[0])
	if err != nil {
		return err
	}

	slide, err := deckService.Slide(index)
	if err != nil {
		return fmt.Errorf("failed to get slide: %w", err)
	}

	cmd.Printf("Slide %d of %d\n", index+1, deckService.Len())
	cmd.Printf("  Type:     %s\n", slide.Type().Description())
	cmd.Printf("  Title:    %s\n", slide.Heading())

	switch s := slide.(type) {
	case domain.TitleSlide:
		cmd.Printf("  Subtitle: %s\n", indentLines(s.Subtitle))
	case domain.ContentSlide:
		cmd.Printf("  Content:  %s\n", indentLines(s.Content))
		printPoints(cmd, s.Points)
	case domain.ListSlide:
		printPoints(cmd, s.Points)
	}
	return nil
}

func runSlideAdd(cmd *cobra.Command, args []string) error {
	if deckService == nil {
		return errors.New("deck service not configured")
	}

	t, err := domain.ParseSlideType(args[0])
	if err != nil {
		return err
	}

	index, err := deckService.Add(cmd.Context(), t)
	if err != nil {
		return fmt.Errorf("failed to add slide: %w", err)
	}

	cmd.Printf("Added %s slide %d.\n", t, index+1)
	return nil
}

func runSlideDelete(cmd *cobra.Command, args []string) error {
	if deckService == nil {
		return errors.New("deck service not configured")
	}

	index, err := parseSlideNumber(args[0])
	if err != nil {
		return err
	}

	if err := deckService.Delete(cmd.Context(), index); err != nil {
		return fmt.Errorf("failed to delete slide: %w", err)
	}

	cmd.Printf("Deleted slide %d. %d slides left.\n", index+1, deckService.Len())
	return nil
}

func runSlideSet(cmd *cobra.Command, args []string) error {
	if deckService == nil {
		return errors.New("deck service not configured")
	}

	index, err := parseSlideNumber(args[0])
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	var edit domain.SlideEdit
	if flags.Changed("title") {
		edit.Title = &slideSetTitle
	}
	if flags.Changed("subtitle") {
		subtitle := strings.ReplaceAll(slideSetSubtitle, `\n`, "\n")
		edit.Subtitle = &subtitle
	}
	if flags.Changed("content") {
		edit.Content = &slideSetContent
	}
	if flags.Changed("point") {
		points := append([]string{}, slideSetPoints...)
		edit.Points = &points
	}
	if flags.Changed("points-text") {
		points := domain.SplitPoints(slideSetPointsText)
		edit.Points = &points
	}

	if edit.IsEmpty() {
		return errors.New("nothing to change: give at least one of --title, --subtitle, --content, --point, --points-text")
	}

	if err := deckService.Update(cmd.Context(), index, edit); err != nil {
		return fmt.Errorf("failed to update slide: %w", err)
	}

	cmd.Printf("Updated slide %d.\n", index+1)
	return nil
}

// parseSlideNumber converts a 1-based slide number into an index.
func parseSlideNumber(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid slide number %q: must be 1 or more", arg)
	}
	return n - 1, nil
}

func printPoints(cmd *cobra.Command, points []string) {
	if len(points) == 0 {
		cmd.Println("  Points:   (none)")
		return
	}
	cmd.Println("  Points:")
	for _, p := range points {
		cmd.Printf("    - %s\n", p)
	}
}

func indentLines(s string) string {
	return strings.ReplaceAll(s, "\n", "\n            ")
}
