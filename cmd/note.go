package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/planner/internal/model"
	"github.com/manav03panchal/planner/internal/output"
	"github.com/manav03panchal/planner/internal/validate"
)

// Note command flags.
var (
	noteAddFlagContent string
	noteAddFlagTags    []string
	noteAddFlagColor   string
	noteAddFlagPin     bool
	noteListFlagPinned bool
)

// noteCmd represents the note command.
var noteCmd = &cobra.Command{
	Use:     "note",
	Aliases: []string{"notes", "n"},
	Short:   "Keep notes",
	Long: `Write, search, and pin notes.

Search matches anywhere in the title, content, or tags, ignoring case.

Examples:
  planner note add 'standup' --content 'asked about the deploy'
  planner note add 'ideas' --tags work,backlog --pin
  planner note search deploy
  planner note pin ideas
  planner note rm standup`,
	RunE: runNoteList,
}

var noteAddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteAdd,
}

var noteListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List notes, pinned first",
	RunE:    runNoteList,
}

var noteSearchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search notes by title, content, or tag",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNoteSearch,
}

var notePinCmd = &cobra.Command{
	Use:   "pin TITLE_OR_ID",
	Short: "Pin or unpin a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotePin,
}

var noteDeleteCmd = &cobra.Command{
	Use:     "rm TITLE_OR_ID",
	Aliases: []string{"delete", "remove"},
	Short:   "Delete a note",
	Args:    cobra.ExactArgs(1),
	RunE:    runNoteDelete,
}

func init() {
	noteAddCmd.Flags().StringVarP(&noteAddFlagContent, "content", "c", "", "Note body")
	noteAddCmd.Flags().StringSliceVarP(&noteAddFlagTags, "tags", "t", nil, "Comma-separated tags")
	noteAddCmd.Flags().StringVar(&noteAddFlagColor, "color", "", "Hex color, e.g. #F59E0B")
	noteAddCmd.Flags().BoolVar(&noteAddFlagPin, "pin", false, "Pin the note")

	noteListCmd.Flags().BoolVarP(&noteListFlagPinned, "pinned", "p", false, "Only pinned notes")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteSearchCmd)
	noteCmd.AddCommand(notePinCmd)
	noteCmd.AddCommand(noteDeleteCmd)
	rootCmd.AddCommand(noteCmd)
}

func runNoteAdd(cmd *cobra.Command, args []string) error {
	title := strings.TrimSpace(args[0])
	if err := validate.Title(title); err != nil {
		return err
	}
	if err := validate.Content(noteAddFlagContent); err != nil {
		return err
	}
	if err := validate.Tags(noteAddFlagTags); err != nil {
		return err
	}
	if err := validate.HexColor(noteAddFlagColor); err != nil {
		return err
	}

	note, err := ctx.Notes.Add(model.Note{
		Title:   title,
		Content: noteAddFlagContent,
		Tags:    noteAddFlagTags,
		Color:   noteAddFlagColor,
		Pinned:  noteAddFlagPin,
	})
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(note)
	}
	ctx.CLIFormatter().Success("Added note " + note.Title)
	return nil
}

func runNoteList(cmd *cobra.Command, args []string) error {
	pinned := ctx.Notes.Pinned()
	rest := ctx.Notes.Unpinned()
	if noteListFlagPinned {
		rest = nil
	}

	if ctx.IsJSON() {
		notes := append([]*model.Note{}, pinned...)
		notes = append(notes, rest...)
		return ctx.Formatter.JSON(output.NotesResponse{Notes: notes})
	}

	cli := ctx.CLIFormatter()
	cli.Title("Notes")
	if len(pinned) == 0 && len(rest) == 0 {
		cli.Muted("  No notes yet. Use 'planner note add <title>'.")
		return nil
	}
	for _, n := range pinned {
		cli.PrintNote(n)
	}
	for _, n := range rest {
		cli.PrintNote(n)
	}
	return nil
}

func runNoteSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	ctx.Notes.SetQuery(query)
	notes := ctx.Notes.Filtered()

	if ctx.IsJSON() {
		if notes == nil {
			notes = []*model.Note{}
		}
		return ctx.Formatter.JSON(output.NotesResponse{Notes: notes, Query: query})
	}

	cli := ctx.CLIFormatter()
	if len(notes) == 0 {
		cli.Muted("No notes match '" + query + "'")
		return nil
	}
	cli.Title("Notes matching '" + query + "'")
	for _, n := range notes {
		cli.PrintNote(n)
	}
	return nil
}

func runNotePin(cmd *cobra.Command, args []string) error {
	id, err := resolveNote(args[0])
	if err != nil {
		return err
	}
	if err := ctx.Notes.TogglePin(id); err != nil {
		return err
	}

	note := ctx.Notes.Get(id)
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(note)
	}

	cli := ctx.CLIFormatter()
	if note.Pinned {
		cli.Success("Pinned " + note.Title)
	} else {
		cli.Success("Unpinned " + note.Title)
	}
	return nil
}

func runNoteDelete(cmd *cobra.Command, args []string) error {
	id, err := resolveNote(args[0])
	if err != nil {
		return err
	}
	note := ctx.Notes.Get(id)
	if err := ctx.Notes.Delete(id); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "deleted", "id": id})
	}
	ctx.CLIFormatter().Success("Deleted " + note.Title)
	return nil
}
