package main

import (
	"github.com/spf13/cobra"

	"github.com/evgeniy-krivenko/notes-api/pkg/notesclient"
)

var (
	notesPage  int
	notesLimit int

	noteTitle    string
	noteContent  string
	noteCategory string
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "List and create notes",
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List one page of notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := newClient().ListNotes(cmd.Context(), notesPage, notesLimit)
		if err != nil {
			return err
		}

		return printJSON(cmd, list)
	},
}

var notesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := newClient().CreateNote(cmd.Context(), notesclient.CreateNoteRequest{
			Title:    noteTitle,
			Content:  noteContent,
			Category: optional(cmd, "category", noteCategory),
		})
		if err != nil {
			return err
		}

		return printJSON(cmd, note)
	},
}

func init() {
	notesListCmd.Flags().IntVar(&notesPage, "page", 0, "page number, starting at 1")
	notesListCmd.Flags().IntVar(&notesLimit, "limit", 0, "page size")

	notesCreateCmd.Flags().StringVar(&noteTitle, "title", "", "note title, unique")
	notesCreateCmd.Flags().StringVar(&noteContent, "content", "", "note content")
	notesCreateCmd.Flags().StringVar(&noteCategory, "category", "", "note category")
	_ = notesCreateCmd.MarkFlagRequired("title")
	_ = notesCreateCmd.MarkFlagRequired("content")

	notesCmd.AddCommand(notesListCmd, notesCreateCmd)
	rootCmd.AddCommand(notesCmd)
}
