package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docstruct/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "docstruct",
	Short: "Extract document structure from PDF, DOCX, Markdown, HTML and text files",
	Long: `Docstruct infers the hierarchical structure of a document from its text
and typography: the title, chapter boundaries and section splits, with
key concepts and token estimates per section.

Chapter boundaries come from embedded bookmarks when the file has them,
and from font-size heuristics when it does not.`,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("docstruct %s\n", version.String()))
}
