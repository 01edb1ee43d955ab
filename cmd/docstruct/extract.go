package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docstruct/internal/provider"
	"github.com/dgallion1/docstruct/internal/structure"
)

var (
	outputFormat string
	pagePrefetch int
	verbose      bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract the structure of a single document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if !provider.IsSupportedExtension(path) {
			return fmt.Errorf("unsupported file type: %s", path)
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		doc, err := provider.Open(f, path)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}

		logLevel := slog.LevelWarn
		if verbose {
			logLevel = slog.LevelDebug
		}
		log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: logLevel}))

		extractor := structure.NewExtractor(log, pagePrefetch)
		result, err := extractor.Extract(cmd.Context(), doc)
		if err != nil {
			return fmt.Errorf("extraction failed: %w", err)
		}

		switch outputFormat {
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		case "tree":
			printTree(cmd, result)
			return nil
		default:
			return fmt.Errorf("unknown output format: %s", outputFormat)
		}
	},
}

func printTree(cmd *cobra.Command, doc *structure.DocumentStructure) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%d pages, ~%d tokens)\n", doc.Title, doc.TotalPages, doc.EstimatedTokens)
	for _, ch := range doc.Chapters {
		fmt.Fprintf(out, "  %s  [pages %d-%d]\n", ch.Title, ch.StartPage, ch.EndPage)
		for _, sec := range ch.Sections {
			fmt.Fprintf(out, "    %s  [pages %d-%d, ~%d tokens]\n", sec.Title, sec.StartPage, sec.EndPage, sec.EstimatedTokens)
			if len(sec.Concepts) > 0 {
				fmt.Fprintf(out, "      concepts: %v\n", sec.Concepts)
			}
		}
	}
}

func init() {
	extractCmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format: json or tree")
	extractCmd.Flags().IntVar(&pagePrefetch, "prefetch", 4, "number of pages to load concurrently")
	extractCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log heading pattern analysis to stderr")

	rootCmd.AddCommand(extractCmd)
}
