// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/pdiddy/storybook/internal/catalog"
	"github.com/pdiddy/storybook/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search a story catalog by title, author, or text",
	Long: `Search looks up stories in a catalog written by "generate --catalog".
Matching is a case-insensitive substring match on title, author, and
content. With no query every story is listed. A relative --catalog is
resolved against --source-dir, as generate does.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	sourceDir, _ := cmd.Flags().GetString("source-dir")
	catalogPath, _ := cmd.Flags().GetString("catalog")
	dbPath := inSourceDir(sourceDir, catalogPath)
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("catalog %s not found: run generate --catalog first", dbPath)
	}

	cat, err := catalog.Open(dbPath)
	if err != nil {
		return err
	}
	defer cat.Close()

	ctx := context.Background()
	var stories []types.Story
	if query := strings.Join(args, " "); query != "" {
		stories, err = cat.Search(ctx, query, limit)
	} else {
		stories, err = cat.All(ctx)
	}
	if err != nil {
		return err
	}
	return formatSearchOutput(stories, jsonOutput)
}

func formatSearchOutput(stories []types.Story, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(stories)
	}

	if len(stories) == 0 {
		fmt.Println("No stories found.")
		return nil
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Title", "Author", "Image"})
	for _, s := range stories {
		tw.AppendRow(table.Row{s.ID, truncate(s.Title, 30), truncate(s.Author, 16), s.Image})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	tw.Render()
	fmt.Fprintf(os.Stdout, "\n%d stories\n", len(stories))
	return nil
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func init() {
	searchCmd.Flags().String("source-dir", types.DefaultSourceDir, "story directory the catalog was generated for")
	searchCmd.Flags().String("catalog", "stories.db", "catalog database written by generate --catalog, relative to the source directory")
	searchCmd.Flags().Int("limit", 0, "maximum results (0 = default of 20)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}
