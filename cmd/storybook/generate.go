// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/storybook/internal/catalog"
	"github.com/pdiddy/storybook/internal/manifest"
	"github.com/pdiddy/storybook/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write stories.js from story text files and cover images",
	Long: `Generate reads every <number>.<author>.txt file in the source directory,
takes the title from its "제목:" line, and looks up a cover image in
image/compressed/ then image/ (.jpeg, .jpg, .png), falling back to any file
starting with "<number>.". The records are written in id order.

Files with a bad name or unreadable content are reported and skipped; they
never fail the run.`,
	Args:    cobra.NoArgs,
	PreRunE: bindGenerateFlags,
	RunE:    runGenerate,
}

// generateFlags maps generate flag names to their viper keys.
var generateFlags = map[string]string{
	"source-dir":      "source_dir",
	"image-dir":       "image_dir",
	"output":          "output",
	"format":          "format",
	"variable":        "variable",
	"indent":          "indent",
	"placeholder":     "placeholder",
	"normalize-names": "normalize_names",
	"catalog":         "catalog",
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().String("source-dir", types.DefaultSourceDir, "directory containing <number>.<author>.txt files")
	cmd.Flags().String("image-dir", types.DefaultImageDir, "image directory, relative to the source directory")
	cmd.Flags().String("output", types.DefaultOutput, "manifest path, relative to the source directory (- for stdout)")
	cmd.Flags().String("format", string(types.FormatJS), "output format: js, json, or yaml")
	cmd.Flags().String("variable", types.DefaultVariable, "JavaScript variable name for the js format")
	cmd.Flags().Int("indent", types.DefaultIndent, "spaces per indentation level")
	cmd.Flags().String("placeholder", types.DefaultPlaceholder, "image path used when no image matches")
	cmd.Flags().Bool("normalize-names", false, "normalize author names to Unicode NFC")
	cmd.Flags().String("catalog", "", "also write a searchable SQLite snapshot to this path")
}

// bindGenerateFlags binds the running command's flags to viper so that a
// config file or STORYBOOK_* environment variable can supply defaults.
func bindGenerateFlags(cmd *cobra.Command, args []string) error {
	for flag, key := range generateFlags {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("binding flag %s: %w", flag, err)
		}
	}
	return nil
}

func generateConfig() (types.ManifestConfig, error) {
	var cfg types.ManifestConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg.WithDefaults(), nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := generateConfig()
	if err != nil {
		return err
	}
	return generate(cmd.Context(), cfg, cmd.OutOrStdout())
}

// stdoutOutput as the output path sends the manifest to stdout.
const stdoutOutput = "-"

// generate builds the manifest for cfg and writes it out. Status lines go to
// w, except when the manifest itself is written to w, in which case they go
// to stderr.
func generate(ctx context.Context, cfg types.ManifestConfig, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := manifest.Build(cfg.SourceDir, cfg.ImageDir, manifest.Options{
		Placeholder:    cfg.Placeholder,
		NormalizeNames: cfg.NormalizeNames,
	})
	if err != nil {
		return err
	}

	opts := manifest.WriteOptions{
		Format:   cfg.Format,
		Variable: cfg.Variable,
		Indent:   cfg.Indent,
	}
	toStdout := cfg.Output == stdoutOutput
	log := w
	if toStdout {
		log = os.Stderr
	}
	manifest.Report(log, result)

	if toStdout {
		if err := manifest.Write(w, result.Stories, opts); err != nil {
			return fmt.Errorf("writing manifest to stdout: %w", err)
		}
	} else {
		outPath := inSourceDir(cfg.SourceDir, cfg.Output)
		if err := manifest.WriteFile(outPath, result.Stories, opts); err != nil {
			return err
		}
		fmt.Fprintf(log, "wrote %s with %d stories\n", outPath, len(result.Stories))
	}

	if cfg.CatalogPath == "" {
		return nil
	}
	dbPath := inSourceDir(cfg.SourceDir, cfg.CatalogPath)
	cat, err := catalog.Open(dbPath)
	if err != nil {
		return err
	}
	defer cat.Close()
	if err := cat.Replace(ctx, result.Stories); err != nil {
		return err
	}
	fmt.Fprintf(log, "wrote catalog %s\n", dbPath)
	return nil
}

// inSourceDir resolves a relative output path against the source directory.
func inSourceDir(sourceDir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(sourceDir, p)
}

func init() {
	addGenerateFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}
