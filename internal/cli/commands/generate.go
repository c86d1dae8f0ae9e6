package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqldoc/internal/docs"
	"github.com/leapstack-labs/sqldoc/pkg/model"
)

// Generated file names inside the output directory.
const (
	markdownFile = "schema.md"
	mermaidFile  = "schema.mmd"
	manifestFile = "schema.json"
)

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "generate [files...]",
		Aliases: []string{"gen"},
		Short:   "Generate schema documentation from SQL files",
		Long: `Parse SQL schema files, build the entity-relationship model, and write
documentation to the output directory.

The output format selects which artifacts are written: markdown (schema.md),
mermaid (schema.mmd), json (schema.json), or all.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)

			files, err := inputFiles(cc, args)
			if err != nil {
				return err
			}
			m, err := buildModel(cmd.Context(), cc, files)
			if err != nil {
				return err
			}
			if cc.Cfg.Strict && len(m.Errors) > 0 {
				return m.Err()
			}

			if err := os.MkdirAll(cc.Cfg.OutputDir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			written, err := writeArtifacts(cc, m)
			if err != nil {
				return err
			}
			for _, path := range written {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			}
			if len(m.Errors) > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d model issue(s), see %s\n",
					len(m.Errors), filepath.Join(cc.Cfg.OutputDir, markdownFile))
			}
			return nil
		},
	}
}

func writeArtifacts(cc *CommandContext, m *model.Model) ([]string, error) {
	var written []string

	write := func(name string, render func(f *os.File) error) error {
		path := filepath.Join(cc.Cfg.OutputDir, name)
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := render(f); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		written = append(written, path)
		return nil
	}

	format := cc.Cfg.Format
	if format == "markdown" || format == "all" {
		opts := docs.MarkdownOptions{
			Title:          cc.Cfg.Title,
			IncludeDiagram: cc.Cfg.Diagram,
			IncludeIndexes: cc.Cfg.Indexes,
		}
		if err := write(markdownFile, func(f *os.File) error {
			return docs.RenderMarkdown(f, m, opts)
		}); err != nil {
			return nil, err
		}
	}
	if format == "mermaid" || format == "all" {
		if err := write(mermaidFile, func(f *os.File) error {
			return docs.RenderMermaid(f, m)
		}); err != nil {
			return nil, err
		}
	}
	if format == "json" || format == "all" {
		if err := write(manifestFile, func(f *os.File) error {
			return docs.RenderManifest(f, m)
		}); err != nil {
			return nil, err
		}
	}
	return written, nil
}
