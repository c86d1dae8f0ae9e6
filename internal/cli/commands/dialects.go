package commands

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqldoc/pkg/dialect"
)

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List supported SQL dialects",
		Run: func(cmd *cobra.Command, _ []string) {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Dialect", "Aliases", "Quote Chars", "Case Folding"})

			for _, name := range dialect.List() {
				d, ok := dialect.Get(name)
				if !ok {
					continue
				}
				quotes := make([]string, 0, len(d.QuoteChars))
				for _, q := range d.QuoteChars {
					quotes = append(quotes, string(q))
				}
				t.AppendRow(table.Row{
					d.Name,
					strings.Join(dialect.Aliases(name), ", "),
					strings.Join(quotes, " "),
					foldName(d.Fold),
				})
			}
			t.Render()
		},
	}
}

func foldName(f dialect.FoldCase) string {
	switch f {
	case dialect.FoldLower:
		return "lower"
	case dialect.FoldUpper:
		return "upper"
	default:
		return "none"
	}
}
