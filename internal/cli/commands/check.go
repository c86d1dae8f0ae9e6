package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqldoc/pkg/ast"
	"github.com/leapstack-labs/sqldoc/pkg/model"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [files...]",
		Short: "Check SQL files for syntax and model issues",
		Long: `Parse SQL schema files and report syntax errors, then build the
entity-relationship model and report semantic issues such as unresolved
foreign keys. All files are checked even if some fail to parse.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)

			files, err := inputFiles(cc, args)
			if err != nil {
				return err
			}
			d, err := resolveDialect(cc.Cfg)
			if err != nil {
				return err
			}

			results, err := parseInputs(cmd.Context(), d, files)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			problems := 0
			var stmts []ast.Statement
			for _, res := range results {
				if res.Err != nil {
					problems++
					_, _ = fmt.Fprintf(out, "%s: %v\n", res.Path, res.Err)
					continue
				}
				stmts = append(stmts, res.Statements...)
			}

			policy := model.DefaultJunctionPolicy()
			if cc.Cfg.JunctionCoverage > 0 {
				policy.MinKeyCoverage = cc.Cfg.JunctionCoverage
			}
			policy.NameHints = cc.Cfg.JunctionNames
			m := model.BuildWithPolicy(stmts, policy)
			for _, e := range m.Errors {
				problems++
				_, _ = fmt.Fprintf(out, "model: %v\n", e)
			}

			if problems > 0 {
				return fmt.Errorf("%d problem(s) found", problems)
			}
			_, _ = fmt.Fprintf(out, "ok: %d file(s), %d entities, %d relationships\n",
				len(files), len(m.Entities), len(m.Relationships))
			return nil
		},
	}
}
