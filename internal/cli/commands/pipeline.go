package commands

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/sqldoc/internal/cli/config"
	"github.com/leapstack-labs/sqldoc/pkg/ast"
	"github.com/leapstack-labs/sqldoc/pkg/dialect"
	"github.com/leapstack-labs/sqldoc/pkg/model"
	"github.com/leapstack-labs/sqldoc/pkg/parser"
)

// fileResult is the parse outcome for one input file.
type fileResult struct {
	Path       string
	Statements []ast.Statement
	Err        error
}

// parseInputs reads and parses all input files concurrently. Results keep
// input order so the merged statement sequence, and with it the built
// model, is deterministic regardless of scheduling.
func parseInputs(ctx context.Context, d *dialect.Dialect, files []string) ([]fileResult, error) {
	results := make([]fileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = parseFile(path, d)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func parseFile(path string, d *dialect.Dialect) fileResult {
	source, err := os.ReadFile(path)
	if err != nil {
		return fileResult{Path: path, Err: err}
	}
	stmts, err := parser.Parse(string(source), d)
	return fileResult{Path: path, Statements: stmts, Err: err}
}

// mergeStatements concatenates per-file statements in input order,
// failing on the first file whose parse failed.
func mergeStatements(results []fileResult) ([]ast.Statement, error) {
	var stmts []ast.Statement
	for _, res := range results {
		if res.Err != nil {
			return nil, fmt.Errorf("%s: %w", res.Path, res.Err)
		}
		stmts = append(stmts, res.Statements...)
	}
	return stmts, nil
}

// resolveDialect resolves the configured dialect from the registry.
func resolveDialect(cfg *config.Config) (*dialect.Dialect, error) {
	d, ok := dialect.Get(cfg.Dialect)
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q (known: %v)", cfg.Dialect, dialect.List())
	}
	return d, nil
}

// buildModel runs the full pipeline over the input files and returns the
// built model.
func buildModel(ctx context.Context, cc *CommandContext, files []string) (*model.Model, error) {
	d, err := resolveDialect(cc.Cfg)
	if err != nil {
		return nil, err
	}

	results, err := parseInputs(ctx, d, files)
	if err != nil {
		return nil, err
	}
	stmts, err := mergeStatements(results)
	if err != nil {
		return nil, err
	}
	cc.Logger.Debug("parsed schema files", "files", len(files), "statements", len(stmts))

	policy := model.DefaultJunctionPolicy()
	if cc.Cfg.JunctionCoverage > 0 {
		policy.MinKeyCoverage = cc.Cfg.JunctionCoverage
	}
	policy.NameHints = cc.Cfg.JunctionNames
	m := model.BuildWithPolicy(stmts, policy)

	for _, e := range m.Errors {
		cc.Logger.Warn("model issue", "kind", e.Kind.String(), "context", e.Context)
	}
	return m, nil
}

// inputFiles picks the SQL inputs: positional args win over configuration.
func inputFiles(cc *CommandContext, args []string) ([]string, error) {
	files := args
	if len(files) == 0 {
		files = cc.Cfg.Inputs
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no input files: pass SQL files as arguments or set inputs in sqldoc.yaml")
	}
	return files, nil
}
