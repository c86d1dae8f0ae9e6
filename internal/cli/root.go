// Package cli provides the command-line interface for sqldoc.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqldoc/internal/cli/commands"
	"github.com/leapstack-labs/sqldoc/internal/cli/config"
	"github.com/leapstack-labs/sqldoc/pkg/dialect"

	// Register the built-in SQL dialects.
	_ "github.com/leapstack-labs/sqldoc/pkg/dialects"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// configKey is used to store config in context.
type configKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sqldoc",
		Short: "sqldoc - SQL Schema Documentation Generator",
		Long: `sqldoc reads SQL schema files, builds an entity-relationship model,
and generates documentation: markdown references, Mermaid ER diagrams,
and a JSON manifest.

Foreign keys become relationships, junction tables are detected and
collapsed into many-to-many edges, and unresolved references are
reported without aborting the run.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			// Store config and logger in context
			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)

			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))
			ctx = context.WithValue(ctx, config.LoggerKey(), logger)
			cmd.SetContext(ctx)

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
SQL Schema Documentation Generator
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./sqldoc.yaml)")
	rootCmd.PersistentFlags().StringP("dialect", "d", "", "SQL dialect (ansi|postgres|mysql|sqlite|mssql|oracle)")
	rootCmd.PersistentFlags().StringP("output-dir", "o", "", "Output directory for generated documentation")
	rootCmd.PersistentFlags().String("title", "", "Document title")
	rootCmd.PersistentFlags().StringP("format", "f", "", "Output format (markdown|mermaid|json|all)")
	rootCmd.PersistentFlags().Bool("diagram", true, "Embed a Mermaid diagram in markdown output")
	rootCmd.PersistentFlags().Bool("indexes", true, "Include index listings in markdown output")
	rootCmd.PersistentFlags().Bool("strict", false, "Treat model errors (e.g. unresolved foreign keys) as failures")
	rootCmd.PersistentFlags().Float64("junction-coverage", 1.0, "Fraction of a primary key that foreign keys must cover for junction detection")
	rootCmd.PersistentFlags().Bool("junction-names", false, "Also accept junction tables by naming convention (_to_, _and_, link, ...)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	// Register completion for dialect flag
	_ = rootCmd.RegisterFlagCompletionFunc("dialect", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return dialect.List(), cobra.ShellCompDirectiveNoFileComp
	})

	// Register completion for format flag
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewGenerateCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewDialectsCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	// Return default config if none in context
	return &config.Config{
		Dialect:          config.DefaultDialect,
		OutputDir:        config.DefaultOutputDir,
		Title:            config.DefaultTitle,
		Format:           config.DefaultFormat,
		Diagram:          true,
		Indexes:          true,
		JunctionCoverage: 1,
	}
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for sqldoc.

To load completions:

Bash:
  $ source <(sqldoc completion bash)

Zsh:
  $ sqldoc completion zsh > "${fpath[1]}/_sqldoc"

Fish:
  $ sqldoc completion fish | source

PowerShell:
  PS> sqldoc completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
	return cmd
}
