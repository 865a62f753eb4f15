package termsys

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/orcnighte/terminal-system/internal/version"
	"github.com/orcnighte/terminal-system/pkg/config"
	"github.com/orcnighte/terminal-system/pkg/logging"
	"github.com/orcnighte/terminal-system/pkg/shell"
	"github.com/orcnighte/terminal-system/pkg/vfs"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		noColor   bool
		cfgPath   string
	)

	rootCmd := &cobra.Command{
		Use:     "termsys [script]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Args:    cobra.MaximumNArgs(1),
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if noColor {
				cfg.Prompt.Color = false
			}

			in := cmd.InOrStdin()
			interactive := false
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open script: %w", err)
				}
				defer f.Close()
				in = f
			} else if stdin, ok := in.(*os.File); ok {
				fd := stdin.Fd()
				interactive = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
			}

			repl := shell.NewREPL(vfs.New(), cfg, in, cmd.OutOrStdout(), cmd.ErrOrStderr(), shell.Options{
				Interactive: interactive,
				Color:       interactive && !noColor,
			})
			return repl.Run()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.Flags().StringVar(&cfgPath, "config", "", MsgFlagConfig)

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "termsys version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}
