package commands

import (
	"github.com/arthur-debert/lnk/internal/version"
	"github.com/arthur-debert/lnk/pkg/commands/topics"
	"github.com/arthur-debert/lnk/pkg/config"
	"github.com/arthur-debert/lnk/pkg/core"
	"github.com/arthur-debert/lnk/pkg/errors"
	"github.com/arthur-debert/lnk/pkg/filesystem"
	"github.com/arthur-debert/lnk/pkg/logging"
	"github.com/arthur-debert/lnk/pkg/output"
	"github.com/arthur-debert/lnk/pkg/prompt"
	"github.com/arthur-debert/lnk/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// linkFlags holds the raw flag values; buildOptions folds them together
// with config-file and environment defaults into LinkOptions.
type linkFlags struct {
	symbolic     bool
	force        bool
	interactive  bool
	backupNoArg  bool
	backupWhen   string
	suffix       string
	targetDir    string
	noTargetDir  bool
	verbose      bool
	dryRun       bool
	outputFormat string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		debug int
		flags linkFlags
	)

	rootCmd := &cobra.Command{
		Use:     "lnk [OPTION]... [-T] TARGET LINK_NAME",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(debug)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLink(cmd, args, &flags)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVar(&debug, "debug", MsgFlagDebug)

	rootCmd.Flags().BoolVarP(&flags.symbolic, "symbolic", "s", false, MsgFlagSymbolic)
	rootCmd.Flags().BoolVarP(&flags.force, "force", "f", false, MsgFlagForce)
	rootCmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, MsgFlagInteractive)
	rootCmd.Flags().BoolVarP(&flags.backupNoArg, "b", "b", false, MsgFlagBackupNoArg)
	rootCmd.Flags().StringVar(&flags.backupWhen, "backup", "", MsgFlagBackup)
	rootCmd.Flags().StringVarP(&flags.suffix, "suffix", "S", types.DefaultBackupSuffix, MsgFlagSuffix)
	rootCmd.Flags().StringVarP(&flags.targetDir, "target-directory", "t", "", MsgFlagTargetDir)
	rootCmd.Flags().BoolVarP(&flags.noTargetDir, "no-target-directory", "T", false, MsgFlagNoTargetDir)
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, MsgFlagVerbose)
	rootCmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.Flags().StringVar(&flags.outputFormat, "output", string(output.FormatText), MsgFlagOutput)

	// Bare --backup means --backup=existing; an explicit method needs
	// the --backup=WHEN spelling.
	rootCmd.Flags().Lookup("backup").NoOptDefVal = "existing"

	rootCmd.MarkFlagsMutuallyExclusive("target-directory", "no-target-directory")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(topics.NewCommand())

	return rootCmd
}

// runLink executes the link operation itself (the root command's job;
// everything else is a subcommand).
func runLink(cmd *cobra.Command, args []string, flags *linkFlags) error {
	opts, err := buildOptions(cmd, flags)
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(flags.outputFormat)
	if err != nil {
		return err
	}

	renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.Verbose)

	req := core.Request{
		FS:      filesystem.NewOS(),
		Paths:   args,
		Options: opts,
		Confirm: prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()),
	}
	if format == output.FormatText {
		req.Report = renderer.Result
	}

	results, err := core.Run(req)

	if format == output.FormatYAML && results != nil {
		if yerr := renderer.YAML(results); yerr != nil && err == nil {
			err = yerr
		}
	}
	return err
}

// buildOptions folds flags over the user defaults from config file and
// environment. Flags win; defaults only fill what the user left alone.
func buildOptions(cmd *cobra.Command, flags *linkFlags) (types.LinkOptions, error) {
	defaults, err := config.Load()
	if err != nil {
		return types.LinkOptions{}, err
	}

	opts := types.DefaultLinkOptions()
	opts.Symbolic = flags.symbolic
	opts.Verbose = flags.verbose
	opts.DryRun = flags.dryRun
	opts.TargetDir = flags.targetDir
	opts.NoTargetDir = flags.noTargetDir

	// -f beats -i when both are given.
	switch {
	case flags.force:
		opts.Overwrite = types.Force
	case flags.interactive:
		opts.Overwrite = types.Interactive
	}

	switch {
	case cmd.Flags().Changed("backup"):
		mode, perr := types.ParseBackupControl(flags.backupWhen)
		if perr != nil {
			return types.LinkOptions{}, errors.Newf(errors.ErrInvalidBackupControl,
				"invalid argument '%s' for 'backup method'", flags.backupWhen)
		}
		opts.Backup = mode
	case flags.backupNoArg:
		// -b uses the VERSION_CONTROL / config-file method when one is
		// set, falling back to "existing".
		mode, ok, merr := defaults.BackupMode()
		switch {
		case merr != nil:
			return types.LinkOptions{}, merr
		case ok:
			opts.Backup = mode
		default:
			opts.Backup = types.BackupExisting
		}
	}

	if cmd.Flags().Changed("suffix") {
		opts.Suffix = flags.suffix
	} else if defaults.Suffix != "" {
		opts.Suffix = defaults.Suffix
	}

	return opts, nil
}
