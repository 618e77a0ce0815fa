package devup

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/devup/internal/version"
	"github.com/arthur-debert/devup/pkg/catalog"
	"github.com/arthur-debert/devup/pkg/cobrax/topics"
	"github.com/arthur-debert/devup/pkg/config"
	"github.com/arthur-debert/devup/pkg/display"
	"github.com/arthur-debert/devup/pkg/logging"
	"github.com/arthur-debert/devup/pkg/pkgmgr"
	"github.com/arthur-debert/devup/pkg/provision"
	"github.com/arthur-debert/devup/pkg/runner"
)

//go:embed topics
var topicsFS embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "devup",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but signal incorrect usage
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().Bool("dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().Bool("strict", false, MsgFlagStrict)
	rootCmd.PersistentFlags().String("config", "", MsgFlagConfig)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Add all commands
	rootCmd.AddCommand(newProvisionCmd())
	rootCmd.AddCommand(newPackagesCmd())
	rootCmd.AddCommand(newGitconfigCmd())
	rootCmd.AddCommand(newExtensionsCmd())
	rootCmd.AddCommand(newCloneCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Initialize topic-based help from the embedded docs
	if sub, err := fs.Sub(topicsFS, "topics"); err == nil {
		opts := topics.Options{
			Extensions: []string{".txt", ".md"},
			// Always use Glamour renderer for markdown files
			Renderer: topics.NewGlamourRenderer(),
		}
		_ = topics.Initialize(rootCmd, sub, opts)
	}

	return rootCmd
}

// appEnv bundles the loaded configuration and catalog for a command run
type appEnv struct {
	cfg *config.Config
	cat *catalog.Catalog
	run runner.Runner
}

// loadEnv loads config and catalog per the root flags and builds the
// host runner
func loadEnv(cmd *cobra.Command) (*appEnv, error) {
	flags := cmd.Root().PersistentFlags()

	configFile, _ := flags.GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	cat, err := catalog.Load(cfg.Catalog.File)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadCatalog, err)
	}

	dryRun, _ := flags.GetBool("dry-run")
	return &appEnv{
		cfg: cfg,
		cat: cat,
		run: runner.NewOS(dryRun, cfg.Provision.Timeout),
	}, nil
}

// strictMode resolves strict mode: an explicitly set flag wins over
// the config file value
func strictMode(cmd *cobra.Command, cfg *config.Config) bool {
	flags := cmd.Root().PersistentFlags()
	if flags.Changed("strict") {
		strict, _ := flags.GetBool("strict")
		return strict
	}
	return cfg.Provision.Strict
}

// resolveManager resolves the package manager: --manager flag, then
// config, then auto-detection
func resolveManager(cmd *cobra.Command, env *appEnv) (*pkgmgr.Manager, error) {
	if name, _ := cmd.Flags().GetString("manager"); name != "" {
		return pkgmgr.Get(name)
	}
	return provision.ResolveManager(env.cfg, env.run)
}

// cloneSkipNotice returns the opt-in reminder when a repos file exists
// but cloning was not requested
func cloneSkipNotice(cfg *config.Config, clone bool) string {
	if clone {
		return ""
	}
	if _, err := os.Stat(cfg.Clone.ReposFile); err != nil {
		return ""
	}
	return MsgCloneDisabled
}

// finish renders the report and converts failures into an exit error
// in strict mode
func finish(cmd *cobra.Command, env *appEnv, report *provision.Report) error {
	if report.Empty() {
		fmt.Fprintln(cmd.OutOrStdout(), MsgNothingToDo)
		return nil
	}

	display.NewRenderer(cmd.OutOrStdout()).RenderReport(report)

	if dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run"); dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), MsgDryRunNotice)
	}

	return provision.StrictError(report, strictMode(cmd, env.cfg))
}

func newProvisionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "provision",
		Short:   MsgProvisionShort,
		Long:    MsgProvisionLong,
		Example: MsgProvisionExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			mgr, err := resolveManager(cmd, env)
			if err != nil {
				return err
			}

			clone, _ := cmd.Flags().GetBool("clone")
			report, err := provision.Run(cmd.Context(), provision.Options{
				Config:  env.cfg,
				Catalog: env.cat,
				Runner:  env.run,
				Manager: mgr,
				Clone:   clone,
			})
			if err != nil {
				if report != nil {
					display.NewRenderer(cmd.OutOrStdout()).RenderReport(report)
				}
				return fmt.Errorf(MsgErrProvision, err)
			}

			if notice := cloneSkipNotice(env.cfg, clone); notice != "" {
				fmt.Fprintln(cmd.OutOrStdout(), notice)
			}
			return finish(cmd, env, report)
		},
	}

	cmd.Flags().Bool("clone", false, MsgFlagClone)
	cmd.Flags().String("manager", "", MsgFlagManager)

	return cmd
}

func newPackagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "packages",
		Short:   MsgPackagesShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			mgr, err := resolveManager(cmd, env)
			if err != nil {
				return err
			}
			if err := provision.CheckElevation(*mgr); err != nil {
				return err
			}

			report := &provision.Report{}
			report.Add(provision.InstallPackages(cmd.Context(), env.run, *mgr, env.cat.Packages))
			return finish(cmd, env, report)
		},
	}

	cmd.Flags().String("manager", "", MsgFlagManager)

	return cmd
}

func newGitconfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "gitconfig",
		Short:   MsgGitconfigShort,
		Long:    MsgGitconfigLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			report := &provision.Report{}
			report.Add(provision.ApplyGitConfig(cmd.Context(), env.run, env.cfg.Git, env.cat.Aliases))
			return finish(cmd, env, report)
		},
	}
}

func newExtensionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "extensions",
		Short:   MsgExtensionsShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			report := &provision.Report{}
			for _, editor := range env.cat.Editors {
				report.Add(provision.InstallExtensions(cmd.Context(), env.run, editor, env.cat.Extensions))
			}
			return finish(cmd, env, report)
		},
	}
}

func newCloneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "clone [list-file]",
		Short:   MsgCloneShort,
		Long:    MsgCloneLong,
		Example: MsgCloneExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			listFile := env.cfg.Clone.ReposFile
			if len(args) == 1 {
				listFile = args[0]
			}
			targetDir := env.cfg.Clone.TargetDir
			if dest, _ := cmd.Flags().GetString("dest"); dest != "" {
				targetDir = dest
			}

			report := &provision.Report{}
			step, err := provision.CloneRepos(cmd.Context(), env.run, listFile, targetDir)
			report.Add(step)
			if err != nil {
				return fmt.Errorf(MsgErrClone, err)
			}
			return finish(cmd, env, report)
		},
	}

	cmd.Flags().String("dest", "", MsgFlagDest)

	return cmd
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			present := func(ok bool) string {
				if ok {
					return "yes"
				}
				return "no"
			}

			var rows [][]string
			for _, pkg := range env.cat.Packages {
				rows = append(rows, []string{pkg.Name, pkg.Check, present(env.run.CheckPresence(pkg.Check))})
			}
			for _, editor := range env.cat.Editors {
				rows = append(rows, []string{"Editor " + editor, editor, present(env.run.CheckPresence(editor))})
			}

			return display.NewRenderer(cmd.OutOrStdout()).RenderPresence(rows)
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := topicsFS.ReadDir("topics")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Available help topics:")
			for _, entry := range entries {
				name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nView one with: %s help <topic>\n", cmd.Root().Name())
			return nil
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
