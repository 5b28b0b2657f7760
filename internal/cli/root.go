package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shellforge-dev/shellforge/internal/branding"
	"github.com/shellforge-dev/shellforge/internal/config"
	"github.com/shellforge-dev/shellforge/internal/updater"
	"github.com/shellforge-dev/shellforge/internal/userdata"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagYes   bool
	flagQuiet bool
	flagDebug bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` assembles a modular zsh configuration. It detects which
tools are installed, asks before every change, and writes each module's
configuration into a single managed file sourced from ~/.zshrc. Every file
it touches is backed up first.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Skip the banner for commands that manage their own state.
		name := cmd.Name()
		if name == "update" || name == "self-update" || name == "init" || name == "version" {
			return
		}

		// Non-blocking banner from cached version check.
		u := updater.New(buildVersion)
		u.CheckAndPrintBanner(os.Stderr, cacheDir())
	},
}

// cacheDir returns where the updater keeps its version-check cache.
func cacheDir() string {
	if dir, err := userdata.Cache(); err == nil {
		return dir
	}
	return config.Dir()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Answer yes to every question")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Print debug output")
}

// Execute runs the root command with build info injected via ldflags.
// A SIGINT anywhere during a run prints a closing notice and exits
// immediately; partial work is preserved by the per-file backups.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		fmt.Fprintln(os.Stderr, "\nInterrupted. Closing without finishing the current step.")
		os.Exit(130)
	}()

	err := rootCmd.Execute()
	if err != nil && strings.HasPrefix(err.Error(), "unknown command") {
		// Runtime errors stay terse; an unrecognized command gets the
		// full usage so the caller can see what exists.
		_ = rootCmd.Usage()
	}
	return err
}
