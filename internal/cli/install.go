package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shellforge-dev/shellforge/internal/prompt"
)

var installAll bool

var installCmd = &cobra.Command{
	Use:   "install [module]",
	Short: "Install shell configuration modules",
	Long: `Install one module by name, every applicable module with --all, or pick
from an interactive menu when called with no arguments.

Module configuration is written to the managed config file, which is
sourced from ~/.zshrc. Files are backed up before any change.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().BoolVarP(&installAll, "all", "a", false, "Install every module whose tool is detected")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	re, err := newRunEnv(cmd)
	if err != nil {
		return err
	}

	if err := checkPrerequisites(re); err != nil {
		return err
	}

	if err := re.env.Doc.EnsureInitialized(); err != nil {
		return fmt.Errorf("initializing config file: %w", err)
	}

	ctx := cmd.Context()

	switch {
	case installAll:
		results := re.registry.DispatchAll(ctx, re.env)
		applied, skipped, failed := 0, 0, 0
		for _, r := range results {
			switch {
			case r.Err != nil:
				failed++
			case r.Skipped:
				skipped++
			default:
				applied++
			}
		}
		re.env.Log.Infof("%d applied, %d skipped, %d failed", applied, skipped, failed)
		if failed > 0 {
			return fmt.Errorf("%d module(s) failed", failed)
		}

	case len(args) == 1:
		if err := re.registry.DispatchOne(ctx, re.env, args[0]); err != nil {
			return err
		}

	default:
		name, err := pickModule(cmd, re)
		if err != nil {
			return err
		}
		if err := re.registry.DispatchOne(ctx, re.env, name); err != nil {
			return err
		}
	}

	return ensureSourced(re)
}

// pickModule presents a numbered menu of all modules with availability
// markers and returns the chosen module's name.
func pickModule(cmd *cobra.Command, re *runEnv) (string, error) {
	all := re.registry.All()
	items := make([]string, len(all))
	for i, m := range all {
		mark := " "
		if m.Probe(re.env) {
			mark = "*"
		}
		items[i] = fmt.Sprintf("%s %s  (%s)", mark, m.Name, m.Description)
	}

	term := prompt.New(os.Stdin, cmd.OutOrStdout())
	idx, err := term.Select("Select a module to install (* = tool detected):", items)
	if err != nil {
		return "", err
	}
	return all[idx].Name, nil
}

// checkPrerequisites verifies the environment before any module runs.
// A missing zsh is fatal; everything else is a warning.
func checkPrerequisites(re *runEnv) error {
	if !re.detector.Binary("zsh") {
		return fmt.Errorf("zsh is not installed; install it first")
	}
	if !re.detector.ZshIsDefault() {
		re.env.Log.Warnf("zsh is not the default shell (run 'chsh -s $(which zsh)')")
	}
	if !re.detector.Binary("git") {
		re.env.Log.Warnf("git not found; modules that clone repositories will fail")
	}
	if _, ok := re.detector.OhMyZshDir(); !ok {
		re.env.Log.Warnf("oh-my-zsh not found; plugin and theme modules will be limited")
	}
	return nil
}

// ensureSourced makes ~/.zshrc source the managed config file.
func ensureSourced(re *runEnv) error {
	added, err := re.env.Shell.EnsureSourceLine(re.env.Doc.Path())
	if err != nil {
		return fmt.Errorf("patching zshrc: %w", err)
	}
	if added {
		re.env.Log.Successf("added source line to %s", re.env.Shell.Path())
	}
	return nil
}
