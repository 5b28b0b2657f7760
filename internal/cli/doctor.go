package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shellforge-dev/shellforge/internal/detect"
	"github.com/shellforge-dev/shellforge/internal/userdata"
)

var doctorTools bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the shell environment",
	Long:  `Check the prerequisites every module depends on and report which tools were detected.`,
	RunE:  runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorTools, "tools", false, "Also scan for every known tool and print its version")
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	re, err := newRunEnv(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	if host, err := detect.Host(ctx); err == nil {
		fmt.Fprintf(out, "Host: %s %s %s (%s) on %s\n\n",
			host.OS, host.Platform, host.Version, host.Arch, host.Hostname)
	}

	check := func(name string, ok bool, hint string) {
		mark := "[ OK ]"
		if !ok {
			mark = "[FAIL]"
		}
		fmt.Fprintf(out, "  %s %s", mark, name)
		if !ok && hint != "" {
			fmt.Fprintf(out, " (%s)", hint)
		}
		fmt.Fprintln(out)
	}

	check("zsh installed", re.detector.Binary("zsh"), "install zsh")
	check("zsh is default shell", re.detector.ZshIsDefault(), "chsh -s $(which zsh)")
	check("git installed", re.detector.Binary("git"), "needed for plugin and theme modules")
	check("curl installed", re.detector.Binary("curl"), "")
	_, omz := re.detector.OhMyZshDir()
	check("oh-my-zsh installed", omz, "https://ohmyz.sh")

	configPath, err := userdata.ConfigFile()
	if err == nil {
		sourced, serr := re.env.Shell.SourcesFile(configPath)
		check("config sourced from zshrc", serr == nil && sourced, "run 'shellforge install'")
	}

	if doctorTools {
		fmt.Fprintln(out, "\nDetected tools:")
		for _, t := range re.detector.ScanTools(ctx) {
			if !t.Installed {
				continue
			}
			fmt.Fprintf(out, "  %-12s %-14s %s\n", t.Tool.Name, t.Tool.Category, t.Version)
		}
	}
	return nil
}
