package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available modules",
	Long:    `List every known module with its description and whether its tool was detected.`,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	re, err := newRunEnv(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	available := 0
	for _, m := range re.registry.All() {
		status := "not detected"
		if m.Probe(re.env) {
			status = "available"
			available++
		}
		if re.env.Profile.Disabled(m.Name) {
			status = "disabled by profile"
		}
		fmt.Fprintf(out, "  %-26s %-20s %s\n", m.Name, "["+status+"]", m.Description)
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(out, "\n%d modules, %d available\n", len(re.registry.All()), available)
	return nil
}
