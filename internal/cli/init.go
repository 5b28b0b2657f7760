package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shellforge-dev/shellforge/internal/userdata"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the data directory and default profile",
	Long: `Create ~/.shellforge with its backups, cache, plugins, and profiles
subdirectories, a default profile, and the managed config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := userdata.Init(cmd.OutOrStdout()); err != nil {
			return err
		}

		re, err := newRunEnv(cmd)
		if err != nil {
			return err
		}
		if err := re.env.Doc.EnsureInitialized(); err != nil {
			return fmt.Errorf("initializing config file: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Initialized. Run 'shellforge install' to add modules.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
