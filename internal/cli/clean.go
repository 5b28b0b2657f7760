package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shellforge-dev/shellforge/internal/backup"
	"github.com/shellforge-dev/shellforge/internal/userdata"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the generated configuration",
	Long: `Remove the managed config file after snapshotting it together with
~/.zshrc. The snapshot can be restored with 'shellforge rollback'.`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	re, err := newRunEnv(cmd)
	if err != nil {
		return err
	}

	ok, err := re.env.Ask.Confirm("Remove the generated configuration?", false)
	if err != nil {
		return err
	}
	if !ok {
		re.env.Log.Skipf("clean cancelled")
		return nil
	}

	zshrcPath, err := userdata.Zshrc()
	if err != nil {
		return fmt.Errorf("resolving zshrc: %w", err)
	}

	snaps := backup.NewSnapshots(re.store)
	snap, err := snaps.Create("before clean", []string{re.env.Doc.Path(), zshrcPath})
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	re.env.Log.Infof("snapshot %s created", snap.ID)

	backupPath, err := re.env.Doc.Reset()
	if err != nil {
		return err
	}
	if backupPath == "" {
		re.env.Log.Skipf("nothing to clean")
		return nil
	}
	re.env.Log.Successf("removed %s (backup at %s)", re.env.Doc.Path(), backupPath)
	re.env.Log.Infof("source line in %s left in place; remove it manually if desired", zshrcPath)
	return nil
}
