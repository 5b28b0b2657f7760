package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shellforge-dev/shellforge/internal/backup"
)

var rollbackCmd = &cobra.Command{
	Use:   "rollback [snapshot-id]",
	Short: "List snapshots or restore one",
	Long: `With no arguments, list every snapshot. With a snapshot id, restore all
files recorded in it; files that did not exist when the snapshot was taken
are removed again.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRollback,
}

func init() {
	rootCmd.AddCommand(rollbackCmd)
}

func runRollback(cmd *cobra.Command, args []string) error {
	re, err := newRunEnv(cmd)
	if err != nil {
		return err
	}
	snaps := backup.NewSnapshots(re.store)

	if len(args) == 0 {
		all, err := snaps.List()
		if err != nil {
			return err
		}
		if len(all) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No snapshots.")
			return nil
		}
		for _, s := range all {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s  %d file(s)  %s\n",
				s.ID, s.CreatedAt.Format("2006-01-02 15:04:05"), len(s.Files), s.Description)
		}
		return nil
	}

	id := args[0]
	ok, err := re.env.Ask.Confirm(fmt.Sprintf("Restore snapshot %s?", id), false)
	if err != nil {
		return err
	}
	if !ok {
		re.env.Log.Skipf("rollback cancelled")
		return nil
	}

	snap, err := snaps.Restore(id)
	if err != nil {
		return err
	}
	re.env.Log.Successf("restored snapshot %s (%d file(s))", snap.ID, len(snap.Files))
	return nil
}
