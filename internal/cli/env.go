package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shellforge-dev/shellforge/internal/backup"
	"github.com/shellforge-dev/shellforge/internal/config"
	"github.com/shellforge-dev/shellforge/internal/detect"
	"github.com/shellforge-dev/shellforge/internal/gitclone"
	"github.com/shellforge-dev/shellforge/internal/logging"
	"github.com/shellforge-dev/shellforge/internal/module"
	"github.com/shellforge-dev/shellforge/internal/modules"
	"github.com/shellforge-dev/shellforge/internal/profile"
	"github.com/shellforge-dev/shellforge/internal/prompt"
	"github.com/shellforge-dev/shellforge/internal/shellcfg"
	"github.com/shellforge-dev/shellforge/internal/userdata"
	"github.com/shellforge-dev/shellforge/internal/zshrc"
)

// runEnv bundles everything a command needs for one run: the module
// environment plus the handles commands use directly.
type runEnv struct {
	env      *module.Env
	registry *module.Registry
	store    *backup.Store
	detector *detect.Detector
}

// newRunEnv wires every collaborator from real paths and the process
// stdin/stdout. All state construction happens here so command bodies
// stay declarative.
func newRunEnv(cmd *cobra.Command) (*runEnv, error) {
	configPath, err := userdata.ConfigFile()
	if err != nil {
		return nil, fmt.Errorf("resolving config file: %w", err)
	}
	backupDir, err := userdata.Backups()
	if err != nil {
		return nil, fmt.Errorf("resolving backup directory: %w", err)
	}
	zshrcPath, err := userdata.Zshrc()
	if err != nil {
		return nil, fmt.Errorf("resolving zshrc: %w", err)
	}
	profilePath, err := userdata.ActiveProfile()
	if err != nil {
		return nil, fmt.Errorf("resolving active profile: %w", err)
	}

	prof, err := profile.Load(profilePath)
	if err != nil {
		return nil, err
	}

	config.Load()

	log := logging.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
	log.Quiet = flagQuiet || config.GetBool(config.KeyQuiet)
	log.Debug = flagDebug || config.GetBool(config.KeyDebug)

	var ask prompt.Asker
	if flagYes || config.GetBool(config.KeyAutoYes) {
		ask = prompt.AutoYes{}
	} else {
		ask = prompt.New(os.Stdin, cmd.OutOrStdout())
	}

	store := backup.NewStore(backupDir)
	detector := detect.New()

	env := &module.Env{
		Doc:     shellcfg.New(configPath, store),
		Shell:   zshrc.New(zshrcPath, store),
		Probe:   detector,
		Ask:     ask,
		Log:     log,
		Clone:   gitclone.Clone,
		Profile: prof,
	}

	reg, err := module.NewRegistry(modules.BuiltIn()...)
	if err != nil {
		return nil, err
	}

	return &runEnv{env: env, registry: reg, store: store, detector: detector}, nil
}
