package modules

import (
	"context"
	"os"
	"path/filepath"

	"github.com/shellforge-dev/shellforge/internal/module"
)

func themeModules() []module.Module {
	return []module.Module{
		module.Clone(module.CloneSpec{
			Name:        "PowerLevel10K",
			Description: "Fast, configurable zsh prompt theme",
			RepoURL:     "https://github.com/romkatv/powerlevel10k",
			DirName:     "powerlevel10k",
			AsTheme:     true,
			ThemeValue:  "powerlevel10k/powerlevel10k",
			Section:     "PowerLevel10K",
			BodyFunc: func(env *module.Env, dir string) string {
				return `# PowerLevel10K instant prompt
if [[ -r "${XDG_CACHE_HOME:-$HOME/.cache}/p10k-instant-prompt-${(%):-%n}.zsh" ]]; then
    source "${XDG_CACHE_HOME:-$HOME/.cache}/p10k-instant-prompt-${(%):-%n}.zsh"
fi
[[ -f ~/.p10k.zsh ]] && source ~/.p10k.zsh`
			},
			PostClone: seedP10kConfig,
		}),
	}
}

// seedP10kConfig drops a minimal prompt configuration so the first shell
// start does not launch the interactive configuration wizard.
func seedP10kConfig(ctx context.Context, env *module.Env, dir string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	path := filepath.Join(home, ".p10k.zsh")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	const seed = `# Generated starter configuration. Run 'p10k configure' to customize.
typeset -g POWERLEVEL9K_LEFT_PROMPT_ELEMENTS=(dir vcs prompt_char)
typeset -g POWERLEVEL9K_RIGHT_PROMPT_ELEMENTS=(status command_execution_time)
typeset -g POWERLEVEL9K_PROMPT_ADD_NEWLINE=true
`
	return os.WriteFile(path, []byte(seed), 0o644)
}
