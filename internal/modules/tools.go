package modules

import "github.com/shellforge-dev/shellforge/internal/module"

func toolModules() []module.Module {
	return []module.Module{
		module.Config(module.ConfigSpec{
			Name:        "Fzf",
			Description: "fzf fuzzy finder key bindings and completion",
			Binary:      "fzf",
			Body: `# fzf key bindings and completion
source <(fzf --zsh) 2>/dev/null || {
    [[ -f /usr/share/doc/fzf/examples/key-bindings.zsh ]] && source /usr/share/doc/fzf/examples/key-bindings.zsh
    [[ -f /usr/share/doc/fzf/examples/completion.zsh ]] && source /usr/share/doc/fzf/examples/completion.zsh
}
export FZF_DEFAULT_OPTS='--height 40% --layout=reverse --border'`,
		}),
		bat(),
		module.Config(module.ConfigSpec{
			Name:        "Eza",
			Description: "eza as a modern ls replacement",
			Binary:      "eza",
			Body: `# eza aliases
alias ls='eza'
alias ll='eza -l --git'
alias la='eza -la --git'
alias lt='eza --tree --level=2'`,
		}),
	}
}

// bat covers both upstream bat and Debian's batcat rename. The alias body
// is picked at apply time so the section matches the installed binary.
func bat() module.Module {
	return module.Config(module.ConfigSpec{
		Name:        "Bat",
		Description: "bat as a cat replacement with syntax highlighting",
		Binaries:    []string{"bat", "batcat"},
		BodyFunc: func(env *module.Env) string {
			if !env.Probe.Binary("bat") && env.Probe.Binary("batcat") {
				return `# bat (installed as batcat)
alias bat='batcat'
alias cat='batcat --paging=never'
export BAT_THEME='TwoDark'`
			}
			return `# bat
alias cat='bat --paging=never'
export BAT_THEME='TwoDark'`
		},
	})
}
