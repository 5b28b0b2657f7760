package modules

import "github.com/shellforge-dev/shellforge/internal/module"

func vcsModules() []module.Module {
	return []module.Module{
		module.Config(module.ConfigSpec{
			Name:        "GitHub",
			Description: "GitHub CLI completion and aliases",
			Binary:      "gh",
			Body: `# GitHub CLI completion
eval "$(gh completion -s zsh)"

# GitHub CLI aliases
alias ghpr='gh pr create'
alias ghprs='gh pr status'
alias ghprv='gh pr view --web'
alias ghis='gh issue list'`,
		}),
		module.Config(module.ConfigSpec{
			Name:        "GitLab",
			Description: "GitLab CLI completion and aliases",
			Binary:      "glab",
			Body: `# GitLab CLI completion
eval "$(glab completion -s zsh)"

# GitLab CLI aliases
alias glmr='glab mr create'
alias glmrs='glab mr list'
alias glis='glab issue list'`,
		}),
	}
}
