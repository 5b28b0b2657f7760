package modules

import "github.com/shellforge-dev/shellforge/internal/module"

func pluginModules() []module.Module {
	return []module.Module{
		module.Clone(module.CloneSpec{
			Name:        "ZSH-Autosuggestions",
			Description: "Fish-like command suggestions from history",
			RepoURL:     "https://github.com/zsh-users/zsh-autosuggestions",
			DirName:     "zsh-autosuggestions",
			PluginToken: "zsh-autosuggestions",
		}),
		module.Clone(module.CloneSpec{
			Name:        "ZSH-Completions",
			Description: "Additional completion definitions for zsh",
			RepoURL:     "https://github.com/zsh-users/zsh-completions",
			DirName:     "zsh-completions",
			PluginToken: "zsh-completions",
		}),
		module.Clone(module.CloneSpec{
			Name:        "ZSH-Syntax-Highlighting",
			Description: "Command line syntax highlighting",
			RepoURL:     "https://github.com/zsh-users/zsh-syntax-highlighting",
			DirName:     "zsh-syntax-highlighting",
			PluginToken: "zsh-syntax-highlighting",
		}),
	}
}
