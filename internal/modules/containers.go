package modules

import (
	"context"
	"fmt"

	"github.com/shellforge-dev/shellforge/internal/module"
)

func containerModules() []module.Module {
	return []module.Module{
		module.Config(module.ConfigSpec{
			Name:        "Docker",
			Description: "Docker aliases and completion plugin",
			Binary:      "docker",
			Body: `# Docker aliases
alias d='docker'
alias dps='docker ps'
alias dpsa='docker ps -a'
alias di='docker images'
alias dex='docker exec -it'
alias dlog='docker logs -f'
alias dstop='docker stop $(docker ps -q)'
alias dprune='docker system prune -f'
alias dc='docker compose'
alias dcu='docker compose up -d'
alias dcd='docker compose down'
alias dcl='docker compose logs -f'`,
			Then: enableOmzPlugin("Docker", "docker"),
		}),
		module.Config(module.ConfigSpec{
			Name:        "Podman",
			Description: "Podman aliases, optionally aliasing docker",
			Binary:      "podman",
			BodyFunc: func(env *module.Env) string {
				body := `# Podman aliases
alias p='podman'
alias pps='podman ps'
alias ppsa='podman ps -a'
alias pi='podman images'
alias pex='podman exec -it'
alias plog='podman logs -f'`
				if env.Setting("Podman", "docker_alias", false) {
					body += "\n\n# Route docker invocations to podman\nalias docker='podman'"
				}
				return body
			},
		}),
	}
}

// enableOmzPlugin returns a follow-up stage that turns on an oh-my-zsh
// plugin behind its own consent question.
func enableOmzPlugin(moduleName, token string) module.ApplyFunc {
	return func(ctx context.Context, env *module.Env) error {
		ok, err := env.Ask.Confirm(fmt.Sprintf("Enable the oh-my-zsh %q plugin?", token), true)
		if err != nil {
			return fmt.Errorf("%s: %w", moduleName, err)
		}
		if !ok {
			env.Log.Skipf("%s: plugin %q declined", moduleName, token)
			return nil
		}
		changed, err := env.Shell.EnablePlugin(token)
		if err != nil {
			return fmt.Errorf("%s: %w", moduleName, err)
		}
		if changed {
			env.Log.Successf("%s: enabled plugin %q", moduleName, token)
		} else {
			env.Log.Skipf("%s: plugin %q already enabled", moduleName, token)
		}
		return nil
	}
}
