package modules

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shellforge-dev/shellforge/internal/module"
)

func kubernetesModules() []module.Module {
	return []module.Module{
		module.Config(module.ConfigSpec{
			Name:        "Kubectl",
			Description: "kubectl completion, aliases and krew path",
			Binary:      "kubectl",
			Body: `# kubectl completion
source <(kubectl completion zsh)

# kubectl aliases
alias k='kubectl'
alias kgp='kubectl get pods'
alias kgs='kubectl get svc'
alias kgd='kubectl get deployments'
alias kga='kubectl get all'
alias kd='kubectl describe'
alias kl='kubectl logs -f'
alias kx='kubectl exec -it'
alias kaf='kubectl apply -f'
alias kdf='kubectl delete -f'
alias kctx='kubectl config use-context'
alias kns='kubectl config set-context --current --namespace'
compdef k=kubectl`,
			Then: krewPath,
		}),
		module.Config(module.ConfigSpec{
			Name:        "Helm",
			Description: "Helm completion and aliases",
			Binary:      "helm",
			Body: `# Helm completion
source <(helm completion zsh)

# Helm aliases
alias h='helm'
alias hls='helm list'
alias hin='helm install'
alias hup='helm upgrade'
alias hun='helm uninstall'`,
		}),
		module.Config(module.ConfigSpec{
			Name:        "Minikube",
			Description: "Minikube completion and aliases",
			Binary:      "minikube",
			Body: `# Minikube completion
source <(minikube completion zsh)

# Minikube aliases
alias mk='minikube'
alias mks='minikube start'
alias mkst='minikube stop'
alias mkd='minikube dashboard'`,
		}),
		module.Config(module.ConfigSpec{
			Name:        "K9s",
			Description: "k9s terminal UI alias",
			Binary:      "k9s",
			Body: `# k9s
alias kk='k9s'`,
		}),
		module.Config(module.ConfigSpec{
			Name:        "Eksctl",
			Description: "eksctl completion",
			Binary:      "eksctl",
			Body: `# eksctl completion
source <(eksctl completion zsh)`,
		}),
	}
}

// krewPath adds the krew bin directory to PATH behind its own consent
// question. It only fires when the krew root exists.
func krewPath(ctx context.Context, env *module.Env) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	if !env.Probe.Binary("kubectl-krew") && !env.Probe.Dir(filepath.Join(home, ".krew")) {
		return nil
	}
	ok, err := env.Ask.Confirm("Add the kubectl krew plugin directory to PATH?", true)
	if err != nil {
		return fmt.Errorf("Kubectl: %w", err)
	}
	if !ok {
		env.Log.Skipf("Kubectl: krew path declined")
		return nil
	}
	added, err := env.Doc.AddSection("Krew", `# kubectl krew plugin manager
export PATH="${KREW_ROOT:-$HOME/.krew}/bin:$PATH"`)
	if err != nil {
		return fmt.Errorf("Kubectl: %w", err)
	}
	if added {
		env.Log.Successf("Kubectl: krew path configured")
	}
	return nil
}
