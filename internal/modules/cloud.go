package modules

import "github.com/shellforge-dev/shellforge/internal/module"

func cloudModules() []module.Module {
	return []module.Module{
		module.Config(module.ConfigSpec{
			Name:        "AWS",
			Description: "AWS CLI autocompletion",
			Binary:      "aws",
			Body: `# AWS CLI completion
autoload -Uz bashcompinit && bashcompinit
complete -C '/usr/local/bin/aws_completer' aws`,
		}),
		module.Config(module.ConfigSpec{
			Name:        "Azure",
			Description: "Azure CLI autocompletion",
			Binary:      "az",
			Body: `# Azure CLI completion
autoload -Uz bashcompinit && bashcompinit
source /etc/bash_completion.d/azure-cli 2>/dev/null`,
		}),
		module.Config(module.ConfigSpec{
			Name:        "GCloud",
			Description: "Google Cloud SDK completion",
			Binary:      "gcloud",
			Body: `# Google Cloud SDK completion
if [[ -f "$HOME/google-cloud-sdk/completion.zsh.inc" ]]; then
    source "$HOME/google-cloud-sdk/completion.zsh.inc"
fi`,
		}),
		module.Config(module.ConfigSpec{
			Name:        "Terraform",
			Description: "Terraform IaC completion and aliases",
			Binary:      "terraform",
			Body: `# Terraform completion
autoload -Uz bashcompinit && bashcompinit
complete -o nospace -C /usr/local/bin/terraform terraform

# Terraform aliases
alias tf='terraform'
alias tfi='terraform init'
alias tfp='terraform plan'
alias tfa='terraform apply'
alias tfd='terraform destroy'
alias tfo='terraform output'
alias tfs='terraform state'
alias tfv='terraform validate'
alias tff='terraform fmt'`,
		}),
		module.Config(module.ConfigSpec{
			Name:        "OpenTofu",
			Description: "OpenTofu IaC completion and aliases",
			Binary:      "tofu",
			Body: `# OpenTofu completion
autoload -Uz bashcompinit && bashcompinit
complete -o nospace -C /usr/local/bin/tofu tofu

# OpenTofu aliases
alias tfi='tofu init'
alias tfp='tofu plan'
alias tfa='tofu apply'
alias tfd='tofu destroy'
alias tfo='tofu output'
alias tfs='tofu state'
alias tfv='tofu validate'
alias tff='tofu fmt'`,
		}),
	}
}
