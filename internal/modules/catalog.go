// Package modules holds the built-in module catalog. Each module is a
// static template gated by a capability probe; the interesting lifecycle
// logic lives in the module and shellcfg packages.
package modules

import "github.com/shellforge-dev/shellforge/internal/module"

// BuiltIn returns the full built-in catalog, ready for registration.
func BuiltIn() []module.Module {
	var all []module.Module
	all = append(all, cloudModules()...)
	all = append(all, containerModules()...)
	all = append(all, kubernetesModules()...)
	all = append(all, vcsModules()...)
	all = append(all, toolModules()...)
	all = append(all, pluginModules()...)
	all = append(all, themeModules()...)
	return all
}
