package detect

import (
	"context"
	"sort"

	"github.com/shirou/gopsutil/v4/host"
)

// Category groups known tools for doctor output.
type Category string

const (
	CategoryShell      Category = "shell"
	CategoryContainer  Category = "container"
	CategoryKubernetes Category = "kubernetes"
	CategoryCloud      Category = "cloud"
	CategoryVCS        Category = "vcs"
	CategoryTools      Category = "tools"
	CategoryLanguage   Category = "language"
)

// Tool describes one binary the doctor command knows how to inspect.
type Tool struct {
	Name        string
	Command     string
	Category    Category
	VersionArgs []string
}

// ToolStatus is the probe result for one known tool.
type ToolStatus struct {
	Tool
	Installed bool
	Path      string
	Version   string
}

// KnownTools lists the binaries the doctor command scans for.
var KnownTools = []Tool{
	{Name: "zsh", Command: "zsh", Category: CategoryShell, VersionArgs: []string{"--version"}},
	{Name: "docker", Command: "docker", Category: CategoryContainer, VersionArgs: []string{"--version"}},
	{Name: "podman", Command: "podman", Category: CategoryContainer, VersionArgs: []string{"--version"}},
	{Name: "kubectl", Command: "kubectl", Category: CategoryKubernetes, VersionArgs: []string{"version", "--client"}},
	{Name: "helm", Command: "helm", Category: CategoryKubernetes, VersionArgs: []string{"version", "--short"}},
	{Name: "minikube", Command: "minikube", Category: CategoryKubernetes, VersionArgs: []string{"version", "--short"}},
	{Name: "k9s", Command: "k9s", Category: CategoryKubernetes, VersionArgs: []string{"version", "--short"}},
	{Name: "eksctl", Command: "eksctl", Category: CategoryKubernetes, VersionArgs: []string{"version"}},
	{Name: "aws", Command: "aws", Category: CategoryCloud, VersionArgs: []string{"--version"}},
	{Name: "gcloud", Command: "gcloud", Category: CategoryCloud, VersionArgs: []string{"--version"}},
	{Name: "az", Command: "az", Category: CategoryCloud, VersionArgs: []string{"--version"}},
	{Name: "terraform", Command: "terraform", Category: CategoryCloud, VersionArgs: []string{"--version"}},
	{Name: "tofu", Command: "tofu", Category: CategoryCloud, VersionArgs: []string{"--version"}},
	{Name: "git", Command: "git", Category: CategoryVCS, VersionArgs: []string{"--version"}},
	{Name: "gh", Command: "gh", Category: CategoryVCS, VersionArgs: []string{"--version"}},
	{Name: "glab", Command: "glab", Category: CategoryVCS, VersionArgs: []string{"--version"}},
	{Name: "curl", Command: "curl", Category: CategoryTools, VersionArgs: []string{"--version"}},
	{Name: "fzf", Command: "fzf", Category: CategoryTools, VersionArgs: []string{"--version"}},
	{Name: "bat", Command: "bat", Category: CategoryTools, VersionArgs: []string{"--version"}},
	{Name: "eza", Command: "eza", Category: CategoryTools, VersionArgs: []string{"--version"}},
	{Name: "rg", Command: "rg", Category: CategoryTools, VersionArgs: []string{"--version"}},
	{Name: "go", Command: "go", Category: CategoryLanguage, VersionArgs: []string{"version"}},
	{Name: "node", Command: "node", Category: CategoryLanguage, VersionArgs: []string{"--version"}},
	{Name: "python3", Command: "python3", Category: CategoryLanguage, VersionArgs: []string{"--version"}},
}

// ScanTools probes every known tool and returns statuses sorted by name.
func (d *Detector) ScanTools(ctx context.Context) []ToolStatus {
	out := make([]ToolStatus, 0, len(KnownTools))
	for _, t := range KnownTools {
		st := ToolStatus{Tool: t}
		if p, ok := d.BinaryPath(t.Command); ok {
			st.Installed = true
			st.Path = p
			st.Version = d.Version(ctx, t.Command, t.VersionArgs...)
		}
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// HostInfo describes the machine doctor is running on.
type HostInfo struct {
	OS       string
	Platform string
	Version  string
	Arch     string
	Hostname string
}

// Host returns OS and platform details for doctor output.
func Host(ctx context.Context) (HostInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return HostInfo{}, err
	}
	return HostInfo{
		OS:       info.OS,
		Platform: info.Platform,
		Version:  info.PlatformVersion,
		Arch:     info.KernelArch,
		Hostname: info.Hostname,
	}, nil
}
