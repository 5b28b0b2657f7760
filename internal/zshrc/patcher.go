// Package zshrc patches the user's interactive-shell startup file.
//
// This is deliberately a narrow, anchor-based line patcher, not a zsh
// parser: the two directives it manages (the oh-my-zsh plugin list and
// the theme assignment) follow a stable one-directive-per-line
// convention. Each patched directive is preceded by a marker comment; the
// original user line is kept, commented out, directly above the marker.
// The active line always immediately follows the marker, which prevents
// duplicate markers on repeated runs.
package zshrc

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/shellforge-dev/shellforge/internal/backup"
)

// Marker precedes every line this patcher owns.
const Marker = "# managed by shellforge"

var (
	pluginLineRe = regexp.MustCompile(`^\s*plugins=\((.*)\)\s*$`)
	themeLineRe  = regexp.MustCompile(`^\s*ZSH_THEME="([^"]*)"\s*$`)
)

// Patcher mutates one startup file, backing it up before each rewrite.
type Patcher struct {
	path    string
	backups *backup.Store
}

// New returns a Patcher for the startup file at path.
func New(path string, backups *backup.Store) *Patcher {
	return &Patcher{path: path, backups: backups}
}

// Path returns the startup file location.
func (p *Patcher) Path() string { return p.path }

// Plugins returns the tokens of the active plugin-list line.
func (p *Patcher) Plugins() ([]string, error) {
	lines, err := p.readLines()
	if err != nil {
		return nil, err
	}
	if i := findActive(lines, pluginLineRe); i >= 0 {
		return splitTokens(pluginLineRe.FindStringSubmatch(lines[i])[1]), nil
	}
	return nil, nil
}

// EnablePlugin ensures token appears in the active plugin-list line and
// reports whether the file changed. Absent line: a managed one is
// appended. Present without token: the line is rewritten under the
// marker, the original commented out. Present with token: no-op.
func (p *Patcher) EnablePlugin(token string) (bool, error) {
	if token == "" {
		return false, fmt.Errorf("plugin token must not be empty")
	}
	lines, err := p.readLines()
	if err != nil {
		return false, err
	}

	i := findActive(lines, pluginLineRe)
	if i < 0 {
		appended := append(lines, Marker, "plugins=("+token+")")
		return true, p.writeLines(appended)
	}

	tokens := splitTokens(pluginLineRe.FindStringSubmatch(lines[i])[1])
	for _, t := range tokens {
		if t == token {
			return false, nil
		}
	}

	active := "plugins=(" + strings.Join(append(tokens, token), " ") + ")"
	return true, p.writeLines(p.replaceManaged(lines, i, active))
}

// SetTheme points the active theme assignment at theme and reports
// whether the file changed. It must not re-fire once the target value is
// already active.
func (p *Patcher) SetTheme(theme string) (bool, error) {
	if theme == "" {
		return false, fmt.Errorf("theme must not be empty")
	}
	lines, err := p.readLines()
	if err != nil {
		return false, err
	}

	active := `ZSH_THEME="` + theme + `"`

	i := findActive(lines, themeLineRe)
	if i < 0 {
		appended := append(lines, Marker, active)
		return true, p.writeLines(appended)
	}
	if themeLineRe.FindStringSubmatch(lines[i])[1] == theme {
		return false, nil
	}
	return true, p.writeLines(p.replaceManaged(lines, i, active))
}

// EnsureSourceLine makes the startup file source the generated
// configuration artifact, appending a guarded source line once.
func (p *Patcher) EnsureSourceLine(configPath string) (bool, error) {
	lines, err := p.readLines()
	if err != nil {
		return false, err
	}
	for _, line := range lines {
		if strings.Contains(line, configPath) {
			return false, nil
		}
	}

	source := fmt.Sprintf(`[[ -f %q ]] && source %q`, configPath, configPath)
	appended := append(lines, "", Marker, source)
	return true, p.writeLines(appended)
}

// SourcesFile reports whether the startup file already references the
// given path.
func (p *Patcher) SourcesFile(path string) (bool, error) {
	lines, err := p.readLines()
	if err != nil {
		return false, err
	}
	for _, line := range lines {
		if strings.Contains(line, path) {
			return true, nil
		}
	}
	return false, nil
}

// replaceManaged swaps the active directive at index i for the given
// line. If the directive is already ours (marker directly above), the
// line is rewritten in place; otherwise the original is commented out and
// marker plus active line are inserted right after it.
func (p *Patcher) replaceManaged(lines []string, i int, active string) []string {
	if i > 0 && strings.TrimSpace(lines[i-1]) == Marker {
		out := make([]string, len(lines))
		copy(out, lines)
		out[i] = active
		return out
	}

	out := make([]string, 0, len(lines)+2)
	out = append(out, lines[:i]...)
	out = append(out, "#"+lines[i], Marker, active)
	out = append(out, lines[i+1:]...)
	return out
}

// findActive returns the index of the first non-commented line matching
// re, or -1.
func findActive(lines []string, re *regexp.Regexp) int {
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		if re.MatchString(line) {
			return i
		}
	}
	return -1
}

func splitTokens(s string) []string {
	return strings.Fields(s)
}

func (p *Patcher) readLines() ([]string, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", p.path, err)
	}
	content := strings.TrimRight(string(data), "\n")
	if content == "" {
		return nil, nil
	}
	return strings.Split(content, "\n"), nil
}

// writeLines backs up the file and rewrites it from the given lines.
func (p *Patcher) writeLines(lines []string) error {
	if _, err := p.backups.Backup(p.path); err != nil {
		return err
	}
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(p.path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", p.path, err)
	}
	return nil
}
