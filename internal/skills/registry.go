// Package skills discovers convention documents ("skills"): markdown
// files with YAML frontmatter that the gate's categories point at.
package skills

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Skill is one loaded convention document.
type Skill struct {
	Name        string // from frontmatter, falling back to the file stem
	Description string // from frontmatter
	Path        string // source file, for doctor output
	Content     string // markdown body without frontmatter
}

// frontmatter is the YAML header between the leading "---" fences.
type frontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Registry holds the discovered skills, keyed by name.
type Registry struct {
	byName map[string]Skill
}

// Load discovers *.md skill documents directly under dir.
// A missing directory yields an empty registry, not an error: the gate
// works without local skill docs, it just cannot show them.
func Load(dir string) (*Registry, error) {
	reg := &Registry{byName: make(map[string]Skill)}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return reg, nil
		}
		return nil, fmt.Errorf("skills: read directory: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		s, err := parseFile(path)
		if err != nil {
			return nil, fmt.Errorf("skills: %s: %w", e.Name(), err)
		}
		reg.byName[s.Name] = s
	}

	return reg, nil
}

// Get returns the skill by name.
func (r *Registry) Get(name string) (Skill, bool) {
	s, ok := r.byName[name]
	return s, ok
}

// Names returns all skill names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of discovered skills.
func (r *Registry) Len() int {
	return len(r.byName)
}

// parseFile reads one skill document, splitting frontmatter from body.
func parseFile(path string) (Skill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Skill{}, err
	}

	stem := strings.TrimSuffix(filepath.Base(path), ".md")
	s := Skill{Name: stem, Path: path, Content: string(data)}

	header, body, ok := splitFrontmatter(string(data))
	if !ok {
		return s, nil
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return Skill{}, fmt.Errorf("parse frontmatter: %w", err)
	}

	if fm.Name != "" {
		s.Name = fm.Name
	}
	s.Description = fm.Description
	s.Content = body
	return s, nil
}

// splitFrontmatter separates a "---" fenced YAML header from the body.
func splitFrontmatter(doc string) (header, body string, ok bool) {
	const fence = "---"

	rest, found := strings.CutPrefix(doc, fence+"\n")
	if !found {
		return "", "", false
	}
	idx := strings.Index(rest, "\n"+fence)
	if idx < 0 {
		return "", "", false
	}
	header = rest[:idx]
	body = rest[idx+len("\n"+fence):]
	body = strings.TrimLeft(body, "\n")
	return header, body, true
}
