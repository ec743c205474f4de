package transform

import (
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"

	"github.com/bianoble/page-generator/internal/config"
)

// TemplateTransform substitutes "$Name" template variables into HTML.
type TemplateTransform struct{}

// Apply replaces every occurrence of each variable name with its value.
// Variables are applied in order, so an earlier replacement can affect a
// later one. Names that do not occur in the content are returned as missing.
func (t *TemplateTransform) Apply(content string, vars []config.Variable) (string, []string) {
	var missing []string
	for _, v := range vars {
		if !strings.Contains(content, v.Name) {
			missing = append(missing, v.Name)
			continue
		}
		content = strings.ReplaceAll(content, v.Name, v.Value)
	}
	return content, missing
}

// MergeVars overlays overrides onto base. Overridden variables keep their
// position; new ones are appended in the order given.
func MergeVars(base, overrides []config.Variable) []config.Variable {
	merged := make([]config.Variable, len(base), len(base)+len(overrides))
	copy(merged, base)

	index := make(map[string]int, len(merged))
	for i, v := range merged {
		index[v.Name] = i
	}
	for _, v := range overrides {
		if i, ok := index[v.Name]; ok {
			merged[i].Value = v.Value
			continue
		}
		index[v.Name] = len(merged)
		merged = append(merged, v)
	}
	return merged
}

// ParseVar parses a "$Name=value" assignment. The "$" is added when omitted.
func ParseVar(s string) (config.Variable, error) {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" || name == config.VariablePrefix {
		return config.Variable{}, fmt.Errorf("invalid variable %q — expected '$Name=value'", s)
	}
	if !strings.HasPrefix(name, config.VariablePrefix) {
		name = config.VariablePrefix + name
	}
	return config.Variable{Name: name, Value: value}, nil
}

// ParseVars parses a list of "$Name=value" assignments in order.
func ParseVars(assignments []string) ([]config.Variable, error) {
	vars := make([]config.Variable, 0, len(assignments))
	for _, s := range assignments {
		v, err := ParseVar(s)
		if err != nil {
			return nil, err
		}
		vars = append(vars, v)
	}
	return vars, nil
}

// ToMarkdown renders Confluence storage HTML as Markdown.
func ToMarkdown(html string) (string, error) {
	conv := md.NewConverter("", true, nil)
	out, err := conv.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting html to markdown: %w", err)
	}
	return out, nil
}
