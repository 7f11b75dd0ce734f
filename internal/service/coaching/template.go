package coaching

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

var placeholderRe = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Placeholder returns the {name} spelling of a template variable.
func Placeholder(name string) string {
	return "{" + name + "}"
}

// Fill substitutes every declared variable present in bundle into the
// template body. Declared variables missing from bundle stay as {name};
// bundle keys that are not declared are ignored.
func Fill(tpl domain.PromptTemplate, bundle Bundle) string {
	out := tpl.Content
	for _, name := range tpl.Variables {
		v, ok := bundle[name]
		if !ok {
			continue
		}
		out = strings.ReplaceAll(out, Placeholder(name), render(v))
	}
	return out
}

// Placeholders lists the distinct variable names referenced in content,
// in order of first appearance.
func Placeholders(content string) []string {
	var names []string
	for _, m := range placeholderRe.FindAllStringSubmatch(content, -1) {
		if !slices.Contains(names, m[1]) {
			names = append(names, m[1])
		}
	}
	return names
}

// MissingPlaceholders returns declared variables with no placeholder in
// the template body.
func MissingPlaceholders(tpl domain.PromptTemplate) []string {
	var missing []string
	for _, name := range tpl.Variables {
		if !strings.Contains(tpl.Content, Placeholder(name)) {
			missing = append(missing, name)
		}
	}
	return missing
}

func render(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
