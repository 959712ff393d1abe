package wp

import (
	"fmt"
	"regexp"
	"strings"
	"text/template"
)

// WordPress slugs: lowercase, digits, underscore, hyphen. Post type keys
// are additionally capped at 20 characters by core.
var slugPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

func validateSlug(kind, slug string) error {
	if slug == "" {
		return fmt.Errorf("%s slug is required", kind)
	}
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("invalid %s slug %q: use lowercase letters, digits, _ or -", kind, slug)
	}
	return nil
}

// labelize turns a slug into a human label: "team_member" -> "Team Member".
func labelize(slug string) string {
	parts := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '_' || r == '-'
	})
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// funcName turns a slug into a PHP-safe identifier fragment.
func funcName(slug string) string {
	return strings.ReplaceAll(slug, "-", "_")
}

// phpStr escapes a value for a single-quoted PHP string literal.
func phpStr(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

var tmplFuncs = template.FuncMap{
	"php":   phpStr,
	"label": labelize,
	"fn":    funcName,
}

func mustTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(tmplFuncs).Parse(text))
}

func render(t *template.Template, data interface{}) (string, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return sb.String(), nil
}
