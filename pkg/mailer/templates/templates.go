package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmpl "html/template"
	"reflect"
	"strings"
	texttpl "text/template"
	"time"
)

//go:embed *.tmpl
var FS embed.FS

// Welcome is the base name of the welcome mail: welcome.{subject,text,html}.tmpl.
const Welcome = "welcome"

// Plain parts (subject, text) and the html part are parsed once into separate sets so
// that html/template escaping only applies to the html bodies.
var (
	plainSet = texttpl.Must(texttpl.New("plain").Funcs(texttpl.FuncMap(funcs())).ParseFS(FS, "*.subject.tmpl", "*.text.tmpl"))
	htmlSet  = htmpl.Must(htmpl.New("html").Funcs(htmpl.FuncMap(funcs())).ParseFS(FS, "*.html.tmpl"))
)

func funcs() map[string]any {
	return map[string]any{
		"now":     func() time.Time { return time.Now().UTC() },
		"year":    func() int { return time.Now().UTC().Year() },
		"upper":   strings.ToUpper,
		"default": fallback,
	}
}

// fallback backs the `default` func: {{ .Value | default "x" }}
func fallback(def, value any) any {
	if s, ok := value.(string); ok {
		if strings.TrimSpace(s) == "" {
			return def
		}
		return s
	}
	if rv := reflect.ValueOf(value); !rv.IsValid() || rv.IsZero() {
		return def
	}
	return value
}

func execPlain(name string, data any) (string, error) {
	if plainSet.Lookup(name) == nil {
		return "", fmt.Errorf("template %q not found", name)
	}
	var buf bytes.Buffer
	if err := plainSet.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("exec %q: %w", name, err)
	}
	return buf.String(), nil
}

func execHTML(name string, data any) (string, error) {
	if htmlSet.Lookup(name) == nil {
		return "", fmt.Errorf("template %q not found", name)
	}
	var buf bytes.Buffer
	if err := htmlSet.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("exec %q: %w", name, err)
	}
	return buf.String(), nil
}

// Render produces subject, text and html bodies for the template family name.
func Render(name string, data any) (subject, text, html string, err error) {
	if subject, err = execPlain(name+".subject.tmpl", data); err != nil {
		return "", "", "", err
	}
	if text, err = execPlain(name+".text.tmpl", data); err != nil {
		return "", "", "", err
	}
	if html, err = execHTML(name+".html.tmpl", data); err != nil {
		return "", "", "", err
	}
	return strings.TrimSpace(subject), text, html, nil
}
