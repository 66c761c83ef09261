package gen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"text/template"

	"microapp-routes/internal/route"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Filename is the name of the generated route module.
	Filename string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// MicroAppImport is the module exporting the MicroApp mounting component.
	MicroAppImport string
	// GenerateComments enables the generated-code header.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Filename:         "routes.js",
		OutputDir:        "./generated",
		MicroAppImport:   "@@/plugin-qiankun/MicroApp",
		GenerateComments: true,
	}
}

// Generator renders route trees as JavaScript modules.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "routes.js").
	Filename string
	// Content is the generated source.
	Content []byte
}

// Generate renders routes into the route module.
func (g *Generator) Generate(routes []*route.Route) ([]GeneratedFile, error) {
	var body strings.Builder

	if err := g.writeRoutes(&body, routes, ""); err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	err := moduleTemplate.Execute(&buf, moduleData{
		GenerateComments: g.config.GenerateComments,
		MicroAppImport:   g.config.MicroAppImport,
		Routes:           body.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return []GeneratedFile{{Filename: g.config.Filename, Content: buf.Bytes()}}, nil
}

func (g *Generator) writeRoutes(w *strings.Builder, routes []*route.Route, indent string) error {
	if len(routes) == 0 {
		w.WriteString("[]")
		return nil
	}

	inner := indent + "  "

	w.WriteString("[\n")

	for _, r := range routes {
		w.WriteString(inner)

		if err := g.writeRoute(w, r, inner); err != nil {
			return err
		}

		w.WriteString(",\n")
	}

	w.WriteString(indent + "]")

	return nil
}

func (g *Generator) writeRoute(w *strings.Builder, r *route.Route, indent string) error {
	inner := indent + "  "

	field := func(name, value string) {
		fmt.Fprintf(w, "%s%s: %s,\n", inner, name, value)
	}

	w.WriteString("{\n")

	if r.Path != "" {
		field("path", quote(r.Path))
	}

	if r.Exact != nil {
		field("exact", fmt.Sprint(*r.Exact))
	}

	if r.Component != nil {
		src, err := componentSource(r.Component)
		if err != nil {
			return fmt.Errorf("route %s: %w", r.Path, err)
		}

		field("component", indentLines(src, inner))
	}

	if r.Settings != nil {
		s, err := SerializeSettings(r.Settings)
		if err != nil {
			return fmt.Errorf("route %s settings: %w", r.Path, err)
		}

		field("settings", s)
	}

	keys := make([]string, 0, len(r.Attrs))
	for k := range r.Attrs {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		v, err := serializeValue(r.Attrs[k])
		if err != nil {
			return fmt.Errorf("route %s attribute %s: %w", r.Path, k, err)
		}

		field(quote(k), v)
	}

	if r.HasChildren() {
		var children strings.Builder
		if err := g.writeRoutes(&children, r.Routes, inner); err != nil {
			return err
		}

		field("routes", children.String())
	}

	w.WriteString(indent + "}")

	return nil
}

// componentSource renders the source of a route component.
func componentSource(c route.Component) (string, error) {
	switch v := c.(type) {
	case route.Ref:
		return quote(string(v)), nil

	case *route.Delegation:
		settings, err := SerializeSettings(v.Settings)
		if err != nil {
			return "", err
		}

		return execute(delegationTemplate, delegationData{
			AppName:  v.AppName,
			Base:     v.Base,
			History:  v.History,
			Settings: settings,
		})

	case *route.Placeholder:
		return execute(placeholderTemplate, placeholderData{Message: v.Path + " 404 mock rendered"})

	default:
		return "", fmt.Errorf("unsupported component kind %s", c.Kind())
	}
}

func execute(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing %s template: %w", t.Name(), err)
	}

	return buf.String(), nil
}

// quotedKey matches a JSON object key made of word characters.
var quotedKey = regexp.MustCompile(`"(\w+)":`)

// SerializeSettings encodes settings as a JavaScript object literal. Nil
// settings encode as an empty object.
func SerializeSettings(settings map[string]any) (string, error) {
	if settings == nil {
		settings = map[string]any{}
	}

	return serializeValue(settings)
}

// serializeValue encodes v as JSON and rewrites double-quoted identifier
// keys to single quotes.
func serializeValue(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding value: %w", err)
	}

	return quotedKey.ReplaceAllString(string(b), "'$1':"), nil
}

// indentLines prefixes every line but the first with indent.
func indentLines(s, indent string) string {
	return strings.ReplaceAll(s, "\n", "\n"+indent)
}
