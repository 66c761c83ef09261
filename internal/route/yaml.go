package route

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Attribute keys handled as Route fields.
const (
	keyPath      = "path"
	keyExact     = "exact"
	keyComponent = "component"
	keyRoutes    = "routes"
	keySettings  = "settings"
)

// IsReservedKey reports whether key is decoded into a Route field and so
// never shows up in Attrs.
func IsReservedKey(key string) bool {
	switch key {
	case keyPath, keyExact, keyComponent, keyRoutes, keySettings:
		return true
	default:
		return false
	}
}

// componentWire is the YAML shape of Delegation and Placeholder.
type componentWire struct {
	Kind     string         `yaml:"kind"`
	Name     string         `yaml:"name,omitempty"`
	Base     string         `yaml:"base,omitempty"`
	History  string         `yaml:"history,omitempty"`
	Path     string         `yaml:"path,omitempty"`
	Settings map[string]any `yaml:"settings,omitempty"`
}

// UnmarshalYAML decodes a route mapping. Keys other than the known route
// fields are kept in Attrs.
func (r *Route) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected route mapping, got %v", node.Line, node.Kind)
	}

	*r = Route{}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return fmt.Errorf("line %d: invalid route key: %w", keyNode.Line, err)
		}

		if err := r.decodeField(key, valNode); err != nil {
			return fmt.Errorf("line %d: route %s: %w", valNode.Line, key, err)
		}
	}

	return nil
}

func (r *Route) decodeField(key string, val *yaml.Node) error {
	switch key {
	case keyPath:
		return val.Decode(&r.Path)

	case keyExact:
		var exact bool
		if err := val.Decode(&exact); err != nil {
			return err
		}

		r.SetExact(exact)

		return nil

	case keyComponent:
		c, err := decodeComponent(val)
		if err != nil {
			return err
		}

		r.Component = c

		return nil

	case keyRoutes:
		routes, err := decodeRoutes(val)
		if err != nil {
			return err
		}

		r.Routes = routes

		return nil

	case keySettings:
		return val.Decode(&r.Settings)

	default:
		var v any
		if err := val.Decode(&v); err != nil {
			return err
		}

		r.SetAttr(key, v)

		return nil
	}
}

// decodeRoutes decodes a route sequence. Empty entries ("-" with no value)
// are rejected.
func decodeRoutes(node *yaml.Node) ([]*Route, error) {
	if node.Kind == yaml.SequenceNode {
		for _, item := range node.Content {
			target := item
			if target.Kind == yaml.AliasNode && target.Alias != nil {
				target = target.Alias
			}

			if target.Kind == yaml.ScalarNode && target.ShortTag() == "!!null" {
				return nil, fmt.Errorf("line %d: empty route entry", item.Line)
			}
		}
	}

	var routes []*Route
	if err := node.Decode(&routes); err != nil {
		return nil, err
	}

	return routes, nil
}

func decodeComponent(node *yaml.Node) (Component, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return nil, err
		}

		if s == "" {
			return nil, nil
		}

		return Ref(s), nil

	case yaml.MappingNode:
		var w componentWire
		if err := node.Decode(&w); err != nil {
			return nil, err
		}

		kind, ok := ParseComponentKind(w.Kind)
		if !ok || kind == KindRef {
			return nil, fmt.Errorf("unknown component kind %q", w.Kind)
		}

		if kind == KindPlaceholder {
			return &Placeholder{Path: w.Path}, nil
		}

		if w.Name == "" {
			return nil, errors.New("micro app component without name")
		}

		settings := w.Settings
		if settings == nil {
			settings = map[string]any{}
		}

		return &Delegation{AppName: w.Name, Base: w.Base, History: w.History, Settings: settings}, nil

	default:
		return nil, fmt.Errorf("expected component identifier or mapping, got %v", node.Kind)
	}
}

// MarshalYAML encodes the route with a stable key order:
// path, exact, component, settings, other attributes sorted by key, routes.
func (r Route) MarshalYAML() (any, error) {
	out := &yaml.Node{Kind: yaml.MappingNode}

	add := func(key string, v any) error {
		val := &yaml.Node{}
		if err := val.Encode(v); err != nil {
			return fmt.Errorf("encoding %s: %w", key, err)
		}

		out.Content = append(out.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, val)

		return nil
	}

	if r.Path != "" {
		if err := add(keyPath, r.Path); err != nil {
			return nil, err
		}
	}

	if r.Exact != nil {
		if err := add(keyExact, *r.Exact); err != nil {
			return nil, err
		}
	}

	if r.Component != nil {
		if err := add(keyComponent, encodeComponent(r.Component)); err != nil {
			return nil, err
		}
	}

	if r.Settings != nil {
		if err := add(keySettings, r.Settings); err != nil {
			return nil, err
		}
	}

	keys := make([]string, 0, len(r.Attrs))
	for k := range r.Attrs {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		if err := add(k, r.Attrs[k]); err != nil {
			return nil, err
		}
	}

	if r.HasChildren() {
		if err := add(keyRoutes, r.Routes); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func encodeComponent(c Component) any {
	switch v := c.(type) {
	case Ref:
		return string(v)
	case *Delegation:
		return componentWire{
			Kind:     KindDelegation.String(),
			Name:     v.AppName,
			Base:     v.Base,
			History:  v.History,
			Settings: v.Settings,
		}
	case *Placeholder:
		return componentWire{Kind: KindPlaceholder.String(), Path: v.Path}
	default:
		return fmt.Sprint(c)
	}
}
