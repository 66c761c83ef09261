package rewrite

import (
	"testing"

	"github.com/stretchr/testify/require"

	"microapp-routes/internal/config"
	"microapp-routes/internal/route"
)

func exact(v bool) *bool { return &v }

// mustParse parses a YAML route tree.
func mustParse(t *testing.T, yaml string) []*route.Route {
	t.Helper()

	routes, err := route.Parse([]byte(yaml))
	require.NoError(t, err)

	return routes
}

// mustOptions parses a YAML config and resolves its options.
func mustOptions(t *testing.T, yaml string) config.Options {
	t.Helper()

	cfg, err := config.Parse([]byte(yaml))
	require.NoError(t, err)

	return cfg.Options()
}

func paths(routes []*route.Route) []string {
	out := make([]string, len(routes))
	for i, r := range routes {
		out[i] = r.Path
	}

	return out
}
