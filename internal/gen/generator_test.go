package gen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microapp-routes/internal/route"
)

func TestSerializeSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]any
		expected string
	}{
		{name: "nil", settings: nil, expected: "{}"},
		{name: "empty", settings: map[string]any{}, expected: "{}"},
		{
			name:     "flat",
			settings: map[string]any{"sandbox": true, "singular": false},
			expected: "{'sandbox':true,'singular':false}",
		},
		{
			name:     "nested with string values",
			settings: map[string]any{"sandbox": map[string]any{"strictStyleIsolation": true}, "mode": "x"},
			expected: `{'mode':"x",'sandbox':{'strictStyleIsolation':true}}`,
		},
		{
			name:     "non identifier key keeps double quotes",
			settings: map[string]any{"data-id": 1},
			expected: `{"data-id":1}`,
		},
		{
			name:     "list",
			settings: map[string]any{"excludeAssetFilter": []any{"a", "b"}},
			expected: `{'excludeAssetFilter':["a","b"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SerializeSettings(tt.settings)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSerializeSettingsError(t *testing.T) {
	_, err := SerializeSettings(map[string]any{"fn": func() {}})
	require.Error(t, err)
}

func testRoutes() []*route.Route {
	shop := &route.Route{
		Path:      "/shop",
		Component: &route.Delegation{AppName: "shop", Base: "/portal", History: "browser", Settings: map[string]any{"sandbox": true}},
		Settings:  map[string]any{"sandbox": true},
		Attrs:     map[string]any{"microApp": "shop"},
	}
	shop.SetExact(false)

	legacy := &route.Route{Path: "/legacy", Component: &route.Placeholder{Path: "/legacy"}}
	legacy.SetExact(false)

	return []*route.Route{
		{
			Path:      "/",
			Component: route.Ref("@/layouts/index"),
			Routes:    []*route.Route{legacy, shop, {Path: "/home", Component: route.Ref("@/pages/home")}},
		},
	}
}

func TestGenerate(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())

	files, err := g.Generate(testRoutes())
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "routes.js", files[0].Filename)

	src := string(files[0].Content)

	expected := []string{
		"// Code generated by microapp-routes. DO NOT EDIT.",
		`import { MicroApp } from "@@/plugin-qiankun/MicroApp";`,
		"export const routes = [",
		`path: "/",`,
		`component: "@/layouts/index",`,
		// Placeholder
		`console.log("/legacy 404 mock rendered");`,
		"if (process.env.NODE_ENV !== 'production') {",
		"return React.createElement('div');",
		// Delegation
		`const hostBase = "/portal";`,
		"const runtimeMatchedBase = hostBase + (url.endsWith('/') ? url.substr(0, url.length - 1) : url);",
		`name: "shop",`,
		`history: "browser",`,
		"settings: {'sandbox':true},",
		`"microApp": "shop",`,
		"exact: false,",
	}

	for _, want := range expected {
		assert.Contains(t, src, want)
	}

	// Placeholder comes before the delegation and both before /home.
	assert.Less(t, strings.Index(src, "/legacy 404"), strings.Index(src, `name: "shop"`))
	assert.Less(t, strings.Index(src, `name: "shop"`), strings.Index(src, `"@/pages/home"`))
}

func TestGenerateWithoutComments(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.GenerateComments = false
	cfg.Filename = "micro.js"

	files, err := NewGenerator(cfg).Generate(nil)
	require.NoError(t, err)
	assert.Equal(t, "micro.js", files[0].Filename)

	src := string(files[0].Content)
	assert.NotContains(t, src, "DO NOT EDIT")
	assert.Contains(t, src, "export const routes = [];")
}

func TestGenerateRejectsUnencodableSettings(t *testing.T) {
	routes := []*route.Route{{Path: "/a", Settings: map[string]any{"ch": make(chan int)}}}

	_, err := NewGenerator(DefaultGeneratorConfig()).Generate(routes)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "route /a settings")
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	target := filepath.Join(dir, "routes.js")

	files := []GeneratedFile{{Filename: "routes.js", Content: []byte("export const routes = [];\n")}}
	written, err := WriteFiles(files, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{target}, written)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "export const routes = [];\n", string(data))

	// Same content: nothing is rewritten.
	written, err = WriteFiles(files, dir)
	require.NoError(t, err)
	assert.Empty(t, written)

	files[0].Content = []byte("export const routes = [{ path: '/' }];\n")
	written, err = WriteFiles(files, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{target}, written)

	data, err = os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, string(files[0].Content), string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temporary files left behind")
	assert.Equal(t, "routes.js", entries[0].Name())
}
