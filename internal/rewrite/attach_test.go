package rewrite

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microapp-routes/internal/route"
)

func TestAttach_BindsLeafRoute(t *testing.T) {
	routes := mustParse(t, `
- path: /
  routes:
    - path: /a
      microApp: foo
`)

	got, err := Modify(routes, mustOptions(t, `{}`))
	require.NoError(t, err)

	child := got[0].Routes[0]
	require.NotNil(t, child.Exact)
	assert.False(t, *child.Exact)
	assert.Equal(t, &route.Delegation{
		AppName:  "foo",
		Base:     "",
		History:  "browser",
		Settings: map[string]any{},
	}, child.Component)

	// The unbound parent is left alone.
	assert.Nil(t, got[0].Component)
	assert.Nil(t, got[0].Exact)
}

func TestAttach_CapturesHostSettings(t *testing.T) {
	routes := mustParse(t, `
- path: /
  routes:
    - path: /shop
      app: shop
      exact: true
      component: "@/pages/shop"
      settings:
        sandbox: {strictStyleIsolation: true}
        singular: false
`)

	opts := mustOptions(t, `
base: /portal
history: hash
qiankun:
  master:
    routeBindingAlias: app
`)

	got, err := Modify(routes, opts)
	require.NoError(t, err)

	shop := got[0].Routes[0]
	assert.False(t, shop.IsExact())

	want := &route.Delegation{
		AppName: "shop",
		Base:    "/portal",
		History: "hash",
		Settings: map[string]any{
			"sandbox":  map[string]any{"strictStyleIsolation": true},
			"singular": false,
		},
	}
	if diff := cmp.Diff(want, shop.Component); diff != "" {
		t.Errorf("delegation mismatch (-want +got):\n%s", diff)
	}

	// The binding attribute is read, not consumed.
	app, ok := shop.Binding("app")
	assert.True(t, ok)
	assert.Equal(t, "shop", app)
}

func TestAttach_WidensEveryBoundRoute(t *testing.T) {
	routes := []*route.Route{
		{Path: "/", Routes: []*route.Route{
			{Path: "/a", Exact: exact(true), Attrs: map[string]any{"microApp": "a"}},
			{Path: "/b", Exact: exact(false), Attrs: map[string]any{"microApp": "b"}},
			{Path: "/c", Attrs: map[string]any{"microApp": "c"}},
			{Path: "/nested", Routes: []*route.Route{
				{Path: "/nested/d", Exact: exact(true), Attrs: map[string]any{"microApp": "d"}},
			}},
		}},
		{Path: "/top", Exact: exact(true), Attrs: map[string]any{"microApp": "top"}},
	}

	got, err := Modify(routes, mustOptions(t, `{}`))
	require.NoError(t, err)

	var bound []string

	err = route.Walk(got, func(r *route.Route, _ []*route.Route) error {
		if app, ok := r.Binding("microApp"); ok {
			bound = append(bound, app)

			require.NotNil(t, r.Exact, app)
			assert.False(t, *r.Exact, app)
			assert.Equal(t, route.KindDelegation, r.Component.Kind(), app)
		}

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "top"}, bound)
}

func TestAttach_RejectsBoundRouteWithChildren(t *testing.T) {
	tests := []struct {
		name     string
		children []*route.Route
	}{
		{name: "one child", children: []*route.Route{{Path: "/a/x"}}},
		{name: "pathless child", children: []*route.Route{{Component: route.Ref("X")}}},
		{name: "many children", children: []*route.Route{{Path: "/a/x"}, {Path: "/a/y"}, {Path: "/a/z"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			routes := []*route.Route{
				{Path: "/", Routes: []*route.Route{
					{Path: "/a", Attrs: map[string]any{"microApp": "a"}, Routes: tt.children},
				}},
			}

			got, err := Modify(routes, mustOptions(t, `{}`))
			require.Error(t, err)
			assert.Nil(t, got)

			var sv *StructuralViolationError
			require.True(t, errors.As(err, &sv))
			assert.Equal(t, "a", sv.AppName)
			assert.Equal(t, "/a", sv.Path)
			assert.Equal(t, len(tt.children), sv.Children)
			assert.Contains(t, err.Error(), "You can not attach micro app")
		})
	}
}

func TestAttach_StopsAtFirstViolation(t *testing.T) {
	routes := mustParse(t, `
- path: /
  routes:
    - path: /ok
      microApp: ok
    - path: /bad
      microApp: bad
      routes:
        - path: /bad/x
    - path: /later
      microApp: later
`)

	_, err := Modify(routes, mustOptions(t, `{}`))

	var sv *StructuralViolationError
	require.ErrorAs(t, err, &sv)
	assert.Equal(t, "bad", sv.AppName)

	// Routes after the violation were not visited.
	assert.Nil(t, routes[0].Routes[2].Component)
}

func TestAttach_EmptyChildrenAreAllowed(t *testing.T) {
	routes := []*route.Route{
		{Path: "/a", Attrs: map[string]any{"microApp": "a"}, Routes: []*route.Route{}},
	}

	got, err := Modify(routes, mustOptions(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, route.KindDelegation, got[0].Component.Kind())
}

func TestAttach_FalsyBindingIsIgnored(t *testing.T) {
	routes := []*route.Route{
		{Path: "/a", Exact: exact(true), Attrs: map[string]any{"microApp": ""}, Routes: []*route.Route{{Path: "/a/b"}}},
		{Path: "/c", Exact: exact(true), Attrs: map[string]any{"microApp": false}},
	}

	got, err := Modify(routes, mustOptions(t, `{}`))
	require.NoError(t, err)
	assert.True(t, got[0].IsExact())
	assert.True(t, got[1].IsExact())
	assert.Nil(t, got[1].Component)
}

func TestAttach_RewriteIsRepeatable(t *testing.T) {
	routes := mustParse(t, `
- path: /
  component: Layout
  routes:
    - path: /a
      exact: true
      microApp: foo
      settings: {sandbox: true}
    - path: /b
      component: B
`)
	opts := mustOptions(t, `base: /app`)

	first, err := Modify(routes, opts)
	require.NoError(t, err)

	snapshot := route.CloneAll(first)

	second, err := Modify(first, opts)
	require.NoError(t, err)

	if diff := cmp.Diff(snapshot, second); diff != "" {
		t.Errorf("second rewrite differs (-first +second):\n%s", diff)
	}
}

func TestAttach_SettingsAreCopied(t *testing.T) {
	settings := map[string]any{"sandbox": true}
	routes := []*route.Route{{Path: "/a", Settings: settings, Attrs: map[string]any{"microApp": "a"}}}

	got, err := Modify(routes, mustOptions(t, `{}`))
	require.NoError(t, err)

	settings["sandbox"] = false

	assert.Equal(t, true, got[0].Component.(*route.Delegation).Settings["sandbox"])
}
