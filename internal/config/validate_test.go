package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microapp-routes/internal/diagnostic"
)

func codes(ds []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Code)
	}

	return out
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		errors   []string
		warnings []string
		infos    []string
	}{
		{
			name: "valid",
			yaml: `
qiankun:
  master:
    apps:
      - name: shop
        base: /shop
`,
		},
		{
			name:   "unknown host history",
			yaml:   "history: hsah\n",
			errors: []string{"invalid_history_type"},
		},
		{
			name:   "relative host base",
			yaml:   "base: portal\n",
			errors: []string{"invalid_base"},
		},
		{
			name: "app problems",
			yaml: `
qiankun:
  master:
    apps:
      - base: shop
      - name: dup
      - name: dup
        history: hashh
`,
			errors:   []string{"invalid_base", "duplicate_app_name", "invalid_history_type"},
			warnings: []string{"missing_app_name"},
		},
		{
			name:   "binding alias is a route field",
			yaml:   "qiankun:\n  master:\n    routeBindingAlias: component\n",
			errors: []string{"reserved_binding_alias"},
		},
		{
			name:   "binding alias settings",
			yaml:   "qiankun:\n  master:\n    routeBindingAlias: settings\n",
			errors: []string{"reserved_binding_alias"},
		},
		{
			name: "custom binding alias",
			yaml: "qiankun:\n  master:\n    routeBindingAlias: app\n",
		},
		{
			name: "history mismatch",
			yaml: `
qiankun:
  master:
    apps:
      - name: legacy
        base: /legacy
        history: hash
`,
			infos: []string{"history_mismatch"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			res := Validate(cfg)
			assert.ElementsMatch(t, tt.errors, codes(res.Errors))
			assert.ElementsMatch(t, tt.warnings, codes(res.Warnings))
			assert.ElementsMatch(t, tt.infos, codes(res.Infos))
		})
	}
}

func TestValidateSuggestsHistoryType(t *testing.T) {
	cfg, err := Parse([]byte("history: {type: hsah}\n"))
	require.NoError(t, err)

	res := Validate(cfg)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, []string{"hash"}, res.Errors[0].Suggestions)
}

func TestValidateNil(t *testing.T) {
	res := Validate(nil)
	assert.True(t, res.HasErrors())
}
