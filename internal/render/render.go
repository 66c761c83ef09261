package render

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"microapp-routes/internal/common"
	"microapp-routes/internal/config"
	"microapp-routes/internal/route"
)

// MountProps is what the mounting component receives.
type MountProps struct {
	Name     string         `json:"name"`
	Base     string         `json:"base"`
	History  string         `json:"history"`
	Settings map[string]any `json:"settings"`
}

// Mounter mounts a micro-app. It is implemented by the host runtime.
type Mounter interface {
	Mount(props MountProps) error
}

// MounterFunc adapts a function to Mounter.
type MounterFunc func(props MountProps) error

// Mount calls f(props).
func (f MounterFunc) Mount(props MountProps) error { return f(props) }

// LocalRenderer renders components owned by the host build.
type LocalRenderer interface {
	RenderLocal(ref route.Ref, url string) error
}

// ErrNoLocalRenderer is returned when a host component has to be rendered
// but the Renderer has no LocalRenderer.
var ErrNoLocalRenderer = errors.New("no renderer for host components")

// Props computes the mount props of a delegation for the matched URL.
// One trailing slash is stripped from url before the host base is prepended.
func Props(d *route.Delegation, url string) MountProps {
	return MountProps{
		Name:     d.AppName,
		Base:     d.Base + common.TrimTrailingSlash(url),
		History:  d.History,
		Settings: d.Settings,
	}
}

// Renderer dispatches route components.
type Renderer struct {
	mounter Mounter
	local   LocalRenderer
	env     config.Env
	logger  *zap.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLocalRenderer sets the renderer used for host components.
func WithLocalRenderer(local LocalRenderer) Option {
	return func(r *Renderer) { r.local = local }
}

// WithEnv sets the environment, which decides whether placeholders log.
func WithEnv(env config.Env) Option {
	return func(r *Renderer) { r.env = env }
}

// WithLogger sets the logger used for placeholder diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Renderer mounting micro-apps through m.
func New(m Mounter, opts ...Option) *Renderer {
	r := &Renderer{
		mounter: m,
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render renders c for the matched URL.
func (r *Renderer) Render(c route.Component, url string) error {
	switch v := c.(type) {
	case *route.Delegation:
		return r.Delegate(v, url)

	case *route.Placeholder:
		r.Placeholder(v)
		return nil

	case route.Ref:
		if r.local == nil {
			return fmt.Errorf("rendering %q: %w", string(v), ErrNoLocalRenderer)
		}

		return r.local.RenderLocal(v, url)

	case nil:
		return nil

	default:
		return fmt.Errorf("unsupported component kind %s", c.Kind())
	}
}

// Delegate mounts the micro-app of d under the matched URL.
func (r *Renderer) Delegate(d *route.Delegation, url string) error {
	props := Props(d, url)

	if err := r.mounter.Mount(props); err != nil {
		return fmt.Errorf("mounting micro app %s at %s: %w", props.Name, props.Base, err)
	}

	return nil
}

// Placeholder renders a placeholder. Outside production it logs the hit.
func (r *Renderer) Placeholder(p *route.Placeholder) {
	if r.env.IsProduction() {
		return
	}

	r.logger.Info(p.Path+" 404 mock rendered", zap.String("path", p.Path))
}
