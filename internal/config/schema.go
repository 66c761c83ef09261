package config

import (
	"slices"

	"microapp-routes/internal/common"
)

// Defaults applied to optional configuration values.
const (
	DefaultBase              = "/"
	DefaultRouteBindingAlias = "microApp"
	DefaultHistoryType       = HistoryBrowser
)

// HistoryType is the navigation mode used by client-side routing.
type HistoryType string

const (
	HistoryBrowser HistoryType = "browser"
	HistoryHash    HistoryType = "hash"
	HistoryMemory  HistoryType = "memory"
)

// HistoryTypes lists the recognized navigation modes.
var HistoryTypes = []HistoryType{HistoryBrowser, HistoryHash, HistoryMemory}

// IsValid returns true if the history type is a recognized value.
func (h HistoryType) IsValid() bool {
	return slices.Contains(HistoryTypes, h)
}

// Or returns h, or fallback when h is unset.
func (h HistoryType) Or(fallback HistoryType) HistoryType {
	if h == "" {
		return fallback
	}

	return h
}

// Config is the root of the host configuration consumed by the rewriter.
type Config struct {
	// Base is the host base path.
	Base string `yaml:"base,omitempty"`

	// History selects the host navigation mode.
	History *HistoryConfig `yaml:"history,omitempty"`

	// MicroApps holds the micro-app settings of the host.
	MicroApps MicroAppsConfig `yaml:"qiankun,omitempty"`
}

// HistoryConfig is the host history section. It can be written either as
// a mapping ({type: hash}) or as a bare scalar (hash).
type HistoryConfig struct {
	Type HistoryType `yaml:"type,omitempty"`
}

// MicroAppsConfig wraps the master-side micro-app settings.
type MicroAppsConfig struct {
	Master MasterConfig `yaml:"master,omitempty"`
}

// MasterConfig configures how the host mounts micro-apps.
type MasterConfig struct {
	// RouteBindingAlias is the route attribute that binds a route to an app.
	RouteBindingAlias string `yaml:"routeBindingAlias,omitempty"`

	// Apps are the micro-apps known to the host.
	Apps []App `yaml:"apps,omitempty"`
}

// App declares a micro-app.
type App struct {
	Name  string `yaml:"name,omitempty"`
	Entry string `yaml:"entry,omitempty"`

	// Base lists the path prefixes owned by the app. Used by legacy registration only.
	Base StringOrArray `yaml:"base,omitempty"`

	// History is the app's own navigation mode. Empty means the host's.
	History HistoryType `yaml:"history,omitempty"`
}

// IsRegistrable returns true if the app declares at least one base path.
func (a App) IsRegistrable() bool {
	return !common.IsEmpty(a.Base)
}

// Options are the rewrite inputs resolved once from a Config.
type Options struct {
	HistoryType       HistoryType
	Base              string
	RouteBindingAlias string
	Apps              []App
}

// HistoryType returns the host navigation mode.
func (c *Config) HistoryType() HistoryType {
	if c.History == nil {
		return DefaultHistoryType
	}

	return c.History.Type.Or(DefaultHistoryType)
}

// Options resolves the rewrite inputs, applying defaults for unset values.
func (c *Config) Options() Options {
	base := c.Base
	if base == "" {
		base = DefaultBase
	}

	alias := c.MicroApps.Master.RouteBindingAlias
	if alias == "" {
		alias = DefaultRouteBindingAlias
	}

	return Options{
		HistoryType:       c.HistoryType(),
		Base:              base,
		RouteBindingAlias: alias,
		Apps:              c.MicroApps.Master.Apps,
	}
}

// RegistrableApps returns the apps that declare a base path, in config order.
func (o Options) RegistrableApps() []App {
	var apps []App

	for _, app := range o.Apps {
		if app.IsRegistrable() {
			apps = append(apps, app)
		}
	}

	return apps
}
