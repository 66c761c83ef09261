// Package config provides the host configuration schema read by the route
// rewriter, its YAML loader, validation and environment settings.
//
// # Schema Overview
//
//	base: /                  # host base path, default "/"
//	history:                 # or a bare scalar: "history: hash"
//	  type: browser          # browser | hash | memory, default browser
//	qiankun:
//	  master:
//	    routeBindingAlias: microApp   # route attribute naming the bound app
//	    apps:
//	      - name: shop
//	        entry: //localhost:8001
//	        base: /shop               # or a list: [/shop, /store]
//	        history: browser          # defaults to the host history type
//
// Apps declaring a base are registered by the legacy registration pass;
// routes carrying the binding attribute are handled by the attach pass.
//
// # Environment
//
// NODE_ENV selects production behavior (placeholder diagnostics are silent in
// production) and MICROAPP_ROUTES_DEBUG enables tree dumps.
package config
