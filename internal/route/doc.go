// Package route models the host route tree handed to the rewriter.
//
// A Route keeps the attributes the rewriter understands (path, exact,
// component, routes, settings) as fields. Every other key of the route
// definition is kept in Attrs, which is where the configurable binding
// attribute (default "microApp") lives.
//
// Components are one of:
//   - Ref: an identifier of a component owned by the host ("@/pages/index")
//   - *Delegation: renders a micro-app under the matched URL
//   - *Placeholder: an empty stub that only exists to keep a path routable
//
// Route files are YAML (or JSON) sequences:
//
//	- path: /
//	  component: "@/layouts/index"
//	  routes:
//	    - path: /shop
//	      microApp: shop
//	      settings:
//	        sandbox: true
package route
