// Package rewrite turns routes into micro-app entry points.
//
// Two passes run over the same route tree, in this order:
//
//  1. Legacy registration. For every app declaring a base path and sharing the
//     host history type, the root route ("/" with children) gets a placeholder
//     child for each base path no route covers yet. A route that already covers
//     the base path is widened (exact = false) instead.
//  2. Attach. Every route carrying the binding attribute (default "microApp")
//     is widened and its component replaced by a route.Delegation capturing the
//     app name, the host base, the host history type and the route settings.
//
// A bound route must not have child routes: the micro-app owns everything
// below it. Such a route aborts the whole rewrite with a
// *StructuralViolationError.
package rewrite
