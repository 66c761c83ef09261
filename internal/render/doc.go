// Package render interprets rewritten route components at request time.
//
// A route.Delegation turns the matched URL into the micro-app base path and
// hands {name, base, history, settings} to a Mounter. A route.Placeholder
// renders nothing and, outside production, logs that it was hit.
// Renderers only read the captured descriptors, so one Renderer can serve
// concurrent renders.
package render
