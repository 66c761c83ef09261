// Package gen renders a rewritten route tree as a JavaScript route module
// for hosts that consume route components as source text.
//
// Generation approach uses text/template for the component bodies:
//   - route.Ref is emitted as the component identifier string
//   - route.Delegation becomes an inline component that derives the micro-app
//     base from match.url and creates the MicroApp element
//   - route.Placeholder becomes an inline component rendering an empty div
//     and logging the hit outside production
//
// Settings and other attribute values are embedded as JSON whose
// identifier keys use single quotes.
package gen
