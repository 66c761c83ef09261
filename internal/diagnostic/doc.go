// Package diagnostic provides structured errors, warnings and infos for
// configuration and route tree checks.
//
// Key capabilities:
//   - Invalid history type and base path reports
//   - Bound routes that still declare child routes
//   - Misspelled binding attributes with suggestions
package diagnostic
