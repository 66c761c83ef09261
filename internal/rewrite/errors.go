package rewrite

import "fmt"

// StructuralViolationError is returned when a route bound to a micro-app also
// declares child routes. The rewrite is aborted and no tree is returned.
type StructuralViolationError struct {
	// AppName is the micro-app the route is bound to.
	AppName string
	// Path is the path of the offending route.
	Path string
	// Children is the number of child routes found.
	Children int
}

func (e *StructuralViolationError) Error() string {
	return fmt.Sprintf("[microapp-routes]: You can not attach micro app %q to a route who has children (path %q, %d children)",
		e.AppName, e.Path, e.Children)
}
