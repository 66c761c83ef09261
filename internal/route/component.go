package route

//go:generate go tool stringer -type=ComponentKind -linecomment -output=componentkind_string.go

// ComponentKind identifies the implementation behind a Component.
type ComponentKind int

const (
	_ ComponentKind = iota // zero value is invalid

	KindRef         // ref
	KindDelegation  // microApp
	KindPlaceholder // placeholder
)

// ParseComponentKind returns the kind whose wire name is s.
func ParseComponentKind(s string) (ComponentKind, bool) {
	for k := KindRef; k <= KindPlaceholder; k++ {
		if k.String() == s {
			return k, true
		}
	}

	return 0, false
}

// Component is what a route renders.
type Component interface {
	Kind() ComponentKind
}

// Ref references a component owned by the host build.
type Ref string

func (Ref) Kind() ComponentKind { return KindRef }

// Delegation hands rendering over to a micro-app. The values are captured
// when the route is rewritten and never change afterwards.
type Delegation struct {
	// AppName is the micro-app identifier.
	AppName string
	// Base is the host base path, empty when the host is served from "/".
	Base string
	// History is the host navigation mode.
	History string
	// Settings are passed to the mounting component untouched.
	Settings map[string]any
}

func (*Delegation) Kind() ComponentKind { return KindDelegation }

// Placeholder renders nothing. It keeps a micro-app base path routable.
type Placeholder struct {
	Path string
}

func (*Placeholder) Kind() ComponentKind { return KindPlaceholder }
