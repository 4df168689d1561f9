package inet

// Kind selects a node's type and therefore its arity.
type Kind int

const (
	// KindRoot is the 1-port terminator marking the net's output.
	KindRoot Kind = iota
	// KindErase is the 1-port terminator that discards whatever it is wired to.
	KindErase
	// KindDup is the 3-port duplicator combinator.
	KindDup
	// KindLam is the 3-port abstraction combinator.
	KindLam
	// KindApp is the 3-port application combinator.
	KindApp
)

// Kinds lists every node kind in declaration order.
var Kinds = []Kind{KindRoot, KindErase, KindDup, KindLam, KindApp}

// keywords maps the notation keyword to the kind it declares.
var keywords = map[string]Kind{
	"ROOT": KindRoot,
	"ERA":  KindErase,
	"DUP":  KindDup,
	"LAM":  KindLam,
	"APP":  KindApp,
}

// KindFromKeyword resolves a notation keyword. Matching is case-sensitive.
func KindFromKeyword(keyword string) (Kind, bool) {
	k, ok := keywords[keyword]
	return k, ok
}

// Keyword returns the notation keyword that declares k.
func (k Kind) Keyword() string {
	switch k {
	case KindRoot:
		return "ROOT"
	case KindErase:
		return "ERA"
	case KindDup:
		return "DUP"
	case KindLam:
		return "LAM"
	case KindApp:
		return "APP"
	}
	return ""
}

// Arity is the fixed number of ports of a node of kind k.
func (k Kind) Arity() int {
	switch k {
	case KindRoot, KindErase:
		return 1
	case KindDup, KindLam, KindApp:
		return 3
	}
	return 0
}

// String returns the kind's display name, e.g. "Erase".
func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "Root"
	case KindErase:
		return "Erase"
	case KindDup:
		return "Dup"
	case KindLam:
		return "Lam"
	case KindApp:
		return "App"
	}
	return "Unknown"
}

// Direction is the logical orientation of a port.
type Direction int

const (
	// Any means the port has no preferred orientation.
	Any Direction = iota
	// Up means the port points towards the top of the drawing.
	Up
	// Down means the port points towards the bottom of the drawing.
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "any"
}

// PortDirection looks up the direction of port on a node of kind k. It panics
// if port is outside the kind's arity.
func PortDirection(k Kind, port int) Direction {
	if port < 0 || port >= k.Arity() {
		panic("inet: port index out of range for " + k.String())
	}
	switch k {
	case KindDup, KindLam:
		if port == 0 {
			return Up
		}
		return Down
	case KindApp:
		if port == 0 {
			return Down
		}
		return Up
	}
	return Any
}
