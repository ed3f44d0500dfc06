package lang

// Symbol is a unique token. Two symbols are equal only if they are the same
// pointer, whatever their descriptions.
type Symbol struct {
	description string
}

// NewSymbol returns a new symbol that is distinct from every other symbol.
func NewSymbol(description string) *Symbol {
	return &Symbol{description: description}
}

// Description returns the text the symbol was created with.
func (s *Symbol) Description() string {
	if s == nil {
		return ""
	}
	return s.description
}

func (s *Symbol) String() string {
	return "Symbol(" + s.Description() + ")"
}

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined is the explicit "no value" marker. Passing it to a predicate is
// the same as passing nothing. It is distinct from nil, which is null.
var Undefined = undefined{}
