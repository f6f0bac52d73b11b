package symtab

// SkipReason says why a line produced no symbol.
type SkipReason int

const (
	Kept                SkipReason = iota // line produced a symbol
	SkipShort                             // fewer than four fields
	SkipNotInt                            // kind other than "int" (e.g. "int[]")
	SkipUnsupportedType                   // type outside the Registry
	SkipEmptyValue                        // nothing after the name
)

func (r SkipReason) String() string {
	switch r {
	case Kept:
		return "kept"
	case SkipShort:
		return "short"
	case SkipNotInt:
		return "not-int"
	case SkipUnsupportedType:
		return "unsupported-type"
	case SkipEmptyValue:
		return "empty-value"
	default:
		return "unknown"
	}
}

// Stats counts what one read saw.
type Stats struct {
	Lines       int `json:"lines" yaml:"lines" toml:"lines"`
	Symbols     int `json:"symbols" yaml:"symbols" toml:"symbols"`
	Short       int `json:"short" yaml:"short" toml:"short"`
	NotInt      int `json:"not_int" yaml:"not_int" toml:"not_int"`
	Unsupported int `json:"unsupported" yaml:"unsupported" toml:"unsupported"`
	EmptyValue  int `json:"empty_value" yaml:"empty_value" toml:"empty_value"`
}

// Skipped is the number of lines that yielded no symbol.
func (s Stats) Skipped() int {
	return s.Short + s.NotInt + s.Unsupported + s.EmptyValue
}

func (s *Stats) count(reason SkipReason) {
	switch reason {
	case SkipShort:
		s.Short++
	case SkipNotInt:
		s.NotInt++
	case SkipUnsupportedType:
		s.Unsupported++
	case SkipEmptyValue:
		s.EmptyValue++
	}
}
