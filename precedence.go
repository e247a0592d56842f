package addonstyles

// DefaultPrecedence is the precedence class of every feature without an
// override.
const DefaultPrecedence = 0

// Overrides maps feature identifiers to precedence classes. Features which
// are not listed have DefaultPrecedence.
type Overrides map[string]int

// DefaultOverrides lists the features which have to stack above styles of
// other features.
var DefaultOverrides = Overrides{
	"editor-theme3": 1,
	"columns":       2,
}

// Resolve returns the precedence class of a feature, according to
// DefaultOverrides.
func Resolve(featureID string) int {
	return DefaultOverrides.Resolve(featureID)
}

// Resolve returns the precedence class of a feature. Unknown identifiers
// resolve to DefaultPrecedence.
func (o Overrides) Resolve(featureID string) int {
	if p, ok := o[featureID]; ok {
		return p
	}
	return DefaultPrecedence
}

// With returns a new table with the entries of o, overwritten by the
// entries of other. Neither o nor other are modified.
func (o Overrides) With(other Overrides) Overrides {
	merged := make(Overrides, len(o)+len(other))
	for id, p := range o {
		merged[id] = p
	}
	for id, p := range other {
		merged[id] = p
	}
	return merged
}
