package cssom

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Clients inspecting addon styles will receive concrete implementations of
// this interface (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string        // the prelude / selectors of the rule
	Properties() []string    // property keys, e.g. "margin-top"
	Value(string) string     // property value for key, e.g. "15px"
	IsImportant(string) bool // is property key marked as important?
}

// Selectors collects the selectors of all rules of a stylesheet, in order.
// A nil stylesheet has no selectors.
func Selectors(sheet StyleSheet) []string {
	if sheet == nil {
		return nil
	}
	rules := sheet.Rules()
	sels := make([]string, 0, len(rules))
	for _, r := range rules {
		sels = append(sels, r.Selector())
	}
	return sels
}
