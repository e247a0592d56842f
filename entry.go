package addonstyles

import (
	"strconv"
	"strings"

	"github.com/npillmayer/addonstyles/dom"
	"github.com/npillmayer/addonstyles/dom/cssom"
	"github.com/npillmayer/addonstyles/dom/cssom/douceuradapter"
	"golang.org/x/net/html"
)

// Condition tells whether a feature currently wants a style to apply.
type Condition func() bool

// Dependent is a feature depending on a style, together with the condition
// under which the style is wanted.
type Dependent struct {
	Feature   string
	Condition Condition
}

// unplaced marks an element which has not been positioned in the container.
const unplaced = -1

// Entry is a single style definition with its dependents. Entries are
// created by a Registry and live as long as the registry does.
//
// The entry's <style> element is created when the first dependent becomes
// enabled and removed from the document when the last one is disabled.
// The style text is kept, so the element may be re-created any number of
// times.
type Entry struct {
	text       string
	element    *html.Node // nil while inactive
	precedence int
	placedAt   int // precedence at last positioning, or unplaced
	dependents []Dependent
	active     []string // enabled features at last recomputation
	sheet      cssom.StyleSheet
	container  *dom.Container
	conf       *settings
}

func newEntry(text string, container *dom.Container, conf *settings) *Entry {
	return &Entry{
		text:       text,
		precedence: DefaultPrecedence,
		placedAt:   unplaced,
		container:  container,
		conf:       conf,
	}
}

// Text returns the CSS source of the entry.
func (e *Entry) Text() string {
	return e.text
}

// Precedence returns the current precedence of the entry.
func (e *Entry) Precedence() int {
	return e.precedence
}

// Element returns the live <style> element, or nil if the entry is inactive.
func (e *Entry) Element() *html.Node {
	return e.element
}

// IsActive is true while at least one dependent has been enabled at the
// last recomputation.
func (e *Entry) IsActive() bool {
	return e.element != nil
}

// ActiveFeatures returns the enabled features as of the last recomputation.
func (e *Entry) ActiveFeatures() []string {
	return append([]string(nil), e.active...)
}

// Dependents returns a copy of the dependent list, in insertion order.
func (e *Entry) Dependents() []Dependent {
	return append([]Dependent(nil), e.dependents...)
}

// AddDependent appends a dependent and recomputes the entry. The same
// feature may be added more than once.
//
// The entry's precedence is raised to the feature's precedence class, if
// that is higher. It is never lowered.
func (e *Entry) AddDependent(featureID string, cond Condition) {
	e.dependents = append(e.dependents, Dependent{Feature: featureID, Condition: cond})
	if p := e.conf.overrides.Resolve(featureID); p > e.precedence {
		tracer().P("feature", featureID).Debugf("raising style precedence %d -> %d", e.precedence, p)
		e.precedence = p
		if e.element != nil {
			e.container.SetAttr(e.element, e.conf.precedenceAttr, strconv.Itoa(p))
		}
	}
	e.Update()
}

// RemoveDependents drops every dependent for featureID and recomputes the
// entry if anything has been removed. It returns the number of removed
// dependents. Precedence is left untouched.
func (e *Entry) RemoveDependents(featureID string) int {
	kept := e.dependents[:0]
	for _, d := range e.dependents {
		if d.Feature != featureID {
			kept = append(kept, d)
		}
	}
	n := len(e.dependents) - len(kept)
	for i := len(kept); i < len(e.dependents); i++ {
		e.dependents[i] = Dependent{}
	}
	e.dependents = kept
	if n > 0 {
		e.Update()
	}
	return n
}

// DependsOn checks if featureID is among the dependents.
func (e *Entry) DependsOn(featureID string) bool {
	for _, d := range e.dependents {
		if d.Feature == featureID {
			return true
		}
	}
	return false
}

// EnabledDependents evaluates all conditions in dependent order and returns
// the features whose condition holds.
func (e *Entry) EnabledDependents() []string {
	var enabled []string
	for _, d := range e.dependents {
		if d.Condition() {
			enabled = append(enabled, d.Feature)
		}
	}
	return enabled
}

// Update recomputes the enabled dependents and adapts the document.
//
// If the list of enabled features is equal to the one of the previous
// recomputation, element by element, the document is left alone. The same
// features enabled in a different order count as a change, as the features
// attribute of the element changes.
// An element which is out of place because of a raised precedence is
// re-positioned even if the feature list did not change.
func (e *Entry) Update() {
	current := e.EnabledDependents()
	if sameFeatures(current, e.active) && e.inPlace() {
		return
	}
	e.active = current
	if len(current) == 0 {
		e.deactivate()
		return
	}
	e.activate(current)
}

func (e *Entry) inPlace() bool {
	return e.element == nil || e.placedAt == e.precedence
}

func (e *Entry) deactivate() {
	if e.element == nil {
		return
	}
	tracer().Debugf("removing style element, precedence %d", e.precedence)
	e.container.Remove(e.element)
	e.element = nil
	e.placedAt = unplaced
}

func (e *Entry) activate(features []string) {
	joined := strings.Join(features, ",")
	if e.element == nil {
		tracer().P("features", joined).Debugf("creating style element, precedence %d", e.precedence)
		e.element = dom.NewStyle(e.text)
		dom.SetAttr(e.element, e.conf.precedenceAttr, strconv.Itoa(e.precedence))
		dom.SetAttr(e.element, e.conf.featuresAttr, joined)
	} else {
		e.container.SetAttr(e.element, e.conf.featuresAttr, joined)
	}
	if e.placedAt != e.precedence {
		e.position()
	}
}

// position inserts the element before the first sibling of strictly higher
// precedence. Siblings of equal precedence stay in front of it.
func (e *Entry) position() {
	var ref *html.Node
	for _, ch := range e.container.Children() {
		if ch == e.element {
			continue
		}
		if e.storedPrecedence(ch) > e.precedence {
			ref = ch
			break
		}
	}
	e.container.InsertBefore(e.element, ref)
	e.placedAt = e.precedence
}

// storedPrecedence reads the precedence attribute of a container child.
// Missing or malformed values count as DefaultPrecedence.
func (e *Entry) storedPrecedence(n *html.Node) int {
	v, ok := dom.Attr(n, e.conf.precedenceAttr)
	if !ok {
		return DefaultPrecedence
	}
	p, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return DefaultPrecedence
	}
	return p
}

// StyleSheet parses the entry's text. The result is cached. Parsing is for
// inspection only; unparsable text is inserted into the document all the
// same.
func (e *Entry) StyleSheet() (cssom.StyleSheet, error) {
	if e.sheet != nil {
		return e.sheet, nil
	}
	sheet, err := douceuradapter.Parse(e.text)
	if err != nil {
		return nil, err
	}
	e.sheet = sheet
	return sheet, nil
}

func sameFeatures(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
