package addonstyles

import (
	"fmt"

	"github.com/npillmayer/addonstyles/dom"
	"github.com/npillmayer/addonstyles/dom/cssom"
	"github.com/npillmayer/addonstyles/dom/cssom/douceuradapter"
)

// Registry maps definition keys to style entries. There is exactly one
// entry per key; entries are never dropped.
//
// Clients create a registry once per document and hand it to every
// component registering or toggling addon styles.
type Registry[K comparable] struct {
	conf      *settings
	container *dom.Container
	index     map[K]*Entry
	entries   []*Entry // insertion order
}

// NewRegistry creates a registry for a document. It installs the style
// container as the first child of the document's body, or re-uses a
// container already present.
func NewRegistry[K comparable](doc *dom.Document, opts ...Option) (*Registry[K], error) {
	conf := defaultSettings()
	for _, opt := range opts {
		opt(conf)
	}
	container, err := dom.InstallContainer(doc, conf.containerClass)
	if err != nil {
		return nil, fmt.Errorf("cannot create style registry: %w", err)
	}
	return &Registry[K]{
		conf:      conf,
		container: container,
		index:     make(map[K]*Entry),
	}, nil
}

// GetOrCreate returns the entry for key. If there is none, a new entry for
// styleText is created. For an existing entry styleText is ignored.
func (reg *Registry[K]) GetOrCreate(key K, styleText string) *Entry {
	if e, ok := reg.index[key]; ok {
		return e
	}
	tracer().P("key", fmt.Sprint(key)).Debugf("new style entry #%d", len(reg.entries))
	e := newEntry(styleText, reg.container, reg.conf)
	reg.index[key] = e
	reg.entries = append(reg.entries, e)
	return e
}

// Add registers a dependent for the style with the given key, creating the
// entry if necessary. The entry is recomputed immediately.
func (reg *Registry[K]) Add(key K, styleText string, featureID string, cond Condition) *Entry {
	e := reg.GetOrCreate(key, styleText)
	e.AddDependent(featureID, cond)
	return e
}

// Lookup returns the entry for key, if present.
func (reg *Registry[K]) Lookup(key K) (*Entry, bool) {
	e, ok := reg.index[key]
	return e, ok
}

// Len returns the number of entries.
func (reg *Registry[K]) Len() int {
	return len(reg.entries)
}

// Entries returns all entries in the order of their creation.
func (reg *Registry[K]) Entries() []*Entry {
	return append([]*Entry(nil), reg.entries...)
}

// Container returns the element holding the live style elements.
func (reg *Registry[K]) Container() *dom.Container {
	return reg.container
}

// UpdateAll recomputes every entry, in order of creation.
//
// A panicking condition aborts the call; entries after the failing one are
// not recomputed.
func (reg *Registry[K]) UpdateAll() {
	tracer().Debugf("updating all %d style entries", len(reg.entries))
	for _, e := range reg.entries {
		e.Update()
	}
}

// UpdateForFeature recomputes the entries which have featureID among their
// dependents. Other entries are neither evaluated nor touched.
func (reg *Registry[K]) UpdateForFeature(featureID string) {
	tracer().P("feature", featureID).Debugf("updating style entries for feature")
	for _, e := range reg.entries {
		if e.DependsOn(featureID) {
			e.Update()
		}
	}
}

// RemoveFeature drops all dependents for featureID from all entries and
// recomputes the affected ones. It returns the number of removed
// dependents.
func (reg *Registry[K]) RemoveFeature(featureID string) int {
	n := 0
	for _, e := range reg.entries {
		n += e.RemoveDependents(featureID)
	}
	if n > 0 {
		tracer().P("feature", featureID).Infof("removed %d style dependents", n)
	}
	return n
}

// ActiveStyleSheets parses the live style elements in container order,
// which is the order they take part in the cascade. Elements failing to
// parse are left out and reported in the error.
func (reg *Registry[K]) ActiveStyleSheets() ([]cssom.StyleSheet, error) {
	styles, err := douceuradapter.ExtractStyleElements(reg.container.Node())
	sheets := make([]cssom.StyleSheet, 0, len(styles))
	for _, s := range styles {
		sheets = append(sheets, s)
	}
	return sheets, err
}
