/*
Package dom provides the small slice of an HTML document object model which
conditional addon styles need: a parsed document, a style container as the
first child of the document's body, and selector queries.

Status

Early draft—API may change frequently. Please stay patient.

Overview

Documents are parse trees of package golang.org/x/net/html. We do not wrap
every node type; clients work with *html.Node directly and use the helpers
of this package for attributes and text content.

A Container is the single element which holds the live style elements of
all active addons. Every mutation of a container is routed through its
methods, so observers registered with Container.Observe will see each
insert, move, removal and attribute change. This replaces a browser's
MutationObserver for tooling and for tests.

Selector queries are implemented with https://godoc.org/github.com/andybalholm/cascadia.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'addonstyles.dom'
func tracer() tracing.Trace {
	return tracing.Select("addonstyles.dom")
}
