/*
Package addonstyles manages conditional style rules contributed by addons.

Status

Early draft—API may change frequently. Please stay patient.

Overview

Addons are independently toggleable customizations of a hosted page. Many
of them contribute CSS which must only apply while the addon (or one of
several addons sharing the same CSS) is enabled. A Registry deduplicates
style definitions by a caller-supplied key and keeps one Entry per key.
Every entry knows its dependents: pairs of a feature identifier and a
condition. The entry's <style> element is part of the document exactly as
long as at least one condition holds.

	reg, err := addonstyles.NewRegistry[string](doc)
	...
	reg.Add("find-bar/userstyle.css", css, "find-bar", func() bool {
		return settings.Enabled("find-bar")
	})
	...
	settings.Toggle("find-bar")
	reg.UpdateForFeature("find-bar")

The registry never decides by itself when conditions change. Clients call
UpdateAll or UpdateForFeature after feature state has been modified.
An entry mutates the document only if its list of enabled features
differs from the result of the previous recomputation.

Ordering

Active style elements live in a single container, the first child of the
document's body. They are sorted by precedence, a small integer derived
from the features an entry depends on (see Resolve). Styles of equal
precedence keep the order in which they became active. Precedence of an
entry never decreases.

Registries, entries and containers are not safe for concurrent use.
Conditions are expected to be pure reads of feature state; they must not
trigger updates themselves.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package addonstyles

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'addonstyles.registry'.
func tracer() tracing.Trace {
	return tracing.Select("addonstyles.registry")
}
