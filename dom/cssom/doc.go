/*
Package cssom provides a read-only view on the CSS of addon styles.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
Addon styles are registered as plain text and inserted into the document
without any validation. For tooling and debugging it is nevertheless handy
to look at the rules a style contributes, and at the order in which the
rules of all active styles take part in the cascade.

CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. A concrete implementation may be found in sub-package
douceuradapter.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom
