/*
Package cssom provides an object model for style sheets and connects it to
document trees.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for markup. Style sheets
are abstracted by interfaces StyleSheet and Rule, which keeps clients
independent of a concrete CSS parser. This package wraps style sheets
produced by package css; sub-package douceuradapter wraps style sheets
produced by github.com/aymerick/douceur.

Selecting elements of a document tree is delegated to the great work of
https://godoc.org/github.com/andybalholm/cascadia: selectors are serialized,
compiled by cascadia and matched against an x/net/html rendition of the tree.
Cascading and computing styles is not a concern of this package.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'fp.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("fp.cssom")
}
