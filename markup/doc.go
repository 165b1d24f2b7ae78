/*
Package markup parses a small subset of HTML into a document tree.

Grammar

   attribute  = name ws '=' ws '"' value '"'      name: (letter | '-')+
   attributes = (attribute ws)*
   open_tag   = '<' letters ws attributes '>'
   close_tag  = '<' '/' letters '>'
   text       = (any but '<')+
   contents   = ( element | text )*
   element    = open_tag contents close_tag

There are no void elements, no comments, no character references and no
implicit tags. Every element has to be closed explicitly with a tag of the
same name; a mismatch is reported as ErrMismatchedTagName.

Element and contents are mutually recursive. They are set up as
parsec.Rules by NewGrammar. Grammars are immutable after construction and
may be shared between goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.markup'.
func tracer() tracing.Trace {
	return tracing.Select("fp.markup")
}
