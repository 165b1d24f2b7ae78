/*
Package css parses a minimal subset of CSS into a style sheet model.

Grammar

   stylesheet   = ws rule*
   rule         = selectors '{' ws declarations '}' ws
   selectors    = simple_selector ws (',' ws simple_selector ws)*
   simple_selector
                = '*'                            universal
                | '#' letters                    id
                | '.' letters                    class
                | letters '[' letters op letters ']'   attribute
                | letters                        type
   op           = '=' | '~='
   declarations = (declaration ws (';' ws)?)*    trailing ';' allowed
   declaration  = letters ws ':' ws letters

Selector alternatives are tried in the order given. The attribute selector
shares its prefix with the type selector and is therefore tried with
backtracking: for input "test" the attribute alternative fails without
consuming input and the type selector matches.

Operators other than '=' and '~=' are recognized, but rejected with
ErrInvalidOperator. Combinators (descendant, child, sibling) are not
supported, and values are restricted to keywords.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.css'.
func tracer() tracing.Trace {
	return tracing.Select("fp.css")
}
