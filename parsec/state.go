package parsec

import "fmt"

// State is a position within an input sequence of runes.
// States are values; advancing a state creates a new one.
type State struct {
	input  []rune
	offset int
	depth  int // nesting depth, see Nested
}

// NewState creates an input state positioned at the start of input.
func NewState(input string) State {
	return State{input: []rune(input)}
}

// Offset returns the rune offset of the state within the input.
func (st State) Offset() int {
	return st.offset
}

// Depth returns the current nesting depth (see Nested).
func (st State) Depth() int {
	return st.depth
}

// AtEnd is true if all input has been consumed.
func (st State) AtEnd() bool {
	return st.offset >= len(st.input)
}

// Peek returns the next rune without consuming it.
func (st State) Peek() (rune, bool) {
	if st.AtEnd() {
		return 0, false
	}
	return st.input[st.offset], true
}

// Remaining returns the unconsumed input.
func (st State) Remaining() string {
	if st.AtEnd() {
		return ""
	}
	return string(st.input[st.offset:])
}

func (st State) advance(n int) State {
	st.offset += n
	return st
}

func (st State) String() string {
	rest := []rune(st.Remaining())
	if len(rest) > 12 {
		return fmt.Sprintf("@%d %q…", st.offset, string(rest[:12]))
	}
	return fmt.Sprintf("@%d %q", st.offset, string(rest))
}
