package fp_test

import (
	"fmt"
	"testing"

	fp "github.com/npillmayer/fpweb"
)

func TestComposition(t *testing.T) {
	runes := func(s string) []rune {
		return []rune(s)
	}
	count := func(rs []rune) string {
		return fmt.Sprintf("%d runes", len(rs))
	}
	h := fp.Compose(runes, count)
	if n := h("größe"); n != "5 runes" {
		t.Errorf("expected composition to count 5 runes, got %q", n)
	}
}

func TestConst(t *testing.T) {
	seven := fp.Const(7)
	if seven() != 7 {
		t.Logf("const = %v", seven())
		t.Error("expected const to be integer 7")
	}
	star := fp.Always[rune]("*")
	if star('x') != "*" {
		t.Errorf("expected Always to ignore its argument, got %q", star('x'))
	}
}

func TestUnit(t *testing.T) {
	nothing := fp.Unit(7)
	if nothing != 0 {
		t.Logf("Unit(7) = %v", nothing)
		t.Error("expected Unit(7) to be nothing = 0")
	}
}

func TestTuples(t *testing.T) {
	name, attrs := fp.P("p", map[string]string{"id": "x"}).Decompose()
	if name != "p" || attrs["id"] != "x" {
		t.Errorf("expected pair to decompose to (p, {id:x}), is (%s, %v)", name, attrs)
	}
	a, b, c := fp.T3('<', "div", '>').Decompose()
	if a != '<' || b != "div" || c != '>' {
		t.Errorf("unexpected triple components %q %q %q", a, b, c)
	}
	q := fp.T4(1, 2, 3, 4)
	if q.First+q.Second+q.Third+q.Fourth != 10 {
		t.Errorf("unexpected quad %v", q)
	}
}
