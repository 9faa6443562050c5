package ngram

import "testing"

func feed(g *Generator, s string) {
	for _, r := range s {
		g.Push(r)
	}
}

func TestGetBeforeEnoughInput(t *testing.T) {
	t.Parallel()
	g := New()
	if _, ok := g.Get(2); ok {
		t.Error("Get(2) on fresh generator should be the null token")
	}
	g.Push('a')
	if s, ok := g.Get(1); !ok || s != "a" {
		t.Errorf("Get(1) after one push = (%q, %v), want (\"a\", true)", s, ok)
	}
	if _, ok := g.Get(2); !ok {
		t.Error("Get(2) after one push should form the leading word-boundary 2-gram")
	}
	if _, ok := g.Get(3); ok {
		t.Error("Get(3) after one push should still be the null token")
	}
}

func TestLeadingBoundary2Gram(t *testing.T) {
	t.Parallel()
	g := New()
	g.Push('a')
	got, ok := g.Get(2)
	if !ok {
		t.Fatal("expected a leading boundary 2-gram")
	}
	if got[len(got)-1] != 'a' || rune(got[0]) != ' ' {
		t.Errorf("Get(2) = %q, want \" a\"", got)
	}
}

func TestConsecutiveMarkersCollapse(t *testing.T) {
	t.Parallel()
	g := New()
	feed(g, "a  ,.  b")
	got, ok := g.Get(2)
	if !ok {
		t.Fatal("expected a 2-gram at end of stream")
	}
	if got != " b" {
		t.Errorf("Get(2) after collapsed whitespace run = %q, want \" b\"", got)
	}
}

func TestMarkerOnlyNgramIsNull(t *testing.T) {
	t.Parallel()
	g := New()
	g.Push(',')
	if _, ok := g.Get(1); ok {
		t.Error("Get(1) for a marker-only 1-gram should be the null token")
	}
}

func TestTrigramSlidesCorrectly(t *testing.T) {
	t.Parallel()
	g := New()
	feed(g, "cat")
	got, ok := g.Get(3)
	if !ok || got != "cat" {
		t.Errorf("Get(3) after \"cat\" = (%q, %v), want (\"cat\", true)", got, ok)
	}
}

func TestCaseFoldingInAscii(t *testing.T) {
	t.Parallel()
	g := New()
	feed(g, "HELLO")
	got, ok := g.Get(3)
	if !ok || got != "llo" {
		t.Errorf("Get(3) after \"HELLO\" = (%q, %v), want (\"llo\", true)", got, ok)
	}
}
