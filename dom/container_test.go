package dom

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func parseTest(t *testing.T, s string) *Document {
	t.Helper()
	doc, err := ParseString(s)
	if err != nil {
		t.Fatalf("cannot parse test document: %v", err)
	}
	return doc
}

func TestInstallContainer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "addonstyles.dom")
	defer teardown()
	//
	doc := parseTest(t, `<html><head></head><body><p>x</p></body></html>`)
	c, err := InstallContainer(doc, "styles")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := doc.Body()
	if body.FirstChild != c.Node() {
		t.Errorf("expected container to be first child of body")
	}
	if !HasClass(c.Node(), "styles") {
		t.Errorf("expected container to have class 'styles'")
	}
	c2, err := InstallContainer(doc, "styles")
	if err != nil {
		t.Fatal(err)
	}
	if c2.Node() != c.Node() {
		t.Errorf("expected second install to re-use the container")
	}
	if n := len(ElementChildren(body)); n != 2 {
		t.Errorf("expected body to have 2 children, has %d", n)
	}
}

func TestInstallContainerErrors(t *testing.T) {
	doc := FromNode(&html.Node{Type: html.DocumentNode})
	if _, err := InstallContainer(doc, "styles"); !errors.Is(err, ErrNoBody) {
		t.Errorf("expected ErrNoBody, have %v", err)
	}
	doc = parseTest(t, `<body></body>`)
	if _, err := InstallContainer(doc, "["); err == nil {
		t.Errorf("expected invalid class to be rejected")
	}
}

func TestContainerMutations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "addonstyles.dom")
	defer teardown()
	//
	doc := parseTest(t, `<body></body>`)
	c, _ := InstallContainer(doc, "styles")
	var kinds []MutationKind
	cancel := c.Observe(func(m Mutation) {
		kinds = append(kinds, m.Kind)
	})
	a, b := NewStyle(".a{}"), NewStyle(".b{}")
	c.InsertBefore(a, nil)
	c.InsertBefore(b, nil)
	c.InsertBefore(b, nil) // already last
	c.InsertBefore(a, b)   // already in place
	c.InsertBefore(b, a)
	c.SetAttr(b, "data-x", "1")
	c.SetAttr(b, "data-x", "1") // unchanged
	c.Remove(a)
	c.Remove(a) // not a child any more
	want := []MutationKind{Inserted, Inserted, Moved, AttrChanged, Removed}
	if len(kinds) != len(want) {
		t.Fatalf("expected mutations %v, have %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("expected mutation #%d to be %s, is %s", i, want[i], kinds[i])
		}
	}
	if c.Len() != 1 || c.Children()[0] != b {
		t.Errorf("expected container to hold b only")
	}
	cancel()
	c.Remove(b)
	if len(kinds) != len(want) {
		t.Errorf("expected cancelled observer not to be called")
	}
}

func TestContainerInsertBeforeForeignRef(t *testing.T) {
	doc := parseTest(t, `<body><p>x</p></body>`)
	c, _ := InstallContainer(doc, "styles")
	p, _ := Query(doc.Root(), "p")
	defer func() {
		if recover() == nil {
			t.Errorf("expected insert before a foreign node to panic")
		}
	}()
	c.InsertBefore(NewStyle(""), p)
}
