package addonstyles

import "testing"

func TestResolveDefaults(t *testing.T) {
	for _, c := range []struct {
		feature string
		p       int
	}{
		{"editor-theme3", 1},
		{"columns", 2},
		{"find-bar", DefaultPrecedence},
		{"", DefaultPrecedence},
		{"Columns", DefaultPrecedence},
	} {
		if p := Resolve(c.feature); p != c.p {
			t.Errorf("expected precedence of %q to be %d, is %d", c.feature, c.p, p)
		}
	}
}

func TestOverridesWith(t *testing.T) {
	base := Overrides{"a": 1, "b": 2}
	merged := base.With(Overrides{"b": 5, "c": 3})
	if merged.Resolve("a") != 1 || merged.Resolve("b") != 5 || merged.Resolve("c") != 3 {
		t.Errorf("unexpected merged overrides: %v", merged)
	}
	if base.Resolve("b") != 2 || base.Resolve("c") != DefaultPrecedence {
		t.Errorf("expected base table to be unchanged, is %v", base)
	}
	var empty Overrides
	if empty.Resolve("a") != DefaultPrecedence {
		t.Errorf("expected nil table to resolve to default precedence")
	}
}
