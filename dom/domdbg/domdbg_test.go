package domdbg

import (
	"strings"
	"testing"

	"github.com/npillmayer/addonstyles/dom"
)

func TestDumpContainer(t *testing.T) {
	doc, err := dom.ParseString(`<body></body>`)
	if err != nil {
		t.Fatal(err)
	}
	c, err := dom.InstallContainer(doc, "addon-styles")
	if err != nil {
		t.Fatal(err)
	}
	st := dom.NewStyle(".x { color: red }")
	dom.SetAttr(st, "data-addons", "find-bar")
	c.InsertBefore(st, nil)
	out := DumpContainer(c)
	t.Logf("\n%s", out)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines of output, have %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "div class=addon-styles") {
		t.Errorf("unexpected root line %q", lines[0])
	}
	if !strings.Contains(lines[1], `style data-addons=find-bar  ".x { color: red }"`) {
		t.Errorf("unexpected style line %q", lines[1])
	}
}

func TestShortText(t *testing.T) {
	s := shortText(strings.Repeat("äb ", 20))
	if r := []rune(s); len(r) != 33 || r[32] != '…' {
		t.Errorf("expected text to be shortened to 32 runes, is %q", s)
	}
	if Dump(nil) != "<nil>\n" {
		t.Errorf("expected nil node to dump as <nil>")
	}
}
