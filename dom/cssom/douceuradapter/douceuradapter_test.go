package douceuradapter

import (
	"testing"

	"github.com/npillmayer/addonstyles/dom"
	"github.com/npillmayer/addonstyles/dom/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParse(t *testing.T) {
	sheet, err := Parse(`.x { color: red; margin-top: 2px !important }`)
	if err != nil {
		t.Fatal(err)
	}
	if sheet.Empty() {
		t.Fatalf("expected stylesheet to have rules")
	}
	r := sheet.Rules()[0]
	if r.Selector() != ".x" {
		t.Errorf("expected selector .x, is %q", r.Selector())
	}
	if props := r.Properties(); len(props) != 2 || props[1] != "margin-top" {
		t.Errorf("unexpected properties %v", props)
	}
	if r.Value("color") != "red" || r.Value("padding") != "" {
		t.Errorf("unexpected values for color/padding")
	}
	if !r.IsImportant("margin-top") || r.IsImportant("color") {
		t.Errorf("expected margin-top only to be important")
	}
}

func TestAppendRules(t *testing.T) {
	a, _ := Parse(`.a{color:red}`)
	b, _ := Parse(`.b{color:blue} .c{color:green}`)
	a.AppendRules(b)
	sels := cssom.Selectors(a)
	if len(sels) != 3 || sels[2] != ".c" {
		t.Errorf("expected 3 rules after append, have %v", sels)
	}
}

func TestExtractStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "addonstyles.cssom")
	defer teardown()
	//
	doc, err := dom.ParseString(`<html><head><style>h1{margin:0}</style></head>
<body><div><style>.q{color:red}</style></div></body></html>`)
	if err != nil {
		t.Fatal(err)
	}
	sheets, err := ExtractStyleElements(doc.Root())
	if err != nil {
		t.Fatal(err)
	}
	if len(sheets) != 2 {
		t.Fatalf("expected 2 style elements, have %d", len(sheets))
	}
	if sels := cssom.Selectors(sheets[1]); len(sels) != 1 || sels[0] != ".q" {
		t.Errorf("expected second sheet to hold .q, holds %v", sels)
	}
}
