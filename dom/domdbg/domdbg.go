/*
Package domdbg implements helpers to debug style containers.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/npillmayer/addonstyles/dom"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Dump outputs the element tree below n as a tree diagram, e.g.
//
//     div class=addon-styles style=display:none
//     ├── style data-addon-precedence=0 data-addons=find-bar  ".x{color:red}"
//     └── style data-addon-precedence=1 data-addons=editor-theme3  ".y{color:blue}"
//
// Text content of leaf elements is shortened.
func Dump(n *html.Node) string {
	if n == nil {
		return "<nil>\n"
	}
	p := tp.New()
	p.SetValue(label(n))
	dump(p, goquery.NewDocumentFromNode(n).Selection)
	return p.String()
}

// DumpContainer is a shortcut for Dump(c.Node()).
func DumpContainer(c *dom.Container) string {
	return Dump(c.Node())
}

func dump(p tp.Tree, sel *goquery.Selection) {
	sel.Children().Each(func(_ int, ch *goquery.Selection) {
		n := ch.Get(0)
		if ch.Children().Length() == 0 {
			p.AddNode(label(n))
			return
		}
		dump(p.AddBranch(label(n)), ch)
	})
}

func label(n *html.Node) string {
	var b strings.Builder
	b.WriteString(n.Data)
	for _, a := range n.Attr {
		fmt.Fprintf(&b, " %s=%s", a.Key, a.Val)
	}
	if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
		if text := shortText(dom.TextContent(n)); text != "" {
			fmt.Fprintf(&b, "  %q", text)
		}
	}
	return b.String()
}

func shortText(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > 32 {
		s = string(r[:32]) + "…"
	}
	return s
}
