/*
Package debug renders the internal structure of a chunked sequence for
diagnostics: a Graphviz DOT dump of the finger/middle-tree shape, and a
colorized, terminal-width-aware console summary. Neither is on any hot
path — both walk the whole structure on every call.
*/
package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/gopherseq/chunkseq/btree"
)

// Shape summarizes one Sequence's finger and middle-tree layout, read
// through Sequence's exported size accessors and btree.Tree.Dump.
type Shape struct {
	FrontOuter, FrontInner, BackInner, BackOuter int
	MiddleItems                                  int
	MiddleHeight                                 int
	Middle                                       btree.DumpNode
}

// Inspect captures a Shape snapshot of seq. Requires seq to expose its
// finger sizes and middle tree via the Inspectable interface, which
// *chunkseq.Sequence satisfies.
func Inspect[S, T any](seq Inspectable[S, T]) Shape {
	mid := seq.MiddleTree()
	// mid.Len() counts the middle tree's chunks; the items inside them are
	// whatever the fingers do not hold.
	fingers := seq.FrontOuterSize() + seq.FrontInnerSize() + seq.BackInnerSize() + seq.BackOuterSize()
	return Shape{
		FrontOuter:    seq.FrontOuterSize(),
		FrontInner:    seq.FrontInnerSize(),
		BackInner:     seq.BackInnerSize(),
		BackOuter:     seq.BackOuterSize(),
		MiddleItems:   seq.Len() - fingers,
		MiddleHeight:  mid.Height(),
		Middle:        mid.Dump(),
	}
}

// Inspectable is the slice of Sequence's surface debug needs. Kept as a
// separate interface so debug doesn't have to import Sequence's item-level
// middle-tree payload types.
type Inspectable[S, T any] interface {
	Len() int
	FrontOuterSize() int
	FrontInnerSize() int
	BackInnerSize() int
	BackOuterSize() int
	MiddleTree() interface {
		Len() int
		Height() int
		Dump() btree.DumpNode
	}
}

// Dot writes a Graphviz DOT rendering of shape to w, one node per finger
// plus a subtree for the middle tree's leaves and interior nodes.
func Dot(shape Shape, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	fmt.Fprintf(w, "\t\"root\" [label=\"sequence\",shape=point];\n")
	fingers := []struct {
		name string
		size int
	}{
		{"frontOuter", shape.FrontOuter},
		{"frontInner", shape.FrontInner},
		{"middle", shape.MiddleItems},
		{"backInner", shape.BackInner},
		{"backOuter", shape.BackOuter},
	}
	for _, f := range fingers {
		fmt.Fprintf(w, "\t\"%s\" [label=\"%s\\n%d items\",style=filled,fillcolor=\"#a3d7e4\",shape=box];\n", f.name, f.name, f.size)
		fmt.Fprintf(w, "\t\"root\" -> \"%s\";\n", f.name)
	}
	id := 0
	dotNode(shape.Middle, "middle", &id, w)
	io.WriteString(w, "}\n")
}

func dotNode(n btree.DumpNode, parent string, id *int, w io.Writer) {
	*id++
	name := fmt.Sprintf("mid%d", *id)
	if n.IsLeaf {
		fmt.Fprintf(w, "\t\"%s\" [label=\"leaf\\n%d\",shape=box,style=filled,fillcolor=\"#cceecc\"];\n", name, n.Count)
	} else {
		fmt.Fprintf(w, "\t\"%s\" [label=\"inner\\n%d\",shape=circle,style=filled,fillcolor=\"#a3d7e4\"];\n", name, n.Count)
	}
	fmt.Fprintf(w, "\t\"%s\" -> \"%s\";\n", parent, name)
	for _, child := range n.Children {
		dotNode(child, name, id, w)
	}
}

// Console prints a colorized, indented tree summary of shape to os.Stdout,
// wrapping at the terminal's width when stdout is a terminal.
func Console(shape Shape) {
	width := 80
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	fingerColor := color.New(color.FgCyan)
	leafColor := color.New(color.FgGreen)
	innerColor := color.New(color.FgBlue)

	line := func(depth int, c *color.Color, format string, args ...interface{}) {
		text := fmt.Sprintf(format, args...)
		if len(text)+depth*2 > width {
			text = text[:max(0, width-depth*2-1)] + "…"
		}
		fmt.Print(indent(depth))
		c.Println(text)
	}
	line(0, fingerColor, "frontOuter: %d", shape.FrontOuter)
	line(0, fingerColor, "frontInner: %d", shape.FrontInner)
	line(0, fingerColor, "middle: %d items, height %d", shape.MiddleItems, shape.MiddleHeight)
	consoleNode(shape.Middle, 1, leafColor, innerColor, line)
	line(0, fingerColor, "backInner: %d", shape.BackInner)
	line(0, fingerColor, "backOuter: %d", shape.BackOuter)
}

func consoleNode(n btree.DumpNode, depth int, leafColor, innerColor *color.Color, line func(int, *color.Color, string, ...interface{})) {
	if n.IsLeaf {
		line(depth, leafColor, "leaf: %d", n.Count)
		return
	}
	line(depth, innerColor, "inner: %d children, %d items", len(n.Children), n.Count)
	for _, child := range n.Children {
		consoleNode(child, depth+1, leafColor, innerColor, line)
	}
}

func indent(depth int) string {
	s := ""
	for i := 0; i < depth; i++ {
		s += "  "
	}
	return s
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
