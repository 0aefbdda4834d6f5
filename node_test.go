package argon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lestrrat-go/argon/buf"
)

func childNames(n Node) []string {
	var names []string
	for chld := n.FirstChild(); chld != nil; chld = chld.NextSibling() {
		names = append(names, chld.LocalName())
	}
	return names
}

func TestNodeAddChildOrder(t *testing.T) {
	parent := NewElement("parent")
	for _, name := range []string{"a", "b", "c"} {
		if !assert.NoError(t, parent.AddChild(NewElement(name)), "AddChild succeeds") {
			return
		}
	}

	if !assert.Equal(t, []string{"a", "b", "c"}, childNames(parent), "children in insertion order") {
		return
	}
	if !assert.Equal(t, "a", parent.FirstChild().LocalName(), "first child matches") {
		return
	}
	if !assert.Equal(t, "c", parent.LastChild().LocalName(), "last child matches") {
		return
	}
	if !assert.Equal(t, parent, parent.FirstChild().Parent(), "parent pointer set") {
		return
	}
}

func TestNodeAddChildReappend(t *testing.T) {
	parent := NewElement("parent")
	a := NewElement("a")
	b := NewElement("b")
	for _, n := range []Node{a, b} {
		if !assert.NoError(t, parent.AddChild(n), "AddChild succeeds") {
			return
		}
	}

	// re-appending the node that is already the last child leaves the
	// tree untouched
	if !assert.NoError(t, parent.AddChild(b), "re-append succeeds") {
		return
	}
	if !assert.Equal(t, []string{"a", "b"}, childNames(parent), "children unchanged") {
		return
	}
	if !assert.Equal(t, parent, b.Parent(), "parent pointer intact") {
		return
	}
	if !assert.Nil(t, b.NextSibling(), "last child has no next sibling") {
		return
	}
	if !assert.Equal(t, a, b.PrevSibling(), "previous sibling intact") {
		return
	}

	// re-appending an earlier child moves it to the end
	if !assert.NoError(t, parent.AddChild(a), "re-append succeeds") {
		return
	}
	if !assert.Equal(t, []string{"b", "a"}, childNames(parent), "child moved to the end") {
		return
	}
}

func TestNodeLinkSelf(t *testing.T) {
	n := NewElement("n")
	if !assert.Equal(t, ErrInvalidArgument, n.AddSibling(n), "a node cannot be its own sibling") {
		return
	}
	if !assert.Equal(t, ErrInvalidArgument, n.AddChild(n), "a node cannot be its own child") {
		return
	}
}

func TestSetContent(t *testing.T) {
	doc := CreateDocument()
	e := doc.CreateElement("e")
	if !assert.NoError(t, e.AddContent([]byte("one")), "AddContent succeeds") {
		return
	}
	if !assert.NoError(t, e.AddChild(doc.CreateComment([]byte("x"))), "AddChild succeeds") {
		return
	}

	var freed int
	prev := SetDeregisterNodeFunc(func(Node) { freed++ })
	defer SetDeregisterNodeFunc(prev)

	if !assert.NoError(t, SetContent(e, []byte("two")), "SetContent succeeds") {
		return
	}
	if !assert.Equal(t, 2, freed, "old children freed") {
		return
	}
	content, err := e.Content(nil)
	if !assert.NoError(t, err, "Content succeeds") {
		return
	}
	if !assert.Equal(t, "two", string(content), "content replaced") {
		return
	}
	if !assert.Equal(t, e.FirstChild(), e.LastChild(), "single text child installed") {
		return
	}

	// empty content clears the child list
	if !assert.NoError(t, SetContent(e, nil), "SetContent succeeds") {
		return
	}
	if !assert.Nil(t, e.FirstChild(), "child list cleared") {
		return
	}

	// kinds that hold their content directly overwrite in place
	txt := doc.CreateText([]byte("abc"))
	if !assert.NoError(t, SetContent(txt, []byte("z")), "SetContent succeeds") {
		return
	}
	content, err = txt.Content(nil)
	if !assert.NoError(t, err, "Content succeeds") {
		return
	}
	if !assert.Equal(t, "z", string(content), "text content replaced") {
		return
	}

	pi := doc.CreatePI("target", "old")
	if !assert.NoError(t, SetContent(pi, []byte("new")), "SetContent succeeds") {
		return
	}
	content, err = pi.Content(nil)
	if !assert.NoError(t, err, "Content succeeds") {
		return
	}
	if !assert.Equal(t, "new", string(content), "pi data replaced") {
		return
	}

	// a document's content is structural
	if !assert.Equal(t, ErrInvalidOperation, SetContent(doc, []byte("x")), "SetContent on a document fails") {
		return
	}
}

func TestNodeUnlinkMiddle(t *testing.T) {
	parent := NewElement("parent")
	a := NewElement("a")
	b := NewElement("b")
	c := NewElement("c")
	for _, n := range []Node{a, b, c} {
		if !assert.NoError(t, parent.AddChild(n), "AddChild succeeds") {
			return
		}
	}

	b.Unlink()

	if !assert.Equal(t, []string{"a", "c"}, childNames(parent), "remaining children keep order") {
		return
	}
	if !assert.Equal(t, c, a.NextSibling(), "a.next skips b") {
		return
	}
	if !assert.Equal(t, a, c.PrevSibling(), "c.prev skips b") {
		return
	}
	if !assert.Nil(t, b.Parent(), "b has no parent") {
		return
	}
	if !assert.Nil(t, b.NextSibling(), "b has no next") {
		return
	}
	if !assert.Nil(t, b.PrevSibling(), "b has no prev") {
		return
	}
	b.Unlink()
	if !assert.Equal(t, []string{"a", "c"}, childNames(parent), "unlinking again changes nothing") {
		return
	}
}

func TestNodeUnlinkEnds(t *testing.T) {
	parent := NewElement("parent")
	a := NewElement("a")
	b := NewElement("b")
	for _, n := range []Node{a, b} {
		if !assert.NoError(t, parent.AddChild(n), "AddChild succeeds") {
			return
		}
	}

	a.Unlink()
	if !assert.Equal(t, b, parent.FirstChild(), "firstChild advances") {
		return
	}

	b.Unlink()
	if !assert.Nil(t, parent.FirstChild(), "firstChild cleared") {
		return
	}
	if !assert.Nil(t, parent.LastChild(), "lastChild cleared") {
		return
	}
}

func TestNodeInsertBeforeAfter(t *testing.T) {
	parent := NewElement("parent")
	a := NewElement("a")
	c := NewElement("c")
	for _, n := range []Node{a, c} {
		if !assert.NoError(t, parent.AddChild(n), "AddChild succeeds") {
			return
		}
	}

	b := NewElement("b")
	if !assert.NoError(t, InsertAfter(a, b), "InsertAfter succeeds") {
		return
	}
	if !assert.Equal(t, []string{"a", "b", "c"}, childNames(parent), "b inserted between a and c") {
		return
	}

	z := NewElement("z")
	if !assert.NoError(t, InsertBefore(a, z), "InsertBefore succeeds") {
		return
	}
	if !assert.Equal(t, []string{"z", "a", "b", "c"}, childNames(parent), "z inserted at head") {
		return
	}
	if !assert.Equal(t, z, parent.FirstChild(), "firstChild updated") {
		return
	}
}

func TestNodeInsertRelinks(t *testing.T) {
	p1 := NewElement("p1")
	p2 := NewElement("p2")
	a := NewElement("a")
	b := NewElement("b")
	if !assert.NoError(t, p1.AddChild(a), "AddChild succeeds") {
		return
	}
	if !assert.NoError(t, p2.AddChild(b), "AddChild succeeds") {
		return
	}

	// linking into a new position implicitly unlinks from the old one
	if !assert.NoError(t, InsertAfter(b, a), "InsertAfter succeeds") {
		return
	}

	if !assert.Nil(t, p1.FirstChild(), "old parent loses the child") {
		return
	}
	if !assert.Equal(t, []string{"b", "a"}, childNames(p2), "new parent gains the child") {
		return
	}
	if !assert.Equal(t, p2, a.Parent(), "parent pointer rewritten") {
		return
	}
}

func TestNodeReplace(t *testing.T) {
	parent := NewElement("parent")
	a := NewElement("a")
	b := NewElement("b")
	c := NewElement("c")
	for _, n := range []Node{a, b, c} {
		if !assert.NoError(t, parent.AddChild(n), "AddChild succeeds") {
			return
		}
	}

	d := NewElement("d")
	if !assert.NoError(t, b.Replace(d), "Replace succeeds") {
		return
	}

	if !assert.Equal(t, []string{"a", "d", "c"}, childNames(parent), "replacement takes b's slot") {
		return
	}
	if !assert.Nil(t, b.Parent(), "old node detached") {
		return
	}
	if !assert.Nil(t, b.NextSibling(), "old node has no siblings") {
		return
	}
}

func TestAddChildList(t *testing.T) {
	parent := NewElement("parent")
	a := NewElement("a")
	b := NewElement("b")
	c := NewElement("c")
	if !assert.NoError(t, setNextSibling(a, b), "link a-b") {
		return
	}
	if !assert.NoError(t, setNextSibling(b, c), "link b-c") {
		return
	}

	if !assert.NoError(t, AddChildList(parent, a), "AddChildList succeeds") {
		return
	}
	if !assert.Equal(t, []string{"a", "b", "c"}, childNames(parent), "whole list adopted") {
		return
	}
	if !assert.Equal(t, parent, b.Parent(), "every node got a parent") {
		return
	}
}

func TestMergeText(t *testing.T) {
	parent := NewElement("parent")
	t1 := NewText([]byte("Hello "))
	t2 := NewText([]byte("World!"))
	for _, n := range []Node{t1, t2} {
		if !assert.NoError(t, parent.AddChild(n), "AddChild succeeds") {
			return
		}
	}

	// adjacent text nodes are NOT merged implicitly
	if !assert.Equal(t, t2, t1.NextSibling(), "both nodes present before merge") {
		return
	}

	if !assert.NoError(t, MergeText(t1, t2), "MergeText succeeds") {
		return
	}

	content, err := t1.Content(nil)
	if !assert.NoError(t, err, "Content succeeds") {
		return
	}
	if !assert.Equal(t, []byte("Hello World!"), content, "content concatenated") {
		return
	}
	if !assert.Nil(t, t1.NextSibling(), "second node gone") {
		return
	}
	if !assert.Equal(t, t1, parent.LastChild(), "lastChild updated") {
		return
	}
}

func TestMergeTextMixedKinds(t *testing.T) {
	parent := NewElement("parent")
	t1 := NewText([]byte("text"))
	c1 := NewCDATASection([]byte("cdata"))
	for _, n := range []Node{t1, c1} {
		if !assert.NoError(t, parent.AddChild(n), "AddChild succeeds") {
			return
		}
	}

	if !assert.Equal(t, ErrInvalidOperation, MergeText(t1, c1), "text and CDATA do not merge") {
		return
	}

	t2 := NewText([]byte("tail"))
	if !assert.NoError(t, parent.AddChild(t2), "AddChild succeeds") {
		return
	}
	if !assert.Equal(t, ErrInvalidOperation, MergeText(t1, t2), "non-adjacent text does not merge") {
		return
	}
}

func TestWalkOrder(t *testing.T) {
	parent := NewElement("r")
	a := NewElement("a")
	b := NewElement("b")
	if !assert.NoError(t, parent.AddChild(a), "AddChild succeeds") {
		return
	}
	if !assert.NoError(t, a.AddChild(NewElement("a1")), "AddChild succeeds") {
		return
	}
	if !assert.NoError(t, parent.AddChild(b), "AddChild succeeds") {
		return
	}

	var visited []string
	err := Walk(parent, func(n Node) error {
		visited = append(visited, n.LocalName())
		return nil
	})
	if !assert.NoError(t, err, "Walk succeeds") {
		return
	}
	if !assert.Equal(t, []string{"r", "a", "a1", "b"}, visited, "depth-first, parent before children") {
		return
	}
}

func TestContentTo(t *testing.T) {
	e := NewElement("e")
	if !assert.NoError(t, e.AddContent([]byte("Hello World!")), "AddContent succeeds") {
		return
	}

	b := buf.New()
	if !assert.NoError(t, ContentTo(e, b), "ContentTo succeeds") {
		return
	}
	if !assert.Equal(t, "Hello World!", b.String(), "buffer holds the content") {
		return
	}

	// a bounded buffer enforces its ceiling against tree content too
	bounded := buf.New(
		buf.WithAllocationScheme(buf.AllocBounded),
		buf.WithMaxSize(4),
	)
	if !assert.Equal(t, buf.ErrCapacityExceeded, ContentTo(e, bounded), "ceiling enforced") {
		return
	}
}

func TestNodePrivateAndLine(t *testing.T) {
	e := NewElement("e")
	if !assert.Nil(t, e.Private(), "private starts nil") {
		return
	}
	e.SetPrivate("payload")
	if !assert.Equal(t, "payload", e.Private(), "private round-trips") {
		return
	}

	e.SetLine(42)
	if !assert.Equal(t, 42, e.Line(), "line round-trips") {
		return
	}
}
