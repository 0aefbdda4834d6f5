package argon

import (
	"errors"

	"github.com/lestrrat-go/argon/buf"
)

// Node is the common interface for all node kinds in the tree. The
// navigational fields shared by every kind live in treeNode; concrete
// types embed it and expose kind-specific payloads behind a Type() check.
type Node interface {
	// returns the treeNode (the part of the Node that handles the tree structure)
	getTreeNode() *treeNode

	AddChild(Node) error
	AddContent([]byte) error
	AddSibling(Node) error
	Replace(Node) error

	Type() NodeType

	// Content appends the content of the node to the provided byte slice and returns the result.
	// If dst is nil, a new slice is allocated.
	Content(dst []byte) ([]byte, error)

	FirstChild() Node
	LastChild() Node

	// LocalName returns the local name of the node.
	LocalName() string

	NextSibling() Node
	OwnerDocument() *Document
	Parent() Node
	PrevSibling() Node

	SetNextSibling(Node) error
	SetOwnerDocument(doc *Document) error
	SetParent(Node) error
	SetPrevSibling(Node) error

	// Unlink detaches the node from its parent and siblings in O(1).
	// It does not free the node.
	Unlink()

	Line() int
	SetLine(int)
	Private() interface{}
	SetPrivate(interface{})
}

// treeNode is the part of a Node that handles the tree structure.
// firstChild/lastChild are the only owning edges; parent, prev, next and
// doc are back-references.
type treeNode struct {
	name       string
	firstChild Node
	lastChild  Node
	parent     Node
	next       Node
	prev       Node
	doc        *Document
	line       int
	private    interface{}
}

func (n *treeNode) getTreeNode() *treeNode {
	return n
}

func (n *treeNode) OwnerDocument() *Document {
	return n.doc
}

func (n *treeNode) FirstChild() Node {
	return n.firstChild
}

func (n *treeNode) LastChild() Node {
	return n.lastChild
}

func (n *treeNode) Parent() Node {
	return n.parent
}

func (n *treeNode) NextSibling() Node {
	return n.next
}

func (n *treeNode) PrevSibling() Node {
	return n.prev
}

func (n *treeNode) Line() int {
	return n.line
}

func (n *treeNode) SetLine(line int) {
	n.line = line
}

func (n *treeNode) Private() interface{} {
	return n.private
}

func (n *treeNode) SetPrivate(v interface{}) {
	n.private = v
}

func (n *treeNode) Content(dst []byte) ([]byte, error) {
	result := dst
	for e := n.firstChild; e != nil; e = e.NextSibling() {
		var err error
		result, err = e.Content(result)
		if err != nil {
			return result, err
		}
	}
	return result, nil
}

func (n *treeNode) SetOwnerDocument(doc *Document) error {
	if n == nil {
		return errors.New("cannot set owner document to nil node")
	}
	if doc == nil {
		return errors.New("cannot set nil document")
	}

	n.doc = doc
	return nil
}

func (n *treeNode) SetParent(p Node) error {
	if n == nil {
		return errors.New("cannot set parent to nil node")
	}
	if p == nil {
		return errors.New("cannot set nil parent")
	}

	n.parent = p
	return nil
}

// Unlink patches the neighbor pointers around n and clears n's own
// parent/sibling pointers. Calling it on an already-detached node is a
// no-op. The comparison against the parent's child pointers goes through
// getTreeNode so that interface identity does not matter.
func (n *treeNode) Unlink() {
	if p := n.parent; p != nil {
		pt := p.getTreeNode()
		if fc := pt.firstChild; fc != nil && fc.getTreeNode() == n {
			pt.firstChild = n.next
		}
		if lc := pt.lastChild; lc != nil && lc.getTreeNode() == n {
			pt.lastChild = n.prev
		}
	}
	if next := n.next; next != nil {
		next.getTreeNode().prev = n.prev
	}
	if prev := n.prev; prev != nil {
		prev.getTreeNode().next = n.next
	}
	n.parent = nil
	n.next = nil
	n.prev = nil
}

// addSibling appends sibling at the end of n's sibling list. The sibling
// is implicitly unlinked from any prior position first.
func addSibling(n, sibling Node) error {
	if n == nil {
		return errors.New("cannot add sibling to nil node")
	}
	if sibling == nil {
		return errors.New("cannot add nil sibling")
	}
	if n.getTreeNode() == sibling.getTreeNode() {
		return ErrInvalidArgument
	}

	sibling.Unlink()

	l := n
	lt := n.getTreeNode()
	st := sibling.getTreeNode()

	for lt.next != nil {
		l = lt.next
		lt = l.getTreeNode()
	}

	lt.next = sibling
	st.prev = l
	if lt.parent != nil {
		st.parent = lt.parent
		lt.parent.getTreeNode().lastChild = sibling
	}
	return nil
}

// addChild appends child as the last child of parent. The child is
// implicitly unlinked from any prior position first. The child's owner
// document is NOT rewritten; moving content between documents is the
// DOM wrapper's job.
func addChild(parent, child Node) error {
	if parent == nil {
		return errors.New("cannot add child to nil node")
	}
	if child == nil {
		return errors.New("cannot add nil child")
	}

	pt := parent.getTreeNode()
	ct := child.getTreeNode()
	if pt == ct {
		return ErrInvalidArgument
	}

	l := pt.lastChild
	if l == nil { // No children, set firstChild to cur, and bail out
		child.Unlink()
		pt.firstChild = child
		pt.lastChild = child
		ct.parent = parent
		return nil
	}
	if l.getTreeNode() == ct {
		// already the last child
		return nil
	}

	// addSibling handles unlinking, setting the parent, and the
	// lastChild pointer
	return addSibling(l, child)
}

// AddChildList appends the whole sibling list headed by first (first and
// every node reachable through its next pointers) as children of parent.
// The list must not be linked into a parent already.
func AddChildList(parent, first Node) error {
	if parent == nil || first == nil {
		return ErrInvalidArgument
	}
	cur := first
	for cur != nil {
		next := cur.NextSibling()
		if err := addChild(parent, cur); err != nil {
			return err
		}
		cur = next
	}
	return nil
}

// SetContent replaces the node's content. Kinds that hold their content
// directly (text, CDATA, comment, processing instruction) overwrite it
// in place. Container kinds (element, attribute, document fragment) free
// their existing child list first, so deregistration hooks fire and
// identity registry entries are removed, then install the new content as
// a single text child.
func SetContent(n Node, content []byte) error {
	if n == nil {
		return ErrInvalidArgument
	}

	switch v := n.(type) {
	case *Text:
		v.content = append([]byte(nil), content...)
	case *CDATASection:
		v.content = append([]byte(nil), content...)
	case *Comment:
		v.content = append([]byte(nil), content...)
	case *ProcessingInstructionNode:
		v.data = string(content)
	case *Element, *Attribute, *DocumentFragment:
		t := n.getTreeNode()
		if fc := t.firstChild; fc != nil {
			t.firstChild = nil
			t.lastChild = nil
			FreeNodeList(fc)
		}
		if len(content) == 0 {
			return nil
		}
		return n.AddContent(content)
	default:
		return ErrInvalidOperation
	}
	return nil
}

func addContent(n Node, content []byte) error {
	t := NewText(content)
	if doc := n.OwnerDocument(); doc != nil {
		t.doc = doc
	}
	return n.AddChild(t)
}

// replaceNode puts cur in n's position in the tree. n ends up fully
// detached; cur is implicitly unlinked from any prior position first.
func replaceNode(n Node, cur Node) error {
	if n == nil || cur == nil {
		return ErrInvalidArgument
	}
	if n == cur {
		return nil
	}

	cur.Unlink()

	nt := n.getTreeNode()
	ct := cur.getTreeNode()

	if next := nt.next; next != nil {
		ct.next = next             // cur.next = n.next
		next.getTreeNode().prev = cur // n.next.prev = cur
	}

	if prev := nt.prev; prev != nil {
		ct.prev = prev             // cur.prev = n.prev
		prev.getTreeNode().next = cur // n.prev.next = cur
	}

	if parent := nt.parent; parent != nil {
		pt := parent.getTreeNode()
		if fc := pt.firstChild; fc != nil && fc.getTreeNode() == nt {
			pt.firstChild = cur
		}
		if lc := pt.lastChild; lc != nil && lc.getTreeNode() == nt {
			pt.lastChild = cur
		}
		ct.parent = parent
	}

	nt.parent = nil
	nt.next = nil
	nt.prev = nil
	return nil
}

// InsertAfter inserts cur as the immediate next sibling of ref. cur is
// implicitly unlinked from any prior position first.
func InsertAfter(ref, cur Node) error {
	if ref == nil || cur == nil || ref == cur {
		return ErrInvalidArgument
	}

	cur.Unlink()

	rt := ref.getTreeNode()
	ct := cur.getTreeNode()

	ct.parent = rt.parent
	ct.prev = ref
	ct.next = rt.next
	if next := rt.next; next != nil {
		next.getTreeNode().prev = cur
	}
	rt.next = cur

	if parent := rt.parent; parent != nil {
		pt := parent.getTreeNode()
		if lc := pt.lastChild; lc != nil && lc.getTreeNode() == rt {
			pt.lastChild = cur
		}
	}
	return nil
}

// InsertBefore inserts cur as the immediate previous sibling of ref. cur
// is implicitly unlinked from any prior position first.
func InsertBefore(ref, cur Node) error {
	if ref == nil || cur == nil || ref == cur {
		return ErrInvalidArgument
	}

	cur.Unlink()

	rt := ref.getTreeNode()
	ct := cur.getTreeNode()

	ct.parent = rt.parent
	ct.next = ref
	ct.prev = rt.prev
	if prev := rt.prev; prev != nil {
		prev.getTreeNode().next = cur
	}
	rt.prev = cur

	if parent := rt.parent; parent != nil {
		pt := parent.getTreeNode()
		if fc := pt.firstChild; fc != nil && fc.getTreeNode() == rt {
			pt.firstChild = cur
		}
	}
	return nil
}

func setNextSibling(n, sibling Node) error {
	if n == nil {
		return errors.New("cannot set next sibling to nil node")
	}
	if sibling == nil {
		return errors.New("cannot set nil sibling")
	}

	n.getTreeNode().next = sibling
	sibling.getTreeNode().prev = n

	if parent := n.Parent(); parent != nil {
		sibling.getTreeNode().parent = parent
		if parent.getTreeNode().lastChild == n {
			parent.getTreeNode().lastChild = sibling
		}
	}
	return nil
}

func setPrevSibling(n, sibling Node) error {
	if n == nil {
		return errors.New("cannot set previous sibling to nil node")
	}
	if sibling == nil {
		return errors.New("cannot set nil sibling")
	}

	n.getTreeNode().prev = sibling
	sibling.getTreeNode().next = n

	if parent := n.Parent(); parent != nil {
		sibling.getTreeNode().parent = parent
		if parent.getTreeNode().firstChild == n {
			parent.getTreeNode().firstChild = sibling
		}
	}
	return nil
}

// setTreeDoc stamps doc on n and everything below it, including element
// attributes and their value children.
func setTreeDoc(n Node, doc *Document) {
	if n == nil || doc == nil {
		return
	}
	n.getTreeNode().doc = doc
	if e, ok := n.(*Element); ok {
		for _, attr := range e.Attributes(nil) {
			setTreeDoc(attr, doc)
		}
		for _, ns := range e.nsDefs {
			ns.context = doc
		}
	}
	for chld := n.FirstChild(); chld != nil; chld = chld.NextSibling() {
		setTreeDoc(chld, doc)
	}
}

// MergeText concatenates the content of second into first and frees
// second. Both nodes must be of the same text-bearing kind (two text
// nodes, or two CDATA sections) and adjacent siblings in that order.
// Merging is only ever performed through this call, never implicitly
// during linking.
func MergeText(first, second Node) error {
	if first == nil || second == nil {
		return ErrInvalidArgument
	}
	switch first.Type() {
	case TextNodeType, CDATASectionNodeType:
	default:
		return ErrInvalidOperation
	}
	if first.Type() != second.Type() {
		return ErrInvalidOperation
	}
	if first.NextSibling() != second {
		return ErrInvalidOperation
	}

	content, err := second.Content(nil)
	if err != nil {
		return err
	}
	if err := first.AddContent(content); err != nil {
		return err
	}
	Free(second)
	return nil
}

// ContentTo appends the node's content to b, subject to b's allocation
// scheme. A bounded buffer propagates buf.ErrCapacityExceeded.
func ContentTo(n Node, b *buf.Buffer) error {
	if n == nil || b == nil {
		return ErrInvalidArgument
	}
	content, err := n.Content(nil)
	if err != nil {
		return err
	}
	return b.Add(content)
}

type WalkFunc func(Node) error

// Walk visits n and its descendants depth-first, parent before children,
// preserving sibling order.
func Walk(n Node, f WalkFunc) error {
	if n == nil {
		return errors.New("nil node")
	}

	if err := f(n); err != nil {
		return err
	}
	for chld := n.FirstChild(); chld != nil; chld = chld.NextSibling() {
		if err := Walk(chld, f); err != nil {
			return err
		}
	}
	return nil
}
