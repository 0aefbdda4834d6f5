package argon

import (
	"github.com/lestrrat-go/pdebug/v3"

	"github.com/lestrrat-go/argon/internal/debug"
	"github.com/lestrrat-go/argon/internal/stack"
)

// Free unlinks n and tears down its whole subtree. The deregistration
// hook is invoked once per freed node. Attributes that own identity
// registry entries have those entries removed. Partially constructed
// nodes (nil children, missing maps) are tolerated.
func Free(n Node) {
	if n == nil {
		return
	}
	n.Unlink()
	freeSubtree(n)
}

// FreeNodeList frees n and every sibling reachable through its next
// pointers, along with their subtrees.
func FreeNodeList(n Node) {
	for cur := n; cur != nil; {
		next := cur.NextSibling()
		cur.Unlink()
		freeSubtree(cur)
		cur = next
	}
}

// FreeDocument tears down the document's entire node forest, its DTD
// declaration tables and its identity registry.
func FreeDocument(d *Document) {
	if d == nil {
		return
	}
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	FreeNodeList(d.firstChild)
	d.firstChild = nil
	d.lastChild = nil

	if dtd := d.intSubset; dtd != nil {
		d.intSubset = nil
		freeDTD(dtd)
	}
	if dtd := d.extSubset; dtd != nil {
		d.extSubset = nil
		freeDTD(dtd)
	}

	d.ids = nil
	d.refs = nil
	deregisterNode(d)
}

// freeSubtree walks the subtree iteratively; recursion is avoided so
// teardown does not depend on document depth. Sibling links are cleared
// before the deregistration hook can observe a node, so the hook never
// sees a dangling pointer into freed structure.
func freeSubtree(root Node) {
	var pending stack.Stack[Node]
	pending.Push(root)

	for {
		n, ok := pending.Pop()
		if !ok {
			break
		}

		tn := n.getTreeNode()
		for chld := tn.firstChild; chld != nil; {
			ct := chld.getTreeNode()
			next := ct.next
			ct.parent = nil
			ct.prev = nil
			ct.next = nil
			pending.Push(chld)
			chld = next
		}
		tn.firstChild = nil
		tn.lastChild = nil

		if debug.Enabled {
			debug.Printf("freeing '%s' node", n.LocalName())
		}

		switch v := n.(type) {
		case *Element:
			if v.attrs != nil {
				for _, attr := range v.attrs.Range() {
					pending.Push(attr)
				}
				v.attrs = nil
			}
			v.nsDefs = nil
			v.ns = nil
		case *Attribute:
			if doc := v.doc; doc != nil {
				doc.RemoveID(v)
				doc.RemoveRefs(v)
			}
			v.elem = nil
			v.ns = nil
		}

		deregisterNode(n)
	}
}

func freeDTD(dtd *DTD) {
	for _, decl := range dtd.elements {
		deregisterNode(decl)
	}
	for _, decl := range dtd.attributes.Range() {
		deregisterNode(decl)
	}
	for _, n := range dtd.notations {
		deregisterNode(n)
	}
	for _, ent := range dtd.entities {
		deregisterNode(ent)
	}
	for _, ent := range dtd.pentities {
		deregisterNode(ent)
	}
	dtd.elements = nil
	dtd.attributes = nil
	dtd.notations = nil
	dtd.entities = nil
	dtd.pentities = nil
	deregisterNode(dtd)
}
