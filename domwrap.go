package argon

import (
	"fmt"

	"github.com/lestrrat-go/pdebug/v3"
	"github.com/pkg/errors"

	"github.com/lestrrat-go/argon/internal/debug"
)

// AcquireNamespaceFunc lets a host application supply or cache namespace
// objects during a wrapper operation. It is consulted after the
// destination ancestor chain fails to provide an equivalent declaration
// and before one is synthesized. Returning nil declines.
type AcquireNamespaceFunc func(ctxt *DOMWrapContext, n Node, prefix, uri string) *Namespace

// DOMWrapContext drives the cross-document transfer operations: adopt
// (move), clone (duplicate) and reconcile (in-place repair). The context
// holds only configuration; the namespace map each operation builds is
// scoped to that one call, so a context may be reused and operations are
// reentrant.
type DOMWrapContext struct {
	acquireNS AcquireNamespaceFunc
	adoptIDs  bool
}

func NewDOMWrapContext(options ...DOMWrapOption) *DOMWrapContext {
	ctxt := &DOMWrapContext{}
	for _, option := range options {
		switch option.Ident() {
		case identAcquireNamespace{}:
			ctxt.acquireNS = option.Value().(AcquireNamespaceFunc)
		case identAdoptIDs{}:
			ctxt.adoptIDs = option.Value().(bool)
		}
	}
	return ctxt
}

// transferable reports whether a node kind may be moved or cloned across
// documents. Documents, DTDs, declarations and bare attributes are not
// transferable subtree roots.
func transferable(n Node) bool {
	switch n.Type() {
	case ElementNodeType, TextNodeType, CDATASectionNodeType,
		CommentNodeType, ProcessingInstructionNodeType,
		EntityRefNodeType, DocumentFragNodeType:
		return true
	}
	return false
}

// ReconcileNamespaces repairs the subtree rooted at elem so that every
// namespace reference used inside it has a declaration visible from
// inside the subtree, declaring missing bindings at the scope of the
// element that uses them. Running it a second time produces no further
// change.
func (c *DOMWrapContext) ReconcileNamespaces(elem Node) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	if elem == nil {
		return errors.Wrap(ErrInvalidArgument, "nil element")
	}
	e, ok := elem.(*Element)
	if !ok {
		return errors.Wrap(ErrInvalidArgument, "reconcile requires an element")
	}

	m := &nsMap{}
	return c.reconcileSubtree(m, e)
}

func (c *DOMWrapContext) reconcileSubtree(m *nsMap, e *Element) error {
	mark := m.mark()
	// the element's own declarations are already correct where they are
	for _, ns := range e.nsDefs {
		m.record(ns, ns)
	}

	if e.ns != nil {
		dst, err := c.normalizeNamespace(m, e, e.ns, nil)
		if err != nil {
			return err
		}
		e.ns = dst
	}

	// attributes are processed after their owning element's namespace,
	// since their bindings may themselves need synthesis
	for _, attr := range e.Attributes(nil) {
		if attr.ns == nil {
			continue
		}
		dst, err := c.normalizeNamespace(m, e, attr.ns, nil)
		if err != nil {
			return err
		}
		attr.ns = dst
	}

	for chld := e.FirstChild(); chld != nil; chld = chld.NextSibling() {
		if ce, ok := chld.(*Element); ok {
			if err := c.reconcileSubtree(m, ce); err != nil {
				return err
			}
		}
	}
	m.release(mark)
	return nil
}

// AdoptNode moves the subtree rooted at node into destDoc, linking it
// under destParent when one is given. The subtree is moved by reference;
// afterwards every node, attribute and namespace reference in it is
// valid for the destination: owner documents are re-stamped, and
// namespace pointers are redirected to equivalent declarations reachable
// from the new position, synthesizing declarations where none exist.
// ID entries owned by adopted attributes are deleted from the source
// registry and, if the context was built WithAdoptIDs, re-registered in
// the destination with uniqueness re-validated.
//
// On failure the operation stops forward-only: nodes already moved or
// re-stamped stay that way, and the destination is left structurally
// consistent. There is no rollback.
func (c *DOMWrapContext) AdoptNode(node Node, destDoc *Document, destParent Node) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	if node == nil || destDoc == nil {
		return errors.Wrap(ErrInvalidArgument, "adopt requires a node and a destination document")
	}
	if !transferable(node) {
		return errors.Wrapf(ErrInvalidArgument, "node kind %d is not transferable", node.Type())
	}

	srcDoc := node.OwnerDocument()

	node.Unlink()
	if destParent != nil {
		if err := destParent.AddChild(node); err != nil {
			return err
		}
	}

	if srcDoc == destDoc {
		return nil
	}

	m := &nsMap{}
	return c.adoptSubtree(m, node, srcDoc, destDoc)
}

func (c *DOMWrapContext) adoptSubtree(m *nsMap, n Node, srcDoc, destDoc *Document) error {
	mark := m.mark()
	n.getTreeNode().doc = destDoc

	if e, ok := n.(*Element); ok {
		// declarations owned by the subtree travel with it; record them
		// so references to them are left alone
		for _, ns := range e.nsDefs {
			ns.context = destDoc
			m.record(ns, ns)
		}

		if e.ns != nil {
			dst, err := c.normalizeNamespace(m, e, e.ns, nil)
			if err != nil {
				return err
			}
			e.ns = dst
		}

		for _, attr := range e.Attributes(nil) {
			if err := c.adoptAttribute(m, e, attr, srcDoc, destDoc); err != nil {
				return err
			}
		}
	}

	for chld := n.FirstChild(); chld != nil; chld = chld.NextSibling() {
		if err := c.adoptSubtree(m, chld, srcDoc, destDoc); err != nil {
			return err
		}
	}
	m.release(mark)
	return nil
}

func (c *DOMWrapContext) adoptAttribute(m *nsMap, e *Element, attr *Attribute, srcDoc, destDoc *Document) error {
	attr.getTreeNode().doc = destDoc
	for chld := attr.FirstChild(); chld != nil; chld = chld.NextSibling() {
		setTreeDoc(chld, destDoc)
	}

	if attr.ns != nil {
		dst, err := c.normalizeNamespace(m, e, attr.ns, nil)
		if err != nil {
			return err
		}
		attr.ns = dst
	}

	switch attr.atype {
	case AttrID:
		value := attr.Value()
		if srcDoc != nil {
			srcDoc.RemoveID(attr)
		}
		if c.adoptIDs {
			if _, err := destDoc.AddID(attr, value); err != nil {
				return err
			}
		}
	case AttrIDRef, AttrIDRefs:
		if srcDoc != nil {
			srcDoc.RemoveRefs(attr)
		}
		if c.adoptIDs {
			destDoc.AddRef(attr, attr.Value())
		}
	}
	return nil
}

// CloneNode deep-duplicates the subtree rooted at node into destDoc,
// linking the duplicate under destParent when one is given, and applying
// the same namespace-redirection rules as AdoptNode. The source subtree
// and its document are never mutated.
func (c *DOMWrapContext) CloneNode(node Node, destDoc *Document, destParent Node, deep bool) (Node, error) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	if node == nil || destDoc == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "clone requires a node and a destination document")
	}
	if !transferable(node) {
		return nil, errors.Wrapf(ErrInvalidArgument, "node kind %d is not transferable", node.Type())
	}

	m := &nsMap{}
	return c.cloneTree(m, node, destDoc, destParent, deep)
}

func (c *DOMWrapContext) cloneTree(m *nsMap, n Node, destDoc *Document, destParent Node, deep bool) (Node, error) {
	switch v := n.(type) {
	case *Element:
		mark := m.mark()
		e := destDoc.CreateElement(v.name)
		e.line = v.line
		// link before resolving namespaces so the destination ancestor
		// chain is visible to the search
		if destParent != nil {
			if err := destParent.AddChild(e); err != nil {
				return nil, err
			}
		}

		for _, srcDef := range v.nsDefs {
			dup := NewNamespace(srcDef.prefix, srcDef.href)
			dup.context = destDoc
			e.nsDefs = append(e.nsDefs, dup)
			m.record(srcDef, dup)
		}

		if v.ns != nil {
			dst, err := c.normalizeNamespace(m, e, v.ns, nil)
			if err != nil {
				return nil, err
			}
			e.ns = dst
		}

		for _, attr := range v.Attributes(nil) {
			ac, err := copyAttribute(attr, destDoc)
			if err != nil {
				return nil, err
			}
			ac.parent = e
			ac.elem = e
			if attr.ns != nil {
				dst, err := c.normalizeNamespace(m, e, attr.ns, nil)
				if err != nil {
					return nil, err
				}
				ac.ns = dst
			}
			if err := e.attrs.Set(attrKey(ac.ns, ac.name), ac); err != nil {
				return nil, err
			}
		}

		if deep {
			for chld := v.FirstChild(); chld != nil; chld = chld.NextSibling() {
				if _, err := c.cloneTree(m, chld, destDoc, e, true); err != nil {
					return nil, err
				}
			}
		}
		m.release(mark)
		return e, nil

	case *DocumentFragment:
		f := destDoc.CreateDocumentFragment()
		if destParent != nil {
			if err := destParent.AddChild(f); err != nil {
				return nil, err
			}
		}
		if deep {
			for chld := v.FirstChild(); chld != nil; chld = chld.NextSibling() {
				if _, err := c.cloneTree(m, chld, destDoc, f, true); err != nil {
					return nil, err
				}
			}
		}
		return f, nil

	default:
		// remaining transferable kinds carry no namespace references
		clone, err := copyNode(n, destDoc, deep)
		if err != nil {
			return nil, err
		}
		if destParent != nil {
			if err := destParent.AddChild(clone); err != nil {
				return nil, err
			}
		}
		return clone, nil
	}
}

// RemoveNode unlinks node from its document, first pulling any namespace
// declarations the subtree depends on down into the subtree, so that it
// stays self-consistent while detached.
func (c *DOMWrapContext) RemoveNode(doc *Document, node Node) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	if node == nil {
		return errors.Wrap(ErrInvalidArgument, "nil node")
	}

	if e, ok := node.(*Element); ok {
		m := &nsMap{}
		if err := c.pullDownNamespaces(m, e, e); err != nil {
			return err
		}
	}
	node.Unlink()
	return nil
}

func (c *DOMWrapContext) pullDownNamespaces(m *nsMap, root, e *Element) error {
	mark := m.mark()
	for _, ns := range e.nsDefs {
		m.record(ns, ns)
	}

	if e.ns != nil {
		dst, err := c.normalizeNamespace(m, e, e.ns, root)
		if err != nil {
			return err
		}
		e.ns = dst
	}
	for _, attr := range e.Attributes(nil) {
		if attr.ns == nil {
			continue
		}
		dst, err := c.normalizeNamespace(m, e, attr.ns, root)
		if err != nil {
			return err
		}
		attr.ns = dst
	}

	for chld := e.FirstChild(); chld != nil; chld = chld.NextSibling() {
		if ce, ok := chld.(*Element); ok {
			if err := c.pullDownNamespaces(m, root, ce); err != nil {
				return err
			}
		}
	}
	m.release(mark)
	return nil
}

// normalizeNamespace maps src to a declaration usable at elem's scope.
// Resolution order: the per-operation map, the ancestor chain (bounded
// at boundary when non-nil), the caller-supplied acquisition callback,
// and finally a synthesized declaration at elem's own scope with a
// collision-free prefix.
func (c *DOMWrapContext) normalizeNamespace(m *nsMap, elem *Element, src *Namespace, boundary Node) (*Namespace, error) {
	if dst := m.lookup(src); dst != nil {
		return dst, nil
	}

	// the reserved xml prefix maps to the destination document's
	// implicit binding
	if src.prefix == XMLPrefix && src.href == XMLNamespaceURI {
		dst := xmlNamespace(elem.doc)
		m.record(src, dst)
		return dst, nil
	}

	if found := searchEquivalentFrom(elem, boundary, src.prefix, src.href); found != nil {
		m.record(src, found)
		return found, nil
	}

	if f := c.acquireNS; f != nil {
		if dst := f(c, elem, src.prefix, src.href); dst != nil {
			m.record(src, dst)
			return dst, nil
		}
	}

	dst, err := declareNormalized(elem, boundary, src.prefix, src.href)
	if err != nil {
		return nil, err
	}
	if debug.Enabled {
		debug.Printf("synthesized declaration %s -> %s on '%s'", dst.Prefix(), dst.URI(), elem.Name())
	}
	m.record(src, dst)
	return dst, nil
}

// searchEquivalentFrom looks for an in-scope declaration matching both
// prefix and URI, walking the ancestor chain from n. A declaration with
// the right prefix but a different URI shadows anything above it, so the
// search stops there. When boundary is non-nil the walk does not climb
// past it.
func searchEquivalentFrom(n, boundary Node, prefix, uri string) *Namespace {
	for cur := n; cur != nil; cur = cur.Parent() {
		if e, ok := cur.(*Element); ok {
			for _, ns := range e.nsDefs {
				if ns.prefix == prefix {
					if ns.href == uri {
						return ns
					}
					return nil
				}
			}
		}
		if boundary != nil && cur == boundary {
			break
		}
	}
	return nil
}

// resolvePrefixFrom returns the first declaration of prefix visible from
// n, honoring the same boundary rule.
func resolvePrefixFrom(n, boundary Node, prefix string) *Namespace {
	for cur := n; cur != nil; cur = cur.Parent() {
		if e, ok := cur.(*Element); ok {
			for _, ns := range e.nsDefs {
				if ns.prefix == prefix {
					return ns
				}
			}
		}
		if boundary != nil && cur == boundary {
			break
		}
	}
	return nil
}

// declareNormalized declares prefix→uri at elem's own scope. If the
// prefix is already bound to a different URI there, a numeric suffix is
// appended and retried until an unbound prefix is found.
func declareNormalized(elem *Element, boundary Node, prefix, uri string) (*Namespace, error) {
	base := prefix
	if base == "" {
		base = "ns"
	}
	candidate := prefix
	for counter := 1; ; counter++ {
		if resolvePrefixFrom(elem, boundary, candidate) == nil {
			break
		}
		candidate = fmt.Sprintf("%s_%d", base, counter)
	}
	return elem.DeclareNamespace(candidate, uri)
}
