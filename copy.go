package argon

// CopyNode duplicates n within its own document. With deep set, the
// whole subtree is duplicated. An element's own namespace declarations
// are duplicated with it, so each declaration list keeps a single owner;
// references to declarations made elsewhere point at the same namespace
// objects as the source, which stay in scope within a single document.
func CopyNode(n Node, deep bool) (Node, error) {
	if n == nil {
		return nil, ErrInvalidArgument
	}
	return copyNode(n, n.OwnerDocument(), deep)
}

// DocCopyNode duplicates n, stamping doc as the owner of every node in
// the copy. Namespace references are carried over as-is and are NOT
// rewritten against the target document's declarations; when
// cross-document correctness is required, use DOMWrapContext.CloneNode,
// which applies the full namespace-redirection rules.
func DocCopyNode(n Node, doc *Document, deep bool) (Node, error) {
	if n == nil || doc == nil {
		return nil, ErrInvalidArgument
	}
	return copyNode(n, doc, deep)
}

func copyNode(n Node, doc *Document, deep bool) (Node, error) {
	var clone Node

	switch v := n.(type) {
	case *Element:
		e := NewElement(v.name)
		e.doc = doc
		e.ns = v.ns
		// the element's own declarations are duplicated so the copy owns
		// its declaration list; bindings that pointed into that list are
		// redirected to the duplicates
		for _, srcDef := range v.nsDefs {
			dup := NewNamespace(srcDef.prefix, srcDef.href)
			dup.context = doc
			e.nsDefs = append(e.nsDefs, dup)
			if v.ns == srcDef {
				e.ns = dup
			}
		}
		for _, attr := range v.Attributes(nil) {
			ac, err := copyAttribute(attr, doc)
			if err != nil {
				return nil, err
			}
			ac.parent = e
			ac.elem = e
			for i, srcDef := range v.nsDefs {
				if ac.ns == srcDef {
					ac.ns = e.nsDefs[i]
				}
			}
			if err := e.attrs.Set(attrKey(ac.ns, ac.name), ac); err != nil {
				return nil, err
			}
		}
		clone = e
	case *Text:
		t := NewText(append([]byte(nil), v.content...))
		t.doc = doc
		clone = t
	case *CDATASection:
		c := NewCDATASection(append([]byte(nil), v.content...))
		c.doc = doc
		clone = c
	case *Comment:
		c := NewComment(append([]byte(nil), v.content...))
		c.doc = doc
		clone = c
	case *ProcessingInstructionNode:
		pi := NewProcessingInstruction(v.target, v.data)
		pi.doc = doc
		clone = pi
	case *EntityRef:
		ref := NewEntityRef(v.name)
		ref.doc = doc
		clone = ref
	case *Attribute:
		ac, err := copyAttribute(v, doc)
		if err != nil {
			return nil, err
		}
		return ac, nil
	case *DocumentFragment:
		f := NewDocumentFragment()
		f.doc = doc
		clone = f
	default:
		return nil, ErrInvalidArgument
	}

	clone.SetLine(n.Line())

	if deep {
		for chld := n.FirstChild(); chld != nil; chld = chld.NextSibling() {
			cc, err := copyNode(chld, doc, true)
			if err != nil {
				return nil, err
			}
			if err := clone.AddChild(cc); err != nil {
				return nil, err
			}
		}
	}
	return clone, nil
}

// copyAttribute duplicates an attribute and its value children. Identity
// registry entries are not copied: registering the duplicate value would
// violate document-wide uniqueness, so registration is left to whoever
// links the copy into a tree.
func copyAttribute(attr *Attribute, doc *Document) (*Attribute, error) {
	ac := newAttribute(attr.name, attr.ns)
	ac.doc = doc
	ac.atype = attr.atype
	ac.defaultAttr = attr.defaultAttr
	ac.line = attr.line
	for chld := attr.FirstChild(); chld != nil; chld = chld.NextSibling() {
		cc, err := copyNode(chld, doc, true)
		if err != nil {
			return nil, err
		}
		if err := ac.AddChild(cc); err != nil {
			return nil, err
		}
	}
	return ac, nil
}
