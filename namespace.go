package argon

const (
	// XMLNamespaceURI is the fixed namespace bound to the reserved "xml"
	// prefix. It resolves without a declaration.
	XMLNamespaceURI = "http://www.w3.org/XML/1998/namespace"
	XMLPrefix       = "xml"
)

// Namespace represents an XML namespace declaration. A namespace is
// owned by the namespace-definition list of the element that declares
// it; every other node referring to it holds a non-owning pointer. The
// context document is used only for lookup, never for ownership.
type Namespace struct {
	prefix  string
	href    string
	context *Document
}

// NewNamespace creates a namespace binding. An empty prefix denotes the
// default namespace.
func NewNamespace(prefix, uri string) *Namespace {
	return &Namespace{
		prefix: prefix,
		href:   uri,
	}
}

func (ns *Namespace) Prefix() string {
	if ns == nil {
		return ""
	}
	return ns.prefix
}

func (ns *Namespace) URI() string {
	if ns == nil {
		return ""
	}
	return ns.href
}

// SearchNamespace walks from n up through its parent links looking for a
// namespace declaration whose prefix equals the query. An empty prefix
// query matches the default namespace. The first match along the
// ancestor chain wins, so a closer declaration shadows a farther one
// with the same prefix. Returns nil (no match, not an error) if the root
// is reached without a hit. The reserved "xml" prefix always resolves.
func SearchNamespace(doc *Document, n Node, prefix string) *Namespace {
	if prefix == XMLPrefix {
		if doc == nil && n != nil {
			doc = n.OwnerDocument()
		}
		return xmlNamespace(doc)
	}

	for cur := n; cur != nil; cur = cur.Parent() {
		e, ok := cur.(*Element)
		if !ok {
			continue
		}
		for _, ns := range e.nsDefs {
			if ns.prefix == prefix {
				return ns
			}
		}
	}
	return nil
}

// SearchNamespaceByURI is the URI-keyed counterpart of SearchNamespace.
// When more than one declaration at a scope level carries the URI, the
// one declared first on the element wins.
func SearchNamespaceByURI(doc *Document, n Node, uri string) *Namespace {
	if uri == XMLNamespaceURI {
		if doc == nil && n != nil {
			doc = n.OwnerDocument()
		}
		return xmlNamespace(doc)
	}

	for cur := n; cur != nil; cur = cur.Parent() {
		e, ok := cur.(*Element)
		if !ok {
			continue
		}
		for _, ns := range e.nsDefs {
			if ns.href == uri {
				return ns
			}
		}
	}
	return nil
}

// xmlNamespace returns the implicit declaration for the reserved "xml"
// prefix. It is synthesized once per document; without a document a
// fresh binding is handed out.
func xmlNamespace(doc *Document) *Namespace {
	if doc == nil {
		return NewNamespace(XMLPrefix, XMLNamespaceURI)
	}
	if doc.xmlNs == nil {
		ns := NewNamespace(XMLPrefix, XMLNamespaceURI)
		ns.context = doc
		doc.xmlNs = ns
	}
	return doc.xmlNs
}
