package argon

import (
	"errors"

	"github.com/lestrrat-go/argon/internal/orderedmap"
)

type Element struct {
	treeNode
	ns     *Namespace
	nsDefs []*Namespace
	attrs  *orderedmap.Map[string, *Attribute]
}

var _ Node = (*Element)(nil)

// NewElement creates a new Element with the given name. Please note
// that elements created this way are orphan nodes. You normally want to
// create an element using the Document.CreateElement method, which will
// automatically set the owner document for the element.
func NewElement(name string) *Element {
	e := &Element{
		attrs: orderedmap.New[string, *Attribute](),
	}
	e.name = name
	registerNode(e)
	return e
}

func (*Element) Type() NodeType {
	return ElementNodeType
}

func (e *Element) LocalName() string {
	return e.name
}

func (e *Element) Name() string {
	if e.ns == nil || e.ns.Prefix() == "" {
		return e.name
	}
	return e.ns.Prefix() + ":" + e.name
}

func (e *Element) Prefix() string {
	return e.ns.Prefix()
}

func (e *Element) URI() string {
	return e.ns.URI()
}

func (e *Element) AddChild(child Node) error {
	return addChild(e, child)
}

func (e *Element) AddContent(b []byte) error {
	return addContent(e, b)
}

func (e *Element) AddSibling(sibling Node) error {
	return addSibling(e, sibling)
}

func (e *Element) Replace(cur Node) error {
	return replaceNode(e, cur)
}

func (e *Element) SetNextSibling(sibling Node) error {
	return setNextSibling(e, sibling)
}

func (e *Element) SetPrevSibling(sibling Node) error {
	return setPrevSibling(e, sibling)
}

// Namespace returns the namespace binding the element's own name is in,
// or nil.
func (e *Element) Namespace() *Namespace {
	return e.ns
}

// SetNamespace points the element's name at the given binding. The
// element does not take ownership; the binding stays owned by the
// declaring element's namespace-definition list.
func (e *Element) SetNamespace(ns *Namespace) {
	e.ns = ns
}

// Namespaces returns the element's own namespace-definition list, in
// declaration order.
func (e *Element) Namespaces() []*Namespace {
	return e.nsDefs
}

// DeclareNamespace declares a prefix/URI binding at this element's
// scope, shadowing any declaration of the same prefix farther up the
// ancestor chain. Declaring a prefix the element itself already declares
// is an error.
func (e *Element) DeclareNamespace(prefix, uri string) (*Namespace, error) {
	for _, ns := range e.nsDefs {
		if ns.prefix == prefix {
			return nil, ErrDuplicateNsDecl
		}
	}
	ns := NewNamespace(prefix, uri)
	ns.context = e.doc
	e.nsDefs = append(e.nsDefs, ns)
	return ns, nil
}

// SetAttribute sets an attribute on the element. Setting an attribute
// that already exists is an error. If the attribute's declared type is
// ID the value is registered in the owning document's identity registry;
// a duplicate value is reported as ErrDuplicateID, with the attribute
// left in place (the registry keeps its previous entry).
func (e *Element) SetAttribute(name, value string) error {
	return e.setAttribute(nil, name, value)
}

// SetAttributeNS is SetAttribute with an explicit namespace binding for
// the attribute name.
func (e *Element) SetAttributeNS(ns *Namespace, name, value string) error {
	return e.setAttribute(ns, name, value)
}

func (e *Element) setAttribute(ns *Namespace, name, value string) error {
	var attr *Attribute
	if doc := e.doc; doc != nil {
		attr = doc.CreateAttributeNS(ns, name, value)
	} else {
		attr = newAttribute(name, ns)
		_ = attr.AddContent([]byte(value))
	}
	attr.parent = e
	attr.elem = e

	if err := e.attrs.Set(attrKey(ns, name), attr); err != nil {
		if errors.Is(err, orderedmap.ErrDuplicateEntry) {
			return ErrDuplicateAttribute
		}
		return err
	}

	return e.registerAttribute(attr, value)
}

// registerAttribute wires the attribute into the identity registry
// according to its declared type. The attribute is already set on the
// element at this point; registry failures are reported but not rolled
// back.
func (e *Element) registerAttribute(attr *Attribute, value string) error {
	doc := e.doc
	if doc == nil {
		return nil
	}
	switch attr.atype = declaredAttrType(doc, e, attr); attr.atype {
	case AttrID:
		if _, err := doc.AddID(attr, value); err != nil {
			return err
		}
	case AttrIDRef, AttrIDRefs:
		doc.AddRef(attr, value)
	}
	return nil
}

// GetAttribute returns the attribute with the given qualified name.
func (e *Element) GetAttribute(name string) (*Attribute, bool) {
	return e.attrs.Get(name)
}

// GetAttributeValue returns the string value of the named attribute.
func (e *Element) GetAttributeValue(name string) (string, bool) {
	attr, ok := e.attrs.Get(name)
	if !ok {
		return "", false
	}
	return attr.Value(), true
}

// RemoveAttribute removes and frees the named attribute. If the
// attribute owns an identity registry entry, that entry is deleted.
func (e *Element) RemoveAttribute(name string) error {
	attr, ok := e.attrs.Get(name)
	if !ok {
		return ErrAttributeNotFound
	}
	e.attrs.Delete(name)
	Free(attr)
	return nil
}

// RenameAttribute changes the name of an existing attribute. Since the
// declared type is keyed by name, the old identity registry entry (if
// any) is deleted and the attribute re-registered under the new name.
func (e *Element) RenameAttribute(oldName, newName string) error {
	attr, ok := e.attrs.Get(oldName)
	if !ok {
		return ErrAttributeNotFound
	}
	newKey := attrKey(attr.ns, newName)
	if _, exists := e.attrs.Get(newKey); exists {
		return ErrDuplicateAttribute
	}

	if doc := e.doc; doc != nil {
		doc.RemoveID(attr)
		doc.RemoveRefs(attr)
	}
	e.attrs.Delete(oldName)
	attr.name = newName
	if err := e.attrs.Set(newKey, attr); err != nil {
		return err
	}
	return e.registerAttribute(attr, attr.Value())
}

// Attributes populates the given slice with the attributes
// of the element in document order. If the slice is nil, a new slice is
// allocated.
func (e *Element) Attributes(dst []*Attribute) []*Attribute {
	if dst == nil {
		dst = make([]*Attribute, 0, e.attrs.Len())
	} else {
		dst = dst[:0]
	}
	for _, attr := range e.attrs.Range() {
		dst = append(dst, attr)
	}
	return dst
}

func attrKey(ns *Namespace, name string) string {
	if p := ns.Prefix(); p != "" {
		return p + ":" + name
	}
	return name
}

func localPart(name string) string {
	for i := 0; i < len(name); i++ {
		if name[i] == ':' {
			return name[i+1:]
		}
	}
	return name
}
