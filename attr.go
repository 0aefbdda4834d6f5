package argon

// Attribute is an element attribute. Its value is stored as a child
// text-node list, which supports mixed literal and entity-reference
// content. If the attribute is declared as type ID, id points back at
// its identity registry entry.
type Attribute struct {
	treeNode
	ns          *Namespace
	elem        *Element
	atype       AttributeType
	id          *ID
	defaultAttr bool
}

var _ Node = (*Attribute)(nil)

func newAttribute(name string, ns *Namespace) *Attribute {
	attr := &Attribute{
		ns: ns,
	}
	attr.name = name
	registerNode(attr)
	return attr
}

func (*Attribute) Type() NodeType {
	return AttributeNodeType
}

func (n *Attribute) Name() string {
	if n.ns == nil || n.ns.Prefix() == "" {
		return n.name
	}
	return n.ns.Prefix() + ":" + localPart(n.name)
}

func (n *Attribute) LocalName() string {
	return localPart(n.name)
}

// OwnerElement returns the element the attribute is set on, or nil.
func (n *Attribute) OwnerElement() *Element {
	return n.elem
}

func (n *Attribute) AddChild(cur Node) error {
	return addChild(n, cur)
}

func (n *Attribute) AddContent(b []byte) error {
	return addContent(n, b)
}

func (n *Attribute) AddSibling(cur Node) error {
	return addSibling(n, cur)
}

func (n *Attribute) Replace(cur Node) error {
	return replaceNode(n, cur)
}

func (n *Attribute) SetNextSibling(sibling Node) error {
	return setNextSibling(n, sibling)
}

func (n *Attribute) SetPrevSibling(sibling Node) error {
	return setPrevSibling(n, sibling)
}

func (n *Attribute) SetDefault(b bool) {
	n.defaultAttr = b
}

func (n *Attribute) IsDefault() bool {
	return n.defaultAttr
}

// AttrType returns the attribute's declared type, AttrCDATA when it has
// no declaration.
func (n *Attribute) AttrType() AttributeType {
	return n.atype
}

// Value concatenates the attribute's text-bearing children.
func (n *Attribute) Value() string {
	content, err := n.Content(nil)
	if err != nil {
		return ""
	}
	return string(content)
}

func (n *Attribute) Namespace() *Namespace {
	return n.ns
}

func (n *Attribute) SetNamespace(ns *Namespace) {
	n.ns = ns
}

func (n *Attribute) Prefix() string {
	return n.ns.Prefix()
}

func (n *Attribute) URI() string {
	return n.ns.URI()
}
