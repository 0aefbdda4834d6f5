package argon

// EntityRef is a reference to a general entity, inserted verbatim by a
// producer that does not resolve entities into plain content.
type EntityRef struct {
	treeNode
}

var _ Node = (*EntityRef)(nil)

func NewEntityRef(name string) *EntityRef {
	ref := &EntityRef{}
	ref.name = name
	registerNode(ref)
	return ref
}

func (*EntityRef) Type() NodeType {
	return EntityRefNodeType
}

func (n *EntityRef) LocalName() string {
	return n.name
}

// Content resolves the referenced entity in the owner document and
// appends its replacement text. An unresolvable reference contributes
// nothing.
func (n *EntityRef) Content(dst []byte) ([]byte, error) {
	if doc := n.doc; doc != nil {
		if ent, ok := doc.GetEntity(n.name); ok {
			return append(dst, ent.ReplacementText()...), nil
		}
	}
	return dst, nil
}

func (n *EntityRef) AddChild(cur Node) error {
	return addChild(n, cur)
}

func (n *EntityRef) AddContent(b []byte) error {
	return addContent(n, b)
}

func (n *EntityRef) AddSibling(cur Node) error {
	return addSibling(n, cur)
}

func (n *EntityRef) Replace(cur Node) error {
	return replaceNode(n, cur)
}

func (n *EntityRef) SetNextSibling(sibling Node) error {
	return setNextSibling(n, sibling)
}

func (n *EntityRef) SetPrevSibling(sibling Node) error {
	return setPrevSibling(n, sibling)
}
