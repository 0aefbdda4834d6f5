package argon

// DocumentFragment is a parentless container for a list of sibling
// nodes. Linking a fragment into a tree moves its children, not the
// fragment itself; that transfer is done by the caller via AddChildList
// or the DOM wrapper.
type DocumentFragment struct {
	treeNode
}

var _ Node = (*DocumentFragment)(nil)

func NewDocumentFragment() *DocumentFragment {
	f := &DocumentFragment{}
	registerNode(f)
	return f
}

func (*DocumentFragment) Type() NodeType {
	return DocumentFragNodeType
}

func (*DocumentFragment) LocalName() string {
	return "#document-fragment"
}

func (f *DocumentFragment) AddChild(cur Node) error {
	return addChild(f, cur)
}

func (f *DocumentFragment) AddContent(b []byte) error {
	return addContent(f, b)
}

func (f *DocumentFragment) AddSibling(Node) error {
	return ErrInvalidOperation
}

func (f *DocumentFragment) Replace(Node) error {
	return ErrInvalidOperation
}

func (f *DocumentFragment) SetNextSibling(Node) error {
	return ErrInvalidOperation
}

func (f *DocumentFragment) SetPrevSibling(Node) error {
	return ErrInvalidOperation
}
