package argon

// Text represents a text node in an XML document
type Text struct {
	treeNode
	content []byte
}

var _ Node = (*Text)(nil)

func NewText(content []byte) *Text {
	t := &Text{
		content: content,
	}
	registerNode(t)
	return t
}

func (*Text) Type() NodeType {
	return TextNodeType
}

func (n *Text) LocalName() string {
	return "#text"
}

func (n *Text) Content(dst []byte) ([]byte, error) {
	return append(dst, n.content...), nil
}

func (n *Text) AddChild(child Node) error {
	// Text nodes can concatenate with other text nodes
	if child.Type() == TextNodeType {
		childContent, err := child.Content(nil)
		if err != nil {
			return err
		}
		return n.AddContent(childContent)
	}
	return ErrInvalidOperation
}

func (n *Text) AddContent(b []byte) error {
	n.content = append(n.content, b...)
	return nil
}

func (n *Text) AddSibling(sibling Node) error {
	return addSibling(n, sibling)
}

func (n *Text) Replace(cur Node) error {
	return replaceNode(n, cur)
}

func (n *Text) SetNextSibling(sibling Node) error {
	return setNextSibling(n, sibling)
}

func (n *Text) SetPrevSibling(sibling Node) error {
	return setPrevSibling(n, sibling)
}

// CDATASection is a CDATA block. It behaves like a text node but keeps
// its own kind so that serializers can preserve the CDATA form, and so
// MergeText does not mix it with plain text.
type CDATASection struct {
	treeNode
	content []byte
}

var _ Node = (*CDATASection)(nil)

func NewCDATASection(content []byte) *CDATASection {
	c := &CDATASection{
		content: content,
	}
	registerNode(c)
	return c
}

func (*CDATASection) Type() NodeType {
	return CDATASectionNodeType
}

func (n *CDATASection) LocalName() string {
	return "#cdata-section"
}

func (n *CDATASection) Content(dst []byte) ([]byte, error) {
	return append(dst, n.content...), nil
}

func (n *CDATASection) AddChild(child Node) error {
	if child.Type() == CDATASectionNodeType {
		childContent, err := child.Content(nil)
		if err != nil {
			return err
		}
		return n.AddContent(childContent)
	}
	return ErrInvalidOperation
}

func (n *CDATASection) AddContent(b []byte) error {
	n.content = append(n.content, b...)
	return nil
}

func (n *CDATASection) AddSibling(sibling Node) error {
	return addSibling(n, sibling)
}

func (n *CDATASection) Replace(cur Node) error {
	return replaceNode(n, cur)
}

func (n *CDATASection) SetNextSibling(sibling Node) error {
	return setNextSibling(n, sibling)
}

func (n *CDATASection) SetPrevSibling(sibling Node) error {
	return setPrevSibling(n, sibling)
}
