package argon

import (
	json "github.com/goccy/go-json"
)

// NodeSnapshot is a structural view of a node: kind, names, namespace
// prefix/URI pairs and content, but no document back-references and no
// namespace object identity. Two isomorphic trees produce equal
// snapshots even when they live in different documents.
type NodeSnapshot struct {
	Kind       string          `json:"kind"`
	Name       string          `json:"name,omitempty"`
	Prefix     string          `json:"prefix,omitempty"`
	URI        string          `json:"uri,omitempty"`
	Content    string          `json:"content,omitempty"`
	Attributes []*NodeSnapshot `json:"attributes,omitempty"`
	Children   []*NodeSnapshot `json:"children,omitempty"`
}

// Snapshot serializes the structural view of n as JSON. It is meant for
// debugging and for structural comparison in tests; writing a tree back
// to XML text is the serializer's job, not this package's.
func Snapshot(n Node) ([]byte, error) {
	s, err := snapshotNode(n)
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

func snapshotNode(n Node) (*NodeSnapshot, error) {
	if n == nil {
		return nil, ErrInvalidArgument
	}

	s := &NodeSnapshot{
		Kind: kindName(n.Type()),
	}

	switch v := n.(type) {
	case *Element:
		s.Name = v.LocalName()
		s.Prefix = v.Prefix()
		s.URI = v.URI()
		for _, attr := range v.Attributes(nil) {
			as := &NodeSnapshot{
				Kind:    kindName(AttributeNodeType),
				Name:    attr.LocalName(),
				Prefix:  attr.Prefix(),
				URI:     attr.URI(),
				Content: attr.Value(),
			}
			s.Attributes = append(s.Attributes, as)
		}
	case *Text, *CDATASection, *Comment:
		content, err := n.Content(nil)
		if err != nil {
			return nil, err
		}
		s.Content = string(content)
	case *ProcessingInstructionNode:
		s.Name = v.Target()
		s.Content = v.Data()
	default:
		s.Name = n.LocalName()
	}

	if _, ok := n.(*Element); ok || n.Type() == DocumentNodeType || n.Type() == DocumentFragNodeType {
		for chld := n.FirstChild(); chld != nil; chld = chld.NextSibling() {
			cs, err := snapshotNode(chld)
			if err != nil {
				return nil, err
			}
			s.Children = append(s.Children, cs)
		}
	}
	return s, nil
}

func kindName(typ NodeType) string {
	switch typ {
	case ElementNodeType:
		return "element"
	case AttributeNodeType:
		return "attribute"
	case TextNodeType:
		return "text"
	case CDATASectionNodeType:
		return "cdata"
	case EntityRefNodeType:
		return "entity-ref"
	case ProcessingInstructionNodeType:
		return "pi"
	case CommentNodeType:
		return "comment"
	case DocumentNodeType:
		return "document"
	case DocumentFragNodeType:
		return "fragment"
	case DTDNodeType:
		return "dtd"
	default:
		return "node"
	}
}
