package argon

import (
	"errors"
	"strings"
)

// ElementContentType represents the type of a content-model node
type ElementContentType int

const (
	UndefinedElementContent ElementContentType = iota
	PCDATAElementContent
	ElementElementContent
	SeqElementContent
	OrElementContent
)

// ElementContentOccur represents content occurrence
type ElementContentOccur int

const (
	OnceElementContent ElementContentOccur = iota
	OptElementContent
	MultElementContent
	PlusElementContent
)

// ElementContent is one node of a compiled content model: a binary tree
// of sequence/choice nodes over element names and PCDATA, each carrying
// an occurrence marker.
type ElementContent struct {
	ctype  ElementContentType
	occur  ElementContentOccur
	name   string
	prefix string
	c1     *ElementContent
	c2     *ElementContent
	parent *ElementContent
}

// NewElementContent creates a content-model node. Element nodes must
// carry a (possibly prefixed) name; PCDATA, sequence and choice nodes
// must not.
func NewElementContent(name string, ctype ElementContentType) (*ElementContent, error) {
	var prefix string
	local := name
	switch ctype {
	case ElementElementContent:
		if name == "" {
			return nil, errors.New("element content node must have a name")
		}
		if i := strings.IndexByte(name, ':'); i > -1 {
			prefix = name[:i]
			local = name[i+1:]
		}
	case PCDATAElementContent, SeqElementContent, OrElementContent:
		if name != "" {
			return nil, errors.New("content node must not have a name")
		}
	default:
		return nil, errors.New("invalid element content type")
	}

	return &ElementContent{
		ctype:  ctype,
		occur:  OnceElementContent,
		name:   local,
		prefix: prefix,
	}, nil
}

func (ec *ElementContent) ContentType() ElementContentType {
	return ec.ctype
}

func (ec *ElementContent) Occur() ElementContentOccur {
	return ec.occur
}

func (ec *ElementContent) SetOccur(occur ElementContentOccur) {
	ec.occur = occur
}

func (ec *ElementContent) Name() string {
	if ec.prefix != "" {
		return ec.prefix + ":" + ec.name
	}
	return ec.name
}

func (ec *ElementContent) Prefix() string {
	return ec.prefix
}

// SetChildren installs c1/c2 as the children of a sequence or choice
// node, wiring their parent back-references.
func (ec *ElementContent) SetChildren(c1, c2 *ElementContent) {
	ec.c1 = c1
	ec.c2 = c2
	if c1 != nil {
		c1.parent = ec
	}
	if c2 != nil {
		c2.parent = ec
	}
}

func (ec *ElementContent) First() *ElementContent {
	return ec.c1
}

func (ec *ElementContent) Second() *ElementContent {
	return ec.c2
}

func (ec *ElementContent) ParentContent() *ElementContent {
	return ec.parent
}
