package argon

import (
	"github.com/pkg/errors"

	"github.com/lestrrat-go/argon/internal/orderedmap"
)

// DTD represents a document type definition: the per-document tables of
// element, attribute, notation and entity declarations. Attribute
// declarations keep declaration order, which makes applying defaults
// deterministic.
type DTD struct {
	treeNode
	externalID string
	systemID   string
	elements   map[string]*ElementDecl
	attributes *orderedmap.Map[string, *AttributeDecl]
	notations  map[string]*Notation
	entities   map[string]*Entity
	pentities  map[string]*Entity
}

var _ Node = (*DTD)(nil)

func newDTD(name, externalID, systemID string) *DTD {
	dtd := &DTD{
		externalID: externalID,
		systemID:   systemID,
		elements:   map[string]*ElementDecl{},
		attributes: orderedmap.New[string, *AttributeDecl](),
		notations:  map[string]*Notation{},
		entities:   map[string]*Entity{},
		pentities:  map[string]*Entity{},
	}
	dtd.name = name
	registerNode(dtd)
	return dtd
}

func (*DTD) Type() NodeType {
	return DTDNodeType
}

func (dtd *DTD) LocalName() string {
	return dtd.name
}

func (dtd *DTD) ExternalID() string {
	return dtd.externalID
}

func (dtd *DTD) SystemID() string {
	return dtd.systemID
}

func (dtd *DTD) AddChild(cur Node) error {
	return addChild(dtd, cur)
}

func (dtd *DTD) AddContent(b []byte) error {
	return addContent(dtd, b)
}

func (dtd *DTD) AddSibling(cur Node) error {
	return addSibling(dtd, cur)
}

func (dtd *DTD) Replace(cur Node) error {
	return replaceNode(dtd, cur)
}

func (dtd *DTD) SetNextSibling(sibling Node) error {
	return setNextSibling(dtd, sibling)
}

func (dtd *DTD) SetPrevSibling(sibling Node) error {
	return setPrevSibling(dtd, sibling)
}

// RegisterElementDecl adds an element declaration to the table. The
// declared name is the key; redeclaration is an error.
func (dtd *DTD) RegisterElementDecl(decl *ElementDecl) error {
	if decl == nil {
		return ErrInvalidArgument
	}
	if _, ok := dtd.elements[decl.name]; ok {
		return errors.Errorf("element %q already declared", decl.name)
	}
	decl.doc = dtd.doc
	dtd.elements[decl.name] = decl
	return nil
}

// RegisterAttributeDecl adds an attribute declaration, keyed by the
// owning element name and the attribute name.
func (dtd *DTD) RegisterAttributeDecl(decl *AttributeDecl) error {
	if decl == nil {
		return ErrInvalidArgument
	}
	key := decl.elem + ":" + decl.name
	if err := dtd.attributes.Set(key, decl); err != nil {
		return errors.Errorf("attribute %q already declared for element %q", decl.name, decl.elem)
	}
	decl.doc = dtd.doc
	return nil
}

// RegisterNotation adds a notation declaration.
func (dtd *DTD) RegisterNotation(n *Notation) error {
	if n == nil {
		return ErrInvalidArgument
	}
	if _, ok := dtd.notations[n.name]; ok {
		return errors.Errorf("notation %q already declared", n.name)
	}
	dtd.notations[n.name] = n
	return nil
}

// RegisterEntity adds a general or parameter entity to the appropriate
// table. In XML the first declaration of an entity name wins; a
// redeclaration is simply ignored and the existing entity returned.
func (dtd *DTD) RegisterEntity(name string, typ EntityType, publicID, systemID, content string) (*Entity, error) {
	var table map[string]*Entity
	switch typ {
	case InternalGeneralEntity, ExternalGeneralParsedEntity, ExternalGeneralUnparsedEntity:
		table = dtd.entities
	case InternalParameterEntity, ExternalParameterEntity:
		table = dtd.pentities
	default:
		return nil, errors.New("cannot register a predefined entity")
	}

	if ent, ok := table[name]; ok {
		return ent, nil
	}
	ent := newEntity(name, typ, publicID, systemID, content, "")
	ent.doc = dtd.doc
	table[name] = ent
	return ent, nil
}

func (dtd *DTD) LookupElementDecl(name string) (*ElementDecl, bool) {
	decl, ok := dtd.elements[name]
	return decl, ok
}

func (dtd *DTD) LookupAttributeDecl(elem, name string) (*AttributeDecl, bool) {
	return dtd.attributes.Get(elem + ":" + name)
}

func (dtd *DTD) LookupNotation(name string) (*Notation, bool) {
	n, ok := dtd.notations[name]
	return n, ok
}

func (dtd *DTD) LookupEntity(name string) (*Entity, bool) {
	ent, ok := dtd.entities[name]
	return ent, ok
}

func (dtd *DTD) LookupParameterEntity(name string) (*Entity, bool) {
	ent, ok := dtd.pentities[name]
	return ent, ok
}

// ElementTypeVal represents the declared content class of an element
type ElementTypeVal int

const (
	UndefinedElementType ElementTypeVal = iota
	EmptyElementType
	AnyElementType
	MixedElementType
	ElementElementType
)

// ElementDecl represents an element declaration with its compiled
// content model.
type ElementDecl struct {
	treeNode
	decltype ElementTypeVal
	content  *ElementContent
	prefix   string
}

var _ Node = (*ElementDecl)(nil)

func NewElementDecl(name string, decltype ElementTypeVal, content *ElementContent) *ElementDecl {
	decl := &ElementDecl{
		decltype: decltype,
		content:  content,
	}
	decl.name = name
	registerNode(decl)
	return decl
}

func (*ElementDecl) Type() NodeType {
	return ElementDeclNodeType
}

func (decl *ElementDecl) LocalName() string {
	return decl.name
}

func (decl *ElementDecl) DeclType() ElementTypeVal {
	return decl.decltype
}

func (decl *ElementDecl) ContentModel() *ElementContent {
	return decl.content
}

func (decl *ElementDecl) AddChild(cur Node) error {
	return addChild(decl, cur)
}

func (decl *ElementDecl) AddContent(b []byte) error {
	return addContent(decl, b)
}

func (decl *ElementDecl) AddSibling(cur Node) error {
	return addSibling(decl, cur)
}

func (decl *ElementDecl) Replace(cur Node) error {
	return replaceNode(decl, cur)
}

func (decl *ElementDecl) SetNextSibling(sibling Node) error {
	return setNextSibling(decl, sibling)
}

func (decl *ElementDecl) SetPrevSibling(sibling Node) error {
	return setPrevSibling(decl, sibling)
}

// AttributeType represents the declared type of an attribute
type AttributeType int

const (
	AttrInvalid AttributeType = iota
	AttrCDATA
	AttrID
	AttrIDRef
	AttrIDRefs
	AttrEntity
	AttrEntities
	AttrNMToken
	AttrNMTokens
	AttrEnumeration
	AttrNotation
)

// AttributeDefault represents the default declaration of an attribute
type AttributeDefault int

const (
	AttrDefaultNone AttributeDefault = iota
	AttrDefaultRequired
	AttrDefaultImplied
	AttrDefaultFixed
)

// Enumeration represents a list of possible values
type Enumeration []string

// AttributeDecl represents an attribute declaration
type AttributeDecl struct {
	treeNode
	atype        AttributeType
	def          AttributeDefault
	defaultValue string
	tree         Enumeration
	elem         string
	prefix       string
}

var _ Node = (*AttributeDecl)(nil)

func NewAttributeDecl(elem, name string, atype AttributeType, def AttributeDefault, defaultValue string, tree Enumeration) *AttributeDecl {
	decl := &AttributeDecl{
		atype:        atype,
		def:          def,
		defaultValue: defaultValue,
		tree:         tree,
		elem:         elem,
	}
	decl.name = name
	registerNode(decl)
	return decl
}

func (*AttributeDecl) Type() NodeType {
	return AttributeDeclNodeType
}

func (decl *AttributeDecl) LocalName() string {
	return decl.name
}

func (decl *AttributeDecl) Elem() string {
	return decl.elem
}

func (decl *AttributeDecl) AttrType() AttributeType {
	return decl.atype
}

func (decl *AttributeDecl) Default() AttributeDefault {
	return decl.def
}

func (decl *AttributeDecl) DefaultValue() string {
	return decl.defaultValue
}

func (decl *AttributeDecl) Enumeration() Enumeration {
	return decl.tree
}

func (decl *AttributeDecl) AddChild(cur Node) error {
	return addChild(decl, cur)
}

func (decl *AttributeDecl) AddContent(b []byte) error {
	return addContent(decl, b)
}

func (decl *AttributeDecl) AddSibling(cur Node) error {
	return addSibling(decl, cur)
}

func (decl *AttributeDecl) Replace(cur Node) error {
	return replaceNode(decl, cur)
}

func (decl *AttributeDecl) SetNextSibling(sibling Node) error {
	return setNextSibling(decl, sibling)
}

func (decl *AttributeDecl) SetPrevSibling(sibling Node) error {
	return setPrevSibling(decl, sibling)
}

// Notation represents a notation declaration
type Notation struct {
	treeNode
	publicID string
	systemID string
}

var _ Node = (*Notation)(nil)

func NewNotation(name, publicID, systemID string) *Notation {
	n := &Notation{
		publicID: publicID,
		systemID: systemID,
	}
	n.name = name
	registerNode(n)
	return n
}

func (*Notation) Type() NodeType {
	return NotationNodeType
}

func (n *Notation) LocalName() string {
	return n.name
}

func (n *Notation) PublicID() string {
	return n.publicID
}

func (n *Notation) SystemID() string {
	return n.systemID
}

func (n *Notation) AddChild(cur Node) error {
	return addChild(n, cur)
}

func (n *Notation) AddContent(b []byte) error {
	return addContent(n, b)
}

func (n *Notation) AddSibling(cur Node) error {
	return addSibling(n, cur)
}

func (n *Notation) Replace(cur Node) error {
	return replaceNode(n, cur)
}

func (n *Notation) SetNextSibling(sibling Node) error {
	return setNextSibling(n, sibling)
}

func (n *Notation) SetPrevSibling(sibling Node) error {
	return setPrevSibling(n, sibling)
}

// IsID reports whether attr is ID-typed on e, either through an
// attribute declaration in doc's DTD subsets or by being xml:id.
func IsID(doc *Document, e *Element, attr *Attribute) bool {
	if doc == nil || e == nil || attr == nil {
		return false
	}
	return declaredAttrType(doc, e, attr) == AttrID
}

// declaredAttrType looks up the declared type of an attribute named on
// the given element. xml:id is always an ID regardless of declarations.
// With no declaration, attributes are CDATA.
func declaredAttrType(doc *Document, e *Element, attr *Attribute) AttributeType {
	if attr.Name() == "xml:id" {
		return AttrID
	}
	for _, dtd := range []*DTD{doc.intSubset, doc.extSubset} {
		if dtd == nil {
			continue
		}
		if decl, ok := dtd.LookupAttributeDecl(e.name, attr.name); ok {
			return decl.atype
		}
	}
	return AttrCDATA
}

// ApplyDefaultAttributes applies declared default values to e: for every
// attribute declaration naming e's element type that carries a default
// value, a missing attribute is filled in and flagged as defaulted.
// ID-typed defaults register in the identity registry as usual.
func (d *Document) ApplyDefaultAttributes(e *Element) error {
	if e == nil {
		return ErrInvalidArgument
	}
	for _, dtd := range []*DTD{d.intSubset, d.extSubset} {
		if dtd == nil {
			continue
		}
		for _, decl := range dtd.attributes.Range() {
			if decl.elem != e.name {
				continue
			}
			if decl.def != AttrDefaultNone && decl.def != AttrDefaultFixed {
				continue
			}
			if decl.defaultValue == "" {
				continue
			}
			if _, ok := e.GetAttribute(decl.name); ok {
				continue
			}
			if err := e.SetAttribute(decl.name, decl.defaultValue); err != nil {
				return err
			}
			if attr, ok := e.GetAttribute(decl.name); ok {
				attr.SetDefault(true)
			}
		}
	}
	return nil
}
