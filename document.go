package argon

// Document is the root container. It owns every node whose doc
// back-reference points at it, the internal/external DTD subsets, and
// the identity registry.
type Document struct {
	treeNode
	version     string
	encoding    string
	standalone  DocumentStandaloneType
	url         string
	properties  DocumentProperty
	compression int

	intSubset *DTD
	extSubset *DTD

	// identity registry
	ids  map[string]*ID
	refs map[string][]*Ref

	// implicit binding for the reserved "xml" prefix, created on demand
	xmlNs *Namespace
}

var _ Node = (*Document)(nil)

// CreateDocument creates an empty document. By default the document is
// version 1.0 with no explicit standalone declaration.
func CreateDocument(options ...DocumentOption) *Document {
	doc := &Document{
		version:    "1.0",
		standalone: StandaloneImplicitNo,
		properties: DocumentUserBuilt,
	}
	doc.treeNode = treeNode{
		doc: doc,
	}

	for _, option := range options {
		switch option.Ident() {
		case identDocumentEncoding{}:
			doc.encoding = option.Value().(string)
		case identDocumentVersion{}:
			doc.version = option.Value().(string)
		case identDocumentStandalone{}:
			doc.standalone = option.Value().(DocumentStandaloneType)
		case identDocumentURL{}:
			doc.url = option.Value().(string)
		}
	}
	registerNode(doc)
	return doc
}

func (d *Document) Version() string {
	return d.version
}

func (d *Document) Encoding() string {
	if enc := d.encoding; enc != "" {
		return enc
	}
	return "utf-8"
}

func (d *Document) Standalone() DocumentStandaloneType {
	return d.standalone
}

func (d *Document) SetStandalone(standalone DocumentStandaloneType) {
	d.standalone = standalone
}

func (d *Document) URL() string {
	return d.url
}

func (d *Document) Properties() DocumentProperty {
	return d.properties
}

func (d *Document) SetProperties(p DocumentProperty) {
	d.properties = p
}

func (d *Document) Compression() int {
	return d.compression
}

func (d *Document) SetCompression(level int) {
	d.compression = level
}

func (d *Document) IntSubset() *DTD {
	return d.intSubset
}

func (d *Document) ExtSubset() *DTD {
	return d.extSubset
}

func (d *Document) Type() NodeType {
	return DocumentNodeType
}

func (d *Document) LocalName() string {
	return "#document"
}

func (d *Document) CreateElement(name string) *Element {
	e := NewElement(name)
	e.doc = d
	return e
}

func (d *Document) CreateElementNS(ns *Namespace, name string) *Element {
	e := NewElement(name)
	e.doc = d
	e.ns = ns
	return e
}

func (d *Document) CreateText(content []byte) *Text {
	t := NewText(content)
	t.doc = d
	return t
}

func (d *Document) CreateCDATASection(content []byte) *CDATASection {
	c := NewCDATASection(content)
	c.doc = d
	return c
}

func (d *Document) CreateComment(content []byte) *Comment {
	c := NewComment(content)
	c.doc = d
	return c
}

func (d *Document) CreatePI(target, data string) *ProcessingInstructionNode {
	pi := NewProcessingInstruction(target, data)
	pi.doc = d
	return pi
}

func (d *Document) CreateDocumentFragment() *DocumentFragment {
	f := NewDocumentFragment()
	f.doc = d
	return f
}

func (d *Document) CreateAttribute(name, value string) *Attribute {
	attr := newAttribute(name, nil)
	attr.doc = d
	if value != "" {
		text := d.CreateText([]byte(value))
		_ = attr.AddChild(text)
	}
	return attr
}

func (d *Document) CreateAttributeNS(ns *Namespace, name, value string) *Attribute {
	attr := d.CreateAttribute(name, value)
	attr.ns = ns
	return attr
}

func (d *Document) CreateReference(name string) *EntityRef {
	ref := NewEntityRef(name)
	ref.doc = d
	return ref
}

// CreateNamespace creates a namespace binding in this document's
// context. The binding is not declared anywhere; use
// Element.DeclareNamespace to attach it to a scope.
func (d *Document) CreateNamespace(prefix, uri string) *Namespace {
	ns := NewNamespace(prefix, uri)
	ns.context = d
	return ns
}

// CreateIntSubset creates the internal DTD subset. Calling it when a
// subset already exists returns the existing one.
func (d *Document) CreateIntSubset(name, externalID, systemID string) *DTD {
	if d.intSubset == nil {
		d.intSubset = newDTD(name, externalID, systemID)
		d.intSubset.doc = d
	}
	return d.intSubset
}

// CreateExtSubset creates the external DTD subset. Calling it when a
// subset already exists returns the existing one.
func (d *Document) CreateExtSubset(name, externalID, systemID string) *DTD {
	if d.extSubset == nil {
		d.extSubset = newDTD(name, externalID, systemID)
		d.extSubset.doc = d
	}
	return d.extSubset
}

func (d *Document) AddChild(cur Node) error {
	return addChild(d, cur)
}

func (d *Document) AddContent(b []byte) error {
	return addContent(d, b)
}

func (d *Document) AddSibling(Node) error {
	return ErrInvalidOperation
}

func (d *Document) Replace(Node) error {
	return ErrInvalidOperation
}

func (d *Document) SetNextSibling(Node) error {
	return ErrInvalidOperation
}

func (d *Document) SetPrevSibling(Node) error {
	return ErrInvalidOperation
}

// DocumentElement returns the root element of the document, or nil.
func (d *Document) DocumentElement() *Element {
	for cur := d.firstChild; cur != nil; cur = cur.NextSibling() {
		if e, ok := cur.(*Element); ok {
			return e
		}
	}
	return nil
}

// SetDocumentElement installs root as the document element, replacing
// the previous one if any. Leading PIs and comments are kept in place.
func (d *Document) SetDocumentElement(root Node) error {
	if d == nil || root == nil {
		return ErrInvalidArgument
	}
	if root.Type() != ElementNodeType {
		return ErrInvalidArgument
	}

	var old Node
	for old = d.firstChild; old != nil; old = old.NextSibling() {
		if old.Type() == ElementNodeType {
			break
		}
	}

	if old == nil {
		return d.AddChild(root)
	}
	return old.Replace(root)
}

// GetEntity retrieves a general entity by name, consulting the internal
// subset first, then the external one, then the predefined set.
func (d *Document) GetEntity(name string) (*Entity, bool) {
	if ints := d.intSubset; ints != nil {
		if ent, ok := ints.LookupEntity(name); ok {
			return ent, true
		}
	}
	if exts := d.extSubset; exts != nil {
		if ent, ok := exts.LookupEntity(name); ok {
			return ent, true
		}
	}
	if ent := resolvePredefinedEntity(name); ent != nil {
		return ent, true
	}
	return nil, false
}

func (d *Document) GetParameterEntity(name string) (*Entity, bool) {
	if ints := d.intSubset; ints != nil {
		if ent, ok := ints.LookupParameterEntity(name); ok {
			return ent, true
		}
	}
	if exts := d.extSubset; exts != nil {
		if ent, ok := exts.LookupParameterEntity(name); ok {
			return ent, true
		}
	}
	return nil, false
}
