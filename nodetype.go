package argon

// NodeType represents the type of a node in the XML tree
type NodeType int

const (
	ElementNodeType NodeType = iota + 1
	AttributeNodeType
	TextNodeType
	CDATASectionNodeType
	EntityRefNodeType
	EntityNodeType
	ProcessingInstructionNodeType
	CommentNodeType
	DocumentNodeType
	DocumentTypeNodeType
	DocumentFragNodeType
	NotationNodeType
	DTDNodeType
	ElementDeclNodeType
	AttributeDeclNodeType
	EntityDeclNodeType
	NamespaceDeclNodeType
)

type DocumentStandaloneType int

const (
	StandaloneInvalidValue DocumentStandaloneType = -99
	StandaloneExplicitYes  DocumentStandaloneType = 1
	StandaloneExplicitNo   DocumentStandaloneType = 0
	StandaloneNoXMLDecl    DocumentStandaloneType = -1
	StandaloneImplicitNo   DocumentStandaloneType = -2
)

// DocumentProperty is a set of flags describing how a document was
// produced and what guarantees it carries.
type DocumentProperty int

const (
	DocumentWellFormed DocumentProperty = 1 << iota
	DocumentNSValid
	DocumentDTDValid
	DocumentUserBuilt
)
