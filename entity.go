package argon

// EntityType represents the type of entity
type EntityType int

const (
	InternalGeneralEntity EntityType = iota + 1
	ExternalGeneralParsedEntity
	ExternalGeneralUnparsedEntity
	InternalParameterEntity
	ExternalParameterEntity
	InternalPredefinedEntity
)

// Entity is an entity declaration. General and parameter entities live
// in the owning DTD's tables; the five predefined entities are process
// constants resolvable in any document.
type Entity struct {
	treeNode
	entityType EntityType
	orig       string
	content    string
	externalID string
	systemID   string
	uri        string
}

var _ Node = (*Entity)(nil)

func newEntity(name string, typ EntityType, publicID, systemID, content, orig string) *Entity {
	ent := &Entity{
		entityType: typ,
		externalID: publicID,
		systemID:   systemID,
		content:    content,
		orig:       orig,
	}
	ent.name = name
	registerNode(ent)
	return ent
}

func (*Entity) Type() NodeType {
	return EntityDeclNodeType
}

func (e *Entity) LocalName() string {
	return e.name
}

func (e *Entity) EntityType() EntityType {
	return e.entityType
}

// ReplacementText returns the entity's replacement text.
func (e *Entity) ReplacementText() string {
	return e.content
}

func (e *Entity) Content(dst []byte) ([]byte, error) {
	return append(dst, e.content...), nil
}

func (e *Entity) Orig() string {
	return e.orig
}

func (e *Entity) ExternalID() string {
	return e.externalID
}

func (e *Entity) SystemID() string {
	return e.systemID
}

func (e *Entity) AddChild(cur Node) error {
	return addChild(e, cur)
}

func (e *Entity) AddContent(b []byte) error {
	e.content += string(b)
	return nil
}

func (e *Entity) AddSibling(cur Node) error {
	return addSibling(e, cur)
}

func (e *Entity) Replace(cur Node) error {
	return replaceNode(e, cur)
}

func (e *Entity) SetNextSibling(sibling Node) error {
	return setNextSibling(e, sibling)
}

func (e *Entity) SetPrevSibling(sibling Node) error {
	return setPrevSibling(e, sibling)
}

var (
	entityLT         = Entity{entityType: InternalPredefinedEntity, content: "<", orig: "&lt;"}
	entityGT         = Entity{entityType: InternalPredefinedEntity, content: ">", orig: "&gt;"}
	entityAmpersand  = Entity{entityType: InternalPredefinedEntity, content: "&", orig: "&amp;"}
	entityApostrophe = Entity{entityType: InternalPredefinedEntity, content: "'", orig: "&apos;"}
	entityQuote      = Entity{entityType: InternalPredefinedEntity, content: `"`, orig: "&quot;"}
)

func init() {
	entityLT.name = "lt"
	entityGT.name = "gt"
	entityAmpersand.name = "amp"
	entityApostrophe.name = "apos"
	entityQuote.name = "quot"
}

func resolvePredefinedEntity(name string) *Entity {
	switch name {
	case "lt":
		return &entityLT
	case "gt":
		return &entityGT
	case "amp":
		return &entityAmpersand
	case "apos":
		return &entityApostrophe
	case "quot":
		return &entityQuote
	default:
		return nil
	}
}
