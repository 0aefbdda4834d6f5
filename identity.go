package argon

import "github.com/pkg/errors"

// ID is an identity registry entry: a document-unique identifier value
// and the attribute that declared it. If the attribute has since been
// removed, the retained name and line number identify where it was.
type ID struct {
	value string
	attr  *Attribute
	name  string
	line  int
	doc   *Document
}

func (id *ID) Value() string {
	return id.value
}

// Attr returns the owning attribute, nil if it was removed after
// registration.
func (id *ID) Attr() *Attribute {
	return id.attr
}

func (id *ID) Name() string {
	return id.name
}

func (id *ID) Line() int {
	return id.line
}

// Ref is an IDREF registry entry. Refs are informational only; the
// registry does not verify that the referenced ID exists. Validators
// consume the table to do that.
type Ref struct {
	value string
	attr  *Attribute
	name  string
	line  int
}

func (r *Ref) Value() string {
	return r.value
}

func (r *Ref) Attr() *Attribute {
	return r.attr
}

// AddID registers value as a document-unique identifier owned by attr.
// The value must be lexically a Name. Registering a value that is
// already present fails with ErrDuplicateID; the registry keeps its
// existing entry and never silently overwrites.
func (d *Document) AddID(attr *Attribute, value string) (*ID, error) {
	if d == nil || attr == nil || value == "" {
		return nil, ErrInvalidArgument
	}
	if !validateName(value) {
		return nil, errors.Wrapf(ErrInvalidArgument, "value %q is not a valid xml:id", value)
	}

	if d.ids == nil {
		d.ids = make(map[string]*ID)
	}
	if _, ok := d.ids[value]; ok {
		return nil, errors.Wrapf(ErrDuplicateID, "value %q", value)
	}

	id := &ID{
		value: value,
		attr:  attr,
		name:  attr.Name(),
		line:  attr.Line(),
		doc:   d,
	}
	d.ids[value] = id
	attr.id = id
	attr.atype = AttrID
	return id, nil
}

// GetID returns the registry entry for value, or nil.
func (d *Document) GetID(value string) *ID {
	if d == nil || d.ids == nil {
		return nil
	}
	return d.ids[value]
}

// LookupID returns the element carrying the ID attribute with the given
// value, or nil.
func (d *Document) LookupID(value string) *Element {
	id := d.GetID(value)
	if id == nil || id.attr == nil {
		return nil
	}
	return id.attr.elem
}

// RemoveID deletes the registry entry owned by attr. It reports whether
// an entry was removed.
func (d *Document) RemoveID(attr *Attribute) bool {
	if d == nil || attr == nil || attr.id == nil {
		return false
	}
	entry, ok := d.ids[attr.id.value]
	if !ok || entry != attr.id {
		return false
	}
	delete(d.ids, attr.id.value)
	attr.id = nil
	return true
}

// AddRef records an IDREF-typed attribute value. Multiple attributes may
// reference the same value.
func (d *Document) AddRef(attr *Attribute, value string) *Ref {
	if d == nil || attr == nil || value == "" {
		return nil
	}
	if d.refs == nil {
		d.refs = make(map[string][]*Ref)
	}
	ref := &Ref{
		value: value,
		attr:  attr,
		name:  attr.Name(),
		line:  attr.Line(),
	}
	d.refs[value] = append(d.refs[value], ref)
	return ref
}

// GetRefs returns all IDREF entries recorded for value.
func (d *Document) GetRefs(value string) []*Ref {
	if d == nil || d.refs == nil {
		return nil
	}
	return d.refs[value]
}

// RemoveRefs deletes every IDREF entry owned by attr.
func (d *Document) RemoveRefs(attr *Attribute) {
	if d == nil || attr == nil || d.refs == nil {
		return
	}
	for value, refs := range d.refs {
		kept := refs[:0]
		for _, ref := range refs {
			if ref.attr != attr {
				kept = append(kept, ref)
			}
		}
		if len(kept) == 0 {
			delete(d.refs, value)
		} else {
			d.refs[value] = kept
		}
	}
}

// validateName checks value against the XML Name production.
func validateName(value string) bool {
	if value == "" {
		return false
	}
	for i, r := range value {
		if i == 0 {
			if !isNameStartChar(r) {
				return false
			}
			continue
		}
		if !isNameChar(r) {
			return false
		}
	}
	return true
}

func isNameStartChar(r rune) bool {
	switch {
	case r == ':' || r == '_':
		return true
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		return true
	case r >= 0xC0 && r <= 0xD6, r >= 0xD8 && r <= 0xF6, r >= 0xF8 && r <= 0x2FF:
		return true
	case r >= 0x370 && r <= 0x37D, r >= 0x37F && r <= 0x1FFF:
		return true
	case r >= 0x200C && r <= 0x200D, r >= 0x2070 && r <= 0x218F:
		return true
	case r >= 0x2C00 && r <= 0x2FEF, r >= 0x3001 && r <= 0xD7FF:
		return true
	case r >= 0xF900 && r <= 0xFDCF, r >= 0xFDF0 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0xEFFFF:
		return true
	}
	return false
}

func isNameChar(r rune) bool {
	switch {
	case isNameStartChar(r):
		return true
	case r == '-' || r == '.' || r == 0xB7:
		return true
	case r >= '0' && r <= '9':
		return true
	case r >= 0x300 && r <= 0x36F, r >= 0x203F && r <= 0x2040:
		return true
	}
	return false
}
