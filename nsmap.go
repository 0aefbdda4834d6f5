package argon

// nsMapEntry associates one distinct source namespace object with its
// destination equivalent.
type nsMapEntry struct {
	src *Namespace
	dst *Namespace
}

// nsMap is the ordered source-to-destination namespace association built
// lazily while a wrapper operation traverses a subtree. It is scoped to
// one operation; keeping it request-local makes the algorithm reentrant.
type nsMap struct {
	entries []nsMapEntry
}

func (m *nsMap) lookup(src *Namespace) *Namespace {
	for _, ent := range m.entries {
		if ent.src == src {
			return ent.dst
		}
	}
	return nil
}

func (m *nsMap) record(src, dst *Namespace) {
	m.entries = append(m.entries, nsMapEntry{src: src, dst: dst})
}

// mark and release bracket one element's scope. Entries recorded while
// inside the scope point at declarations that are not visible to the
// element's siblings, so the traversal discards them on the way out.
func (m *nsMap) mark() int {
	return len(m.entries)
}

func (m *nsMap) release(mark int) {
	m.entries = m.entries[:mark]
}
