package domain

// Diagram owns the classes (unique by name, insertion-ordered) and the
// relationships (append-ordered, unique per directed pair).
type Diagram struct {
	classes       []*Class
	relationships []Relationship
}

// NewDiagram creates an empty diagram.
func NewDiagram() *Diagram {
	return &Diagram{}
}

// Class returns the class with the given name, or nil.
func (d *Diagram) Class(name string) *Class {
	for _, c := range d.classes {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Classes returns the classes in insertion order.
func (d *Diagram) Classes() []*Class {
	return d.classes
}

// ClassNames returns the class names in insertion order.
func (d *Diagram) ClassNames() []string {
	names := make([]string, len(d.classes))
	for i, c := range d.classes {
		names[i] = c.Name
	}
	return names
}

// AddClass inserts a class. The caller guarantees name uniqueness.
func (d *Diagram) AddClass(c *Class) {
	d.classes = append(d.classes, c)
}

// InsertClass inserts a class at index pos in the diagram order. The
// caller guarantees name uniqueness and 0 <= pos <= len.
func (d *Diagram) InsertClass(c *Class, pos int) {
	d.classes = append(d.classes, nil)
	copy(d.classes[pos+1:], d.classes[pos:])
	d.classes[pos] = c
}

// RemoveClass deletes the class and cascades to every relationship that
// names it as source or destination.
func (d *Diagram) RemoveClass(name string) {
	for i, c := range d.classes {
		if c.Name == name {
			d.classes = append(d.classes[:i], d.classes[i+1:]...)
			break
		}
	}
	kept := d.relationships[:0]
	for _, r := range d.relationships {
		if r.Source != name && r.Destination != name {
			kept = append(kept, r)
		}
	}
	d.relationships = kept
}

// RenameClass renames a class and rewrites every relationship endpoint
// equal to the old name. This is the one back-reference that must stay
// consistent.
func (d *Diagram) RenameClass(oldName, newName string) {
	c := d.Class(oldName)
	if c == nil {
		return
	}
	c.Name = newName
	for i := range d.relationships {
		if d.relationships[i].Source == oldName {
			d.relationships[i].Source = newName
		}
		if d.relationships[i].Destination == oldName {
			d.relationships[i].Destination = newName
		}
	}
}

// Relationship returns the relationship for the directed pair, or nil.
func (d *Diagram) Relationship(source, destination string) *Relationship {
	for i := range d.relationships {
		r := &d.relationships[i]
		if r.Source == source && r.Destination == destination {
			return r
		}
	}
	return nil
}

// Relationships returns the relationships in append order.
func (d *Diagram) Relationships() []Relationship {
	return d.relationships
}

// RelationshipsOf returns every relationship touching the named class.
func (d *Diagram) RelationshipsOf(class string) []Relationship {
	var out []Relationship
	for _, r := range d.relationships {
		if r.Source == class || r.Destination == class {
			out = append(out, r)
		}
	}
	return out
}

// AddRelationship appends a relationship. The caller guarantees
// pair uniqueness and endpoint existence.
func (d *Diagram) AddRelationship(r Relationship) {
	d.relationships = append(d.relationships, r)
}

// InsertRelationship inserts a relationship at index pos in the append
// order. The caller guarantees pair uniqueness and 0 <= pos <= len.
func (d *Diagram) InsertRelationship(r Relationship, pos int) {
	d.relationships = append(d.relationships, Relationship{})
	copy(d.relationships[pos+1:], d.relationships[pos:])
	d.relationships[pos] = r
}

// RemoveRelationship deletes the relationship for the directed pair.
func (d *Diagram) RemoveRelationship(source, destination string) {
	for i, r := range d.relationships {
		if r.Source == source && r.Destination == destination {
			d.relationships = append(d.relationships[:i], d.relationships[i+1:]...)
			return
		}
	}
}

// Reset clears the diagram to empty.
func (d *Diagram) Reset() {
	d.classes = nil
	d.relationships = nil
}
