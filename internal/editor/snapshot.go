package editor

import (
	"strconv"

	"github.com/joss/duml/internal/domain"
)

// Snapshot is the denormalized, front-end-facing view of the whole
// diagram. It is recomputed after every mutation and never aliases the
// entity model.
type Snapshot struct {
	Classes       []ClassView        `json:"classes"`
	Relationships []RelationshipView `json:"relationships"`
}

// ClassView is the flattened view of a class.
type ClassView struct {
	Name    string       `json:"name"`
	X       int          `json:"x"`
	Y       int          `json:"y"`
	Fields  []FieldView  `json:"fields"`
	Methods []MethodView `json:"methods"`
}

// FieldView is the flattened view of a field.
type FieldView struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// MethodView is the flattened view of a method.
type MethodView struct {
	Name       string      `json:"name"`
	ReturnType string      `json:"return_type"`
	Signature  string      `json:"signature"`
	Params     []ParamView `json:"params"`
}

// ParamView is the flattened view of a parameter.
type ParamView struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// RelationshipView is the flattened view of a relationship.
type RelationshipView struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Type        string `json:"type"`
}

func takeSnapshot(d *domain.Diagram) Snapshot {
	snap := Snapshot{
		Classes:       make([]ClassView, 0, len(d.Classes())),
		Relationships: make([]RelationshipView, 0, len(d.Relationships())),
	}
	for _, c := range d.Classes() {
		cv := ClassView{
			Name:    c.Name,
			X:       c.Position.X,
			Y:       c.Position.Y,
			Fields:  make([]FieldView, 0, len(c.Fields)),
			Methods: make([]MethodView, 0, len(c.Methods)),
		}
		for _, f := range c.Fields {
			cv.Fields = append(cv.Fields, FieldView{Name: f.Name, Type: f.Type})
		}
		for i := range c.Methods {
			m := &c.Methods[i]
			mv := MethodView{
				Name:       m.Name,
				ReturnType: m.ReturnType,
				Signature:  m.Signature(),
				Params:     make([]ParamView, 0, len(m.Params)),
			}
			for _, p := range m.Params {
				mv.Params = append(mv.Params, ParamView{Name: p.Name, Type: p.Type})
			}
			cv.Methods = append(cv.Methods, mv)
		}
		snap.Classes = append(snap.Classes, cv)
	}
	for _, r := range d.Relationships() {
		snap.Relationships = append(snap.Relationships, RelationshipView{
			Source:      r.Source,
			Destination: r.Destination,
			Type:        string(r.Type),
		})
	}
	return snap
}

// --- Read-only query surface for front ends ---

// Snapshot returns the current denormalized view.
func (e *Editor) Snapshot() Snapshot {
	return e.snapshot
}

// ClassNames lists class names in insertion order.
func (e *Editor) ClassNames() []string {
	return e.diagram.ClassNames()
}

// ClassDetail returns the view of a single class.
func (e *Editor) ClassDetail(name string) (ClassView, bool) {
	for _, cv := range e.snapshot.Classes {
		if cv.Name == name {
			return cv, true
		}
	}
	return ClassView{}, false
}

// RelationshipsOf returns every relationship touching the named class.
func (e *Editor) RelationshipsOf(name string) []RelationshipView {
	var out []RelationshipView
	for _, rv := range e.snapshot.Relationships {
		if rv.Source == name || rv.Destination == name {
			out = append(out, rv)
		}
	}
	return out
}

// MethodViewAt returns the view of the method at a textual 1-based
// position.
func (e *Editor) MethodViewAt(class, pos string) (MethodView, bool) {
	_, m, _, ok := e.methodByPos(class, pos)
	if !ok {
		return MethodView{}, false
	}
	mv := MethodView{
		Name:       m.Name,
		ReturnType: m.ReturnType,
		Signature:  m.Signature(),
		Params:     make([]ParamView, 0, len(m.Params)),
	}
	for _, p := range m.Params {
		mv.Params = append(mv.Params, ParamView{Name: p.Name, Type: p.Type})
	}
	return mv, true
}

// MethodPositionOf resolves a method's current 1-based position from
// its durable (name, parameter types) identity. Undo logic addresses
// methods this way because raw indices shift as the class changes.
func (e *Editor) MethodPositionOf(class, name string, paramTypes []string) (string, bool) {
	c := e.diagram.Class(class)
	if c == nil {
		return "", false
	}
	n := c.MethodPosition(name, paramTypes)
	if n == 0 {
		return "", false
	}
	return strconv.Itoa(n), true
}

// ParameterView returns a parameter by (method position, name).
func (e *Editor) ParameterView(class, pos, name string) (ParamView, bool) {
	_, m, _, ok := e.methodByPos(class, pos)
	if !ok {
		return ParamView{}, false
	}
	p := m.Param(name)
	if p == nil {
		return ParamView{}, false
	}
	return ParamView{Name: p.Name, Type: p.Type}, true
}
