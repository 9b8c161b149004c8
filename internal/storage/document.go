// Package storage persists diagrams as JSON documents and tracks them
// in a sqlite-backed name registry.
package storage

import "github.com/joss/duml/internal/editor"

// Document is the persisted diagram shape.
type Document struct {
	Classes       []ClassDoc        `json:"classes"`
	Relationships []RelationshipDoc `json:"relationships"`
}

// ClassDoc is the persisted class record. Canvas coordinates travel as
// opaque metadata so the canvas survives a reload.
type ClassDoc struct {
	Name    string      `json:"name"`
	Fields  []FieldDoc  `json:"fields"`
	Methods []MethodDoc `json:"methods"`
	X       int         `json:"x,omitempty"`
	Y       int         `json:"y,omitempty"`
}

// FieldDoc is the persisted field record.
type FieldDoc struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// MethodDoc is the persisted method record.
type MethodDoc struct {
	Name       string     `json:"name"`
	ReturnType string     `json:"return_type"`
	Params     []ParamDoc `json:"params"`
}

// ParamDoc is the persisted parameter record.
type ParamDoc struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// RelationshipDoc is the persisted relationship record.
type RelationshipDoc struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Type        string `json:"type"`
}

// FromSnapshot walks a snapshot into the persisted shape.
func FromSnapshot(snap editor.Snapshot) Document {
	doc := Document{
		Classes:       make([]ClassDoc, 0, len(snap.Classes)),
		Relationships: make([]RelationshipDoc, 0, len(snap.Relationships)),
	}
	for _, cv := range snap.Classes {
		cd := ClassDoc{
			Name:    cv.Name,
			X:       cv.X,
			Y:       cv.Y,
			Fields:  make([]FieldDoc, 0, len(cv.Fields)),
			Methods: make([]MethodDoc, 0, len(cv.Methods)),
		}
		for _, f := range cv.Fields {
			cd.Fields = append(cd.Fields, FieldDoc{Name: f.Name, Type: f.Type})
		}
		for _, m := range cv.Methods {
			md := MethodDoc{
				Name:       m.Name,
				ReturnType: m.ReturnType,
				Params:     make([]ParamDoc, 0, len(m.Params)),
			}
			for _, p := range m.Params {
				md.Params = append(md.Params, ParamDoc{Name: p.Name, Type: p.Type})
			}
			cd.Methods = append(cd.Methods, md)
		}
		doc.Classes = append(doc.Classes, cd)
	}
	for _, r := range snap.Relationships {
		doc.Relationships = append(doc.Relationships, RelationshipDoc{
			Source:      r.Source,
			Destination: r.Destination,
			Type:        r.Type,
		})
	}
	return doc
}
