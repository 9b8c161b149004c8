package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joss/duml/internal/editor"
	"github.com/joss/duml/internal/event"
	"github.com/joss/duml/internal/logging"
)

var log = logging.New("storage")

// Save walks the live model into the document shape and writes it.
func Save(path string, ed *editor.Editor) error {
	doc := FromSnapshot(ed.Snapshot())

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode diagram: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create diagram dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write diagram: %w", err)
	}

	log.Info("saved", map[string]interface{}{
		"path":    path,
		"classes": len(doc.Classes),
	})
	return nil
}

// Load reads a document and reconstructs the model by replaying it
// through the mutation API in order: reset, classes, fields, methods,
// parameters, relationships. The loading flag suppresses user-facing
// confirmations while structural events still reach observers.
func Load(path string, ed *editor.Editor) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("read diagram: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return NewParseError(path, err)
	}

	if err := Replay(doc, ed); err != nil {
		return err
	}

	log.Info("loaded", map[string]interface{}{
		"path":    path,
		"classes": len(doc.Classes),
	})
	return nil
}

// Replay rebuilds the model from a decoded document.
func Replay(doc Document, ed *editor.Editor) error {
	ed.SetLoading(true)
	defer ed.SetLoading(false)

	ed.Reset()
	for _, cd := range doc.Classes {
		if !ed.AddClass(cd.Name) {
			return fmt.Errorf("%w: class %q", ErrReplay, cd.Name)
		}
		if cd.X != 0 || cd.Y != 0 {
			ed.MoveClass(cd.Name, cd.X, cd.Y)
		}
	}
	for _, cd := range doc.Classes {
		for _, f := range cd.Fields {
			if !ed.AddField(cd.Name, f.Type, f.Name) {
				return fmt.Errorf("%w: field %s.%s", ErrReplay, cd.Name, f.Name)
			}
		}
		// Methods replay with their full signature, parameters and
		// all. A bare add would collide with a same-name overload
		// appearing earlier in the document.
		for i, m := range cd.Methods {
			mv := editor.MethodView{
				Name:       m.Name,
				ReturnType: m.ReturnType,
				Params:     make([]editor.ParamView, len(m.Params)),
			}
			for j, p := range m.Params {
				mv.Params[j] = editor.ParamView{Name: p.Name, Type: p.Type}
			}
			if !ed.RestoreMethod(cd.Name, i+1, mv) {
				return fmt.Errorf("%w: method %s.%s", ErrReplay, cd.Name, m.Name)
			}
		}
	}
	for _, r := range doc.Relationships {
		if !ed.AddRelationship(r.Source, r.Destination, r.Type) {
			return fmt.Errorf("%w: relationship %s -> %s", ErrReplay, r.Source, r.Destination)
		}
	}

	ed.Bus().Notify(event.DiagramLoaded, event.Payload{}, true, false)
	return nil
}
