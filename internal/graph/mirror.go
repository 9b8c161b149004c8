package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/joss/duml/internal/domain"
	"github.com/joss/duml/internal/editor"
	"github.com/joss/duml/internal/event"
	"github.com/joss/duml/internal/logging"
)

// writeTimeout bounds each mirror write so a dead database never
// stalls an editing session.
const writeTimeout = 2 * time.Second

// Mirror keeps a live copy of the diagram in the graph database. It is
// an event observer: every successful mutation lands as a Cypher write.
// Write failures are logged and swallowed so editing continues when the
// database is down.
type Mirror struct {
	driver   Driver
	diagram  string
	snapshot func() editor.Snapshot
	log      *logging.Logger
}

// NewMirror creates a mirror scoped to a named diagram. The snapshot
// function supplies the current denormalized view for member-level
// resyncs and full rebuilds.
func NewMirror(driver Driver, diagram string, snapshot func() editor.Snapshot) *Mirror {
	return &Mirror{
		driver:   driver,
		diagram:  diagram,
		snapshot: snapshot,
		log:      logging.New("graph").WithDiagram(diagram),
	}
}

// Update implements event.Observer. During bulk loading incremental
// writes are skipped; the final diagram_loaded event triggers one full
// rebuild instead.
func (m *Mirror) Update(kind event.Kind, p event.Payload, loading, isUndoRedo bool) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if loading {
		if kind == event.DiagramLoaded {
			if err := m.Sync(ctx); err != nil {
				m.log.Warn("mirror_sync_failed", nil, err)
			}
		}
		return
	}

	var err error
	switch kind {
	case event.ClassAdded:
		err = m.driver.ExecuteWrite(ctx,
			"MERGE (c:Class {name: $name, diagram: $diagram}) SET c.x = 0, c.y = 0, c.fields = [], c.methods = []",
			map[string]any{"name": p.Class, "diagram": m.diagram})
	case event.ClassDeleted:
		err = m.driver.ExecuteWrite(ctx,
			"MATCH (c:Class {name: $name, diagram: $diagram}) DETACH DELETE c",
			map[string]any{"name": p.Class, "diagram": m.diagram})
	case event.ClassRenamed:
		err = m.driver.ExecuteWrite(ctx,
			"MATCH (c:Class {name: $old, diagram: $diagram}) SET c.name = $new",
			map[string]any{"old": p.Class, "new": p.NewName, "diagram": m.diagram})
	case event.ClassMoved:
		err = m.driver.ExecuteWrite(ctx,
			"MATCH (c:Class {name: $name, diagram: $diagram}) SET c.x = $x, c.y = $y",
			map[string]any{"name": p.Class, "diagram": m.diagram, "x": p.X, "y": p.Y})
	case event.FieldAdded, event.FieldDeleted, event.FieldRenamed, event.FieldRetyped,
		event.MethodAdded, event.MethodDeleted, event.MethodRenamed, event.MethodRetyped,
		event.ParamAdded, event.ParamDeleted, event.ParamRenamed, event.ParamRetyped, event.ParamsSet:
		err = m.syncMembers(ctx, p.Class)
	case event.RelationshipAdded:
		err = m.writeRelationship(ctx, p.Source, p.Destination, p.Type)
	case event.RelationshipDeleted:
		err = m.deleteRelationship(ctx, p.Source, p.Destination)
	case event.RelationshipRetyped:
		if err = m.deleteRelationship(ctx, p.Source, p.Destination); err == nil {
			err = m.writeRelationship(ctx, p.Source, p.Destination, p.Type)
		}
	case event.DiagramReset:
		err = m.Clear(ctx)
	case event.DiagramLoaded:
		err = m.Sync(ctx)
	}

	if err != nil {
		m.log.Warn("mirror_write_failed", map[string]interface{}{"kind": string(kind)}, err)
	}
}

// syncMembers rewrites a class node's field and method properties from
// the current snapshot.
func (m *Mirror) syncMembers(ctx context.Context, class string) error {
	for _, cv := range m.snapshot().Classes {
		if cv.Name != class {
			continue
		}
		fields, methods := memberProps(cv)
		return m.driver.ExecuteWrite(ctx,
			"MATCH (c:Class {name: $name, diagram: $diagram}) SET c.fields = $fields, c.methods = $methods",
			map[string]any{"name": class, "diagram": m.diagram, "fields": fields, "methods": methods})
	}
	return nil
}

func memberProps(cv editor.ClassView) ([]any, []any) {
	fields := make([]any, 0, len(cv.Fields))
	for _, fv := range cv.Fields {
		fields = append(fields, fmt.Sprintf("%s: %s", fv.Name, fv.Type))
	}
	methods := make([]any, 0, len(cv.Methods))
	for _, mv := range cv.Methods {
		methods = append(methods, mv.Signature)
	}
	return fields, methods
}

// writeRelationship creates a typed edge. Edge labels cannot be
// parameterized in Cypher; the label comes from the closed relationship
// vocabulary, never from user input.
func (m *Mirror) writeRelationship(ctx context.Context, source, dest, relType string) error {
	label := domain.RelationshipType(relType).GraphLabel()
	query := fmt.Sprintf(
		"MATCH (a:Class {name: $source, diagram: $diagram}), (b:Class {name: $dest, diagram: $diagram}) MERGE (a)-[:%s]->(b)",
		label)
	return m.driver.ExecuteWrite(ctx, query, map[string]any{
		"source": source, "dest": dest, "diagram": m.diagram,
	})
}

// deleteRelationship removes every edge between the ordered pair. At
// most one exists per the diagram invariant.
func (m *Mirror) deleteRelationship(ctx context.Context, source, dest string) error {
	return m.driver.ExecuteWrite(ctx,
		"MATCH (a:Class {name: $source, diagram: $diagram})-[r]->(b:Class {name: $dest, diagram: $diagram}) DELETE r",
		map[string]any{"source": source, "dest": dest, "diagram": m.diagram})
}

// Clear removes every node belonging to this diagram.
func (m *Mirror) Clear(ctx context.Context) error {
	return m.driver.ExecuteWrite(ctx,
		"MATCH (c:Class {diagram: $diagram}) DETACH DELETE c",
		map[string]any{"diagram": m.diagram})
}

// Sync rebuilds the graph copy from scratch. Used after loading a
// diagram and by the explicit sync command.
func (m *Mirror) Sync(ctx context.Context) error {
	start := time.Now()
	if err := m.Clear(ctx); err != nil {
		return err
	}

	snap := m.snapshot()
	for _, cv := range snap.Classes {
		fields, methods := memberProps(cv)
		err := m.driver.ExecuteWrite(ctx,
			"CREATE (c:Class {name: $name, diagram: $diagram, x: $x, y: $y, fields: $fields, methods: $methods})",
			map[string]any{
				"name": cv.Name, "diagram": m.diagram,
				"x": cv.X, "y": cv.Y,
				"fields": fields, "methods": methods,
			})
		if err != nil {
			return err
		}
	}
	for _, rv := range snap.Relationships {
		if err := m.writeRelationship(ctx, rv.Source, rv.Destination, rv.Type); err != nil {
			return err
		}
	}

	m.log.TimedEvent("mirror_synced", start, map[string]interface{}{
		"classes":       len(snap.Classes),
		"relationships": len(snap.Relationships),
	})
	return nil
}

// MirrorStatus summarizes what the graph currently holds.
type MirrorStatus struct {
	Classes       int
	Relationships int
}

// Status queries node and edge counts for this diagram.
func (m *Mirror) Status(ctx context.Context) (MirrorStatus, error) {
	var st MirrorStatus

	records, err := m.driver.Execute(ctx,
		"MATCH (c:Class {diagram: $diagram}) RETURN count(c) AS n",
		map[string]any{"diagram": m.diagram})
	if err != nil {
		return st, err
	}
	if len(records) > 0 {
		st.Classes = GetInt(records[0], "n")
	}

	records, err = m.driver.Execute(ctx,
		"MATCH (a:Class {diagram: $diagram})-[r]->(:Class {diagram: $diagram}) RETURN count(r) AS n",
		map[string]any{"diagram": m.diagram})
	if err != nil {
		return st, err
	}
	if len(records) > 0 {
		st.Relationships = GetInt(records[0], "n")
	}

	return st, nil
}
