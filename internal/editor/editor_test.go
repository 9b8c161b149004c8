package editor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joss/duml/internal/domain"
	"github.com/joss/duml/internal/event"
)

// lastMessage records the most recent message routed to the channel.
type lastMessage struct {
	text    string
	isError bool
}

func (m *lastMessage) Infof(format string, args ...any) {
	m.text, m.isError = fmt.Sprintf(format, args...), false
}

func (m *lastMessage) Errorf(format string, args ...any) {
	m.text, m.isError = fmt.Sprintf(format, args...), true
}

func newTestEditor(t *testing.T) (*Editor, *lastMessage) {
	t.Helper()
	msg := &lastMessage{}
	return New(WithMessenger(msg)), msg
}

func TestAddClass(t *testing.T) {
	ed, msg := newTestEditor(t)

	require.True(t, ed.AddClass("Account"))
	assert.Equal(t, `added class "Account"`, msg.text)
	assert.Equal(t, []string{"Account"}, ed.ClassNames())

	assert.False(t, ed.AddClass("Account"))
	assert.True(t, msg.isError)
	assert.Contains(t, msg.text, "already exists")

	assert.False(t, ed.AddClass("bad name"))
	assert.Contains(t, msg.text, "invalid identifier")
	assert.False(t, ed.AddClass(""))
}

func TestRenameClass(t *testing.T) {
	ed, msg := newTestEditor(t)
	require.True(t, ed.AddClass("Account"))
	require.True(t, ed.AddClass("Bank"))
	require.True(t, ed.AddRelationship("Bank", "Account", "Aggregation"))

	assert.False(t, ed.RenameClass("Account", "Bank"), "target name taken")
	assert.False(t, ed.RenameClass("Account", "Account"))
	assert.Contains(t, msg.text, "already has that name")
	assert.False(t, ed.RenameClass("Ghost", "X"))

	require.True(t, ed.RenameClass("Account", "Customer"))
	rels := ed.RelationshipsOf("Customer")
	require.Len(t, rels, 1)
	assert.Equal(t, "Customer", rels[0].Destination)
	assert.Empty(t, ed.RelationshipsOf("Account"))
}

func TestDeleteClassCascades(t *testing.T) {
	ed, _ := newTestEditor(t)
	require.True(t, ed.AddClass("A"))
	require.True(t, ed.AddClass("B"))
	require.True(t, ed.AddRelationship("A", "B", "Composition"))
	require.True(t, ed.AddRelationship("B", "A", "Inheritance"))

	require.True(t, ed.DeleteClass("A"))

	assert.Equal(t, []string{"B"}, ed.ClassNames())
	assert.Empty(t, ed.Snapshot().Relationships)
}

func TestMoveClass(t *testing.T) {
	ed, _ := newTestEditor(t)
	require.True(t, ed.AddClass("A"))

	require.True(t, ed.MoveClass("A", 12, 7))
	cv, ok := ed.ClassDetail("A")
	require.True(t, ok)
	assert.Equal(t, 12, cv.X)
	assert.Equal(t, 7, cv.Y)

	assert.False(t, ed.MoveClass("Ghost", 1, 1))
}

func TestFieldLifecycle(t *testing.T) {
	ed, msg := newTestEditor(t)
	require.True(t, ed.AddClass("Account"))

	require.True(t, ed.AddField("Account", "int", "balance"))
	assert.False(t, ed.AddField("Account", "long", "balance"), "names unique per class")
	assert.False(t, ed.AddField("Ghost", "int", "x"))

	require.True(t, ed.RenameField("Account", "balance", "amount"))
	assert.False(t, ed.RenameField("Account", "amount", "amount"))

	require.True(t, ed.RetypeField("Account", "amount", "long"))
	assert.False(t, ed.RetypeField("Account", "amount", "long"))
	assert.Contains(t, msg.text, "already has type")

	require.True(t, ed.DeleteField("Account", "amount"))
	cv, _ := ed.ClassDetail("Account")
	assert.Empty(t, cv.Fields)
}

func TestMethodOverloads(t *testing.T) {
	ed, msg := newTestEditor(t)
	require.True(t, ed.AddClass("Calc"))

	require.True(t, ed.AddMethod("Calc", "int", "add"))
	assert.False(t, ed.AddMethod("Calc", "void", "add"), "bare add() already present")

	// growing the first add() frees the empty signature for a second one
	require.True(t, ed.AddParameter("Calc", "1", "int", "a"))
	require.True(t, ed.AddMethod("Calc", "int", "add"))

	cv, _ := ed.ClassDetail("Calc")
	require.Len(t, cv.Methods, 2)
	assert.Equal(t, "add(int)", cv.Methods[0].Signature)
	assert.Equal(t, "add()", cv.Methods[1].Signature)

	// a parameter that recreates an existing signature is rejected
	assert.False(t, ed.AddParameter("Calc", "2", "int", "x"))
	assert.Contains(t, msg.text, "add(int)")
}

func TestMethodPositionAddressing(t *testing.T) {
	ed, msg := newTestEditor(t)
	require.True(t, ed.AddClass("A"))
	require.True(t, ed.AddMethod("A", "void", "first"))
	require.True(t, ed.AddMethod("A", "void", "second"))

	assert.False(t, ed.DeleteMethod("A", "0"), "positions are 1-based")
	assert.False(t, ed.DeleteMethod("A", "3"))
	assert.False(t, ed.DeleteMethod("A", "two"))
	assert.Contains(t, msg.text, "not a number")

	require.True(t, ed.DeleteMethod("A", "1"))
	mv, ok := ed.MethodViewAt("A", "1")
	require.True(t, ok)
	assert.Equal(t, "second", mv.Name, "positions shift after deletion")
}

func TestRenameMethodCollision(t *testing.T) {
	ed, _ := newTestEditor(t)
	require.True(t, ed.AddClass("A"))
	require.True(t, ed.AddMethod("A", "void", "run"))
	require.True(t, ed.AddMethod("A", "void", "walk"))

	assert.False(t, ed.RenameMethod("A", "2", "run"), "would collide with run()")
	require.True(t, ed.RenameMethod("A", "2", "sprint"))

	mv, _ := ed.MethodViewAt("A", "2")
	assert.Equal(t, "sprint", mv.Name)
}

func TestRetypeMethod(t *testing.T) {
	ed, msg := newTestEditor(t)
	require.True(t, ed.AddClass("A"))
	require.True(t, ed.AddMethod("A", "int", "value"))

	require.True(t, ed.RetypeMethod("A", "1", "long"))
	assert.False(t, ed.RetypeMethod("A", "1", "long"))
	assert.Contains(t, msg.text, "already returns")
}

func TestRestoreClass(t *testing.T) {
	ed, _ := newTestEditor(t)
	require.True(t, ed.AddClass("A"))
	require.True(t, ed.AddClass("C"))

	require.True(t, ed.RestoreClass(2, ClassView{Name: "B", X: 5, Y: 2}))

	assert.Equal(t, []string{"A", "B", "C"}, ed.ClassNames())
	cv, _ := ed.ClassDetail("B")
	assert.Equal(t, 5, cv.X)
	assert.Equal(t, 2, cv.Y)

	assert.False(t, ed.RestoreClass(1, ClassView{Name: "B"}), "name taken")
	assert.False(t, ed.RestoreClass(9, ClassView{Name: "D"}), "position out of range")
	assert.False(t, ed.RestoreClass(0, ClassView{Name: "D"}))
}

func TestRestoreRelationship(t *testing.T) {
	ed, _ := newTestEditor(t)
	require.True(t, ed.AddClass("A"))
	require.True(t, ed.AddClass("B"))
	require.True(t, ed.AddClass("C"))
	require.True(t, ed.AddRelationship("A", "B", "Aggregation"))
	require.True(t, ed.AddRelationship("B", "C", "Inheritance"))

	require.True(t, ed.RestoreRelationship(2, RelationshipView{Source: "A", Destination: "C", Type: "Composition"}))

	rels := ed.Snapshot().Relationships
	require.Len(t, rels, 3)
	assert.Equal(t, "Aggregation", rels[0].Type)
	assert.Equal(t, "Composition", rels[1].Type)
	assert.Equal(t, "Inheritance", rels[2].Type)

	assert.False(t, ed.RestoreRelationship(1, RelationshipView{Source: "A", Destination: "B", Type: "Composition"}), "pair taken")
	assert.False(t, ed.RestoreRelationship(1, RelationshipView{Source: "A", Destination: "Ghost", Type: "Composition"}))
	assert.False(t, ed.RestoreRelationship(1, RelationshipView{Source: "A", Destination: "C", Type: "Friendship"}))
	assert.False(t, ed.RestoreRelationship(9, RelationshipView{Source: "C", Destination: "A", Type: "Composition"}), "position out of range")
}

func TestRestoreMethod(t *testing.T) {
	ed, _ := newTestEditor(t)
	require.True(t, ed.AddClass("A"))
	require.True(t, ed.AddMethod("A", "void", "first"))
	require.True(t, ed.AddMethod("A", "void", "third"))

	mv := MethodView{
		Name:       "second",
		ReturnType: "int",
		Params:     []ParamView{{Name: "n", Type: "int"}},
	}
	require.True(t, ed.RestoreMethod("A", 2, mv))

	cv, _ := ed.ClassDetail("A")
	require.Len(t, cv.Methods, 3)
	assert.Equal(t, "second(int)", cv.Methods[1].Signature)

	assert.False(t, ed.RestoreMethod("A", 9, mv), "position out of range")
	assert.False(t, ed.RestoreMethod("A", 1, mv), "signature already present")
}

func TestParameterLifecycle(t *testing.T) {
	ed, msg := newTestEditor(t)
	require.True(t, ed.AddClass("A"))
	require.True(t, ed.AddMethod("A", "void", "run"))
	require.True(t, ed.AddParameter("A", "1", "int", "speed"))

	assert.False(t, ed.AddParameter("A", "1", "long", "speed"), "names unique per method")

	require.True(t, ed.RenameParameter("A", "1", "speed", "pace"))
	assert.False(t, ed.RenameParameter("A", "1", "pace", "pace"))

	require.True(t, ed.RetypeParameter("A", "1", "pace", "float"))
	assert.False(t, ed.RetypeParameter("A", "1", "pace", "float"))
	assert.Contains(t, msg.text, "already has type")

	require.True(t, ed.DeleteParameter("A", "1", "pace"))
	mv, _ := ed.MethodViewAt("A", "1")
	assert.Empty(t, mv.Params)
}

func TestParameterChangesGuardSignatures(t *testing.T) {
	ed, _ := newTestEditor(t)
	require.True(t, ed.AddClass("A"))
	require.True(t, ed.AddMethod("A", "void", "run"))
	require.True(t, ed.AddParameter("A", "1", "int", "n"))
	require.True(t, ed.AddMethod("A", "void", "run")) // run()

	assert.False(t, ed.DeleteParameter("A", "1", "n"), "would collide with run()")
	assert.False(t, ed.RetypeParameter("A", "1", "n", "int"), "no-op type")

	require.True(t, ed.AddParameter("A", "2", "float", "f")) // run(float)
	assert.False(t, ed.RetypeParameter("A", "2", "f", "int"), "would collide with run(int)")
}

func TestSetParametersAtomic(t *testing.T) {
	ed, msg := newTestEditor(t)
	require.True(t, ed.AddClass("A"))
	require.True(t, ed.AddMethod("A", "void", "run"))
	require.True(t, ed.AddParameter("A", "1", "int", "n"))

	ok := ed.SetParameters("A", "1", []domain.Parameter{
		{Name: "x", Type: "float"},
		{Name: "y", Type: "float"},
	})
	require.True(t, ok)
	mv, _ := ed.MethodViewAt("A", "1")
	assert.Equal(t, "run(float, float)", mv.Signature)

	ok = ed.SetParameters("A", "1", []domain.Parameter{
		{Name: "a", Type: "int"},
		{Name: "a", Type: "long"},
	})
	assert.False(t, ok)
	assert.Contains(t, msg.text, "duplicate parameter")
	mv, _ = ed.MethodViewAt("A", "1")
	assert.Equal(t, "run(float, float)", mv.Signature, "old list survives a rejected replacement")

	ok = ed.SetParameters("A", "1", nil)
	require.True(t, ok, "clearing the list is allowed")
	mv, _ = ed.MethodViewAt("A", "1")
	assert.Equal(t, "run()", mv.Signature)
}

func TestRelationshipLifecycle(t *testing.T) {
	ed, msg := newTestEditor(t)
	require.True(t, ed.AddClass("A"))
	require.True(t, ed.AddClass("B"))

	require.True(t, ed.AddRelationship("A", "B", "Aggregation"))
	assert.False(t, ed.AddRelationship("A", "B", "Composition"), "one per directed pair")
	require.True(t, ed.AddRelationship("B", "A", "Composition"), "reverse pair is distinct")
	require.True(t, ed.AddRelationship("A", "A", "Inheritance"), "self-relationships allowed")

	assert.False(t, ed.AddRelationship("A", "Ghost", "Aggregation"))
	assert.False(t, ed.AddRelationship("A", "B", "Friendship"))
	assert.Contains(t, msg.text, "unknown relationship type")

	require.True(t, ed.RetypeRelationship("A", "B", "Realization"))
	assert.False(t, ed.RetypeRelationship("A", "B", "Realization"), "no-op retype")

	require.True(t, ed.DeleteRelationship("A", "B"))
	assert.False(t, ed.DeleteRelationship("A", "B"))
	assert.Len(t, ed.Snapshot().Relationships, 2)
}

func TestSnapshotNeverAliases(t *testing.T) {
	ed, _ := newTestEditor(t)
	require.True(t, ed.AddClass("A"))
	require.True(t, ed.AddField("A", "int", "x"))

	before := ed.Snapshot()
	require.True(t, ed.RetypeField("A", "x", "long"))
	after := ed.Snapshot()

	assert.Equal(t, "int", before.Classes[0].Fields[0].Type)
	assert.Equal(t, "long", after.Classes[0].Fields[0].Type)
}

func TestLoadingSuppressesConfirmations(t *testing.T) {
	ed, msg := newTestEditor(t)
	ed.SetLoading(true)

	require.True(t, ed.AddClass("A"))
	assert.Empty(t, msg.text, "confirmations silent during load")

	assert.False(t, ed.AddClass("A"))
	assert.True(t, msg.isError, "rejections still reported")

	ed.SetLoading(false)
	require.True(t, ed.AddClass("B"))
	assert.Equal(t, `added class "B"`, msg.text)
}

func TestNotificationsCarryFlags(t *testing.T) {
	ed, _ := newTestEditor(t)
	var kinds []event.Kind
	var loadings, undoRedos []bool
	ed.Bus().Attach(event.NewObserverFunc(func(k event.Kind, _ event.Payload, loading, isUndoRedo bool) {
		kinds = append(kinds, k)
		loadings = append(loadings, loading)
		undoRedos = append(undoRedos, isUndoRedo)
	}))

	require.True(t, ed.AddClass("A"))
	ed.SetLoading(true)
	require.True(t, ed.AddClass("B"))
	ed.SetLoading(false)
	ed.SetUndoRedo(true)
	require.True(t, ed.DeleteClass("B"))
	ed.SetUndoRedo(false)

	require.Equal(t, []event.Kind{event.ClassAdded, event.ClassAdded, event.ClassDeleted}, kinds)
	assert.Equal(t, []bool{false, true, false}, loadings)
	assert.Equal(t, []bool{false, false, true}, undoRedos)
}

func TestFailedMutationEmitsNoEvent(t *testing.T) {
	ed, _ := newTestEditor(t)
	count := 0
	ed.Bus().Attach(event.NewObserverFunc(func(event.Kind, event.Payload, bool, bool) { count++ }))

	require.True(t, ed.AddClass("A"))
	assert.False(t, ed.AddClass("A"))
	assert.False(t, ed.DeleteClass("Ghost"))

	assert.Equal(t, 1, count)
}

func TestReset(t *testing.T) {
	ed, msg := newTestEditor(t)
	require.True(t, ed.AddClass("A"))
	require.True(t, ed.AddClass("B"))
	require.True(t, ed.AddRelationship("A", "B", "Aggregation"))

	ed.Reset()

	assert.Empty(t, ed.ClassNames())
	assert.Empty(t, ed.Snapshot().Relationships)
	assert.Equal(t, "diagram cleared", msg.text)
}

func TestMethodPositionOf(t *testing.T) {
	ed, _ := newTestEditor(t)
	require.True(t, ed.AddClass("A"))
	require.True(t, ed.AddMethod("A", "void", "run"))
	require.True(t, ed.AddParameter("A", "1", "int", "n"))
	require.True(t, ed.AddMethod("A", "void", "run"))

	pos, ok := ed.MethodPositionOf("A", "run", []string{"int"})
	require.True(t, ok)
	assert.Equal(t, "1", pos)

	pos, ok = ed.MethodPositionOf("A", "run", nil)
	require.True(t, ok)
	assert.Equal(t, "2", pos)

	_, ok = ed.MethodPositionOf("A", "run", []string{"float"})
	assert.False(t, ok)
	_, ok = ed.MethodPositionOf("Ghost", "run", nil)
	assert.False(t, ok)
}
