package history

import (
	"fmt"
	"strconv"

	"github.com/joss/duml/internal/domain"
	"github.com/joss/duml/internal/editor"
)

// The closed set of command variants. Each carries exactly the
// pre-state fields its inverse needs, captured during Execute.

// --- Classes ---

// AddClassCommand creates a class; its inverse deletes it.
type AddClassCommand struct {
	Ed   *editor.Editor
	Name string
}

func (c *AddClassCommand) Execute() bool { return c.Ed.AddClass(c.Name) }
func (c *AddClassCommand) Undo() bool    { return c.Ed.DeleteClass(c.Name) }
func (c *AddClassCommand) Label() string { return fmt.Sprintf("add class %s", c.Name) }

// DeleteClassCommand removes a class. Execute captures the full class
// view, its position in the diagram order, and every incident
// relationship with its position in the append order, so Undo rebuilds
// the exact pre-delete snapshot rather than re-adding at the tail.
type DeleteClassCommand struct {
	Ed   *editor.Editor
	Name string

	captured editor.ClassView
	at       int
	rels     []placedRelationship
}

// placedRelationship is a relationship plus its 1-based position in the
// diagram's append order.
type placedRelationship struct {
	at int
	rv editor.RelationshipView
}

func (c *DeleteClassCommand) Execute() bool {
	snap := c.Ed.Snapshot()
	for i, cv := range snap.Classes {
		if cv.Name == c.Name {
			c.captured = cv
			c.at = i + 1
		}
	}
	c.rels = nil
	for i, rv := range snap.Relationships {
		if rv.Source == c.Name || rv.Destination == c.Name {
			c.rels = append(c.rels, placedRelationship{at: i + 1, rv: rv})
		}
	}
	return c.Ed.DeleteClass(c.Name)
}

func (c *DeleteClassCommand) Undo() bool {
	if !c.Ed.RestoreClass(c.at, c.captured) {
		return false
	}
	for _, f := range c.captured.Fields {
		if !c.Ed.AddField(c.captured.Name, f.Type, f.Name) {
			return false
		}
	}
	for i, mv := range c.captured.Methods {
		if !c.Ed.RestoreMethod(c.captured.Name, i+1, mv) {
			return false
		}
	}
	// Captured in ascending position order; reinserting in that order
	// lands every survivor and every restored edge where it was.
	for _, r := range c.rels {
		if !c.Ed.RestoreRelationship(r.at, r.rv) {
			return false
		}
	}
	return true
}

func (c *DeleteClassCommand) Label() string { return fmt.Sprintf("delete class %s", c.Name) }

// RenameClassCommand renames a class; its inverse renames it back.
type RenameClassCommand struct {
	Ed       *editor.Editor
	Old, New string
}

func (c *RenameClassCommand) Execute() bool { return c.Ed.RenameClass(c.Old, c.New) }
func (c *RenameClassCommand) Undo() bool    { return c.Ed.RenameClass(c.New, c.Old) }
func (c *RenameClassCommand) Label() string {
	return fmt.Sprintf("rename class %s to %s", c.Old, c.New)
}

// MoveClassCommand updates canvas position; Execute captures the old
// coordinates.
type MoveClassCommand struct {
	Ed   *editor.Editor
	Name string
	X, Y int

	oldX, oldY int
}

func (c *MoveClassCommand) Execute() bool {
	if cv, ok := c.Ed.ClassDetail(c.Name); ok {
		c.oldX, c.oldY = cv.X, cv.Y
	}
	return c.Ed.MoveClass(c.Name, c.X, c.Y)
}

func (c *MoveClassCommand) Undo() bool    { return c.Ed.MoveClass(c.Name, c.oldX, c.oldY) }
func (c *MoveClassCommand) Label() string { return fmt.Sprintf("move class %s", c.Name) }

// --- Fields ---

// AddFieldCommand adds a field; its inverse deletes it.
type AddFieldCommand struct {
	Ed                *editor.Editor
	Class, Type, Name string
}

func (c *AddFieldCommand) Execute() bool { return c.Ed.AddField(c.Class, c.Type, c.Name) }
func (c *AddFieldCommand) Undo() bool    { return c.Ed.DeleteField(c.Class, c.Name) }
func (c *AddFieldCommand) Label() string {
	return fmt.Sprintf("add field %s.%s", c.Class, c.Name)
}

// DeleteFieldCommand removes a field, capturing its type tag for Undo.
type DeleteFieldCommand struct {
	Ed          *editor.Editor
	Class, Name string

	oldType string
}

func (c *DeleteFieldCommand) Execute() bool {
	if cv, ok := c.Ed.ClassDetail(c.Class); ok {
		for _, f := range cv.Fields {
			if f.Name == c.Name {
				c.oldType = f.Type
			}
		}
	}
	return c.Ed.DeleteField(c.Class, c.Name)
}

func (c *DeleteFieldCommand) Undo() bool { return c.Ed.AddField(c.Class, c.oldType, c.Name) }
func (c *DeleteFieldCommand) Label() string {
	return fmt.Sprintf("delete field %s.%s", c.Class, c.Name)
}

// RenameFieldCommand renames a field; its inverse renames it back.
type RenameFieldCommand struct {
	Ed              *editor.Editor
	Class, Old, New string
}

func (c *RenameFieldCommand) Execute() bool { return c.Ed.RenameField(c.Class, c.Old, c.New) }
func (c *RenameFieldCommand) Undo() bool    { return c.Ed.RenameField(c.Class, c.New, c.Old) }
func (c *RenameFieldCommand) Label() string {
	return fmt.Sprintf("rename field %s.%s to %s", c.Class, c.Old, c.New)
}

// RetypeFieldCommand changes a field's type, capturing the old tag.
type RetypeFieldCommand struct {
	Ed                   *editor.Editor
	Class, Name, NewType string

	oldType string
}

func (c *RetypeFieldCommand) Execute() bool {
	if cv, ok := c.Ed.ClassDetail(c.Class); ok {
		for _, f := range cv.Fields {
			if f.Name == c.Name {
				c.oldType = f.Type
			}
		}
	}
	return c.Ed.RetypeField(c.Class, c.Name, c.NewType)
}

func (c *RetypeFieldCommand) Undo() bool { return c.Ed.RetypeField(c.Class, c.Name, c.oldType) }
func (c *RetypeFieldCommand) Label() string {
	return fmt.Sprintf("retype field %s.%s", c.Class, c.Name)
}

// --- Methods ---
// Positional commands capture durable (name, parameter types)
// identities, never indices: positions shift as the method sequence
// changes, signatures do not.

// AddMethodCommand adds a bare method; its inverse deletes the
// (name, empty-signature) method wherever it now sits.
type AddMethodCommand struct {
	Ed                      *editor.Editor
	Class, ReturnType, Name string
}

func (c *AddMethodCommand) Execute() bool { return c.Ed.AddMethod(c.Class, c.ReturnType, c.Name) }

func (c *AddMethodCommand) Undo() bool {
	pos, ok := c.Ed.MethodPositionOf(c.Class, c.Name, nil)
	if !ok {
		return false
	}
	return c.Ed.DeleteMethod(c.Class, pos)
}

func (c *AddMethodCommand) Label() string {
	return fmt.Sprintf("add method %s.%s", c.Class, c.Name)
}

// DeleteMethodCommand removes the method at a 1-based position,
// capturing the full method view and the position for restoration.
type DeleteMethodCommand struct {
	Ed         *editor.Editor
	Class, Pos string

	captured editor.MethodView
	at       int
}

func (c *DeleteMethodCommand) Execute() bool {
	if mv, ok := c.Ed.MethodViewAt(c.Class, c.Pos); ok {
		c.captured = mv
		c.at, _ = strconv.Atoi(c.Pos)
	}
	return c.Ed.DeleteMethod(c.Class, c.Pos)
}

func (c *DeleteMethodCommand) Undo() bool {
	return c.Ed.RestoreMethod(c.Class, c.at, c.captured)
}

func (c *DeleteMethodCommand) Label() string {
	return fmt.Sprintf("delete method %s[%s]", c.Class, c.Pos)
}

// RenameMethodCommand renames the method at a 1-based position.
type RenameMethodCommand struct {
	Ed                  *editor.Editor
	Class, Pos, NewName string

	oldName string
	types   []string
}

func (c *RenameMethodCommand) Execute() bool {
	if mv, ok := c.Ed.MethodViewAt(c.Class, c.Pos); ok {
		c.oldName = mv.Name
		c.types = paramTypes(mv)
	}
	return c.Ed.RenameMethod(c.Class, c.Pos, c.NewName)
}

func (c *RenameMethodCommand) Undo() bool {
	pos, ok := c.Ed.MethodPositionOf(c.Class, c.NewName, c.types)
	if !ok {
		return false
	}
	return c.Ed.RenameMethod(c.Class, pos, c.oldName)
}

func (c *RenameMethodCommand) Label() string {
	return fmt.Sprintf("rename method %s[%s] to %s", c.Class, c.Pos, c.NewName)
}

// RetypeMethodCommand changes the return type of the method at a
// 1-based position.
type RetypeMethodCommand struct {
	Ed                        *editor.Editor
	Class, Pos, NewReturnType string

	name    string
	types   []string
	oldType string
}

func (c *RetypeMethodCommand) Execute() bool {
	if mv, ok := c.Ed.MethodViewAt(c.Class, c.Pos); ok {
		c.name = mv.Name
		c.types = paramTypes(mv)
		c.oldType = mv.ReturnType
	}
	return c.Ed.RetypeMethod(c.Class, c.Pos, c.NewReturnType)
}

func (c *RetypeMethodCommand) Undo() bool {
	pos, ok := c.Ed.MethodPositionOf(c.Class, c.name, c.types)
	if !ok {
		return false
	}
	return c.Ed.RetypeMethod(c.Class, pos, c.oldType)
}

func (c *RetypeMethodCommand) Label() string {
	return fmt.Sprintf("retype method %s[%s]", c.Class, c.Pos)
}

// --- Parameters ---

// AddParameterCommand appends a parameter to the method at a 1-based
// position.
type AddParameterCommand struct {
	Ed                     *editor.Editor
	Class, Pos, Type, Name string

	methodName string
	oldParams  []domain.Parameter
}

func (c *AddParameterCommand) Execute() bool {
	if mv, ok := c.Ed.MethodViewAt(c.Class, c.Pos); ok {
		c.methodName = mv.Name
		c.oldParams = toParams(mv)
	}
	return c.Ed.AddParameter(c.Class, c.Pos, c.Type, c.Name)
}

func (c *AddParameterCommand) Undo() bool {
	newTypes := typesOf(c.oldParams)
	newTypes = append(newTypes, c.Type)
	pos, ok := c.Ed.MethodPositionOf(c.Class, c.methodName, newTypes)
	if !ok {
		return false
	}
	return c.Ed.SetParameters(c.Class, pos, c.oldParams)
}

func (c *AddParameterCommand) Label() string {
	return fmt.Sprintf("add parameter %s to %s[%s]", c.Name, c.Class, c.Pos)
}

// DeleteParameterCommand removes a parameter by name. Undo replaces the
// whole list to restore the original ordering.
type DeleteParameterCommand struct {
	Ed               *editor.Editor
	Class, Pos, Name string

	methodName string
	oldParams  []domain.Parameter
}

func (c *DeleteParameterCommand) Execute() bool {
	if mv, ok := c.Ed.MethodViewAt(c.Class, c.Pos); ok {
		c.methodName = mv.Name
		c.oldParams = toParams(mv)
	}
	return c.Ed.DeleteParameter(c.Class, c.Pos, c.Name)
}

func (c *DeleteParameterCommand) Undo() bool {
	var remaining []string
	for _, p := range c.oldParams {
		if p.Name != c.Name {
			remaining = append(remaining, p.Type)
		}
	}
	pos, ok := c.Ed.MethodPositionOf(c.Class, c.methodName, remaining)
	if !ok {
		return false
	}
	return c.Ed.SetParameters(c.Class, pos, c.oldParams)
}

func (c *DeleteParameterCommand) Label() string {
	return fmt.Sprintf("delete parameter %s from %s[%s]", c.Name, c.Class, c.Pos)
}

// RenameParameterCommand renames a parameter; signatures are
// unaffected, so the inverse renames it back at the same method.
type RenameParameterCommand struct {
	Ed                   *editor.Editor
	Class, Pos, Old, New string

	methodName string
	types      []string
}

func (c *RenameParameterCommand) Execute() bool {
	if mv, ok := c.Ed.MethodViewAt(c.Class, c.Pos); ok {
		c.methodName = mv.Name
		c.types = paramTypes(mv)
	}
	return c.Ed.RenameParameter(c.Class, c.Pos, c.Old, c.New)
}

func (c *RenameParameterCommand) Undo() bool {
	pos, ok := c.Ed.MethodPositionOf(c.Class, c.methodName, c.types)
	if !ok {
		return false
	}
	return c.Ed.RenameParameter(c.Class, pos, c.New, c.Old)
}

func (c *RenameParameterCommand) Label() string {
	return fmt.Sprintf("rename parameter %s to %s in %s[%s]", c.Old, c.New, c.Class, c.Pos)
}

// RetypeParameterCommand changes a parameter's type tag.
type RetypeParameterCommand struct {
	Ed                        *editor.Editor
	Class, Pos, Name, NewType string

	methodName string
	oldType    string
	newTypes   []string
}

func (c *RetypeParameterCommand) Execute() bool {
	if mv, ok := c.Ed.MethodViewAt(c.Class, c.Pos); ok {
		c.methodName = mv.Name
		c.newTypes = make([]string, len(mv.Params))
		for i, p := range mv.Params {
			c.newTypes[i] = p.Type
			if p.Name == c.Name {
				c.oldType = p.Type
				c.newTypes[i] = c.NewType
			}
		}
	}
	return c.Ed.RetypeParameter(c.Class, c.Pos, c.Name, c.NewType)
}

func (c *RetypeParameterCommand) Undo() bool {
	pos, ok := c.Ed.MethodPositionOf(c.Class, c.methodName, c.newTypes)
	if !ok {
		return false
	}
	return c.Ed.RetypeParameter(c.Class, pos, c.Name, c.oldType)
}

func (c *RetypeParameterCommand) Label() string {
	return fmt.Sprintf("retype parameter %s in %s[%s]", c.Name, c.Class, c.Pos)
}

// SetParametersCommand replaces a method's whole parameter list
// atomically.
type SetParametersCommand struct {
	Ed         *editor.Editor
	Class, Pos string
	Params     []domain.Parameter

	methodName string
	oldParams  []domain.Parameter
}

func (c *SetParametersCommand) Execute() bool {
	if mv, ok := c.Ed.MethodViewAt(c.Class, c.Pos); ok {
		c.methodName = mv.Name
		c.oldParams = toParams(mv)
	}
	return c.Ed.SetParameters(c.Class, c.Pos, c.Params)
}

func (c *SetParametersCommand) Undo() bool {
	pos, ok := c.Ed.MethodPositionOf(c.Class, c.methodName, typesOf(c.Params))
	if !ok {
		return false
	}
	return c.Ed.SetParameters(c.Class, pos, c.oldParams)
}

func (c *SetParametersCommand) Label() string {
	return fmt.Sprintf("set parameters of %s[%s]", c.Class, c.Pos)
}

// --- Relationships ---

// AddRelationshipCommand creates a relationship; its inverse deletes
// the directed pair.
type AddRelationshipCommand struct {
	Ed                *editor.Editor
	Source, Dest, Typ string
}

func (c *AddRelationshipCommand) Execute() bool {
	return c.Ed.AddRelationship(c.Source, c.Dest, c.Typ)
}

func (c *AddRelationshipCommand) Undo() bool {
	return c.Ed.DeleteRelationship(c.Source, c.Dest)
}

func (c *AddRelationshipCommand) Label() string {
	return fmt.Sprintf("relate %s to %s", c.Source, c.Dest)
}

// DeleteRelationshipCommand removes a relationship, capturing its type.
type DeleteRelationshipCommand struct {
	Ed           *editor.Editor
	Source, Dest string

	oldType string
}

func (c *DeleteRelationshipCommand) Execute() bool {
	for _, r := range c.Ed.RelationshipsOf(c.Source) {
		if r.Source == c.Source && r.Destination == c.Dest {
			c.oldType = r.Type
		}
	}
	return c.Ed.DeleteRelationship(c.Source, c.Dest)
}

func (c *DeleteRelationshipCommand) Undo() bool {
	return c.Ed.AddRelationship(c.Source, c.Dest, c.oldType)
}

func (c *DeleteRelationshipCommand) Label() string {
	return fmt.Sprintf("unrelate %s from %s", c.Source, c.Dest)
}

// RetypeRelationshipCommand changes a relationship's type, capturing
// the old one.
type RetypeRelationshipCommand struct {
	Ed                    *editor.Editor
	Source, Dest, NewType string

	oldType string
}

func (c *RetypeRelationshipCommand) Execute() bool {
	for _, r := range c.Ed.RelationshipsOf(c.Source) {
		if r.Source == c.Source && r.Destination == c.Dest {
			c.oldType = r.Type
		}
	}
	return c.Ed.RetypeRelationship(c.Source, c.Dest, c.NewType)
}

func (c *RetypeRelationshipCommand) Undo() bool {
	return c.Ed.RetypeRelationship(c.Source, c.Dest, c.oldType)
}

func (c *RetypeRelationshipCommand) Label() string {
	return fmt.Sprintf("retype relationship %s to %s", c.Source, c.Dest)
}

// --- helpers ---

func paramTypes(mv editor.MethodView) []string {
	types := make([]string, len(mv.Params))
	for i, p := range mv.Params {
		types[i] = p.Type
	}
	return types
}

func toParams(mv editor.MethodView) []domain.Parameter {
	params := make([]domain.Parameter, len(mv.Params))
	for i, p := range mv.Params {
		params[i] = domain.Parameter{Name: p.Name, Type: p.Type}
	}
	return params
}

func typesOf(params []domain.Parameter) []string {
	types := make([]string, len(params))
	for i, p := range params {
		types[i] = p.Type
	}
	return types
}
