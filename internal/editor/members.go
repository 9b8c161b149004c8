package editor

import (
	"github.com/joss/duml/internal/domain"
	"github.com/joss/duml/internal/event"
)

// --- Fields ---

// AddField adds a typed field to a class. Field names are unique within
// the class.
func (e *Editor) AddField(class, fieldType, name string) bool {
	if !e.validIdents(class, fieldType, name) {
		return false
	}
	if ok, reason := e.diagram.CheckField(class, name, domain.ExpectAbsent); !ok {
		return e.reject("%s", reason)
	}
	c := e.diagram.Class(class)
	c.Fields = append(c.Fields, domain.Field{Name: name, Type: fieldType})
	e.confirm("added field %q to class %q", name, class)
	e.notify(event.FieldAdded, event.Payload{Class: class, Field: name, Type: fieldType})
	return true
}

// DeleteField removes a field by name.
func (e *Editor) DeleteField(class, name string) bool {
	if !e.validIdents(class, name) {
		return false
	}
	if ok, reason := e.diagram.CheckField(class, name, domain.ExpectPresent); !ok {
		return e.reject("%s", reason)
	}
	c := e.diagram.Class(class)
	for i := range c.Fields {
		if c.Fields[i].Name == name {
			c.Fields = append(c.Fields[:i], c.Fields[i+1:]...)
			break
		}
	}
	e.confirm("deleted field %q from class %q", name, class)
	e.notify(event.FieldDeleted, event.Payload{Class: class, Field: name})
	return true
}

// RenameField renames a field; the new name must be free in the class.
func (e *Editor) RenameField(class, oldName, newName string) bool {
	if !e.validIdents(class, oldName, newName) {
		return false
	}
	if oldName == newName {
		return e.reject("field %q already has that name", oldName)
	}
	if ok, reason := e.diagram.CheckField(class, oldName, domain.ExpectPresent); !ok {
		return e.reject("%s", reason)
	}
	if ok, reason := e.diagram.CheckField(class, newName, domain.ExpectAbsent); !ok {
		return e.reject("%s", reason)
	}
	e.diagram.Class(class).Field(oldName).Name = newName
	e.confirm("renamed field %q to %q in class %q", oldName, newName, class)
	e.notify(event.FieldRenamed, event.Payload{Class: class, Field: oldName, NewName: newName})
	return true
}

// RetypeField changes a field's type tag. Setting the current type is a
// no-op and is rejected.
func (e *Editor) RetypeField(class, name, newType string) bool {
	if !e.validIdents(class, name, newType) {
		return false
	}
	if ok, reason := e.diagram.CheckField(class, name, domain.ExpectPresent); !ok {
		return e.reject("%s", reason)
	}
	f := e.diagram.Class(class).Field(name)
	if f.Type == newType {
		return e.reject("field %q already has type %q", name, newType)
	}
	f.Type = newType
	e.confirm("changed type of field %q to %q in class %q", name, newType, class)
	e.notify(event.FieldRetyped, event.Payload{Class: class, Field: name, Type: newType})
	return true
}

// --- Methods ---

// AddMethod creates a bare method with an empty parameter list. Only an
// existing identical (name, empty-signature) method blocks it; full
// collisions are re-checked when the parameter list changes.
func (e *Editor) AddMethod(class, returnType, name string) bool {
	if !e.validIdents(class, returnType, name) {
		return false
	}
	if ok, reason := e.diagram.CheckMethodSignature(class, name, nil, domain.ExpectAbsent); !ok {
		return e.reject("%s", reason)
	}
	c := e.diagram.Class(class)
	c.Methods = append(c.Methods, domain.Method{Name: name, ReturnType: returnType})
	e.confirm("added method %q to class %q", name, class)
	e.notify(event.MethodAdded, event.Payload{
		Class:  class,
		Method: domain.SignatureOf(name, nil),
		Type:   returnType,
	})
	return true
}

// DeleteMethod removes the method at a 1-based textual position.
func (e *Editor) DeleteMethod(class, pos string) bool {
	if !e.validIdents(class) {
		return false
	}
	c, m, n, ok := e.methodByPos(class, pos)
	if !ok {
		return false
	}
	sig := m.Signature()
	c.Methods = append(c.Methods[:n-1], c.Methods[n:]...)
	e.confirm("deleted method %s from class %q", sig, class)
	e.notify(event.MethodDeleted, event.Payload{Class: class, Method: sig})
	return true
}

// RenameMethod renames the method at a 1-based position. The new
// (name, parameter types) signature must be free in the class.
func (e *Editor) RenameMethod(class, pos, newName string) bool {
	if !e.validIdents(class, newName) {
		return false
	}
	c, m, n, ok := e.methodByPos(class, pos)
	if !ok {
		return false
	}
	if m.Name == newName {
		return e.reject("method at position %d already has name %q", n, newName)
	}
	if c.HasMethodSignature(newName, m.ParamTypes(), n) {
		return e.reject("method %s already exists in class %q",
			domain.SignatureOf(newName, m.ParamTypes()), class)
	}
	oldSig := m.Signature()
	m.Name = newName
	e.confirm("renamed method %s to %q in class %q", oldSig, newName, class)
	e.notify(event.MethodRenamed, event.Payload{Class: class, Method: oldSig, NewName: newName})
	return true
}

// RetypeMethod changes the return type of the method at a 1-based
// position. The current return type is rejected as a no-op.
func (e *Editor) RetypeMethod(class, pos, newReturnType string) bool {
	if !e.validIdents(class, newReturnType) {
		return false
	}
	_, m, _, ok := e.methodByPos(class, pos)
	if !ok {
		return false
	}
	if m.ReturnType == newReturnType {
		return e.reject("method %s already returns %q", m.Signature(), newReturnType)
	}
	m.ReturnType = newReturnType
	e.confirm("changed return type of %s to %q in class %q", m.Signature(), newReturnType, class)
	e.notify(event.MethodRetyped, event.Payload{Class: class, Method: m.Signature(), Type: newReturnType})
	return true
}

// RestoreMethod reinserts a previously captured method at its original
// 1-based position, parameters and all. Used by undo, where a bare
// re-add could collide with a surviving same-name overload.
func (e *Editor) RestoreMethod(class string, pos int, mv MethodView) bool {
	if !e.validIdents(class, mv.ReturnType, mv.Name) {
		return false
	}
	c := e.diagram.Class(class)
	if c == nil {
		return e.reject("class %q does not exist", class)
	}
	if pos < 1 || pos > len(c.Methods)+1 {
		return e.reject("class %q cannot restore a method at position %d", class, pos)
	}
	types := make([]string, len(mv.Params))
	params := make([]domain.Parameter, len(mv.Params))
	for i, p := range mv.Params {
		types[i] = p.Type
		params[i] = domain.Parameter{Name: p.Name, Type: p.Type}
	}
	if c.HasMethodSignature(mv.Name, types, 0) {
		return e.reject("method %s already exists in class %q",
			domain.SignatureOf(mv.Name, types), class)
	}
	m := domain.Method{Name: mv.Name, ReturnType: mv.ReturnType, Params: params}
	c.Methods = append(c.Methods, domain.Method{})
	copy(c.Methods[pos:], c.Methods[pos-1:])
	c.Methods[pos-1] = m
	e.confirm("restored method %s in class %q", m.Signature(), class)
	e.notify(event.MethodAdded, event.Payload{Class: class, Method: m.Signature(), Type: m.ReturnType})
	return true
}

// --- Parameters ---

// AddParameter appends a parameter to the method at a 1-based position.
// The resulting signature must stay unique within the class; parameter
// names are unique within the method.
func (e *Editor) AddParameter(class, pos, paramType, name string) bool {
	if !e.validIdents(class, paramType, name) {
		return false
	}
	c, m, n, ok := e.methodByPos(class, pos)
	if !ok {
		return false
	}
	if m.Param(name) != nil {
		return e.reject("parameter %q already exists in method %s", name, m.Signature())
	}
	newTypes := append(m.ParamTypes(), paramType)
	if c.HasMethodSignature(m.Name, newTypes, n) {
		return e.reject("method %s already exists in class %q",
			domain.SignatureOf(m.Name, newTypes), class)
	}
	m.Params = append(m.Params, domain.Parameter{Name: name, Type: paramType})
	e.confirm("added parameter %q to method %s in class %q", name, m.Signature(), class)
	e.notify(event.ParamAdded, event.Payload{Class: class, Method: m.Signature(), Parameter: name, Type: paramType})
	return true
}

// DeleteParameter removes a parameter by name from the method at a
// 1-based position. The shortened signature must stay unique.
func (e *Editor) DeleteParameter(class, pos, name string) bool {
	if !e.validIdents(class, name) {
		return false
	}
	c, m, n, ok := e.methodByPos(class, pos)
	if !ok {
		return false
	}
	if m.Param(name) == nil {
		return e.reject("parameter %q does not exist in method %s", name, m.Signature())
	}
	var newTypes []string
	for _, p := range m.Params {
		if p.Name != name {
			newTypes = append(newTypes, p.Type)
		}
	}
	if c.HasMethodSignature(m.Name, newTypes, n) {
		return e.reject("removing %q would collide with method %s in class %q",
			name, domain.SignatureOf(m.Name, newTypes), class)
	}
	for i := range m.Params {
		if m.Params[i].Name == name {
			m.Params = append(m.Params[:i], m.Params[i+1:]...)
			break
		}
	}
	e.confirm("deleted parameter %q from method %s in class %q", name, m.Signature(), class)
	e.notify(event.ParamDeleted, event.Payload{Class: class, Method: m.Signature(), Parameter: name})
	return true
}

// RenameParameter renames a parameter; signatures are unaffected.
func (e *Editor) RenameParameter(class, pos, oldName, newName string) bool {
	if !e.validIdents(class, oldName, newName) {
		return false
	}
	_, m, _, ok := e.methodByPos(class, pos)
	if !ok {
		return false
	}
	if oldName == newName {
		return e.reject("parameter %q already has that name", oldName)
	}
	p := m.Param(oldName)
	if p == nil {
		return e.reject("parameter %q does not exist in method %s", oldName, m.Signature())
	}
	if m.Param(newName) != nil {
		return e.reject("parameter %q already exists in method %s", newName, m.Signature())
	}
	p.Name = newName
	e.confirm("renamed parameter %q to %q in method %s", oldName, newName, m.Signature())
	e.notify(event.ParamRenamed, event.Payload{Class: class, Method: m.Signature(), Parameter: oldName, NewName: newName})
	return true
}

// RetypeParameter changes a parameter's type tag. The resulting
// signature must stay unique within the class.
func (e *Editor) RetypeParameter(class, pos, name, newType string) bool {
	if !e.validIdents(class, name, newType) {
		return false
	}
	c, m, n, ok := e.methodByPos(class, pos)
	if !ok {
		return false
	}
	p := m.Param(name)
	if p == nil {
		return e.reject("parameter %q does not exist in method %s", name, m.Signature())
	}
	if p.Type == newType {
		return e.reject("parameter %q already has type %q", name, newType)
	}
	newTypes := make([]string, len(m.Params))
	for i, mp := range m.Params {
		newTypes[i] = mp.Type
		if mp.Name == name {
			newTypes[i] = newType
		}
	}
	if c.HasMethodSignature(m.Name, newTypes, n) {
		return e.reject("method %s already exists in class %q",
			domain.SignatureOf(m.Name, newTypes), class)
	}
	p.Type = newType
	e.confirm("changed type of parameter %q to %q in method %s", name, newType, m.Signature())
	e.notify(event.ParamRetyped, event.Payload{Class: class, Method: m.Signature(), Parameter: name, Type: newType})
	return true
}

// SetParameters replaces the whole parameter list of the method at a
// 1-based position. Uniqueness is re-validated against every other
// method of the class; on any collision the replacement is rejected
// atomically and the old list survives untouched.
func (e *Editor) SetParameters(class, pos string, params []domain.Parameter) bool {
	if !e.validIdents(class) {
		return false
	}
	for _, p := range params {
		if !e.validIdents(p.Type, p.Name) {
			return false
		}
	}
	c, m, n, ok := e.methodByPos(class, pos)
	if !ok {
		return false
	}
	seen := make(map[string]bool, len(params))
	newTypes := make([]string, len(params))
	for i, p := range params {
		if seen[p.Name] {
			return e.reject("duplicate parameter %q in replacement list", p.Name)
		}
		seen[p.Name] = true
		newTypes[i] = p.Type
	}
	if c.HasMethodSignature(m.Name, newTypes, n) {
		return e.reject("method %s already exists in class %q",
			domain.SignatureOf(m.Name, newTypes), class)
	}
	m.Params = append([]domain.Parameter(nil), params...)
	e.confirm("replaced parameters of method %s in class %q", m.Signature(), class)
	e.notify(event.ParamsSet, event.Payload{Class: class, Method: m.Signature()})
	return true
}
