// Package domain defines the class-diagram entity model.
// The diagram exclusively owns its classes and relationships; a class
// owns its fields and methods, a method owns its parameters.
package domain

// Field is a named, typed attribute of a class. Unique by name within
// its owning class.
type Field struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Parameter is a named, typed method argument. Unique by name within
// its owning method.
type Parameter struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Method is a class operation. Two methods of a class may share a name
// as long as their ordered parameter-type lists differ.
type Method struct {
	Name       string      `json:"name"`
	ReturnType string      `json:"return_type"`
	Params     []Parameter `json:"params,omitempty"`
}

// ParamTypes returns the ordered parameter-type list.
func (m *Method) ParamTypes() []string {
	types := make([]string, len(m.Params))
	for i, p := range m.Params {
		types[i] = p.Type
	}
	return types
}

// Signature renders the overload-aware identity of the method,
// e.g. "move(int, int)".
func (m *Method) Signature() string {
	return SignatureOf(m.Name, m.ParamTypes())
}

// SignatureOf builds a signature string from a name and parameter types.
func SignatureOf(name string, paramTypes []string) string {
	s := name + "("
	for i, t := range paramTypes {
		if i > 0 {
			s += ", "
		}
		s += t
	}
	return s + ")"
}

// Param returns the parameter with the given name, or nil.
func (m *Method) Param(name string) *Parameter {
	for i := range m.Params {
		if m.Params[i].Name == name {
			return &m.Params[i]
		}
	}
	return nil
}

// SameSignature reports whether the method matches (name, paramTypes).
func (m *Method) SameSignature(name string, paramTypes []string) bool {
	if m.Name != name || len(m.Params) != len(paramTypes) {
		return false
	}
	for i, p := range m.Params {
		if p.Type != paramTypes[i] {
			return false
		}
	}
	return true
}

// Position is opaque canvas metadata. The core stores it for the canvas
// front end and never interprets it.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Class is a named container of fields and methods.
type Class struct {
	Name     string   `json:"name"`
	Fields   []Field  `json:"fields,omitempty"`
	Methods  []Method `json:"methods,omitempty"`
	Position Position `json:"-"`
}

// Field returns the field with the given name, or nil.
func (c *Class) Field(name string) *Field {
	for i := range c.Fields {
		if c.Fields[i].Name == name {
			return &c.Fields[i]
		}
	}
	return nil
}

// MethodAt returns the method at 1-based position pos, or nil when the
// position is out of range.
func (c *Class) MethodAt(pos int) *Method {
	if pos < 1 || pos > len(c.Methods) {
		return nil
	}
	return &c.Methods[pos-1]
}

// MethodPosition returns the 1-based position of the method with the
// given signature, or 0 when absent. Signatures are durable across
// insertions and deletions, unlike raw indices.
func (c *Class) MethodPosition(name string, paramTypes []string) int {
	for i := range c.Methods {
		if c.Methods[i].SameSignature(name, paramTypes) {
			return i + 1
		}
	}
	return 0
}

// HasMethodSignature reports whether any method other than the one at
// exceptPos (1-based, 0 = none) carries the given signature.
func (c *Class) HasMethodSignature(name string, paramTypes []string, exceptPos int) bool {
	for i := range c.Methods {
		if i+1 == exceptPos {
			continue
		}
		if c.Methods[i].SameSignature(name, paramTypes) {
			return true
		}
	}
	return false
}
