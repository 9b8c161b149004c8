package domain

import (
	"fmt"
	"regexp"
)

// identPattern is the single identifier-syntax rule applied everywhere
// user text becomes an identifier.
var identPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// ValidIdentifier reports whether s is a legal identifier. Empty and
// whitespace-only strings fail the pattern.
func ValidIdentifier(s string) bool {
	return identPattern.MatchString(s)
}

// Expect states whether a validation target should already exist.
type Expect bool

const (
	ExpectPresent Expect = true
	ExpectAbsent  Expect = false
)

// CheckClass validates class presence against the expectation. It never
// panics or errors; on failure it returns false and a human-readable
// reason for the message channel.
func (d *Diagram) CheckClass(name string, want Expect) (bool, string) {
	exists := d.Class(name) != nil
	switch {
	case want == ExpectPresent && !exists:
		return false, fmt.Sprintf("class %q does not exist", name)
	case want == ExpectAbsent && exists:
		return false, fmt.Sprintf("class %q already exists", name)
	}
	return true, ""
}

// CheckField validates field presence within a class. The class itself
// must exist.
func (d *Diagram) CheckField(class, field string, want Expect) (bool, string) {
	c := d.Class(class)
	if c == nil {
		return false, fmt.Sprintf("class %q does not exist", class)
	}
	exists := c.Field(field) != nil
	switch {
	case want == ExpectPresent && !exists:
		return false, fmt.Sprintf("field %q does not exist in class %q", field, class)
	case want == ExpectAbsent && exists:
		return false, fmt.Sprintf("field %q already exists in class %q", field, class)
	}
	return true, ""
}

// CheckMethodSignature validates overload-aware method presence.
func (d *Diagram) CheckMethodSignature(class, name string, paramTypes []string, want Expect) (bool, string) {
	c := d.Class(class)
	if c == nil {
		return false, fmt.Sprintf("class %q does not exist", class)
	}
	exists := c.MethodPosition(name, paramTypes) != 0
	sig := SignatureOf(name, paramTypes)
	switch {
	case want == ExpectPresent && !exists:
		return false, fmt.Sprintf("method %s does not exist in class %q", sig, class)
	case want == ExpectAbsent && exists:
		return false, fmt.Sprintf("method %s already exists in class %q", sig, class)
	}
	return true, ""
}

// CheckParameter validates parameter presence within the method at the
// given 1-based position.
func (d *Diagram) CheckParameter(class string, methodPos int, param string, want Expect) (bool, string) {
	c := d.Class(class)
	if c == nil {
		return false, fmt.Sprintf("class %q does not exist", class)
	}
	m := c.MethodAt(methodPos)
	if m == nil {
		return false, fmt.Sprintf("class %q has no method at position %d", class, methodPos)
	}
	exists := m.Param(param) != nil
	switch {
	case want == ExpectPresent && !exists:
		return false, fmt.Sprintf("parameter %q does not exist in method %s", param, m.Signature())
	case want == ExpectAbsent && exists:
		return false, fmt.Sprintf("parameter %q already exists in method %s", param, m.Signature())
	}
	return true, ""
}

// CheckRelationship validates directed-pair presence. Both endpoints
// must exist regardless of the expectation; this is the single
// authoritative existence check run before any relationship is built.
func (d *Diagram) CheckRelationship(source, destination string, want Expect) (bool, string) {
	if ok, reason := d.CheckClass(source, ExpectPresent); !ok {
		return false, reason
	}
	if ok, reason := d.CheckClass(destination, ExpectPresent); !ok {
		return false, reason
	}
	exists := d.Relationship(source, destination) != nil
	switch {
	case want == ExpectPresent && !exists:
		return false, fmt.Sprintf("no relationship from %q to %q", source, destination)
	case want == ExpectAbsent && exists:
		return false, fmt.Sprintf("relationship from %q to %q already exists", source, destination)
	}
	return true, ""
}
