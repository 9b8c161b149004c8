// Package event provides the notification bus that keeps front ends
// synchronized with the diagram after every successful mutation.
package event

// Kind is the closed tag identifying which action a notification
// reports.
type Kind string

const (
	ClassAdded   Kind = "class_added"
	ClassDeleted Kind = "class_deleted"
	ClassRenamed Kind = "class_renamed"
	ClassMoved   Kind = "class_moved"

	FieldAdded   Kind = "field_added"
	FieldDeleted Kind = "field_deleted"
	FieldRenamed Kind = "field_renamed"
	FieldRetyped Kind = "field_retyped"

	MethodAdded   Kind = "method_added"
	MethodDeleted Kind = "method_deleted"
	MethodRenamed Kind = "method_renamed"
	MethodRetyped Kind = "method_retyped"

	ParamAdded    Kind = "param_added"
	ParamDeleted  Kind = "param_deleted"
	ParamRenamed  Kind = "param_renamed"
	ParamRetyped  Kind = "param_retyped"
	ParamsSet     Kind = "params_set"

	RelationshipAdded   Kind = "relationship_added"
	RelationshipDeleted Kind = "relationship_deleted"
	RelationshipRetyped Kind = "relationship_retyped"

	DiagramReset  Kind = "diagram_reset"
	DiagramLoaded Kind = "diagram_loaded"
)

// Payload carries the identifiers a mutation touched, never references
// to the entities themselves. Only the fields relevant to the Kind are
// populated.
type Payload struct {
	Class       string `json:"class,omitempty"`
	NewName     string `json:"new_name,omitempty"`
	Field       string `json:"field,omitempty"`
	Method      string `json:"method,omitempty"` // overload-aware signature
	Parameter   string `json:"parameter,omitempty"`
	Source      string `json:"source,omitempty"`
	Destination string `json:"destination,omitempty"`
	Type        string `json:"type,omitempty"`
	X           int    `json:"x,omitempty"`
	Y           int    `json:"y,omitempty"`
}
