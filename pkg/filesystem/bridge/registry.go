package bridge

import (
	"fmt"
	"reflect"
	"sync/atomic"
)

// FieldType is the primitive type of a record field.
type FieldType uint8

const (
	// FieldInt32 is a 32-bit signed integer field.
	FieldInt32 FieldType = iota
	// FieldInt64 is a 64-bit signed integer field.
	FieldInt64
	// FieldString is a string field.
	FieldString
)

// String returns a human-readable name for the field type.
func (t FieldType) String() string {
	switch t {
	case FieldInt32:
		return "int32"
	case FieldInt64:
		return "int64"
	case FieldString:
		return "string"
	default:
		return "unknown"
	}
}

// kind returns the reflection kind that a field of this type must have.
func (t FieldType) kind() reflect.Kind {
	switch t {
	case FieldInt32:
		return reflect.Int32
	case FieldInt64:
		return reflect.Int64
	case FieldString:
		return reflect.String
	default:
		return reflect.Invalid
	}
}

// FieldDeclaration declares a named record field and its primitive type.
type FieldDeclaration struct {
	// Name is the field name.
	Name string
	// Type is the field's primitive type.
	Type FieldType
}

// TypeDeclaration declares a record type and the fields the bridge relies on.
type TypeDeclaration struct {
	// Name is the name under which the resolved schema is registered.
	Name string
	// Prototype is a zero value of the record type.
	Prototype any
	// Fields are the fields that must be present on the record type.
	Fields []FieldDeclaration
}

// Field is a resolved record field.
type Field struct {
	// Name is the field name.
	Name string
	// Type is the field's primitive type.
	Type FieldType
	// index is the reflection index of the field within its struct.
	index []int
}

// Schema is a fully resolved record type.
type Schema struct {
	// name is the registered name of the schema.
	name string
	// recordType is the resolved struct type.
	recordType reflect.Type
	// fields are the resolved fields in declaration order.
	fields []Field
	// fieldIndices maps field names to their indices within fields.
	fieldIndices map[string]int
}

// Name returns the registered name of the schema.
func (s *Schema) Name() string {
	return s.name
}

// Fields returns the resolved fields in declaration order. The result must not
// be modified.
func (s *Schema) Fields() []Field {
	return s.fields
}

// record converts a record (or pointer to a record) into an addressable struct
// value, verifying that it has the schema's type.
func (s *Schema) record(record any) (reflect.Value, error) {
	value := reflect.ValueOf(record)
	if !value.IsValid() {
		return reflect.Value{}, fmt.Errorf("nil record for schema %s", s.name)
	} else if value.Kind() == reflect.Pointer && !value.IsNil() {
		value = value.Elem()
	}
	if value.Type() != s.recordType {
		return reflect.Value{}, fmt.Errorf("record type %s does not match schema %s", value.Type(), s.name)
	}
	return value, nil
}

// Value returns the value of the named field within the specified record.
func (s *Schema) Value(record any, field string) (any, error) {
	value, err := s.record(record)
	if err != nil {
		return nil, err
	}
	index, ok := s.fieldIndices[field]
	if !ok {
		return nil, fmt.Errorf("schema %s has no field %s", s.name, field)
	}
	return value.FieldByIndex(s.fields[index].index).Interface(), nil
}

// FieldValue pairs a field with its value in a specific record.
type FieldValue struct {
	// Field is the resolved field.
	Field Field
	// Value is the field value.
	Value any
}

// Values returns every declared field of the record along with its value, in
// declaration order.
func (s *Schema) Values(record any) ([]FieldValue, error) {
	value, err := s.record(record)
	if err != nil {
		return nil, err
	}
	results := make([]FieldValue, len(s.fields))
	for i, field := range s.fields {
		results[i] = FieldValue{
			Field: field,
			Value: value.FieldByIndex(field.index).Interface(),
		}
	}
	return results, nil
}

// resolve resolves a type declaration into a schema. It fails if the prototype
// isn't a struct or if any declared field is absent or has the wrong type.
func resolve(declaration TypeDeclaration) (*Schema, error) {
	// Resolve the record type.
	if declaration.Prototype == nil {
		return nil, fmt.Errorf("type %s has no prototype", declaration.Name)
	}
	recordType := reflect.TypeOf(declaration.Prototype)
	if recordType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("type %s is not a struct", declaration.Name)
	}

	// Resolve each field.
	schema := &Schema{
		name:         declaration.Name,
		recordType:   recordType,
		fields:       make([]Field, 0, len(declaration.Fields)),
		fieldIndices: make(map[string]int, len(declaration.Fields)),
	}
	for _, field := range declaration.Fields {
		structField, ok := recordType.FieldByName(field.Name)
		if !ok {
			return nil, fmt.Errorf("unable to resolve field %s.%s", declaration.Name, field.Name)
		} else if structField.Type.Kind() != field.Type.kind() {
			return nil, fmt.Errorf("field %s.%s has kind %s, expected %s",
				declaration.Name, field.Name, structField.Type.Kind(), field.Type,
			)
		} else if _, duplicate := schema.fieldIndices[field.Name]; duplicate {
			return nil, fmt.Errorf("field %s.%s declared more than once", declaration.Name, field.Name)
		}
		schema.fieldIndices[field.Name] = len(schema.fields)
		schema.fields = append(schema.fields, Field{
			Name:  field.Name,
			Type:  field.Type,
			index: structField.Index,
		})
	}

	// Success.
	return schema, nil
}

// Registry holds the resolved schemas for all record types produced by the
// bridge. It is written once by LoadRegistry and is read-only thereafter, so
// concurrent lookups require no locking.
type Registry struct {
	// schemas maps registered names to resolved schemas.
	schemas map[string]*Schema
	// unloaded indicates that Unload has been called.
	unloaded atomic.Bool
}

// LoadRegistry resolves every declaration. If any declaration fails to
// resolve, no registry is returned.
func LoadRegistry(declarations []TypeDeclaration) (*Registry, error) {
	schemas := make(map[string]*Schema, len(declarations))
	for _, declaration := range declarations {
		if _, duplicate := schemas[declaration.Name]; duplicate {
			return nil, fmt.Errorf("type %s declared more than once", declaration.Name)
		}
		schema, err := resolve(declaration)
		if err != nil {
			return nil, err
		}
		schemas[declaration.Name] = schema
	}
	return &Registry{schemas: schemas}, nil
}

// Loaded returns whether or not the registry is usable, i.e. Unload hasn't
// been called.
func (r *Registry) Loaded() bool {
	return !r.unloaded.Load()
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int {
	return len(r.schemas)
}

// Schema returns the schema registered under the specified name. It returns
// false if no such schema exists or if the registry has been unloaded.
func (r *Registry) Schema(name string) (*Schema, bool) {
	if r.unloaded.Load() {
		return nil, false
	}
	schema, ok := r.schemas[name]
	return schema, ok
}

// Unload marks the registry as unusable. It is safe to call more than once.
// Schemas already obtained remain valid for their holders, but no further
// lookups succeed.
func (r *Registry) Unload() bool {
	return r.unloaded.CompareAndSwap(false, true)
}

const (
	// SchemaMetadata is the registered name of the Metadata schema.
	SchemaMetadata = "Metadata"
	// SchemaDirectoryEntry is the registered name of the DirectoryEntry
	// schema.
	SchemaDirectoryEntry = "DirectoryEntry"
	// SchemaError is the registered name of the Error schema.
	SchemaError = "Error"
)

// declarations are the record types produced by the bridge.
var declarations = []TypeDeclaration{
	{
		Name:      SchemaMetadata,
		Prototype: Metadata{},
		Fields: []FieldDeclaration{
			{"Device", FieldInt32},
			{"Inode", FieldInt32},
			{"Mode", FieldInt32},
			{"UID", FieldInt32},
			{"GID", FieldInt32},
			{"Size", FieldInt64},
			{"AccessTimeSeconds", FieldInt32},
			{"AccessTimeNanoseconds", FieldInt32},
			{"ModificationTimeSeconds", FieldInt32},
			{"ModificationTimeNanoseconds", FieldInt32},
			{"ChangeTimeSeconds", FieldInt32},
			{"ChangeTimeNanoseconds", FieldInt32},
		},
	},
	{
		Name:      SchemaDirectoryEntry,
		Prototype: DirectoryEntry{},
		Fields: []FieldDeclaration{
			{"Name", FieldString},
			{"Type", FieldInt32},
		},
	},
	{
		Name:      SchemaError,
		Prototype: Error{},
		Fields: []FieldDeclaration{
			{"Kind", FieldInt32},
			{"Path", FieldString},
			{"Message", FieldString},
		},
	},
}
