package bridge

import (
	"testing"
)

func TestLoadRegistryBuiltinDeclarations(t *testing.T) {
	registry, err := LoadRegistry(declarations)
	if err != nil {
		t.Fatal("unable to load registry:", err)
	}
	if registry.Len() != len(declarations) {
		t.Error("registry schema count mismatch:", registry.Len())
	}
	for _, name := range []string{SchemaMetadata, SchemaDirectoryEntry, SchemaError} {
		if _, ok := registry.Schema(name); !ok {
			t.Error("schema not registered:", name)
		}
	}
	if _, ok := registry.Schema("Unknown"); ok {
		t.Error("unknown schema resolved")
	}
}

func TestMetadataSchemaWidths(t *testing.T) {
	registry, err := LoadRegistry(declarations)
	if err != nil {
		t.Fatal("unable to load registry:", err)
	}
	schema, _ := registry.Schema(SchemaMetadata)
	for _, field := range schema.Fields() {
		if field.Name == "Size" {
			if field.Type != FieldInt64 {
				t.Error("size field is not 64-bit")
			}
		} else if field.Type != FieldInt32 {
			t.Error("field is not 32-bit:", field.Name)
		}
	}
}

type partialRecord struct {
	Present int32
}

type wideRecord struct {
	Value int64
}

func TestLoadRegistryFailsAsWhole(t *testing.T) {
	testCases := []struct {
		description  string
		declarations []TypeDeclaration
	}{
		{"missing field", []TypeDeclaration{
			{Name: "Good", Prototype: partialRecord{}, Fields: []FieldDeclaration{{"Present", FieldInt32}}},
			{Name: "Bad", Prototype: partialRecord{}, Fields: []FieldDeclaration{{"Absent", FieldInt32}}},
		}},
		{"wrong width", []TypeDeclaration{
			{Name: "Wide", Prototype: wideRecord{}, Fields: []FieldDeclaration{{"Value", FieldInt32}}},
		}},
		{"not a struct", []TypeDeclaration{
			{Name: "Scalar", Prototype: int32(0)},
		}},
		{"nil prototype", []TypeDeclaration{
			{Name: "Nil"},
		}},
		{"duplicate type", []TypeDeclaration{
			{Name: "Twice", Prototype: partialRecord{}},
			{Name: "Twice", Prototype: partialRecord{}},
		}},
		{"duplicate field", []TypeDeclaration{
			{Name: "Fields", Prototype: partialRecord{}, Fields: []FieldDeclaration{
				{"Present", FieldInt32}, {"Present", FieldInt32},
			}},
		}},
	}
	for _, testCase := range testCases {
		if registry, err := LoadRegistry(testCase.declarations); err == nil {
			t.Errorf("%s: registry loaded successfully", testCase.description)
		} else if registry != nil {
			t.Errorf("%s: partial registry returned", testCase.description)
		}
	}
}

func TestSchemaValues(t *testing.T) {
	registry, err := LoadRegistry(declarations)
	if err != nil {
		t.Fatal("unable to load registry:", err)
	}
	schema, _ := registry.Schema(SchemaDirectoryEntry)
	entry := &DirectoryEntry{Name: "file", Type: EntryTypeFile}

	if value, err := schema.Value(entry, "Name"); err != nil {
		t.Error("unable to read name field:", err)
	} else if value != "file" {
		t.Error("name field mismatch:", value)
	}
	if value, err := schema.Value(*entry, "Type"); err != nil {
		t.Error("unable to read type field from value record:", err)
	} else if value != EntryTypeFile {
		t.Error("type field mismatch:", value)
	}
	if _, err := schema.Value(entry, "Missing"); err == nil {
		t.Error("missing field read successfully")
	}
	if _, err := schema.Value(&Metadata{}, "Name"); err == nil {
		t.Error("mismatched record type accepted")
	}
	if _, err := schema.Value(nil, "Name"); err == nil {
		t.Error("nil record accepted")
	}

	values, err := schema.Values(entry)
	if err != nil {
		t.Fatal("unable to read record values:", err)
	}
	if len(values) != 2 || values[0].Field.Name != "Name" || values[1].Field.Name != "Type" {
		t.Error("record values not in declaration order:", values)
	}
}

func TestRegistryUnload(t *testing.T) {
	registry, err := LoadRegistry(declarations)
	if err != nil {
		t.Fatal("unable to load registry:", err)
	}
	if !registry.Loaded() {
		t.Fatal("registry not loaded")
	}
	if !registry.Unload() {
		t.Error("first unload reported no-op")
	}
	if registry.Unload() {
		t.Error("second unload reported state change")
	}
	if registry.Loaded() {
		t.Error("registry loaded after unload")
	}
	if _, ok := registry.Schema(SchemaMetadata); ok {
		t.Error("schema resolved after unload")
	}
}
