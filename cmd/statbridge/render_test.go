package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/mutagen-io/statbridge/pkg/configuration"
	"github.com/mutagen-io/statbridge/pkg/filesystem/bridge"
)

func init() {
	color.NoColor = true
}

func TestFormatSize(t *testing.T) {
	if value := formatSize(2048, false); value != "2048" {
		t.Error("raw size rendered incorrectly:", value)
	}
	if value := formatSize(2048, true); value != "2.0 kB (2048 bytes)" {
		t.Error("humanized size rendered incorrectly:", value)
	}
	if value := formatSize(-1, true); value != "-1" {
		t.Error("negative size rendered incorrectly:", value)
	}
}

func TestFormatFieldValue(t *testing.T) {
	testCases := []struct {
		value    bridge.FieldValue
		expected string
	}{
		{bridge.FieldValue{Field: bridge.Field{Name: "Mode"}, Value: int32(0100644)}, "0100644"},
		{bridge.FieldValue{Field: bridge.Field{Name: "Inode"}, Value: int32(-5)}, "-5"},
		{bridge.FieldValue{Field: bridge.Field{Name: "Size"}, Value: int64(10)}, "10"},
		{bridge.FieldValue{Field: bridge.Field{Name: "Name"}, Value: "a b"}, `"a b"`},
		{bridge.FieldValue{Field: bridge.Field{Name: "Type"}, Value: bridge.EntryTypeSymbolicLink}, "symlink"},
		{bridge.FieldValue{Field: bridge.Field{Name: "Kind"}, Value: bridge.KindNoSuchFile}, "no such file"},
	}
	for _, testCase := range testCases {
		if value := formatFieldValue(testCase.value, false); value != testCase.expected {
			t.Errorf("field %s rendered as %q, expected %q", testCase.value.Field.Name, value, testCase.expected)
		}
	}
}

func TestPrintRecord(t *testing.T) {
	registry, err := bridge.LoadRegistry([]bridge.TypeDeclaration{{
		Name:      "Entry",
		Prototype: bridge.DirectoryEntry{},
		Fields: []bridge.FieldDeclaration{
			{Name: "Name", Type: bridge.FieldString},
			{Name: "Type", Type: bridge.FieldInt32},
		},
	}})
	if err != nil {
		t.Fatal("unable to load registry:", err)
	}

	buffer := &bytes.Buffer{}
	entry := &bridge.DirectoryEntry{Name: "file", Type: bridge.EntryTypeFile}
	if err := printRecord(buffer, registry, "Entry", entry, nil, false); err != nil {
		t.Fatal("unable to print record:", err)
	}
	if output := buffer.String(); output != "Name: \"file\"\nType: file\n" {
		t.Errorf("unexpected record output: %q", output)
	}

	if err := printRecord(buffer, registry, "Missing", entry, nil, false); err == nil {
		t.Error("record printed with unknown schema")
	}
	if err := printRecord(buffer, registry, "Entry", &bridge.Metadata{}, nil, false); err == nil {
		t.Error("record printed with mismatched type")
	}
}

func TestPrintRecordFields(t *testing.T) {
	loaded, err := bridge.Load(nil)
	if err != nil {
		t.Fatal("unable to load bridge:", err)
	}
	defer loaded.Unload()
	registry := loaded.Registry()

	buffer := &bytes.Buffer{}
	metadata := &bridge.Metadata{Mode: 0100755, Size: 2048}
	if err := printRecord(buffer, registry, bridge.SchemaMetadata, metadata, []string{"Size", "Mode"}, true); err != nil {
		t.Fatal("unable to print record fields:", err)
	}
	if output := buffer.String(); output != "Size: 2.0 kB (2048 bytes)\nMode: 0100755\n" {
		t.Errorf("unexpected field output: %q", output)
	}

	if err := printRecord(buffer, registry, bridge.SchemaMetadata, metadata, []string{"Missing"}, false); err == nil {
		t.Error("unknown field printed")
	}
}

func TestFilterEntries(t *testing.T) {
	configuration := configuration.Default()
	configuration.List.Exclude = []string{"*.tmp"}
	entries := []bridge.DirectoryEntry{
		{Name: "keep.go", Type: bridge.EntryTypeFile},
		{Name: "scratch.tmp", Type: bridge.EntryTypeFile},
		{Name: ".git", Type: bridge.EntryTypeDirectory},
		{Name: "cafe\u0301", Type: bridge.EntryTypeFile},
	}
	filtered := filterEntries(entries, configuration, []string{".git"}, true)
	if len(filtered) != 2 {
		t.Fatal("unexpected filtered entry count:", len(filtered))
	}
	if filtered[0].Name != "keep.go" {
		t.Error("unexpected first entry:", filtered[0].Name)
	}
	if filtered[1].Name != "caf\u00e9" {
		t.Error("entry name not normalized:", filtered[1].Name)
	}
}

func TestColorEntryTypeDisabled(t *testing.T) {
	if value := colorEntryType(bridge.EntryTypeDirectory, "directory"); strings.ContainsRune(value, '\x1b') {
		t.Error("color emitted with color disabled")
	}
}
