package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/mutagen-io/statbridge/cmd"
	"github.com/mutagen-io/statbridge/pkg/filesystem/bridge"
	"github.com/mutagen-io/statbridge/pkg/logging"
	"github.com/mutagen-io/statbridge/pkg/must"
)

// colorEntryType colors text according to an entry type.
func colorEntryType(entryType bridge.EntryType, text string) string {
	switch entryType {
	case bridge.EntryTypeDirectory:
		return color.BlueString(text)
	case bridge.EntryTypeSymbolicLink:
		return color.CyanString(text)
	case bridge.EntryTypeFile:
		return text
	default:
		return color.YellowString(text)
	}
}

// formatEntryType renders an entry type, colored by type.
func formatEntryType(entryType bridge.EntryType) string {
	return colorEntryType(entryType, entryType.String())
}

// formatSize renders a size, optionally in human-readable units.
func formatSize(size int64, humanizeSizes bool) string {
	if humanizeSizes && size >= 0 {
		return fmt.Sprintf("%s (%d bytes)", humanize.Bytes(uint64(size)), size)
	}
	return fmt.Sprintf("%d", size)
}

// formatFieldValue renders a single record field value.
func formatFieldValue(value bridge.FieldValue, humanizeSizes bool) string {
	switch v := value.Value.(type) {
	case bridge.EntryType:
		return formatEntryType(v)
	case bridge.Kind:
		return v.String()
	case int64:
		if value.Field.Name == "Size" {
			return formatSize(v, humanizeSizes)
		}
		return fmt.Sprintf("%d", v)
	case int32:
		if value.Field.Name == "Mode" {
			return fmt.Sprintf("%#o", uint32(v))
		}
		return fmt.Sprintf("%d", v)
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprint(v)
	}
}

// selectValues extracts the named fields of a record, in the order given. If
// no fields are named, then every field is extracted in schema order.
func selectValues(schema *bridge.Schema, record any, fields []string) ([]bridge.FieldValue, error) {
	if len(fields) == 0 {
		return schema.Values(record)
	}
	values := make([]bridge.FieldValue, 0, len(fields))
	for _, field := range fields {
		value, err := schema.Value(record, field)
		if err != nil {
			return nil, err
		}
		values = append(values, bridge.FieldValue{Field: bridge.Field{Name: field}, Value: value})
	}
	return values, nil
}

// printRecord prints the named fields of a record (or every field, in schema
// order, if none are named) as aligned name/value lines.
func printRecord(output io.Writer, registry *bridge.Registry, schemaName string, record any, fields []string, humanizeSizes bool) error {
	// Resolve the schema.
	schema, ok := registry.Schema(schemaName)
	if !ok {
		return fmt.Errorf("record schema %s unavailable", schemaName)
	}

	// Extract values.
	values, err := selectValues(schema, record, fields)
	if err != nil {
		return fmt.Errorf("unable to extract record values: %w", err)
	}

	// Compute the name column width.
	var width int
	for _, value := range values {
		if len(value.Field.Name) > width {
			width = len(value.Field.Name)
		}
	}

	// Print fields.
	for _, value := range values {
		name := value.Field.Name + ":"
		fmt.Fprintf(output, "%s%s %s\n",
			name, strings.Repeat(" ", width+1-len(name)),
			formatFieldValue(value, humanizeSizes),
		)
	}

	// Success.
	return nil
}

// diagnose prints the structured error record for bridge failures to
// standard error when debugging is enabled, then returns the error unchanged.
func (s *session) diagnose(err error) error {
	var failure *bridge.Error
	if s.logger.Level() >= logging.LevelDebug && errors.As(err, &failure) {
		fmt.Fprintln(color.Error, cmd.DelimiterLine)
		must.Succeed(
			printRecord(color.Error, s.bridge.Registry(), bridge.SchemaError, failure, nil, false),
			"failure record rendering", s.logger,
		)
		fmt.Fprintln(color.Error, cmd.DelimiterLine)
	}
	return err
}
