package templating

import (
	"bytes"
	"encoding/json"
	"strings"
	"text/template"
	"time"

	"github.com/dustin/go-humanize"
)

// jsonify is the built-in JSON encoder that's made available to templates.
func jsonify(value any) (string, error) {
	// Create a buffer to store the output.
	buffer := &bytes.Buffer{}

	// Create and configure a JSON encoder.
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)

	// Marshal the value.
	if err := encoder.Encode(value); err != nil {
		return "", err
	}

	// Remove the trailing newline that's automatically added by Encode.
	return strings.TrimSuffix(buffer.String(), "\n"), nil
}

// bytesize renders a byte count in human-readable units. Negative sizes are
// rendered as zero.
func bytesize(size int64) string {
	if size < 0 {
		size = 0
	}
	return humanize.Bytes(uint64(size))
}

// relative renders a time relative to the present.
func relative(value time.Time) string {
	return humanize.Time(value)
}

// builtins are the builtin functions supported in output templates.
var builtins = template.FuncMap{
	"json":     jsonify,
	"bytes":    bytesize,
	"relative": relative,
}
