package schema

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError reports malformed raw text, with an editor-style 1-based
// line/column position when the failing byte offset is known.
type ParseError struct {
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Column, e.Message)
	}
	return "parse error: " + e.Message
}

// Parse turns a raw template document into a typed Template. Malformed
// JSON yields a *ParseError with a position; a well-formed document
// that does not match the template schema yields a *SchemaError.
func Parse(raw []byte) (*Template, error) {
	if !json.Valid(raw) {
		// Re-decode to recover the failing offset.
		var probe interface{}
		err := json.Unmarshal(raw, &probe)
		if syntaxErr, ok := err.(*json.SyntaxError); ok {
			line, col := Position(raw, syntaxErr.Offset)
			return nil, &ParseError{Message: syntaxErr.Error(), Line: line, Column: col}
		}
		msg := "invalid JSON"
		if err != nil {
			msg = err.Error()
		}
		return nil, &ParseError{Message: msg}
	}
	return Decode(raw)
}

// Position maps a byte offset into raw to a 1-based line/column pair.
// Column is counted from the byte after the last newline.
func Position(raw []byte, offset int64) (line, column int) {
	if offset > int64(len(raw)) {
		offset = int64(len(raw))
	}
	prefix := string(raw[:offset])
	line = strings.Count(prefix, "\n") + 1
	if i := strings.LastIndexByte(prefix, '\n'); i >= 0 {
		column = len(prefix) - i
	} else {
		column = len(prefix) + 1
	}
	return line, column
}
