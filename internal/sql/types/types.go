/*
Copyright 2025 Stoolap Contributors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
// package types defines the SQL type system used by the expression
// interpreter: the closed base-type enumeration and the type descriptors
// attached to operand terms.
package types

import (
	"fmt"
	"strings"
)

// BaseType classifies a value's runtime kind. The enumeration is closed;
// every dispatch site switches exhaustively over it so that adding a new
// base type forces each site to be revisited.
type BaseType int

const (
	// UNKNOWN is the zero value, used for untyped or unresolved operands
	UNKNOWN BaseType = iota
	// BOOLEAN represents a boolean data type
	BOOLEAN
	// INTEGER represents a 32-bit integer data type
	INTEGER
	// BIGINT represents a 64-bit integer data type
	BIGINT
	// DOUBLE represents a double-precision floating point data type
	DOUBLE
	// DECIMAL represents an arbitrary-precision decimal data type
	DECIMAL
	// STRING represents a string data type
	STRING
	// TIMESTAMP represents a timestamp data type
	TIMESTAMP
	// ARRAY represents an ordered collection data type
	ARRAY
	// MAP represents a string-keyed collection data type
	MAP
	// STRUCT represents a named-field record data type
	STRUCT
)

// String returns the SQL name of the base type
func (bt BaseType) String() string {
	switch bt {
	case UNKNOWN:
		return "UNKNOWN"
	case BOOLEAN:
		return "BOOLEAN"
	case INTEGER:
		return "INTEGER"
	case BIGINT:
		return "BIGINT"
	case DOUBLE:
		return "DOUBLE"
	case DECIMAL:
		return "DECIMAL"
	case STRING:
		return "STRING"
	case TIMESTAMP:
		return "TIMESTAMP"
	case ARRAY:
		return "ARRAY"
	case MAP:
		return "MAP"
	case STRUCT:
		return "STRUCT"
	default:
		return fmt.Sprintf("BaseType(%d)", bt)
	}
}

// Field is a named member of a STRUCT type
type Field struct {
	Name string
	Type Type
}

// Type is an immutable type descriptor for an operand. Beyond the base-type
// tag it carries the parameters that distinguish instances of the same base
// type: precision and scale for DECIMAL, the element type for ARRAY, the
// value type for MAP (keys are always STRING), and the field list for STRUCT.
type Type struct {
	base      BaseType
	precision int32
	scale     int32
	elem      *Type
	fields    []Field
}

// Predefined descriptors for the non-parameterized base types
var (
	Boolean   = Type{base: BOOLEAN}
	Integer   = Type{base: INTEGER}
	Bigint    = Type{base: BIGINT}
	Double    = Type{base: DOUBLE}
	String    = Type{base: STRING}
	Timestamp = Type{base: TIMESTAMP}
)

// NewDecimal returns a DECIMAL descriptor with the given precision and scale
func NewDecimal(precision, scale int32) Type {
	return Type{base: DECIMAL, precision: precision, scale: scale}
}

// NewArray returns an ARRAY descriptor with the given element type
func NewArray(elem Type) Type {
	return Type{base: ARRAY, elem: &elem}
}

// NewMap returns a MAP descriptor with STRING keys and the given value type
func NewMap(value Type) Type {
	return Type{base: MAP, elem: &value}
}

// NewStruct returns a STRUCT descriptor with the given fields
func NewStruct(fields ...Field) Type {
	return Type{base: STRUCT, fields: fields}
}

// Base returns the base-type classification of the descriptor
func (t Type) Base() BaseType {
	return t.base
}

// Precision returns the precision of a DECIMAL type, 0 otherwise
func (t Type) Precision() int32 {
	return t.precision
}

// Scale returns the scale of a DECIMAL type, 0 otherwise
func (t Type) Scale() int32 {
	return t.scale
}

// Elem returns the element type of an ARRAY or the value type of a MAP.
// The second return is false for any other base type.
func (t Type) Elem() (Type, bool) {
	if t.elem == nil {
		return Type{}, false
	}
	return *t.elem, true
}

// Fields returns the field list of a STRUCT type
func (t Type) Fields() []Field {
	return t.fields
}

// String returns the SQL rendering of the type descriptor
func (t Type) String() string {
	switch t.base {
	case DECIMAL:
		return fmt.Sprintf("DECIMAL(%d, %d)", t.precision, t.scale)
	case ARRAY:
		if t.elem == nil {
			return "ARRAY"
		}
		return "ARRAY<" + t.elem.String() + ">"
	case MAP:
		if t.elem == nil {
			return "MAP"
		}
		return "MAP<STRING, " + t.elem.String() + ">"
	case STRUCT:
		var sb strings.Builder
		sb.WriteString("STRUCT<")
		for i, f := range t.fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Name)
			sb.WriteString(" ")
			sb.WriteString(f.Type.String())
		}
		sb.WriteString(">")
		return sb.String()
	default:
		return t.base.String()
	}
}
