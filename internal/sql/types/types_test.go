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
package types

import (
	"testing"
)

func TestBaseTypeString(t *testing.T) {
	tests := []struct {
		bt   BaseType
		want string
	}{
		{UNKNOWN, "UNKNOWN"},
		{BOOLEAN, "BOOLEAN"},
		{INTEGER, "INTEGER"},
		{BIGINT, "BIGINT"},
		{DOUBLE, "DOUBLE"},
		{DECIMAL, "DECIMAL"},
		{STRING, "STRING"},
		{TIMESTAMP, "TIMESTAMP"},
		{ARRAY, "ARRAY"},
		{MAP, "MAP"},
		{STRUCT, "STRUCT"},
		{BaseType(99), "BaseType(99)"},
	}

	for _, tt := range tests {
		if got := tt.bt.String(); got != tt.want {
			t.Errorf("BaseType(%d).String() = %q, want %q", tt.bt, got, tt.want)
		}
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Integer, "INTEGER"},
		{String, "STRING"},
		{NewDecimal(10, 2), "DECIMAL(10, 2)"},
		{NewArray(Integer), "ARRAY<INTEGER>"},
		{NewMap(Double), "MAP<STRING, DOUBLE>"},
		{NewArray(NewDecimal(5, 1)), "ARRAY<DECIMAL(5, 1)>"},
		{NewStruct(Field{Name: "id", Type: Integer}, Field{Name: "name", Type: String}),
			"STRUCT<id INTEGER, name STRING>"},
		{NewStruct(), "STRUCT<>"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestTypeAccessors(t *testing.T) {
	dec := NewDecimal(10, 2)
	if dec.Base() != DECIMAL || dec.Precision() != 10 || dec.Scale() != 2 {
		t.Errorf("unexpected decimal descriptor: %v", dec)
	}

	arr := NewArray(Bigint)
	elem, ok := arr.Elem()
	if !ok || elem.Base() != BIGINT {
		t.Errorf("ARRAY element = %v, %v; want BIGINT, true", elem, ok)
	}

	if _, ok := Integer.Elem(); ok {
		t.Errorf("INTEGER should have no element type")
	}

	st := NewStruct(Field{Name: "a", Type: Boolean})
	if len(st.Fields()) != 1 || st.Fields()[0].Name != "a" {
		t.Errorf("unexpected struct fields: %v", st.Fields())
	}

	var zero Type
	if zero.Base() != UNKNOWN {
		t.Errorf("zero Type base = %v, want UNKNOWN", zero.Base())
	}
}
