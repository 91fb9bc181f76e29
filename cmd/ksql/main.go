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
// ksql evaluates a single typed comparison and prints the result. Operands
// are TYPE:VALUE tokens, so no expression parsing is involved; this is a
// debugging surface over the interpreter's comparison resolution.
//
//	ksql INTEGER:5 "<" DECIMAL:5.50
//	ksql TIMESTAMP:2024-03-01 ">" STRING:2024-02-29
//	ksql INTEGER:NULL distinct INTEGER:5
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/kilrasemifir/ksql/internal/interpreter"
	"github.com/kilrasemifir/ksql/internal/interpreter/terms"
	"github.com/kilrasemifir/ksql/internal/sql/types"
)

var plain bool

var rootCmd = &cobra.Command{
	Use:   "ksql LEFT OP RIGHT",
	Short: "Evaluate a typed SQL comparison",
	Long: `Evaluates a comparison between two typed operands and prints the result.

Operands are TYPE:VALUE tokens. Supported types: INTEGER, BIGINT, DOUBLE,
DECIMAL, STRING, BOOLEAN, TIMESTAMP. The value NULL denotes a SQL NULL of
the given type. Operators: = != <> > >= < <= distinct`,
	Args: cobra.ExactArgs(3),
	RunE: runComparison,
}

func init() {
	rootCmd.Flags().BoolVarP(&plain, "plain", "p", false, "Print only the boolean result")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runComparison(cmd *cobra.Command, args []string) error {
	left, err := parseOperand(args[0])
	if err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	op, err := parseOperator(args[1])
	if err != nil {
		return err
	}
	right, err := parseOperand(args[2])
	if err != nil {
		return fmt.Errorf("right operand: %w", err)
	}

	term, err := interpreter.NewComparison(op, left, right)
	if err != nil {
		return err
	}

	result, err := term.Bool(terms.NewEvalContext(nil))
	if err != nil {
		return err
	}

	if plain {
		fmt.Println(result)
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Left", "Operator", "Right", "Result"})
	t.AppendRow(table.Row{
		renderOperand(left), op.String(), renderOperand(right), result,
	})
	t.Render()
	return nil
}

func parseOperator(s string) (interpreter.CompareOp, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "=", "==":
		return interpreter.EQ, nil
	case "!=", "<>":
		return interpreter.NE, nil
	case "DISTINCT", "IS DISTINCT FROM":
		return interpreter.DISTINCT, nil
	case ">":
		return interpreter.GT, nil
	case ">=":
		return interpreter.GTE, nil
	case "<":
		return interpreter.LT, nil
	case "<=":
		return interpreter.LTE, nil
	default:
		return 0, fmt.Errorf("unsupported operator: %s", s)
	}
}

// parseOperand turns a TYPE:VALUE token into a literal term
func parseOperand(token string) (terms.Term, error) {
	typeName, raw, found := strings.Cut(token, ":")
	if !found {
		return nil, fmt.Errorf("operand %q is not of the form TYPE:VALUE", token)
	}
	typeName = strings.ToUpper(strings.TrimSpace(typeName))

	if raw == "NULL" {
		typ, err := operandType(typeName)
		if err != nil {
			return nil, err
		}
		return terms.NewLiteral(nil, typ), nil
	}

	switch typeName {
	case "INTEGER", "INT":
		i, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid INTEGER value %q: %v", raw, err)
		}
		return terms.NewLiteral(int32(i), types.Integer), nil
	case "BIGINT":
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid BIGINT value %q: %v", raw, err)
		}
		return terms.NewLiteral(i, types.Bigint), nil
	case "DOUBLE", "FLOAT":
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid DOUBLE value %q: %v", raw, err)
		}
		return terms.NewLiteral(f, types.Double), nil
	case "DECIMAL":
		d, _, err := apd.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid DECIMAL value %q: %v", raw, err)
		}
		return terms.NewLiteral(d, decimalTypeOf(d)), nil
	case "STRING", "TEXT", "VARCHAR":
		return terms.NewLiteral(raw, types.String), nil
	case "BOOLEAN", "BOOL":
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid BOOLEAN value %q: %v", raw, err)
		}
		return terms.NewLiteral(b, types.Boolean), nil
	case "TIMESTAMP":
		ts, err := types.ParseTimestamp(raw)
		if err != nil {
			return nil, err
		}
		return terms.NewLiteral(ts, types.Timestamp), nil
	default:
		return nil, fmt.Errorf("unsupported operand type: %s", typeName)
	}
}

func operandType(typeName string) (types.Type, error) {
	switch typeName {
	case "INTEGER", "INT":
		return types.Integer, nil
	case "BIGINT":
		return types.Bigint, nil
	case "DOUBLE", "FLOAT":
		return types.Double, nil
	case "DECIMAL":
		return types.NewDecimal(1, 0), nil
	case "STRING", "TEXT", "VARCHAR":
		return types.String, nil
	case "BOOLEAN", "BOOL":
		return types.Boolean, nil
	case "TIMESTAMP":
		return types.Timestamp, nil
	default:
		return types.Type{}, fmt.Errorf("unsupported operand type: %s", typeName)
	}
}

// decimalTypeOf infers a descriptor from the parsed literal
func decimalTypeOf(d *apd.Decimal) types.Type {
	scale := int32(0)
	if d.Exponent < 0 {
		scale = -d.Exponent
	}
	precision := int32(d.NumDigits())
	if precision < scale {
		precision = scale
	}
	return types.NewDecimal(precision, scale)
}

func renderOperand(t terms.Term) string {
	v, err := t.Value(nil)
	if err != nil || v == nil {
		return "NULL"
	}
	if ts, ok := v.(time.Time); ok {
		return types.FormatTimestamp(ts)
	}
	return fmt.Sprintf("%v", v)
}
