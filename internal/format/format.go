// Package format renders conversion results as text, HCL or JSON.
package format

import (
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Output formats.
const (
	Text = "text"
	HCL  = "hcl"
	JSON = "json"
)

var multipleBlankLines = regexp.MustCompile(`\n{3,}`)
var blankLineAfterOpenBrace = regexp.MustCompile(`\{\n\s*\n`)
var blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)

// Field is a named value inside a Group. Value is a float64, string or bool.
type Field struct {
	Name  string
	Value any
}

// Group is a named set of fields, e.g. the three Oklab coordinates.
type Group struct {
	Name   string
	Fields []Field
}

// Options controls rendering.
type Options struct {
	Format    string
	Precision int
}

// Render writes the groups to w in the requested format.
func Render(w io.Writer, opts Options, groups ...Group) error {
	switch opts.Format {
	case Text, "":
		return renderText(w, opts, groups)
	case HCL:
		return renderHCL(w, opts, groups)
	case JSON:
		return renderJSON(w, opts, groups)
	default:
		return fmt.Errorf("unknown format %q", opts.Format)
	}
}

// RenderValue writes an arbitrary cty value, such as the result of an
// expression, to w in the requested format.
func RenderValue(w io.Writer, opts Options, val cty.Value) error {
	val, err := roundValue(val, opts.Precision)
	if err != nil {
		return err
	}

	switch opts.Format {
	case Text, "":
		s, err := valueText(val, opts.Precision)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s)
		return err
	case HCL:
		f := hclwrite.NewEmptyFile()
		f.Body().SetAttributeValue("result", val)
		return writeHCL(w, f)
	case JSON:
		return writeJSON(w, val)
	default:
		return fmt.Errorf("unknown format %q", opts.Format)
	}
}

// Format takes HCL source content and returns it formatted according to
// HCL canonical style rules, with runs of blank lines collapsed and blank
// lines at the edges of blocks removed.
func Format(content string) (string, error) {
	formatted := hclwrite.Format([]byte(content))
	collapsed := multipleBlankLines.ReplaceAllString(string(formatted), "\n\n")
	collapsed = blankLineAfterOpenBrace.ReplaceAllString(collapsed, "{\n")
	collapsed = blankLineBeforeCloseBrace.ReplaceAllString(collapsed, "\n${1}")
	return collapsed, nil
}

func renderText(w io.Writer, opts Options, groups []Group) error {
	width := 0
	for _, g := range groups {
		width = max(width, len(g.Name))
	}

	for _, g := range groups {
		parts := make([]string, 0, len(g.Fields))
		for _, f := range g.Fields {
			s, err := fieldText(f.Value, opts.Precision)
			if err != nil {
				return fmt.Errorf("%s.%s: %w", g.Name, f.Name, err)
			}
			parts = append(parts, f.Name+"="+s)
		}
		if _, err := fmt.Fprintf(w, "%-*s  %s\n", width, g.Name, strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return nil
}

func renderHCL(w io.Writer, opts Options, groups []Group) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for i, g := range groups {
		if i > 0 {
			body.AppendNewline()
		}
		block := body.AppendNewBlock(g.Name, nil)
		for _, field := range g.Fields {
			val, err := fieldValue(field.Value, opts.Precision)
			if err != nil {
				return fmt.Errorf("%s.%s: %w", g.Name, field.Name, err)
			}
			block.Body().SetAttributeValue(field.Name, val)
		}
	}
	return writeHCL(w, f)
}

func renderJSON(w io.Writer, opts Options, groups []Group) error {
	obj := make(map[string]cty.Value, len(groups))
	for _, g := range groups {
		fields := make(map[string]cty.Value, len(g.Fields))
		for _, field := range g.Fields {
			val, err := fieldValue(field.Value, opts.Precision)
			if err != nil {
				return fmt.Errorf("%s.%s: %w", g.Name, field.Name, err)
			}
			fields[field.Name] = val
		}
		obj[g.Name] = cty.ObjectVal(fields)
	}
	return writeJSON(w, cty.ObjectVal(obj))
}

func writeHCL(w io.Writer, f *hclwrite.File) error {
	out, err := Format(string(f.Bytes()))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func writeJSON(w io.Writer, val cty.Value) error {
	out, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", out)
	return err
}

func fieldText(v any, precision int) (string, error) {
	switch v := v.(type) {
	case float64:
		return strconv.FormatFloat(round(v, precision), 'f', precision, 64), nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}

func fieldValue(v any, precision int) (cty.Value, error) {
	switch v := v.(type) {
	case float64:
		return numberVal(round(v, precision))
	case string:
		return cty.StringVal(v), nil
	case bool:
		return cty.BoolVal(v), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported value type %T", v)
	}
}

func numberVal(v float64) (cty.Value, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return cty.NilVal, fmt.Errorf("cannot represent %v", v)
	}
	return cty.NumberFloatVal(v), nil
}

// round rounds v to precision decimal places. Negative zero becomes zero.
func round(v float64, precision int) float64 {
	p := math.Pow10(precision)
	r := math.Round(v*p) / p
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return v
	}
	if r == 0 {
		return 0
	}
	return r
}

// roundValue rounds every number inside val.
func roundValue(val cty.Value, precision int) (cty.Value, error) {
	if val.IsNull() || !val.IsKnown() {
		return val, nil
	}

	ty := val.Type()
	switch {
	case ty == cty.Number:
		f, _ := val.AsBigFloat().Float64()
		return numberVal(round(f, precision))
	case ty.IsTupleType(), ty.IsListType() && val.LengthInt() > 0:
		elems := val.AsValueSlice()
		for i, e := range elems {
			r, err := roundValue(e, precision)
			if err != nil {
				return cty.NilVal, err
			}
			elems[i] = r
		}
		if ty.IsListType() {
			return cty.ListVal(elems), nil
		}
		return cty.TupleVal(elems), nil
	case ty.IsObjectType(), ty.IsMapType() && val.LengthInt() > 0:
		attrs := val.AsValueMap()
		for k, e := range attrs {
			r, err := roundValue(e, precision)
			if err != nil {
				return cty.NilVal, err
			}
			attrs[k] = r
		}
		if ty.IsMapType() {
			return cty.MapVal(attrs), nil
		}
		return cty.ObjectVal(attrs), nil
	default:
		return val, nil
	}
}

// valueText renders val for plain-text output: numbers with fixed
// precision, sequences as space-separated elements, anything else as JSON.
func valueText(val cty.Value, precision int) (string, error) {
	ty := val.Type()
	switch {
	case val.IsNull():
		return "null", nil
	case ty == cty.Number:
		f, _ := val.AsBigFloat().Float64()
		return strconv.FormatFloat(f, 'f', precision, 64), nil
	case ty == cty.String:
		return val.AsString(), nil
	case ty == cty.Bool:
		return strconv.FormatBool(val.True()), nil
	case ty.IsTupleType() || ty.IsListType():
		var parts []string
		for _, e := range val.AsValueSlice() {
			if !e.Type().IsPrimitiveType() {
				return jsonText(val)
			}
			s, err := valueText(e, precision)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, " "), nil
	default:
		return jsonText(val)
	}
}

func jsonText(val cty.Value) (string, error) {
	out, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return "", fmt.Errorf("encoding JSON: %w", err)
	}
	return string(out), nil
}
