// Package expr evaluates HCL expressions with color conversion functions.
package expr

import (
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/peacock"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Triplet is the cty type returned by every conversion function.
var Triplet = cty.Tuple([]cty.Type{cty.Number, cty.Number, cty.Number})

// convertFunc converts one triplet of floats into another.
type convertFunc func(x, y, z float64) (float64, float64, float64)

// conversions maps function names to their implementation. Hues are in radians.
var conversions = map[string]struct {
	description string
	params      [3]string
	fn          convertFunc
}{
	"srgb_to_oklab": {
		"Converts sRGB channels to Oklab",
		[3]string{"r", "g", "b"},
		func(r, g, b float64) (float64, float64, float64) {
			o := peacock.FromSRGB(r, g, b)
			return o.L, o.A, o.B
		},
	},
	"oklab_to_srgb": {
		"Converts Oklab to sRGB channels clamped to [0, 1]",
		[3]string{"l", "a", "b"},
		func(l, a, b float64) (float64, float64, float64) {
			return peacock.Oklab{L: l, A: a, B: b}.SRGB()
		},
	},
	"oklab_to_oklch": {
		"Converts Oklab to Oklch",
		[3]string{"l", "a", "b"},
		func(l, a, b float64) (float64, float64, float64) {
			c := peacock.Oklab{L: l, A: a, B: b}.Oklch()
			return c.L, c.C, c.H
		},
	},
	"oklch_to_oklab": {
		"Converts Oklch to Oklab",
		[3]string{"l", "c", "h"},
		func(l, c, h float64) (float64, float64, float64) {
			o := peacock.Oklch{L: l, C: c, H: h}.Oklab()
			return o.L, o.A, o.B
		},
	},
	"srgb_to_oklch": {
		"Converts sRGB channels to Oklch",
		[3]string{"r", "g", "b"},
		func(r, g, b float64) (float64, float64, float64) {
			c := peacock.FromSRGB(r, g, b).Oklch()
			return c.L, c.C, c.H
		},
	},
	"oklch_to_srgb": {
		"Converts Oklch to sRGB channels clamped to [0, 1]",
		[3]string{"l", "c", "h"},
		func(l, c, h float64) (float64, float64, float64) {
			return peacock.Oklch{L: l, C: c, H: h}.SRGB()
		},
	},
}

// MakeConvertFunc creates an HCL function wrapping one of the conversions.
// Usage: oklab_to_oklch(srgb_to_oklab(1, 0, 0)...)
func MakeConvertFunc(name string) (function.Function, error) {
	conv, ok := conversions[name]
	if !ok {
		return function.Function{}, fmt.Errorf("unknown conversion %q", name)
	}

	params := make([]function.Parameter, 0, len(conv.params))
	for _, p := range conv.params {
		params = append(params, function.Parameter{Name: p, Type: cty.Number})
	}

	return function.New(&function.Spec{
		Description: conv.description,
		Params:      params,
		Type:        function.StaticReturnType(Triplet),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			var in [3]float64
			for i, arg := range args {
				in[i], _ = arg.AsBigFloat().Float64()
			}
			x, y, z := conv.fn(in[0], in[1], in[2])
			return tripletVal(x, y, z)
		},
	}), nil
}

// makeAngleFunc creates a one-argument function scaling an angle by factor.
func makeAngleFunc(description string, factor float64) function.Function {
	return function.New(&function.Spec{
		Description: description,
		Params: []function.Parameter{
			{Name: "angle", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			v, _ := args[0].AsBigFloat().Float64()
			return numberVal(v * factor)
		},
	})
}

// Functions returns every function available to expressions.
func Functions() map[string]function.Function {
	funcs := make(map[string]function.Function, len(conversions)+2)
	for name := range conversions {
		fn, _ := MakeConvertFunc(name)
		funcs[name] = fn
	}
	funcs["degrees"] = makeAngleFunc("Converts radians to degrees", 180/math.Pi)
	funcs["radians"] = makeAngleFunc("Converts degrees to radians", math.Pi/180)
	return funcs
}

// BuildEvalContext creates an HCL evaluation context with the conversion
// functions and the variable pi.
func BuildEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"pi": cty.NumberFloatVal(math.Pi),
		},
		Functions: Functions(),
	}
}

// Eval parses and evaluates a single HCL expression.
func Eval(src string) (cty.Value, error) {
	e, diags := hclsyntax.ParseExpression([]byte(src), "<expr>", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("parsing expression: %s", diags.Error())
	}

	val, diags := e.Value(BuildEvalContext())
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("evaluating expression: %s", diags.Error())
	}
	return val, nil
}

func tripletVal(x, y, z float64) (cty.Value, error) {
	vals := make([]cty.Value, 0, 3)
	for _, v := range [...]float64{x, y, z} {
		nv, err := numberVal(v)
		if err != nil {
			return cty.NilVal, err
		}
		vals = append(vals, nv)
	}
	return cty.TupleVal(vals), nil
}

// numberVal rejects NaN, which cty numbers cannot hold.
func numberVal(v float64) (cty.Value, error) {
	if math.IsNaN(v) {
		return cty.NilVal, fmt.Errorf("result is not a number")
	}
	return cty.NumberFloatVal(v), nil
}
