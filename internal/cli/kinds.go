package cli

import (
	"encoding"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"

	fxp "github.com/shabbyrobe/go-fxp"
)

// Policy selects how an operation reports a result that does not fit.
type Policy string

const (
	PolicyChecked     Policy = "checked"
	PolicyWrapping    Policy = "wrapping"
	PolicySaturating  Policy = "saturating"
	PolicyOverflowing Policy = "overflowing"
)

// ValidPolicies lists the accepted --policy values.
var ValidPolicies = []Policy{PolicyChecked, PolicyWrapping, PolicySaturating, PolicyOverflowing}

func parsePolicy(s string) (Policy, error) {
	for _, p := range ValidPolicies {
		if string(p) == strings.ToLower(s) {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid policy %q: must be one of %v", s, ValidPolicies)
}

// TypeInfo describes one registered fixed-point type.
type TypeInfo struct {
	Name     string `json:"name" yaml:"name"`
	Signed   bool   `json:"signed" yaml:"signed"`
	IntBits  uint   `json:"int_bits" yaml:"int_bits"`
	FracBits uint   `json:"frac_bits" yaml:"frac_bits"`
	Min      string `json:"min" yaml:"min"`
	Max      string `json:"max" yaml:"max"`
	Delta    string `json:"delta" yaml:"delta"`
}

// Result is the outcome of an eval or convert command.
type Result struct {
	Type       string  `json:"type"`
	Policy     Policy  `json:"policy"`
	Value      string  `json:"value"`
	Bits       string  `json:"bits"`
	Float64    float64 `json:"float64"`
	Overflowed bool    `json:"overflowed,omitempty"`
}

func (r Result) String() string {
	s := fmt.Sprintf("%s (%s) bits=%s float64=%g", r.Value, r.Type, r.Bits, r.Float64)
	if r.Overflowed {
		s += " overflowed"
	}
	return s
}

// Inspection is the document printed by the inspect command.
type Inspection struct {
	Type     string  `json:"type" yaml:"type"`
	Value    string  `json:"value" yaml:"value"`
	Bits     string  `json:"bits" yaml:"bits"`
	Float64  float64 `json:"float64" yaml:"float64"`
	IntPart  string  `json:"int_part,omitempty" yaml:"int_part,omitempty"`
	FracPart string  `json:"frac_part,omitempty" yaml:"frac_part,omitempty"`
	Min      string  `json:"min" yaml:"min"`
	Max      string  `json:"max" yaml:"max"`
	Delta    string  `json:"delta" yaml:"delta"`
}

// kind erases the type parameter of one fixed-point type so commands can pick
// it by name at run time.
type kind interface {
	Info() TypeInfo
	Eval(a, op, b string, policy Policy) (Result, error)
	Convert(s string, policy Policy) (Result, error)
	Inspect(s string, dump io.Writer) (Inspection, error)
}

// dumper prints the raw struct fields; the default config would call String.
var dumper = spew.ConfigState{Indent: " ", DisableMethods: true}

type fixedNumber[X any] interface {
	fxp.Number[X]
	encoding.BinaryMarshaler
}

type kindOf[X fixedNumber[X]] struct {
	name string
}

var kinds = map[string]kind{}

func register[X fixedNumber[X]](name string) {
	kinds[strings.ToUpper(name)] = kindOf[X]{name: name}
}

func init() {
	register[fxp.I1F7]("I1F7")
	register[fxp.I4F4]("I4F4")
	register[fxp.I8F8]("I8F8")
	register[fxp.I16F16]("I16F16")
	register[fxp.I26F6]("I26F6")
	register[fxp.I32F32]("I32F32")
	register[fxp.I52F12]("I52F12")
	register[fxp.I64F64]("I64F64")
	register[fxp.U4F4]("U4F4")
	register[fxp.U8F8]("U8F8")
	register[fxp.U16F16]("U16F16")
	register[fxp.U32F32]("U32F32")
	register[fxp.U64F64]("U64F64")
}

func lookupKind(name string) (kind, error) {
	k, ok := kinds[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("unknown type %q: see 'fxp types'", name)
	}
	return k, nil
}

// kindNames returns the registered type names, narrowest first.
func kindNames() []string {
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.Info().Name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := kinds[names[i]].Info(), kinds[names[j]].Info()
		if a.Signed != b.Signed {
			return a.Signed
		}
		if wa, wb := a.IntBits+a.FracBits, b.IntBits+b.FracBits; wa != wb {
			return wa < wb
		}
		return a.FracBits < b.FracBits
	})
	return names
}

func (k kindOf[X]) Info() TypeInfo {
	var x X
	return TypeInfo{
		Name:     k.name,
		Signed:   x.Signed(),
		IntBits:  x.IntBits(),
		FracBits: x.FracBits(),
		Min:      x.Min().String(),
		Max:      x.Max().String(),
		Delta:    x.Delta().String(),
	}
}

type binaryOp[X any] struct {
	checked     func(X) (X, error)
	wrapping    func(X) X
	saturating  func(X) X
	overflowing func(X) (X, bool)
}

func checkOperator(op string) error {
	switch op {
	case "+", "-", "*", "x", "/":
		return nil
	}
	return fmt.Errorf("unknown operator %q: must be one of + - * /", op)
}

func binaryOpOf[X fixedNumber[X]](a X, op string) (binaryOp[X], error) {
	switch op {
	case "+":
		return binaryOp[X]{a.CheckedAdd, a.WrappingAdd, a.SaturatingAdd, a.OverflowingAdd}, nil
	case "-":
		return binaryOp[X]{a.CheckedSub, a.WrappingSub, a.SaturatingSub, a.OverflowingSub}, nil
	case "*", "x":
		return binaryOp[X]{a.CheckedMul, a.WrappingMul, a.SaturatingMul, a.OverflowingMul}, nil
	case "/":
		return binaryOp[X]{a.CheckedDiv, a.WrappingDiv, a.SaturatingDiv, a.OverflowingDiv}, nil
	}
	return binaryOp[X]{}, checkOperator(op)
}

func (k kindOf[X]) Eval(as, op, bs string, policy Policy) (res Result, err error) {
	a, err := fxp.Parse[X](as)
	if err != nil {
		return res, err
	}
	b, err := fxp.Parse[X](bs)
	if err != nil {
		return res, err
	}
	fn, err := binaryOpOf(a, op)
	if err != nil {
		return res, err
	}

	// Division by zero panics under every policy but checked.
	defer recoverOpError(&err)

	var (
		v    X
		over bool
	)
	switch policy {
	case PolicyChecked:
		if v, err = fn.checked(b); err != nil {
			return res, err
		}
	case PolicyWrapping:
		v = fn.wrapping(b)
	case PolicySaturating:
		v = fn.saturating(b)
	case PolicyOverflowing:
		v, over = fn.overflowing(b)
	default:
		return res, fmt.Errorf("invalid policy %q", policy)
	}
	return k.result(v, policy, over)
}

func (k kindOf[X]) Convert(s string, policy Policy) (res Result, err error) {
	var (
		v    X
		over bool
	)
	switch policy {
	case PolicyChecked:
		v, err = fxp.Parse[X](s)
	case PolicyWrapping:
		v, err = fxp.WrappingParse[X](s)
	case PolicySaturating:
		v, err = fxp.SaturatingParse[X](s)
	case PolicyOverflowing:
		v, over, err = fxp.OverflowingParse[X](s)
	default:
		err = fmt.Errorf("invalid policy %q", policy)
	}
	if err != nil {
		return res, err
	}
	return k.result(v, policy, over)
}

func (k kindOf[X]) result(v X, policy Policy, over bool) (Result, error) {
	bits, err := rawHex(v)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Type:       k.name,
		Policy:     policy,
		Value:      v.String(),
		Bits:       bits,
		Float64:    v.Float64(),
		Overflowed: over,
	}, nil
}

func (k kindOf[X]) Inspect(s string, dump io.Writer) (Inspection, error) {
	x, err := fxp.Parse[X](s)
	if err != nil {
		return Inspection{}, err
	}
	bits, err := rawHex(x)
	if err != nil {
		return Inspection{}, err
	}
	if dump != nil {
		fmt.Fprintf(dump, "dump: %s\n", k.name)
		dumper.Fdump(dump, x)
	}

	out := Inspection{
		Type:    k.name,
		Value:   x.String(),
		Bits:    bits,
		Float64: x.Float64(),
		Min:     x.Min().String(),
		Max:     x.Max().String(),
		Delta:   x.Delta().String(),
	}

	// A signed type with no integer bits cannot hold the floor of a negative
	// value, so the parts are left out.
	if fl, err := x.CheckedFloor(); err == nil {
		if fr, err := x.CheckedSub(fl); err == nil {
			out.IntPart, out.FracPart = fl.String(), fr.String()
		}
	}
	return out, nil
}

func rawHex(x encoding.BinaryMarshaler) (string, error) {
	b, err := x.MarshalBinary()
	if err != nil {
		return "", err
	}
	return "0x" + hex.EncodeToString(b), nil
}

func recoverOpError(err *error) {
	r := recover()
	if r == nil {
		return
	}
	var opErr *fxp.OpError
	if e, ok := r.(error); ok && errors.As(e, &opErr) {
		*err = opErr
		return
	}
	panic(r)
}
