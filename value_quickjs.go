//go:build !v8

package jsbind

import (
	"fmt"

	qjs "github.com/cryguy/jsbind/internal/quickjs"
)

// String converts with the engine's ToString. Never fails: a conversion that
// itself raises yields the empty string.
func (v *Value) String() string { return qjs.ToString(v.raw) }

// Number converts with the engine's ToNumber, zero if the conversion raises.
func (v *Value) Number() float64 { return qjs.ToFloat64(v.raw) }

// Boolean converts with the engine's ToBoolean.
func (v *Value) Boolean() bool { return qjs.ToBool(v.raw) }

// IsUndefined reports whether the value is undefined.
func (v *Value) IsUndefined() bool { return qjs.IsUndefined(v.raw) }

// AsObject downcasts to an object reference.
func (v *Value) AsObject() (*Object, error) {
	if !qjs.IsObject(v.raw) {
		return nil, fmt.Errorf("value is not an object")
	}
	return &Object{Value: *v}, nil
}

// AsArray downcasts to an array reference.
func (v *Value) AsArray() (*Array, error) {
	if !qjs.IsArray(v.raw) {
		return nil, fmt.Errorf("value is not an array")
	}
	return &Array{Object{Value: *v}}, nil
}

// AsFunction downcasts to a callable reference.
func (v *Value) AsFunction() (*Function, error) {
	if !qjs.IsFunction(v.raw) {
		return nil, fmt.Errorf("value is not a function")
	}
	return &Function{Object{Value: *v}}, nil
}

// Call invokes the function with the given receiver and arguments. Use the
// context's Undefined for a receiver-free call. An exception raised by the
// callee stays pending and surfaces as the sentinel.
func (f *Function) Call(cx *Context, this Valuer, args ...Valuer) (*Value, error) {
	locals := make([]Local, len(args))
	for i, a := range args {
		locals[i] = a.rawLocal()
	}
	ret, ok := qjs.Call(f.raw, this.rawLocal(), locals...)
	if !ok {
		return nil, ErrPendingException
	}
	return cx.adopt(ret), nil
}
