//go:build v8

package jsbind

import (
	"fmt"

	v8 "github.com/tommie/v8go"
)

// String converts with the engine's ToString. Never fails: v8go resolves the
// conversion at the handle boundary.
func (v *Value) String() string { return v.raw.String() }

// Number converts with the engine's ToNumber.
func (v *Value) Number() float64 { return v.raw.Number() }

// Boolean converts with the engine's ToBoolean.
func (v *Value) Boolean() bool { return v.raw.Boolean() }

// IsUndefined reports whether the value is undefined.
func (v *Value) IsUndefined() bool { return v.raw.IsUndefined() }

// AsObject downcasts to an object reference.
func (v *Value) AsObject() (*Object, error) {
	if !v.raw.IsObject() {
		return nil, fmt.Errorf("value is not an object")
	}
	return &Object{Value: *v}, nil
}

// AsArray downcasts to an array reference.
func (v *Value) AsArray() (*Array, error) {
	if !v.raw.IsArray() {
		return nil, fmt.Errorf("value is not an array")
	}
	return &Array{Object{Value: *v}}, nil
}

// AsFunction downcasts to a callable reference.
func (v *Value) AsFunction() (*Function, error) {
	if !v.raw.IsFunction() {
		return nil, fmt.Errorf("value is not a function")
	}
	return &Function{Object{Value: *v}}, nil
}

// Call invokes the function with the given receiver and arguments. Use the
// context's Undefined for a receiver-free call. An exception raised by the
// callee surfaces as the sentinel; V8 captures it at the call boundary.
func (f *Function) Call(cx *Context, this Valuer, args ...Valuer) (*Value, error) {
	fn, err := f.raw.AsFunction()
	if err != nil {
		return nil, fmt.Errorf("receiver is not callable: %w", err)
	}
	vals := make([]v8.Valuer, len(args))
	for i, a := range args {
		vals[i] = a.rawLocal()
	}
	ret, err := fn.Call(this.rawLocal(), vals...)
	if err != nil {
		return nil, ErrPendingException
	}
	return cx.adopt(ret), nil
}
