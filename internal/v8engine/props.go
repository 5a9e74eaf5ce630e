//go:build v8

package v8engine

import (
	v8 "github.com/tommie/v8go"
)

// Property entry points. Get-shaped calls report success through the raw
// boolean and write the result into out; on false the out-parameter is
// invalid and an exception was raised during the call (V8 captures it at
// the call boundary). Set-shaped calls additionally distinguish a refused
// write (wrote=false, boolean true) from a raised exception (boolean false).
//
// v8go's direct setters report errors only, not the wrote flag, so writes
// route through the Reflect.set helper. Index and text reads use the direct
// object calls; value-keyed reads go through the helper.

// GetIndex reads an integer-indexed element.
func (e *Engine) GetIndex(out **v8.Value, obj *v8.Value, idx uint32) bool {
	o, err := obj.AsObject()
	if err != nil {
		return false
	}
	v, err := o.GetIdx(idx)
	if err != nil {
		return false
	}
	*out = v
	return true
}

// SetIndex writes an integer-indexed element.
func (e *Engine) SetIndex(wrote *bool, obj *v8.Value, idx uint32, val *v8.Value) bool {
	key, err := v8.NewValue(e.iso, idx)
	if err != nil {
		return false
	}
	return e.setKeyed(wrote, obj, key, val)
}

// GetKeyed reads a property named by an arbitrary engine value.
func (e *Engine) GetKeyed(out **v8.Value, obj, key *v8.Value) bool {
	v, err := e.helpers.get.Call(e.undef, obj, key)
	if err != nil {
		return false
	}
	*out = v
	return true
}

// SetKeyed writes a property named by an arbitrary engine value.
func (e *Engine) SetKeyed(wrote *bool, obj, key, val *v8.Value) bool {
	return e.setKeyed(wrote, obj, key, val)
}

// GetText reads a text-keyed property. The Go string is the native text
// form on this backend; no separate lowering step exists.
func (e *Engine) GetText(out **v8.Value, obj *v8.Value, name string) bool {
	o, err := obj.AsObject()
	if err != nil {
		return false
	}
	v, err := o.Get(name)
	if err != nil {
		return false
	}
	*out = v
	return true
}

// SetText writes a text-keyed property. No execution-context token exists on
// this backend; the handle carries everything the call needs.
func (e *Engine) SetText(wrote *bool, obj *v8.Value, name string, val *v8.Value) bool {
	key, err := v8.NewValue(e.iso, name)
	if err != nil {
		return false
	}
	return e.setKeyed(wrote, obj, key, val)
}

// GetOwnNames enumerates own enumerable string-keyed property names in the
// engine's iteration order.
func (e *Engine) GetOwnNames(out **v8.Value, obj *v8.Value) bool {
	v, err := e.helpers.ownNames.Call(e.undef, obj)
	if err != nil {
		return false
	}
	*out = v
	return true
}

// GetNames enumerates enumerable property names, own and inherited, in the
// engine's iteration order.
func (e *Engine) GetNames(out **v8.Value, obj *v8.Value) bool {
	v, err := e.helpers.names.Call(e.undef, obj)
	if err != nil {
		return false
	}
	*out = v
	return true
}

// GetAttributes reports the property's attribute bitmask. Infallible by
// construction: an absent property, or a proxy trap raising mid-query,
// reports 0 (None).
func (e *Engine) GetAttributes(obj, key *v8.Value) uint32 {
	ret, err := e.helpers.attrs.Call(e.undef, obj, key)
	if err != nil {
		return 0
	}
	return uint32(ret.Number())
}

func (e *Engine) setKeyed(wrote *bool, obj, key, val *v8.Value) bool {
	ret, err := e.helpers.set.Call(e.undef, obj, key, val)
	if err != nil {
		return false
	}
	*wrote = ret.Boolean()
	return true
}
