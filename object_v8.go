//go:build v8

package jsbind

// GetPropertyNames enumerates enumerable properties, own and inherited, into
// a fresh array in the engine's iteration order. Only this backend's native
// surface offers the inherited walk; the QuickJS build omits the operation
// rather than emulate it.
func (o *Object) GetPropertyNames(cx *Context) (*Array, error) {
	v, err := build(cx, func(out *Local) bool {
		return cx.eng.GetNames(out, o.raw)
	})
	if err != nil {
		return nil, err
	}
	return &Array{Object{Value: *v}}, nil
}

// GetPropertyAttributes reports the attribute bitmask for the value-keyed
// property. Infallible by construction: an absent property reports AttrNone.
// V8-only, like the native call backing it.
func (o *Object) GetPropertyAttributes(cx *Context, key Valuer) PropertyAttributes {
	return PropertyAttributes(cx.eng.GetAttributes(o.raw, key.rawLocal()))
}
