package jsbind

// Get reads the property the key addresses. A missing property yields the
// engine's undefined; a throwing getter or proxy trap yields
// ErrPendingException with the exception left pending.
func (o *Object) Get(cx *Context, key PropertyKey) (*Value, error) {
	return build(cx, func(out *Local) bool {
		return key.getFrom(cx, out, o.raw)
	})
}

// Set writes the property the key addresses. (true, nil) means the write
// took effect; (false, nil) means the engine refused it without raising, as
// it does for non-writable properties under sloppy semantics; the sentinel
// comes back only when the native call itself failed.
func (o *Object) Set(cx *Context, key PropertyKey, val Valuer) (bool, error) {
	var wrote bool
	if key.setFrom(cx, &wrote, o.raw, val.rawLocal()) {
		return wrote, nil
	}
	return false, ErrPendingException
}

// GetOwnPropertyNames enumerates the object's own enumerable string-keyed
// property names into a fresh array, in the engine's iteration order, with
// no sorting or deduplication.
func (o *Object) GetOwnPropertyNames(cx *Context) (*Array, error) {
	v, err := build(cx, func(out *Local) bool {
		return rawGetOwnNames(cx, out, o.raw)
	})
	if err != nil {
		return nil, err
	}
	return &Array{Object{Value: *v}}, nil
}
