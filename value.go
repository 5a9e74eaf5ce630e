package jsbind

// Value is a typed, scope-bounded reference to an engine value. It stays
// valid until the scope that produced it closes.
type Value struct {
	raw Local
}

func (v *Value) rawLocal() Local { return v.raw }

// Valuer is satisfied by every typed reference and yields the raw handle
// behind it. It is how values flow back into native calls.
type Valuer interface {
	rawLocal() Local
}

// Object is a reference the caller has established to be object-like. The
// property capability hangs off it.
type Object struct {
	Value
}

// Array is an object reference known to be an array.
type Array struct {
	Object
}

// Function is an object reference known to be callable.
type Function struct {
	Object
}

// Length reads the array's length property.
func (a *Array) Length(cx *Context) (int, error) {
	v, err := a.Get(cx, Name("length"))
	if err != nil {
		return 0, err
	}
	return int(v.Number()), nil
}
