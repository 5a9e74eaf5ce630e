package jsbind

// PropertyKey selects how a property is addressed: by integer index, by
// text, or by an engine value. Each implementation routes one public
// operation to the matching native entry point. The boolean these methods
// return is the raw ABI result: false means the out-parameter (or wrote
// flag) is invalid and an exception is pending.
type PropertyKey interface {
	getFrom(cx *Context, out *Local, obj Local) bool
	setFrom(cx *Context, wrote *bool, obj, val Local) bool
}

// Index addresses integer-indexed elements.
type Index uint32

// Name addresses text-keyed properties.
type Name string

func (i Index) getFrom(cx *Context, out *Local, obj Local) bool {
	return rawGetIndex(cx, out, obj, uint32(i))
}

func (i Index) setFrom(cx *Context, wrote *bool, obj, val Local) bool {
	return rawSetIndex(cx, wrote, obj, uint32(i), val)
}

func (n Name) getFrom(cx *Context, out *Local, obj Local) bool {
	return rawGetText(cx, out, obj, string(n))
}

// Name.setFrom lives in the backend files: the text-keyed write is the one
// call whose native shape differs between the two ABIs.

func (v *Value) getFrom(cx *Context, out *Local, obj Local) bool {
	return rawGetKeyed(cx, out, obj, v.raw)
}

func (v *Value) setFrom(cx *Context, wrote *bool, obj, val Local) bool {
	return rawSetKeyed(cx, wrote, obj, v.raw, val)
}
