//go:build v8

package jsbind

// Bridges from the shared key and object code to the V8 native surface. The
// engine hangs off the context; handles are self-contained and no token
// appears anywhere, the text-keyed write included.

func rawGetIndex(cx *Context, out *Local, obj Local, idx uint32) bool {
	return cx.eng.GetIndex(out, obj, idx)
}

func rawSetIndex(cx *Context, wrote *bool, obj Local, idx uint32, val Local) bool {
	return cx.eng.SetIndex(wrote, obj, idx, val)
}

func rawGetKeyed(cx *Context, out *Local, obj, key Local) bool {
	return cx.eng.GetKeyed(out, obj, key)
}

func rawSetKeyed(cx *Context, wrote *bool, obj, key, val Local) bool {
	return cx.eng.SetKeyed(wrote, obj, key, val)
}

func rawGetText(cx *Context, out *Local, obj Local, name string) bool {
	return cx.eng.GetText(out, obj, name)
}

func rawGetOwnNames(cx *Context, out *Local, obj Local) bool {
	return cx.eng.GetOwnNames(out, obj)
}

// setFrom for text keys takes no token on this backend; the signature pair
// with the QuickJS build is intentionally asymmetric at the native surface
// and uniform here.
func (n Name) setFrom(cx *Context, wrote *bool, obj, val Local) bool {
	return cx.eng.SetText(wrote, obj, string(n), val)
}
