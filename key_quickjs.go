//go:build !v8

package jsbind

import (
	qjs "github.com/cryguy/jsbind/internal/quickjs"
)

// Bridges from the shared key and object code to the QuickJS native surface.
// The handle carries the environment, so the context parameter goes unused
// everywhere except the text-keyed write below.

func rawGetIndex(cx *Context, out *Local, obj Local, idx uint32) bool {
	return qjs.GetIndex(out, obj, idx)
}

func rawSetIndex(cx *Context, wrote *bool, obj Local, idx uint32, val Local) bool {
	return qjs.SetIndex(wrote, obj, idx, val)
}

func rawGetKeyed(cx *Context, out *Local, obj, key Local) bool {
	return qjs.GetKeyed(out, obj, key)
}

func rawSetKeyed(cx *Context, wrote *bool, obj, key, val Local) bool {
	return qjs.SetKeyed(wrote, obj, key, val)
}

func rawGetText(cx *Context, out *Local, obj Local, name string) bool {
	return qjs.GetText(out, obj, name)
}

func rawGetOwnNames(cx *Context, out *Local, obj Local) bool {
	return qjs.GetOwnNames(out, obj)
}

// setFrom for text keys is the one backend-sensitive branch in the key
// layer: it extracts the execution-context token from the context at call
// time and hands it to the native call explicitly.
func (n Name) setFrom(cx *Context, wrote *bool, obj, val Local) bool {
	env := cx.Env()
	return qjs.SetText(env, wrote, obj, string(n), val)
}
