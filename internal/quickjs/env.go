//go:build !v8

// Package quickjs is the raw native call surface for the QuickJS backend.
// Every C entry point here threads the execution-context token, an Env, as
// its first argument; the public layer extracts the token from its Context
// at call time and never holds it anywhere else.
package quickjs

import (
	"modernc.org/libc"
	lib "modernc.org/libquickjs"
)

// Env is the execution-context token: the translated C thread state plus
// the JSContext pointer. Both halves are required by every libquickjs call.
type Env struct {
	TLS *libc.TLS
	Ctx uintptr
}

// Raw is the engine's value representation at the ABI level.
type Raw = lib.TJSValue

// Local pairs a raw value with the environment that owns it, so a handle
// can be freed or inspected without threading the token through every
// caller.
type Local struct {
	Env Env
	V   Raw
}

// JSValue tags (JS_TAG_* in quickjs.h). Only the ones the surface inspects.
const (
	tagObject    = -1
	tagBool      = 1
	tagNull      = 2
	tagUndefined = 3
	tagException = 6
)

// isException reports whether a value-returning call failed. QuickJS signals
// failure by returning the exception sentinel value and leaving the real
// exception pending on the context.
func isException(v Raw) bool { return v.Ftag == tagException }

// IsUndefined reports whether v is the undefined value.
func IsUndefined(l Local) bool { return l.V.Ftag == tagUndefined }

// IsObject reports whether v is an object (including arrays and functions).
func IsObject(l Local) bool { return l.V.Ftag == tagObject }

// Free drops one reference to the value. Safe on tag-only values, which
// carry no refcount.
func Free(l Local) {
	lib.XFreeValue(l.Env.TLS, l.Env.Ctx, l.V)
}
