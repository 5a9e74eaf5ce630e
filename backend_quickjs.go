//go:build !v8

package jsbind

import (
	qjs "github.com/cryguy/jsbind/internal/quickjs"
)

// backendName identifies the compiled-in engine backend.
const backendName = "quickjs"

// Local is the backend's raw value representation: the engine value paired
// with the environment that owns it.
type Local = qjs.Local

// Env is the execution-context token the QuickJS ABI threads through native
// calls. It is extracted from the Context at call time, never held by
// callers.
type Env = qjs.Env

// AsThis converts a raw engine value into an object receiver, associating it
// with the live environment. Infallible: the caller has already established
// that the value is object-like. Ownership of the reference stays with the
// caller.
func AsThis(env Env, raw qjs.Raw) *Object {
	return &Object{Value{raw: Local{Env: env, V: raw}}}
}

// releaseLocal drops a scope-owned engine reference. Refcounted on this
// backend.
func releaseLocal(l Local) { qjs.Free(l) }
