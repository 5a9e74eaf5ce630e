//go:build v8

package jsbind

import (
	v8 "github.com/tommie/v8go"
)

// backendName identifies the compiled-in engine backend.
const backendName = "v8"

// Local is the backend's raw value representation: an opaque handle that
// carries its context internally. No execution-context token exists in this
// build.
type Local = *v8.Value

// AsThis converts a raw engine value into an object receiver. Context-free
// on this backend; the handle already knows its context. Infallible: the
// caller has already established that the value is object-like.
func AsThis(raw Local) *Object {
	return &Object{Value{raw: raw}}
}

// releaseLocal is a no-op on this backend: handle lifetimes end with the
// isolate.
func releaseLocal(Local) {}
