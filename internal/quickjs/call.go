//go:build !v8

package quickjs

import (
	"unsafe"

	lib "modernc.org/libquickjs"
)

// Call invokes fn with the given receiver and arguments. The boolean is the
// raw ABI result: false means an exception is pending on the context and the
// returned Local is invalid. JS_Call does not consume argument references;
// the caller keeps ownership of fn, this and args, and receives ownership of
// the result.
func Call(fn, this Local, args ...Local) (Local, bool) {
	env := fn.Env
	raws := make([]Raw, len(args))
	for i, a := range args {
		raws[i] = a.V
	}
	ret := lib.XJS_Call(env.TLS, env.Ctx, fn.V, this.V, int32(len(raws)), argvPtr(raws))
	if isException(ret) {
		return Local{}, false
	}
	return Local{Env: env, V: ret}, true
}

// reflectCall invokes Reflect[member](args...) and hands ownership of the
// result to the caller. Stateless: the function value is re-resolved per
// call rather than cached on the context.
func reflectCall(env Env, member string, args ...Raw) (Raw, bool) {
	fn, err := globalPath(env, "Reflect", member)
	if err != nil {
		return Raw{}, false
	}
	defer Free(fn)

	ret := lib.XJS_Call(env.TLS, env.Ctx, fn.V, Undefined(env).V, int32(len(args)), argvPtr(args))
	if isException(ret) {
		return Raw{}, false
	}
	return ret, true
}

// argvPtr yields the argv pointer for a JS_Call. The engine reads the array
// during the call only and never retains it.
func argvPtr(args []Raw) uintptr {
	if len(args) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&args[0]))
}
