//go:build !v8

package quickjs

import (
	"strconv"
	"unsafe"

	"modernc.org/libc"
	lib "modernc.org/libquickjs"
)

// Property entry points. Get-shaped calls report success through the raw
// boolean and write the result into out; on false the out-parameter is
// invalid and the exception stays pending on the context. Set-shaped calls
// additionally distinguish a refused write (wrote=false, boolean true) from
// a raised exception (boolean false).
//
// The direct JS_SetProperty* functions throw a TypeError where the contract
// wants a quiet refusal, so all writes go through Reflect.set, whose boolean
// result is exactly the wrote flag. Reads stay on the direct entry points.

// GetIndex reads an integer-indexed element.
func GetIndex(out *Local, obj Local, idx uint32) bool {
	env := obj.Env
	v := lib.XJS_GetPropertyUint32(env.TLS, env.Ctx, obj.V, idx)
	if isException(v) {
		return false
	}
	*out = Local{Env: env, V: v}
	return true
}

// SetIndex writes an integer-indexed element.
func SetIndex(wrote *bool, obj Local, idx uint32, val Local) bool {
	// Index keys pass through ToString in the engine anyway; the canonical
	// numeric string names the same property.
	return setStringKey(obj.Env, wrote, obj.V, strconv.FormatUint(uint64(idx), 10), val.V)
}

// GetKeyed reads a property named by an arbitrary engine value (string,
// number, symbol). Reflect.get applies the engine's own key normalization.
func GetKeyed(out *Local, obj, key Local) bool {
	env := obj.Env
	ret, ok := reflectCall(env, "get", obj.V, key.V)
	if !ok {
		return false
	}
	*out = Local{Env: env, V: ret}
	return true
}

// SetKeyed writes a property named by an arbitrary engine value.
func SetKeyed(wrote *bool, obj, key, val Local) bool {
	return setViaReflect(obj.Env, wrote, obj.V, key.V, val.V)
}

// GetText reads a text-keyed property. The key is lowered to a C string for
// the duration of the call.
func GetText(out *Local, obj Local, name string) bool {
	env := obj.Env
	cname, err := libc.CString(name)
	if err != nil {
		return false
	}
	defer libc.Xfree(env.TLS, cname)
	v := lib.XJS_GetPropertyStr(env.TLS, env.Ctx, obj.V, cname)
	if isException(v) {
		return false
	}
	*out = Local{Env: env, V: v}
	return true
}

// SetText writes a text-keyed property. Unlike every other entry point in
// this surface, the execution-context token arrives as an explicit
// parameter; the text write is the one call whose shape demands it.
func SetText(env Env, wrote *bool, obj Local, name string, val Local) bool {
	return setStringKey(env, wrote, obj.V, name, val.V)
}

// JS_GPN_* flags for JS_GetOwnPropertyNames.
const (
	gpnStringMask = 1 << 0
	gpnEnumOnly   = 1 << 4
)

// propEnumSize is sizeof(JSPropertyEnum): int32 is_enumerable + uint32 atom.
const propEnumSize = 8

// GetOwnNames enumerates the object's own enumerable string-keyed property
// names into a fresh array, preserving the engine's iteration order.
func GetOwnNames(out *Local, obj Local) bool {
	env := obj.Env
	tls, ctx := env.TLS, env.Ctx

	var tab uintptr
	var n uint32
	if lib.XJS_GetOwnPropertyNames(tls, ctx,
		uintptr(unsafe.Pointer(&tab)), uintptr(unsafe.Pointer(&n)),
		obj.V, gpnStringMask|gpnEnumOnly) < 0 {
		return false
	}

	ok := true
	arr := lib.XJS_NewArray(tls, ctx)
	if isException(arr) {
		ok = false
	}
	for i := uint32(0); ok && i < n; i++ {
		atom := *(*uint32)(unsafe.Pointer(tab + uintptr(i)*propEnumSize + 4))
		s := lib.XJS_AtomToString(tls, ctx, atom)
		if isException(s) {
			ok = false
			break
		}
		// JS_SetPropertyUint32 consumes the value reference.
		if lib.XJS_SetPropertyUint32(tls, ctx, arr, i, s) < 0 {
			ok = false
			break
		}
	}

	// Every table entry holds an atom reference; release them all, then the
	// table itself.
	for i := uint32(0); i < n; i++ {
		atom := *(*uint32)(unsafe.Pointer(tab + uintptr(i)*propEnumSize + 4))
		lib.XJS_FreeAtom(tls, ctx, atom)
	}
	if tab != 0 {
		lib.Xjs_free(tls, ctx, tab)
	}

	if !ok {
		lib.XFreeValue(tls, ctx, arr)
		return false
	}
	*out = Local{Env: env, V: arr}
	return true
}

// setStringKey builds the key string and routes the write through
// Reflect.set. Key-construction failures report through the false contract
// like any other native failure.
func setStringKey(env Env, wrote *bool, obj Raw, name string, val Raw) bool {
	cs, err := libc.CString(name)
	if err != nil {
		return false
	}
	defer libc.Xfree(env.TLS, cs)
	key := lib.XJS_NewStringLen(env.TLS, env.Ctx, cs, lib.Tsize_t(len(name)))
	if isException(key) {
		return false
	}
	defer lib.XFreeValue(env.TLS, env.Ctx, key)
	return setViaReflect(env, wrote, obj, key, val)
}

// setViaReflect performs the write and extracts the wrote flag from
// Reflect.set's boolean result.
func setViaReflect(env Env, wrote *bool, obj, key, val Raw) bool {
	ret, ok := reflectCall(env, "set", obj, key, val)
	if !ok {
		return false
	}
	b := lib.XJS_ToBool(env.TLS, env.Ctx, ret)
	lib.XFreeValue(env.TLS, env.Ctx, ret)
	if b < 0 {
		return false
	}
	*wrote = b != 0
	return true
}
