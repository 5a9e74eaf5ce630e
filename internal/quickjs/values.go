//go:build !v8

package quickjs

import (
	"math"
	"strconv"
	"unsafe"

	"modernc.org/libc"
	lib "modernc.org/libquickjs"
)

// jsonOrigin is the filename JS_ParseJSON reports in errors.
const jsonOrigin = "<jsbind>"

// Undefined returns the undefined value. Tag-only, no refcount.
func Undefined(env Env) Local {
	var v Raw
	v.Ftag = tagUndefined
	return Local{Env: env, V: v}
}

// Null returns the null value. Tag-only, no refcount.
func Null(env Env) Local {
	var v Raw
	v.Ftag = tagNull
	return Local{Env: env, V: v}
}

// NewBool builds a boolean value.
func NewBool(env Env, b bool) (Local, error) {
	if b {
		return parseJSON(env, "true")
	}
	return parseJSON(env, "false")
}

// NewNumber builds a number value. Non-finite numbers have no JSON form and
// go through eval instead.
func NewNumber(env Env, f float64) (Local, error) {
	switch {
	case math.IsNaN(f):
		return Eval(env, "NaN", jsonOrigin)
	case math.IsInf(f, 1):
		return Eval(env, "Infinity", jsonOrigin)
	case math.IsInf(f, -1):
		return Eval(env, "-Infinity", jsonOrigin)
	}
	return parseJSON(env, strconv.FormatFloat(f, 'g', -1, 64))
}

// NewString builds a string value from arbitrary UTF-8, embedded NUL included.
func NewString(env Env, s string) (Local, error) {
	cs, err := libc.CString(s)
	if err != nil {
		return Local{}, err
	}
	defer libc.Xfree(env.TLS, cs)
	v := lib.XJS_NewStringLen(env.TLS, env.Ctx, cs, lib.Tsize_t(len(s)))
	if isException(v) {
		return Local{}, exceptionError(env, "creating string")
	}
	return Local{Env: env, V: v}, nil
}

// NewObject builds an empty plain object.
func NewObject(env Env) (Local, error) {
	v := lib.XJS_NewObject(env.TLS, env.Ctx)
	if isException(v) {
		return Local{}, exceptionError(env, "creating object")
	}
	return Local{Env: env, V: v}, nil
}

// NewArray builds an empty array.
func NewArray(env Env) (Local, error) {
	v := lib.XJS_NewArray(env.TLS, env.Ctx)
	if isException(v) {
		return Local{}, exceptionError(env, "creating array")
	}
	return Local{Env: env, V: v}, nil
}

func parseJSON(env Env, text string) (Local, error) {
	cs, err := libc.CString(text)
	if err != nil {
		return Local{}, err
	}
	defer libc.Xfree(env.TLS, cs)
	cname, err := libc.CString(jsonOrigin)
	if err != nil {
		return Local{}, err
	}
	defer libc.Xfree(env.TLS, cname)
	v := lib.XJS_ParseJSON(env.TLS, env.Ctx, cs, lib.Tsize_t(len(text)), cname)
	if isException(v) {
		return Local{}, exceptionError(env, "parsing json")
	}
	return Local{Env: env, V: v}, nil
}

// ToString converts with the engine's ToString. Conversion failures (a
// throwing toString, say) clear the exception and yield the empty string;
// this is the never-fail convenience shape, not the property ABI.
func ToString(l Local) string {
	tls, ctx := l.Env.TLS, l.Env.Ctx
	var n lib.Tsize_t
	p := lib.XJS_ToCStringLen2(tls, ctx, uintptr(unsafe.Pointer(&n)), l.V, 0)
	if p == 0 {
		clearException(l.Env)
		return ""
	}
	defer lib.XJS_FreeCString(tls, ctx, p)
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}

// ToFloat64 converts with the engine's ToNumber, zero on failure.
func ToFloat64(l Local) float64 {
	var f float64
	if lib.XJS_ToFloat64(l.Env.TLS, l.Env.Ctx, uintptr(unsafe.Pointer(&f)), l.V) < 0 {
		clearException(l.Env)
		return 0
	}
	return f
}

// ToBool converts with the engine's ToBoolean, false on failure.
func ToBool(l Local) bool {
	r := lib.XJS_ToBool(l.Env.TLS, l.Env.Ctx, l.V)
	if r < 0 {
		clearException(l.Env)
		return false
	}
	return r != 0
}

// IsArray asks Array.isArray, which sees through proxies.
func IsArray(l Local) bool {
	fn, err := globalPath(l.Env, "Array", "isArray")
	if err != nil {
		return false
	}
	defer Free(fn)
	ret, ok := Call(fn, Undefined(l.Env), l)
	if !ok {
		clearException(l.Env)
		return false
	}
	defer Free(ret)
	return ToBool(ret)
}

// IsFunction reports whether the value is callable, via instanceof against
// the realm's Function constructor. Single-realm embedding assumed.
func IsFunction(l Local) bool {
	ctor, err := globalPath(l.Env, "Function")
	if err != nil {
		return false
	}
	defer Free(ctor)
	r := lib.XJS_IsInstanceOf(l.Env.TLS, l.Env.Ctx, l.V, ctor.V)
	if r < 0 {
		clearException(l.Env)
		return false
	}
	return r != 0
}

// globalPath walks dotted names from the global object, returning an owned
// reference to the leaf.
func globalPath(env Env, path ...string) (Local, error) {
	cur := lib.XJS_GetGlobalObject(env.TLS, env.Ctx)
	for _, name := range path {
		cs, err := libc.CString(name)
		if err != nil {
			lib.XFreeValue(env.TLS, env.Ctx, cur)
			return Local{}, err
		}
		next := lib.XJS_GetPropertyStr(env.TLS, env.Ctx, cur, cs)
		libc.Xfree(env.TLS, cs)
		lib.XFreeValue(env.TLS, env.Ctx, cur)
		if isException(next) {
			return Local{}, exceptionError(env, "resolving "+name)
		}
		cur = next
	}
	return Local{Env: env, V: cur}, nil
}

// clearException drops the pending exception. Only the convenience
// conversions use this; the property surface leaves exceptions pending.
func clearException(env Env) {
	exc := lib.XJS_GetException(env.TLS, env.Ctx)
	lib.XFreeValue(env.TLS, env.Ctx, exc)
}
