//go:build !v8

package quickjs

import (
	"fmt"

	"modernc.org/libc"
	lib "modernc.org/libquickjs"
)

// evalGlobal is JS_EVAL_TYPE_GLOBAL.
const evalGlobal = 0

// Eval runs src as global-scope script and returns an owned reference to the
// completion value. Engine exceptions come back as Go errors carrying the
// engine's message; nothing stays pending.
func Eval(env Env, src, origin string) (Local, error) {
	csrc, err := libc.CString(src)
	if err != nil {
		return Local{}, err
	}
	defer libc.Xfree(env.TLS, csrc)
	corigin, err := libc.CString(origin)
	if err != nil {
		return Local{}, err
	}
	defer libc.Xfree(env.TLS, corigin)

	v := lib.XJS_Eval(env.TLS, env.Ctx, csrc, lib.Tsize_t(len(src)), corigin, evalGlobal)
	if isException(v) {
		return Local{}, exceptionError(env, "eval "+origin)
	}
	return Local{Env: env, V: v}, nil
}

// exceptionError takes the pending exception off the context and formats it
// into a Go error. Used by the lifecycle and construction paths only; the
// property surface leaves exceptions pending instead.
func exceptionError(env Env, doing string) error {
	exc := lib.XJS_GetException(env.TLS, env.Ctx)
	msg := ToString(Local{Env: env, V: exc})
	lib.XFreeValue(env.TLS, env.Ctx, exc)
	if msg == "" {
		return fmt.Errorf("%s: JavaScript exception", doing)
	}
	return fmt.Errorf("%s: %s", doing, msg)
}
