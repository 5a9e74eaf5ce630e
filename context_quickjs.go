//go:build !v8

package jsbind

import (
	"go.uber.org/zap"
	"modernc.org/quickjs"

	qjs "github.com/cryguy/jsbind/internal/quickjs"
)

// Context owns one QuickJS runtime+context pair and the scope stack tracking
// every reference handed out. Confined to one goroutine at a time.
type Context struct {
	vm     *qjs.VM
	scopes []*Scope
}

// NewContext boots an engine with the given limits and opens the root scope.
func NewContext(cfg Config) (*Context, error) {
	vm, err := qjs.Open(cfg.MemoryLimitMB, cfg.MaxStackKB)
	if err != nil {
		return nil, err
	}
	cx := &Context{vm: vm}
	cx.scopes = append(cx.scopes, &Scope{cx: cx})
	Logger().Debug("context opened", zap.String("backend", backendName))
	return cx, nil
}

// Env returns the execution-context token for the current native call.
// Extracted fresh on every use; callers must not hold it across calls.
func (cx *Context) Env() Env { return cx.vm.Env() }

// VM exposes the underlying modernc.org/quickjs VM for interop with code
// that drives the wrapper directly.
func (cx *Context) VM() *quickjs.VM { return cx.vm.Wrapper() }

// Close releases every live scope, then the engine. Using the context or any
// value derived from it afterwards is a caller error.
func (cx *Context) Close() {
	if cx.vm == nil {
		return
	}
	for len(cx.scopes) > 0 {
		cx.scopes[len(cx.scopes)-1].Close()
	}
	cx.vm.Close()
	cx.vm = nil
	Logger().Debug("context closed", zap.String("backend", backendName))
}

// Eval runs src as global-scope script. Engine exceptions come back as
// ordinary Go errors carrying the engine's message; the sentinel belongs to
// the property operations, not to eval.
func (cx *Context) Eval(src, origin string) (*Value, error) {
	l, err := qjs.Eval(cx.Env(), src, origin)
	if err != nil {
		return nil, err
	}
	return cx.adopt(l), nil
}

// Global returns the global object through the receiver conversion; the
// global object is the default this.
func (cx *Context) Global() *Object {
	g := cx.vm.GlobalObject()
	cx.scope().track(g)
	return AsThis(cx.Env(), g.V)
}

// PumpJobs drains pending engine jobs (Promise reactions, etc.).
func (cx *Context) PumpJobs() {
	cx.vm.PumpJobs()
}

// Undefined returns the undefined value.
func (cx *Context) Undefined() *Value {
	return cx.adopt(qjs.Undefined(cx.Env()))
}

// Null returns the null value.
func (cx *Context) Null() *Value {
	return cx.adopt(qjs.Null(cx.Env()))
}

// NewBoolean builds a boolean value.
func (cx *Context) NewBoolean(b bool) (*Value, error) {
	l, err := qjs.NewBool(cx.Env(), b)
	if err != nil {
		return nil, err
	}
	return cx.adopt(l), nil
}

// NewNumber builds a number value.
func (cx *Context) NewNumber(f float64) (*Value, error) {
	l, err := qjs.NewNumber(cx.Env(), f)
	if err != nil {
		return nil, err
	}
	return cx.adopt(l), nil
}

// NewString builds a string value from arbitrary UTF-8.
func (cx *Context) NewString(s string) (*Value, error) {
	l, err := qjs.NewString(cx.Env(), s)
	if err != nil {
		return nil, err
	}
	return cx.adopt(l), nil
}

// NewObject builds an empty plain object.
func (cx *Context) NewObject() (*Object, error) {
	l, err := qjs.NewObject(cx.Env())
	if err != nil {
		return nil, err
	}
	return &Object{Value: *cx.adopt(l)}, nil
}

// NewArray builds an empty array.
func (cx *Context) NewArray() (*Array, error) {
	l, err := qjs.NewArray(cx.Env())
	if err != nil {
		return nil, err
	}
	return &Array{Object{Value: *cx.adopt(l)}}, nil
}
