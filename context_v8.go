//go:build v8

package jsbind

import (
	v8 "github.com/tommie/v8go"
	"go.uber.org/zap"

	"github.com/cryguy/jsbind/internal/v8engine"
)

// Context owns one V8 isolate+context pair and the scope stack tracking
// every reference handed out. Confined to one goroutine at a time.
type Context struct {
	eng    *v8engine.Engine
	scopes []*Scope
}

// NewContext boots an engine with the given limits and opens the root scope.
// MaxStackKB has no V8 knob and is ignored on this backend.
func NewContext(cfg Config) (*Context, error) {
	eng, err := v8engine.Open(cfg.MemoryLimitMB)
	if err != nil {
		return nil, err
	}
	cx := &Context{eng: eng}
	cx.scopes = append(cx.scopes, &Scope{cx: cx})
	Logger().Debug("context opened", zap.String("backend", backendName))
	return cx, nil
}

// Raw exposes the underlying v8go context for interop with code that drives
// v8go directly.
func (cx *Context) Raw() *v8.Context { return cx.eng.Ctx() }

// Close releases every live scope, then the engine. Using the context or any
// value derived from it afterwards is a caller error.
func (cx *Context) Close() {
	if cx.eng == nil {
		return
	}
	for len(cx.scopes) > 0 {
		cx.scopes[len(cx.scopes)-1].Close()
	}
	cx.eng.Close()
	cx.eng = nil
	Logger().Debug("context closed", zap.String("backend", backendName))
}

// Eval runs src as global-scope script. Engine exceptions come back as
// ordinary Go errors carrying the engine's message; the sentinel belongs to
// the property operations, not to eval.
func (cx *Context) Eval(src, origin string) (*Value, error) {
	v, err := cx.eng.Eval(src, origin)
	if err != nil {
		return nil, err
	}
	return cx.adopt(v), nil
}

// Global returns the global object through the receiver conversion; the
// global object is the default this.
func (cx *Context) Global() *Object {
	g := cx.eng.Global()
	cx.scope().track(g)
	return AsThis(g)
}

// PumpJobs drains the microtask queue (Promise reactions, etc.).
func (cx *Context) PumpJobs() {
	cx.eng.PumpJobs()
}

// Undefined returns the undefined value.
func (cx *Context) Undefined() *Value {
	return cx.adopt(v8.Undefined(cx.eng.Isolate()))
}

// Null returns the null value.
func (cx *Context) Null() *Value {
	return cx.adopt(v8.Null(cx.eng.Isolate()))
}

// NewBoolean builds a boolean value.
func (cx *Context) NewBoolean(b bool) (*Value, error) {
	v, err := v8.NewValue(cx.eng.Isolate(), b)
	if err != nil {
		return nil, err
	}
	return cx.adopt(v), nil
}

// NewNumber builds a number value.
func (cx *Context) NewNumber(f float64) (*Value, error) {
	v, err := v8.NewValue(cx.eng.Isolate(), f)
	if err != nil {
		return nil, err
	}
	return cx.adopt(v), nil
}

// NewString builds a string value.
func (cx *Context) NewString(s string) (*Value, error) {
	v, err := v8.NewValue(cx.eng.Isolate(), s)
	if err != nil {
		return nil, err
	}
	return cx.adopt(v), nil
}

// NewObject builds an empty plain object.
func (cx *Context) NewObject() (*Object, error) {
	v, err := cx.eng.NewObject()
	if err != nil {
		return nil, err
	}
	return &Object{Value: *cx.adopt(v)}, nil
}

// NewArray builds an empty array.
func (cx *Context) NewArray() (*Array, error) {
	v, err := cx.eng.NewArray()
	if err != nil {
		return nil, err
	}
	return &Array{Object{Value: *cx.adopt(v)}}, nil
}
