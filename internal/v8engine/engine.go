//go:build v8

// Package v8engine is the native call surface for the V8 backend. Handles
// are opaque *v8.Value pointers that carry their context internally; no
// execution-context token appears anywhere in this surface.
package v8engine

import (
	"fmt"

	v8 "github.com/tommie/v8go"
)

// Engine owns one isolate+context pair plus the property helper functions
// compiled into the context at open time.
type Engine struct {
	iso     *v8.Isolate
	ctx     *v8.Context
	helpers helperSet
	undef   *v8.Value
}

// Open creates an isolate and context. A positive memory limit becomes the
// isolate's heap resource constraints; zero keeps the engine default.
func Open(memoryLimitMB int) (*Engine, error) {
	var iso *v8.Isolate
	if memoryLimitMB > 0 {
		heap := uint64(memoryLimitMB) * 1024 * 1024
		iso = v8.NewIsolate(v8.WithResourceConstraints(heap/2, heap))
	} else {
		iso = v8.NewIsolate()
	}
	ctx := v8.NewContext(iso)

	hs, err := installHelpers(ctx)
	if err != nil {
		ctx.Close()
		iso.Dispose()
		return nil, fmt.Errorf("installing property helpers: %w", err)
	}

	return &Engine{iso: iso, ctx: ctx, helpers: hs, undef: v8.Undefined(iso)}, nil
}

// Isolate exposes the underlying isolate for value construction.
func (e *Engine) Isolate() *v8.Isolate { return e.iso }

// Ctx exposes the underlying context for interop.
func (e *Engine) Ctx() *v8.Context { return e.ctx }

// Close tears down the context and isolate. Handle lifetimes end here.
func (e *Engine) Close() {
	if e.iso == nil {
		return
	}
	e.ctx.Close()
	e.iso.Dispose()
	e.iso = nil
}

// Eval runs src as script. Engine exceptions come back as Go errors carrying
// the engine's message; V8 captures them at this boundary, nothing stays
// pending.
func (e *Engine) Eval(src, origin string) (*v8.Value, error) {
	v, err := e.ctx.RunScript(src, origin)
	if err != nil {
		return nil, fmt.Errorf("eval %s: %w", origin, err)
	}
	return v, nil
}

// Global returns the context's global object.
func (e *Engine) Global() *v8.Value {
	return e.ctx.Global().Value
}

// PumpJobs drains the microtask queue (Promise reactions, etc.).
func (e *Engine) PumpJobs() {
	e.ctx.PerformMicrotaskCheckpoint()
}

// NewArray builds an empty array via the helper; v8go exposes no direct
// array constructor.
func (e *Engine) NewArray() (*v8.Value, error) {
	v, err := e.helpers.newArray.Call(e.undef)
	if err != nil {
		return nil, fmt.Errorf("creating array: %w", err)
	}
	return v, nil
}

// NewObject builds an empty plain object from a fresh template.
func (e *Engine) NewObject() (*v8.Value, error) {
	obj, err := v8.NewObjectTemplate(e.iso).NewInstance(e.ctx)
	if err != nil {
		return nil, fmt.Errorf("creating object: %w", err)
	}
	return obj.Value, nil
}
