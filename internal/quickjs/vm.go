//go:build !v8

package quickjs

import (
	"fmt"
	"reflect"
	"unsafe"

	"modernc.org/libc"
	lib "modernc.org/libquickjs"
	"modernc.org/quickjs"
)

// VM owns one QuickJS runtime+context pair. The modernc.org/quickjs wrapper
// boots the runtime, the context and the intrinsics; the raw tls, JSContext
// and JSRuntime pointers are mined out of it once at open time so the
// property surface can call the C API directly.
type VM struct {
	wrapper *quickjs.VM
	env     Env
	rt      uintptr
}

// Open creates a VM and applies the resource limits. A zero limit leaves the
// engine default in place.
func Open(memoryLimitMB, maxStackKB int) (*VM, error) {
	w, err := quickjs.NewVM()
	if err != nil {
		return nil, fmt.Errorf("creating QuickJS VM: %w", err)
	}

	if memoryLimitMB > 0 {
		w.SetMemoryLimit(uintptr(memoryLimitMB) * 1024 * 1024)
	}

	tls, cctx, crt, err := extractVM(w)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("extracting VM internals: %w", err)
	}

	if maxStackKB > 0 {
		lib.XJS_SetMaxStackSize(tls, crt, lib.Tsize_t(maxStackKB)*1024)
	}

	return &VM{wrapper: w, env: Env{TLS: tls, Ctx: cctx}, rt: crt}, nil
}

// Env returns the execution-context token for native calls.
func (vm *VM) Env() Env { return vm.env }

// Wrapper exposes the underlying modernc.org/quickjs VM for interop.
func (vm *VM) Wrapper() *quickjs.VM { return vm.wrapper }

// Close tears down the runtime. Values obtained from this VM must already
// have been freed.
func (vm *VM) Close() {
	if vm.wrapper == nil {
		return
	}
	vm.wrapper.Close()
	vm.wrapper = nil
}

// PumpJobs runs pending jobs (Promise reactions, etc.) until the queue is
// empty. The wrapper never calls JS_ExecutePendingJob itself, so reactions
// would otherwise not fire. Returns the number of jobs executed.
func (vm *VM) PumpJobs() int {
	count := 0
	for {
		ret := lib.XJS_ExecutePendingJob(vm.env.TLS, vm.rt, 0)
		if ret <= 0 {
			break
		}
		count++
	}
	return count
}

// GlobalObject returns a fresh reference to the global object. The caller
// owns the reference.
func (vm *VM) GlobalObject() Local {
	g := lib.XJS_GetGlobalObject(vm.env.TLS, vm.env.Ctx)
	return Local{Env: vm.env, V: g}
}

// extractVM pulls the unexported tls, cContext and cRuntime values out of a
// *quickjs.VM and smoke-tests them with a trivial C call.
//
// VM struct layout (modernc.org/quickjs@v0.17.1):
//
//	type VM struct {
//	    cContext uintptr
//	    ...
//	    runtime  *runtime
//	}
//
//	type runtime struct {
//	    cRuntime uintptr
//	    tls      *libc.TLS
//	}
func extractVM(w *quickjs.VM) (tls *libc.TLS, cctx, crt uintptr, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic extracting VM internals: %v", p)
		}
	}()

	vmType := reflect.TypeOf(w).Elem()
	vmPtr := uintptr(unsafe.Pointer(w))

	// cContext is the first field of VM (offset 0).
	cctx = *(*uintptr)(unsafe.Pointer(vmPtr))
	if cctx == 0 {
		return nil, 0, 0, fmt.Errorf("JSContext is nil")
	}

	rtField, ok := vmType.FieldByName("runtime")
	if !ok {
		return nil, 0, 0, fmt.Errorf("quickjs.VM missing 'runtime' field")
	}
	rtPtr := *(*uintptr)(unsafe.Pointer(vmPtr + rtField.Offset))
	if rtPtr == 0 {
		return nil, 0, 0, fmt.Errorf("runtime pointer is nil")
	}

	// tls is the second field in runtime (after cRuntime uintptr).
	crt = *(*uintptr)(unsafe.Pointer(rtPtr))
	if crt == 0 {
		return nil, 0, 0, fmt.Errorf("JSRuntime is nil")
	}
	tls = *(**libc.TLS)(unsafe.Pointer(rtPtr + unsafe.Sizeof(uintptr(0))))
	if tls == nil {
		return nil, 0, 0, fmt.Errorf("TLS is nil")
	}

	// Smoke-test: a trivial C call that must not crash with valid pointers.
	glob := lib.XJS_GetGlobalObject(tls, cctx)
	lib.XFreeValue(tls, cctx, glob)

	return tls, cctx, crt, nil
}
