//go:build v8

package v8engine

import (
	"fmt"

	v8 "github.com/tommie/v8go"
)

// helpersJS compiles once per context into the function set backing the
// operations v8go has no direct call for: value-keyed access, the wrote
// flag on writes, attribute queries and enumeration.
//
// Reflect.set's boolean result is the wrote flag: false for a refused write,
// an exception only when a setter or proxy trap raises. The attrs walk
// mirrors the engine's own full lookup: first descriptor up the prototype
// chain wins, absent property reports 0 (None). ReadOnly=1, DontEnum=2,
// DontDelete=4.
const helpersJS = `({
	get: function(o, k) { return o[k]; },
	set: function(o, k, v) { return Reflect.set(o, k, v); },
	attrs: function(o, k) {
		for (var p = o; p !== null && p !== undefined; p = Object.getPrototypeOf(p)) {
			var d = Object.getOwnPropertyDescriptor(p, k);
			if (!d) { continue; }
			var a = 0;
			if (d.get || d.set) {
				if (!d.set) { a |= 1; }
			} else if (!d.writable) {
				a |= 1;
			}
			if (!d.enumerable) { a |= 2; }
			if (!d.configurable) { a |= 4; }
			return a;
		}
		return 0;
	},
	names: function(o) { var r = []; for (var k in o) { r.push(k); } return r; },
	ownNames: function(o) { return Object.keys(o); },
	newArray: function() { return []; }
})`

type helperSet struct {
	get      *v8.Function
	set      *v8.Function
	attrs    *v8.Function
	names    *v8.Function
	ownNames *v8.Function
	newArray *v8.Function
}

func installHelpers(ctx *v8.Context) (helperSet, error) {
	var hs helperSet

	v, err := ctx.RunScript(helpersJS, "jsbind_helpers.js")
	if err != nil {
		return hs, fmt.Errorf("compiling helpers: %w", err)
	}
	obj, err := v.AsObject()
	if err != nil {
		return hs, fmt.Errorf("helpers object: %w", err)
	}

	grab := func(name string) (*v8.Function, error) {
		hv, err := obj.Get(name)
		if err != nil {
			return nil, fmt.Errorf("helper %s: %w", name, err)
		}
		fn, err := hv.AsFunction()
		if err != nil {
			return nil, fmt.Errorf("helper %s: %w", name, err)
		}
		return fn, nil
	}

	if hs.get, err = grab("get"); err != nil {
		return hs, err
	}
	if hs.set, err = grab("set"); err != nil {
		return hs, err
	}
	if hs.attrs, err = grab("attrs"); err != nil {
		return hs, err
	}
	if hs.names, err = grab("names"); err != nil {
		return hs, err
	}
	if hs.ownNames, err = grab("ownNames"); err != nil {
		return hs, err
	}
	if hs.newArray, err = grab("newArray"); err != nil {
		return hs, err
	}
	return hs, nil
}
