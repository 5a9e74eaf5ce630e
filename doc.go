// Package jsbind is a typed property-access layer over an embedded
// JavaScript engine's native object representation. Two engine backends with
// mutually incompatible native ABIs sit behind one interface, selected at
// compile time: the default build embeds QuickJS (the modernc.org
// translation), whose C ABI threads an explicit execution-context token
// through every call; the v8 build tag selects V8 via v8go, whose opaque
// handles carry their context internally.
//
// A Context owns one engine instance. Values obtained from it are typed,
// scope-bounded references released by the innermost open Scope; raw engine
// values never reach callers unwrapped. Property operations report engine
// exceptions through the payload-free ErrPendingException sentinel and
// refused writes through a false wrote flag, never conflating the two.
//
// Operations exist only where the backend's native surface offers them:
// attribute queries and inherited-name enumeration compile under the v8 tag
// only. Portable callers restrict themselves to the common subset.
//
// A Context and everything derived from it is confined to one goroutine at a
// time; the library does not lock.
package jsbind
