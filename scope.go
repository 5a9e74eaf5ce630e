package jsbind

// Scope is an arena for engine references: every value produced while it is
// the innermost open scope belongs to it and is released when it closes. On
// the QuickJS backend release drops refcounts; on the V8 backend the isolate
// owns lifetimes and release is a no-op. Scopes must nest.
type Scope struct {
	cx     *Context
	locals []Local
	closed bool
}

// EnterScope opens a nested scope. Values created before its Close land in
// it instead of the enclosing scope.
func (cx *Context) EnterScope() *Scope {
	s := &Scope{cx: cx}
	cx.scopes = append(cx.scopes, s)
	return s
}

// Close releases every reference the scope owns and pops it. Values obtained
// under the scope must not be used afterwards. Closing twice is harmless.
func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for i := len(s.locals) - 1; i >= 0; i-- {
		releaseLocal(s.locals[i])
	}
	s.locals = nil

	cx := s.cx
	for i := len(cx.scopes) - 1; i >= 0; i-- {
		if cx.scopes[i] == s {
			cx.scopes = append(cx.scopes[:i], cx.scopes[i+1:]...)
			break
		}
	}
}

func (s *Scope) track(l Local) {
	s.locals = append(s.locals, l)
}

// scope returns the innermost open scope. A context always holds at least
// its root scope until Close.
func (cx *Context) scope() *Scope {
	return cx.scopes[len(cx.scopes)-1]
}

// adopt hands a raw value to the current scope and wraps it; the single
// route by which references become caller-visible.
func (cx *Context) adopt(l Local) *Value {
	cx.scope().track(l)
	return &Value{raw: l}
}
