package jsbind

// build is the single out-parameter construction point for get-shaped native
// calls: allocate the out-slot, run the call, and either adopt the result
// into the current scope or surface the pending-exception sentinel. On false
// the out-slot is poison and is never wrapped. Raw values cross into caller
// code through here and nowhere else.
func build(cx *Context, fn func(out *Local) bool) (*Value, error) {
	var out Local
	if fn(&out) {
		return cx.adopt(out), nil
	}
	return nil, ErrPendingException
}
