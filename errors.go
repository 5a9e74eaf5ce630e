package jsbind

import "errors"

// ErrPendingException reports that a native property operation failed and
// the engine holds a pending exception. The layer never inspects, wraps or
// clears the engine state; callers decide what to do with it. A refused
// write is not an exception and never produces this error.
var ErrPendingException = errors.New("pending JavaScript exception")
