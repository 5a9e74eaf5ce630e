package jsbind

// PropertyAttributes is the engine's read-only attribute bitmask for one
// property.
type PropertyAttributes uint32

const (
	AttrNone       PropertyAttributes = 0
	AttrReadOnly   PropertyAttributes = 1
	AttrDontEnum   PropertyAttributes = 2
	AttrDontDelete PropertyAttributes = 4
)

// Writable reports whether writes to the property can take effect.
func (a PropertyAttributes) Writable() bool { return a&AttrReadOnly == 0 }

// Enumerable reports whether the property shows up in enumeration.
func (a PropertyAttributes) Enumerable() bool { return a&AttrDontEnum == 0 }

// Configurable reports whether the property can be deleted or reshaped.
func (a PropertyAttributes) Configurable() bool { return a&AttrDontDelete == 0 }
