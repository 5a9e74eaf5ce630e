package jsbind

import "testing"

func TestPropertyAttributes_Bits(t *testing.T) {
	tests := []struct {
		name         string
		attrs        PropertyAttributes
		writable     bool
		enumerable   bool
		configurable bool
	}{
		{"none", AttrNone, true, true, true},
		{"readonly", AttrReadOnly, false, true, true},
		{"dontenum", AttrDontEnum, true, false, true},
		{"dontdelete", AttrDontDelete, true, true, false},
		{"all", AttrReadOnly | AttrDontEnum | AttrDontDelete, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.attrs.Writable(); got != tt.writable {
				t.Errorf("Writable() = %v, want %v", got, tt.writable)
			}
			if got := tt.attrs.Enumerable(); got != tt.enumerable {
				t.Errorf("Enumerable() = %v, want %v", got, tt.enumerable)
			}
			if got := tt.attrs.Configurable(); got != tt.configurable {
				t.Errorf("Configurable() = %v, want %v", got, tt.configurable)
			}
		})
	}
}
