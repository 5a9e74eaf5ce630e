//go:build v8

package jsbind

import "testing"

func TestAsThis_BindsReceiver(t *testing.T) {
	cx := newTestContext(t)

	mustEval(t, cx, `globalThis.marker = 21`)

	this := AsThis(cx.Global().rawLocal())
	v, err := this.Get(cx, Name("marker"))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v.Number() != 21 {
		t.Errorf("marker = %v, want 21", v.Number())
	}
}

func TestContext_RawAccess(t *testing.T) {
	cx := newTestContext(t)

	raw := cx.Raw()
	if raw == nil {
		t.Fatal("Raw() = nil")
	}

	v, err := raw.RunScript(`"direct"`, "raw.js")
	if err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	if got := v.String(); got != "direct" {
		t.Errorf("result = %q, want %q", got, "direct")
	}
}
