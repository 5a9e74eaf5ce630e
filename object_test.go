package jsbind

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// Text-keyed access
// ---------------------------------------------------------------------------

func TestObject_GetSetName(t *testing.T) {
	cx := newTestContext(t)

	o := evalObject(t, cx, `({a: 1})`)

	wrote, err := o.Set(cx, Name("a"), mustNumber(t, cx, 2))
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !wrote {
		t.Fatal("Set = false, want true")
	}

	v, err := o.Get(cx, Name("a"))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v.Number() != 2 {
		t.Errorf("a = %v, want 2", v.Number())
	}
}

func TestObject_GetMissingName(t *testing.T) {
	cx := newTestContext(t)

	o := evalObject(t, cx, `({})`)

	v, err := o.Get(cx, Name("absent"))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !v.IsUndefined() {
		t.Error("missing property should read as undefined")
	}
}

func TestObject_SetAddsProperty(t *testing.T) {
	cx := newTestContext(t)

	mustEval(t, cx, `globalThis.target = {}`)
	o := evalObject(t, cx, `target`)

	wrote, err := o.Set(cx, Name("fresh"), mustString(t, cx, "v"))
	if err != nil || !wrote {
		t.Fatalf("Set = (%v, %v), want (true, nil)", wrote, err)
	}
	if got := mustEval(t, cx, `target.fresh`).String(); got != "v" {
		t.Errorf("target.fresh = %q, want %q", got, "v")
	}
}

func TestObject_SetRefused(t *testing.T) {
	cx := newTestContext(t)

	o := evalObject(t, cx, `Object.freeze({b: 1})`)

	wrote, err := o.Set(cx, Name("b"), mustNumber(t, cx, 2))
	if err != nil {
		t.Fatalf("refused write returned error: %v", err)
	}
	if wrote {
		t.Error("Set on frozen object = true, want false")
	}

	// The refusal is not an exception; the property keeps its value and the
	// context stays usable.
	v, err := o.Get(cx, Name("b"))
	if err != nil {
		t.Fatalf("Get after refusal: %v", err)
	}
	if v.Number() != 1 {
		t.Errorf("b = %v, want 1", v.Number())
	}
}

func TestObject_SetRefusedNonWritable(t *testing.T) {
	cx := newTestContext(t)

	o := evalObject(t, cx, `
		(function () {
			var o = {};
			Object.defineProperty(o, "ro", {value: 1, writable: false});
			return o;
		})()
	`)

	wrote, err := o.Set(cx, Name("ro"), mustNumber(t, cx, 2))
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if wrote {
		t.Error("Set on non-writable property = true, want false")
	}
}

func TestObject_ThrowingGetter(t *testing.T) {
	cx := newTestContext(t)

	o := evalObject(t, cx, `({ get boom() { throw new Error("nope"); } })`)

	_, err := o.Get(cx, Name("boom"))
	if !errors.Is(err, ErrPendingException) {
		t.Errorf("err = %v, want ErrPendingException", err)
	}
}

func TestObject_ThrowingSetter(t *testing.T) {
	cx := newTestContext(t)

	o := evalObject(t, cx, `({ set boom(v) { throw new Error("nope"); } })`)

	_, err := o.Set(cx, Name("boom"), mustNumber(t, cx, 1))
	if !errors.Is(err, ErrPendingException) {
		t.Errorf("err = %v, want ErrPendingException", err)
	}
}

// ---------------------------------------------------------------------------
// Index-keyed access
// ---------------------------------------------------------------------------

func TestObject_GetSetIndex(t *testing.T) {
	cx := newTestContext(t)

	o := evalObject(t, cx, `[10, 20, 30]`)

	v, err := o.Get(cx, Index(1))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v.Number() != 20 {
		t.Errorf("[1] = %v, want 20", v.Number())
	}

	wrote, err := o.Set(cx, Index(1), mustNumber(t, cx, 99))
	if err != nil || !wrote {
		t.Fatalf("Set = (%v, %v), want (true, nil)", wrote, err)
	}

	v, err = o.Get(cx, Index(1))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v.Number() != 99 {
		t.Errorf("[1] = %v, want 99", v.Number())
	}
}

func TestObject_IndexPastEnd(t *testing.T) {
	cx := newTestContext(t)

	o := evalObject(t, cx, `[1]`)

	v, err := o.Get(cx, Index(5))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !v.IsUndefined() {
		t.Error("read past the end should be undefined")
	}

	// Writing past the end extends the array.
	wrote, err := o.Set(cx, Index(5), mustNumber(t, cx, 6))
	if err != nil || !wrote {
		t.Fatalf("Set = (%v, %v), want (true, nil)", wrote, err)
	}
	length, err := (&Array{*o}).Length(cx)
	if err != nil {
		t.Fatalf("Length: %v", err)
	}
	if length != 6 {
		t.Errorf("length = %d, want 6", length)
	}
}

// ---------------------------------------------------------------------------
// Value-keyed access
// ---------------------------------------------------------------------------

func TestObject_ValueKey(t *testing.T) {
	cx := newTestContext(t)

	o := evalObject(t, cx, `({dyn: 5})`)
	key := mustString(t, cx, "dyn")

	v, err := o.Get(cx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v.Number() != 5 {
		t.Errorf("dyn = %v, want 5", v.Number())
	}

	wrote, err := o.Set(cx, key, mustNumber(t, cx, 6))
	if err != nil || !wrote {
		t.Fatalf("Set = (%v, %v), want (true, nil)", wrote, err)
	}
	v, err = o.Get(cx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v.Number() != 6 {
		t.Errorf("dyn = %v, want 6", v.Number())
	}
}

func TestObject_SymbolKey(t *testing.T) {
	cx := newTestContext(t)

	mustEval(t, cx, `
		globalThis.sym = Symbol("s");
		globalThis.holder = {};
		holder[sym] = 7;
	`)
	holder := evalObject(t, cx, `holder`)
	key := mustEval(t, cx, `sym`)

	v, err := holder.Get(cx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v.Number() != 7 {
		t.Errorf("holder[sym] = %v, want 7", v.Number())
	}

	wrote, err := holder.Set(cx, key, mustNumber(t, cx, 8))
	if err != nil || !wrote {
		t.Fatalf("Set = (%v, %v), want (true, nil)", wrote, err)
	}
	if got := mustEval(t, cx, `holder[sym]`).Number(); got != 8 {
		t.Errorf("holder[sym] = %v, want 8", got)
	}
}

func TestObject_NumberValueKey(t *testing.T) {
	cx := newTestContext(t)

	o := evalObject(t, cx, `["zero", "one"]`)

	v, err := o.Get(cx, mustNumber(t, cx, 1))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got := v.String(); got != "one" {
		t.Errorf("[1] = %q, want %q", got, "one")
	}
}

// ---------------------------------------------------------------------------
// Enumeration
// ---------------------------------------------------------------------------

func TestObject_GetOwnPropertyNames(t *testing.T) {
	cx := newTestContext(t)

	o := evalObject(t, cx, `
		(function () {
			var o = Object.create({inherited: 1});
			o.x = 1;
			o.y = 2;
			Object.defineProperty(o, "hidden", {value: 3, enumerable: false});
			return o;
		})()
	`)

	names, err := o.GetOwnPropertyNames(cx)
	if err != nil {
		t.Fatalf("GetOwnPropertyNames: %v", err)
	}

	got := stringsOf(t, cx, names)
	want := []string{"x", "y"}
	if len(got) != len(want) {
		t.Fatalf("names = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestObject_GetOwnPropertyNamesEmpty(t *testing.T) {
	cx := newTestContext(t)

	o := evalObject(t, cx, `({})`)

	names, err := o.GetOwnPropertyNames(cx)
	if err != nil {
		t.Fatalf("GetOwnPropertyNames: %v", err)
	}
	if got := stringsOf(t, cx, names); len(got) != 0 {
		t.Errorf("names = %v, want empty", got)
	}
}
