package jsbind

import "testing"

func TestPool_GetPut(t *testing.T) {
	p, err := NewPool(2, testCfg())
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer p.Close()

	a, err := p.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	b, err := p.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if a == b {
		t.Error("pool handed out the same context twice")
	}

	if got := mustEval(t, a, `1 + 1`).Number(); got != 2 {
		t.Errorf("eval in pooled context = %v, want 2", got)
	}

	p.Put(a)
	p.Put(b)

	c, err := p.Get()
	if err != nil {
		t.Fatalf("Get after Put: %v", err)
	}
	if got := mustEval(t, c, `2 + 2`).Number(); got != 4 {
		t.Errorf("eval in recycled context = %v, want 4", got)
	}
	p.Put(c)
}

func TestPool_MinimumSize(t *testing.T) {
	p, err := NewPool(0, testCfg())
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer p.Close()

	cx, err := p.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	p.Put(cx)
}

func TestPool_PutIntoFullPool(t *testing.T) {
	p, err := NewPool(1, testCfg())
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer p.Close()

	extra, err := NewContext(testCfg())
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	// The pool is already full, so the extra context is closed, not queued.
	p.Put(extra)

	cx, err := p.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got := mustEval(t, cx, `3 + 3`).Number(); got != 6 {
		t.Errorf("eval = %v, want 6", got)
	}
	p.Put(cx)
}
