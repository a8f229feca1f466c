package buffer

import "testing"

func TestBufferAppendAndReset(t *testing.T) {
	bb := New(4)
	bb.Append([]byte("abc"))
	if got := string(bb.Bytes()); got != "abc" {
		t.Fatalf("Bytes() = %q, want %q", got, "abc")
	}
	if bb.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", bb.Len())
	}

	bb.Reset()
	if bb.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", bb.Len())
	}
	if bb.Cap() < 4 {
		t.Fatalf("Cap() after Reset = %d, want >= 4", bb.Cap())
	}
}

func TestBufferGrowPatch(t *testing.T) {
	bb := New(0)
	bb.Append([]byte("8=FIX.4.2|9="))
	placeholder := bb.Grow(6)
	bb.Append([]byte("|35=D|"))

	copy(bb.Slice(placeholder, placeholder+6), []byte("000040"))

	want := "8=FIX.4.2|9=000040|35=D|"
	if got := string(bb.Bytes()); got != want {
		t.Fatalf("Bytes() = %q, want %q", got, want)
	}
}

func TestBufferSetLength(t *testing.T) {
	bb := New(8)
	bb.Append([]byte("hello world"))
	bb.SetLength(5)
	if got := string(bb.Bytes()); got != "hello" {
		t.Fatalf("Bytes() = %q, want %q", got, "hello")
	}
}

func TestBufferSliceOutOfBoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-bounds Slice")
		}
	}()
	bb := New(4)
	bb.Append([]byte("ab"))
	_ = bb.Slice(0, 10)
}

func TestPoolGetPutRoundTrip(t *testing.T) {
	p := NewPool(16, 64)
	bb := p.Get()
	bb.Append([]byte("payload"))
	p.Put(bb)

	bb2 := p.Get()
	if bb2.Len() != 0 {
		t.Fatalf("pooled buffer not reset, Len() = %d", bb2.Len())
	}
}

func TestPoolDropsOversizedBuffers(t *testing.T) {
	p := NewPool(4, 8)
	bb := New(100)
	p.Put(bb)
	// The pool discards buffers over maxRetained, so Get must not hand the
	// oversized buffer back.
	if got := p.Get(); got == bb {
		t.Fatal("oversized buffer was retained by the pool")
	}
}
