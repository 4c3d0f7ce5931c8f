package vec

import (
	"math"
	"testing"
	"unsafe"
)

type alignedStruct struct {
	a int64
	b int32
	c int8
}

func TestLayoutFor(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		size   uintptr
		align  uintptr
		makeIt func(int) layout
	}{
		{"int64", 4, 32, 8, layoutFor[int64]},
		{"byte", 10, 10, 1, layoutFor[byte]},
		{"struct", 2, 2 * unsafe.Sizeof(alignedStruct{}), unsafe.Alignof(alignedStruct{}), layoutFor[alignedStruct]},
		{"zero count", 0, 0, 8, layoutFor[int64]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := tt.makeIt(tt.n)
			if l.size != tt.size {
				t.Errorf("layout size = %d, want %d", l.size, tt.size)
			}
			if l.align != tt.align {
				t.Errorf("layout align = %d, want %d", l.align, tt.align)
			}
		})
	}
}

func TestLayoutForZeroSized(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for zero sized element type")
		}
	}()
	layoutFor[struct{}](4)
}

func TestLayoutForOverflow(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when byte size exceeds the addressable range")
		}
	}()
	layoutFor[int64](math.MaxInt)
}

func TestAllocateAlignment(t *testing.T) {
	for _, align := range []uintptr{1, 2, 4, 8} {
		l := layout{size: 64, align: align}
		b := allocate(l)

		if len(b) != 64 {
			t.Errorf("allocate(size=64, align=%d) length = %d, want 64", align, len(b))
		}
		addr := uintptr(unsafe.Pointer(&b[0]))
		if addr%align != 0 {
			t.Errorf("allocate(align=%d) start address %x not aligned", align, addr)
		}
	}
}

func TestReallocatePreservesContents(t *testing.T) {
	oldLayout := layoutFor[byte](16)
	b := allocate(oldLayout)
	for i := range b {
		b[i] = byte(i + 1)
	}

	newLayout := layoutFor[byte](32)
	b2 := reallocate(b, oldLayout, newLayout)

	if len(b2) != 32 {
		t.Fatalf("reallocate length = %d, want 32", len(b2))
	}
	for i := 0; i < 16; i++ {
		if b2[i] != byte(i+1) {
			t.Errorf("reallocate lost byte %d: got %d, want %d", i, b2[i], i+1)
		}
	}
}
