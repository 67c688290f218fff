package tapes

import (
	"errors"
	"slices"
	"testing"
)

func TestReadUnwritten(t *testing.T) {
	tape := New([]int64{1, 2, 3})
	for _, addr := range []int64{3, 4, 100, 1 << 40} {
		if v := tape.Read(addr); v != 0 {
			t.Fatalf("addr %d: got %d", addr, v)
		}
	}
	if v := tape.Read(-1); v != 0 {
		t.Fatalf("got %d", v)
	}
	if tape.Len() != 3 {
		t.Fatalf("read should not grow, len %d", tape.Len())
	}
}

func TestWriteGrows(t *testing.T) {
	tape := New([]int64{1, 2, 3})
	if err := tape.Write(10, 42); err != nil {
		t.Fatal(err)
	}
	if n := tape.Len(); n != 11+Slack {
		t.Fatalf("got len %d", n)
	}
	if v := tape.Read(10); v != 42 {
		t.Fatalf("got %d", v)
	}
	for addr := int64(3); addr < int64(tape.Len()); addr++ {
		if addr == 10 {
			continue
		}
		if v := tape.Read(addr); v != 0 {
			t.Fatalf("addr %d: got %d", addr, v)
		}
	}

	// growth keeps lower cells
	if err := tape.Write(5000, 7); err != nil {
		t.Fatal(err)
	}
	if got := tape.Cells()[:3]; !slices.Equal(got, []int64{1, 2, 3}) {
		t.Fatalf("got %v", got)
	}
	if v := tape.Read(10); v != 42 {
		t.Fatalf("got %d", v)
	}
	if v := tape.Read(5000); v != 7 {
		t.Fatalf("got %d", v)
	}
}

func TestWriteWithinSlackDoesNotGrow(t *testing.T) {
	tape := New(nil)
	if err := tape.Write(0, 1); err != nil {
		t.Fatal(err)
	}
	n := tape.Len()
	if err := tape.Write(int64(n-1), 2); err != nil {
		t.Fatal(err)
	}
	if tape.Len() != n {
		t.Fatalf("got len %d, want %d", tape.Len(), n)
	}
}

func TestWriteFaults(t *testing.T) {
	tape := New(nil)
	if err := tape.Write(-1, 1); !errors.Is(err, ErrNegativeAddress) {
		t.Fatalf("got %v", err)
	}
	if err := tape.Write(MaxLen, 1); !errors.Is(err, ErrAddressRange) {
		t.Fatalf("got %v", err)
	}
	if tape.Len() != 0 {
		t.Fatalf("got len %d", tape.Len())
	}
	if err := tape.Write(MaxLen-1, 1); err != nil {
		t.Fatal(err)
	}
	if tape.Len() != MaxLen {
		t.Fatalf("got len %d", tape.Len())
	}
}

func TestNoAliasing(t *testing.T) {
	program := []int64{1, 2, 3}
	tape := New(program)
	program[0] = 99
	if v := tape.Read(0); v != 1 {
		t.Fatalf("got %d", v)
	}
	cells := tape.Cells()
	cells[1] = 99
	if v := tape.Read(1); v != 2 {
		t.Fatalf("got %d", v)
	}
	clone := tape.Clone()
	if err := clone.Write(2, 99); err != nil {
		t.Fatal(err)
	}
	if v := tape.Read(2); v != 3 {
		t.Fatalf("got %d", v)
	}
}
