package intvm

import "testing"

func BenchmarkCountdown(b *testing.B) {
	// counts cell 9 down from b.N to zero
	program := []int64{
		1001, 9, -1, 9, // 0: add [9] -1 [9]
		1005, 9, 0, // 4: jnz [9] 0
		99, // 7
		0,  // 8
		0,  // 9: counter
	}
	program[9] = int64(b.N)
	m := New(program)
	b.ResetTimer()
	intr, err := m.Resume(nil)
	if err != nil {
		b.Fatal(err)
	}
	if intr != InterruptHalted {
		b.Fatalf("got %v", intr)
	}
}

func BenchmarkQuine(b *testing.B) {
	program := []int64{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99}
	m := New(program)
	for b.Loop() {
		m.Reset(program)
		for _, err := range m.Run {
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}
