package intvm

import (
	"os"
	"slices"
	"testing"

	"gopkg.in/yaml.v3"
)

type fixture struct {
	Name    string          `yaml:"name"`
	Program []int64         `yaml:"program"`
	Inputs  []int64         `yaml:"inputs"`
	Outputs []int64         `yaml:"outputs"`
	Cells   map[int64]int64 `yaml:"cells"`
}

func loadFixtures(t *testing.T) []fixture {
	content, err := os.ReadFile("testdata/programs.yaml")
	if err != nil {
		t.Fatal(err)
	}
	var ret []fixture
	if err := yaml.Unmarshal(content, &ret); err != nil {
		t.Fatal(err)
	}
	if len(ret) == 0 {
		t.Fatal("no fixtures")
	}
	return ret
}

func TestFixtures(t *testing.T) {
	for _, f := range loadFixtures(t) {
		t.Run(f.Name, func(t *testing.T) {
			m := New(f.Program)
			m.MaxSteps = 1_000_000
			m.Push(f.Inputs...)

			var outputs []int64
			for intr, err := range m.Run {
				if err != nil {
					t.Fatal(err)
				}
				switch intr.Reason {
				case NeedsInput:
					t.Fatal("unexpected input request")
				case Output:
					outputs = append(outputs, intr.Value)
				}
			}

			if !m.Halted() {
				t.Fatal("not halted")
			}
			if !slices.Equal(outputs, f.Outputs) {
				t.Fatalf("got outputs %v, want %v", outputs, f.Outputs)
			}
			for addr, want := range f.Cells {
				if got := m.Peek(addr); got != want {
					t.Fatalf("cell %d: got %d, want %d", addr, got, want)
				}
			}
		})
	}
}

func TestFixturesProfiled(t *testing.T) {
	// profiling must not change behavior
	for _, f := range loadFixtures(t) {
		plain := New(f.Program)
		plain.Push(f.Inputs...)
		profiled := New(f.Program)
		profiled.Profile = NewProfile()
		profiled.Push(f.Inputs...)
		for {
			a, errA := plain.Resume(nil)
			b, errB := profiled.Resume(nil)
			if errA != nil || errB != nil {
				t.Fatalf("%s: %v %v", f.Name, errA, errB)
			}
			if a != b {
				t.Fatalf("%s: %v != %v", f.Name, a, b)
			}
			if a.Reason == Halted {
				break
			}
		}
		if !slices.Equal(plain.Tape.Cells(), profiled.Tape.Cells()) {
			t.Fatalf("%s: tapes differ", f.Name)
		}
		if profiled.Profile.Count(UsageOpcode) == 0 {
			t.Fatalf("%s: no opcode marks", f.Name)
		}
	}
}
