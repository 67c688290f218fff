package intvm

import (
	"slices"

	"github.com/reusee/intcode/tapes"
)

// Usage records how a cell has been touched during execution.
type Usage uint8

const (
	UsageOpcode Usage = 1 << iota
	UsageParam
	UsageRead
	UsageWrite
)

func (u Usage) String() string {
	var ret []byte
	for _, c := range []struct {
		bit  Usage
		char byte
	}{
		{UsageOpcode, 'i'},
		{UsageParam, 'p'},
		{UsageRead, 'r'},
		{UsageWrite, 'w'},
	} {
		if u&c.bit != 0 {
			ret = append(ret, c.char)
		} else {
			ret = append(ret, '-')
		}
	}
	return string(ret)
}

// Profile maps tape cells to their usage. Cells touched as both code and data reveal self-modification.
type Profile struct {
	marks []Usage
}

func NewProfile() *Profile {
	return &Profile{}
}

func (p *Profile) mark(addr int64, usage Usage) {
	if addr < 0 || addr >= tapes.MaxLen {
		return
	}
	if addr >= int64(len(p.marks)) {
		p.marks = slices.Grow(p.marks, int(addr)+1-len(p.marks))[:addr+1]
	}
	p.marks[addr] |= usage
}

func (p *Profile) Usage(addr int64) Usage {
	if addr < 0 || addr >= int64(len(p.marks)) {
		return 0
	}
	return p.marks[addr]
}

func (p *Profile) Len() int {
	return len(p.marks)
}

// Count returns the number of cells carrying every bit of usage.
func (p *Profile) Count(usage Usage) (n int) {
	for _, u := range p.marks {
		if u&usage == usage {
			n++
		}
	}
	return
}

func (p *Profile) Clone() *Profile {
	return &Profile{
		marks: slices.Clone(p.marks),
	}
}
