package bus

import (
	"testing"

	"github.com/rlowe/m8/bits"
)

func TestPortWriteThenTickCommits(t *testing.T) {
	p := NewPort(4)
	p.Write(bits.New(4, 9))
	if got := p.Read().Uint64(); got != 0 {
		t.Errorf("before Tick, Read() = %d, want 0 (pending not yet committed)", got)
	}
	// Read cleared the writing flag, so re-latch before ticking.
	p.Write(bits.New(4, 9))
	p.Tick(1)
	if got := p.Read().Uint64(); got != 9 {
		t.Errorf("after Tick, Read() = %d, want 9", got)
	}
	if got := p.Store().LastWriteTick(); got != 1 {
		t.Errorf("LastWriteTick = %d, want 1", got)
	}
}

func TestReadClearsWritingFlag(t *testing.T) {
	p := NewPort(4)
	p.Write(bits.New(4, 5))
	p.Tick(1)
	p.Read()
	// Without a new Write, a later Tick must not re-commit.
	p.Tick(2)
	if got := p.Store().LastWriteTick(); got != 1 {
		t.Errorf("LastWriteTick after stale tick = %d, want 1", got)
	}
}

func TestConnectSharesStore(t *testing.T) {
	a := NewPort(4)
	b := NewPort(4)
	a.Connect(b)
	b.Write(bits.New(4, 7))
	b.Tick(1)
	if got := a.Read().Uint64(); got != 7 {
		t.Errorf("connected port a.Read() = %d, want 7", got)
	}
}

func TestPinBooleanAccessors(t *testing.T) {
	p := NewPin()
	if p.ReadBit() {
		t.Errorf("initial pin value should be false")
	}
	p.WriteBit(true)
	p.Tick(1)
	if !p.ReadBit() {
		t.Errorf("pin should read true after WriteBit(true)+Tick")
	}
}

func TestSplitterJoinsLowAndHigh(t *testing.T) {
	s := NewSplitter(4, 4)
	low := s.LowPort()
	high := s.HighPort()
	combined := s.CombinedPort()

	low.Write(bits.New(4, 0x5))
	low.Tick(1)
	high.Write(bits.New(4, 0xA))
	high.Tick(1)
	s.Tick(2)

	if got := combined.Read().Uint64(); got != 0xA5 {
		t.Errorf("combined = %#02x, want 0xA5", got)
	}
}

func TestSplitterSplitsCombined(t *testing.T) {
	s := NewSplitter(4, 4)
	low := s.LowPort()
	high := s.HighPort()
	combined := s.CombinedPort()

	combined.Write(bits.New(8, 0xA5))
	combined.Tick(1)
	s.Tick(2)

	if got := low.Read().Uint64(); got != 0x5 {
		t.Errorf("low = %#x, want 0x5", got)
	}
	if got := high.Read().Uint64(); got != 0xA {
		t.Errorf("high = %#x, want 0xA", got)
	}
}

func TestSplitterEventualCoherence(t *testing.T) {
	s := NewSplitter(4, 4)
	low := s.LowPort()
	combined := s.CombinedPort()

	low.Write(bits.New(4, 0x3))
	low.Tick(10)
	// Tick 1: low is newer, join happens.
	s.Tick(11)
	// Tick 2: settle.
	s.Tick(12)

	if got := combined.Read().Uint64() & 0xF; got != 0x3 {
		t.Errorf("combined low nibble = %#x, want 0x3", got)
	}
}
