package cpu

/* CPU core: fetch/decode/execute, paging, registers, and bus routing.

   Copyright (c) 2024, Richard Cornwell

   Permission is hereby granted, free of charge, to any person obtaining a
   copy of this software and associated documentation files (the "Software"),
   to deal in the Software without restriction, including without limitation
   the rights to use, copy, modify, merge, publish, distribute, sublicense,
   and/or sell copies of the Software, and to permit persons to whom the
   Software is furnished to do so, subject to the following conditions:

   The above copyright notice and this permission notice shall be included in
   all copies or substantial portions of the Software.

   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.  IN NO EVENT SHALL
   ROBERT M SUPNIK BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
   IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
   CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

*/

import (
	"github.com/rlowe/m8/alu"
	"github.com/rlowe/m8/bits"
	"github.com/rlowe/m8/bus"
	"github.com/rlowe/m8/debug"
	"github.com/rlowe/m8/isa"
	"github.com/rlowe/m8/memory"
	"github.com/rlowe/m8/register"
)

// cell is the minimal load/store surface get_register routes through,
// satisfied by both a register.Register and the ALU's accumulator.
type cell interface {
	Load() bits.Uint
	Store(bits.Uint)
}

type accumulatorCell struct {
	alu *alu.ALU
}

func (a accumulatorCell) Load() bits.Uint   { return a.alu.Accumulator() }
func (a accumulatorCell) Store(v bits.Uint) { a.alu.SetAccumulator(v) }

// Core is the CPU: registers, ALU, program counter and paging state,
// the status and subroutine-jump flags, program and working memory,
// and the ports and pins INP/OUT/SEP/RSP route through. Every
// instruction completes within one tick; there is no multi-tick
// instruction.
type Core struct {
	alu  *alu.ALU
	regs *register.File

	programCounter     bits.Uint
	pageAddress        bits.Uint
	pageBuffer         bits.Uint
	subroutineJumpFlag bool
	subroutineRetAddr  bits.Uint
	statusFlag         bool

	programMemory *memory.ReadOnly
	workingMemory *memory.ReadWrite

	ports [isa.NumPorts]*bus.Port
	pins  [isa.NumPins]*bus.Pin
}

// New constructs a CPU whose program memory is initialized from
// image, which must be exactly isa.ProgramMemorySize bytes. Working
// memory, registers, the accumulator, the program counter, and all
// control flags start zeroed/false.
func New(image []byte) *Core {
	c := &Core{
		alu:           alu.New(isa.WorkingBits),
		regs:          register.NewFile(isa.WorkingBits),
		programMemory: memory.NewReadOnly(isa.PCBits+isa.PABits, isa.InstructionBits, image),
		workingMemory: memory.NewReadWrite(2*isa.WorkingBits, isa.WorkingBits),

		programCounter:    bits.Zero(isa.PCBits),
		pageAddress:       bits.Zero(isa.PABits),
		pageBuffer:        bits.Zero(isa.PABits),
		subroutineRetAddr: bits.Zero(isa.PCBits),
	}
	for i := range c.ports {
		c.ports[i] = bus.NewPort(isa.PortBits)
	}
	for i := range c.pins {
		c.pins[i] = bus.NewPin()
	}
	return c
}

// Port returns the CPU-owned port handle for the given port id (0-3),
// for wiring into splitters or connecting to a peripheral before the
// harness starts ticking.
func (c *Core) Port(id int) *bus.Port {
	return c.ports[id]
}

// Pin returns the CPU-owned pin handle for the given pin id (0-3).
func (c *Core) Pin(id int) *bus.Pin {
	return c.pins[id]
}

// ProgramCounter returns the current program counter.
func (c *Core) ProgramCounter() bits.Uint { return c.programCounter }

// PageAddress returns the current instruction page.
func (c *Core) PageAddress() bits.Uint { return c.pageAddress }

// PageBuffer returns the latched next page.
func (c *Core) PageBuffer() bits.Uint { return c.pageBuffer }

// StatusFlag returns the current branch-predicate flag.
func (c *Core) StatusFlag() bool { return c.statusFlag }

// SubroutineJumpFlag returns the current subroutine-jump mode.
func (c *Core) SubroutineJumpFlag() bool { return c.subroutineJumpFlag }

// SubroutineRetAddr returns the latched return address.
func (c *Core) SubroutineRetAddr() bits.Uint { return c.subroutineRetAddr }

// Accumulator returns the ALU's accumulator.
func (c *Core) Accumulator() bits.Uint { return c.alu.Accumulator() }

// X, Y, Z return the three general registers.
func (c *Core) X() bits.Uint { return c.regs.X.Load() }
func (c *Core) Y() bits.Uint { return c.regs.Y.Load() }
func (c *Core) Z() bits.Uint { return c.regs.Z.Load() }

// RegisterValue reads register_id's current value; id 0 is the
// accumulator, 1-3 are X, Y, Z. This is get_register from the
// architecture description, exposed read-only for tests and
// debugging.
func (c *Core) RegisterValue(id bits.Uint) bits.Uint {
	return c.registerCell(id.Uint64()).Load()
}

func (c *Core) registerCell(id uint64) cell {
	switch id {
	case isa.RegAccumulator:
		return accumulatorCell{c.alu}
	case isa.RegX:
		return c.regs.X
	case isa.RegY:
		return c.regs.Y
	case isa.RegZ:
		return c.regs.Z
	default:
		panic("cpu: register id out of range")
	}
}

// instructionAddress forms the program memory address from the
// current page and program counter: (page_address << PCBits) |
// program_counter.
func (c *Core) instructionAddress() bits.Uint {
	return bits.Concat(c.programCounter, c.pageAddress)
}

// workingAddress forms the working memory address from X and Y:
// (X << WorkingBits) | Y.
func (c *Core) workingAddress() bits.Uint {
	return bits.Concat(c.regs.Y.Load(), c.regs.X.Load())
}

// Tick runs one fetch/decode/execute cycle, then ticks every port and
// pin in index order, satisfying bus.Device.
func (c *Core) Tick(tick uint32) {
	c.step()
	for _, p := range c.ports {
		p.Tick(tick)
	}
	for _, p := range c.pins {
		p.Tick(tick)
	}
}

func (c *Core) step() {
	addr := c.instructionAddress()
	word := c.programMemory.Read(addr)
	debug.Tracef("cpu", "fetch", "addr=%#x word=%#02x page=%#x pc=%#x", addr.Uint64(), word.Uint64(), c.pageAddress.Uint64(), c.programCounter.Uint64())
	c.programCounter = c.programCounter.Inc()
	inst := isa.Decode(word)
	debug.Tracef("cpu", "execute", "mnemonic=%s", inst.Mnemonic)
	c.execute(inst)
}

func (c *Core) execute(inst isa.Instruction) {
	switch inst.Mnemonic {
	case isa.NOP:
		// No state change.

	case isa.STR:
		c.workingMemory.Write(c.workingAddress(), c.registerCell(inst.RegisterID.Uint64()).Load())

	case isa.LOD:
		c.registerCell(inst.RegisterID.Uint64()).Store(c.workingMemory.Read(c.workingAddress()))

	case isa.LDI:
		c.registerCell(inst.RegisterID.Uint64()).Store(inst.Immediate.WidenOrNarrow(isa.WorkingBits))

	case isa.INC:
		cell := c.registerCell(inst.RegisterID.Uint64())
		cell.Store(cell.Load().Inc())

	case isa.DEC:
		cell := c.registerCell(inst.RegisterID.Uint64())
		cell.Store(cell.Load().Dec())

	case isa.MOV:
		from := c.registerCell(inst.From.Uint64()).Load()
		c.registerCell(inst.To.Uint64()).Store(from)

	case isa.INP:
		c.regs.Z.Store(c.ports[inst.PortID.Uint64()].Read())

	case isa.OUT:
		c.ports[inst.PortID.Uint64()].Write(c.regs.Z.Load())

	case isa.SEP:
		c.pins[inst.PinID.Uint64()].WriteBit(true)

	case isa.RSP:
		c.pins[inst.PinID.Uint64()].WriteBit(false)

	case isa.ADD:
		c.alu.Add(c.registerCell(inst.RegisterID.Uint64()).Load())

	case isa.SUB:
		c.alu.Sub(c.registerCell(inst.RegisterID.Uint64()).Load())

	case isa.BOR:
		c.alu.Bor(c.registerCell(inst.RegisterID.Uint64()).Load())

	case isa.AND:
		c.alu.And(c.registerCell(inst.RegisterID.Uint64()).Load())

	case isa.CMP:
		c.statusFlag = c.alu.Cmp(c.registerCell(inst.RegisterID.Uint64()).Load())

	case isa.GRT:
		c.statusFlag = c.alu.Grt(c.registerCell(inst.RegisterID.Uint64()).Load())

	case isa.LES:
		c.statusFlag = c.alu.Les(c.registerCell(inst.RegisterID.Uint64()).Load())

	case isa.LPB:
		c.pageBuffer = inst.Immediate.WidenOrNarrow(isa.PABits)

	case isa.BRN:
		c.branch(inst.Immediate)

	case isa.SSF:
		c.statusFlag = true

	case isa.RSF:
		c.statusFlag = false

	case isa.SSJ:
		c.subroutineJumpFlag = true

	case isa.RSJ:
		c.subroutineJumpFlag = false

	case isa.RET:
		c.programCounter = c.subroutineRetAddr
	}
}

// branch implements BRN: a no-op unless statusFlag is set. When taken
// and not in subroutine-jump mode, the latched page buffer is
// committed to page_address before the jump; in subroutine-jump mode
// the branch stays within the current page. When taken in
// subroutine-jump mode, the post-increment program counter is
// captured as the return address before being overwritten — the
// capture point this implementation chooses for the otherwise
// unspecified subroutine_ret_addr (see DESIGN.md). statusFlag itself
// is left set; BRN never clears it.
func (c *Core) branch(immediate bits.Uint) {
	if !c.statusFlag {
		return
	}
	if !c.subroutineJumpFlag {
		c.pageAddress = c.pageBuffer
	} else {
		c.subroutineRetAddr = c.programCounter
	}
	c.programCounter = immediate.WidenOrNarrow(isa.PCBits)
}
