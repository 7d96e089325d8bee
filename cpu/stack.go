package cpu

// Push decrements SP, then stores register reg at the new top of stack.
func (cpu *Cpu) Push(reg int) (err error) {
	value, err := cpu.Register.Get(reg)
	if err != nil {
		return
	}

	sp := cpu.Register[REG_SP] - 1
	cpu.Register[REG_SP] = sp

	return cpu.Memory.Write(int(sp), value)
}

// Pop loads the top of stack into register reg, then increments SP.
// Popping into SP itself leaves SP one past the popped value.
func (cpu *Cpu) Pop(reg int) (err error) {
	value, err := cpu.Peek()
	if err != nil {
		return
	}

	err = cpu.Register.Set(reg, value)
	if err != nil {
		return
	}

	cpu.Register[REG_SP]++
	return
}

// Peek returns the value at the top of stack.
func (cpu *Cpu) Peek() (value byte, err error) {
	return cpu.Memory.Read(int(cpu.Register[REG_SP]))
}
