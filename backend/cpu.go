package backend

import (
	"golang.org/x/sys/cpu"
)

// HasVectorUnit reports whether the running CPU has 128-bit vector units
// with a byte shuffle, which is what the lane backend compiles down to.
func HasVectorUnit() bool {
	return cpu.X86.HasSSSE3 ||
		cpu.ARM64.HasASIMD ||
		cpu.ARM.HasNEON ||
		cpu.S390X.HasVX ||
		cpu.RISCV64.HasV ||
		cpu.PPC64.IsPOWER8
}

// preferredOrder returns the backend priority for the running CPU.
func preferredOrder() []string {
	if HasVectorUnit() {
		return []string{BackendLanes, BackendScalar}
	}
	return []string{BackendScalar, BackendLanes}
}
