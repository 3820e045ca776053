package cpu

import "fmt"

// FaultKind identifies why the CPU core stopped being able to make
// progress. All of these indicate either a corrupt program image or a
// wiring bug; per spec.md §7 there is no recovery policy for any of
// them.
type FaultKind uint8

const (
	UnknownOpcode FaultKind = iota
	IllegalAddressingModeForInstruction
	BankIndexOutOfRange
)

func (k FaultKind) String() string {
	switch k {
	case UnknownOpcode:
		return "UnknownOpcode"
	case IllegalAddressingModeForInstruction:
		return "IllegalAddressingModeForInstruction"
	case BankIndexOutOfRange:
		return "BankIndexOutOfRange"
	default:
		return fmt.Sprintf("FaultKind(%d)", k)
	}
}

// Fault is raised (via panic) when Tick hits one of the fatal
// conditions in spec.md §7. A host driver loop should recover at the
// top level and report Fault.Error() before exiting; there is nothing
// inside the core it can do to continue.
type Fault struct {
	Kind FaultKind
	PC   uint16
	Err  error
}

func (f *Fault) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("cpu: %s at pc=%#04x: %v", f.Kind, f.PC, f.Err)
	}
	return fmt.Sprintf("cpu: %s at pc=%#04x", f.Kind, f.PC)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
