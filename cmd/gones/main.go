// Command gones loads an iNES ROM and runs its CPU core until
// interrupted. There is no rendering, audio or input: this drives the
// 6502 interpreter in isolation, the way a headless test harness would.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bdwalton/gintendo/machine"
)

var romFile = flag.String("nes_rom", "", "Path to an iNES ROM file to run.")

func main() {
	flag.Parse()

	if *romFile == "" {
		log.Fatalf("gones: -nes_rom is required")
	}

	data, err := os.ReadFile(*romFile)
	if err != nil {
		log.Fatalf("gones: couldn't read ROM: %v", err)
	}

	m, err := machine.FromInesBytes(data)
	if err != nil {
		log.Fatalf("gones: invalid ROM: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	run(ctx, m)
}

// run ticks the CPU until ctx is cancelled, recovering a *cpu.Fault at
// the top level since the core has no internal policy for continuing
// past one.
func run(ctx context.Context, m *machine.Machine) {
	defer func() {
		if r := recover(); r != nil {
			log.Fatalf("gones: %v", r)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		default:
			m.Tick()
		}
	}
}
