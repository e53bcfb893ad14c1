// Command drainsim runs the arena without a window. It presses the drain on
// a chosen frame and reports what the drain did; heal lines go to stderr.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/milk9111/lifedrain/ecs"
	"github.com/milk9111/lifedrain/ecs/entity"
	"github.com/milk9111/lifedrain/ecs/system"
	"github.com/milk9111/lifedrain/sim"
)

func main() {
	frames := flag.Int("frames", 240, "frames to simulate")
	dt := flag.Float64("dt", ecs.DefaultDeltaTime, "seconds per frame")
	pressAt := flag.Int("press", 0, "frame on which the drain key goes down")
	cancelAt := flag.Int("cancel", -1, "frame on which the cancel key goes down (-1 = never)")
	quiet := flag.Bool("quiet", false, "hide per-heal log lines")
	flag.Parse()

	log.SetFlags(0)
	if *quiet {
		log.SetOutput(io.Discard)
	}

	specs, err := entity.LoadSpecs()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	s, err := sim.New(specs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	s.World.SetDeltaTime(*dt)

	start := s.PlayerHealth().Current
	var links, releases int
	for f := 0; f < *frames; f++ {
		s.Press(f == *pressAt, f == *cancelAt)
		for _, evt := range s.Step() {
			de, ok := evt.Data.(ecs.DrainEvent)
			if evt.Type != system.DrainEventType || !ok {
				continue
			}
			switch de.Kind {
			case ecs.DrainEventLinked:
				links++
			case ecs.DrainEventReleased:
				releases++
			}
		}
	}

	h := s.PlayerHealth()
	fmt.Printf("frames:   %d (%.2fs)\n", *frames, float64(*frames)**dt)
	fmt.Printf("health:   %.2f -> %.2f / %.2f\n", start, h.Current, h.Max)
	fmt.Printf("links:    %d created, %d released\n", links, releases)
	fmt.Printf("kills:    %d of %d\n", s.Kills(), len(s.Arena.Enemies))
	if d := s.Drain(); d != nil {
		fmt.Printf("drain:    %s, elapsed %.2fs\n", d.State(), d.Elapsed())
	}
}
