package component

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestHealthHeal(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		amount  float64
		want    float64
	}{
		{name: "partial", current: 50, amount: 2.5, want: 52.5},
		{name: "clamps at max", current: 80, amount: 30, want: 100},
		{name: "negative clamps at zero", current: 10, amount: -25, want: 0},
		{name: "zero", current: 40, amount: 0, want: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealth(100)
			h.Current = tt.current
			if got := h.Heal(tt.amount); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			if h.Current != tt.want {
				t.Fatalf("expected stored health %v, got %v", tt.want, h.Current)
			}
		})
	}
}

func TestHealthHealLogs(t *testing.T) {
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})

	h := NewHealth(100)
	h.Current = 50
	h.Heal(2.5)

	if got := strings.TrimSpace(buf.String()); got != "drain: healed 2.50, current health 52.50/100.00" {
		t.Fatalf("unexpected log line %q", got)
	}
}

func TestHealthTakeDamage(t *testing.T) {
	h := NewHealth(10)

	h.TakeDamage(-5)
	if h.Current != 10 {
		t.Fatalf("negative damage changed health to %v", h.Current)
	}

	h.TakeDamage(4)
	if h.Current != 6 || !h.IsAlive() {
		t.Fatalf("expected 6 and alive, got %v dead=%v", h.Current, h.Dead)
	}

	h.TakeDamage(100)
	if h.Current != 0 || !h.Dead || h.IsAlive() {
		t.Fatalf("expected dead at 0, got %v dead=%v", h.Current, h.Dead)
	}
}

func TestNewHealth(t *testing.T) {
	if h := NewHealth(0); h.Max != 1 || h.Current != 1 {
		t.Fatalf("expected non-positive max to become 1, got %+v", h)
	}
	if h := NewHealth(40); h.Fraction() != 1 {
		t.Fatalf("expected full health, got %v", h.Fraction())
	}
}

func TestParticleEmitterAccumulate(t *testing.T) {
	p := &ParticleEmitter{Rate: 3}
	if n := p.Accumulate(1); n != 0 {
		t.Fatalf("stopped emitter produced %d", n)
	}

	p.Playing = true
	if n := p.Accumulate(0.5); n != 1 {
		t.Fatalf("expected 1 particle, got %d", n)
	}
	if n := p.Accumulate(0.5); n != 2 {
		t.Fatalf("expected carried remainder to give 2, got %d", n)
	}

	p.Accumulate(0.25)
	p.Reset()
	if n := p.Accumulate(0.25); n != 0 {
		t.Fatalf("expected reset budget, got %d", n)
	}
}
