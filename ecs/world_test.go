package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/lifedrain/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex < 0 {
				return
			}
			if !DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("DestroyEntity should return true for alive entity")
			}
			if IsAlive(w, ents[c.destroyIndex]) {
				t.Fatalf("entity should not be alive after destruction")
			}
			if DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("second DestroyEntity should return false")
			}
			if len(Entities(w)) != c.create-1 {
				t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
			}
		})
	}
}

func TestRecycledSlotGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add: %v", err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatal("recycled entity must not equal the stale handle")
	}
	if IsAlive(w, old) {
		t.Fatal("stale handle reported alive")
	}
	if Has(w, fresh, h.Kind()) {
		t.Fatal("recycled entity inherited a component")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
}

func TestComponents(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()
	e := CreateEntity(w)

	tests := []struct {
		name  string
		check func(t *testing.T)
	}{
		{
			name: "add_and_get",
			check: func(t *testing.T) {
				if err := Add(w, e, ints.Kind(), intPtr(7)); err != nil {
					t.Fatalf("add: %v", err)
				}
				v, ok := Get(w, e, ints.Kind())
				if !ok || *v != 7 {
					t.Fatalf("expected 7, got %v %v", v, ok)
				}
			},
		},
		{
			name: "get_returns_live_pointer",
			check: func(t *testing.T) {
				v, _ := Get(w, e, ints.Kind())
				*v = 9
				again, _ := Get(w, e, ints.Kind())
				if *again != 9 {
					t.Fatalf("expected in-place update to stick, got %d", *again)
				}
			},
		},
		{
			name: "missing_component",
			check: func(t *testing.T) {
				if _, ok := Get(w, e, strs.Kind()); ok {
					t.Fatal("unexpected string component")
				}
			},
		},
		{
			name: "nil_value",
			check: func(t *testing.T) {
				if err := Add[string](w, e, strs.Kind(), nil); !errors.Is(err, component.ErrNilComponent) {
					t.Fatalf("expected ErrNilComponent, got %v", err)
				}
			},
		},
		{
			name: "invalid_kind",
			check: func(t *testing.T) {
				var zero component.ComponentKind[int]
				if err := Add(w, e, zero, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
					t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
				}
			},
		},
		{
			name: "remove",
			check: func(t *testing.T) {
				if !Remove(w, e, ints.Kind()) {
					t.Fatal("expected remove to report true")
				}
				if Remove(w, e, ints.Kind()) {
					t.Fatal("expected second remove to report false")
				}
				if Has(w, e, ints.Kind()) {
					t.Fatal("component still present")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.check)
	}
}

func TestForEachSkipsEntitiesDestroyedMidIteration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	var ents []Entity
	for i := 0; i < 4; i++ {
		e := CreateEntity(w)
		_ = Add(w, e, h.Kind(), intPtr(i))
		ents = append(ents, e)
	}

	visited := 0
	ForEach(w, h.Kind(), func(e Entity, v *int) {
		visited++
		if *v == 0 {
			for _, other := range ents[1:] {
				DestroyEntity(w, other)
			}
		}
	})
	if visited != 1 {
		t.Fatalf("expected destroyed entities to be skipped, visited %d", visited)
	}
}

func TestForEachN(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponent[int]().Kind()
	kb := component.NewComponent[int]().Kind()
	kc := component.NewComponent[int]().Kind()
	kd := component.NewComponent[int]().Kind()

	all := CreateEntity(w)
	three := CreateEntity(w)
	two := CreateEntity(w)
	for _, e := range []Entity{all, three, two} {
		_ = Add(w, e, ka, intPtr(1))
		_ = Add(w, e, kb, intPtr(2))
	}
	_ = Add(w, all, kc, intPtr(3))
	_ = Add(w, three, kc, intPtr(3))
	_ = Add(w, all, kd, intPtr(4))

	tests := []struct {
		name string
		run  func() []Entity
		want []Entity
	}{
		{
			name: "two",
			run: func() (res []Entity) {
				ForEach2(w, ka, kb, func(e Entity, _ *int, _ *int) { res = append(res, e) })
				return res
			},
			want: []Entity{all, three, two},
		},
		{
			name: "three",
			run: func() (res []Entity) {
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				return res
			},
			want: []Entity{all, three},
		},
		{
			name: "four",
			run: func() (res []Entity) {
				ForEach4(w, ka, kb, kc, kd, func(e Entity, a *int, b *int, c *int, d *int) {
					if *a+*b+*c+*d != 10 {
						t.Fatalf("unexpected values %d %d %d %d", *a, *b, *c, *d)
					}
					res = append(res, e)
				})
				return res
			},
			want: []Entity{all},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.run()
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			seen := make(map[Entity]bool, len(got))
			for _, e := range got {
				seen[e] = true
			}
			for _, e := range tt.want {
				if !seen[e] {
					t.Fatalf("expected %s in %v", e, got)
				}
			}
		})
	}
}

func TestFirst(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	if _, ok := First(w, h.Kind()); ok {
		t.Fatal("expected no entity")
	}
	e := CreateEntity(w)
	_ = Add(w, e, h.Kind(), intPtr(1))
	if got, ok := First(w, h.Kind()); !ok || got != e {
		t.Fatalf("expected %s, got %s %v", e, got, ok)
	}
}

type recordingSystem struct {
	name  string
	order *[]string
}

func (s recordingSystem) Update(w *World) {
	*s.order = append(*s.order, s.name)
	w.Events().Push(Event{Type: s.name})
}

func TestSchedulerRunsInOrderAndFlushesEvents(t *testing.T) {
	w := NewWorld()
	var order []string
	s := NewScheduler(recordingSystem{"a", &order}, nil, recordingSystem{"b", &order})

	s.Update(w)
	s.Update(w)

	if len(order) != 4 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("unexpected order %v", order)
	}
	if w.Frame() != 2 {
		t.Fatalf("expected frame 2, got %d", w.Frame())
	}

	events := w.Events().Drain()
	if len(events) != 2 {
		t.Fatalf("expected only the last frame's 2 events, got %d", len(events))
	}
	if w.Events().Len() != 0 {
		t.Fatal("expected queue empty after Drain")
	}
}

func TestDeltaTime(t *testing.T) {
	w := NewWorld()
	if w.DeltaTime() != DefaultDeltaTime {
		t.Fatalf("expected default step, got %v", w.DeltaTime())
	}
	w.SetDeltaTime(-1)
	if w.DeltaTime() != DefaultDeltaTime {
		t.Fatal("non-positive step should be ignored")
	}
	w.SetDeltaTime(0.25)
	if w.DeltaTime() != 0.25 {
		t.Fatalf("expected 0.25, got %v", w.DeltaTime())
	}
}
