package ability

type fakeTarget struct {
	id     TargetID
	pos    Vec3
	dead   bool
	damage float64
}

func (t *fakeTarget) ID() TargetID { return t.id }
func (t *fakeTarget) Valid() bool { return !t.dead }
func (t *fakeTarget) Position() Vec3 { return t.pos }
func (t *fakeTarget) TakeDamage(amount float64) { t.damage += amount }

type fakeSpace struct {
	targets []*fakeTarget
	queries int
}

func (s *fakeSpace) FindInRadius(center Vec3, radius float64, _ Filter) []Target {
	s.queries++
	var out []Target
	for _, t := range s.targets {
		if !t.dead && t.pos.Dist(center) <= radius {
			out = append(out, t)
		}
	}
	return out
}

func (s *fakeSpace) InRadius(center Vec3, radius float64, _ Filter, t Target) bool {
	return t.Position().Dist(center) <= radius
}

type fakeLink struct {
	a, b      Vec3
	destroyed int
}

func (l *fakeLink) SetEndpoints(a, b Vec3) { l.a, l.b = a, b }

type fakeLinks struct {
	created []*fakeLink
}

func (f *fakeLinks) Create() Link {
	l := &fakeLink{}
	f.created = append(f.created, l)
	return l
}

func (f *fakeLinks) Destroy(l Link) {
	l.(*fakeLink).destroyed++
}

func (f *fakeLinks) live() int {
	n := 0
	for _, l := range f.created {
		if l.destroyed == 0 {
			n++
		}
	}
	return n
}

type fakeEffect struct {
	plays, stops int
}

func (e *fakeEffect) Play() { e.plays++ }
func (e *fakeEffect) Stop() { e.stops++ }

type fakePlayer struct {
	pos     Vec3
	current float64
	max     float64
}

func (p *fakePlayer) Position() Vec3 { return p.pos }

func (p *fakePlayer) Heal(amount float64) float64 {
	p.current = min(max(p.current+amount, 0), p.max)
	return p.current
}
