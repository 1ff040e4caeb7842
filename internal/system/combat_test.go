package system

import (
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/event"
	"go-space-arcade/internal/types"
	"math"
	"testing"
)

func TestFindTarget(t *testing.T) {
	t.Run("range is strict", func(t *testing.T) {
		f := newDefenseFixture(t)
		tower := f.tower(0, 0, 10, 100, defs.Behavior{Kind: defs.BehaviorBolt})
		f.alien(100, 0, 50)
		if got := f.combat.FindTarget(tower); got != types.None {
			t.Errorf("alien exactly at range must not be targeted, got %d", got)
		}
	})

	t.Run("nearest wins", func(t *testing.T) {
		f := newDefenseFixture(t)
		tower := f.tower(0, 0, 10, 100, defs.Behavior{Kind: defs.BehaviorBolt})
		f.alien(80, 0, 50)
		near, _ := f.alien(0, 30, 50)
		if got := f.combat.FindTarget(tower); got != near {
			t.Errorf("expected nearest alien %d, got %d", near, got)
		}
	})

	t.Run("tie goes to first encountered", func(t *testing.T) {
		f := newDefenseFixture(t)
		tower := f.tower(0, 0, 10, 100, defs.Behavior{Kind: defs.BehaviorBolt})
		first, _ := f.alien(40, 0, 50)
		f.alien(-40, 0, 50)
		if got := f.combat.FindTarget(tower); got != first {
			t.Errorf("expected first alien %d, got %d", first, got)
		}
	})

	t.Run("dead aliens are ignored", func(t *testing.T) {
		f := newDefenseFixture(t)
		tower := f.tower(0, 0, 10, 100, defs.Behavior{Kind: defs.BehaviorBolt})
		f.alien(10, 0, 0)
		alive, _ := f.alien(60, 0, 50)
		if got := f.combat.FindTarget(tower); got != alive {
			t.Errorf("expected live alien %d, got %d", alive, got)
		}
	})
}

func TestFireInterval(t *testing.T) {
	f := newDefenseFixture(t)
	f.tower(0, 0, 10, 100, defs.Behavior{Kind: defs.BehaviorBolt})
	f.alien(50, 0, 1000)

	steps := []struct {
		tick        int
		projectiles int
	}{
		{5, 0},
		{10, 1},
		{15, 1},
		{19, 1},
		{20, 2},
	}
	for _, s := range steps {
		f.combat.Update(s.tick)
		if got := f.world.Projectiles.Len(); got != s.projectiles {
			t.Fatalf("tick %d: expected %d projectiles, got %d", s.tick, s.projectiles, got)
		}
	}
	if got := f.count(event.TowerFired); got != 2 {
		t.Errorf("expected 2 TowerFired events, got %d", got)
	}
}

func TestContinuousBeamIsInstant(t *testing.T) {
	f := newDefenseFixture(t)
	tower := f.tower(0, 0, 4, 200, defs.Behavior{Kind: defs.BehaviorContinuous})
	_, a := f.alien(100, 0, 50)

	f.combat.Update(10)

	if a.Health != 46 {
		t.Errorf("expected health 46 after beam, got %v", a.Health)
	}
	if f.world.Projectiles.Len() != 0 {
		t.Error("continuous attack must not launch projectiles")
	}
	lasers := 0
	f.world.Particles.Each(func(_ types.EntityID, p *component.Particle) bool {
		if p.Kind == component.ParticleLaser {
			lasers++
		}
		return true
	})
	if lasers != 1 {
		t.Errorf("expected one laser particle, got %d", lasers)
	}
	if tower.Angle != 0 {
		t.Errorf("tower should face the target, angle %v", tower.Angle)
	}
}

func TestChainLightning(t *testing.T) {
	tests := []struct {
		name       string
		chainCount int
		want       [3]float64
	}{
		{"two links stop before the third alien", 2, [3]float64{75, 82.5, 100}},
		{"three links reach every alien", 3, [3]float64{75, 82.5, 82.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDefenseFixture(t)
			f.tower(0, 0, 25, 110, defs.Behavior{Kind: defs.BehaviorChain, ChainCount: tt.chainCount, ChainRange: 80})
			_, a := f.alien(50, 0, 100)
			_, b := f.alien(80, 0, 100)
			_, c := f.alien(110, 0, 100)

			f.combat.Update(10)

			got := [3]float64{a.Health, b.Health, c.Health}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-9 {
					t.Errorf("alien %d: expected health %v, got %v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestChainJumpsFromPreviousLink(t *testing.T) {
	f := newDefenseFixture(t)
	f.tower(0, 0, 10, 100, defs.Behavior{Kind: defs.BehaviorChain, ChainCount: 2, ChainRange: 50})
	_, primary := f.alien(60, 0, 100)
	// ближе к башне, но дальше ChainRange от основной цели
	_, far := f.alien(0, 90, 100)

	f.combat.Update(10)

	if primary.Health != 90 {
		t.Errorf("primary: expected 90, got %v", primary.Health)
	}
	if far.Health != 100 {
		t.Errorf("alien out of chain range must not be hit, got %v", far.Health)
	}
}

func TestProjectileLaunchPerBehavior(t *testing.T) {
	tests := []struct {
		kind  defs.BehaviorKind
		speed float64
	}{
		{defs.BehaviorBolt, 10},
		{defs.BehaviorSlow, 10},
		{defs.BehaviorExplosive, 6},
		{defs.BehaviorPierce, 15},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			f := newDefenseFixture(t)
			f.tower(0, 0, 10, 100, defs.Behavior{Kind: tt.kind, AOE: 60, PierceCount: 3, SlowFactor: 0.5})
			f.alien(0, 50, 100)

			f.combat.Update(10)

			projs := f.world.Projectiles.Values()
			if len(projs) != 1 {
				t.Fatalf("expected one projectile, got %d", len(projs))
			}
			p := projs[0]
			if math.Abs(p.VX) > 1e-9 || math.Abs(p.VY-tt.speed) > 1e-9 {
				t.Errorf("expected velocity (0, %v), got (%v, %v)", tt.speed, p.VX, p.VY)
			}
			if p.Attack.Kind != tt.kind {
				t.Errorf("projectile carries %s, want %s", p.Attack.Kind, tt.kind)
			}
		})
	}
}
