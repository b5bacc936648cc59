package enemy

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/milk9111/wastesorter/combat"
	"github.com/milk9111/wastesorter/common"
	"github.com/milk9111/wastesorter/kinematics"
	"github.com/milk9111/wastesorter/score"
	"github.com/milk9111/wastesorter/timer"
)

type fakeHost struct {
	launched  []*combat.Projectile
	flashes   []bool
	flashOn   bool
	destroyed int
}

func (h *fakeHost) Launch(_ *Behavior, p *combat.Projectile) { h.launched = append(h.launched, p) }
func (h *fakeHost) Flash(_ *Behavior, on bool) {
	h.flashOn = on
	h.flashes = append(h.flashes, on)
}
func (h *fakeHost) Destroyed(_ *Behavior) { h.destroyed++ }

type rig struct {
	sched *timer.Scheduler
	acc   *score.Accumulator
	host  *fakeHost
	enemy *Behavior
}

func newRig(c combat.Category, pos common.Vec) *rig {
	sched := timer.NewScheduler()
	acc := score.New(score.DefaultRules(), sched.Now)
	host := &fakeHost{}
	deps := Deps{
		Scheduler: sched,
		Resolver:  combat.NewResolver(acc, nil),
		Host:      host,
		Rand:      rand.New(rand.NewSource(42)),
	}
	return &rig{sched: sched, acc: acc, host: host, enemy: New(c, pos, DefaultConfig(), deps)}
}

// run advances the clock in frame-sized steps, updating the enemy after
// each step like the host loop does.
func (r *rig) run(d time.Duration) {
	const frame = time.Second / 60
	for d > 0 {
		step := frame
		if d < step {
			step = d
		}
		r.sched.Advance(step)
		r.enemy.Update()
		d -= step
	}
}

func shot(c combat.Category, powered bool) *combat.Projectile {
	return &combat.Projectile{Tag: c.ShotTag(), Powered: powered, FromPlayer: true}
}

func TestGlassVolleyUsesDistinctPoints(t *testing.T) {
	r := newRig(combat.Glass, common.V(0, 0))
	r.enemy.PlayerDetected(common.V(-3, 0))

	if len(r.host.launched) != 4 {
		t.Fatalf("expected 4 shards, got %d", len(r.host.launched))
	}
	seen := make(map[common.Vec]bool)
	for _, p := range r.host.launched {
		if seen[p.Pos] {
			t.Fatalf("launch point %v used twice", p.Pos)
		}
		seen[p.Pos] = true
		if p.Tag != combat.TagEnemyBullet {
			t.Fatalf("enemy shots must be tagged %s, got %s", combat.TagEnemyBullet, p.Tag)
		}
	}
	if r.enemy.FireReady() || r.enemy.State() != Cooldown {
		t.Fatalf("expected cooldown after volley, state=%v", r.enemy.State())
	}

	r.sched.Advance(1500 * time.Millisecond)
	if len(r.host.launched) != 8 {
		t.Fatalf("expected second volley at 1.5s, got %d shards", len(r.host.launched))
	}
}

func TestGlassScenarioTwoHits(t *testing.T) {
	r := newRig(combat.Glass, common.V(0, 0))

	if o := r.enemy.Hit(shot(combat.Glass, false)); o != combat.OutcomeWounded {
		t.Fatalf("first hit: %v", o)
	}
	if r.enemy.Health() != 1 || r.enemy.Destroyed() || r.acc.Score() != 100 {
		t.Fatalf("health=%d destroyed=%v score=%d", r.enemy.Health(), r.enemy.Destroyed(), r.acc.Score())
	}
	if o := r.enemy.Hit(shot(combat.Glass, false)); o != combat.OutcomeKilled {
		t.Fatalf("second hit: %v", o)
	}
	if r.enemy.Health() != 0 || !r.enemy.Destroyed() || r.acc.Score() != 250 {
		t.Fatalf("health=%d destroyed=%v score=%d", r.enemy.Health(), r.enemy.Destroyed(), r.acc.Score())
	}
	if r.enemy.Hit(shot(combat.Glass, false)) != combat.OutcomeIgnored || r.host.destroyed != 1 {
		t.Fatalf("destruction must happen exactly once, got %d", r.host.destroyed)
	}
}

func TestPoweredHitKillsAtFullHealth(t *testing.T) {
	for _, c := range combat.Categories {
		t.Run(c.String(), func(t *testing.T) {
			r := newRig(c, common.V(0, 0))
			r.enemy.PlayerDetected(common.V(8, 0))

			if o := r.enemy.Hit(shot(c, true)); o != combat.OutcomeKilled {
				t.Fatalf("expected kill, got %v", o)
			}
			if r.acc.Score() != 150 || r.acc.Hits(c) != 1 {
				t.Fatalf("score=%d hits=%d", r.acc.Score(), r.acc.Hits(c))
			}
			if r.enemy.ActiveCycles() != 0 || r.sched.Len() != 0 {
				t.Fatalf("destroyed enemy left %d cycles and %d tasks", r.enemy.ActiveCycles(), r.sched.Len())
			}
			fired := len(r.host.launched)
			r.run(5 * time.Second)
			if len(r.host.launched) != fired {
				t.Fatalf("destroyed enemy kept firing")
			}
		})
	}
}

func TestMismatchLeavesHealth(t *testing.T) {
	r := newRig(combat.Organic, common.V(0, 0))
	if o := r.enemy.Hit(shot(combat.Glass, true)); o != combat.OutcomeMismatched {
		t.Fatalf("expected mismatch, got %v", o)
	}
	if r.enemy.Health() != 2 || r.acc.Score() != -50 || r.acc.Attempts(combat.Organic) != 1 {
		t.Fatalf("health=%d score=%d attempts=%d", r.enemy.Health(), r.acc.Score(), r.acc.Attempts(combat.Organic))
	}
	if len(r.host.flashes) != 0 {
		t.Fatalf("mismatch should not flash")
	}

	bullet := &combat.Projectile{Tag: combat.TagEnemyBullet}
	if o := r.enemy.Hit(bullet); o != combat.OutcomeIgnored || r.acc.Score() != -50 {
		t.Fatalf("enemy bullets should pass through, got %v", o)
	}
}

func TestDamageFlashLastsHalfSecond(t *testing.T) {
	r := newRig(combat.PaperCardboard, common.V(0, 0))
	r.enemy.Hit(shot(combat.PaperCardboard, false))
	if !r.host.flashOn {
		t.Fatalf("flash should start on a wounding hit")
	}
	r.sched.Advance(499 * time.Millisecond)
	if !r.host.flashOn {
		t.Fatalf("flash ended early")
	}
	r.sched.Advance(time.Millisecond)
	if r.host.flashOn {
		t.Fatalf("flash should end at 0.5s")
	}
}

func TestPausedSchedulerFreezesCycle(t *testing.T) {
	r := newRig(combat.PlasticBrickCan, common.V(0, 0))
	r.enemy.PlayerDetected(common.V(10, 0))
	r.sched.Pause()
	r.run(10 * time.Second)
	if len(r.host.launched) != 1 {
		t.Fatalf("paused enemy fired %d shots", len(r.host.launched))
	}
	r.sched.Resume()
	r.run(1250 * time.Millisecond)
	if len(r.host.launched) != 2 {
		t.Fatalf("expected second shot after resume, got %d", len(r.host.launched))
	}
}

func TestFacingFollowsPlayer(t *testing.T) {
	for _, c := range combat.Categories {
		t.Run(c.String(), func(t *testing.T) {
			r := newRig(c, common.V(0, 0))
			if r.enemy.FacingRight() {
				t.Fatalf("enemies start facing left")
			}
			r.enemy.PlayerMoved(common.V(30, 0))
			if !r.enemy.FacingRight() {
				t.Fatalf("expected to face right")
			}
			r.enemy.PlayerMoved(common.V(-30, 0))
			if r.enemy.FacingRight() {
				t.Fatalf("expected to face left")
			}
		})
	}
}

func TestOrganicBurstTiming(t *testing.T) {
	r := newRig(combat.Organic, common.V(0, 0))
	r.enemy.PlayerDetected(common.V(-5, 0))

	steps := []struct {
		advance time.Duration
		want    int
	}{
		{0, 1},
		{750 * time.Millisecond, 2},
		{750 * time.Millisecond, 3},
		{1400 * time.Millisecond, 3},
		{100 * time.Millisecond, 4}, // cooldown and rest both end at 3.0s
	}
	for i, s := range steps {
		r.sched.Advance(s.advance)
		if len(r.host.launched) != s.want {
			t.Fatalf("step %d at %v: expected %d shots, got %d", i, r.sched.Now(), s.want, len(r.host.launched))
		}
	}

	first := r.host.launched[0].Motion.(*kinematics.Linear)
	if first.Velocity.X != -10 || first.Velocity.Y != 0 {
		t.Fatalf("left-facing shot velocity %v", first.Velocity)
	}
	if r.host.launched[0].TTL != 1750*time.Millisecond {
		t.Fatalf("organic TTL %v", r.host.launched[0].TTL)
	}
}

func TestOrganicLostFinishesBurst(t *testing.T) {
	r := newRig(combat.Organic, common.V(0, 0))
	r.enemy.PlayerDetected(common.V(-5, 0))
	r.sched.Advance(100 * time.Millisecond)
	r.enemy.PlayerLost()

	if r.enemy.ActiveCycles() != 1 {
		t.Fatalf("cycle should still be scheduled after losing the player")
	}
	r.sched.Advance(1400 * time.Millisecond)
	if len(r.host.launched) != 3 {
		t.Fatalf("burst should complete, got %d shots", len(r.host.launched))
	}
	r.sched.Advance(1500 * time.Millisecond)
	if r.enemy.ActiveCycles() != 0 {
		t.Fatalf("cooldown should halt the loop")
	}
	r.run(6 * time.Second)
	if len(r.host.launched) != 3 {
		t.Fatalf("no shots after the loop halted, got %d", len(r.host.launched))
	}
}

func TestGlassRedetectBeforeCooldownKeepsOldCycle(t *testing.T) {
	r := newRig(combat.Glass, common.V(0, 0))
	r.enemy.PlayerDetected(common.V(-3, 0))
	r.sched.Advance(500 * time.Millisecond)
	r.enemy.PlayerLost()
	r.sched.Advance(500 * time.Millisecond)
	r.enemy.PlayerDetected(common.V(-3, 0))

	if r.enemy.ActiveCycles() != 2 {
		t.Fatalf("expected the lazily stopped cycle to survive, got %d cycles", r.enemy.ActiveCycles())
	}
	r.sched.Advance(500 * time.Millisecond)
	if len(r.host.launched) != 8 {
		t.Fatalf("old cycle should fire at 1.5s, got %d shards", len(r.host.launched))
	}
}

func TestEagerStopVariants(t *testing.T) {
	for _, c := range []combat.Category{combat.PaperCardboard, combat.PlasticBrickCan} {
		t.Run(c.String(), func(t *testing.T) {
			r := newRig(c, common.V(0, 0))
			r.enemy.PlayerDetected(common.V(-10, 0))
			if len(r.host.launched) != 1 {
				t.Fatalf("expected an immediate shot, got %d", len(r.host.launched))
			}
			r.sched.Advance(100 * time.Millisecond)
			r.enemy.PlayerLost()
			if r.enemy.ActiveCycles() != 0 {
				t.Fatalf("losing the player should cancel the cycle at once")
			}
			r.run(5 * time.Second)
			if len(r.host.launched) != 1 {
				t.Fatalf("expected no more shots, got %d", len(r.host.launched))
			}
		})
	}
}

func TestPlasticCooldownIgnoresAttacking(t *testing.T) {
	r := newRig(combat.PlasticBrickCan, common.V(0, 0))
	r.enemy.PlayerDetected(common.V(10, 0))
	r.sched.Advance(100 * time.Millisecond)
	r.enemy.PlayerLost()
	r.sched.Advance(400 * time.Millisecond)
	r.enemy.PlayerDetected(common.V(10, 0))

	if len(r.host.launched) != 1 {
		t.Fatalf("still cooling down, got %d shots", len(r.host.launched))
	}
	// cooldown ends at 1.25s; the new cycle checks again at 0.5+1.25s.
	r.sched.Advance(1200 * time.Millisecond)
	if len(r.host.launched) != 1 {
		t.Fatalf("fired before the cycle came round, got %d", len(r.host.launched))
	}
	r.sched.Advance(50 * time.Millisecond)
	if len(r.host.launched) != 2 {
		t.Fatalf("expected second shot at 1.75s, got %d", len(r.host.launched))
	}
}

func TestPlasticArcCapturesTargetAtLaunch(t *testing.T) {
	cases := []struct {
		name      string
		player    common.Vec
		wantSpeed float64
	}{
		{"short_lob", common.V(4, 0), 8.5},
		{"long_lob", common.V(10, 0), 12.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRig(combat.PlasticBrickCan, common.V(0, 0))
			r.enemy.PlayerDetected(c.player)
			r.enemy.PlayerMoved(c.player.Add(common.V(3, 2)))

			arc, ok := r.host.launched[0].Motion.(*kinematics.Arc)
			if !ok {
				t.Fatalf("expected an arc motion, got %T", r.host.launched[0].Motion)
			}
			if arc.Target != c.player {
				t.Fatalf("arc target moved to %v", arc.Target)
			}
			if arc.Speed != c.wantSpeed {
				t.Fatalf("expected speed %v, got %v", c.wantSpeed, arc.Speed)
			}
			if r.host.launched[0].TTL != 3*time.Second {
				t.Fatalf("arc TTL %v", r.host.launched[0].TTL)
			}
		})
	}
}

func TestPaperAimedShotIsNormalized(t *testing.T) {
	r := newRig(combat.PaperCardboard, common.V(0, 0))
	r.enemy.PlayerDetected(common.V(-8, 6))

	lin := r.host.launched[0].Motion.(*kinematics.Linear)
	if got := lin.Velocity.Len(); math.Abs(got-DefaultConfig().Paper.Speed) > 1e-9 {
		t.Fatalf("expected speed %v, got %v", DefaultConfig().Paper.Speed, got)
	}
	if lin.Velocity.X >= 0 || lin.Velocity.Y <= 0 {
		t.Fatalf("shot should head up and left, got %v", lin.Velocity)
	}
}

func TestPaperSlide(t *testing.T) {
	r := newRig(combat.PaperCardboard, common.V(0, 0))
	r.enemy.PlayerMoved(common.V(3, 0))
	if !r.enemy.Sliding() {
		t.Fatalf("player within range should start a slide")
	}

	r.enemy.PlayerDetected(common.V(3, 0))
	if len(r.host.launched) != 0 {
		t.Fatalf("no firing while sliding")
	}

	r.sched.Advance(750 * time.Millisecond)
	r.enemy.Update()
	if math.Abs(r.enemy.Pos.X-12.5) > 1e-9 {
		t.Fatalf("halfway through the slide expected x=12.5, got %v", r.enemy.Pos.X)
	}
	r.sched.Advance(750 * time.Millisecond)
	r.enemy.Update()
	if r.enemy.Pos.X != 25 || r.enemy.Sliding() {
		t.Fatalf("slide should end at x=25, got %v sliding=%v", r.enemy.Pos.X, r.enemy.Sliding())
	}

	r.sched.Advance(150 * time.Millisecond)
	if len(r.host.launched) != 1 {
		t.Fatalf("expected a shot once the slide ended, got %d", len(r.host.launched))
	}
}

func TestPaperIgnoresFarPlayer(t *testing.T) {
	r := newRig(combat.PaperCardboard, common.V(0, 0))
	r.enemy.PlayerMoved(common.V(-5.5, 0))
	if r.enemy.Sliding() {
		t.Fatalf("player out of range should not trigger a slide")
	}
}
