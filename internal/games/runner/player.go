package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Player is the avatar's motion model: lane, lateral easing, jump arc and crouch.
// Its pose (position and scale) is derived from this state on demand.
type Player struct {
	cfg    config.PlayerConfig
	lanes  []float64
	refFPS float64

	lane      int
	x         float64 // lateral position, eases toward lanes[lane]
	jumping   bool
	height    float64 // height above ground while jumping
	jumpDir   float64 // +1 ascending, -1 descending
	crouching bool
}

// NewPlayer creates a player standing in the configured start lane.
func NewPlayer(cfg config.RunnerConfig) *Player {
	p := &Player{
		cfg:    cfg.Player,
		lanes:  cfg.Lanes,
		refFPS: cfg.Timing.ReferenceFPS,
	}
	p.Reset()
	return p
}

// Reset puts the player back on the ground in the start lane.
func (p *Player) Reset() {
	p.lane = p.cfg.StartLane
	p.x = p.lanes[p.lane]
	p.jumping = false
	p.height = 0
	p.jumpDir = 1
	p.crouching = false
}

// SetLaneIntent moves one lane left (dir < 0) or right (dir > 0), clamped to
// the outer lanes. Lane changes are allowed mid-jump.
func (p *Player) SetLaneIntent(dir int) {
	switch {
	case dir < 0:
		p.lane = core.Clamp(p.lane-1, 0, len(p.lanes)-1)
	case dir > 0:
		p.lane = core.Clamp(p.lane+1, 0, len(p.lanes)-1)
	}
}

// BeginJump starts a jump from the ground. It is a no-op while airborne and
// cancels any crouch. Returns whether a jump started.
func (p *Player) BeginJump() bool {
	if p.jumping {
		return false
	}
	p.jumping = true
	p.height = 0
	p.jumpDir = 1
	p.crouching = false
	return true
}

// SetCrouch sets the crouch flag. Ignored while airborne.
func (p *Player) SetCrouch(active bool) {
	if p.jumping {
		return
	}
	p.crouching = active
}

// Tick advances lateral easing and the jump arc by dt seconds.
func (p *Player) Tick(dt float64) {
	frames := dt * p.refFPS

	// Exponential approach: close a fixed fraction of the remaining gap per frame.
	blend := math.Min(1, p.cfg.LaneEase*frames)
	p.x += (p.lanes[p.lane] - p.x) * blend

	if !p.jumping {
		return
	}

	p.height += p.cfg.JumpSpeed * p.jumpDir * frames
	if p.jumpDir > 0 && p.height >= p.cfg.JumpHeight {
		p.height = p.cfg.JumpHeight
		p.jumpDir = -1
	}
	if p.jumpDir < 0 && p.height <= 0 {
		p.height = 0
		p.jumping = false
		p.jumpDir = 1
	}
}

// Lane returns the target lane index.
func (p *Player) Lane() int {
	return p.lane
}

// X returns the current (eased) lateral position.
func (p *Player) X() float64 {
	return p.x
}

// JumpHeight returns the current height above ground; 0 when grounded.
func (p *Player) JumpHeight() float64 {
	return p.height
}

// Jumping reports whether a jump is in progress.
func (p *Player) Jumping() bool {
	return p.jumping
}

// Ascending reports whether the jump is still rising.
func (p *Player) Ascending() bool {
	return p.jumping && p.jumpDir > 0
}

// Crouching reports whether the player is crouched.
func (p *Player) Crouching() bool {
	return p.crouching
}

// Scale returns the render scale; crouching compresses the vertical axis.
func (p *Player) Scale() core.Vec3 {
	if p.crouching && !p.jumping {
		return core.Vec3{X: 1, Y: p.cfg.CrouchScale, Z: 1}
	}
	return core.Vec3{X: 1, Y: 1, Z: 1}
}

// Size returns the unscaled player dimensions.
func (p *Player) Size() core.Vec3 {
	return core.Vec3{X: p.cfg.Width, Y: p.cfg.Height, Z: p.cfg.Depth}
}

// Position returns the center of the player's box. The player always stands at z=0.
func (p *Player) Position() core.Vec3 {
	y := p.cfg.Height/2 + p.height
	if p.crouching && !p.jumping {
		y = p.cfg.Height * p.cfg.CrouchScale / 2
	}
	return core.Vec3{X: p.x, Y: y, Z: 0}
}

// Box returns the player's current bounding box, including crouch compression.
func (p *Player) Box() core.Box {
	return core.BoxFromCenter(p.Position(), p.Size().Mul(p.Scale()))
}
