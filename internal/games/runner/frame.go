package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// PlayerPose is the player's renderable state.
type PlayerPose struct {
	Position  core.Vec3 // center of the box
	Size      core.Vec3 // unscaled dimensions
	Scale     core.Vec3
	Lane      int
	Jumping   bool
	Crouching bool
}

// Box returns the scaled bounding box of the pose.
func (p PlayerPose) Box() core.Box {
	return core.BoxFromCenter(p.Position, p.Size.Mul(p.Scale))
}

// ObstaclePose is one obstacle's renderable state.
type ObstaclePose struct {
	ID       uint64
	Lane     int
	Class    HeightClass
	Position core.Vec3
	Size     core.Vec3
}

// Box returns the obstacle's bounding box.
func (o ObstaclePose) Box() core.Box {
	return core.BoxFromCenter(o.Position, o.Size)
}

// Frame is a read-only snapshot of the simulation for rendering and bots.
type Frame struct {
	Session       Session
	Score         float64
	Difficulty    config.Difficulty
	Speed         float64 // units per reference frame
	SpawnInterval float64 // seconds
	Lanes         []float64
	Player        PlayerPose
	Obstacles     []ObstaclePose // in spawn order
	Stats         RunStats
}

// Frame captures the current state. The returned value shares nothing
// with the simulation.
func (s *Simulation) Frame() Frame {
	p := s.player
	f := Frame{
		Session:       s.session,
		Score:         s.scorer.Score(),
		Difficulty:    s.difficulty.Level(),
		Speed:         s.scorer.Speed(),
		SpawnInterval: s.scorer.SpawnInterval(),
		Lanes:         append([]float64(nil), s.cfg.Lanes...),
		Player: PlayerPose{
			Position:  p.Position(),
			Size:      p.Size(),
			Scale:     p.Scale(),
			Lane:      p.Lane(),
			Jumping:   p.Jumping(),
			Crouching: p.Crouching(),
		},
		Stats: s.Stats(),
	}

	obstacles := s.field.Obstacles()
	f.Obstacles = make([]ObstaclePose, 0, len(obstacles))
	for _, o := range obstacles {
		f.Obstacles = append(f.Obstacles, ObstaclePose{
			ID:       o.ID,
			Lane:     o.Lane,
			Class:    o.Class,
			Position: s.field.Position(o),
			Size:     s.field.Size(o),
		})
	}
	return f
}
