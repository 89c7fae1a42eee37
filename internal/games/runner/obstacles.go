package runner

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// HeightClass is the obstacle's silhouette.
type HeightClass int

const (
	Low  HeightClass = iota // can be jumped over
	Tall                    // must be dodged by changing lanes
)

// String returns a human-readable name for the class.
func (c HeightClass) String() string {
	switch c {
	case Low:
		return "low"
	case Tall:
		return "tall"
	default:
		return "unknown"
	}
}

// Obstacle is a block approaching the player along one lane.
type Obstacle struct {
	ID    uint64      // Unique within a Field, increasing in spawn order
	Lane  int         // 0, 1 or 2
	Class HeightClass // Low or Tall
	Z     float64     // Longitudinal position; decreases toward the player
}

// Field handles spawning, movement, and removal of obstacles.
type Field struct {
	cfg        config.ObstacleConfig
	lanes      []float64
	refFPS     float64
	rng        *rand.Rand
	obstacles  []Obstacle
	sinceSpawn float64 // seconds since the last spawn
	nextID     uint64
}

// NewField creates an empty obstacle field with the given RNG seed.
func NewField(cfg config.RunnerConfig, seed int64) *Field {
	return &Field{
		cfg:       cfg.Obstacles,
		lanes:     cfg.Lanes,
		refFPS:    cfg.Timing.ReferenceFPS,
		rng:       rand.New(rand.NewSource(seed)),
		obstacles: make([]Obstacle, 0, 16),
	}
}

// Clear removes all obstacles and restarts the spawn timer.
// The RNG keeps its position so consecutive runs differ.
func (f *Field) Clear() {
	f.obstacles = f.obstacles[:0]
	f.sinceSpawn = 0
}

// Tick spawns at most one obstacle, moves every obstacle toward the player
// and removes the ones that crossed the near bound.
// Returns the number of obstacles removed this tick.
func (f *Field) Tick(dt, speed, spawnInterval float64) (passed int) {
	f.sinceSpawn += dt
	if f.sinceSpawn > spawnInterval {
		f.spawn(f.rng.Intn(len(f.lanes)), HeightClass(f.rng.Intn(2)))
		// Any overshoot is dropped rather than carried into the next interval.
		f.sinceSpawn = 0
	}

	step := speed * dt * f.refFPS
	for i := range f.obstacles {
		f.obstacles[i].Z -= step
	}

	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.Z < f.cfg.DespawnZ {
			passed++
			continue
		}
		kept = append(kept, o)
	}
	f.obstacles = kept

	return passed
}

// spawn places a new obstacle at the far bound.
func (f *Field) spawn(lane int, class HeightClass) Obstacle {
	f.nextID++
	o := Obstacle{
		ID:    f.nextID,
		Lane:  lane,
		Class: class,
		Z:     f.cfg.SpawnZ,
	}
	f.obstacles = append(f.obstacles, o)
	return o
}

// Obstacles returns the live obstacles in spawn order.
func (f *Field) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the number of live obstacles.
func (f *Field) Len() int {
	return len(f.obstacles)
}

// Size returns an obstacle's dimensions.
func (f *Field) Size(o Obstacle) core.Vec3 {
	h := f.cfg.LowHeight
	if o.Class == Tall {
		h = f.cfg.TallHeight
	}
	return core.Vec3{X: f.cfg.Width, Y: h, Z: f.cfg.Depth}
}

// Position returns the center of an obstacle. Obstacles rest on the ground.
func (f *Field) Position(o Obstacle) core.Vec3 {
	return core.Vec3{X: f.lanes[o.Lane], Y: f.Size(o).Y / 2, Z: o.Z}
}

// Box returns an obstacle's bounding box.
func (f *Field) Box(o Obstacle) core.Box {
	return core.BoxFromCenter(f.Position(o), f.Size(o))
}
