package core

import "testing"

func TestBoxIntersects(t *testing.T) {
	unit := Vec3{X: 1, Y: 1, Z: 1}

	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        BoxFromCenter(Vec3{}, unit),
			b:        BoxFromCenter(Vec3{X: 0.5, Y: 0.5, Z: 0.5}, unit),
			expected: true,
		},
		{
			name:     "separated on x",
			a:        BoxFromCenter(Vec3{}, unit),
			b:        BoxFromCenter(Vec3{X: 3}, unit),
			expected: false,
		},
		{
			name:     "separated on y",
			a:        BoxFromCenter(Vec3{}, unit),
			b:        BoxFromCenter(Vec3{Y: 2}, unit),
			expected: false,
		},
		{
			name:     "separated on z",
			a:        BoxFromCenter(Vec3{}, unit),
			b:        BoxFromCenter(Vec3{Z: -5}, unit),
			expected: false,
		},
		{
			name:     "touching faces (no overlap)",
			a:        BoxFromCenter(Vec3{}, unit),
			b:        BoxFromCenter(Vec3{Y: 1}, unit),
			expected: false,
		},
		{
			name:     "contained box",
			a:        BoxFromCenter(Vec3{}, Vec3{X: 4, Y: 4, Z: 4}),
			b:        BoxFromCenter(Vec3{}, unit),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxFromCenter(t *testing.T) {
	b := BoxFromCenter(Vec3{X: 3, Y: 1.25, Z: 50}, Vec3{X: 1.5, Y: 2.5, Z: 1.5})

	if b.Min.X != 2.25 || b.Max.X != 3.75 {
		t.Errorf("x extent = [%v, %v], expected [2.25, 3.75]", b.Min.X, b.Max.X)
	}
	if b.Min.Y != 0 || b.Max.Y != 2.5 {
		t.Errorf("y extent = [%v, %v], expected [0, 2.5]", b.Min.Y, b.Max.Y)
	}
	if c := b.Center(); c != (Vec3{X: 3, Y: 1.25, Z: 50}) {
		t.Errorf("Center() = %+v", c)
	}
	if s := b.Size(); s != (Vec3{X: 1.5, Y: 2.5, Z: 1.5}) {
		t.Errorf("Size() = %+v", s)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{1, 0, 2, 1},  // within range
		{-1, 0, 2, 0}, // below min
		{3, 0, 2, 2},  // above max
		{0, 0, 2, 0},  // at min
		{2, 0, 2, 2},  // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.5, 0.0, 1.0, 0.5},
		{-5.5, 0.0, 1.0, 0.0},
		{3.2, 0.0, 1.0, 1.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
