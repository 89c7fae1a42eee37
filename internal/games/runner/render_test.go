package runner

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestRenderScene(t *testing.T) {
	s := newTestSim()
	s.Start()
	place(s, 0, Low, 15)
	place(s, 2, Tall, 25)

	screen := core.NewScreen(80, 24)
	Render(screen, s.Frame(), HUD{Left: "Score: 0", Right: "Level 1"})
	out := screen.String()

	for _, want := range []rune{PlayerChar, LowChar, TallChar, LaneChar, HorizonChar} {
		if !strings.ContainsRune(out, want) {
			t.Errorf("screen is missing %q", want)
		}
	}
	if !strings.Contains(screen.Row(0), "Score: 0") || !strings.Contains(screen.Row(0), "Level 1") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
}

func TestRenderPlayerBelowHorizon(t *testing.T) {
	s := newTestSim()
	s.Start()

	screen := core.NewScreen(80, 24)
	Render(screen, s.Frame(), HUD{})

	found := false
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			c := screen.GetCell(x, y)
			if c.Rune != PlayerChar {
				continue
			}
			found = true
			if y <= 6 || c.Color != core.ColorBrightBlue {
				t.Fatalf("player cell at (%d,%d) color %v", x, y, c.Color)
			}
		}
	}
	if !found {
		t.Fatal("player not drawn")
	}
}

func TestRenderCrouch(t *testing.T) {
	s := newTestSim()
	s.Start()
	s.Enqueue(core.ActionCrouchStart)
	s.Tick(frameDT)

	screen := core.NewScreen(80, 24)
	Render(screen, s.Frame(), HUD{})
	out := screen.String()
	if !strings.ContainsRune(out, PlayerCrouchChar) || strings.ContainsRune(out, PlayerChar) {
		t.Error("crouched player should use the crouch glyph only")
	}
}

func TestRenderMessage(t *testing.T) {
	s := newTestSim()
	screen := core.NewScreen(80, 24)
	Render(screen, s.Frame(), HUD{Title: "PAUSED", Detail: "Press P to resume"})

	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("message title not drawn")
	}
}

func TestRenderFullWidthHUD(t *testing.T) {
	s := newTestSim()
	s.Start()
	place(s, 0, Low, 20)

	screen := core.NewScreen(60, 20)
	hud := HUD{Left: "スコア 120", Right: "難易度: レベル1", Title: "一時停止", Detail: "Pで再開"}
	Render(screen, s.Frame(), hud)

	for y := 0; y < screen.Height(); y++ {
		if got := core.TextWidth(screen.Row(y)); got != screen.Width() {
			t.Errorf("row %d is %d columns wide, want %d: %q", y, got, screen.Width(), screen.Row(y))
		}
	}

	top := screen.Row(0)
	if !strings.HasSuffix(top, " "+hud.Right+"   ") {
		t.Errorf("right HUD not right-aligned: %q", top)
	}
	if !strings.Contains(screen.String(), hud.Title) || !strings.Contains(screen.String(), hud.Detail) {
		t.Error("message box text missing")
	}
}

func TestRenderTinyScreens(t *testing.T) {
	s := newTestSim()
	s.Start()
	place(s, 1, Tall, -9.5)
	place(s, 1, Low, 50)

	for _, size := range [][2]int{{0, 0}, {1, 1}, {3, 2}, {10, 4}, {200, 60}} {
		screen := core.NewScreen(size[0], size[1])
		Render(screen, s.Frame(), HUD{Left: "x", Right: "y", Title: "t"})
	}
}
