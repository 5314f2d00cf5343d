package wordfall

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/core"
	"github.com/vovakirdan/wordfall/internal/registry"
)

func configureForTest(t *testing.T, cfg config.WordfallConfig) {
	t.Helper()
	prev := currentSettings()
	Configure(Settings{Config: cfg})
	t.Cleanup(func() { Configure(prev) })
}

func testRuntime() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 12345
	return cfg
}

func TestRegisteredVariants(t *testing.T) {
	tests := []struct {
		id    string
		title string
	}{
		{"wordfall", "Wordfall"},
		{"wordfall_classic", "Wordfall (Classic Scoring)"},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			g, err := registry.Create(tc.id)
			if err != nil {
				t.Fatalf("Create(%q): %v", tc.id, err)
			}
			if g.ID() != tc.id || g.Title() != tc.title {
				t.Errorf("got %q/%q", g.ID(), g.Title())
			}
		})
	}
}

func TestGameStartsIdleAndConfirmStarts(t *testing.T) {
	configureForTest(t, testConfig())

	g := New()
	g.Reset(testRuntime())

	if st := g.State(); st.Status != core.StatusIdle || st.Lives != 3 {
		t.Fatalf("state after Reset = %+v", st)
	}

	in := core.NewInputFrame()
	res := g.Step(t0, in)
	if res.Ticked || res.State.Status != core.StatusIdle {
		t.Errorf("idle step = %+v", res)
	}

	in.Set(core.ActionConfirm)
	res = g.Step(t0.Add(time.Second), in)
	if res.State.Status != core.StatusPlaying {
		t.Errorf("status after Confirm = %v", res.State.Status)
	}
}

func TestGameConfirmRestartsAfterGameOver(t *testing.T) {
	configureForTest(t, testConfig())

	g := New()
	g.Reset(testRuntime())

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(t0, in)

	e := g.Controller().Engine()
	line := e.SafetyLine()
	for i := 0; i < 3; i++ {
		placeEnemy(e, "cat", core.Vec{X: 100 + float64(i)*200, Y: line - 2}, 40, 5)
	}

	in.Clear()
	res := g.Step(t0.Add(time.Second), in)
	if res.State.Status != core.StatusGameOver || !res.State.GameOver {
		t.Fatalf("state after crossings = %+v", res.State)
	}

	in.Set(core.ActionConfirm)
	res = g.Step(t0.Add(2*time.Second), in)
	if res.State.Status != core.StatusPlaying || res.State.Lives != 3 || res.State.Score != 0 {
		t.Errorf("state after Confirm on game over = %+v", res.State)
	}
}

func TestGameWorldUsesCellScale(t *testing.T) {
	configureForTest(t, testConfig())

	g := New()
	g.Reset(testRuntime())

	w, h := g.Controller().Engine().Size()
	if w != 640 || h != 384 {
		t.Errorf("world = %vx%v, expected 640x384", w, h)
	}

	g.Resize(100, 30)
	w, h = g.Controller().Engine().Size()
	if w != 800 || h != 480 {
		t.Errorf("world after resize = %vx%v, expected 800x480", w, h)
	}
	if line := g.Controller().Engine().SafetyLine(); line != 240 {
		t.Errorf("safety line = %v, expected 240", line)
	}
}

func TestGameMuteSurvivesReset(t *testing.T) {
	configureForTest(t, testConfig())

	g := New()
	g.Reset(testRuntime())

	in := core.NewInputFrame()
	in.Set(core.ActionMute)
	if st := g.Step(t0, in).State; !st.Muted {
		t.Fatal("Mute action should mute the game")
	}

	g.Reset(testRuntime())
	if !g.State().Muted {
		t.Error("mute state lost on Reset")
	}
}

func TestClassicVariantScoresPerCharacter(t *testing.T) {
	configureForTest(t, testConfig())

	g := NewClassic()
	g.Reset(testRuntime())

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(t0, in)

	e := g.Controller().Engine()
	placeEnemy(e, "cat", core.Vec{X: 320, Y: 50}, 44, 0)

	in.Clear()
	for _, r := range "cat" {
		in.Type(r)
	}
	g.Step(frameTime(1), in)

	in.Clear()
	for i := 2; i < 200 && len(e.Enemies()) > 0; i++ {
		g.Step(frameTime(i), in)
	}

	// 3 hits at 10 plus a 50 per letter bonus
	if got := g.State().Score; got != 180 {
		t.Errorf("score = %d, expected 180", got)
	}
	// Difficulty follows destroyed words, not points
	want := config.NewDifficultyManager(testConfig().Difficulty).Factor(1)
	if got := e.Factor(); got != want {
		t.Errorf("factor = %v, expected %v", got, want)
	}
}

func TestGameDeterministicWithSeed(t *testing.T) {
	cfg := config.DefaultWordfallConfig()
	cfg.Enemy.SpawnIntervalMs = 100
	configureForTest(t, cfg)

	g1, g2 := New(), New()
	g1.Reset(testRuntime())
	g2.Reset(testRuntime())

	start := core.NewInputFrame()
	start.Set(core.ActionConfirm)
	g1.Step(t0, start)
	g2.Step(t0, start)

	in := core.NewInputFrame()
	for i := 1; i <= 120; i++ {
		g1.Step(frameTime(i), in)
		g2.Step(frameTime(i), in)
	}

	s1, s2 := g1.Controller().Snapshot(), g2.Controller().Snapshot()
	if len(s1.Enemies) == 0 || len(s1.Enemies) != len(s2.Enemies) {
		t.Fatalf("enemy counts %d vs %d", len(s1.Enemies), len(s2.Enemies))
	}
	for i := range s1.Enemies {
		a, b := s1.Enemies[i], s2.Enemies[i]
		if a.Word != b.Word || a.Pos != b.Pos || a.Speed != b.Speed {
			t.Errorf("enemy %d differs: %+v vs %+v", i, a, b)
		}
	}
}

func TestRenderIdleOverlay(t *testing.T) {
	configureForTest(t, testConfig())

	g := New()
	g.Reset(testRuntime())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Press Enter to start") {
		t.Errorf("idle screen has no start prompt:\n%s", screen.String())
	}
}

func TestRenderCellsWordColours(t *testing.T) {
	s := Snapshot{
		SafetyLine: 20 * 16,
		Player:     Player{Pos: core.Vec{X: 40 * 8, Y: 22 * 16}},
		Enemies: []Enemy{
			{Word: "cat", Typed: 2, Hit: 1, Pos: core.Vec{X: 40 * 8, Y: 5 * 16}},
			{Word: "dog", Pos: core.Vec{X: 10 * 8, Y: 8 * 16}},
		},
		Active: 0,
		Status: core.StatusPlaying,
	}

	screen := core.NewScreen(80, 24)
	RenderCells(screen, s, 8, 16)

	tests := []struct {
		x, y  int
		r     rune
		color core.Color
	}{
		{39, 5, 'c', core.ColorGreen},
		{40, 5, 'a', core.ColorGray},
		{41, 5, 't', core.ColorBrightYellow},
		{37, 5, '>', core.ColorCyan},
		{9, 8, 'd', core.ColorWhite},
		{0, 20, '-', core.ColorDarkGray},
	}

	for _, tc := range tests {
		got := screen.GetCell(tc.x, tc.y)
		if got.Rune != tc.r || got.Color != tc.color {
			t.Errorf("cell (%d,%d) = %q/%v, expected %q/%v", tc.x, tc.y, got.Rune, got.Color, tc.r, tc.color)
		}
	}

	if strings.Contains(screen.String(), "GAME") {
		t.Error("overlay drawn while playing")
	}
}

func TestBarrelGlyph(t *testing.T) {
	tests := []struct {
		rotation float64
		glyph    rune
	}{
		{0, '|'},
		{0.6, '/'},
		{-0.6, '\\'},
		{1.5, '_'},
		{-1.5, '_'},
	}

	for _, tc := range tests {
		if g, _ := barrelGlyph(tc.rotation); g != tc.glyph {
			t.Errorf("barrelGlyph(%v) = %q, expected %q", tc.rotation, g, tc.glyph)
		}
	}
}

func TestGameDifficultyOverride(t *testing.T) {
	cfg := testConfig()
	configureForTest(t, cfg)

	tests := []struct {
		preset config.DifficultyPreset
		factor float64
	}{
		{"", 1},
		{config.DifficultyNormal, 1},
		{config.DifficultyHard, 1.5},
	}

	for _, tc := range tests {
		g := New()
		g.SetDifficulty(tc.preset)
		g.Reset(testRuntime())
		if got := g.Controller().Engine().Factor(); got != tc.factor {
			t.Errorf("preset %q: factor = %v, expected %v", tc.preset, got, tc.factor)
		}
	}
}
