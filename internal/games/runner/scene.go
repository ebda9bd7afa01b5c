package runner

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	PlayerBody = '█'
	PlayerHead = '◆'
	PlayerLeg1 = '╱'
	PlayerLeg2 = '╲'
	GroundChar = '═'
	DirtChar   = '·'
)

// variantRunes are the fill characters per obstacle variant.
var variantRunes = [config.VariantCount]rune{'▓', '█', '▒'}

// variantColors are the ground obstacle colors per variant.
var variantColors = [config.VariantCount]core.Color{core.ColorGreen, core.ColorYellow, core.ColorOrange}

// Scene is a Surface that keeps the last written values and draws them
// into a core.Screen. Field pixels are scaled to the screen size on
// every Render, so resizing never touches game state.
type Scene struct {
	cfg        config.RunnerConfig
	charY      float64
	obstacles  []Obstacle
	showPrompt bool
	showOver   bool
	score      int
	highScore  int
	legFrame   int // Running animation counter
}

// NewScene creates an empty scene for the given geometry.
func NewScene(cfg config.RunnerConfig) *Scene {
	return &Scene{cfg: cfg, showPrompt: true}
}

// SetCharacterOffset implements Surface.
func (s *Scene) SetCharacterOffset(y float64) {
	s.charY = y
}

// AddObstacle implements Surface.
func (s *Scene) AddObstacle(o Obstacle) {
	s.obstacles = append(s.obstacles, o)
}

// MoveObstacle implements Surface.
func (s *Scene) MoveObstacle(id int, x float64) {
	for i := range s.obstacles {
		if s.obstacles[i].ID == id {
			s.obstacles[i].X = x
			return
		}
	}
}

// RemoveObstacle implements Surface.
func (s *Scene) RemoveObstacle(id int) {
	for i := range s.obstacles {
		if s.obstacles[i].ID == id {
			s.obstacles = append(s.obstacles[:i], s.obstacles[i+1:]...)
			return
		}
	}
}

// ClearObstacles implements Surface.
func (s *Scene) ClearObstacles() {
	s.obstacles = s.obstacles[:0]
}

// SetStartPromptVisible implements Surface.
func (s *Scene) SetStartPromptVisible(visible bool) {
	s.showPrompt = visible
}

// SetGameOverVisible implements Surface.
func (s *Scene) SetGameOverVisible(visible bool) {
	s.showOver = visible
}

// SetScore implements Surface.
func (s *Scene) SetScore(score int) {
	s.score = score
}

// SetHighScore implements Surface.
func (s *Scene) SetHighScore(score int) {
	s.highScore = score
}

// CharacterOffset returns the last written character offset.
func (s *Scene) CharacterOffset() float64 { return s.charY }

// Obstacles returns the obstacles currently on the scene.
func (s *Scene) Obstacles() []Obstacle { return s.obstacles }

// StartPromptVisible reports whether the start prompt is shown.
func (s *Scene) StartPromptVisible() bool { return s.showPrompt }

// GameOverVisible reports whether the game-over indicator is shown.
func (s *Scene) GameOverVisible() bool { return s.showOver }

// ScoreText returns the score display text.
func (s *Scene) ScoreText() string { return fmt.Sprintf("Score: %d", s.score) }

// HighScoreText returns the high score display text.
func (s *Scene) HighScoreText() string { return fmt.Sprintf("High Score: %d", s.highScore) }

// layout maps field pixels onto a screen.
type layout struct {
	cfg     config.RunnerConfig
	width   int
	groundY int // Row of the ground line
	rows    int // Rows available above the ground
}

func newLayout(cfg config.RunnerConfig, dst *core.Screen) layout {
	groundY := dst.Height() - 2
	return layout{
		cfg:     cfg,
		width:   dst.Width(),
		groundY: groundY,
		rows:    core.Max(groundY-1, 1),
	}
}

func (l layout) col(x float64) int { return core.Scale(x, l.cfg.Field.Width, l.width) }

func (l layout) span(w float64) int { return core.Max(core.Scale(w, l.cfg.Field.Width, l.width), 1) }

func (l layout) lift(y float64) int { return core.Scale(y, l.cfg.Field.Height, l.rows) }

func (l layout) tall(h float64) int { return core.Max(core.Scale(h, l.cfg.Field.Height, l.rows), 1) }

// Render draws the scene. The screen is cleared first.
func (s *Scene) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() < 4 {
		return
	}
	l := newLayout(s.cfg, dst)
	s.legFrame = (s.legFrame + 1) % 10

	// Ground
	dst.DrawHLine(0, l.groundY, dst.Width(), GroundChar)
	for x := 0; x < dst.Width(); x += 3 {
		dst.SetColored(x, l.groundY+1, DirtChar, core.ColorGray)
	}

	for _, o := range s.obstacles {
		s.drawObstacle(dst, l, o)
	}
	s.drawPlayer(dst, l)

	// HUD
	dst.DrawTextColored(2, 0, " "+s.ScoreText()+" ", core.ColorBrightWhite)
	hi := " " + s.HighScoreText() + " "
	dst.DrawTextColored(dst.Width()-len(hi)-2, 0, hi, core.ColorCyan)

	switch {
	case s.showOver:
		s.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Space or R to restart", s.score))
	case s.showPrompt:
		s.drawCenteredMessage(dst, Title, "Press Space to start")
	}
}

// drawPlayer renders the character as a block with a head and legs.
func (s *Scene) drawPlayer(dst *core.Screen, l layout) {
	w := l.span(s.cfg.Player.Width)
	h := l.tall(s.cfg.Player.Height)
	x := l.col(s.cfg.Player.X)
	bottom := l.groundY - 1 - l.lift(core.ClampF(s.charY, 0, s.cfg.Field.Height))
	top := bottom - h + 1

	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			dst.SetColored(x+dx, top+dy, PlayerBody, core.ColorCyan)
		}
	}
	dst.SetColored(x+w-1, top, PlayerHead, core.ColorBrightWhite)

	if h < 2 {
		return
	}
	// Legs swap while running, tuck while airborne
	left, right := PlayerLeg1, PlayerLeg2
	if s.charY > 0 || s.legFrame >= 5 {
		left, right = PlayerLeg2, PlayerLeg1
	}
	dst.SetColored(x, bottom, left, core.ColorCyan)
	dst.SetColored(x+w-1, bottom, right, core.ColorCyan)
	for dx := 1; dx < w-1; dx++ {
		dst.Set(x+dx, bottom, ' ')
	}
}

// drawObstacle renders one obstacle filled with its variant rune.
func (s *Scene) drawObstacle(dst *core.Screen, l layout, o Obstacle) {
	v := core.Clamp(int(o.Variant), 0, config.VariantCount-1)
	color := variantColors[v]
	if o.Tier == TierElevated {
		color = core.ColorMagenta
	}

	x := l.col(o.X)
	w := l.span(o.Width)
	h := l.tall(o.Height)
	bottom := l.groundY - 1 - l.lift(o.Elevation)

	dst.DrawRectColored(core.NewRect(x, bottom-h+1, w, h), variantRunes[v], color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (s *Scene) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColored(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title, core.ColorBrightWhite)
	dst.DrawText(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle)
}
