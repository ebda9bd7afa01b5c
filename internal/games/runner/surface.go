package runner

// Surface is the rendering target the engine writes to. The engine holds
// the authoritative state and never reads anything back.
type Surface interface {
	SetCharacterOffset(y float64)
	AddObstacle(o Obstacle)
	MoveObstacle(id int, x float64)
	RemoveObstacle(id int)
	ClearObstacles()
	SetStartPromptVisible(visible bool)
	SetGameOverVisible(visible bool)
	SetScore(score int)
	SetHighScore(score int)
}

// nopSurface discards everything; used for headless engines.
type nopSurface struct{}

func (nopSurface) SetCharacterOffset(float64) {}
func (nopSurface) AddObstacle(Obstacle) {}
func (nopSurface) MoveObstacle(int, float64) {}
func (nopSurface) RemoveObstacle(int) {}
func (nopSurface) ClearObstacles() {}
func (nopSurface) SetStartPromptVisible(bool) {}
func (nopSurface) SetGameOverVisible(bool) {}
func (nopSurface) SetScore(int) {}
func (nopSurface) SetHighScore(int) {}
