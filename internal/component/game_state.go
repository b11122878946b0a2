package component

import "go-swarm-shooter/internal/config"

// GameProgress — счёт, уровень и темп игры
type GameProgress struct {
	Score             int
	Level             int
	CurrentLevelScore int // очки к следующему уровню, остаток переносится
	GameSpeed         float64
}

func NewGameProgress() *GameProgress {
	return &GameProgress{Level: 1, GameSpeed: 1}
}

// PointsNeeded returns the score required to leave the current level.
func (p *GameProgress) PointsNeeded() int {
	return p.Level * config.LevelScoreMultiplier
}

// LevelRatio returns CurrentLevelScore / PointsNeeded in [0, 1].
func (p *GameProgress) LevelRatio() float64 {
	need := p.PointsNeeded()
	if need <= 0 {
		return 0
	}
	r := float64(p.CurrentLevelScore) / float64(need)
	if r > 1 {
		r = 1
	}
	return r
}
