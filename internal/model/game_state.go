package model

// GameState is a singleton row (id=1). CurrentIndex is the zero-based
// pointer into the id-ordered question list; index == question count means
// the quiz is complete. The row is mutated by plain read-modify-write per
// request, which is acceptable for the intended one-player-at-a-time usage.
type GameState struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	CurrentIndex int  `gorm:"not null;default:0" json:"currentIndex"`
}

func (GameState) TableName() string {
	return "game_states"
}

// GameStateRowID is the fixed primary key of the singleton state row.
const GameStateRowID uint = 1
