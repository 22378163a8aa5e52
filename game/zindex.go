package game

// Z-index constants determine layer ordering within a tick
// Higher values are "on top"
const (
	ZTerrain = 0
	ZDecor   = 50
	ZNPC     = 100
	ZPlayer  = 200
	ZHUD     = 1000
)
