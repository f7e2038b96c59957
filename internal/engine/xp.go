package engine

const (
	// XPPerTask is the fixed award credited for every completed task.
	XPPerTask = 20

	// XPPerLevel is the amount of XP that makes up one level.
	XPPerLevel = 100
)

// LevelForXP returns the level for a total XP amount: floor(xp/100) + 1.
// Level 1 starts at 0 XP.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// XPIntoLevel returns how far into the current level the total XP is,
// in [0, XPPerLevel).
func XPIntoLevel(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp % XPPerLevel
}
