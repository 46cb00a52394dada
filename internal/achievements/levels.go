package achievements

// levelThresholds[i] is the cumulative XP required to reach level i+1.
// Ten levels total; the curve widens as it climbs.
var levelThresholds = [...]int{0, 100, 250, 500, 900, 1500, 2400, 3600, 5200, 7500}

// MaxLevel is the highest reachable level.
const MaxLevel = len(levelThresholds)

// LevelForXP returns the 1-based level for a cumulative XP total.
func LevelForXP(xp int) int {
	level := 1
	for i, threshold := range levelThresholds {
		if xp >= threshold {
			level = i + 1
		}
	}
	return level
}

// LevelProgress returns the percent progress from the current level toward
// the next, 0-100. At max level it reports 100.
func LevelProgress(xp int) int {
	level := LevelForXP(xp)
	if level >= MaxLevel {
		return 100
	}
	floor := levelThresholds[level-1]
	ceil := levelThresholds[level]
	return (xp - floor) * 100 / (ceil - floor)
}
