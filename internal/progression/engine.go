package progression

import "fmt"

// Difficulty multipliers by course category. Unrecognized categories fall
// back to the base multiplier so a renamed category can never zero out an
// award.
var categoryMultipliers = map[string]int{
	"Advanced":         3,
	"Intermediate":     2,
	"Computer Science": 2,
	"Mathematics":      2,
	"Engineering":      2,
	"Business":         1,
	"General":          1,
}

// Threshold is one row of the ascending level table.
type Threshold struct {
	Level      int
	XPRequired int
	Badge      string
}

// Award is the computed outcome of one graded submission.
type Award struct {
	XPDelta   int
	NewPoints int
	NewLevel  int
	NewBadge  string
	Reason    string
}

// Multiplier returns the XP multiplier for a course category.
func Multiplier(category string) int {
	if m, ok := categoryMultipliers[category]; ok {
		return m
	}
	return 1
}

// Bonus returns the flat bonus XP for a percentage score.
func Bonus(scorePercent int) int {
	switch {
	case scorePercent >= 90:
		return 50
	case scorePercent >= 80:
		return 30
	case scorePercent >= 70:
		return 20
	case scorePercent >= 60:
		return 10
	default:
		return 5
	}
}

// ResolveLevel returns the highest level whose XPRequired is at or below
// points. Thresholds must be sorted ascending by level; the boundary is
// inclusive, so reaching exactly XPRequired grants the level.
func ResolveLevel(thresholds []Threshold, points int) (level int, badge string) {
	level, badge = 1, "Novice"
	for _, t := range thresholds {
		if points >= t.XPRequired {
			level, badge = t.Level, t.Badge
		}
	}
	return level, badge
}

// XPDelta is the award formula: one base XP per percentage point, scaled
// by the category multiplier, plus the score-tier bonus.
func XPDelta(category string, scorePercent int) int {
	return scorePercent*Multiplier(category) + Bonus(scorePercent)
}

// Reason renders the human-readable audit line for an award.
func Reason(category string, scorePercent int, quizTitle string) string {
	return fmt.Sprintf("Scored %d%% on %q (%s, x%d)", scorePercent, quizTitle, category, Multiplier(category))
}

// ComputeAward derives the XP delta and resulting level for a graded
// submission. Pure: persisting the new points and the audit transaction is
// the caller's job, and under concurrency the caller should re-resolve the
// level from the post-increment points it read back.
func ComputeAward(currentPoints int, category string, scorePercent int, quizTitle string, thresholds []Threshold) Award {
	delta := XPDelta(category, scorePercent)
	newPoints := currentPoints + delta
	level, badge := ResolveLevel(thresholds, newPoints)

	return Award{
		XPDelta:   delta,
		NewPoints: newPoints,
		NewLevel:  level,
		NewBadge:  badge,
		Reason:    Reason(category, scorePercent, quizTitle),
	}
}
