package engine

// Achievement names. Once earned they are never removed, even if the
// completed tasks that earned them are later deleted.
const (
	AchFirstTask        = "First Task Done"
	AchGettingSerious   = "Getting Serious"
	AchStudyMachine     = "Study Machine"
	AchLegendaryStudier = "Legendary Studier"
	AchLevel2           = "Level 2 Achieved"
	AchLevel5           = "Level 5 Achieved"
)

type milestone struct {
	Threshold int
	Name      string
}

var completionMilestones = []milestone{
	{1, AchFirstTask},
	{5, AchGettingSerious},
	{10, AchStudyMachine},
	{25, AchLegendaryStudier},
}

var levelMilestones = []milestone{
	{2, AchLevel2},
	{5, AchLevel5},
}

// EvaluateAchievements returns the achievements newly earned for the given
// completed-task count and level, skipping any already in have. It is
// idempotent: calling it again with the earned set updated returns nothing.
func EvaluateAchievements(completedCount, level int, have map[string]bool) []string {
	var earned []string
	for _, m := range completionMilestones {
		if completedCount >= m.Threshold && !have[m.Name] {
			earned = append(earned, m.Name)
		}
	}
	for _, m := range levelMilestones {
		if level >= m.Threshold && !have[m.Name] {
			earned = append(earned, m.Name)
		}
	}
	return earned
}
