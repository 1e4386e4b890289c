package santa

import (
	"sort"

	"github.com/vovakirdan/santa-catch/internal/config"
)

// Achievements tracks which score milestones have been announced this round.
type Achievements struct {
	titles map[int]string
	shown  map[int]bool
}

// NewAchievements builds the milestone table from config.
func NewAchievements(list []config.AchievementConfig) *Achievements {
	a := &Achievements{
		titles: make(map[int]string, len(list)),
		shown:  make(map[int]bool, len(list)),
	}
	for _, entry := range list {
		a.titles[entry.Score] = entry.Title
	}
	return a
}

// Unlock marks the milestone for score as shown.
// Returns its title and true only the first time a milestone score is reached.
func (a *Achievements) Unlock(score int) (string, bool) {
	title, ok := a.titles[score]
	if !ok || a.shown[score] {
		return "", false
	}
	a.shown[score] = true
	return title, true
}

// Shown returns the scores of all announced milestones in ascending order.
func (a *Achievements) Shown() []int {
	scores := make([]int, 0, len(a.shown))
	for score := range a.shown {
		scores = append(scores, score)
	}
	sort.Ints(scores)
	return scores
}
