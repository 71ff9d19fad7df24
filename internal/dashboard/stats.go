package dashboard

import (
	"math"

	"github.com/2beens/fitaipro/internal/meals"
	"github.com/2beens/fitaipro/internal/profile"
)

type Totals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// Percents of each goal consumed, capped at 100.
type Percents struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type Stats struct {
	Consumed          Totals   `json:"consumed"`
	CaloriesRemaining int      `json:"caloriesRemaining"`
	Percent           Percents `json:"percent"`
	GoalReached       bool     `json:"goalReached"`
	MealsCount        int      `json:"mealsCount"`
}

func ComputeStats(dayMeals []meals.Meal, goals profile.Goals) Stats {
	var consumed Totals
	for _, m := range dayMeals {
		consumed.Calories += m.Calories
		consumed.Protein += m.Protein
		consumed.Carbs += m.Carbs
		consumed.Fat += m.Fat
	}

	remaining := max(goals.CaloriesGoal-consumed.Calories, 0)

	return Stats{
		Consumed:          consumed,
		CaloriesRemaining: remaining,
		Percent: Percents{
			Calories: percentOf(consumed.Calories, goals.CaloriesGoal),
			Protein:  percentOf(consumed.Protein, goals.ProteinGoal),
			Carbs:    percentOf(consumed.Carbs, goals.CarbsGoal),
			Fat:      percentOf(consumed.Fat, goals.FatGoal),
		},
		GoalReached: remaining == 0,
		MealsCount:  len(dayMeals),
	}
}

// percentOf is 0 for a goal that is not positive.
func percentOf(consumed, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	return math.Min(float64(consumed)/float64(goal)*100, 100)
}
