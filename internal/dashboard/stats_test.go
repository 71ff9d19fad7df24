package dashboard

import (
	"testing"

	"github.com/2beens/fitaipro/internal/meals"
	"github.com/2beens/fitaipro/internal/profile"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	dayMeals := []meals.Meal{
		{Name: "Pão Francês", Calories: 150, Protein: 5, Carbs: 30, Fat: 2},
		{Name: "Arroz com Feijão", Calories: 450, Protein: 15, Carbs: 75, Fat: 8},
	}
	stats := ComputeStats(dayMeals, profile.DefaultGoals())

	assert.Equal(t, Totals{Calories: 600, Protein: 20, Carbs: 105, Fat: 10}, stats.Consumed)
	assert.Equal(t, 1400, stats.CaloriesRemaining)
	assert.False(t, stats.GoalReached)
	assert.Equal(t, 2, stats.MealsCount)
	assert.InDelta(t, 30.0, stats.Percent.Calories, 1e-9)
	assert.InDelta(t, 13.3333, stats.Percent.Protein, 1e-3)
	assert.InDelta(t, 42.0, stats.Percent.Carbs, 1e-9)
	assert.InDelta(t, 15.3846, stats.Percent.Fat, 1e-3)
}

func TestComputeStats_OverGoal(t *testing.T) {
	goals := profile.Goals{CaloriesGoal: 500, ProteinGoal: 10, CarbsGoal: 50, FatGoal: 5}
	dayMeals := []meals.Meal{
		{Calories: 450, Protein: 15, Carbs: 75, Fat: 8},
		{Calories: 380, Protein: 45, Carbs: 20, Fat: 12},
	}
	stats := ComputeStats(dayMeals, goals)

	assert.Equal(t, 0, stats.CaloriesRemaining)
	assert.True(t, stats.GoalReached)
	assert.Equal(t, Percents{Calories: 100, Protein: 100, Carbs: 100, Fat: 100}, stats.Percent)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil, profile.Goals{CaloriesGoal: 2000})
	assert.Equal(t, Totals{}, stats.Consumed)
	assert.Equal(t, 2000, stats.CaloriesRemaining)
	assert.Equal(t, Percents{}, stats.Percent)
	assert.Equal(t, 0, stats.MealsCount)

	// zero goals do not divide by zero
	stats = ComputeStats([]meals.Meal{{Calories: 100, Protein: 5}}, profile.Goals{})
	assert.Equal(t, Percents{}, stats.Percent)
	assert.True(t, stats.GoalReached)
}
