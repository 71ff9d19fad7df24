package calculator

import (
	"math"
)

const (
	// activityFactor models a sedentary to lightly active routine; it is not user configurable.
	activityFactor = 1.4

	significantWeightGap = 5.0
	maintenanceDeadZone  = 2.0

	lowIntensityMaxGap      = 3.0
	moderateIntensityMaxGap = 10.0

	caloriesRoundingStep = 50.0
)

// EstimateDailyCalories computes the daily caloric target for the given answers:
// revised Harris-Benedict BMR, a fixed activity factor and a goal adjustment that
// depends on the main goal and on the gap between current and target weight.
// The result is rounded to the nearest multiple of 50 (half away from zero) and
// is not floored; extreme inputs can produce a non-positive value.
func EstimateDailyCalories(answers QuizAnswers) (int, error) {
	if err := answers.Validate(); err != nil {
		return 0, err
	}

	weightDifference := answers.WeightDifference()
	calories := BasalMetabolicRate(answers.Gender, answers.Weight, answers.Height, answers.Age) * activityFactor
	calories *= goalMultiplier(answers.MainGoal, weightDifference)

	if math.IsNaN(calories) || math.IsInf(calories, 0) {
		return 0, &InvalidInputError{Field: "answers", Reason: "estimate is not a finite number"}
	}

	return roundToStep(calories, caloriesRoundingStep), nil
}

// BasalMetabolicRate returns the revised Harris-Benedict BMR in kcal/day.
func BasalMetabolicRate(gender Gender, weight, height float64, age int) float64 {
	if gender == GenderMale {
		return 88.362 + 13.397*weight + 4.799*height - 5.677*float64(age)
	}
	return 447.593 + 9.247*weight + 3.098*height - 4.330*float64(age)
}

func goalMultiplier(goal MainGoal, weightDifference float64) float64 {
	isSignificantLoss := weightDifference > significantWeightGap
	isSignificantGain := weightDifference < -significantWeightGap

	switch goal {
	case MainGoalLoseWeight:
		if isSignificantLoss {
			return 0.80
		}
		return 0.85
	case MainGoalGainMuscle:
		if isSignificantGain {
			return 1.20
		}
		return 1.15
	case MainGoalMaintain:
		return nearTargetMultiplier(weightDifference, 0.90, 1.10)
	case MainGoalImproveDiet:
		return nearTargetMultiplier(weightDifference, 0.95, 1.05)
	default:
		return 1.0
	}
}

func nearTargetMultiplier(weightDifference, toLose, toGain float64) float64 {
	switch {
	case math.Abs(weightDifference) <= maintenanceDeadZone:
		return 1.0
	case weightDifference > 0:
		return toLose
	default:
		return toGain
	}
}

// roundToStep rounds v to the nearest multiple of step, halves away from zero.
func roundToStep(v, step float64) int {
	return int(math.Round(v/step) * step)
}

// DetermineGoalType classifies the weight gap; a gap of exactly ±2 kg is still maintenance.
func DetermineGoalType(weight, targetWeight float64) GoalType {
	difference := weight - targetWeight
	switch {
	case difference > maintenanceDeadZone:
		return GoalTypeWeightLoss
	case difference < -maintenanceDeadZone:
		return GoalTypeWeightGain
	default:
		return GoalTypeMaintenance
	}
}

// CalculateIntensity maps the magnitude of the weight gap to an effort tier.
// Both thresholds (3 and 10 kg) are inclusive.
func CalculateIntensity(weight, targetWeight float64) Intensity {
	difference := math.Abs(weight - targetWeight)
	switch {
	case difference <= lowIntensityMaxGap:
		return IntensityLow
	case difference <= moderateIntensityMaxGap:
		return IntensityModerate
	default:
		return IntensityHigh
	}
}

// DeriveMacroGoals splits the caloric target 30/40/30 between protein, carbs and fat
// (4, 4 and 9 kcal per gram).
func DeriveMacroGoals(estimatedCalories int) MacroGoals {
	calories := float64(estimatedCalories)
	return MacroGoals{
		CaloriesGoal: estimatedCalories,
		ProteinGoal:  int(math.Round(calories * 0.3 / 4)),
		CarbsGoal:    int(math.Round(calories * 0.4 / 4)),
		FatGoal:      int(math.Round(calories * 0.3 / 9)),
	}
}
