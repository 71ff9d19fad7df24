package calculator

import (
	"fmt"
	"math"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

type MainGoal string

const (
	MainGoalLoseWeight  MainGoal = "lose_weight"
	MainGoalGainMuscle  MainGoal = "gain_muscle"
	MainGoalMaintain    MainGoal = "maintain"
	MainGoalImproveDiet MainGoal = "improve_diet"
)

func (g MainGoal) IsValid() bool {
	switch g {
	case MainGoalLoseWeight, MainGoalGainMuscle, MainGoalMaintain, MainGoalImproveDiet:
		return true
	default:
		return false
	}
}

// GoalType can be one of:
//   - weight_loss
//   - weight_gain
//   - maintenance
type GoalType string

const (
	GoalTypeWeightLoss  GoalType = "weight_loss"
	GoalTypeWeightGain  GoalType = "weight_gain"
	GoalTypeMaintenance GoalType = "maintenance"
)

type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)

// QuizAnswers holds the biometric answers the estimate is computed from.
// Weight and TargetWeight are in kg, Height in cm.
type QuizAnswers struct {
	Age          int      `json:"age"`
	Gender       Gender   `json:"gender"`
	Weight       float64  `json:"weight"`
	TargetWeight float64  `json:"targetWeight"`
	Height       float64  `json:"height"`
	MainGoal     MainGoal `json:"mainGoal"`
}

// WeightDifference is positive when the user wants to lose weight.
func (a QuizAnswers) WeightDifference() float64 {
	return a.Weight - a.TargetWeight
}

func (a QuizAnswers) Validate() error {
	if a.Age <= 0 {
		return &InvalidInputError{Field: "age", Reason: fmt.Sprintf("must be positive, got %d", a.Age)}
	}
	if err := positiveFinite("weight", a.Weight); err != nil {
		return err
	}
	if err := positiveFinite("targetWeight", a.TargetWeight); err != nil {
		return err
	}
	if err := positiveFinite("height", a.Height); err != nil {
		return err
	}
	if !a.Gender.IsValid() {
		return &InvalidInputError{Field: "gender", Reason: fmt.Sprintf("unknown gender [%s]", a.Gender)}
	}
	if !a.MainGoal.IsValid() {
		return &InvalidInputError{Field: "mainGoal", Reason: fmt.Sprintf("unknown goal [%s]", a.MainGoal)}
	}
	return nil
}

func positiveFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidInputError{Field: field, Reason: "must be a finite number"}
	}
	if v <= 0 {
		return &InvalidInputError{Field: field, Reason: fmt.Sprintf("must be positive, got %g", v)}
	}
	return nil
}

type MacroGoals struct {
	CaloriesGoal int `json:"caloriesGoal"`
	ProteinGoal  int `json:"proteinGoal"`
	CarbsGoal    int `json:"carbsGoal"`
	FatGoal      int `json:"fatGoal"`
}
