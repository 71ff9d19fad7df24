package profile

import (
	"fmt"
	"time"

	"github.com/2beens/fitaipro/internal/calculator"
)

type DietRoutine string

const (
	DietRoutineVeryIrregular     DietRoutine = "very_irregular"
	DietRoutineSomewhat          DietRoutine = "somewhat"
	DietRoutineRelativelyHealthy DietRoutine = "relatively_healthy"
	DietRoutineVeryHealthy       DietRoutine = "very_healthy"
)

func (d DietRoutine) IsValid() bool {
	switch d {
	case DietRoutineVeryIrregular, DietRoutineSomewhat, DietRoutineRelativelyHealthy, DietRoutineVeryHealthy:
		return true
	default:
		return false
	}
}

type MealsPerDay string

const (
	MealsPerDayOneToTwo   MealsPerDay = "1-2"
	MealsPerDayThree      MealsPerDay = "3"
	MealsPerDayFourToFive MealsPerDay = "4-5"
	MealsPerDayMoreThan5  MealsPerDay = "5+"
)

func (m MealsPerDay) IsValid() bool {
	switch m {
	case MealsPerDayOneToTwo, MealsPerDayThree, MealsPerDayFourToFive, MealsPerDayMoreThan5:
		return true
	default:
		return false
	}
}

type MainDifficulty string

const (
	MainDifficultyDontKnow      MainDifficulty = "dont_know"
	MainDifficultyNoTime        MainDifficulty = "no_time"
	MainDifficultyCompulsion    MainDifficulty = "compulsion"
	MainDifficultyNoResults     MainDifficulty = "no_results"
	MainDifficultyInconsistency MainDifficulty = "inconsistency"
)

func (m MainDifficulty) IsValid() bool {
	switch m {
	case MainDifficultyDontKnow, MainDifficultyNoTime, MainDifficultyCompulsion, MainDifficultyNoResults, MainDifficultyInconsistency:
		return true
	default:
		return false
	}
}

type AIInterest string

const (
	AIInterestYes     AIInterest = "yes"
	AIInterestMaybe   AIInterest = "maybe"
	AIInterestNotMuch AIInterest = "not_much"
)

func (a AIInterest) IsValid() bool {
	return a == AIInterestYes || a == AIInterestMaybe || a == AIInterestNotMuch
}

// Answers is the full set of quiz answers. Only the embedded calculator
// answers influence the estimate.
type Answers struct {
	calculator.QuizAnswers
	Name           string         `json:"name"`
	DietRoutine    DietRoutine    `json:"dietRoutine"`
	MealsPerDay    MealsPerDay    `json:"mealsPerDay"`
	MainDifficulty MainDifficulty `json:"mainDifficulty"`
	AIInterest     AIInterest     `json:"aiInterest"`
}

func (a Answers) Validate() error {
	if a.Name == "" {
		return &calculator.InvalidInputError{Field: "name", Reason: "must not be empty"}
	}
	if err := a.QuizAnswers.Validate(); err != nil {
		return err
	}
	if !a.DietRoutine.IsValid() {
		return &calculator.InvalidInputError{Field: "dietRoutine", Reason: fmt.Sprintf("unknown value [%s]", a.DietRoutine)}
	}
	if !a.MealsPerDay.IsValid() {
		return &calculator.InvalidInputError{Field: "mealsPerDay", Reason: fmt.Sprintf("unknown value [%s]", a.MealsPerDay)}
	}
	if !a.MainDifficulty.IsValid() {
		return &calculator.InvalidInputError{Field: "mainDifficulty", Reason: fmt.Sprintf("unknown value [%s]", a.MainDifficulty)}
	}
	if !a.AIInterest.IsValid() {
		return &calculator.InvalidInputError{Field: "aiInterest", Reason: fmt.Sprintf("unknown value [%s]", a.AIInterest)}
	}
	return nil
}

type UserProfile struct {
	Answers
	EstimatedCalories int                  `json:"estimatedCalories"`
	CompletedQuiz     bool                 `json:"completedQuiz"`
	QuizCompletedAt   time.Time            `json:"quizCompletedAt"`
	WeightDifference  float64              `json:"weightDifference"`
	GoalType          calculator.GoalType  `json:"goalType"`
	Intensity         calculator.Intensity `json:"intensity"`
}

// NewUserProfile derives the profile of a finished quiz.
func NewUserProfile(answers Answers, estimatedCalories int, completedAt time.Time) UserProfile {
	return UserProfile{
		Answers:           answers,
		EstimatedCalories: estimatedCalories,
		CompletedQuiz:     true,
		QuizCompletedAt:   completedAt,
		WeightDifference:  answers.WeightDifference(),
		GoalType:          calculator.DetermineGoalType(answers.Weight, answers.TargetWeight),
		Intensity:         calculator.CalculateIntensity(answers.Weight, answers.TargetWeight),
	}
}

type Goals struct {
	CaloriesGoal int `json:"caloriesGoal"`
	ProteinGoal  int `json:"proteinGoal"`
	CarbsGoal    int `json:"carbsGoal"`
	FatGoal      int `json:"fatGoal"`
}

// DefaultGoals are used until the user completes the quiz or sets goals.
func DefaultGoals() Goals {
	return Goals{
		CaloriesGoal: 2000,
		ProteinGoal:  150,
		CarbsGoal:    250,
		FatGoal:      65,
	}
}

func GoalsFor(estimatedCalories int) Goals {
	return Goals(calculator.DeriveMacroGoals(estimatedCalories))
}

func (g Goals) Validate() error {
	if g.CaloriesGoal <= 0 {
		return &calculator.InvalidInputError{Field: "caloriesGoal", Reason: fmt.Sprintf("must be positive, got %d", g.CaloriesGoal)}
	}
	if g.ProteinGoal < 0 || g.CarbsGoal < 0 || g.FatGoal < 0 {
		return &calculator.InvalidInputError{Field: "goals", Reason: "macro goals must not be negative"}
	}
	return nil
}
