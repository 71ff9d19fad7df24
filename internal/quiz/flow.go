package quiz

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/2beens/fitaipro/internal/calculator"
	"github.com/2beens/fitaipro/internal/profile"
)

var (
	ErrWrongStep       = errors.New("answer does not match current quiz step")
	ErrQuizNotFinished = errors.New("quiz not finished")
)

type Step string

const (
	StepWelcome        Step = "welcome"
	StepName           Step = "name"
	StepAge            Step = "age"
	StepGender         Step = "gender"
	StepWeight         Step = "weight"
	StepTargetWeight   Step = "targetWeight"
	StepHeight         Step = "height"
	StepDietRoutine    Step = "dietRoutine"
	StepMealsPerDay    Step = "mealsPerDay"
	StepMainDifficulty Step = "mainDifficulty"
	StepMainGoal       Step = "mainGoal"
	StepAIInterest     Step = "aiInterest"
	StepLoading        Step = "loading"
	StepResult         Step = "result"
	StepUnlock         Step = "unlock"
)

var steps = []Step{
	StepWelcome,
	StepName,
	StepAge,
	StepGender,
	StepWeight,
	StepTargetWeight,
	StepHeight,
	StepDietRoutine,
	StepMealsPerDay,
	StepMainDifficulty,
	StepMainGoal,
	StepAIInterest,
	StepLoading,
	StepResult,
	StepUnlock,
}

const (
	minAge, maxAge       = 10, 120
	minWeight, maxWeight = 30.0, 300.0
	minHeight, maxHeight = 100.0, 250.0
)

// Index is the position of the step in the quiz, -1 for unknown steps.
func (s Step) Index() int {
	for i, step := range steps {
		if step == s {
			return i
		}
	}
	return -1
}

func (s Step) next() Step {
	i := s.Index()
	if i < 0 || i == len(steps)-1 {
		return s
	}
	return steps[i+1]
}

// Flow walks the quiz steps in order, collecting one answer per step.
// Steps from loading onwards are not answered by the user.
type Flow struct {
	Step    Step            `json:"step"`
	Answers profile.Answers `json:"answers"`
}

func NewFlow() Flow {
	return Flow{Step: StepWelcome}
}

// Answer validates raw as the answer to step, records it and advances.
// step must be the current step.
func (f *Flow) Answer(step Step, raw string) error {
	if step != f.Step || step.Index() >= StepLoading.Index() {
		return fmt.Errorf("%w: expected %s, got %s", ErrWrongStep, f.Step, step)
	}

	raw = strings.TrimSpace(raw)
	a := &f.Answers
	switch step {
	case StepWelcome:
	case StepName:
		if raw == "" {
			return invalidAnswer(step, "must not be empty")
		}
		a.Name = raw
	case StepAge:
		age, err := strconv.Atoi(raw)
		if err != nil {
			return invalidAnswer(step, "not a whole number")
		}
		if age < minAge || age > maxAge {
			return invalidAnswer(step, fmt.Sprintf("must be between %d and %d", minAge, maxAge))
		}
		a.Age = age
	case StepGender:
		g := calculator.Gender(raw)
		if !g.IsValid() {
			return invalidAnswer(step, fmt.Sprintf("unknown value [%s]", raw))
		}
		a.Gender = g
	case StepWeight, StepTargetWeight:
		v, err := parseInRange(raw, minWeight, maxWeight)
		if err != nil {
			return invalidAnswer(step, err.Error())
		}
		if step == StepWeight {
			a.Weight = v
		} else {
			a.TargetWeight = v
		}
	case StepHeight:
		v, err := parseInRange(raw, minHeight, maxHeight)
		if err != nil {
			return invalidAnswer(step, err.Error())
		}
		a.Height = v
	case StepDietRoutine:
		v := profile.DietRoutine(raw)
		if !v.IsValid() {
			return invalidAnswer(step, fmt.Sprintf("unknown value [%s]", raw))
		}
		a.DietRoutine = v
	case StepMealsPerDay:
		v := profile.MealsPerDay(raw)
		if !v.IsValid() {
			return invalidAnswer(step, fmt.Sprintf("unknown value [%s]", raw))
		}
		a.MealsPerDay = v
	case StepMainDifficulty:
		v := profile.MainDifficulty(raw)
		if !v.IsValid() {
			return invalidAnswer(step, fmt.Sprintf("unknown value [%s]", raw))
		}
		a.MainDifficulty = v
	case StepMainGoal:
		v := calculator.MainGoal(raw)
		if !v.IsValid() {
			return invalidAnswer(step, fmt.Sprintf("unknown value [%s]", raw))
		}
		a.MainGoal = v
	case StepAIInterest:
		v := profile.AIInterest(raw)
		if !v.IsValid() {
			return invalidAnswer(step, fmt.Sprintf("unknown value [%s]", raw))
		}
		a.AIInterest = v
	default:
		return fmt.Errorf("%w: unknown step %s", ErrWrongStep, step)
	}

	f.Step = step.next()
	return nil
}

// Answered reports whether every question has been answered.
func (f *Flow) Answered() bool {
	return f.Step.Index() >= StepLoading.Index()
}

// Finish moves an answered quiz to the result step.
func (f *Flow) Finish() error {
	if f.Step != StepLoading {
		return fmt.Errorf("%w: at step %s", ErrQuizNotFinished, f.Step)
	}
	f.Step = StepResult
	return nil
}

// Unlock moves a finished quiz to the unlock step. Unlocking twice is allowed.
func (f *Flow) Unlock() error {
	if f.Step != StepResult && f.Step != StepUnlock {
		return fmt.Errorf("%w: at step %s", ErrQuizNotFinished, f.Step)
	}
	f.Step = StepUnlock
	return nil
}

// Progress is the share of the quiz done, in percent.
func (f *Flow) Progress() int {
	return int(math.Round(float64(f.Step.Index()) / float64(len(steps)-1) * 100))
}

func parseInRange(raw string, lo, hi float64) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New("not a number")
	}
	// NaN fails both comparisons
	if !(v >= lo && v <= hi) {
		return 0, fmt.Errorf("must be between %g and %g", lo, hi)
	}
	return v, nil
}

func invalidAnswer(step Step, reason string) error {
	return &calculator.InvalidInputError{Field: string(step), Reason: reason}
}
