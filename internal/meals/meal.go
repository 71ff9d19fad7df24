package meals

import (
	"fmt"
	"time"
)

type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

func (mt MealType) IsValid() bool {
	switch mt {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	default:
		return false
	}
}

// Label returns the display label for the fixed pt-BR locale.
// Unknown types are returned as they are.
func (mt MealType) Label() string {
	switch mt {
	case MealTypeBreakfast:
		return "Café da Manhã"
	case MealTypeLunch:
		return "Almoço"
	case MealTypeDinner:
		return "Jantar"
	case MealTypeSnack:
		return "Lanche"
	default:
		return string(mt)
	}
}

// CaptureMethod can be one of:
//   - photo
//   - barcode
//   - voice
//   - manual
type CaptureMethod string

const (
	CaptureMethodPhoto   CaptureMethod = "photo"
	CaptureMethodBarcode CaptureMethod = "barcode"
	CaptureMethodVoice   CaptureMethod = "voice"
	CaptureMethodManual  CaptureMethod = "manual"
)

func (cm CaptureMethod) String() string {
	return string(cm)
}

func (cm CaptureMethod) IsValid() bool {
	switch cm {
	case CaptureMethodPhoto, CaptureMethodBarcode, CaptureMethodVoice, CaptureMethodManual:
		return true
	default:
		return false
	}
}

// Meal macros are in grams, calories in kcal.
type Meal struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Type      MealType      `json:"type"`
	Calories  int           `json:"calories"`
	Protein   int           `json:"protein"`
	Carbs     int           `json:"carbs"`
	Fat       int           `json:"fat"`
	Timestamp time.Time     `json:"timestamp"`
	ImageURL  string        `json:"imageUrl,omitempty"`
	Method    CaptureMethod `json:"method"`
}

func (m Meal) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("%w: meal name empty", ErrInvalidMeal)
	}
	if !m.Type.IsValid() {
		return fmt.Errorf("%w: unknown meal type [%s]", ErrInvalidMeal, m.Type)
	}
	if m.Calories < 0 || m.Protein < 0 || m.Carbs < 0 || m.Fat < 0 {
		return fmt.Errorf("%w: negative calories or macros", ErrInvalidMeal)
	}
	return nil
}

// SameDay reports whether the meal was logged on the calendar day of day, in day's location.
func (m Meal) SameDay(day time.Time) bool {
	y1, m1, d1 := m.Timestamp.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
