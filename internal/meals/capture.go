package meals

import (
	"context"
	"fmt"
	"time"
)

// CaptureRequest carries what the client sent along with a capture.
// Only the manual source reads the meal fields; the recognizers read the media refs.
type CaptureRequest struct {
	Name     string   `json:"name"`
	Type     MealType `json:"type"`
	Calories int      `json:"calories"`
	Protein  int      `json:"protein"`
	Carbs    int      `json:"carbs"`
	Fat      int      `json:"fat"`
	ImageURL string   `json:"imageUrl"`
	Barcode  string   `json:"barcode"`
}

// CaptureSource turns a capture request into a meal draft (no id, no timestamp).
type CaptureSource interface {
	Method() CaptureMethod
	Capture(ctx context.Context, req CaptureRequest) (*Meal, error)
}

// PhotoSource stands in for food photo recognition and always recognizes the same dish.
type PhotoSource struct{}

func (PhotoSource) Method() CaptureMethod { return CaptureMethodPhoto }

func (PhotoSource) Capture(_ context.Context, req CaptureRequest) (*Meal, error) {
	return &Meal{
		Name:     "Arroz com Feijão",
		Type:     MealTypeLunch,
		Calories: 450,
		Protein:  15,
		Carbs:    75,
		Fat:      8,
		ImageURL: req.ImageURL,
		Method:   CaptureMethodPhoto,
	}, nil
}

// BarcodeSource stands in for a product database lookup.
type BarcodeSource struct{}

func (BarcodeSource) Method() CaptureMethod { return CaptureMethodBarcode }

func (BarcodeSource) Capture(context.Context, CaptureRequest) (*Meal, error) {
	return &Meal{
		Name:     "Pão Francês",
		Type:     MealTypeBreakfast,
		Calories: 150,
		Protein:  5,
		Carbs:    30,
		Fat:      2,
		Method:   CaptureMethodBarcode,
	}, nil
}

// VoiceSource stands in for speech recognition. It "listens" for listenFor before
// producing its draft, and gives up when ctx is done.
type VoiceSource struct {
	listenFor time.Duration
}

func NewVoiceSource(listenFor time.Duration) *VoiceSource {
	return &VoiceSource{
		listenFor: listenFor,
	}
}

func (*VoiceSource) Method() CaptureMethod { return CaptureMethodVoice }

func (s *VoiceSource) Capture(ctx context.Context, _ CaptureRequest) (*Meal, error) {
	timer := time.NewTimer(s.listenFor)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("voice capture: %w", ctx.Err())
	case <-timer.C:
	}

	return &Meal{
		Name:     "Frango Grelhado com Salada",
		Type:     MealTypeDinner,
		Calories: 380,
		Protein:  45,
		Carbs:    20,
		Fat:      12,
		Method:   CaptureMethodVoice,
	}, nil
}

// ManualSource takes the meal as typed in by the user.
type ManualSource struct{}

func (ManualSource) Method() CaptureMethod { return CaptureMethodManual }

func (ManualSource) Capture(_ context.Context, req CaptureRequest) (*Meal, error) {
	meal := &Meal{
		Name:     req.Name,
		Type:     req.Type,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		ImageURL: req.ImageURL,
		Method:   CaptureMethodManual,
	}
	if err := meal.Validate(); err != nil {
		return nil, err
	}
	return meal, nil
}

func DefaultCaptureSources(voiceListeningDelay time.Duration) []CaptureSource {
	return []CaptureSource{
		PhotoSource{},
		BarcodeSource{},
		NewVoiceSource(voiceListeningDelay),
		ManualSource{},
	}
}
