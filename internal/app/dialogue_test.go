package app_test

import (
	"errors"
	"strings"
	"testing"

	"realestate_chatbot/internal/app"
	"realestate_chatbot/internal/domain"
)

func newEngine() *app.Engine {
	return app.NewEngine(app.NewClassifier(), app.NewRenderer(), newEstimator(2026))
}

func TestHandle_EmptyMessage(t *testing.T) {
	e := newEngine()
	for _, msg := range []string{"", "   ", "\n\t"} {
		r, err := e.Handle(msg, nil)
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if r.Text != "I didn't receive a message. How can I help you with real estate in India today?" {
			t.Fatalf("unexpected reply for %q: %s", msg, r.Text)
		}
		if r.Intent.Kind != domain.IntentEmpty || r.Prediction != nil {
			t.Fatalf("unexpected reply meta: %+v", r)
		}
	}
}

func TestHandle_EmptyMessageStillValued(t *testing.T) {
	e := newEngine()
	r, err := e.Handle("", &domain.PropertyDetails{Location: "Bandra, Mumbai", SquareFootage: ptr(1000.0)})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if r.Intent.Kind != domain.IntentEmpty || r.Prediction == nil {
		t.Fatalf("unexpected reply meta: %+v", r)
	}
	if !strings.HasPrefix(r.Text, "I didn't receive a message.") ||
		!strings.HasSuffix(r.Text, "approximately "+app.FormatINR(*r.Prediction)+".") {
		t.Fatalf("unexpected text: %q", r.Text)
	}

	_, err = e.Handle("   ", &domain.PropertyDetails{Location: "x", SquareFootage: ptr(0.0)})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank message with bad details, got %v", err)
	}
}

func TestHandle_KolkataOverride(t *testing.T) {
	e := newEngine()
	for _, msg := range []string{"kolkata", "KOLKATA", " Kolkata!"} {
		r, err := e.Handle(msg, nil)
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if r.Intent != domain.CityInvestment("kolkata") {
			t.Fatalf("%q: got intent %+v", msg, r.Intent)
		}
		if !strings.HasPrefix(r.Text, "🏢 *Investment Opportunities in Kolkata*") {
			t.Fatalf("%q: unexpected text %s", msg, r.Text)
		}
	}
}

func TestHandle_WithValuation(t *testing.T) {
	e := newEngine()
	r, err := e.Handle("hi", &domain.PropertyDetails{
		Location:           "Bandra, Mumbai",
		SquareFootage:      ptr(1000.0),
		Bedrooms:           ptr(2),
		Bathrooms:          ptr(2),
		YearBuilt:          ptr(2026),
		AdditionalFeatures: ptr("parking, furnished"),
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if r.Prediction == nil || *r.Prediction != 57620000 {
		t.Fatalf("prediction: %+v", r.Prediction)
	}
	want := "👋 Hello! How can I help you with your real estate queries today?\n\nBased on the provided details, I estimate the property value to be approximately ₹5,76,20,000."
	if r.Text != want {
		t.Fatalf("text:\n%s", r.Text)
	}
}

func TestHandle_InvalidDetailsPropagate(t *testing.T) {
	_, err := newEngine().Handle("what is the price", &domain.PropertyDetails{Location: "Pune"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestHandle_Idempotent(t *testing.T) {
	e := newEngine()
	d := &domain.PropertyDetails{Location: "Pune", SquareFootage: ptr(900.0)}
	for _, msg := range []string{"hi", "3", "Mumbai", "home loan interest rates", "what is the weather like today"} {
		a, errA := e.Handle(msg, d)
		b, errB := e.Handle(msg, d)
		if errA != nil || errB != nil {
			t.Fatalf("%q: errs %v %v", msg, errA, errB)
		}
		if a.Text != b.Text || *a.Prediction != *b.Prediction || a.Intent != b.Intent {
			t.Fatalf("%q: replies differ", msg)
		}
	}
}
