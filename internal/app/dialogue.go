package app

import (
	"strings"

	"realestate_chatbot/internal/domain"
)

const kolkata = "kolkata"

// Engine answers a single chat message. It keeps no per-conversation
// state, so one Engine serves all requests concurrently.
type Engine struct {
	classifier *Classifier
	renderer   *Renderer
	estimator  *Estimator
}

func NewEngine(c *Classifier, r *Renderer, e *Estimator) *Engine {
	return &Engine{classifier: c, renderer: r, estimator: e}
}

// NewDefaultEngine wires an Engine over the given price table with the
// system clock.
func NewDefaultEngine(table domain.CityPriceTable) *Engine {
	return NewEngine(NewClassifier(), NewRenderer(), NewEstimator(NewResolver(table), nil))
}

// Handle classifies msg, renders the reply and, when details are given,
// appends a valuation. Blank messages skip classification but are still
// valued. Invalid details fail the whole call with domain.ErrInvalidInput.
func (e *Engine) Handle(msg string, details *domain.PropertyDetails) (domain.Reply, error) {
	intent := domain.Intent{Kind: domain.IntentEmpty}
	if strings.TrimSpace(msg) != "" {
		intent = e.intentFor(msg)
	}
	reply := domain.Reply{Text: e.renderer.Render(intent), Intent: intent}

	if details != nil {
		v, err := e.estimator.Estimate(*details)
		if err != nil {
			return domain.Reply{}, err
		}
		reply.Prediction = &v
		reply.Text += "\n\nBased on the provided details, I estimate the property value to be approximately " + FormatINR(v) + "."
	}
	return reply, nil
}

// intentFor applies the kolkata override ahead of the normal cascade.
func (e *Engine) intentFor(msg string) domain.Intent {
	if strings.EqualFold(msg, kolkata) {
		return domain.CityInvestment(kolkata)
	}
	if city, ok := e.classifier.MentionedCity(msg); ok && city == kolkata {
		return domain.CityInvestment(kolkata)
	}
	return e.classifier.Classify(msg)
}
