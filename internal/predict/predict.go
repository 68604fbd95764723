// Package predict resolves and runs the per-mission classifier. Callers
// depend only on the Predictor interface; whether a trained artifact loaded
// or the constant fallback is in play is invisible past Resolve.
package predict

import (
	"encoding/json"
	"fmt"
)

// Predictor emits one numeric class code per input row, in row order.
type Predictor interface {
	Predict(rows [][]float64) ([]float64, error)
}

// Constant ignores its input and emits a fixed code for every row. It backs
// the never-hard-fail policy for missing or unreadable model artifacts.
type Constant struct {
	Value float64
}

func (c Constant) Predict(rows [][]float64) ([]float64, error) {
	out := make([]float64, len(rows))
	for i := range out {
		out[i] = c.Value
	}
	return out, nil
}

// LinearModel is a trained linear classifier exported to JSON: one weight
// vector and bias per class, argmax over class scores, class codes taken
// from Classes (or the class index when Classes is empty).
type LinearModel struct {
	Type     string      `json:"type"`
	Features int         `json:"features"`
	Classes  []float64   `json:"classes,omitempty"`
	Weights  [][]float64 `json:"weights"`
	Bias     []float64   `json:"bias"`
}

// UnmarshalModel decodes and validates an exported model. Anything that is
// not a well-formed linear export (a pickle byte stream included) is an
// error; the resolver turns that into a fallback, not a failure.
func UnmarshalModel(data []byte) (*LinearModel, error) {
	var m LinearModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if m.Type != "linear" {
		return nil, fmt.Errorf("decode model: unsupported type %q", m.Type)
	}
	if len(m.Weights) == 0 {
		return nil, fmt.Errorf("decode model: no weight vectors")
	}
	if len(m.Bias) != len(m.Weights) {
		return nil, fmt.Errorf("decode model: %d bias terms for %d classes", len(m.Bias), len(m.Weights))
	}
	if len(m.Classes) > 0 && len(m.Classes) != len(m.Weights) {
		return nil, fmt.Errorf("decode model: %d class codes for %d classes", len(m.Classes), len(m.Weights))
	}
	for _, w := range m.Weights {
		if len(w) != m.Features {
			return nil, fmt.Errorf("decode model: weight vector width %d, want %d", len(w), m.Features)
		}
	}
	return &m, nil
}

func (m *LinearModel) Predict(rows [][]float64) ([]float64, error) {
	out := make([]float64, len(rows))
	for i, row := range rows {
		if len(row) != m.Features {
			return nil, fmt.Errorf("predict: row %d has %d features, model expects %d", i, len(row), m.Features)
		}
		best, bestScore := 0, 0.0
		for c, w := range m.Weights {
			score := m.Bias[c]
			for j, x := range row {
				score += w[j] * x
			}
			if c == 0 || score > bestScore {
				best, bestScore = c, score
			}
		}
		if len(m.Classes) > 0 {
			out[i] = m.Classes[best]
		} else {
			out[i] = float64(best)
		}
	}
	return out, nil
}
