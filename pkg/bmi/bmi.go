// Package bmi implements the body-mass-index calculation and its
// classification bands.
package bmi

import (
	"context"
	"math"
	"strconv"
	"strings"

	"fitnote/local-app/pkg/log"
	"fitnote/local-app/pkg/model"
)

// Result carries a computed BMI: the two-decimal display value and its
// classification band.
type Result struct {
	BMI            string  `json:"bmi"`
	Value          float64 `json:"value"`
	Classification string  `json:"classification"`
}

// Engine computes and classifies BMI values. It holds no persisted state.
type Engine struct {
	logger *log.Logger
}

// NewEngine creates a new Engine instance.
func NewEngine(logger *log.Logger) *Engine {
	return &Engine{logger: logger}
}

// Calculate computes weight/height² from the raw form strings. Both comma
// and dot decimal separators are accepted. The value is rounded to two
// decimals and the rounded value is classified, so a reading displayed as
// 18.50 always lands in the Normal band.
func (e *Engine) Calculate(height, weight string) model.Outcome {
	h, errH := parseMeasure(height)
	w, errW := parseMeasure(weight)
	if errH != nil || errW != nil || h <= 0 || w <= 0 {
		e.logger.Warn(context.Background(), "Invalid BMI input", log.Fields{"height": height, "weight": weight})
		return model.Fail(model.KindInvalidInput, "height and weight must be valid positive numbers")
	}

	value := math.Round(w/(h*h)*100) / 100
	result := Result{
		BMI:            strconv.FormatFloat(value, 'f', 2, 64),
		Value:          value,
		Classification: Classify(value),
	}

	e.logger.Info(context.Background(), "BMI calculated", log.Fields{"bmi": result.BMI, "classification": result.Classification})
	return model.Ok("", result)
}

// Classify maps a BMI value onto the six half-open bands.
func Classify(value float64) string {
	switch {
	case value < 18.5:
		return "Underweight"
	case value < 25:
		return "Normal"
	case value < 30:
		return "Overweight"
	case value < 35:
		return "Obesity Class I"
	case value < 40:
		return "Obesity Class II"
	default:
		return "Obesity Class III"
	}
}

func parseMeasure(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	return strconv.ParseFloat(s, 64)
}
