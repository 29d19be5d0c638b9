package bmi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitnote/local-app/pkg/log"
	"fitnote/local-app/pkg/model"
)

func TestCalculate(t *testing.T) {
	e := NewEngine(log.NewNop())

	tests := []struct {
		name           string
		height         string
		weight         string
		wantBMI        string
		classification string
	}{
		{"normal band", "1.75", "70", "22.86", "Normal"},
		{"rounds up into normal", "1.75", "56.65", "18.50", "Normal"},
		{"just under normal", "1.75", "56.64", "18.49", "Underweight"},
		{"overweight", "1.80", "85", "26.23", "Overweight"},
		{"comma decimals", "1,75", "70,5", "23.02", "Normal"},
		{"whitespace trimmed", " 1.75 ", " 70 ", "22.86", "Normal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := e.Calculate(tt.height, tt.weight)
			require.True(t, out.Success)

			result, ok := out.Data.(Result)
			require.True(t, ok)
			assert.Equal(t, tt.wantBMI, result.BMI)
			assert.Equal(t, tt.classification, result.Classification)
		})
	}
}

func TestCalculateInvalidInput(t *testing.T) {
	e := NewEngine(log.NewNop())

	tests := []struct {
		name   string
		height string
		weight string
	}{
		{"empty height", "", "70"},
		{"empty weight", "1.75", ""},
		{"non-numeric height", "tall", "70"},
		{"non-numeric weight", "1.75", "heavy"},
		{"zero height", "0", "70"},
		{"negative weight", "1.75", "-70"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := e.Calculate(tt.height, tt.weight)
			require.False(t, out.Success)
			assert.Equal(t, model.KindInvalidInput, out.Kind)
		})
	}
}

func TestClassifyBands(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{10, "Underweight"},
		{18.49, "Underweight"},
		{18.5, "Normal"},
		{24.99, "Normal"},
		{25, "Overweight"},
		{29.99, "Overweight"},
		{30, "Obesity Class I"},
		{34.99, "Obesity Class I"},
		{35, "Obesity Class II"},
		{39.99, "Obesity Class II"},
		{40, "Obesity Class III"},
		{55, "Obesity Class III"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.value), "value %v", tt.value)
	}
}
