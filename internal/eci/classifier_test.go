package eci

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tsuspe/ediwin-parser/internal/classify"
)

func TestLineClassifier(t *testing.T) {
	var c LineClassifier

	tests := []struct {
		line string
		want classify.LineKind
	}{
		{"", classify.Noise},
		{"   ", classify.Noise},
		{"WOMAN FIESTA", classify.Noise},
		{"COLECCION WOMAN FIESTA 2025", classify.Noise},
		{sampleDetailLine, classify.Detail},
		{"47D262G 983 PRINT NEGRO003 3", classify.ModelColor},
		{"PUNTO ASIM FALDA", classify.Continuation},
		{"Nº Pedido 74245201", classify.Continuation},
		// Short leading code: the model/color shape needs 5+ characters.
		{"47D 983 PRINT", classify.Continuation},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Classify(tt.line), "line %q", tt.line)
	}
}

func TestLineClassifierCustomMarkers(t *testing.T) {
	c := LineClassifier{NoiseMarkers: []string{"HOMBRE BASICO"}}

	assert.Equal(t, classify.Noise, c.Classify("HOMBRE BASICO"))
	// Overriding the markers replaces the default set.
	assert.Equal(t, classify.Continuation, c.Classify("WOMAN FIESTA"))
}
