package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 10.13, RoundWithTwoDecimalPlace(10.126))
	assert.Equal(t, 15000.0, RoundWithTwoDecimalPlace(15000))
}

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback int
		want     int
	}{
		{name: "valor válido", value: "5", fallback: 10, want: 5},
		{name: "vazio usa fallback", value: "", fallback: 10, want: 10},
		{name: "texto usa fallback", value: "abc", fallback: 10, want: 10},
		{name: "zero usa fallback", value: "0", fallback: 10, want: 10},
		{name: "negativo usa fallback", value: "-3", fallback: 10, want: 10},
		{name: "espaços são ignorados", value: " 7 ", fallback: 10, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePositiveInt(tt.value, tt.fallback))
		})
	}
}
