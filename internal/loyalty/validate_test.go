package loyalty

import (
	"testing"

	"puntos-store/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateIdentity(t *testing.T) {
	tests := []struct {
		name     string
		identity string
		wantErr  bool
	}{
		{"valid six digits", "123456", false},
		{"valid twelve digits", "123456789012", false},
		{"letters mixed in", "abc123", true},
		{"too short", "12345", true},
		{"too long", "1234567890123", true},
		{"empty", "", true},
		{"spaces", "123 456", true},
		{"negative sign", "-123456", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentity(tt.identity)
			if tt.wantErr {
				assert.Equal(t, model.ErrInvalidIdentity, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDisplayName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain name", "Maria Lopez", false},
		{"accented letters", "José Gutiérrez Peña", false},
		{"trimmed to valid", "  Ana  ", false},
		{"minimum length", "Ana", false},
		{"too short", "Al", true},
		{"too short after trim", " A ", true},
		{"digits", "Maria2", true},
		{"punctuation", "O'Brien", true},
		{"empty", "", true},
		{"fifty letters", "Maximiliano Alejandro Fernandez De La Cruz Morales", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDisplayName(tt.input)
			if tt.wantErr {
				assert.Equal(t, model.ErrInvalidDisplayName, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseRedemption(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		available int
		want      int
		wantErr   error
	}{
		{"zero", "0", 0, 0, nil},
		{"full balance", "50", 50, 50, nil},
		{"partial", "50", 100, 50, nil},
		{"surrounding whitespace", " 10 ", 100, 10, nil},
		{"not a number", "abc", 100, 0, model.ErrPointsNotANumber},
		{"empty", "", 100, 0, model.ErrPointsNotANumber},
		{"decimal", "1.5", 100, 0, model.ErrPointsNotANumber},
		{"negative", "-1", 100, 0, model.ErrNegativePoints},
		{"exceeds balance", "2600", 10, 0, model.ErrInsufficientBalance},
		{"one over balance", "11", 10, 0, model.ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRedemption(tt.raw, tt.available)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
