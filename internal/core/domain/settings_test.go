package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, OutputFormatText, s.Output.Format)
	assert.Equal(t, " ", s.Output.Separator)
	assert.True(t, s.History.Enabled)
	assert.Equal(t, 20, s.History.Limit)
	assert.False(t, s.Trace.Enabled)
	assert.NoError(t, s.Validate())
}

func TestAppSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(s *AppSettings)
		wantErr bool
	}{
		{"defaults", func(_ *AppSettings) {}, false},
		{"json output", func(s *AppSettings) { s.Output.Format = OutputFormatJSON }, false},
		{"unknown output", func(s *AppSettings) { s.Output.Format = "xml" }, true},
		{"empty separator", func(s *AppSettings) { s.Output.Separator = "" }, true},
		{"zero limit", func(s *AppSettings) { s.History.Limit = 0 }, true},
		{"negative limit", func(s *AppSettings) { s.History.Limit = -4 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultAppSettings()
			tt.modify(&s)

			err := s.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
