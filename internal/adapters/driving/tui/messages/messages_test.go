package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view     ViewType
		expected string
	}{
		{ViewInput, "input"},
		{ViewPasses, "passes"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

func TestSortCompleted(t *testing.T) {
	run := &domain.SortRun{ID: "run-1"}
	msg := SortCompleted{Run: run}

	assert.Same(t, run, msg.Run)
	assert.NoError(t, msg.Err)

	failed := SortCompleted{Err: errors.New("failed")}
	assert.Nil(t, failed.Run)
	assert.EqualError(t, failed.Err, "failed")
}
