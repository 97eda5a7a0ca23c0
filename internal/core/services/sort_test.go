package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/radix-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

// mockRunStore is a testify mock of driven.RunStore.
type mockRunStore struct {
	mock.Mock
}

func (m *mockRunStore) Save(ctx context.Context, run *domain.SortRun) error {
	return m.Called(ctx, run).Error(0)
}

func (m *mockRunStore) Get(ctx context.Context, id string) (*domain.SortRun, error) {
	args := m.Called(ctx, id)
	run, _ := args.Get(0).(*domain.SortRun)
	return run, args.Error(1)
}

func (m *mockRunStore) List(ctx context.Context, limit int) ([]domain.SortRun, error) {
	args := m.Called(ctx, limit)
	runs, _ := args.Get(0).([]domain.SortRun)
	return runs, args.Error(1)
}

func (m *mockRunStore) Prune(ctx context.Context, keep int) error {
	return m.Called(ctx, keep).Error(0)
}

func (m *mockRunStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRunStore) Clear(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var sampleValues = []int64{170, 45, 75, 90, 802, 24, 2, 66}

func newTestSortService() (*SortService, *memory.RunStore, *SettingsService) {
	runs := memory.NewRunStore()
	settings := NewSettingsService(memory.NewConfigStore())
	return NewSortService(runs, settings), runs, settings
}

func TestSortService_Sort(t *testing.T) {
	service, runs, _ := newTestSortService()
	input := append([]int64(nil), sampleValues...)

	run, err := service.Sort(context.Background(), domain.SortRequest{Values: input, Source: "args"})

	require.NoError(t, err)
	assert.Equal(t, []int64{2, 24, 45, 66, 75, 90, 170, 802}, run.Output)
	assert.Equal(t, sampleValues, run.Input)
	assert.Equal(t, int64(802), run.Max)
	assert.Equal(t, 3, run.Passes)
	assert.Equal(t, "args", run.Source)
	assert.NotEmpty(t, run.ID)
	assert.Empty(t, run.Trace)

	// The request slice is left untouched.
	assert.Equal(t, sampleValues, input)

	stored, err := runs.Get(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.Output, stored.Output)
}

func TestSortService_Sort_Trace(t *testing.T) {
	service, _, _ := newTestSortService()

	run, err := service.Sort(context.Background(), domain.SortRequest{
		Values: sampleValues,
		Trace:  true,
	})

	require.NoError(t, err)
	require.Len(t, run.Trace, 3)
	assert.Equal(t, 3, run.Passes)
	assert.Equal(t, []int64{1, 10, 100}, []int64{run.Trace[0].Exponent, run.Trace[1].Exponent, run.Trace[2].Exponent})
	assert.Equal(t, run.Output, run.Trace[2].Snapshot)
}

func TestSortService_Sort_SingleZero(t *testing.T) {
	service, _, _ := newTestSortService()

	run, err := service.Sort(context.Background(), domain.SortRequest{Values: []int64{0}})

	require.NoError(t, err)
	assert.Equal(t, []int64{0}, run.Output)
	assert.Equal(t, 1, run.Passes)
}

func TestSortService_Sort_Errors(t *testing.T) {
	tests := []struct {
		name   string
		values []int64
		want   error
	}{
		{"empty", nil, domain.ErrEmptyInput},
		{"negative", []int64{3, -1, 2}, domain.ErrNegativeValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, runs, _ := newTestSortService()

			run, err := service.Sort(context.Background(), domain.SortRequest{Values: tt.values})

			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, run)

			history, err := runs.List(context.Background(), 0)
			require.NoError(t, err)
			assert.Empty(t, history)
		})
	}
}

func TestSortService_Sort_NegativeReportsIndex(t *testing.T) {
	service, _, _ := newTestSortService()

	_, err := service.Sort(context.Background(), domain.SortRequest{Values: []int64{3, -1, 2}})

	var valueErr *domain.ValueError
	require.ErrorAs(t, err, &valueErr)
	assert.Equal(t, 1, valueErr.Index)
	assert.Equal(t, int64(-1), valueErr.Value)
}

func TestSortService_Sort_CancelledContext(t *testing.T) {
	service, _, _ := newTestSortService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Sort(ctx, domain.SortRequest{Values: sampleValues})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestSortService_Sort_SkipHistory(t *testing.T) {
	service, runs, _ := newTestSortService()

	_, err := service.Sort(context.Background(), domain.SortRequest{Values: sampleValues, SkipHistory: true})
	require.NoError(t, err)

	history, err := runs.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSortService_Sort_HistoryDisabled(t *testing.T) {
	service, runs, settings := newTestSortService()
	require.NoError(t, settings.SetHistoryEnabled(false))

	_, err := service.Sort(context.Background(), domain.SortRequest{Values: sampleValues})
	require.NoError(t, err)

	history, err := runs.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSortService_Sort_PrunesToLimit(t *testing.T) {
	service, runs, settings := newTestSortService()
	require.NoError(t, settings.SetHistoryLimit(2))

	for i := range 4 {
		_, err := service.Sort(context.Background(), domain.SortRequest{Values: []int64{int64(i)}})
		require.NoError(t, err)
	}

	history, err := runs.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, []int64{3}, history[0].Output)
	assert.Equal(t, []int64{2}, history[1].Output)
}

func TestSortService_Sort_StoreFailureIsNotFatal(t *testing.T) {
	store := new(mockRunStore)
	store.On("Save", mock.Anything, mock.AnythingOfType("*domain.SortRun")).Return(errors.New("disk full"))
	service := NewSortService(store, nil)

	run, err := service.Sort(context.Background(), domain.SortRequest{Values: sampleValues})

	require.NoError(t, err)
	assert.Equal(t, []int64{2, 24, 45, 66, 75, 90, 170, 802}, run.Output)
	store.AssertExpectations(t)
	store.AssertNotCalled(t, "Prune", mock.Anything, mock.Anything)
}

func TestSortService_Sort_PrunesWithDefaultLimit(t *testing.T) {
	store := new(mockRunStore)
	store.On("Save", mock.Anything, mock.Anything).Return(nil)
	store.On("Prune", mock.Anything, domain.DefaultAppSettings().History.Limit).Return(nil)
	service := NewSortService(store, nil)

	_, err := service.Sort(context.Background(), domain.SortRequest{Values: sampleValues})

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestSortService_Sort_UsesClock(t *testing.T) {
	service, _, _ := newTestSortService()
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	run, err := service.Sort(context.Background(), domain.SortRequest{Values: sampleValues})

	require.NoError(t, err)
	assert.Equal(t, fixed, run.CreatedAt)
}

func TestSortService_SortRecords_Stable(t *testing.T) {
	service, _, _ := newTestSortService()
	records := []domain.Record{
		{Key: 3, Payload: "a"},
		{Key: 1, Payload: "b"},
		{Key: 3, Payload: "c"},
		{Key: 1, Payload: "d"},
		{Key: 0, Payload: "e"},
	}

	sorted, err := service.SortRecords(context.Background(), records)

	require.NoError(t, err)
	assert.Equal(t, []domain.Record{
		{Key: 0, Payload: "e"},
		{Key: 1, Payload: "b"},
		{Key: 1, Payload: "d"},
		{Key: 3, Payload: "a"},
		{Key: 3, Payload: "c"},
	}, sorted)
	assert.Equal(t, "a", records[0].Payload)
}

func TestSortService_SortRecords_Errors(t *testing.T) {
	service, _, _ := newTestSortService()

	_, err := service.SortRecords(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrEmptyInput)

	_, err = service.SortRecords(context.Background(), []domain.Record{{Key: -5}})
	assert.ErrorIs(t, err, domain.ErrNegativeValue)
}

func TestSortService_HistoryAndRun(t *testing.T) {
	service, _, _ := newTestSortService()
	ctx := context.Background()

	first, err := service.Sort(ctx, domain.SortRequest{Values: []int64{2, 1}})
	require.NoError(t, err)
	second, err := service.Sort(ctx, domain.SortRequest{Values: []int64{9, 8}})
	require.NoError(t, err)

	history, err := service.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)

	got, err := service.Run(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, got.Output)

	_, err = service.Run(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, service.ClearHistory(ctx))
	history, err = service.History(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSortService_NoStore(t *testing.T) {
	service := NewSortService(nil, nil)
	ctx := context.Background()

	run, err := service.Sort(ctx, domain.SortRequest{Values: []int64{1, 0}})
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1}, run.Output)

	history, err := service.History(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, history)

	_, err = service.Run(ctx, run.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, service.ClearHistory(ctx))
}

func TestSortService_History_StoreError(t *testing.T) {
	store := new(mockRunStore)
	store.On("List", mock.Anything, 5).Return(nil, errors.New("boom"))
	store.On("Clear", mock.Anything).Return(errors.New("locked"))
	service := NewSortService(store, nil)

	_, err := service.History(context.Background(), 5)
	assert.ErrorContains(t, err, "listing runs")

	err = service.ClearHistory(context.Background())
	assert.ErrorContains(t, err, "clearing runs")
	store.AssertExpectations(t)
}
