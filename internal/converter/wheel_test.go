package converter

import (
	dto "spin_wheel/internal/api/dto/wheel"
	"spin_wheel/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToStatements(t *testing.T) {
	st, err := ToStatements(dto.SaveRequest{Statements: []string{"a", "b", "c"}})
	require.NoError(t, err)
	assert.Equal(t, model.Statements{"a", "b", "c"}, st)

	_, err = ToStatements(dto.SaveRequest{Statements: []string{"a", "b", "c", "d"}})
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = ToStatements(dto.SaveRequest{})
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestToSpinResponse(t *testing.T) {
	assert.Equal(t, dto.SpinResponse{Accepted: false}, ToSpinResponse(nil))

	res := ToSpinResponse(&model.SpinResult{SpinID: "id", Index: 2, RotationRad: 1.5, SettleDelay: 4 * time.Second})
	assert.True(t, res.Accepted)
	assert.Equal(t, 2, res.Index)
	assert.Equal(t, int64(4000), res.SettleDelayMs)
}

func TestToStatsResponse(t *testing.T) {
	empty := ToStatsResponse(model.WheelStats{})
	assert.Nil(t, empty.LastSpinAt)
	assert.Empty(t, empty.Selections)

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	res := ToStatsResponse(model.WheelStats{TotalSpins: 3, Selections: map[int]int{4: 3}, LastSpinAt: at})
	require.NotNil(t, res.LastSpinAt)
	assert.Equal(t, "2026-01-02T03:04:05Z", *res.LastSpinAt)
	assert.Equal(t, map[string]int{"4": 3}, res.Selections)
}
