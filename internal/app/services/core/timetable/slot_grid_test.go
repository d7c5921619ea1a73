package timetable

import (
	"academia-service/internal/pkg/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBatch(t *testing.T) {
	batch, err := ParseBatch(" 2 ")
	require.NoError(t, err)
	assert.Equal(t, BatchTwo, batch)
	assert.Equal(t, "2", batch.String())

	for _, value := range []string{"", "0", "3", "one"} {
		_, err := ParseBatch(value)
		assert.ErrorIs(t, err, ErrInvalidBatch, value)
	}
}

func TestLookupPeriod(t *testing.T) {
	slot, err := LookupPeriod(BatchOne, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, "A", slot.SlotCode)
	assert.Equal(t, "08:00", slot.StartTime)
	assert.Equal(t, "08:50", slot.EndTime)

	slot, err = LookupPeriod(BatchTwo, 5, 9)
	require.NoError(t, err)
	assert.Equal(t, "D", slot.SlotCode)
	assert.Equal(t, "16:00", slot.StartTime)
	assert.Equal(t, "16:50", slot.EndTime)
}

func TestLookupPeriod_RejectsInvalidIndices(t *testing.T) {
	_, err := LookupPeriod(Batch(3), 1, 0)
	assert.ErrorIs(t, err, ErrInvalidBatch)

	_, err = LookupPeriod(BatchOne, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidDayOrder)

	_, err = LookupPeriod(BatchOne, 6, 0)
	assert.ErrorIs(t, err, ErrInvalidDayOrder)

	_, err = LookupPeriod(BatchOne, 1, 10)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = LookupPeriod(BatchOne, 1, -1)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestCyclePeriods_TenAscendingNonOverlapping(t *testing.T) {
	for _, batch := range []Batch{BatchOne, BatchTwo} {
		for cycle := 1; cycle <= DayOrderCycles; cycle++ {
			periods, err := CyclePeriods(batch, cycle)
			require.NoError(t, err)
			require.Len(t, periods, PeriodsPerCycle)

			previousEnd := -1
			for _, p := range periods {
				start, ok := utils.ParseClockMinutes(p.StartTime)
				require.True(t, ok)
				end, ok := utils.ParseClockMinutes(p.EndTime)
				require.True(t, ok)

				assert.Less(t, start, end)
				assert.GreaterOrEqual(t, start, previousEnd)
				assert.NotEmpty(t, p.SlotCode)
				previousEnd = end
			}
		}
	}
}
