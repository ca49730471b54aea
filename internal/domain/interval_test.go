package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func interval(from, to string) TimeInterval {
	return TimeInterval{From: types.TimeString(from), To: types.TimeString(to)}
}

func TestTimeInterval_IsValid(t *testing.T) {
	assert.True(t, interval("09:00", "10:00").IsValid())
	assert.False(t, interval("10:00", "10:00").IsValid(), "zero-length interval")
	assert.False(t, interval("10:00", "09:00").IsValid(), "inverted interval")
	assert.False(t, interval("", "10:00").IsValid(), "unset from")
	assert.False(t, interval("9 am", "10:00").IsValid(), "malformed from")
}

func TestTimeInterval_Overlaps(t *testing.T) {
	assert.True(t, interval("09:00", "10:00").Overlaps(interval("09:30", "10:30")))
	// Граничащие интервалы не пересекаются
	assert.False(t, interval("09:00", "10:00").Overlaps(interval("10:00", "11:00")))
	assert.False(t, interval("09:00", "10:00").Overlaps(interval("11:00", "12:00")))
}

func TestNormalizeSlots_DropsInvalid(t *testing.T) {
	result := NormalizeSlots([]TimeInterval{
		interval("09:00", "10:00"),
		interval("11:00", "11:00"),
		interval("13:00", "12:00"),
	})

	require.Len(t, result, 1)
	assert.Equal(t, interval("09:00", "10:00"), result[0])
}

func TestNormalizeSlots_DeduplicatesAndSorts(t *testing.T) {
	result := NormalizeSlots([]TimeInterval{
		interval("14:00", "15:00"),
		interval("09:00", "10:00"),
		interval("14:00", "15:00"),
		interval("11:30", "12:00"),
	})

	require.Len(t, result, 3)
	assert.Equal(t, interval("09:00", "10:00"), result[0])
	assert.Equal(t, interval("11:30", "12:00"), result[1])
	assert.Equal(t, interval("14:00", "15:00"), result[2])
}

func TestNormalizeSlots_Idempotent(t *testing.T) {
	input := []TimeInterval{
		interval("14:00", "15:00"),
		interval("09:00", "08:00"),
		interval("09:00", "10:00"),
		interval("09:00", "10:00"),
	}

	once := NormalizeSlots(input)
	twice := NormalizeSlots(once)

	assert.Equal(t, once, twice)
}

func TestNormalizeSlots_Empty(t *testing.T) {
	assert.Empty(t, NormalizeSlots(nil))
	assert.Empty(t, NormalizeSlots([]TimeInterval{}))
}
