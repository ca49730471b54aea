package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func TestGenerateSlots_FullWorkday(t *testing.T) {
	slots := GenerateSlots("09:00", "17:00", 60, 0, 50)

	require.Len(t, slots, 8)
	assert.Equal(t, interval("09:00", "10:00"), slots[0])
	assert.Equal(t, interval("16:00", "17:00"), slots[7])
}

func TestGenerateSlots_WithGap(t *testing.T) {
	// 09:00 + 90 = 10:30, следующий курсор 10:30 + 15 = 10:45,
	// 10:45 + 90 = 12:15 > 12:00 - второй слот не помещается
	slots := GenerateSlots("09:00", "12:00", 90, 15, 10)

	require.Len(t, slots, 1)
	assert.Equal(t, interval("09:00", "10:30"), slots[0])
}

func TestGenerateSlots_MaxCountRespected(t *testing.T) {
	slots := GenerateSlots("00:00", "23:59", 1, 0, 5)

	assert.Len(t, slots, 5)
}

func TestGenerateSlots_NoPartialFinalSlot(t *testing.T) {
	// В диапазон 09:00-10:30 укладывается только один часовой слот
	slots := GenerateSlots("09:00", "10:30", 60, 0, 50)

	require.Len(t, slots, 1)
	assert.Equal(t, interval("09:00", "10:00"), slots[0])
}

func TestGenerateSlots_NonOverlapping(t *testing.T) {
	cases := []struct {
		name    string
		from    types.TimeString
		to      types.TimeString
		length  int
		gap     int
	}{
		{"no gap", "08:00", "20:00", 45, 0},
		{"with gap", "08:00", "20:00", 30, 10},
		{"odd sizes", "08:17", "19:03", 37, 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slots := GenerateSlots(tc.from, tc.to, tc.length, tc.gap, 100)
			require.NotEmpty(t, slots)

			for i := 1; i < len(slots); i++ {
				prev, next := slots[i-1], slots[i]
				assert.GreaterOrEqual(t, next.From.Minutes(), prev.To.Minutes(),
					"slot %d overlaps slot %d", i, i-1)
				if tc.gap == 0 {
					assert.Equal(t, prev.To, next.From)
				}
			}
		})
	}
}

func TestGenerateSlots_Degenerate(t *testing.T) {
	assert.Empty(t, GenerateSlots("", "17:00", 60, 0, 10), "unset from")
	assert.Empty(t, GenerateSlots("09:00", "", 60, 0, 10), "unset to")
	assert.Empty(t, GenerateSlots("09:00", "17:00", 0, 0, 10), "zero length")
	assert.Empty(t, GenerateSlots("09:00", "17:00", -30, 0, 10), "negative length")
	assert.Empty(t, GenerateSlots("09:00", "17:00", 60, 0, 0), "zero max count")
	assert.Empty(t, GenerateSlots("17:00", "09:00", 60, 0, 10), "inverted range")
	assert.Empty(t, GenerateSlots("09:00", "09:30", 60, 0, 10), "range shorter than slot")
}

func TestGenerateSlots_NegativeGapClampedToZero(t *testing.T) {
	slots := GenerateSlots("09:00", "11:00", 60, -15, 10)

	require.Len(t, slots, 2)
	assert.Equal(t, interval("10:00", "11:00"), slots[1])
}
