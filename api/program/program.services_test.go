package program

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceCursor(t *testing.T) {
	tests := []struct {
		name                        string
		week, day                   int
		daysPerWeek, durationWeeks  int
		wantWeek, wantDay           int
		wantDone                    bool
	}{
		{"NextDaySameWeek", 1, 1, 3, 4, 1, 2, false},
		{"LastDayRollsToNextWeek", 1, 3, 3, 4, 2, 1, false},
		{"MidProgram", 2, 2, 3, 4, 2, 3, false},
		{"FinalDayCompletesProgram", 4, 3, 3, 4, 5, 1, true},
		{"SingleDayProgram", 1, 1, 1, 1, 2, 1, true},
		{"SevenDayWeek", 3, 6, 7, 8, 3, 7, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week, day, done := advanceCursor(tt.week, tt.day, tt.daysPerWeek, tt.durationWeeks)
			assert.Equal(t, tt.wantWeek, week)
			assert.Equal(t, tt.wantDay, day)
			assert.Equal(t, tt.wantDone, done)
		})
	}
}
