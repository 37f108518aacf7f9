package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar_Render(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    string
	}{
		{"empty", 0, 10, "[          ] 0/10 (0%)"},
		{"half", 5, 10, "[=====     ] 5/10 (50%)"},
		{"done", 10, 10, "[==========] 10/10 (100%)"},
		{"overshoot is clamped", 12, 10, "[==========] 12/10 (100%)"},
		{"zero total", 3, 0, "[          ] 3/0 (0%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pb := NewProgressBar(0, 10, false)
			pb.Update(tt.current, tt.total)
			assert.Equal(t, tt.want, pb.Render())
		})
	}
}

func TestProgressBar_Percentage(t *testing.T) {
	pb := NewProgressBar(3, 0, false)
	assert.Equal(t, 0, pb.Percentage())

	pb.Update(1, 3)
	assert.Equal(t, 33, pb.Percentage())
	assert.Equal(t, 1, pb.Current())
	assert.Equal(t, 3, pb.Total())
}

func TestProgressBar_DefaultWidth(t *testing.T) {
	pb := NewProgressBar(4, -1, false)
	pb.Update(2, 4)
	assert.Equal(t, "[=====     ] 2/4 (50%)", pb.Render())
}
