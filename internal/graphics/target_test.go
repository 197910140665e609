package graphics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestToMatrixKeepsElementOrder(t *testing.T) {
	var m mgl32.Mat4
	for i := range m {
		m[i] = float32(i + 1)
	}
	got := toMatrix(m)
	fields := [16]float32{
		got.M0, got.M1, got.M2, got.M3,
		got.M4, got.M5, got.M6, got.M7,
		got.M8, got.M9, got.M10, got.M11,
		got.M12, got.M13, got.M14, got.M15,
	}
	assert.Equal(t, [16]float32(m), fields)
}

func TestToMatrixTranslation(t *testing.T) {
	got := toMatrix(mgl32.Translate3D(1, 2, 3))
	assert.Equal(t, float32(1), got.M12)
	assert.Equal(t, float32(2), got.M13)
	assert.Equal(t, float32(3), got.M14)
	assert.Equal(t, float32(1), got.M15)
}

func TestChannel(t *testing.T) {
	tests := []struct {
		in   float32
		want uint8
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{2, 255},
		{0.1, 26},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, channel(tt.in), "channel(%v)", tt.in)
	}
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "warning", levelName(int(rl.LogWarning)))
	assert.Equal(t, "error", levelName(int(rl.LogError)))
	assert.Equal(t, "log", levelName(99))
}
