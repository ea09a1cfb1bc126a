package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/machine-room/engine"
	"github.com/lixenwraith/machine-room/parameter"
)

func TestHUD_Prompts(t *testing.T) {
	h := newHarness(&scriptedRand{})

	h.place(corridorX, corridorZ)
	h.step(testTick, engine.Controls{})
	assert.Empty(t, h.res().HUD.HidePrompt)
	assert.Empty(t, h.res().HUD.UsePrompt)
	assert.Equal(t, parameter.LightIntensityOn, h.res().HUD.LightIntensity)

	h.place(aisleX, aisleZ)
	h.step(testTick, engine.Controls{})
	assert.Equal(t, parameter.PromptHide, h.res().HUD.HidePrompt)
	assert.Equal(t, parameter.PromptUse, h.res().HUD.UsePrompt)

	h.step(testTick, engine.Controls{Hide: true})
	assert.Equal(t, parameter.PromptUnhide, h.res().HUD.HidePrompt)
	assert.Empty(t, h.res().HUD.UsePrompt)
	assert.Equal(t, parameter.LightIntensityOff, h.res().HUD.LightIntensity)
}

func TestHUD_ProgressText(t *testing.T) {
	tests := []struct {
		completed int
		want      string
	}{
		{0, "Tests passed: 0%"},
		{3, "Tests passed: 30%"},
		{10, "Tests passed: 100%"},
		{14, "Tests passed: 100%"},
	}

	for _, tt := range tests {
		h := newHarness(&scriptedRand{})
		h.step(testTick, engine.Controls{})
		h.res().Progress.Completed = tt.completed
		h.step(testTick, engine.Controls{})
		assert.Equal(t, tt.want, h.res().HUD.ProgressText)
	}
}
