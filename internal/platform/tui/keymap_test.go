package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/santa-catch/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(4)

	tests := []struct {
		name       string
		msg        tea.KeyMsg
		wantAction core.Action
		wantLane   int
	}{
		{"lane 1", runeKey('1'), core.ActionSelectLane, 0},
		{"lane 4", runeKey('4'), core.ActionSelectLane, 3},
		{"lane 5 does not exist", runeKey('5'), core.ActionNone, 0},
		{"zero", runeKey('0'), core.ActionNone, 0},
		{"plus", runeKey('+'), core.ActionConfirm, 0},
		{"equals", runeKey('='), core.ActionConfirm, 0},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionRestart, 0},
		{"escape", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack, 0},
		{"q", runeKey('q'), core.ActionQuit, 0},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, 0},
		{"unbound", runeKey('x'), core.ActionNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, lane := km.MapKey(tt.msg)
			assert.Equal(t, tt.wantAction, action)
			assert.Equal(t, tt.wantLane, lane)
		})
	}
}

func TestMapKeyLaneLimit(t *testing.T) {
	km := NewKeyMapper(12)

	action, lane := km.MapKey(runeKey('9'))
	assert.Equal(t, core.ActionSelectLane, action)
	assert.Equal(t, 8, lane)
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper(4)
	frame := core.NewInputFrame()

	assert.Equal(t, core.ActionSelectLane, km.MapKeyToFrame(runeKey('2'), &frame))
	assert.Equal(t, core.ActionSelectLane, km.MapKeyToFrame(runeKey('3'), &frame))
	assert.Equal(t, core.ActionConfirm, km.MapKeyToFrame(runeKey('+'), &frame))
	assert.Equal(t, core.ActionNone, km.MapKeyToFrame(runeKey('x'), &frame))

	assert.True(t, frame.Has(core.ActionSelectLane))
	assert.True(t, frame.Has(core.ActionConfirm))
	assert.Equal(t, 2, frame.Lane, "last lane key in a frame wins")
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper(4)

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEscape}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, km.MapKeyToMenuAction(tt.msg), tt.msg.String())
	}
}
