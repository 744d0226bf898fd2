package cmd

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertModel_DismissKeysQuit(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyEnter},
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune("q")},
	} {
		_, cmd := newAlertModel("Oops", "world open").Update(k)
		require.NotNil(t, cmd, k.String())
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, k.String())
	}
}

func TestAlertModel_OtherKeysKeepOpen(t *testing.T) {
	m, cmd := newAlertModel("Oops", "world open").Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "world open")
}

func TestAlertModel_ResizeClampsWidth(t *testing.T) {
	m, _ := newAlertModel("Oops", "msg").Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	assert.Equal(t, 72, m.(alertModel).width)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 10, Height: 40})
	assert.Equal(t, 30, m.(alertModel).width)
}

func TestTerminalNotifier_NonInteractiveWritesBox(t *testing.T) {
	var out bytes.Buffer
	n := &terminalNotifier{out: &out}
	n.Alert("Package Files Error", "a world appears to be open")
	assert.Contains(t, out.String(), "Package Files Error")
	assert.Contains(t, out.String(), "a world appears to be open")
	assert.Contains(t, out.String(), "enter to dismiss")
}
