package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyBindings_RebindRune(t *testing.T) {
	kt, err := ApplyBindings(DefaultKeyTable(), map[string]string{"hide": "H"})

	require.NoError(t, err)
	assert.Equal(t, ActionHide, kt.Lookup(tcell.KeyRune, 'h'))
	assert.Equal(t, ActionNone, kt.Lookup(tcell.KeyRune, 'p'), "default key dropped")
	// Base table untouched
	assert.Equal(t, ActionHide, DefaultKeyTable().Lookup(tcell.KeyRune, 'p'))
}

func TestApplyBindings_SpecialKeyAndAlias(t *testing.T) {
	kt, err := ApplyBindings(DefaultKeyTable(), map[string]string{
		"use":     "space",
		"dismiss": "Tab",
	})

	require.NoError(t, err)
	assert.Equal(t, ActionUse, kt.Lookup(tcell.KeyRune, ' '))
	assert.Equal(t, ActionDismiss, kt.Lookup(tcell.KeyTab, 0))
	assert.Equal(t, ActionNone, kt.Lookup(tcell.KeyEnter, 0))
}

func TestApplyBindings_Unbind(t *testing.T) {
	kt, err := ApplyBindings(DefaultKeyTable(), map[string]string{"quit": "none"})

	require.NoError(t, err)
	assert.Equal(t, ActionNone, kt.Lookup(tcell.KeyEscape, 0))
	assert.Equal(t, ActionNone, kt.Lookup(tcell.KeyRune, 'q'))
}

func TestApplyBindings_Errors(t *testing.T) {
	_, err := ApplyBindings(DefaultKeyTable(), map[string]string{"jump": "x"})
	assert.ErrorContains(t, err, "unknown action")

	_, err = ApplyBindings(DefaultKeyTable(), map[string]string{"hide": "hyperspace"})
	assert.ErrorContains(t, err, "unknown key name")

	_, err = ApplyBindings(DefaultKeyTable(), map[string]string{"none": "x"})
	assert.Error(t, err)
}

func TestApplyBindings_Empty(t *testing.T) {
	kt, err := ApplyBindings(DefaultKeyTable(), nil)

	require.NoError(t, err)
	assert.Equal(t, DefaultKeyTable(), kt)
}
