package surface

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_LookupMissing(t *testing.T) {
	m := NewMemory()

	_, err := m.Lookup("dollars", KindInput)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingControl))
	assert.Equal(t, "cannot find control by ID: dollars", err.Error())

	var ie *IntegrityError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "dollars", ie.ID)
}

func TestMemory_LookupWrongKind(t *testing.T) {
	m := NewMemory().Add("total", KindText)

	_, err := m.Lookup("total", KindInput)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWrongKind))
	assert.Contains(t, err.Error(), "total")
	assert.Contains(t, err.Error(), "is not input")
}

func TestMemory_TypeNotifies(t *testing.T) {
	m := NewMemory().Add("cents", KindInput)
	ctrl, err := m.Lookup("cents", KindInput)
	require.NoError(t, err)

	calls := 0
	ctrl.Subscribe(func() { calls++ })

	require.NoError(t, m.Type("cents", "60"))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "60", ctrl.Value())
}

func TestMemory_SetValueIsSilent(t *testing.T) {
	m := NewMemory().Add("dollars", KindInput)
	ctrl, err := m.Lookup("dollars", KindInput)
	require.NoError(t, err)

	calls := 0
	ctrl.Subscribe(func() { calls++ })
	ctrl.SetValue("12")

	assert.Equal(t, 0, calls)
	assert.Equal(t, "12", m.Text("dollars"))
}

func TestMemory_Activate(t *testing.T) {
	m := NewMemory().Add("reset", KindButton).Add("dollars", KindInput)
	ctrl, err := m.Lookup("reset", KindButton)
	require.NoError(t, err)

	pressed := 0
	ctrl.Subscribe(func() { pressed++ })

	require.NoError(t, m.Activate("reset"))
	require.NoError(t, m.Activate("reset"))
	assert.Equal(t, 2, pressed)

	assert.ErrorIs(t, m.Activate("dollars"), ErrWrongKind)
	assert.ErrorIs(t, m.Type("reset", "x"), ErrWrongKind)
	assert.ErrorIs(t, m.Type("nope", "x"), ErrMissingControl)
}
