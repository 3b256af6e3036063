package theme_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srajal5/vacationplanner/internal/theme"
)

// memPersister is an in-memory theme.Persister.
type memPersister struct {
	stored  theme.Preference
	loadErr error
	saves   int
}

func (m *memPersister) Load() (theme.Preference, error) { return m.stored, m.loadErr }
func (m *memPersister) Save(p theme.Preference) error {
	m.stored = p
	m.saves++
	return nil
}

var _ theme.Persister = (*memPersister)(nil)

func TestOpen_DefaultsToSystem(t *testing.T) {
	s := theme.Open(&memPersister{}, theme.ResolvedDark)

	assert.Equal(t, theme.System, s.Preference())
	assert.Equal(t, theme.ResolvedDark, s.Resolved())
}

func TestOpen_ReadsPersistedChoice(t *testing.T) {
	s := theme.Open(&memPersister{stored: theme.Light}, theme.ResolvedDark)

	assert.Equal(t, theme.Light, s.Preference())
	assert.Equal(t, theme.ResolvedLight, s.Resolved())
}

func TestOpen_PersistReadErrorFallsBackToSystem(t *testing.T) {
	p := &memPersister{stored: theme.Dark, loadErr: errors.New("disk gone")}
	s := theme.Open(p, theme.ResolvedLight)

	assert.Equal(t, theme.System, s.Preference())
}

func TestSet_PersistsAndResolves(t *testing.T) {
	p := &memPersister{}
	s := theme.Open(p, theme.ResolvedLight)

	require.NoError(t, s.Set(theme.Dark))

	assert.Equal(t, theme.ResolvedDark, s.Resolved())
	assert.Equal(t, theme.Dark, p.stored)
	assert.Equal(t, 1, p.saves)
}

func TestSet_UnrecognizedValueBecomesSystem(t *testing.T) {
	s := theme.Open(&memPersister{}, theme.ResolvedDark)

	require.NoError(t, s.Set(theme.Preference("solarized")))

	assert.Equal(t, theme.System, s.Preference())
	assert.Equal(t, theme.ResolvedDark, s.Resolved())
}

func TestSubscribe_NotifiedOnResolvedChangeOnly(t *testing.T) {
	s := theme.Open(&memPersister{}, theme.ResolvedLight)

	var got []theme.Resolved
	cancel := s.Subscribe(func(r theme.Resolved) { got = append(got, r) })
	defer cancel()

	require.NoError(t, s.Set(theme.Dark))  // light → dark: notify
	require.NoError(t, s.Set(theme.Dark))  // no change: silent
	require.NoError(t, s.Set(theme.Light)) // dark → light: notify

	assert.Equal(t, []theme.Resolved{theme.ResolvedDark, theme.ResolvedLight}, got)
}

func TestSetSystem_OnlyMattersUnderSystemPreference(t *testing.T) {
	s := theme.Open(&memPersister{}, theme.ResolvedLight)

	var notified int
	cancel := s.Subscribe(func(theme.Resolved) { notified++ })
	defer cancel()

	// Explicit dark preference: OS flapping changes nothing.
	require.NoError(t, s.Set(theme.Dark))
	notified = 0
	s.SetSystem(theme.ResolvedDark)
	s.SetSystem(theme.ResolvedLight)
	assert.Zero(t, notified)
	assert.Equal(t, theme.ResolvedDark, s.Resolved())

	// Back to system: the OS value shows through again.
	require.NoError(t, s.Set(theme.System))
	s.SetSystem(theme.ResolvedDark)
	assert.Equal(t, theme.ResolvedDark, s.Resolved())
}

func TestSubscribe_CancelStopsNotifications(t *testing.T) {
	s := theme.Open(&memPersister{}, theme.ResolvedLight)

	var notified int
	cancel := s.Subscribe(func(theme.Resolved) { notified++ })
	cancel()

	require.NoError(t, s.Set(theme.Dark))
	assert.Zero(t, notified)
}
