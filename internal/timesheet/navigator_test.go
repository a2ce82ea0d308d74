package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/ptr/internal/domain"
	"github.com/alexanderramin/ptr/internal/testutil"
)

// sunday1 (2024-01-07) and sunday2 (2024-01-14) are Sundays.
var (
	sunday1 = time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	sunday2 = time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)
)

func newTestNavigator(t *testing.T, backend *testutil.FakeBackend, user, pass string) *Navigator {
	t.Helper()
	n := NewNavigator(Config{BaseURL: backend.URL(), TimeoutMs: 5000}, user, pass)
	// Pin "now" after the test dates so they never count as future.
	n.now = func() time.Time { return time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC) }
	return n
}

func TestLogin_Success(t *testing.T) {
	backend := testutil.NewFakeBackend("alice", "s3cret")
	defer backend.Close()
	n := newTestNavigator(t, backend, "alice", "s3cret")

	require.NoError(t, n.Login(context.Background()))
	assert.True(t, n.LoggedIn())
	assert.Equal(t, PageLogin, n.LastPage())

	// Login is idempotent; no further requests.
	before := backend.RequestCount()
	require.NoError(t, n.Login(context.Background()))
	assert.Equal(t, before, backend.RequestCount())
}

func TestLogin_BadCredentials(t *testing.T) {
	backend := testutil.NewFakeBackend("alice", "s3cret")
	defer backend.Close()
	n := newTestNavigator(t, backend, "alice", "wrong")

	err := n.Login(context.Background())
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.False(t, n.LoggedIn())
}

func TestLoadBase_LazyNavigation(t *testing.T) {
	backend := testutil.NewFakeBackend("alice", "s3cret")
	defer backend.Close()
	n := newTestNavigator(t, backend, "alice", "s3cret")

	require.NoError(t, n.Login(context.Background()))
	afterLogin := backend.RequestCount()

	// Just after login the base content is already on screen; both calls
	// must be free.
	require.NoError(t, n.LoadBase(context.Background()))
	require.NoError(t, n.LoadBase(context.Background()))
	assert.Equal(t, afterLogin, backend.RequestCount(),
		"loadBase after login must not issue requests")
}

func TestLoadBase_ReloadsAfterWeekLoad(t *testing.T) {
	backend := testutil.NewFakeBackend("alice", "s3cret")
	backend.Overdue = []time.Time{sunday1}
	defer backend.Close()
	n := newTestNavigator(t, backend, "alice", "s3cret")

	require.NoError(t, n.LoadWeek(context.Background(), sunday1))
	assert.Equal(t, PageDateLoad, n.LastPage())

	before := backend.RequestCount()
	require.NoError(t, n.LoadBase(context.Background()))
	assert.Equal(t, before+1, backend.RequestCount(),
		"leaving the base page invalidates the lazy skip")
	assert.Equal(t, PageBase, n.LastPage())
}

func TestLoadWeek_RejectsNonSundayBeforeAnyRequest(t *testing.T) {
	backend := testutil.NewFakeBackend("alice", "s3cret")
	defer backend.Close()
	n := newTestNavigator(t, backend, "alice", "s3cret")

	monday := sunday1.AddDate(0, 0, 1)
	err := n.LoadWeek(context.Background(), monday)
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Equal(t, 0, backend.RequestCount(), "validation happens before any network call")
}

func TestLoadWeek_RejectsFutureDate(t *testing.T) {
	backend := testutil.NewFakeBackend("alice", "s3cret")
	defer backend.Close()
	n := newTestNavigator(t, backend, "alice", "s3cret")

	future := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC) // Sunday after pinned now
	err := n.LoadWeek(context.Background(), future)
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Equal(t, 0, backend.RequestCount())
}

func TestLoadWeek_AlreadySubmitted(t *testing.T) {
	backend := testutil.NewFakeBackend("alice", "s3cret")
	backend.Submitted[sunday1.Format("01/02/2006")] = true
	defer backend.Close()
	n := newTestNavigator(t, backend, "alice", "s3cret")

	err := n.LoadWeek(context.Background(), sunday1)
	assert.ErrorIs(t, err, ErrNavigation)
}

func TestOverdueWeeks(t *testing.T) {
	backend := testutil.NewFakeBackend("alice", "s3cret")
	backend.Overdue = []time.Time{sunday1, sunday2}
	defer backend.Close()
	n := newTestNavigator(t, backend, "alice", "s3cret")

	overdue, err := n.OverdueWeeks(context.Background())
	require.NoError(t, err)
	require.Len(t, overdue, 2)

	entry, ok := overdue[sunday1]
	require.True(t, ok)
	assert.Equal(t, sunday1, entry.WeekStart)
	assert.Contains(t, entry.Selector, "selectedWeek=01/07/2024")
}

func TestOverdueWeeks_NoneIsNotAnError(t *testing.T) {
	backend := testutil.NewFakeBackend("alice", "s3cret")
	defer backend.Close()
	n := newTestNavigator(t, backend, "alice", "s3cret")

	overdue, err := n.OverdueWeeks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, overdue)
}

func TestSubmitWeek_EndToEnd(t *testing.T) {
	backend := testutil.NewFakeBackend("alice", "s3cret")
	backend.Overdue = []time.Time{sunday1}
	defer backend.Close()
	n := newTestNavigator(t, backend, "alice", "s3cret")

	week, err := domain.ExpandWeek([]domain.WorkdayHours{
		{FullHours: 8}, {FullHours: 8}, {FullHours: 8}, {FullHours: 8}, {FullHours: 8},
	})
	require.NoError(t, err)

	require.NoError(t, n.SubmitWeek(context.Background(), sunday1, week))
	assert.Equal(t, PageSubmit, n.LastPage())

	post := backend.LastSubmission()
	require.NotNil(t, post)
	assert.Equal(t, "40", post.Get("WeekTotalHours"))
	assert.Equal(t, "0", post.Get("WeekTotalMinutes"))
	assert.Equal(t, "8", post.Get("wednesdayTimesheetHourValue"))
	assert.Empty(t, post.Get("btnSave"))
}

func TestSubmitWeek_NoConfirmation(t *testing.T) {
	backend := testutil.NewFakeBackend("alice", "s3cret")
	backend.Overdue = []time.Time{sunday1}
	backend.FailSubmit = true
	defer backend.Close()
	n := newTestNavigator(t, backend, "alice", "s3cret")

	err := n.SubmitWeek(context.Background(), sunday1, domain.DefaultWeek())
	assert.ErrorIs(t, err, ErrSubmission)
}

func TestSubmitWeek_TransportFailure(t *testing.T) {
	backend := testutil.NewFakeBackend("alice", "s3cret")
	backend.Overdue = []time.Time{sunday1}
	n := newTestNavigator(t, backend, "alice", "s3cret")
	backend.Close() // connection refused from the first request on

	err := n.SubmitWeek(context.Background(), sunday1, domain.DefaultWeek())
	assert.ErrorIs(t, err, ErrTransport)
}

func TestRetractWeek_ThenResubmit(t *testing.T) {
	backend := testutil.NewFakeBackend("alice", "s3cret")
	weekStr := sunday1.Format("01/02/2006")
	backend.Submitted[weekStr] = true
	defer backend.Close()
	n := newTestNavigator(t, backend, "alice", "s3cret")

	// The submitted week refuses the entry form...
	err := n.LoadWeek(context.Background(), sunday1)
	require.ErrorIs(t, err, ErrNavigation)

	// ...until it is retracted.
	require.NoError(t, n.RetractWeek(context.Background(), sunday1))
	require.NoError(t, n.SubmitWeek(context.Background(), sunday1, domain.DefaultWeek()))
	assert.Equal(t, "0", backend.LastSubmission().Get("sundayTimesheetHourValue"))
}

func TestRetractWeek_NotSubmitted(t *testing.T) {
	backend := testutil.NewFakeBackend("alice", "s3cret")
	backend.Overdue = []time.Time{sunday1}
	defer backend.Close()
	n := newTestNavigator(t, backend, "alice", "s3cret")

	err := n.RetractWeek(context.Background(), sunday1)
	assert.ErrorIs(t, err, ErrFormNotFound)
}
