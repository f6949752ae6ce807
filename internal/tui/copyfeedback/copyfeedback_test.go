package copyfeedback

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"gtunnel-site/internal/clipboard"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeClipboard struct {
	mu     sync.Mutex
	writes []string
	err    error
}

func (f *fakeClipboard) WriteText(_ context.Context, s string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.writes = append(f.writes, s)
	return nil
}

const cmd = "curl -sSL https://example.invalid/install.sh | bash"

func newWidget(t *testing.T, cb clipboard.Writer) (*Widget, *clock.Mock) {
	t.Helper()
	mock := clock.NewMock()
	w := New(cb, cmd, WithClock(mock), WithLogger(zerolog.Nop()))
	t.Cleanup(w.Close)
	return w, mock
}

// advance moves the mock clock; AfterFunc callbacks run on their own
// goroutine, so expectations about reverts are checked with Eventually.
func advance(m *clock.Mock, d time.Duration) { m.Add(d) }

func reverted(w *Widget) func() bool { return func() bool { return !w.Copied() } }

func TestCopyThenRevert(t *testing.T) {
	cb := &fakeClipboard{}
	w, mock := newWidget(t, cb)

	w.RequestCopy(context.Background())
	assert.True(t, w.Copied(), "copied at t=0")
	assert.Equal(t, []string{cmd}, cb.writes)
	assert.Equal(t, LabelCopied, w.Label())
	assert.Equal(t, IconCopied, w.Icon())

	advance(mock, 1999*time.Millisecond)
	assert.True(t, w.Copied(), "still copied at t=1999ms")

	advance(mock, 2*time.Millisecond)
	require.Eventually(t, reverted(w), time.Second, time.Millisecond, "reverted at t=2001ms")
	assert.False(t, w.Pending())
	assert.Equal(t, LabelCopy, w.Label())
	assert.Equal(t, IconCopy, w.Icon())
}

func TestSecondCopyRestartsWindow(t *testing.T) {
	w, mock := newWidget(t, &fakeClipboard{})

	w.RequestCopy(context.Background())
	advance(mock, 1000*time.Millisecond)
	w.RequestCopy(context.Background())

	advance(mock, 1500*time.Millisecond) // t=2500
	assert.True(t, w.Copied(), "first timer must have been cancelled")
	assert.True(t, w.Pending())

	advance(mock, 501*time.Millisecond) // t=3001
	require.Eventually(t, reverted(w), time.Second, time.Millisecond)
}

func TestRapidCopiesKeepSinglePendingTimer(t *testing.T) {
	w, mock := newWidget(t, &fakeClipboard{})
	for i := 0; i < 10; i++ {
		w.RequestCopy(context.Background())
		advance(mock, 300*time.Millisecond)
	}
	// Last copy at t=2700; none of the earlier timers may fire.
	assert.True(t, w.Copied())
	advance(mock, RevertDelay)
	require.Eventually(t, reverted(w), time.Second, time.Millisecond)
}

func TestFailedCopyLeavesStateAndLogs(t *testing.T) {
	var logs bytes.Buffer
	denied := errors.New("permission denied")
	mock := clock.NewMock()
	w := New(&fakeClipboard{err: denied}, cmd, WithClock(mock), WithLogger(zerolog.New(&logs)))
	defer w.Close()

	assert.NotPanics(t, func() { w.RequestCopy(context.Background()) })
	assert.False(t, w.Copied())
	assert.False(t, w.Pending())
	assert.Contains(t, logs.String(), ErrClipboardWrite.Error())
	assert.Contains(t, logs.String(), "permission denied")

	advance(mock, 3*time.Second)
	assert.False(t, w.Copied())
}

func TestFailureDoesNotCancelEarlierSuccess(t *testing.T) {
	cb := &fakeClipboard{}
	w, mock := newWidget(t, cb)

	w.RequestCopy(context.Background())
	cb.mu.Lock()
	cb.err = clipboard.ErrUnsupported
	cb.mu.Unlock()
	w.RequestCopy(context.Background())

	assert.True(t, w.Copied())
	advance(mock, RevertDelay+time.Millisecond)
	require.Eventually(t, reverted(w), time.Second, time.Millisecond)
}

func TestNilClipboard(t *testing.T) {
	w, _ := newWidget(t, nil)
	assert.NotPanics(t, func() { w.RequestCopy(context.Background()) })
	assert.False(t, w.Copied())
}

func TestCancelledContext(t *testing.T) {
	w, _ := newWidget(t, clipboard.WriterFunc(func(ctx context.Context, _ string) error {
		return ctx.Err()
	}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.RequestCopy(ctx)
	assert.False(t, w.Copied())
}

func TestCloseCancelsPendingRevert(t *testing.T) {
	var mu sync.Mutex
	var changes []bool
	mock := clock.NewMock()
	w := New(&fakeClipboard{}, cmd, WithClock(mock), WithLogger(zerolog.Nop()),
		WithOnChange(func(c bool) {
			mu.Lock()
			changes = append(changes, c)
			mu.Unlock()
		}))

	w.RequestCopy(context.Background())
	w.Close()
	assert.False(t, w.Copied())
	assert.False(t, w.Pending())

	advance(mock, 5*time.Second)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []bool{true, false}, changes)
}

func TestOnChangeOnlyOnTransitions(t *testing.T) {
	var mu sync.Mutex
	var changes []bool
	mock := clock.NewMock()
	w := New(&fakeClipboard{}, cmd, WithClock(mock), WithLogger(zerolog.Nop()),
		WithOnChange(func(c bool) {
			mu.Lock()
			changes = append(changes, c)
			mu.Unlock()
		}))
	defer w.Close()

	w.RequestCopy(context.Background())
	w.RequestCopy(context.Background()) // already copied: restart only
	advance(mock, RevertDelay)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(changes) == 2
	}, time.Second, time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []bool{true, false}, changes)
}

func TestStaleTimerIgnored(t *testing.T) {
	w, _ := newWidget(t, &fakeClipboard{})
	w.RequestCopy(context.Background())

	w.mu.Lock()
	stale := w.gen
	w.mu.Unlock()

	w.RequestCopy(context.Background())
	// Simulate the superseded timer firing after Stop lost the race.
	w.expire(stale)
	assert.True(t, w.Copied())
	assert.True(t, w.Pending())
}

func TestConcurrentRequests(t *testing.T) {
	w := New(&fakeClipboard{}, cmd, WithLogger(zerolog.Nop()))
	defer w.Close()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.RequestCopy(context.Background())
		}()
	}
	wg.Wait()
	assert.True(t, w.Copied())
	assert.True(t, w.Pending())
	assert.Equal(t, cmd, w.Text())
}
