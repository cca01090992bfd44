package watch

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelevant(t *testing.T) {
	tests := []struct {
		name string
		op   fsnotify.Op
		want bool
	}{
		{"money/cents.go", fsnotify.Write, true},
		{"money/cents.go", fsnotify.Create, true},
		{"money/cents.go", fsnotify.Remove, true},
		{"money/cents.go", fsnotify.Rename, true},
		{"money/cents.go", fsnotify.Chmod, false},
		{"money/cents_implementation.go", fsnotify.Write, false},
		{"money/cents_implementation.unformatted.go", fsnotify.Create, false},
		{"money/cents_test.go", fsnotify.Write, false},
		{"money/.#cents.go", fsnotify.Write, false},
		{"money/notes.txt", fsnotify.Write, false},
	}

	for _, tt := range tests {
		t.Run(tt.name+" "+tt.op.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Relevant(fsnotify.Event{Name: tt.name, Op: tt.op}))
		})
	}
}

func TestLoopDebounces(t *testing.T) {
	var builds atomic.Int32
	rebuilt := make(chan struct{}, 10)

	w := New(nil, 100*time.Millisecond, func(context.Context) error {
		builds.Add(1)
		rebuilt <- struct{}{}

		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan fsnotify.Event)
	errs := make(chan error)
	done := make(chan error, 1)

	go func() { done <- w.loop(ctx, events, errs) }()

	for range 5 {
		events <- fsnotify.Event{Name: "a.go", Op: fsnotify.Write}
	}

	events <- fsnotify.Event{Name: "a_implementation.go", Op: fsnotify.Write}

	select {
	case <-rebuilt:
	case <-time.After(2 * time.Second):
		t.Fatal("no rebuild after changes")
	}

	assert.Equal(t, int32(1), builds.Load())

	errs <- assert.AnError

	events <- fsnotify.Event{Name: "b.go", Op: fsnotify.Create}

	select {
	case <-rebuilt:
	case <-time.After(2 * time.Second):
		t.Fatal("no rebuild after second change")
	}

	assert.Equal(t, int32(2), builds.Load())

	cancel()
	require.NoError(t, <-done)
}

func TestLoopIgnoresGeneratedFiles(t *testing.T) {
	w := New(nil, 10*time.Millisecond, func(context.Context) error {
		t.Error("rebuild must not run")
		return nil
	})

	events := make(chan fsnotify.Event, 2)
	events <- fsnotify.Event{Name: "cents_implementation.go", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "cents_test.go", Op: fsnotify.Write}
	close(events)

	require.NoError(t, w.loop(context.Background(), events, nil))
}

func TestLoopKeepsWatchingAfterFailedRebuild(t *testing.T) {
	calls := make(chan struct{}, 2)

	w := New(nil, 5*time.Millisecond, func(context.Context) error {
		calls <- struct{}{}
		return assert.AnError
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan fsnotify.Event)
	done := make(chan error, 1)

	go func() { done <- w.loop(ctx, events, nil) }()

	for range 2 {
		events <- fsnotify.Event{Name: "a.go", Op: fsnotify.Write}

		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("rebuild not called")
		}
	}

	cancel()
	require.NoError(t, <-done)
}
