package service_test

import (
	"context"
	"sync"
	"sync/atomic"
)

// fakeNotifier records rejected assignments.
type fakeNotifier struct {
	mu       sync.Mutex
	rejected []string

	CallCount int32
	Err       error
}

func (f *fakeNotifier) NotifyAssignmentRejected(ctx context.Context, packageName, vehicleName string) error {
	atomic.AddInt32(&f.CallCount, 1)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rejected = append(f.rejected, packageName+"@"+vehicleName)
	return f.Err
}

func (f *fakeNotifier) Rejected() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.rejected...)
}

// fixedNamer replays a fixed list of names, then repeats the last one.
type fixedNamer struct {
	mu    sync.Mutex
	names []string
	i     int
}

func (n *fixedNamer) Next() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	name := n.names[n.i]
	if n.i < len(n.names)-1 {
		n.i++
	}
	return name
}
