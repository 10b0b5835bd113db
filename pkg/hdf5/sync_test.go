package hdf5

import (
	"testing"

	"github.com/petermattis/goid"
	"golang.org/x/sync/errgroup"
)

// The serializer keys reentrancy on per-goroutine ids and treats 0 as never
// owning. An id source reporting 0 costs reentrancy; one reporting the same
// id for two goroutines would let a non-holder take the reentrant fast path.
// Both stay impossible only while ids are nonzero and distinct.
func TestGoroutineIdentity(t *testing.T) {
	main := goid.Get()
	if main == 0 {
		t.Fatal("goroutine id reported as 0")
	}

	const workers = 3
	ids := make(chan int64, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			ids <- goid.Get()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	close(ids)

	seen := map[int64]bool{main: true}
	for id := range ids {
		if id == 0 {
			t.Fatal("worker goroutine id reported as 0")
		}
		if seen[id] {
			t.Fatalf("goroutine id %d reported for two goroutines", id)
		}
		seen[id] = true
	}
}

func TestSyncMutualExclusion(t *testing.T) {
	const (
		workers    = 8
		iterations = 1000
	)

	var counter int
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := 0; i < iterations; i++ {
				Sync(func() {
					counter++
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("workers failed: %v", err)
	}
	if counter != workers*iterations {
		t.Fatalf("lost updates: counter = %d, want %d", counter, workers*iterations)
	}
}

func TestSyncReentrant(t *testing.T) {
	var inner int
	Sync(func() {
		if !global.held() {
			t.Error("serializer not held inside Sync")
		}
		Sync(func() {
			inner = SyncValue(func() int { return 3 })
		})
		if !global.held() {
			t.Error("serializer dropped by nested release")
		}
	})
	if inner != 3 {
		t.Fatalf("nested SyncValue returned %d, want 3", inner)
	}
	if global.held() {
		t.Fatal("serializer still held after outermost release")
	}
}

func TestSyncValueResult(t *testing.T) {
	got := SyncValue(func() string { return "ready" })
	if got != "ready" {
		t.Fatalf("SyncValue returned %q, want %q", got, "ready")
	}
}

func TestSyncReleasesOnPanic(t *testing.T) {
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic to propagate")
			}
		}()
		Sync(func() { panic("boom") })
	}()

	if global.held() {
		t.Fatal("serializer leaked after panic")
	}
	ran := false
	Sync(func() { ran = true })
	if !ran {
		t.Fatal("serializer unusable after panic")
	}
}

func TestSerializerReleaseByNonOwnerPanics(t *testing.T) {
	var l reentrantLock
	l.lock()

	recovered := make(chan any, 1)
	go func() {
		defer func() { recovered <- recover() }()
		l.unlock()
	}()
	if r := <-recovered; r == nil {
		t.Fatal("expected panic from non-owner release")
	}
	l.unlock()
}
