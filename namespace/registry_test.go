package namespace

import (
	"sync"
	"testing"
)

func TestRegistry_OpenGetClose(t *testing.T) {
	r := NewRegistry(New())

	s1 := r.Open()
	s2 := r.Open()
	if r.Len() != 2 {
		t.Fatalf("Expected 2 sessions, got %d", r.Len())
	}

	got, ok := r.Get(s1.ID())
	if !ok || got != s1 {
		t.Errorf("Get(%s) returned %v, %v", s1.ID(), got, ok)
	}

	if !r.Close(s1.ID()) {
		t.Error("Close should report an open session")
	}
	if r.Close(s1.ID()) {
		t.Error("Close should report false for an unknown session")
	}
	if _, ok := r.Get(s1.ID()); ok {
		t.Error("Closed session should not be returned")
	}

	ids := r.IDs()
	if len(ids) != 1 || ids[0] != s2.ID() {
		t.Errorf("IDs() = %v, expected [%s]", ids, s2.ID())
	}
}

func TestRegistry_SessionsShareTheTree(t *testing.T) {
	r := NewRegistry(New())
	a := r.Open()
	b := r.Open()

	a.MakeDirectory("/shared")
	b.ChangeDirectory("/shared")
	a.ChangeDirectory("/")

	if b.Pwd() != "/shared" || a.Pwd() != "/" {
		t.Errorf("Sessions should keep independent working directories: a=%q b=%q", a.Pwd(), b.Pwd())
	}
	if r.Namespace().Stats().TotalDirectories != 2 {
		t.Errorf("Expected 2 directories, got %s", r.Namespace().Stats())
	}
}

func TestRegistry_ConcurrentOpen(t *testing.T) {
	r := NewRegistry(New())
	numGoroutines := 64

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for range numGoroutines {
		go func() {
			defer wg.Done()
			s := r.Open()
			if _, ok := r.Get(s.ID()); !ok {
				t.Error("Opened session should be registered")
			}
		}()
	}
	wg.Wait()

	if r.Len() != numGoroutines {
		t.Errorf("Expected %d sessions, got %d", numGoroutines, r.Len())
	}
}
