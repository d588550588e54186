package namespace

import (
	"slices"
	"sync"
	"testing"
	"time"
)

func TestNode_FileHasNoChildren(t *testing.T) {
	f := newNode("f1", KindFile, 1)
	f.AddChild(newNode("x", KindFile, 2))

	if f.Len() != 0 {
		t.Errorf("File should never hold children, got %d", f.Len())
	}
	if _, ok := f.Child("x"); ok {
		t.Error("Child lookup on a file should fail")
	}
	if f.ChildNames() != nil {
		t.Errorf("ChildNames on a file should be nil, got %v", f.ChildNames())
	}
}

func TestNode_AddRemoveChild(t *testing.T) {
	d := newNode("d", KindDirectory, 1)
	first := newNode("a", KindDirectory, 2)
	d.AddChild(first)
	d.AddChild(newNode("c", KindFile, 3))
	d.AddChild(newNode("b", KindFile, 4))

	if got := d.ChildNames(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("ChildNames should be sorted, got %v", got)
	}

	// Same name replaces silently.
	second := newNode("a", KindFile, 5)
	d.AddChild(second)
	if got, _ := d.Child("a"); got != second {
		t.Error("AddChild should overwrite an existing name")
	}
	if d.Len() != 3 {
		t.Errorf("Expected 3 children after overwrite, got %d", d.Len())
	}

	d.RemoveChild("a")
	d.RemoveChild("missing")
	if got := d.ChildNames(); !slices.Equal(got, []string{"b", "c"}) {
		t.Errorf("Expected [b c] after remove, got %v", got)
	}

	children := d.Children()
	if len(children) != 2 || children[0].Name() != "b" || children[1].Name() != "c" {
		t.Errorf("Children should be sorted by name, got %v", children)
	}
}

func TestNode_Touch(t *testing.T) {
	f := newNode("f", KindFile, 1)
	before := f.LastTouchedAt()
	time.Sleep(2 * time.Millisecond)
	f.Touch()

	if !f.LastTouchedAt().After(before) {
		t.Errorf("Touch should advance the timestamp: before %v, after %v", before, f.LastTouchedAt())
	}
	if !f.CreatedAt().Equal(before) {
		t.Errorf("Touch must not change the creation time")
	}
}

func TestNode_ChildOrCreateConcurrent(t *testing.T) {
	d := newNode("d", KindDirectory, 1)
	var inode uint64
	var mu sync.Mutex
	next := func() uint64 {
		mu.Lock()
		defer mu.Unlock()
		inode++
		return inode
	}

	numGoroutines := 50
	results := make(chan *Node, numGoroutines)
	var created sync.Map

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := range numGoroutines {
		go func() {
			defer wg.Done()
			n, ok := d.childOrCreate("shared", KindDirectory, next)
			if ok {
				created.Store(i, true)
			}
			results <- n
		}()
	}
	wg.Wait()
	close(results)

	var first *Node
	for n := range results {
		if first == nil {
			first = n
		}
		if n != first {
			t.Fatal("All creators should receive the same node")
		}
	}

	count := 0
	created.Range(func(_, _ any) bool {
		count++
		return true
	})
	if count != 1 {
		t.Errorf("Exactly one goroutine should create the node, got %d", count)
	}
}

func TestNode_RemoveChildNodeChecksIdentity(t *testing.T) {
	d := newNode("d", KindDirectory, 1)
	old := newNode("x", KindDirectory, 2)
	d.AddChild(old)
	replacement := newNode("x", KindDirectory, 3)
	d.AddChild(replacement)

	if d.removeChildNode("x", old) {
		t.Error("removeChildNode should refuse a node that is no longer attached")
	}
	if !d.removeChildNode("x", replacement) {
		t.Error("removeChildNode should remove the attached node")
	}
}
