package util

import (
	"sync"
	"testing"
)

func TestInodeCounter_Increments(t *testing.T) {
	var c InodeCounter

	first := c.Next()
	second := c.Next()
	third := c.Next()

	if first != 1 {
		t.Errorf("First inode should be 1, got %d", first)
	}
	if second != first+1 {
		t.Errorf("Second inode should be first+1: got %d, want %d", second, first+1)
	}
	if third != second+1 {
		t.Errorf("Third inode should be second+1: got %d, want %d", third, second+1)
	}
}

func TestInodeCounter_Concurrent(t *testing.T) {
	var c InodeCounter
	numGoroutines := 100
	inodesPerGoroutine := 100

	results := make(chan uint64, numGoroutines*inodesPerGoroutine)

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for range numGoroutines {
		go func() {
			defer wg.Done()
			for range inodesPerGoroutine {
				results <- c.Next()
			}
		}()
	}

	wg.Wait()
	close(results)

	seen := make(map[uint64]bool)
	for inode := range results {
		if seen[inode] {
			t.Errorf("Duplicate inode found: %d", inode)
		}
		seen[inode] = true
	}

	expectedCount := numGoroutines * inodesPerGoroutine
	if len(seen) != expectedCount {
		t.Errorf("Expected %d unique inodes, got %d", expectedCount, len(seen))
	}
	if c.Last() != uint64(expectedCount) {
		t.Errorf("Last() = %d, want %d", c.Last(), expectedCount)
	}
}

func TestInodeCounter_Observe(t *testing.T) {
	var c InodeCounter
	current := c.Next()

	c.Observe(current + 1000)
	if next := c.Next(); next != current+1001 {
		t.Errorf("After Observe(%d), Next should return %d, got %d", current+1000, current+1001, next)
	}

	before := c.Last()
	c.Observe(1)
	if c.Last() != before {
		t.Errorf("Observe should ignore lower values: got %d, want %d", c.Last(), before)
	}
}
