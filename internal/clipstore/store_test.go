package clipstore_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"fmclip/internal/clipstore"
)

func TestReplaceIsFullReplacement(t *testing.T) {
	store := clipstore.New()

	store.Replace(clipstore.Copied, []string{"/a"})
	store.Replace(clipstore.Copied, []string{"/b"})

	require.Equal(t, []string{"/b"}, store.Snapshot(clipstore.Copied),
		"second replace must discard the first set, not union with it")
}

func TestReplaceCollapsesDuplicates(t *testing.T) {
	store := clipstore.New()
	store.Replace(clipstore.Cut, []string{"/x", "/x", "/y", "/x"})

	require.Equal(t, []string{"/x", "/y"}, store.Snapshot(clipstore.Cut))
	require.Equal(t, 2, store.Len(clipstore.Cut))
}

func TestSetsAreIndependent(t *testing.T) {
	store := clipstore.New()
	store.Replace(clipstore.Copied, []string{"/copied"})
	store.Replace(clipstore.Cut, []string{"/cut"})

	require.Equal(t, []string{"/copied"}, store.Snapshot(clipstore.Copied))
	require.Equal(t, []string{"/cut"}, store.Snapshot(clipstore.Cut))
}

func TestClearEmptiesBothSets(t *testing.T) {
	store := clipstore.New()
	store.Replace(clipstore.Copied, []string{"/a"})
	store.Replace(clipstore.Cut, []string{"/b"})

	store.Clear()
	store.Clear() // idempotent

	require.Empty(t, store.Snapshot(clipstore.Copied))
	require.Empty(t, store.Snapshot(clipstore.Cut))
}

func TestSnapshotIsDetachedCopy(t *testing.T) {
	store := clipstore.New()
	store.Replace(clipstore.Copied, []string{"/a", "/b"})

	snap := store.Snapshot(clipstore.Copied)
	snap[0] = "/mutated"

	require.Equal(t, []string{"/a", "/b"}, store.Snapshot(clipstore.Copied))
}

func TestStatusCutPrecedence(t *testing.T) {
	store := clipstore.New()
	store.Replace(clipstore.Copied, []string{"/both", "/copied-only"})
	store.Replace(clipstore.Cut, []string{"/both", "/cut-only"})

	require.Equal(t, clipstore.StatusCut, store.Status("/both"))
	require.Equal(t, clipstore.StatusCopied, store.Status("/copied-only"))
	require.Equal(t, clipstore.StatusCut, store.Status("/cut-only"))
	require.Equal(t, clipstore.StatusNone, store.Status("/missing"))
}

func TestSnapshotNeverObservesPartialReplace(t *testing.T) {
	store := clipstore.New()

	setA := []string{"/a/1", "/a/2", "/a/3"}
	setB := []string{"/b/1", "/b/2", "/b/3", "/b/4"}
	store.Replace(clipstore.Copied, setA)

	const readers = 8
	const updates = 200

	var wg sync.WaitGroup
	errs := make(chan error, readers)

	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < updates; j++ {
				snap := store.Snapshot(clipstore.Copied)
				if !sameSet(snap, setA) && !sameSet(snap, setB) {
					errs <- fmt.Errorf("mixed snapshot observed: %v", snap)
					return
				}
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < updates; j++ {
			if j%2 == 0 {
				store.Replace(clipstore.Copied, setB)
			} else {
				store.Replace(clipstore.Copied, setA)
			}
		}
	}()

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func sameSet(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	members := make(map[string]struct{}, len(want))
	for _, p := range want {
		members[p] = struct{}{}
	}
	for _, p := range got {
		if _, ok := members[p]; !ok {
			return false
		}
	}
	return true
}
