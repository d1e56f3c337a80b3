// Package clipboard is the UI layer's local cached view of the shared
// selection state.
//
// The terminal UI keeps its own copied/cut sets so it can render markers
// without a round trip per row, and uses the daemon only to share state
// between processes: Synchronize pulls both sets, the Add and Clear
// operations mutate the local sets and publish the full result. All calls
// are blocking and sequential; the UI never has more than one request in
// flight.
package clipboard

import (
	"sort"
	"sync"

	"fmclip/internal/clipclient"
	"fmclip/internal/clipstore"
)

// Clipboard is a client process's view of the shared clipboard.
type Clipboard struct {
	mu     sync.Mutex
	copied map[string]struct{}
	cut    map[string]struct{}
	client *clipclient.Client
}

// New returns an empty clipboard backed by the given client.
func New(client *clipclient.Client) *Clipboard {
	return &Clipboard{
		copied: make(map[string]struct{}),
		cut:    make(map[string]struct{}),
		client: client,
	}
}

// Synchronize refreshes the local cache from the daemon: first the copied
// set, then the cut set. The local cache is only replaced after both
// exchanges succeed; if either fails the cache keeps its previous contents
// and the whole operation reports failure.
func (c *Clipboard) Synchronize() error {
	copied, err := c.client.GetCopied()
	if err != nil {
		return err
	}
	cut, err := c.client.GetCut()
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.copied = toSet(copied)
	c.cut = toSet(cut)
	c.mu.Unlock()
	return nil
}

// AddCopied extends the local copied set and publishes the full set to the
// daemon. The local mutation sticks even when publishing fails, matching
// the UI behavior of marking files immediately; the error tells the caller
// other processes have not seen the update.
func (c *Clipboard) AddCopied(paths ...string) error {
	c.mu.Lock()
	for _, p := range paths {
		c.copied[p] = struct{}{}
	}
	snapshot := keys(c.copied)
	c.mu.Unlock()

	return c.client.PublishCopied(snapshot)
}

// AddCut extends the local cut set and publishes the full set to the daemon.
func (c *Clipboard) AddCut(paths ...string) error {
	c.mu.Lock()
	for _, p := range paths {
		c.cut[p] = struct{}{}
	}
	snapshot := keys(c.cut)
	c.mu.Unlock()

	return c.client.PublishCut(snapshot)
}

// Clear empties both local sets and publishes the clear to the daemon. As
// with the Add operations, the local mutation sticks even when publishing
// fails: the UI drops its markers immediately, and the error tells the
// caller other processes still see the old sets.
func (c *Clipboard) Clear() error {
	c.mu.Lock()
	c.copied = make(map[string]struct{})
	c.cut = make(map[string]struct{})
	c.mu.Unlock()

	return c.client.PublishClear()
}

// Status resolves a path against the local cache with cut precedence,
// mirroring the store rule so every process renders a path the same way.
func (c *Clipboard) Status(path string) clipstore.PathStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.cut[path]; ok {
		return clipstore.StatusCut
	}
	if _, ok := c.copied[path]; ok {
		return clipstore.StatusCopied
	}
	return clipstore.StatusNone
}

// Copied returns a sorted copy of the local copied set.
func (c *Clipboard) Copied() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return keys(c.copied)
}

// Cut returns a sorted copy of the local cut set.
func (c *Clipboard) Cut() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return keys(c.cut)
}

func toSet(paths []string) map[string]struct{} {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	return set
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
