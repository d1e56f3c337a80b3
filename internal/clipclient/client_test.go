package clipclient_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fmclip/internal/clipclient"
	"fmclip/internal/clipstore"
	"fmclip/internal/testsupport"
)

func TestPublishAndGet(t *testing.T) {
	socket, _ := testsupport.StartServer(t)
	client := clipclient.New(socket, time.Second)

	require.NoError(t, client.PublishCopied([]string{"/a/b.txt", "/c/d.txt"}))
	require.NoError(t, client.PublishCut([]string{"/x"}))

	copied, err := client.GetCopied()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"/a/b.txt", "/c/d.txt"}, copied)

	cut, err := client.GetCut()
	require.NoError(t, err)
	require.Equal(t, []string{"/x"}, cut)
}

func TestPublishClear(t *testing.T) {
	socket, store := testsupport.StartServer(t)
	client := clipclient.New(socket, time.Second)

	require.NoError(t, client.PublishCopied([]string{"/a"}))
	require.NoError(t, client.PublishCut([]string{"/b"}))
	require.NoError(t, client.PublishClear())

	require.Zero(t, store.Len(clipstore.Copied))
	require.Zero(t, store.Len(clipstore.Cut))
}

func TestDialFailureWrapsErrSyncFailed(t *testing.T) {
	client := clipclient.New(filepath.Join(t.TempDir(), "missing.sock"), 100*time.Millisecond)

	_, err := client.GetCopied()
	require.ErrorIs(t, err, clipclient.ErrSyncFailed)

	require.ErrorIs(t, client.PublishClear(), clipclient.ErrSyncFailed)
}

func TestEachCallUsesFreshConnection(t *testing.T) {
	socket, _ := testsupport.StartServer(t)
	client := clipclient.New(socket, time.Second)

	// The server closes every connection after one exchange; repeated calls
	// only work because the client redials each time.
	for i := 0; i < 5; i++ {
		require.NoError(t, client.PublishCopied([]string{"/a"}))
		copied, err := client.GetCopied()
		require.NoError(t, err)
		require.Equal(t, []string{"/a"}, copied)
	}
}
