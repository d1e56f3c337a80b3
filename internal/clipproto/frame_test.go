package clipproto_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"fmclip/internal/clipproto"
)

func TestFrameRoundTrip(t *testing.T) {
	payload := clipproto.EncodeRequest(clipproto.Request{
		Command: clipproto.CommandCopy,
		Files:   []string{"/a/b.txt", "/c/d.txt"},
	})

	var buf bytes.Buffer
	require.NoError(t, clipproto.WriteFrame(&buf, payload))

	got, err := clipproto.ReadFrame(&buf)
	require.NoError(t, err)
	require.Equal(t, payload, got)
	require.Zero(t, buf.Len(), "frame should consume exactly its own bytes")
}

func TestFrameEmptyPayload(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, clipproto.WriteFrame(&buf, nil))
	require.Equal(t, 4, buf.Len())

	got, err := clipproto.ReadFrame(&buf)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestReadFrameShortPayload(t *testing.T) {
	var buf bytes.Buffer
	var header [4]byte
	binary.BigEndian.PutUint32(header[:], 10)
	buf.Write(header[:])
	buf.WriteString("abc") // 3 of the declared 10 bytes

	_, err := clipproto.ReadFrame(&buf)
	require.ErrorIs(t, err, clipproto.ErrFraming)
}

func TestReadFrameShortHeader(t *testing.T) {
	_, err := clipproto.ReadFrame(bytes.NewReader([]byte{0x00, 0x01}))
	require.ErrorIs(t, err, clipproto.ErrFraming)

	_, err = clipproto.ReadFrame(bytes.NewReader(nil))
	require.ErrorIs(t, err, clipproto.ErrFraming)
}

func TestReadFrameOversizeDeclaredLength(t *testing.T) {
	var header [4]byte
	binary.BigEndian.PutUint32(header[:], clipproto.MaxFrameSize+1)

	_, err := clipproto.ReadFrame(bytes.NewReader(header[:]))
	require.ErrorIs(t, err, clipproto.ErrFraming)
}

func TestWriteFrameOversizePayload(t *testing.T) {
	err := clipproto.WriteFrame(&bytes.Buffer{}, make([]byte, clipproto.MaxFrameSize+1))
	require.ErrorIs(t, err, clipproto.ErrEncode)
}
