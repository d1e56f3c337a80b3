package clipproto_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fmclip/internal/clipproto"
)

func TestRequestRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		req  clipproto.Request
	}{
		{name: "copy empty", req: clipproto.Request{Command: clipproto.CommandCopy}},
		{name: "copy paths", req: clipproto.Request{Command: clipproto.CommandCopy, Files: []string{"/a/b.txt", "/c/d.txt"}}},
		{name: "cut duplicates", req: clipproto.Request{Command: clipproto.CommandCut, Files: []string{"/x", "/x", "/x"}}},
		{name: "clear", req: clipproto.Request{Command: clipproto.CommandClear}},
		{name: "get copy", req: clipproto.Request{Command: clipproto.CommandGetCopy}},
		{name: "get cut", req: clipproto.Request{Command: clipproto.CommandGetCut}},
		{name: "unicode and spaces", req: clipproto.Request{
			Command: clipproto.CommandCopy,
			Files:   []string{"/home/ユーザー/ファイル.txt", "/tmp/with space/naïve.md", "/tmp/émoji 🎉"},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decoded, err := clipproto.DecodeRequest(clipproto.EncodeRequest(tc.req))
			require.NoError(t, err)
			require.Equal(t, tc.req, decoded)
		})
	}
}

func TestResponseRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		resp clipproto.Response
	}{
		{name: "success empty", resp: clipproto.Response{Status: clipproto.StatusSuccess}},
		{name: "success files", resp: clipproto.Response{Status: clipproto.StatusSuccess, Files: []string{"/a", "/b c", "/日本語"}}},
		{name: "unknown", resp: clipproto.Response{Status: clipproto.StatusUnknown}},
		{name: "error", resp: clipproto.Response{Status: clipproto.StatusError}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decoded, err := clipproto.DecodeResponse(clipproto.EncodeResponse(tc.resp))
			require.NoError(t, err)
			require.Equal(t, tc.resp, decoded)
		})
	}
}

func TestDecodeRequestGarbage(t *testing.T) {
	// 0xff opens a tag whose varint never terminates.
	_, err := clipproto.DecodeRequest([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff})
	require.ErrorIs(t, err, clipproto.ErrDecode)

	// Valid tag for field 2 (bytes) but the declared string length runs
	// past the end of the payload.
	_, err = clipproto.DecodeRequest([]byte{0x12, 0x20, 'a'})
	require.ErrorIs(t, err, clipproto.ErrDecode)
}

func TestDecodeRequestUnknownOrdinal(t *testing.T) {
	encoded := clipproto.EncodeRequest(clipproto.Request{Command: clipproto.Command(99)})
	decoded, err := clipproto.DecodeRequest(encoded)
	require.NoError(t, err)
	require.Equal(t, clipproto.Command(99), decoded.Command)
	require.False(t, decoded.Command.Known())
}

func TestDecodeRequestSkipsUnknownFields(t *testing.T) {
	buf := clipproto.EncodeRequest(clipproto.Request{Command: clipproto.CommandCut, Files: []string{"/a"}})
	// Append field 7 (varint), which the schema does not define.
	buf = append(buf, 0x38, 0x05)
	decoded, err := clipproto.DecodeRequest(buf)
	require.NoError(t, err)
	require.Equal(t, clipproto.CommandCut, decoded.Command)
	require.Equal(t, []string{"/a"}, decoded.Files)
}

func TestCommandKnown(t *testing.T) {
	for _, cmd := range []clipproto.Command{
		clipproto.CommandCopy,
		clipproto.CommandCut,
		clipproto.CommandClear,
		clipproto.CommandGetCopy,
		clipproto.CommandGetCut,
	} {
		require.True(t, cmd.Known(), cmd.String())
	}
	require.False(t, clipproto.Command(5).Known())
	require.False(t, clipproto.Command(-1).Known())
}
