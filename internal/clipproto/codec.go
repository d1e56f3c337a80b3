package clipproto

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// ErrDecode reports a payload that does not parse as a protocol message.
// It is distinct from ErrFraming: the bytes arrived intact but are not a
// valid message.
var ErrDecode = errors.New("clipproto: malformed payload")

// Protobuf field numbers. The wire schema is:
//
//	message Request  { Command command = 1; repeated string files = 2; }
//	message Response { string status = 1; repeated string files = 2; }
const (
	fieldRequestCommand = 1
	fieldRequestFiles   = 2

	fieldResponseStatus = 1
	fieldResponseFiles  = 2
)

// EncodeRequest serializes a request into protobuf wire bytes. Zero values
// are omitted, matching canonical proto3 encoding.
func EncodeRequest(req Request) []byte {
	var buf []byte
	if req.Command != 0 {
		buf = protowire.AppendTag(buf, fieldRequestCommand, protowire.VarintType)
		buf = protowire.AppendVarint(buf, uint64(uint32(req.Command)))
	}
	for _, file := range req.Files {
		buf = protowire.AppendTag(buf, fieldRequestFiles, protowire.BytesType)
		buf = protowire.AppendString(buf, file)
	}
	return buf
}

// DecodeRequest parses protobuf wire bytes into a request. Unknown field
// numbers are skipped; structural errors return ErrDecode.
func DecodeRequest(payload []byte) (Request, error) {
	var req Request
	for len(payload) > 0 {
		num, typ, n := protowire.ConsumeTag(payload)
		if n < 0 {
			return Request{}, fmt.Errorf("%w: bad field tag", ErrDecode)
		}
		payload = payload[n:]

		switch {
		case num == fieldRequestCommand && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(payload)
			if n < 0 {
				return Request{}, fmt.Errorf("%w: bad command varint", ErrDecode)
			}
			req.Command = Command(int32(v))
			payload = payload[n:]
		case num == fieldRequestFiles && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(payload)
			if n < 0 {
				return Request{}, fmt.Errorf("%w: bad file entry", ErrDecode)
			}
			req.Files = append(req.Files, v)
			payload = payload[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, payload)
			if n < 0 {
				return Request{}, fmt.Errorf("%w: bad field %d", ErrDecode, num)
			}
			payload = payload[n:]
		}
	}
	return req, nil
}

// EncodeResponse serializes a response into protobuf wire bytes.
func EncodeResponse(resp Response) []byte {
	var buf []byte
	if resp.Status != "" {
		buf = protowire.AppendTag(buf, fieldResponseStatus, protowire.BytesType)
		buf = protowire.AppendString(buf, resp.Status)
	}
	for _, file := range resp.Files {
		buf = protowire.AppendTag(buf, fieldResponseFiles, protowire.BytesType)
		buf = protowire.AppendString(buf, file)
	}
	return buf
}

// DecodeResponse parses protobuf wire bytes into a response.
func DecodeResponse(payload []byte) (Response, error) {
	var resp Response
	for len(payload) > 0 {
		num, typ, n := protowire.ConsumeTag(payload)
		if n < 0 {
			return Response{}, fmt.Errorf("%w: bad field tag", ErrDecode)
		}
		payload = payload[n:]

		switch {
		case num == fieldResponseStatus && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(payload)
			if n < 0 {
				return Response{}, fmt.Errorf("%w: bad status", ErrDecode)
			}
			resp.Status = v
			payload = payload[n:]
		case num == fieldResponseFiles && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(payload)
			if n < 0 {
				return Response{}, fmt.Errorf("%w: bad file entry", ErrDecode)
			}
			resp.Files = append(resp.Files, v)
			payload = payload[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, payload)
			if n < 0 {
				return Response{}, fmt.Errorf("%w: bad field %d", ErrDecode, num)
			}
			payload = payload[n:]
		}
	}
	return resp, nil
}
