// Package proto holds the wire types and gRPC service plumbing for the
// bandroom API. The schema is documented in api/proto/bandroom.proto; the
// messages here are maintained by hand and travel over gRPC's pluggable
// codec mechanism using a JSON codec, so the package stays free of
// generated code while keeping the standard client/server surface
// (service descriptors, typed clients, FullMethodName constants).
package proto

import (
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype handled by the codec below. The
// clients in this package select it on every call; servers pick it up from
// the codec registry automatically.
const CodecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

// callOptions prepends the codec selection to per-call options.
func callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}
