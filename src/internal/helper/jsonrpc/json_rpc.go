// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonrpc

import (
	"encoding/json"
	"math/rand/v2"

	"github.com/mark3labs/mcp-go/mcp"
)

// Version is the protocol tag carried in the "jsonrpc" field of every request.
const Version = mcp.JSONRPC_VERSION

// MaxID is the exclusive upper bound of generated correlation ids.
const MaxID = 10000

// NewID returns a correlation id drawn uniformly from [1, MaxID).
//
// The id only exists for wire compatibility with servers that require one.
// Exchanges are strictly request-then-response, so ids are never matched and
// may repeat across requests.
func NewID() uint32 {
	return uint32(rand.IntN(MaxID-1)) + 1
}

// UnmarshalFromMap converts a map/any to a struct via JSON round-trip.
//
// It facilitates converting a generic map (e.g., a record returned by a
// search_read call) into a strongly-typed struct. This is done by marshaling
// the map to JSON and then unmarshaling it into the destination struct, so
// custom [json.Unmarshaler] fields take part in the conversion.
//
// Parameters:
//   - src: Source map or value to convert
//   - dest: Pointer to destination struct
//
// Returns:
//   - error: Error if marshaling or unmarshaling fails
func UnmarshalFromMap(src any, dest any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}
