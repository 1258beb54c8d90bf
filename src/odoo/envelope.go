// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package odoo

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"

	"github.com/H0llyW00dzZ/odoo-jsonrpc/src/internal/helper/jsonrpc"
)

// Remote services addressed through the "service" parameter.
const (
	ServiceCommon = "common" // authentication and server metadata
	ServiceObject = "object" // model method dispatch
	ServiceDB     = "db"     // database management and discovery
)

// DefaultMethod is the method used when a request does not name one.
const DefaultMethod = "execute_kw"

// envelopeMethod is the JSON-RPC method of every request; the real target
// travels in Params.
const envelopeMethod = "call"

// RequestParams selects the remote service and method and carries the positional arguments.
type RequestParams struct {
	Service string `json:"service"`
	Method  string `json:"method"`
	Args    any    `json:"args"`
}

// Request is the JSON-RPC request envelope sent for every exchange.
type Request struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	ID      uint32        `json:"id"`
	Params  RequestParams `json:"params"`
}

// NewRequest builds a request for service. An empty method selects
// [DefaultMethod]. The args value is sent as-is; it is normally a []any of
// positional arguments.
func NewRequest(service, method string, args any) *Request {
	if method == "" {
		method = DefaultMethod
	}
	return &Request{
		JSONRPC: jsonrpc.Version,
		Method:  envelopeMethod,
		ID:      jsonrpc.NewID(),
		Params: RequestParams{
			Service: service,
			Method:  method,
			Args:    args,
		},
	}
}

// Response is a decoded JSON-RPC response whose result has type T.
type Response[T any] struct {
	ID     uint32       `json:"id"`
	Result T            `json:"result"`
	Error  *RemoteError `json:"error,omitempty"`
}

// rawResponse defers decoding of the result until presence has been checked.
type rawResponse struct {
	ID     *uint32         `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *RemoteError    `json:"error"`
}

var (
	errMissingResult = errors.New(`response has no "result" member`)
	errNullResult    = errors.New("result is null")
)

var unmarshalerType = reflect.TypeFor[json.Unmarshaler]()

// acceptsNull reports whether a value of type t can represent a JSON null:
// pointers, interfaces and types with their own UnmarshalJSON such as [Nullable].
func acceptsNull(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface:
		return true
	}
	return reflect.PointerTo(t).Implements(unmarshalerType)
}

// decodeResult unmarshals raw into out. A null result is rejected unless the
// value out points to can hold it.
func decodeResult(raw json.RawMessage, out any) error {
	if t := reflect.TypeOf(out); t != nil && t.Kind() == reflect.Pointer &&
		bytes.Equal(bytes.TrimSpace(raw), []byte("null")) && !acceptsNull(t.Elem()) {
		return errNullResult
	}
	return json.Unmarshal(raw, out)
}

// DecodeResponse parses a response body into a [Response] with result type T.
//
// It fails with [KindDecode] when data is not JSON, carries no result, or the
// result does not decode into T, and with [KindRemote] when the server
// returned a JSON-RPC error object. A null result is only accepted when T is
// a pointer, an interface or implements [json.Unmarshaler].
func DecodeResponse[T any](data []byte) (*Response[T], error) {
	var raw rawResponse
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, newError(KindDecode, err, "malformed JSON-RPC response")
	}

	resp := &Response[T]{Error: raw.Error}
	if raw.ID != nil {
		resp.ID = *raw.ID
	}

	if raw.Error != nil {
		return resp, newError(KindRemote, raw.Error, "remote call failed")
	}
	if raw.Result == nil {
		return resp, newError(KindDecode, errMissingResult, "malformed JSON-RPC response")
	}
	if err := decodeResult(raw.Result, &resp.Result); err != nil {
		return resp, newError(KindDecode, err, "unexpected result type")
	}

	return resp, nil
}
