// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package odoo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/H0llyW00dzZ/odoo-jsonrpc/src/internal/helper/gc"
)

// Endpoint paths relative to the session host.
const (
	pathJSONRPC = "/jsonrpc"
	pathStart   = "/start"
)

// maxErrorBody bounds how much of a failed HTTP response ends up in an error message.
const maxErrorBody = 256

// post performs one exchange: it encodes req, POSTs it to s.host+path and
// returns the raw response body.
func (s *Session) post(ctx context.Context, path string, req *Request) ([]byte, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, newError(KindDecode, err, "failed to encode %s.%s request", req.Params.Service, req.Params.Method)
	}

	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx); err != nil {
			return nil, newError(KindTransport, err, "rate limiter")
		}
	}

	url := s.host + path
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, newError(KindTransport, err, "failed to build request for %s", url)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", s.HTTPConfig.GetUserAgent())

	start := time.Now()
	resp, err := s.HTTPConfig.Client().Do(httpReq)
	if err != nil {
		s.logf("exchange service=%s method=%s id=%d error=%q", req.Params.Service, req.Params.Method, req.ID, err)
		return nil, newError(KindTransport, err, "POST %s", url)
	}
	defer resp.Body.Close()

	body, err := gc.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(KindTransport, err, "failed to read response from %s", url)
	}

	s.logf("exchange service=%s method=%s id=%d status=%d duration=%s",
		req.Params.Service, req.Params.Method, req.ID, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := body
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return nil, newError(KindTransport, fmt.Errorf("unexpected HTTP status %s: %s", resp.Status, bytes.TrimSpace(snippet)), "POST %s", url)
	}

	return body, nil
}

// exchange sends req to path and decodes the result as T.
func exchange[T any](ctx context.Context, s *Session, path string, req *Request) (*Response[T], error) {
	body, err := s.post(ctx, path, req)
	if err != nil {
		return nil, err
	}
	return DecodeResponse[T](body)
}

func (s *Session) logf(format string, v ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, v...)
	}
}
