// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package odoo

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/H0llyW00dzZ/odoo-jsonrpc/src/logger"
	"github.com/H0llyW00dzZ/odoo-jsonrpc/src/version"
	"golang.org/x/time/rate"
)

// Session is an authenticated connection context for one Odoo database.
//
// Host and tenant are fixed at construction. The user id and password are
// set by [Session.Login] and read as one consistent pair by every call.
// Callers must not run Login concurrently with other operations on the same
// Session if they care which credentials those operations use.
type Session struct {
	host   string
	tenant string

	mu         sync.RWMutex
	identity   int
	credential string
	authed     bool

	HTTPConfig *HTTPConfig   // HTTP client configuration
	Logger     logger.Logger // Optional exchange logger, nil disables logging
	Limiter    *rate.Limiter // Optional client-side throttle, nil disables it
}

// New creates a Session for host (e.g. "https://demo.odoo.com") and tenant
// (the database name). It performs no I/O.
func New(host, tenant string) *Session {
	return &Session{
		host:       strings.TrimRight(host, "/"),
		tenant:     tenant,
		HTTPConfig: NewHTTPConfig(version.Version),
	}
}

// NewAndLogin creates a Session and authenticates it. It fails iff Login fails.
func NewAndLogin(ctx context.Context, host, tenant, login, secret string) (*Session, error) {
	s := New(host, tenant)
	if _, err := s.Login(ctx, login, secret); err != nil {
		return nil, err
	}
	return s, nil
}

// Host returns the server base URL.
func (s *Session) Host() string { return s.host }

// Tenant returns the database name.
func (s *Session) Tenant() string { return s.tenant }

// Identity returns the authenticated user id and whether a login succeeded.
func (s *Session) Identity() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity, s.authed
}

// Authenticated reports whether a login succeeded on this Session.
func (s *Session) Authenticated() bool {
	_, ok := s.Identity()
	return ok
}

// credentials returns the identity/credential pair or a precondition error.
func (s *Session) credentials() (int, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.authed {
		return 0, "", newError(KindPrecondition, ErrNotAuthenticated, "cannot call model method")
	}
	return s.identity, s.credential, nil
}

// Login authenticates login/secret against the session's database and
// returns the user id.
//
// On success the user id and secret are stored for subsequent calls,
// replacing any earlier login. On failure the session keeps its previous
// state. A server that rejects the credentials answers with false, which is
// reported as [KindAuthentication].
func (s *Session) Login(ctx context.Context, login, secret string) (int, error) {
	req := NewRequest(ServiceCommon, "authenticate", []any{s.tenant, login, secret, ""})

	resp, err := exchange[json.RawMessage](ctx, s, pathJSONRPC, req)
	if err != nil {
		return 0, err
	}

	if bytes.Equal(bytes.TrimSpace(resp.Result), []byte("false")) {
		return 0, newError(KindAuthentication, nil, "authentication rejected for user %q on database %q", login, s.tenant)
	}

	var uid int
	if err := decodeResult(resp.Result, &uid); err != nil {
		return 0, newError(KindDecode, err, "unexpected authenticate result")
	}

	s.mu.Lock()
	s.identity = uid
	s.credential = secret
	s.authed = true
	s.mu.Unlock()

	return uid, nil
}

// Call invokes method on model with positional args through execute_kw and
// decodes the result into result, which must be a pointer (or nil to discard).
//
// The session must be authenticated; otherwise Call fails with
// [KindPrecondition] without contacting the server.
func (s *Session) Call(ctx context.Context, model, method string, args any, result any) error {
	return s.CallKw(ctx, model, method, args, nil, result)
}

// CallKw is like [Session.Call] and additionally sends kwargs as the keyword
// arguments of the remote method. A nil kwargs is omitted from the request.
func (s *Session) CallKw(ctx context.Context, model, method string, args, kwargs any, result any) error {
	raw, err := s.execute(ctx, model, method, args, kwargs)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	if err := decodeResult(raw, result); err != nil {
		return newError(KindDecode, err, "unexpected result type for %s.%s", model, method)
	}
	return nil
}

// execute builds the object/execute_kw argument list and returns the raw result.
func (s *Session) execute(ctx context.Context, model, method string, args, kwargs any) (json.RawMessage, error) {
	uid, password, err := s.credentials()
	if err != nil {
		return nil, err
	}

	params := []any{s.tenant, uid, password, model, method, args}
	if kwargs != nil {
		params = append(params, kwargs)
	}

	resp, err := exchange[json.RawMessage](ctx, s, pathJSONRPC, NewRequest(ServiceObject, "", params))
	if err != nil {
		return nil, err
	}
	return resp.Result, nil
}

// SearchReadOptions selects the fields and window of a search_read call.
// Nil Limit and Offset are left out of the request entirely.
type SearchReadOptions struct {
	Fields []string
	Limit  *int
	Offset *int
}

// searchReadKwargs is the keyword payload of search_read. Fields is always
// present; limit and offset only when set.
type searchReadKwargs struct {
	Fields []string `json:"fields"`
	Limit  *int     `json:"limit,omitempty"`
	Offset *int     `json:"offset,omitempty"`
}

func (o SearchReadOptions) kwargs() searchReadKwargs {
	fields := o.Fields
	if fields == nil {
		fields = []string{}
	}
	return searchReadKwargs{Fields: fields, Limit: o.Limit, Offset: o.Offset}
}

// SearchRead searches model with domain and reads the selected fields of the
// matching records into result (usually a pointer to a slice).
//
// The domain is wrapped in a one-element list because search_read takes the
// domain as its first positional argument.
func (s *Session) SearchRead(ctx context.Context, model string, domain any, opts SearchReadOptions, result any) error {
	return s.CallKw(ctx, model, "search_read", []any{domain}, opts.kwargs(), result)
}

// Start asks the server to provision connection parameters. Demo instances
// such as https://demo.odoo.com answer with host, database, user and password.
// No login is required.
func (s *Session) Start(ctx context.Context) (map[string]string, error) {
	resp, err := exchange[map[string]string](ctx, s, pathStart, NewRequest(ServiceCommon, "start", []any{}))
	if err != nil {
		return nil, err
	}
	return resp.Result, nil
}

// ListTenants returns the names of the databases the server exposes.
// No login is required.
func (s *Session) ListTenants(ctx context.Context) ([]string, error) {
	resp, err := exchange[[]string](ctx, s, pathJSONRPC, NewRequest(ServiceDB, "list", []any{nil}))
	if err != nil {
		return nil, err
	}
	return resp.Result, nil
}

// Call invokes method on model and returns the result decoded as T.
func Call[T any](ctx context.Context, s *Session, model, method string, args any) (T, error) {
	var out T
	err := s.Call(ctx, model, method, args, &out)
	return out, err
}

// SearchRead runs [Session.SearchRead] and returns the records decoded as T.
func SearchRead[T any](ctx context.Context, s *Session, model string, domain any, opts SearchReadOptions) ([]T, error) {
	var out []T
	if err := s.SearchRead(ctx, model, domain, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Int returns a pointer to v, for the optional fields of [SearchReadOptions].
func Int(v int) *int { return &v }
