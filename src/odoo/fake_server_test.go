// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package odoo_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// wireRequest mirrors the request envelope as the server sees it.
type wireRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	ID      uint32 `json:"id"`
	Params  struct {
		Service string            `json:"service"`
		Method  string            `json:"method"`
		Args    []json.RawMessage `json:"args"`
	} `json:"params"`
	Path string `json:"-"`
}

// fakeOdoo is a minimal Odoo JSON-RPC endpoint.
type fakeOdoo struct {
	t         *testing.T
	tenants   []string
	users     map[string]string // login -> password
	uids      map[string]int
	partners  []map[string]any
	startInfo map[string]string

	mu       sync.Mutex
	requests []wireRequest
}

func newFakeOdoo(t *testing.T) (*fakeOdoo, *httptest.Server) {
	t.Helper()
	f := &fakeOdoo{
		t:       t,
		tenants: []string{"mytenant", "staging"},
		users:   map[string]string{"admin": "admin"},
		uids:    map[string]int{"admin": 2},
		startInfo: map[string]string{
			"host":     "https://trial.example.com",
			"database": "trial",
			"user":     "admin",
			"password": "secret",
		},
	}
	for i := 1; i <= 12; i++ {
		f.partners = append(f.partners, map[string]any{
			"id":    i,
			"name":  fmt.Sprintf("Partner %d", i),
			"email": false,
		})
	}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeOdoo) last() wireRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		f.t.Fatal("no request recorded")
	}
	return f.requests[len(f.requests)-1]
}

func (f *fakeOdoo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeOdoo) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req wireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	req.Path = r.URL.Path

	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	switch {
	case r.URL.Path == "/start":
		f.reply(w, req.ID, f.startInfo)
	case r.URL.Path != "/jsonrpc":
		http.NotFound(w, r)
	case req.Params.Service == "db" && req.Params.Method == "list":
		f.reply(w, req.ID, f.tenants)
	case req.Params.Service == "common" && req.Params.Method == "authenticate":
		f.authenticate(w, req)
	case req.Params.Service == "object" && req.Params.Method == "execute_kw":
		f.execute(w, req)
	default:
		f.fail(w, req.ID, "builtins.KeyError", "unknown method")
	}
}

func (f *fakeOdoo) authenticate(w http.ResponseWriter, req wireRequest) {
	var db, login, password string
	json.Unmarshal(req.Params.Args[0], &db)
	json.Unmarshal(req.Params.Args[1], &login)
	json.Unmarshal(req.Params.Args[2], &password)

	if !f.knownTenant(db) {
		f.fail(w, req.ID, "psycopg2.OperationalError", fmt.Sprintf("database %q does not exist", db))
		return
	}
	if pw, ok := f.users[login]; !ok || pw != password {
		f.reply(w, req.ID, false)
		return
	}
	f.reply(w, req.ID, f.uids[login])
}

func (f *fakeOdoo) knownTenant(db string) bool {
	for _, t := range f.tenants {
		if t == db {
			return true
		}
	}
	return false
}

func (f *fakeOdoo) execute(w http.ResponseWriter, req wireRequest) {
	args := req.Params.Args
	var uid int
	var password, model, method string
	json.Unmarshal(args[1], &uid)
	json.Unmarshal(args[2], &password)
	json.Unmarshal(args[3], &model)
	json.Unmarshal(args[4], &method)

	if uid != 2 || password != "admin" {
		f.fail(w, req.ID, "odoo.exceptions.AccessDenied", "Access Denied")
		return
	}

	switch {
	case model == "res.partner" && method == "search_read":
		f.searchRead(w, req)
	case model == "res.partner" && method == "search_count":
		f.reply(w, req.ID, len(f.partners))
	case model == "res.partner" && method == "read":
		f.reply(w, req.ID, f.partners[:1])
	case model == "res.partner" && method == "message_post":
		// returns None
		f.reply(w, req.ID, nil)
	default:
		f.fail(w, req.ID, "builtins.AttributeError", fmt.Sprintf("The method '%s.%s' does not exist", model, method))
	}
}

// searchRead understands a single leaf domain [["id", ">", N]].
func (f *fakeOdoo) searchRead(w http.ResponseWriter, req wireRequest) {
	var positional []json.RawMessage
	json.Unmarshal(req.Params.Args[5], &positional)

	minID := 0
	var domain [][]any
	if len(positional) > 0 && json.Unmarshal(positional[0], &domain) == nil && len(domain) == 1 {
		if v, ok := domain[0][2].(float64); ok {
			minID = int(v)
		}
	}

	var opts struct {
		Fields []string `json:"fields"`
		Limit  *int     `json:"limit"`
		Offset *int     `json:"offset"`
	}
	if len(req.Params.Args) > 6 {
		json.Unmarshal(req.Params.Args[6], &opts)
	}

	var out []map[string]any
	for _, p := range f.partners {
		if p["id"].(int) <= minID {
			continue
		}
		row := map[string]any{"id": p["id"]}
		for _, field := range opts.Fields {
			row[field] = p[field]
		}
		out = append(out, row)
	}
	if opts.Offset != nil && *opts.Offset < len(out) {
		out = out[*opts.Offset:]
	}
	if opts.Limit != nil && *opts.Limit < len(out) {
		out = out[:*opts.Limit]
	}
	f.reply(w, req.ID, out)
}

func (f *fakeOdoo) reply(w http.ResponseWriter, id uint32, result any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "id": id, "result": result})
}

func (f *fakeOdoo) fail(w http.ResponseWriter, id uint32, name, message string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"error": map[string]any{
			"code":    200,
			"message": "Odoo Server Error",
			"data":    map[string]any{"name": name, "message": message},
		},
	})
}
