// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/H0llyW00dzZ/odoo-jsonrpc/src/config"
	"github.com/H0llyW00dzZ/odoo-jsonrpc/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const version = "1.3.3.7-testing"

// recorder keeps the args of the last execute_kw call.
type recorder struct {
	mu   sync.Mutex
	args []any
}

func (r *recorder) set(args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.args = args
}

func (r *recorder) get() []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.args
}

type rpcRequest struct {
	ID     uint32 `json:"id"`
	Params struct {
		Service string `json:"service"`
		Method  string `json:"method"`
		Args    []any  `json:"args"`
	} `json:"params"`
}

// newFakeServer answers the handful of calls the CLI makes.
func newFakeServer(t *testing.T, rec *recorder) *httptest.Server {
	t.Helper()

	partners := []map[string]any{
		{"id": 1, "name": "Azure Interior", "email": "azure@example.com", "parent_id": false},
		{"id": 2, "name": "Deco Addict", "email": false, "parent_id": []any{1, "Azure Interior"}},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		reply := func(result any) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "id": req.ID, "result": result})
		}

		switch {
		case r.URL.Path == "/start":
			reply(map[string]string{"host": "https://demo.example.com", "database": "demo_1", "user": "admin", "password": "secret"})
		case req.Params.Service == "db":
			reply([]string{"mytenant", "staging"})
		case req.Params.Service == "common":
			if req.Params.Args[1] == "admin" && req.Params.Args[2] == "admin" {
				reply(2)
				return
			}
			reply(false)
		case req.Params.Service == "object":
			if rec != nil {
				rec.set(req.Params.Args)
			}
			switch req.Params.Args[4] {
			case "search_read":
				reply(partners)
			case "search_count":
				reply(len(partners))
			default:
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(map[string]any{
					"jsonrpc": "2.0",
					"id":      req.ID,
					"error": map[string]any{
						"code":    200,
						"message": "Odoo Server Error",
						"data":    map[string]any{"name": "builtins.AttributeError", "message": "no such method"},
					},
				})
			}
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// run executes the root command with args and returns stdout and the log output.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigFile, "")
	t.Setenv(config.EnvPassword, "")

	OperationPerformed = false
	OperationPerformedSuccessfully = false

	var logs bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&logs)

	var out bytes.Buffer
	cmd := newRootCmd(version, log)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func TestTenants(t *testing.T) {
	srv := newFakeServer(t, nil)

	out, _, err := run(t, "tenants", "--host", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "mytenant\nstaging\n", out)
	assert.True(t, OperationPerformed)
	assert.True(t, OperationPerformedSuccessfully)
}

func TestStart(t *testing.T) {
	srv := newFakeServer(t, nil)

	t.Run("Table", func(t *testing.T) {
		out, _, err := run(t, "start", "--host", srv.URL)
		require.NoError(t, err)
		assert.Contains(t, out, "demo_1")
		assert.Contains(t, out, "https://demo.example.com")
		assert.Contains(t, out, "|")
	})

	t.Run("JSON", func(t *testing.T) {
		out, _, err := run(t, "start", "--host", srv.URL, "--json")
		require.NoError(t, err)

		var info map[string]string
		require.NoError(t, json.Unmarshal([]byte(out), &info))
		assert.Equal(t, "demo_1", info["database"])
	})
}

func TestLogin(t *testing.T) {
	srv := newFakeServer(t, nil)

	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantOut string
	}{
		{
			name:    "Success",
			args:    []string{"login", "--host", srv.URL, "--db", "mytenant", "-u", "admin", "-p", "admin"},
			wantOut: "2\n",
		},
		{
			name:    "MissingDatabase",
			args:    []string{"login", "--host", srv.URL, "-u", "admin", "-p", "admin"},
			wantErr: ErrDatabaseRequired,
		},
		{
			name:    "MissingPassword",
			args:    []string{"login", "--host", srv.URL, "--db", "mytenant", "-u", "admin"},
			wantErr: ErrCredentialsRequired,
		},
		{
			name:    "MissingHost",
			args:    []string{"login", "--db", "mytenant", "-u", "admin", "-p", "admin"},
			wantErr: ErrHostRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, logs, err := run(t, tt.args...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, OperationPerformed)
				assert.False(t, OperationPerformedSuccessfully)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, out)
			assert.Contains(t, logs, "Authenticated on "+srv.URL)
			assert.NotContains(t, logs, "admin")
		})
	}
}

func TestLogin_Rejected(t *testing.T) {
	srv := newFakeServer(t, nil)

	_, _, err := run(t, "login", "--host", srv.URL, "--db", "mytenant", "-u", "admin", "-p", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login failed")
	assert.True(t, OperationPerformed)
	assert.False(t, OperationPerformedSuccessfully)
}

func TestSearch(t *testing.T) {
	rec := &recorder{}
	srv := newFakeServer(t, rec)
	base := []string{"search", "res.partner", "--host", srv.URL, "--db", "mytenant", "-u", "admin", "-p", "admin"}

	t.Run("Table", func(t *testing.T) {
		out, _, err := run(t, append(base, "--fields", "name,email,parent_id", "--limit", "5")...)
		require.NoError(t, err)
		lastArgs := rec.get()

		assert.Contains(t, out, "Azure Interior")
		assert.Contains(t, out, "Deco Addict")
		assert.Contains(t, out, "azure@example.com")
		assert.NotContains(t, out, "false")
		assert.Contains(t, strings.ToLower(out), "parent id")

		require.Len(t, lastArgs, 7)
		assert.Equal(t, "search_read", lastArgs[4])
		assert.Equal(t, []any{[]any{}}, lastArgs[5])
		kwargs := lastArgs[6].(map[string]any)
		assert.Equal(t, []any{"name", "email", "parent_id"}, kwargs["fields"])
		assert.Equal(t, float64(5), kwargs["limit"])
		assert.NotContains(t, kwargs, "offset")
	})

	t.Run("JSONWithDomain", func(t *testing.T) {
		out, _, err := run(t, append(base, "--domain", `[["id",">",0]]`, "--json")...)
		require.NoError(t, err)

		var records []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &records))
		assert.Len(t, records, 2)

		lastArgs := rec.get()
		assert.Equal(t, []any{[]any{[]any{"id", ">", float64(0)}}}, lastArgs[5])
		kwargs := lastArgs[6].(map[string]any)
		assert.Equal(t, []any{}, kwargs["fields"])
		assert.NotContains(t, kwargs, "limit")
	})

	t.Run("InvalidDomain", func(t *testing.T) {
		_, _, err := run(t, append(base, "--domain", "[[")...)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--domain is not valid JSON")
		assert.False(t, OperationPerformed)
	})
}

func TestCall(t *testing.T) {
	rec := &recorder{}
	srv := newFakeServer(t, rec)
	base := []string{"--host", srv.URL, "--db", "mytenant", "-u", "admin", "-p", "admin"}

	t.Run("Result", func(t *testing.T) {
		out, _, err := run(t, append([]string{"call", "res.partner", "search_count", "--args", "[[]]"}, base...)...)
		require.NoError(t, err)
		assert.Equal(t, "2\n", out)
		assert.Len(t, rec.get(), 6)
	})

	t.Run("Kwargs", func(t *testing.T) {
		_, _, err := run(t, append([]string{"call", "res.partner", "search_count", "--args", "[[]]", "--kwargs", `{"context":{"lang":"en_US"}}`}, base...)...)
		require.NoError(t, err)
		lastArgs := rec.get()
		require.Len(t, lastArgs, 7)
		assert.Equal(t, map[string]any{"context": map[string]any{"lang": "en_US"}}, lastArgs[6])
	})

	t.Run("RemoteError", func(t *testing.T) {
		_, _, err := run(t, append([]string{"call", "res.partner", "explode"}, base...)...)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no such method")
	})
}

func TestConfigFile(t *testing.T) {
	srv := newFakeServer(t, nil)

	path := filepath.Join(t.TempDir(), "odoo.yaml")
	content := "server:\n  host: " + srv.URL + "\n  database: mytenant\nauth:\n  login: admin\n  password: wrong\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Run("FileOnly", func(t *testing.T) {
		_, _, err := run(t, "login", "--config", path)
		require.Error(t, err)
	})

	t.Run("FlagOverridesFile", func(t *testing.T) {
		out, _, err := run(t, "login", "--config", path, "-p", "admin")
		require.NoError(t, err)
		assert.Equal(t, "2\n", out)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, _, err := run(t, "tenants", "--config", filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
	})
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"Nil", nil, ""},
		{"False", false, ""},
		{"True", true, "true"},
		{"String", "hello", "hello"},
		{"Integer", float64(42), "42"},
		{"Float", 3.5, "3.5"},
		{"Many2one", []any{float64(7), "Azure Interior"}, "Azure Interior"},
		{"IDList", []any{float64(1), float64(2), float64(3)}, "[1,2,3]"},
		{"Object", map[string]any{"a": float64(1)}, `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatValue(tt.in))
		})
	}
}
