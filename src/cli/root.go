// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/H0llyW00dzZ/odoo-jsonrpc/src/config"
	"github.com/H0llyW00dzZ/odoo-jsonrpc/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/odoo-jsonrpc/src/logger"
	"github.com/H0llyW00dzZ/odoo-jsonrpc/src/odoo"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var (
	// OperationPerformed is set once a subcommand starts talking to the server.
	OperationPerformed bool
	// OperationPerformedSuccessfully is set when that subcommand completed.
	OperationPerformedSuccessfully bool
)

// Errors returned for missing connection settings.
var (
	ErrHostRequired        = errors.New("server host is required (--host or server.host in the config file)")
	ErrDatabaseRequired    = errors.New("database is required (--db or server.database in the config file)")
	ErrCredentialsRequired = errors.New("login and password are required (--user/--password, config file or ODOO_RPC_PASSWORD)")
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	configPath string
	host       string
	database   string
	login      string
	password   string
	timeout    time.Duration
	verbose    bool

	log logger.Logger
}

// Execute runs the root command with os.Args, handling cancellation through ctx.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return newRootCmd(version, log).ExecuteContext(ctx)
}

func newRootCmd(version string, log logger.Logger) *cobra.Command {
	if log == nil {
		log = logger.NewCLILogger()
	}
	opts := &options{log: log}

	rootCmd := &cobra.Command{
		Use:           posix.ExecutableName("odoo-rpc"),
		Short:         "Odoo JSON-RPC client",
		Long:          "odoo-rpc talks to an Odoo server over JSON-RPC: list databases, log in, search records and call model methods.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "configuration file (.json, .yaml, .yml, .toml); defaults to $"+config.EnvConfigFile)
	flags.StringVar(&opts.host, "host", "", "server base URL, e.g. https://demo.odoo.com")
	flags.StringVarP(&opts.database, "db", "d", "", "database (tenant) name")
	flags.StringVarP(&opts.login, "user", "u", "", "login name")
	flags.StringVarP(&opts.password, "password", "p", "", "password or API key (prefer $"+config.EnvPassword+")")
	flags.DurationVar(&opts.timeout, "timeout", 0, "HTTP timeout per request (default from config, 30s)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every JSON-RPC exchange to stderr as JSON")

	rootCmd.AddCommand(
		newStartCmd(opts),
		newTenantsCmd(opts),
		newLoginCmd(opts),
		newSearchCmd(opts),
		newCallCmd(opts),
	)

	return rootCmd
}

// resolve merges the config file with flags; flags win.
func (o *options) resolve() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.host != "" {
		cfg.Server.Host = o.host
	}
	if o.database != "" {
		cfg.Server.Database = o.database
	}
	if o.login != "" {
		cfg.Auth.Login = o.login
	}
	if o.password != "" {
		cfg.Auth.Password = o.password
	}
	if o.timeout > 0 {
		cfg.Server.Timeout = int((o.timeout + time.Second - 1) / time.Second)
	}
	if cfg.Server.Host == "" {
		return nil, ErrHostRequired
	}
	return cfg, nil
}

// session builds an unauthenticated session from cfg.
func (o *options) session(cfg *config.Config, version string) *odoo.Session {
	s := odoo.New(cfg.Server.Host, cfg.Server.Database)
	s.HTTPConfig.Version = version
	s.HTTPConfig.Timeout = cfg.TimeoutDuration()
	if o.timeout > 0 {
		s.HTTPConfig.Timeout = o.timeout
	}
	if rps := cfg.RateLimit.RequestsPerSecond; rps > 0 {
		burst := max(cfg.RateLimit.Burst, 1)
		s.Limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
	if o.verbose {
		s.Logger = logger.NewJSONLogger(os.Stderr, false)
	}
	return s
}

// connect resolves the configuration and returns a session. With login set,
// the session is authenticated before it is returned.
func (o *options) connect(cmd *cobra.Command, login bool) (*odoo.Session, error) {
	cfg, err := o.resolve()
	if err != nil {
		return nil, err
	}
	s := o.session(cfg, cmd.Root().Version)
	if !login {
		OperationPerformed = true
		return s, nil
	}

	if cfg.Server.Database == "" {
		return nil, ErrDatabaseRequired
	}
	if cfg.Auth.Login == "" || cfg.Auth.Password == "" {
		return nil, ErrCredentialsRequired
	}
	OperationPerformed = true
	if _, err := s.Login(cmd.Context(), cfg.Auth.Login, cfg.Auth.Password); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return s, nil
}

// parseJSONFlag decodes the JSON text of a flag into a generic value.
func parseJSONFlag(name, text string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, fmt.Errorf("--%s is not valid JSON: %w", name, err)
	}
	return v, nil
}

// printJSON writes v as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
