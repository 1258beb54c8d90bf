// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/H0llyW00dzZ/odoo-jsonrpc/src/odoo"
	"github.com/spf13/cobra"
)

func newStartCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Provision a demo instance and print its connection details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.connect(cmd, false)
			if err != nil {
				return err
			}

			info, err := s.Start(cmd.Context())
			if err != nil {
				return err
			}
			OperationPerformedSuccessfully = true

			if asJSON {
				return printJSON(cmd, info)
			}

			keys := make([]string, 0, len(info))
			for k := range info {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			rows := make([][]string, 0, len(keys))
			for _, k := range keys {
				rows = append(rows, []string{k, info[k]})
			}
			return renderTable(cmd.OutOrStdout(), []string{"key", "value"}, rows)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func newTenantsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "tenants",
		Aliases: []string{"databases", "dbs"},
		Short:   "List the databases available on the server",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.connect(cmd, false)
			if err != nil {
				return err
			}

			tenants, err := s.ListTenants(cmd.Context())
			if err != nil {
				return err
			}
			OperationPerformedSuccessfully = true

			for _, t := range tenants {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}
}

func newLoginCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authenticate and print the user id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.connect(cmd, true)
			if err != nil {
				return err
			}

			uid, _ := s.Identity()
			OperationPerformedSuccessfully = true
			opts.log.Printf("Authenticated on %s (%s)", s.Host(), s.Tenant())
			fmt.Fprintln(cmd.OutOrStdout(), uid)
			return nil
		},
	}
}

func newSearchCmd(opts *options) *cobra.Command {
	var (
		domain string
		fields []string
		limit  int
		offset int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "search MODEL",
		Short: "Search and read records of a model",
		Example: `  odoo-rpc search res.partner --fields name,email --limit 5
  odoo-rpc search res.partner --domain '[["is_company","=",true]]' --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseJSONFlag("domain", domain)
			if err != nil {
				return err
			}

			searchOpts := odoo.SearchReadOptions{Fields: fields}
			if cmd.Flags().Changed("limit") {
				searchOpts.Limit = odoo.Int(limit)
			}
			if cmd.Flags().Changed("offset") {
				searchOpts.Offset = odoo.Int(offset)
			}

			s, err := opts.connect(cmd, true)
			if err != nil {
				return err
			}

			records, err := odoo.SearchRead[odoo.Record](cmd.Context(), s, args[0], filter, searchOpts)
			if err != nil {
				return err
			}
			OperationPerformedSuccessfully = true

			if asJSON {
				return printJSON(cmd, records)
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No records found")
				return nil
			}
			return renderRecords(cmd.OutOrStdout(), fields, records)
		},
	}

	f := cmd.Flags()
	f.StringVar(&domain, "domain", "[]", "search domain as JSON, e.g. '[[\"id\",\">\",10]]'")
	f.StringSliceVarP(&fields, "fields", "f", nil, "comma separated fields to read (default: all)")
	f.IntVarP(&limit, "limit", "l", 0, "maximum number of records")
	f.IntVar(&offset, "offset", 0, "number of records to skip")
	f.BoolVar(&asJSON, "json", false, "print the records as JSON")
	return cmd
}

func newCallCmd(opts *options) *cobra.Command {
	var (
		rawArgs   string
		rawKwargs string
	)

	cmd := &cobra.Command{
		Use:     "call MODEL METHOD",
		Short:   "Invoke an arbitrary model method and print the JSON result",
		Example: `  odoo-rpc call res.partner search_count --args '[[]]'`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			positional, err := parseJSONFlag("args", rawArgs)
			if err != nil {
				return err
			}
			var keywords any
			if strings.TrimSpace(rawKwargs) != "" {
				if keywords, err = parseJSONFlag("kwargs", rawKwargs); err != nil {
					return err
				}
			}

			s, err := opts.connect(cmd, true)
			if err != nil {
				return err
			}

			var result any
			if err := s.CallKw(cmd.Context(), args[0], args[1], positional, keywords, &result); err != nil {
				return err
			}
			OperationPerformedSuccessfully = true
			return printJSON(cmd, result)
		},
	}

	cmd.Flags().StringVar(&rawArgs, "args", "[]", "positional arguments as a JSON array")
	cmd.Flags().StringVar(&rawKwargs, "kwargs", "", "keyword arguments as a JSON object")
	return cmd
}
