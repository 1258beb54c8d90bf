// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// odoo-rpc is a command-line client for Odoo servers speaking JSON-RPC.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/odoo-jsonrpc/cmd/odoo-rpc@latest
//
// # Usage
//
//	odoo-rpc [COMMAND] [FLAGS]
//
// # Commands
//
//	start     Provision a demo instance and print its connection details
//	tenants   List the databases available on the server
//	login     Authenticate and print the user id
//	search    Search and read records of a model
//	call      Invoke an arbitrary model method and print the JSON result
//
// # Flags
//
//	-c, --config    Path to a configuration file (JSON, YAML or TOML)
//	    --host      Server base URL
//	-d, --db        Database (tenant) name
//	-u, --user      Login name
//	-p, --password  Password or API key
//	    --timeout   HTTP timeout per request (e.g. 10s)
//	-v, --verbose   Log every JSON-RPC exchange to stderr as JSON
//	    --help      Show help information
//	    --version   Show version information
//
// # Environment Variables
//
//	ODOO_RPC_CONFIG_FILE  Path to configuration file (alternative to --config flag)
//	ODOO_RPC_PASSWORD     Password used when neither the flag nor the file sets one
//
// # Examples
//
// Get a fresh demo instance:
//
//	odoo-rpc start --host https://demo.odoo.com
//
// List the first five partners as a markdown table:
//
//	odoo-rpc search res.partner --host https://demo.odoo.com -d demo -u admin \
//	    --fields name,email --limit 5
//
// Count companies using a config file:
//
//	odoo-rpc call res.partner search_count --config odoo.yaml \
//	    --args '[[["is_company","=",true]]]'
package main
