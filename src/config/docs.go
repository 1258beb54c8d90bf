// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads connection settings for the Odoo JSON-RPC client.
//
// Settings come from, in increasing priority: built-in defaults, a JSON, YAML
// or TOML file (chosen by extension), and environment variables. The merged
// result is validated against an embedded [JSON Schema].
//
// [JSON Schema]: https://json-schema.org/
package config
