// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the Odoo JSON-RPC client.
// It implements a Cobra-based CLI that discovers databases, provisions demo
// instances, authenticates, searches records and invokes arbitrary model
// methods. Output is plain text, a markdown table, or JSON. The package merges
// flags with the config package and reports progress through the logger package.
package cli
