// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// schema constrains the JSON form of [Config].
const schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "server": {
      "type": "object",
      "properties": {
        "host": { "type": "string", "pattern": "^https?://" },
        "database": { "type": "string" },
        "timeoutSeconds": { "type": "integer", "minimum": 1 }
      }
    },
    "auth": {
      "type": "object",
      "properties": {
        "login": { "type": "string" },
        "password": { "type": "string" }
      }
    },
    "rateLimit": {
      "type": "object",
      "properties": {
        "requestsPerSecond": { "type": "number", "minimum": 0 },
        "burst": { "type": "integer", "minimum": 0 }
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(schema)

// Validate checks config against the embedded schema. All violations are
// reported in one error wrapping [ErrInvalidConfig].
func Validate(config *Config) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(config))
	if err != nil {
		return fmt.Errorf("failed to validate config: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
