// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package odoo

import "github.com/H0llyW00dzZ/odoo-jsonrpc/src/internal/helper/jsonrpc"

// Record is a loosely typed row as returned by read or search_read.
type Record map[string]any

// Decode converts the record into out, a pointer to a struct. Fields of type
// [Nullable] keep their lenient decoding.
func (r Record) Decode(out any) error {
	if err := jsonrpc.UnmarshalFromMap(r, out); err != nil {
		return newError(KindDecode, err, "cannot decode record")
	}
	return nil
}

// Domain is a search filter: a list of leaves such as ["id", ">", 2] and
// the prefix operators "&", "|" and "!".
type Domain []any

// Where returns a domain leaf comparing field to value with op.
func Where(field, op string, value any) []any {
	return []any{field, op, value}
}
