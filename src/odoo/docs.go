// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package odoo implements a client for the [Odoo] JSON-RPC API.
// It provides capabilities to:
//   - Authenticate a [Session] against a database (tenant) and keep the resulting user id and password.
//   - Invoke any model method through the generic execute_kw dispatcher ([Session.Call], [Call]).
//   - Search and read records in a single round trip ([Session.SearchRead], [SearchRead]).
//   - Discover databases and bootstrap demo instances ([Session.ListTenants], [Session.Start]).
//
// Every operation is one synchronous HTTP POST; nothing is retried or cached.
// Failures are reported as [*Error], whose message is always human readable and
// whose [Kind] tells transport, decode, remote, authentication and precondition
// failures apart.
//
// Odoo sends false for empty scalar fields. Declare such fields as [Nullable]
// to decode them as absent instead of failing:
//
//	type Product struct {
//		ID          int              `json:"id"`
//		Name        string           `json:"name"`
//		DefaultCode Nullable[string] `json:"default_code"`
//	}
//
//	products, err := odoo.SearchRead[Product](ctx, session, "product.template", nil,
//		odoo.SearchReadOptions{Fields: []string{"name", "default_code"}})
//
// [Odoo]: https://www.odoo.com/documentation/master/developer/reference/external_api.html
package odoo
