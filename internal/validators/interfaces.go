// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound request payloads before they reach the
// service layer. Failures are reported with the sentinel errors in errors.go
// so handlers can pick the matching client message with errors.Is.
package validators

import "context"

// Validator checks v. When fields are given only those checks run;
// an unknown field name yields ErrUnknownField.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}

// ValidatorFunc adapts an ordinary function to the Validator interface.
type ValidatorFunc func(ctx context.Context, v any, fields ...string) error

func (f ValidatorFunc) Validate(ctx context.Context, v any, fields ...string) error {
	return f(ctx, v, fields...)
}

var (
	_ Validator = (*RequestValidator)(nil)
	_ Validator = ValidatorFunc(nil)
)
