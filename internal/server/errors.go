// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"errors"
	"fmt"
)

var (
	errNoServersAreCreated = errors.New("no servers are created")

	errNoHTTPHandler = fmt.Errorf("%w: http handler is missing", errNoServersAreCreated)
	errNoHTTPAddress = fmt.Errorf("%w: http address is empty", errNoServersAreCreated)
)
