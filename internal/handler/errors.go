// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when neither an HTTP nor
// an HTTPS address is configured. The application fails at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
