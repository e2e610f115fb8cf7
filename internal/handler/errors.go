package handler

import "errors"

// errNoHandlersAreCreated means neither SERVER_ADDRESS nor
// SERVER_GRPC_ADDRESS is set, so the process would have nothing to serve.
var errNoHandlersAreCreated = errors.New("no handlers are created")
