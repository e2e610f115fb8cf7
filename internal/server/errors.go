package server

import "errors"

// errNoServersAreCreated is returned by NewServer when no listener address
// has a matching handler.
var errNoServersAreCreated = errors.New("no servers are created")
