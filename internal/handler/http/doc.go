// Package http implements the REST transport of the vero chat server.
//
// It wires the chi router, decodes JSON requests, maps service errors to
// status codes and hosts the middleware chain: trace ids, access logging,
// gzip, panic recovery, login throttling and the session gate that guards
// chat, media and whoami routes.
package http
