// Package web is the boundary between Outcome values and HTTP. It turns an
// Outcome into a Response carrying a status code and a JSON envelope,
// {"data": ...} on success and {"errors": [...]} on failure, and offers
// net/http handlers built on top of it.
//
// The rop packages never import web; it only relies on the public surface of
// Outcome (IsSuccess, Value, Errors, FirstError).
package web
