// Package clipserver accepts clipboard protocol connections and applies
// requests to the shared selection store.
//
// The server owns the unix socket listener and runs one goroutine per
// accepted connection. Each connection carries exactly one request/response
// exchange; there are no sessions and no pipelining. Handler failures are
// isolated to their own connection: a framing error, malformed payload, or
// write failure never stops the accept loop or disturbs the store for other
// clients.
package clipserver
