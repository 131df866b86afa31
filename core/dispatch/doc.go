// Package dispatch runs the matched chain for a request and writes the
// prepared response to the transport.
//
// A Dispatcher is built from a sealed route table:
//
//	d := dispatch.New(table.Seal(),
//		dispatch.WithLogger(log),
//		dispatch.WithMetrics(dispatch.NewMetrics(dispatch.WithRegistry(reg))),
//	)
//	http.ListenAndServe(":8080", d)
//
// Dispatch never fails: a miss becomes 404, an exhausted chain, a handler
// error or a recovered panic becomes a 500 whose body carries no internal
// detail. The cause is logged through the Error Signal policy of
// core/jrror, with panic-typed signals downgraded so the process never
// exits from inside a request.
//
// ServeHTTP adds the transport side: it skips the write when the client is
// gone, serves file intents with Range support, streams files, upgrades
// socket intents to WebSocket and sets X-Request-ID on every response.
package dispatch
