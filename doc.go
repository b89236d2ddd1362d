// Package trustedcurl defines the engine contract of the easy-handle
// adapter: the typed Handle and Engine interfaces plus the callback
// function types the engine invokes during a transfer.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	trustedcurl/         Root package with the Engine and Handle contracts
//	├── easy/            The host-facing adapter: setOption, getInfo, perform,
//	│                    callback registry and trampolines, socket monitor
//	├── curl/            Native identifiers: option/info tables, status codes,
//	│                    version packing, linked string lists
//	├── engine/          In-memory loopback Engine for tests and tooling
//	├── form/            Multipart form descriptors and validation
//	├── host/            Host value coercions and the Callable type
//	├── poller/          Readiness loop the socket monitor registers with
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Open a handle, configure a transfer, and run it:
//
//	e, err := easy.New(eng)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer e.Close()
//
//	e.SetOpt("URL", "https://example.com/")
//	e.SetOpt("WRITEFUNCTION", func(args ...any) (any, error) {
//	    data := args[0].([]byte)
//	    body.Write(data)
//	    return len(data), nil
//	})
//
//	code, err := e.Perform()
//	fmt.Println(easy.StrError(code))
//
// # Error Model
//
// Engine status codes are data, not errors: Perform, Send, and Recv return
// the code the engine produced, and an error only when the adapter itself
// could not carry out the request (closed handle, bad value, failed
// registration). Host callback failures abort the transfer and surface from
// Perform, or are deferred for the owning scheduler to drain when the handle
// runs inside a multi handle.
//
// # Thread Safety
//
// A handle and everything reachable from it belong to a single goroutine.
// Only the process-wide counters in package easy are safe for concurrent use.
package trustedcurl
