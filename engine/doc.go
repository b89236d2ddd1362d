// Package engine provides an in-memory loopback transfer engine.
//
// The production adapter wraps a native transfer library; this package
// implements the same root contracts (trustedcurl.Engine, trustedcurl.Handle)
// entirely in memory so the adapter, its tests and the CLI can run without
// native code.
//
// # Scripted transfers
//
// A loopback Perform does not touch the network. Instead, the handle
// replays a Script through whichever callback slots are installed, in the
// order a real transfer would exercise them:
//
//  1. Debug trace events
//  2. Wildcard chunk-begin/chunk-end pairs, one per scripted file entry
//  3. Header lines, one per header-callback invocation
//  4. Body chunks, one per write-callback invocation
//  5. Progress ticks (transfer-progress preferred over the legacy slot)
//  6. One trailer request, when the script asks for it
//
// The first abort or failure signaled by a callback stops the replay with
// the matching engine code (write mismatch, chunk failure, callback abort).
//
// # Introspection
//
// Info values are scripted with the SetInfo* hooks. The effective URL
// defaults to the configured URL option, matching a transfer that saw no
// redirects. List infos hand out freshly allocated lists the caller frees.
//
// # Thread safety
//
// A Handle is not safe for concurrent use, same as the native engine's
// easy handle.
package engine
