// Package protocol implements the newline-delimited framing spoken between a worker
// and its parent.
//
// Wire format (UTF-8 text, one record per line):
//
//	out  Ready                       once, at startup
//	in   <identifier>                one request per line; blank lines are ignored
//	out  <counter>:<payload>:<id>    zero or more data lines per request
//	out  (empty line)                terminates every response block
//
// Reader trims requests and reports end-of-input as io.EOF. Writer buffers data
// lines and flushes on the readiness token and on every block terminator, so the
// parent never waits on a partially flushed block.
package protocol
