// Package process provides the pseudo-terminal backend for pane sessions.
//
// It defines a small capability interface ([PTY]) over the operations the
// session engine needs (non-blocking reads, writes, resize and synchronous
// termination) plus a [Spawner] that binds a freshly started shell to a new
// PTY. The production implementation uses creack/pty; tests substitute a
// scripted fake.
//
// # Non-blocking reads
//
// The engine is poll-driven: one render tick reads whatever bytes the child
// has produced and moves on. Read never blocks; when no data is available it
// returns [ErrWouldBlock], which callers treat as "no output this tick".
//
// # Ownership
//
// Each PTY is exclusively owned by one session. There is no sharing and no
// handoff; Terminate both stops the child and releases the PTY.
package process
