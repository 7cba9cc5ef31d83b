// Package host implements the bridge.Host contract on top of a local
// SQLite database: account registration and JWT sessions, panel and folder
// persistence, the location hierarchy, and serial-number queries to
// physical panels over TCP. Replies are JSON-encoded strings exactly as
// the bridge adapter expects them.
package host
