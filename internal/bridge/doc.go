// Package bridge defines the host contract (JSON-string in/out operations
// for auth, panels, folders, locations, and device queries) and a typed
// adapter over it. The adapter degrades to neutral results when no host is
// attached and never lets a malformed reply escape as a parse panic.
package bridge
