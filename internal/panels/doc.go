// Package panels holds the client-side panel and folder state: a Store that
// funnels every mutation through the bridge and keeps an in-memory snapshot,
// plus pure category/search filtering over that snapshot.
package panels
