// Package engine runs the notation pipeline for one document: parse the
// text, build the graph, check the wiring. It also loads documents from disk
// and memoizes compile results for hosts that recompile on every edit.
package engine
