// Package server is the live editor backend. Clients connect over socket.io
// and emit the full document text with the source event after every edit;
// the server replies with either a graph event or a parse_error event, the
// latter still carrying the partial graph.
//
// The same mux serves /health, /metrics and POST /compile, which takes the
// text as the request body and answers with the same payloads as JSON.
package server
