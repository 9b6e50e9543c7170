// Package client implements the typed HTTP gateway to the mailpilot backend.
//
// It is the only layer that talks to the network: it attaches the stored
// credential to outgoing requests, picks the request encoding (JSON, or
// multipart when a training file is attached), and normalizes every
// transport and HTTP outcome into the closed sentinel set defined in
// internal/common. Callers never see raw transport errors.
package client
