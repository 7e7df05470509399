// Package client is the gRPC client for the OurChat user service.
//
// GRPCClient keeps the session token returned by Login and attaches it to
// every outbound call as the access_token metadata entry. Transport
// failures map to ErrUnavailable and ErrUnauthorized; replies with
// success=false map to ErrRejected wrapping the server's message.
package client
