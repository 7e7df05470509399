// Package common contains shared constants and sentinel errors used across
// OurChat server and client components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// Cache key prefixes for session entries.
const (
	TokenKeyPrefix     = "token:"
	UserTokenKeyPrefix = "user_token:"
)
