package common

// AuthorizationHeaderName is the gRPC metadata key carrying the bearer
// credential on privileged calls.
const AuthorizationHeaderName = "authorization"

// BearerPrefix is the optional scheme prefix stripped from the
// authorization value before token verification.
const BearerPrefix = "Bearer "
