// Package jwt implements RS256 JSON Web Token signing and validation
// without external dependencies.
//
// The API consumes tokens minted by the identity service and only needs the
// public key at runtime; signing support backs the dev-token command and the
// test suite. Claims carry the standard registered fields plus user_id and
// username.
package jwt
