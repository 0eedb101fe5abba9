// Package auth provides the caller identity model used for authorization
// decisions inside the application layer.
//
// The package deliberately does not verify credentials. Token verification is
// an external collaborator behind the ports.TokenVerifier interface; what
// arrives here is the already-verified pair of subject id and role. Ownership
// and role rules (customers act only on their own orders, staff act on any
// order) are expressed as methods on Claims so command and query handlers can
// enforce them uniformly.
package auth
