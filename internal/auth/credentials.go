package auth

import "crypto/subtle"

// CredentialVerifier checks a presented secret against the configured one.
type CredentialVerifier interface {
	Verify(secret string) bool
}

// SharedSecretVerifier compares against a single shared admin password.
type SharedSecretVerifier struct {
	secret string
}

func NewSharedSecretVerifier(secret string) *SharedSecretVerifier {
	return &SharedSecretVerifier{secret: secret}
}

// Verify uses a constant-time comparison so response timing doesn't leak
// how much of the password matched.
func (v *SharedSecretVerifier) Verify(secret string) bool {
	if v.secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(v.secret), []byte(secret)) == 1
}
