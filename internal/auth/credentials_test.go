package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSharedSecretVerifier(t *testing.T) {
	verifier := NewSharedSecretVerifier("hunter2")

	assert.True(t, verifier.Verify("hunter2"))
	assert.False(t, verifier.Verify("hunter3"))
	assert.False(t, verifier.Verify(""))
}

func TestSharedSecretVerifier_EmptyConfigured(t *testing.T) {
	// An unset admin password must not make the gate wide open.
	verifier := NewSharedSecretVerifier("")

	assert.False(t, verifier.Verify(""))
	assert.False(t, verifier.Verify("anything"))
}
