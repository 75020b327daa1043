package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigest_Deterministic(t *testing.T) {
	for _, password := range []string{"", "admin", "s3cret!", "mot de passe très long avec des accents éàü"} {
		assert.Equal(t, Digest(password), Digest(password), "repeated calls must agree for %q", password)
	}
}

func TestDigest_KnownValue(t *testing.T) {
	// SHA-256("admin") — the format stored in existing databases, so it
	// must never change.
	assert.Equal(t,
		"8c6976e5b5410415bde908bd4dee15dfb167a9c873fc4bb8a81f6f2ab448a918",
		Digest("admin"),
	)
}

func TestDigest_DistinctInputs(t *testing.T) {
	assert.NotEqual(t, Digest("admin"), Digest("Admin"))
	assert.NotEqual(t, Digest("a"), Digest("aa"))
}

func TestVerifyDigest(t *testing.T) {
	digest := Digest("correct horse")

	assert.True(t, VerifyDigest("correct horse", digest))
	assert.False(t, VerifyDigest("wrong horse", digest))
	assert.False(t, VerifyDigest("correct horse", "not-a-digest"))
	assert.False(t, VerifyDigest("", digest))
}
