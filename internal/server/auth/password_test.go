package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestArgon2idHasher_RoundTripAndSalt(t *testing.T) {
	h := NewArgon2idHasher()

	a, err := h.Hash("secret1")
	require.NoError(t, err)
	b, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(a, "$argon2id$v=19$m=65536,t=1,p=4$"))
	assert.NotEqual(t, a, b, "hashes must be salted")
	assert.True(t, h.Compare(a, "secret1"))
	assert.False(t, h.Compare(a, "secret2"))
}

func TestArgon2idHasher_RejectsMalformed(t *testing.T) {
	h := NewArgon2idHasher()

	for _, hash := range []string{
		"",
		"$argon2id$",
		"$argon2id$v=19$m=65536,t=1,p=4$!!!$abc",
		"$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=0,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=1,p=0$c2FsdA$aGFzaA",
	} {
		assert.NotPanics(t, func() {
			assert.False(t, h.Compare(hash, "pw"), hash)
		}, hash)
	}
}

func TestLegacySHA256Hasher_MatchesKnownDigest(t *testing.T) {
	h := LegacySHA256Hasher{}

	got, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.Equal(t, "5b11618c2e44027877d0cd0921ed166b9f176f50587fc91e7534dd2946db77d6", got)
	assert.True(t, h.Compare(strings.ToUpper(got), "secret1"))
	assert.False(t, h.Compare(got, "secret2"))
}

func TestMultiHasher_HashesWithConfiguredScheme(t *testing.T) {
	m, err := NewPasswordHasher(SchemeBcrypt, false)
	require.NoError(t, err)

	hash, err := m.Hash("pw")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
	assert.True(t, m.Compare(hash, "pw"))

	m, err = NewPasswordHasher("", false)
	require.NoError(t, err)
	hash, err = m.Hash("pw")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	_, err = NewPasswordHasher("md5", false)
	assert.Error(t, err)
}

func TestMultiHasher_LegacyDigestsRequireOptIn(t *testing.T) {
	legacy, _ := LegacySHA256Hasher{}.Hash("secret1")

	strict, err := NewPasswordHasher(SchemeArgon2id, false)
	require.NoError(t, err)
	assert.False(t, strict.Compare(legacy, "secret1"))

	lenient, err := NewPasswordHasher(SchemeArgon2id, true)
	require.NoError(t, err)
	assert.True(t, lenient.Compare(legacy, "secret1"))
	assert.False(t, lenient.Compare(legacy, "secret2"))
	assert.False(t, lenient.Compare("not-a-hash", "secret1"))
}

func TestMultiHasher_VerifiesAnySupportedFormat(t *testing.T) {
	m, err := NewPasswordHasher(SchemeArgon2id, true)
	require.NoError(t, err)

	bc, err := (&BcryptHasher{Cost: bcrypt.MinCost}).Hash("pw")
	require.NoError(t, err)
	ar, err := NewArgon2idHasher().Hash("pw")
	require.NoError(t, err)

	assert.True(t, m.Compare(bc, "pw"))
	assert.True(t, m.Compare(ar, "pw"))
}
