package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2HashService_SignupPasswords(t *testing.T) {
	svc := NewArgon2HashService()

	tests := []struct {
		name     string
		password string
		attempt  string
		want     bool
	}{
		{"signup password", "password123", "password123", true},
		{"wrong password", "password123", "password124", false},
		{"case matters", "Checky!2026", "checky!2026", false},
		{"unicode", "Ọ̀rọ̀-aṣínà", "Ọ̀rọ̀-aṣínà", true},
		{"long passphrase", strings.Repeat("naira", 200), strings.Repeat("naira", 200), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := svc.Hash(tt.password)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=1,p=4$"), hash)
			assert.NotContains(t, hash, tt.password)

			match, err := svc.Verify(tt.attempt, hash)
			require.NoError(t, err)
			assert.Equal(t, tt.want, match)
		})
	}
}

func TestArgon2HashService_SamePasswordDifferentAccounts(t *testing.T) {
	svc := NewArgon2HashService()

	ada, err := svc.Hash("password123")
	require.NoError(t, err)
	bob, err := svc.Hash("password123")
	require.NoError(t, err)

	assert.NotEqual(t, ada, bob, "every account gets its own salt")
	for _, h := range []string{ada, bob} {
		match, err := svc.Verify("password123", h)
		require.NoError(t, err)
		assert.True(t, match)
	}
}

func TestArgon2HashService_SeededAccountsHaveNoHash(t *testing.T) {
	// Seeded demo accounts store no hash; services skip Verify for them.
	// Verify itself refuses an empty hash rather than matching anything.
	_, err := NewArgon2HashService().Verify("any-password", "")
	assert.Error(t, err)

	_, err = NewArgon2HashService().Verify("password", "not-a-valid-hash")
	assert.Error(t, err)
}

func TestArgon2HashService_CustomParams(t *testing.T) {
	cheap := NewArgon2HashServiceWithParams(Argon2Params{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 16})

	hash, err := cheap.Hash("pw")
	require.NoError(t, err)
	assert.Contains(t, hash, "m=8192,t=1,p=1")

	// Verification reads cost from the hash, so the default service accepts it too.
	match, err := NewArgon2HashService().Verify("pw", hash)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestArgon2HashService_RejectsForeignHashes(t *testing.T) {
	svc := NewArgon2HashService()

	tests := []struct {
		name string
		hash string
	}{
		{"bcrypt", "$2a$10$abcdefghijklmnopqrstuv"},
		{"argon2i", "$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{"old version", "$argon2id$v=16$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{"bad salt", "$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify("pw", tt.hash)
			assert.Error(t, err)
		})
	}
}
