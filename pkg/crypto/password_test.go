package crypto

import (
	"strings"
	"testing"
)

func TestArgon2_Hash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "success", password: "testPassword123", wantErr: false},
		{name: "empty password", password: "", wantErr: false},
		{name: "long password", password: strings.Repeat("a", 128), wantErr: false},
		{name: "unicode", password: "パスワード🔐", wantErr: false},
		{name: "special chars", password: "p@ssw0rd!#$%", wantErr: false},
		{name: "null byte", password: "pass\x00word", wantErr: false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			a := NewArgon2()

			// Act
			hash, err := a.Hash(test.password)

			// Assert
			if (err != nil) != test.wantErr {
				t.Fatalf("Hash() error = %v, wantErr %v", err, test.wantErr)
			}
			if !test.wantErr {
				if hash == "" {
					t.Error("Hash() returned empty hash")
				}
				// Format validation
				if !strings.HasPrefix(hash, "$argon2id$") {
					t.Error("Hash() should start with $argon2id$")
				}
				if !strings.Contains(hash, "$v=19$") {
					t.Error("Hash() should contain version 19")
				}
				if len(strings.Split(hash, "$")) != 6 {
					t.Error("Hash() should have 6 parts")
				}
			}
		})
	}
}

func TestArgon2_Hash_UniqueSalts(t *testing.T) {
	// Arrange
	a := NewArgon2()
	password := "samePassword"

	// Act
	hash1, _ := a.Hash(password)
	hash2, _ := a.Hash(password)

	// Assert
	if hash1 == hash2 {
		t.Error("Hash() should generate different hashes with unique salts")
	}
}

func TestArgon2_Verify(t *testing.T) {
	tests := []struct {
		name     string
		password string
		attempt  string
		wantOk   bool
	}{
		{name: "correct password", password: "correctPassword", attempt: "correctPassword", wantOk: true},
		{name: "wrong password", password: "correctPassword", attempt: "wrongPassword", wantOk: false},
		{name: "case sensitive", password: "correctPassword", attempt: "correctpassword", wantOk: false},
		{name: "extra character", password: "correctPassword", attempt: "correctPassword1", wantOk: false},
		{name: "single char difference", password: "thisIsAVeryLongPasswordToTestSingleCharDiff", attempt: "thisIsAVeryLongPasswordXoTestSingleCharDiff", wantOk: false},
		{name: "empty attempt", password: "correctPassword", attempt: "", wantOk: false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			a := NewArgon2()
			hash, _ := a.Hash(test.password)

			// Act
			ok, err := a.Verify(test.attempt, hash)

			// Assert
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if ok != test.wantOk {
				t.Errorf("Verify() = %v, want %v", ok, test.wantOk)
			}
		})
	}
}

// Verification must use the parameters embedded in the digest, not the
// instance's own, so costs can be raised without invalidating old digests.
func TestArgon2_Verify_EmbeddedParams(t *testing.T) {
	// Arrange: hash with non-default parameters
	old := &Argon2{Memory: 16 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
	hash, err := old.Hash("migrateMe")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	// Act: verify with a default-configured instance
	ok, err := NewArgon2().Verify("migrateMe", hash)

	// Assert
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if !ok {
		t.Error("Verify() should accept digests produced with older parameters")
	}
}

func TestArgon2_Verify_CorruptDigest(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{name: "empty", hash: ""},
		{name: "wrong part count", hash: "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA"},
		{name: "unsupported algorithm", hash: "$argon2i$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA"},
		{name: "bad version", hash: "$argon2id$v=banana$m=65536,t=3,p=2$c2FsdA$aGFzaA"},
		{name: "incompatible version", hash: "$argon2id$v=18$m=65536,t=3,p=2$c2FsdA$aGFzaA"},
		{name: "bad parameters", hash: "$argon2id$v=19$m=65536$c2FsdA$aGFzaA"},
		{name: "bad salt encoding", hash: "$argon2id$v=19$m=65536,t=3,p=2$!!!$aGFzaA"},
		{name: "bad hash encoding", hash: "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$!!!"},
		{name: "not a phc string", hash: "plaintext"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			a := NewArgon2()

			ok, err := a.Verify("whatever", test.hash)

			if err == nil {
				t.Fatal("Verify() should error on corrupt digest")
			}
			if ok {
				t.Error("Verify() must never report a match for a corrupt digest")
			}
		})
	}
}

func TestArgon2_NeedsRehash(t *testing.T) {
	a := NewArgon2()
	hash, err := a.Hash("password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	tests := []struct {
		name   string
		hasher *Argon2
		hash   string
		want   bool
	}{
		{name: "same parameters", hasher: NewArgon2(), hash: hash, want: false},
		{name: "raised memory", hasher: &Argon2{Memory: 128 * 1024, Iterations: 3, Parallelism: 2, SaltLength: 16, KeyLength: 32}, hash: hash, want: true},
		{name: "raised iterations", hasher: &Argon2{Memory: 64 * 1024, Iterations: 4, Parallelism: 2, SaltLength: 16, KeyLength: 32}, hash: hash, want: true},
		{name: "corrupt digest", hasher: NewArgon2(), hash: "garbage", want: true},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := test.hasher.NeedsRehash(test.hash); got != test.want {
				t.Errorf("NeedsRehash() = %v, want %v", got, test.want)
			}
		})
	}
}
