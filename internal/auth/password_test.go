package auth

import (
	"testing"

	"github.com/alexedwards/argon2id"
)

func TestNewHasher(t *testing.T) {
	tests := []struct {
		name    string
		want    PasswordHasher
		wantErr bool
	}{
		{"", Plain{}, false},
		{HashingPlain, Plain{}, false},
		{HashingArgon2id, Argon2id{Params: argon2id.DefaultParams}, false},
		{"bcrypt", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewHasher(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewHasher() error = %+v", err)
			}
			if got != tt.want {
				t.Errorf("want = %+v, got = %+v", tt.want, got)
			}
		})
	}
}

func TestPlain(t *testing.T) {
	h := Plain{}

	stored, err := h.Hash("1234")
	if err != nil {
		t.Fatalf("Hash() error = %+v", err)
	}
	if stored != "1234" {
		t.Fatalf("plain hash should keep the password, got %s", stored)
	}

	tests := []struct {
		name      string
		checkPw   string
		wantMatch bool
	}{
		{"correct pw", "1234", true},
		{"incorrect pw", "4321", false},
		{"prefix", "123", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isMatch, err := h.Compare(tt.checkPw, stored)
			if err != nil {
				t.Fatalf("Compare() error = %+v", err)
			}
			if isMatch != tt.wantMatch {
				t.Errorf("want match = %v, got = %v", tt.wantMatch, isMatch)
			}
		})
	}
}

func TestArgon2id(t *testing.T) {
	h := Argon2id{Params: argon2id.DefaultParams}

	t.Run("unique hashes", func(t *testing.T) {
		pw := "password1234"
		hash, err := h.Hash(pw)
		if err != nil {
			t.Fatalf("password hash fail #1: %+v", err)
		}

		hash2, err := h.Hash(pw)
		if err != nil {
			t.Fatalf("password hash fail #2: %+v", err)
		}

		if hash == hash2 {
			t.Fatalf("hash and hash2 are the same hashes; should be different: %s, %s", hash, hash2)
		}
	})

	tests := []struct {
		name      string
		password  string
		checkPw   string
		hash      string
		wantErr   bool
		wantMatch bool
	}{
		{"correct pw", "mypassword1234", "mypassword1234", "", false, true},
		{"incorrect pw", "mypassword1234", "passwordDD1234", "", false, false},
		{"wrong hash", "mypassword1234", "passwordDD1234", "not-a-hash", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash := tt.hash
			if hash == "" {
				var err error
				hash, err = h.Hash(tt.password)
				if err != nil {
					t.Fatalf("%+v", err)
				}
			}

			isMatch, err := h.Compare(tt.checkPw, hash)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Compare() error = %+v", err)
			}
			if isMatch != tt.wantMatch {
				t.Errorf("password and hash don't match")
			}
		})
	}
}
