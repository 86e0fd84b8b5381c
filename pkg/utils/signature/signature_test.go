package signature_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/codeql-fly/pkg/utils/signature"
)

func TestSign(t *testing.T) {
	// Example from GitHub webhook documentation
	got := signature.Sign([]byte("It's a Secret to Everybody"), []byte("Hello, World!"))
	gt.V(t, got).Equal("sha256=757107ea0eb2509fc211221cce984b8a37570b6d7586c22c46f4379c8b043e17")
}

func TestVerify(t *testing.T) {
	secret := []byte("webhook-secret")
	body := []byte(`{"action":"published","release":{"tag_name":"v1.2.3"}}`)
	valid := signature.Sign(secret, body)

	t.Run("accepts valid signature", func(t *testing.T) {
		gt.True(t, signature.Verify(secret, body, []string{valid}))
	})

	t.Run("rejects missing header", func(t *testing.T) {
		gt.False(t, signature.Verify(secret, body, nil))
	})

	t.Run("rejects multiple header values", func(t *testing.T) {
		gt.False(t, signature.Verify(secret, body, []string{valid, valid}))
	})

	t.Run("rejects length mismatch", func(t *testing.T) {
		gt.False(t, signature.Verify(secret, body, []string{valid[:len(valid)-1]}))
		gt.False(t, signature.Verify(secret, body, []string{valid + "0"}))
	})

	t.Run("rejects missing prefix", func(t *testing.T) {
		gt.False(t, signature.Verify(secret, body, []string{valid[len("sha256="):]}))
	})

	t.Run("rejects empty secret", func(t *testing.T) {
		gt.False(t, signature.Verify(nil, body, []string{signature.Sign(nil, body)}))
	})

	t.Run("rejects wrong secret", func(t *testing.T) {
		gt.False(t, signature.Verify([]byte("other"), body, []string{valid}))
	})

	t.Run("rejects every single-bit mutation of body", func(t *testing.T) {
		for i := range body {
			for bit := 0; bit < 8; bit++ {
				mutated := append([]byte(nil), body...)
				mutated[i] ^= 1 << bit
				gt.False(t, signature.Verify(secret, mutated, []string{valid}))
			}
		}
	})

	t.Run("rejects every single-bit mutation of digest", func(t *testing.T) {
		for i := range valid {
			for bit := 0; bit < 8; bit++ {
				mutated := []byte(valid)
				mutated[i] ^= 1 << bit
				gt.False(t, signature.Verify(secret, body, []string{string(mutated)}))
			}
		}
	})
}
