package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalid = errors.New("invalid signed cookie")

// Signer produces and checks "payload.signature" cookie values, where the
// signature is base64url(HMAC-SHA256(payload)).
type Signer struct {
	Secret []byte
}

func (s Signer) Seal(payload string) string {
	return payload + "." + s.sign(payload)
}

func (s Signer) Open(v string) (string, error) {
	payload, sig, ok := strings.Cut(v, ".")
	if !ok || payload == "" || strings.Contains(sig, ".") {
		return "", ErrInvalid
	}
	if !hmac.Equal([]byte(s.sign(payload)), []byte(sig)) {
		return "", ErrInvalid
	}
	return payload, nil
}

func (s Signer) sign(payload string) string {
	mac := hmac.New(sha256.New, s.Secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
