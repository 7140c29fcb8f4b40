package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// secretPrefix is the marker Svix puts in front of the base64-encoded
// signing key.
const secretPrefix = "whsec_"

// signatureScheme is the only signature version currently issued.
const signatureScheme = "v1"

// VerifySignature checks a webhook delivery against the Svix signing
// scheme: the signed content is "<msgID>.<timestamp>.<payload>", the
// expected signature is the standard-base64 HMAC-SHA256 of that content
// keyed with the decoded secret, and the signature header carries
// space-separated "v1,<base64>" tokens of which any one may match.
func VerifySignature(secret, msgID, timestamp string, payload []byte, signatureHeader string) error {
	key, err := decodeSecret(secret)
	if err != nil {
		return err
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(msgID))
	mac.Write([]byte("."))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	for _, token := range strings.Split(signatureHeader, " ") {
		scheme, candidate, found := strings.Cut(token, ",")
		if !found || scheme != signatureScheme {
			continue
		}
		if hmac.Equal([]byte(candidate), []byte(expected)) {
			return nil
		}
	}

	return ErrInvalidSignature
}

// VerifyTimestamp rejects deliveries whose svix-timestamp is further
// than tolerance away from now, in either direction. A tolerance of
// zero disables the check.
func VerifyTimestamp(timestamp string, tolerance time.Duration, now time.Time) error {
	if tolerance <= 0 {
		return nil
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid svix-timestamp %q: %w", timestamp, err)
	}

	diff := now.Sub(time.Unix(ts, 0))
	if diff < 0 {
		diff = -diff
	}
	if diff > tolerance {
		return fmt.Errorf("svix-timestamp outside tolerance of %s", tolerance)
	}
	return nil
}

// decodeSecret strips the whsec_ prefix and base64-decodes the rest.
func decodeSecret(secret string) ([]byte, error) {
	trimmed := strings.TrimPrefix(secret, secretPrefix)
	key, err := base64.StdEncoding.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to decode webhook secret: %w", err)
	}
	return key, nil
}
