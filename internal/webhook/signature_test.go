package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_dGVzdC1zaWduaW5nLWtleS0wMTIzNDU2Nzg5"

// signPayload produces a "v1,<base64>" token the way Svix does.
func signPayload(t *testing.T, secret, msgID, timestamp string, payload []byte) string {
	t.Helper()

	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, "whsec_"))
	require.NoError(t, err)

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(msgID + "." + timestamp + "."))
	mac.Write(payload)
	return "v1," + base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func Test_VerifySignature_Valid(t *testing.T) {
	payload := []byte(`{"type":"user.created","data":{"id":"user_A"}}`)
	header := signPayload(t, testSecret, "msg_1", "1700000000", payload)

	err := VerifySignature(testSecret, "msg_1", "1700000000", payload, header)
	require.NoError(t, err)
}

func Test_VerifySignature_WrongSecret(t *testing.T) {
	otherSecret := "whsec_YW5vdGhlci1zaWduaW5nLWtleS13cm9uZw=="
	payload := []byte(`{"type":"user.created","data":{"id":"user_A"}}`)
	header := signPayload(t, otherSecret, "msg_1", "1700000000", payload)

	err := VerifySignature(testSecret, "msg_1", "1700000000", payload, header)
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func Test_VerifySignature_TamperedPayload(t *testing.T) {
	payload := []byte(`{"type":"user.created","data":{"id":"user_A"}}`)
	header := signPayload(t, testSecret, "msg_1", "1700000000", payload)

	tampered := []byte(`{"type":"user.created","data":{"id":"user_B"}}`)
	err := VerifySignature(testSecret, "msg_1", "1700000000", tampered, header)
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func Test_VerifySignature_TamperedMessageID(t *testing.T) {
	payload := []byte(`{"type":"user.created","data":{"id":"user_A"}}`)
	header := signPayload(t, testSecret, "msg_1", "1700000000", payload)

	err := VerifySignature(testSecret, "msg_2", "1700000000", payload, header)
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func Test_VerifySignature_AnyMatchingTokenAccepts(t *testing.T) {
	payload := []byte(`{"type":"user.created","data":{"id":"user_A"}}`)
	valid := signPayload(t, testSecret, "msg_1", "1700000000", payload)

	// Older rotated signatures precede the valid one in the header.
	header := "v1,Zm9vYmFyYmF6cXV4" + " " + valid

	err := VerifySignature(testSecret, "msg_1", "1700000000", payload, header)
	require.NoError(t, err)
}

func Test_VerifySignature_IgnoresUnknownSchemes(t *testing.T) {
	payload := []byte(`{"type":"user.created","data":{"id":"user_A"}}`)
	valid := signPayload(t, testSecret, "msg_1", "1700000000", payload)

	// A v2 token with the right digest must not be accepted as v1.
	header := "v2," + strings.TrimPrefix(valid, "v1,")

	err := VerifySignature(testSecret, "msg_1", "1700000000", payload, header)
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func Test_VerifySignature_MalformedSecret(t *testing.T) {
	payload := []byte(`{}`)

	err := VerifySignature("whsec_!!not-base64!!", "msg_1", "1700000000", payload, "v1,AAAA")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidSignature)
}

func Test_VerifyTimestamp(t *testing.T) {
	now := time.Unix(1700000000, 0)

	require.NoError(t, VerifyTimestamp("1700000000", 5*time.Minute, now))
	require.NoError(t, VerifyTimestamp("1700000100", 5*time.Minute, now))
	require.Error(t, VerifyTimestamp("1699990000", 5*time.Minute, now))
	require.Error(t, VerifyTimestamp("not-a-number", 5*time.Minute, now))

	// Tolerance zero disables the check entirely.
	require.NoError(t, VerifyTimestamp("0", 0, now))
	require.NoError(t, VerifyTimestamp("garbage", 0, now))
}
