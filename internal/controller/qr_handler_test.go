package controller

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRController_EncodeBank(t *testing.T) {
	h := NewQRController(newTestMetrics())

	rec := postJSON(t, h.Encode, "/api/v1/qr/encode", EncodeQRRequest{
		Type:          "bank",
		BankName:      "First National",
		AccountNumber: "9876543210",
		RoutingHint:   "021000021",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp EncodeQRResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "bank", resp.Type)
	assert.True(t, strings.HasPrefix(resp.Data, "dpqr|1|bank|"))

	// Only the masked account number may reach the encoded string.
	assert.NotContains(t, resp.Data, "9876543210")
	assert.Contains(t, resp.Data, "3210")
}

func TestQRController_EncodeUser_RoundTrip(t *testing.T) {
	h := NewQRController(newTestMetrics())

	rec := postJSON(t, h.Encode, "/api/v1/qr/encode", EncodeQRRequest{
		Type:   "user",
		UserID: "user-42",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var encoded EncodeQRResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &encoded))

	rec = postJSON(t, h.Decode, "/api/v1/qr/decode", DecodeQRRequest{Data: encoded.Data})
	require.Equal(t, http.StatusOK, rec.Code)

	var decoded DecodeQRResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Equal(t, "user", decoded.Type)
	assert.Equal(t, "user-42", decoded.UserID)
	assert.Empty(t, decoded.BankName)
}

func TestQRController_Encode_MissingPayloadFields(t *testing.T) {
	h := NewQRController(newTestMetrics())

	rec := postJSON(t, h.Encode, "/api/v1/qr/encode", EncodeQRRequest{Type: "user"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Code)

	rec = postJSON(t, h.Encode, "/api/v1/qr/encode", EncodeQRRequest{Type: "bank", BankName: "First National"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQRController_Decode_ForeignString(t *testing.T) {
	h := NewQRController(newTestMetrics())

	rec := postJSON(t, h.Decode, "/api/v1/qr/decode", DecodeQRRequest{
		Data: "https://example.com/pay?to=alice",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unrecognized_scheme", resp.Code)
}

func TestQRController_Decode_UnsupportedVersion(t *testing.T) {
	h := NewQRController(newTestMetrics())

	rec := postJSON(t, h.Decode, "/api/v1/qr/decode", DecodeQRRequest{
		Data: "dpqr|2|user|user-42",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unsupported_version", resp.Code)
}
