package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signPayload(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyRazorpaySignature(t *testing.T) {
	const secret = "test_secret"
	sig := signPayload("order_abc123", "pay_xyz789", secret)

	t.Run("valid signature", func(t *testing.T) {
		assert.True(t, VerifyRazorpaySignature("order_abc123", "pay_xyz789", sig, secret))
	})

	t.Run("tampered payment id", func(t *testing.T) {
		assert.False(t, VerifyRazorpaySignature("order_abc123", "pay_other", sig, secret))
	})

	t.Run("wrong secret", func(t *testing.T) {
		assert.False(t, VerifyRazorpaySignature("order_abc123", "pay_xyz789", sig, "other_secret"))
	})

	t.Run("empty signature", func(t *testing.T) {
		assert.False(t, VerifyRazorpaySignature("order_abc123", "pay_xyz789", "", secret))
	})
}

func TestCreateRazorpayOrder(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "rzp_test_secret")

	t.Run("returns the gateway order id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/orders", r.URL.Path)
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "rzp_test_key", user)
			assert.Equal(t, "rzp_test_secret", pass)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, float64(55000), body["amount"])
			assert.Equal(t, "INR", body["currency"])
			assert.Equal(t, "booking-1", body["receipt"])

			json.NewEncoder(w).Encode(map[string]interface{}{"id": "order_stub_1"})
		}))
		defer srv.Close()

		orig := razorpayBaseURL
		razorpayBaseURL = srv.URL
		defer func() { razorpayBaseURL = orig }()

		orderID, err := CreateRazorpayOrder("booking-1", 55000)
		require.NoError(t, err)
		assert.Equal(t, "order_stub_1", orderID)
	})

	t.Run("gateway rejection maps to ErrGateway", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		orig := razorpayBaseURL
		razorpayBaseURL = srv.URL
		defer func() { razorpayBaseURL = orig }()

		_, err := CreateRazorpayOrder("booking-1", 55000)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrGateway)
	})
}

func TestCreateRazorpayOrderMissingKeys(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "")
	t.Setenv("RAZORPAY_KEY_SECRET", "")

	_, err := CreateRazorpayOrder("booking-1", 1000)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGateway)
}

func TestRazorpayRefund(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "rzp_test_secret")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments/pay_abc/refund", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{"id": "rfnd_stub_1"})
	}))
	defer srv.Close()

	orig := razorpayBaseURL
	razorpayBaseURL = srv.URL
	defer func() { razorpayBaseURL = orig }()

	refundID, err := RazorpayRefund("pay_abc", 55000, "customer request")
	require.NoError(t, err)
	assert.Equal(t, "rfnd_stub_1", refundID)
}
