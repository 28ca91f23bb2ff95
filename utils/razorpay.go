package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

// razorpayBaseURL is a package variable so tests can point the client at a
// stub server.
var razorpayBaseURL = "https://api.razorpay.com/v1"

// CreateRazorpayOrder creates a hosted payment order and returns the gateway
// order ID. Amount is in paise.
func CreateRazorpayOrder(receipt string, amountPaise int64) (string, error) {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")
	if keyID == "" || keySecret == "" {
		return "", fmt.Errorf("%w: razorpay keys not set", ErrGateway)
	}

	payload := map[string]interface{}{
		"amount":   amountPaise,
		"currency": "INR",
		"receipt":  receipt,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", razorpayBaseURL+"/orders", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(keyID, keySecret)

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return "", fmt.Errorf("%w: order create returned status %d", ErrGateway, res.StatusCode)
	}

	var resp map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}

	orderID, ok := resp["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("%w: no order id in response", ErrGateway)
	}
	return orderID, nil
}

// VerifyRazorpaySignature checks the completion signature the gateway sends
// after checkout: HMAC-SHA256 of "orderID|paymentID" keyed with the secret.
func VerifyRazorpaySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// RazorpayRefund issues a full refund for a captured payment and returns the
// gateway refund ID.
func RazorpayRefund(paymentID string, amountPaise int64, reason string) (string, error) {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")
	if keyID == "" || keySecret == "" {
		return "", fmt.Errorf("%w: razorpay keys not set", ErrGateway)
	}

	payload := map[string]interface{}{
		"amount": amountPaise,
		"notes":  map[string]string{"reason": reason},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/payments/%s/refund", razorpayBaseURL, paymentID)
	req, err := http.NewRequest("POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(keyID, keySecret)

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return "", fmt.Errorf("%w: refund returned status %d", ErrGateway, res.StatusCode)
	}

	var resp map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}

	refundID, _ := resp["id"].(string)
	return refundID, nil
}
