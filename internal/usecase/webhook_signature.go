package usecase

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

var ErrInvalidWebhookSignature = errors.New("invalid webhook signature")

// VerifyWebhookSignature checks a Mercado Pago x-signature header
// ("ts=<unix>,v1=<hex hmac>") against the webhook secret.
//
// The signed manifest is "id:<data.id>;request-id:<x-request-id>;ts:<ts>;",
// with any part whose value is absent left out.
func VerifyWebhookSignature(secret, signatureHeader, requestID, dataID string) error {
	if secret == "" {
		return nil
	}
	var ts, v1 string
	for _, part := range strings.Split(signatureHeader, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(k) {
		case "ts":
			ts = strings.TrimSpace(v)
		case "v1":
			v1 = strings.ToLower(strings.TrimSpace(v))
		}
	}
	if ts == "" || v1 == "" {
		return ErrInvalidWebhookSignature
	}

	expected := signWebhookManifest(secret, webhookManifest(dataID, requestID, ts))
	if !hmac.Equal([]byte(expected), []byte(v1)) {
		return ErrInvalidWebhookSignature
	}
	return nil
}

func webhookManifest(dataID, requestID, ts string) string {
	var b strings.Builder
	if dataID != "" {
		// Alphanumeric ids are signed lower-cased.
		b.WriteString("id:" + strings.ToLower(dataID) + ";")
	}
	if requestID != "" {
		b.WriteString("request-id:" + requestID + ";")
	}
	b.WriteString("ts:" + ts + ";")
	return b.String()
}

func signWebhookManifest(secret, manifest string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest))
	return hex.EncodeToString(mac.Sum(nil))
}
