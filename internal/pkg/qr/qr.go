package qr

import (
	"encoding/base64"
	"encoding/json"

	qrcode "github.com/skip2/go-qrcode"
)

// imageSize is the pixel width/height of generated QR images
const imageSize = 256

// Payload is the content encoded into a login QR code.
// It carries the username only, never any password material.
type Payload struct {
	Username string `json:"username"`
}

// EncodePayload builds the JSON payload for a username.
// The same username always yields the same payload.
func EncodePayload(username string) (string, error) {
	data, err := json.Marshal(Payload{Username: username})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodePayload parses a payload back to the username it encodes
func DecodePayload(payload string) (string, error) {
	var p Payload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return "", err
	}
	return p.Username, nil
}

// Issue generates the login QR for a username. It returns the JSON
// payload and a self-contained PNG data URL suitable for embedding,
// no file on disk involved.
func Issue(username string) (payload string, dataURL string, err error) {
	payload, err = EncodePayload(username)
	if err != nil {
		return "", "", err
	}

	png, err := qrcode.Encode(payload, qrcode.Medium, imageSize)
	if err != nil {
		return "", "", err
	}

	dataURL = "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	return payload, dataURL, nil
}
