package handlers

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UploadRequest is the JSON body shared by all parsing routes.
type UploadRequest struct {
	Type        string `json:"type"`
	EncodedBlob string `json:"encoded_blob"`
}

// decodeUploadRequest validates the inbound request: JSON content type,
// both fields present, payload decodable as base64 and within the size
// limit. The checks are independent; each failure names the violated one.
func decodeUploadRequest(c *fiber.Ctx, maxBytes int64) (blob []byte, fileType string, errMsg string) {
	if !strings.Contains(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		return nil, "", "Invalid content type. Expected application/json"
	}
	var req UploadRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, "", fmt.Sprintf("Invalid JSON body: %v", err)
	}
	if req.Type == "" {
		return nil, "", `Missing "type" field`
	}
	if req.EncodedBlob == "" {
		return nil, "", `Missing "encoded_blob" field`
	}
	data, err := base64.StdEncoding.DecodeString(req.EncodedBlob)
	if err != nil {
		return nil, "", fmt.Sprintf("Invalid base64 data: %v", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, "", fmt.Sprintf("File too large: limit is %d bytes", maxBytes)
	}
	return data, req.Type, ""
}
