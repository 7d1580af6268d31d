package report

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/adamanr/workforce_service/internal/entity"
	"github.com/skip2/go-qrcode"
)

const (
	pngDataURLPrefix  = "data:image/png;base64,"
	PDFDataURLPrefix  = "data:application/pdf;base64,"
	XLSXDataURLPrefix = "data:application/vnd.openxmlformats-officedocument.spreadsheetml.sheet;base64,"

	qrSize = 256
)

// QRCodeDataURL encodes the payload as JSON into a PNG QR code data URL.
func QRCodeDataURL(payload entity.QRPayload) (string, error) {
	content, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal qr payload: %w", err)
	}

	png, err := qrcode.Encode(string(content), qrcode.Medium, qrSize)
	if err != nil {
		return "", fmt.Errorf("encode qr code: %w", err)
	}

	return pngDataURLPrefix + base64.StdEncoding.EncodeToString(png), nil
}

// DecodePNGDataURL returns the image bytes of a PNG data URL.
func DecodePNGDataURL(dataURL string) ([]byte, error) {
	if !strings.HasPrefix(dataURL, pngDataURLPrefix) {
		return nil, fmt.Errorf("not a png data url")
	}

	return base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, pngDataURLPrefix))
}

// DataURL wraps a rendered document for a JSON response.
func DataURL(prefix string, data []byte) string {
	return prefix + base64.StdEncoding.EncodeToString(data)
}
