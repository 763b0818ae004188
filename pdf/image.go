package pdf

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"github.com/go-pdf/fpdf"
	"golang.org/x/image/webp"
)

// Registered image names inside the document.
const (
	logoImageName  = "brand-logo"
	photoImageName = "subject-photo"
	qrImageName    = "verification-qr"
)

// registerImage validates raw image bytes and registers them with the
// document under name. WebP input is transcoded to PNG since the PDF backend
// cannot embed it directly. The returned string is the image type to pass
// when drawing by name.
//
// Validation happens before registration so corrupt bytes surface here as an
// ordinary error instead of poisoning the document's sticky error state.
func registerImage(doc *fpdf.Fpdf, name string, data []byte) (string, error) {
	kind, normalized, err := normalizeImage(data)
	if err != nil {
		return "", err
	}
	doc.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: kind}, bytes.NewReader(normalized))
	if doc.Err() {
		return "", doc.Error()
	}
	return kind, nil
}

// normalizeImage sniffs the image format and returns bytes the PDF backend
// can embed. PNG, JPEG and GIF pass through; WebP is decoded (the webp import
// registers the format) and re-encoded as PNG.
func normalizeImage(data []byte) (string, []byte, error) {
	_, kind, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", nil, fmt.Errorf("decoding image: %w", err)
	}
	switch kind {
	case "png", "gif":
		return kind, data, nil
	case "jpeg":
		return "jpg", data, nil
	case "webp":
		img, err := webp.Decode(bytes.NewReader(data))
		if err != nil {
			return "", nil, fmt.Errorf("decoding webp: %w", err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return "", nil, fmt.Errorf("transcoding webp: %w", err)
		}
		return "png", buf.Bytes(), nil
	default:
		return "", nil, fmt.Errorf("unsupported image format %q", kind)
	}
}

// qrPNG encodes content as a QR code and returns it as PNG bytes.
func qrPNG(content string, size int) ([]byte, error) {
	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(code, size, size)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
