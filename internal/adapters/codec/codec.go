package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"

	"github.com/izapata/iconsmith/internal/core/domain"
)

// Encoder serializes rendered icons. Both formats are lossless: "ico" wraps
// the PNG stream in a single-entry ICO container.
type Encoder struct {
	png png.Encoder
}

// NewEncoder creates an encoder using best PNG compression
func NewEncoder() *Encoder {
	return &Encoder{png: png.Encoder{CompressionLevel: png.BestCompression}}
}

// Encode serializes img in the requested format
func (e *Encoder) Encode(img image.Image, format string) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}

	switch format {
	case domain.FormatPNG, "":
		return buf.Bytes(), nil
	case domain.FormatICO:
		return wrapICO(buf.Bytes(), img.Bounds())
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// ICO header (6 bytes) followed by one directory entry (16 bytes)
const icoHeaderLen = 6 + 16

func wrapICO(pngData []byte, b image.Rectangle) ([]byte, error) {
	w, h := b.Dx(), b.Dy()
	if w > domain.MaxICOSize || h > domain.MaxICOSize {
		return nil, fmt.Errorf("ico images are limited to %dx%d, got %dx%d", domain.MaxICOSize, domain.MaxICOSize, w, h)
	}

	buf := bytes.NewBuffer(make([]byte, 0, icoHeaderLen+len(pngData)))

	// ICONDIR
	binary.Write(buf, binary.LittleEndian, uint16(0)) // Reserved
	binary.Write(buf, binary.LittleEndian, uint16(1)) // Type: icon
	binary.Write(buf, binary.LittleEndian, uint16(1)) // Image count

	// ICONDIRENTRY, 0 means 256
	buf.WriteByte(byte(w % 256))
	buf.WriteByte(byte(h % 256))
	buf.WriteByte(0)                                   // Palette
	buf.WriteByte(0)                                   // Reserved
	binary.Write(buf, binary.LittleEndian, uint16(1))  // Planes
	binary.Write(buf, binary.LittleEndian, uint16(32)) // Bits per pixel
	binary.Write(buf, binary.LittleEndian, uint32(len(pngData)))
	binary.Write(buf, binary.LittleEndian, uint32(icoHeaderLen))

	buf.Write(pngData)
	return buf.Bytes(), nil
}

// UnwrapICO returns the PNG stream and the declared dimensions of the first
// entry of an ICO produced by Encode
func UnwrapICO(data []byte) ([]byte, int, int, error) {
	if len(data) < icoHeaderLen {
		return nil, 0, 0, fmt.Errorf("ico data too short")
	}
	if binary.LittleEndian.Uint16(data[2:4]) != 1 || binary.LittleEndian.Uint16(data[4:6]) == 0 {
		return nil, 0, 0, fmt.Errorf("not an ico file")
	}

	w, h := int(data[6]), int(data[7])
	if w == 0 {
		w = 256
	}
	if h == 0 {
		h = 256
	}

	size := binary.LittleEndian.Uint32(data[14:18])
	offset := binary.LittleEndian.Uint32(data[18:22])
	end := uint64(offset) + uint64(size)
	if end > uint64(len(data)) {
		return nil, 0, 0, fmt.Errorf("ico entry exceeds data length")
	}
	return data[offset:end], w, h, nil
}
