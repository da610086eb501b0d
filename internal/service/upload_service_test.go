package service

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/ecat-taratra/backend/internal/config"
)

func buildPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	img.Set(0, 0, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png failed: %v", err)
	}
	return buf.Bytes()
}

func buildFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file failed: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer failed: %v", err)
	}

	req := httptest.NewRequest("POST", "/api/upload/image", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("parse multipart failed: %v", err)
	}
	_, header, err := req.FormFile("file")
	if err != nil {
		t.Fatalf("form file failed: %v", err)
	}
	return header
}

func newTestUploadService(t *testing.T) *UploadService {
	t.Helper()
	svc := NewUploadService(&config.UploadConfig{
		Dir:               t.TempDir(),
		PublicBaseURL:     "https://api.ecat-taratra.mg/",
		MaxSize:           1 << 20,
		AllowedTypes:      []string{"image/png", "image/jpeg"},
		AllowedExtensions: []string{".png", "jpg"},
		MaxWidth:          64,
		MaxHeight:         64,
	})
	svc.now = func() time.Time {
		return time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestUploadSaveImage(t *testing.T) {
	svc := newTestUploadService(t)

	result, err := svc.SaveImage(buildFileHeader(t, "Logo.PNG", buildPNG(t, 16, 16)))
	if err != nil {
		t.Fatalf("save image failed: %v", err)
	}
	if !strings.HasSuffix(result.Filename, ".png") {
		t.Fatalf("filename should keep lowercase extension: %s", result.Filename)
	}
	wantURL := "https://api.ecat-taratra.mg/uploads/2026/04/" + result.Filename
	if result.URL != wantURL {
		t.Fatalf("url want %s got %s", wantURL, result.URL)
	}
	if _, err := os.Stat(filepath.Join(svc.Dir(), "2026", "04", result.Filename)); err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
}

func TestUploadRejectsInvalidFiles(t *testing.T) {
	svc := newTestUploadService(t)

	cases := []struct {
		name     string
		filename string
		content  []byte
		wantErr  error
	}{
		{name: "extension", filename: "doc.pdf", content: buildPNG(t, 8, 8), wantErr: ErrUploadInvalid},
		{name: "not image", filename: "fake.png", content: []byte("plain text content"), wantErr: ErrUploadInvalid},
		{name: "too wide", filename: "wide.png", content: buildPNG(t, 65, 8), wantErr: ErrUploadInvalid},
		{name: "too tall", filename: "tall.png", content: buildPNG(t, 8, 65), wantErr: ErrUploadInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SaveImage(buildFileHeader(t, tc.filename, tc.content))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("want %v got %v", tc.wantErr, err)
			}
		})
	}
}

func TestUploadRejectsLargeFile(t *testing.T) {
	svc := newTestUploadService(t)
	svc.cfg.MaxSize = 10

	_, err := svc.SaveImage(buildFileHeader(t, "logo.png", buildPNG(t, 8, 8)))
	if !errors.Is(err, ErrUploadTooLarge) {
		t.Fatalf("want ErrUploadTooLarge got %v", err)
	}
}

func webpChunk(chunkType string, declaredSize uint32, payload []byte) []byte {
	chunk := make([]byte, 8, 8+len(payload)+1)
	copy(chunk, chunkType)
	binary.LittleEndian.PutUint32(chunk[4:8], declaredSize)
	chunk = append(chunk, payload...)
	if len(payload)%2 == 1 {
		chunk = append(chunk, 0)
	}
	return chunk
}

func webpFile(chunks ...[]byte) []byte {
	out := []byte("RIFF\x00\x00\x00\x00WEBP")
	for _, chunk := range chunks {
		out = append(out, chunk...)
	}
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(out)-8))
	return out
}

func TestDecodeWebPDimensionsSkipsUnknownChunks(t *testing.T) {
	vp8x := []byte{0, 0, 0, 0, 99, 0, 0, 49, 0, 0}
	data := webpFile(webpChunk("JUNK", 3, []byte{1, 2, 3}), webpChunk("VP8X", 10, vp8x))

	width, height, err := decodeWebPDimensions(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if width != 100 || height != 50 {
		t.Fatalf("want 100x50 got %dx%d", width, height)
	}
}

func TestDecodeWebPDimensionsRejectsBadChunkSizes(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{name: "oversized junk", data: webpFile(webpChunk("JUNK", 0x7FFFFFF0, nil))},
		{name: "oversized vp8", data: webpFile(webpChunk("VP8 ", 0xFFFFFFFF, nil))},
		{name: "truncated vp8", data: webpFile(webpChunk("VP8 ", 10, []byte{1, 2, 3, 4}))},
		{name: "short vp8x", data: webpFile(webpChunk("VP8X", 4, []byte{0, 0, 0, 0}))},
		{name: "no image chunk", data: webpFile(webpChunk("JUNK", 2, []byte{1, 2}))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var before, after runtime.MemStats
			runtime.ReadMemStats(&before)
			_, _, err := decodeWebPDimensions(bytes.NewReader(tc.data))
			runtime.ReadMemStats(&after)
			if err == nil {
				t.Fatalf("want error for %d-byte input", len(tc.data))
			}
			if delta := after.TotalAlloc - before.TotalAlloc; delta > 1<<20 {
				t.Fatalf("decode allocated %d bytes for %d-byte input", delta, len(tc.data))
			}
		})
	}
}

type failingReader struct {
	written bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if !r.written {
		r.written = true
		return copy(p, "partial"), nil
	}
	return 0, errors.New("connection reset")
}

func TestWriteUploadFileRemovesPartialFile(t *testing.T) {
	savePath := filepath.Join(t.TempDir(), "partial.png")

	if err := writeUploadFile(savePath, &failingReader{}); err == nil {
		t.Fatalf("want copy error")
	}
	if _, err := os.Stat(savePath); !os.IsNotExist(err) {
		t.Fatalf("partial file should be removed, stat err=%v", err)
	}
}

