package service

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/ecat-taratra/backend/internal/config"
	"github.com/ecat-taratra/backend/internal/constants"
	"github.com/ecat-taratra/backend/internal/logger"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
)

const defaultUploadDir = "uploads"

// UploadResult 上传结果
type UploadResult struct {
	Filename     string `json:"filename"`
	URL          string `json:"url"`
	RelativePath string `json:"-"`
}

// UploadService 图片上传服务
type UploadService struct {
	cfg *config.UploadConfig
	now func() time.Time
}

// NewUploadService 创建图片上传服务实例
func NewUploadService(cfg *config.UploadConfig) *UploadService {
	if cfg == nil {
		cfg = &config.UploadConfig{}
	}
	return &UploadService{cfg: cfg, now: time.Now}
}

// Dir 上传文件根目录
func (s *UploadService) Dir() string {
	dir := strings.TrimSpace(s.cfg.Dir)
	if dir == "" {
		return defaultUploadDir
	}
	return dir
}

// SaveImage 校验并保存上传的图片
func (s *UploadService) SaveImage(file *multipart.FileHeader) (*UploadResult, error) {
	if file == nil {
		return nil, fmt.Errorf("%w: empty file", ErrUploadInvalid)
	}
	if s.cfg.MaxSize > 0 && file.Size > s.cfg.MaxSize {
		return nil, fmt.Errorf("%w: max %d bytes", ErrUploadTooLarge, s.cfg.MaxSize)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if len(s.cfg.AllowedExtensions) > 0 {
		if ext == "" || !isAllowedExtension(ext, s.cfg.AllowedExtensions) {
			return nil, fmt.Errorf("%w: extension %q not allowed", ErrUploadInvalid, ext)
		}
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	// 读取文件头部识别 MIME 类型
	buffer := make([]byte, 512)
	n, err := src.Read(buffer)
	if err != nil && err != io.EOF {
		return nil, err
	}
	contentType := http.DetectContentType(buffer[:n])
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: content type %s", ErrUploadInvalid, contentType)
	}
	if len(s.cfg.AllowedTypes) > 0 && !isAllowedContentType(contentType, s.cfg.AllowedTypes) {
		return nil, fmt.Errorf("%w: content type %s not allowed", ErrUploadInvalid, contentType)
	}

	width, height, err := decodeImageDimensions(src, contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadInvalid, err)
	}
	if s.cfg.MaxWidth > 0 && width > s.cfg.MaxWidth {
		return nil, fmt.Errorf("%w: width %d exceeds %d", ErrUploadInvalid, width, s.cfg.MaxWidth)
	}
	if s.cfg.MaxHeight > 0 && height > s.cfg.MaxHeight {
		return nil, fmt.Errorf("%w: height %d exceeds %d", ErrUploadInvalid, height, s.cfg.MaxHeight)
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	filename := uuid.New().String() + ext
	now := s.now()
	year := now.Format("2006")
	month := now.Format("01")
	savePath := filepath.Join(s.Dir(), year, month, filename)

	if err := os.MkdirAll(filepath.Dir(savePath), 0o755); err != nil {
		return nil, err
	}
	if err := writeUploadFile(savePath, src); err != nil {
		return nil, err
	}

	relative := path.Join(constants.UploadURLPrefix, year, month, filename)
	return &UploadResult{
		Filename:     filename,
		URL:          strings.TrimRight(strings.TrimSpace(s.cfg.PublicBaseURL), "/") + relative,
		RelativePath: relative,
	}, nil
}

// writeUploadFile 写入上传文件，失败时删除不完整的文件
func writeUploadFile(savePath string, src io.Reader) error {
	dst, err := os.Create(savePath)
	if err != nil {
		return err
	}
	_, copyErr := io.Copy(dst, src)
	closeErr := dst.Close()
	if copyErr == nil && closeErr == nil {
		return nil
	}
	if removeErr := os.Remove(savePath); removeErr != nil && !os.IsNotExist(removeErr) {
		logger.Warnw("upload_partial_file_remove_failed", "path", savePath, "error", removeErr)
	}
	if copyErr != nil {
		return copyErr
	}
	return closeErr
}

func isAllowedContentType(contentType string, allowed []string) bool {
	for _, t := range allowed {
		if strings.EqualFold(contentType, strings.TrimSpace(t)) {
			return true
		}
	}
	return false
}

func isAllowedExtension(ext string, allowed []string) bool {
	for _, allowedExt := range allowed {
		normalized := strings.ToLower(strings.TrimSpace(allowedExt))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if strings.EqualFold(ext, normalized) {
			return true
		}
	}
	return false
}

func decodeImageDimensions(src io.ReadSeeker, contentType string) (int, int, error) {
	if strings.EqualFold(contentType, "image/webp") {
		width, height, err := decodeWebPDimensions(src)
		if err != nil {
			return 0, 0, fmt.Errorf("decode webp: %w", err)
		}
		return width, height, nil
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return 0, 0, err
	}
	cfg, _, err := image.DecodeConfig(src)
	if err != nil {
		return 0, 0, fmt.Errorf("decode image: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// webpHeaderBytes VP8/VP8L/VP8X 解析尺寸所需的最大前缀长度
const webpHeaderBytes = 10

// decodeWebPDimensions 只读取尺寸所需的 chunk 前缀，其余 chunk 直接跳过，
// chunk 长度不得超出文件剩余大小
func decodeWebPDimensions(src io.ReadSeeker) (int, int, error) {
	size, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, 0, err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return 0, 0, err
	}

	header := make([]byte, 12)
	if _, err := io.ReadFull(src, header); err != nil {
		return 0, 0, err
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WEBP" {
		return 0, 0, errors.New("invalid webp header")
	}

	offset := int64(len(header))
	chunkHeader := make([]byte, 8)
	data := make([]byte, webpHeaderBytes)
	for {
		if _, err := io.ReadFull(src, chunkHeader); err != nil {
			return 0, 0, err
		}
		offset += int64(len(chunkHeader))
		chunkType := string(chunkHeader[0:4])
		chunkSize := int64(binary.LittleEndian.Uint32(chunkHeader[4:8]))
		if chunkSize > size-offset {
			return 0, 0, fmt.Errorf("webp chunk %q exceeds file size", chunkType)
		}

		switch chunkType {
		case "VP8X", "VP8 ":
			if chunkSize < webpHeaderBytes {
				return 0, 0, fmt.Errorf("webp chunk %q too short", chunkType)
			}
			if _, err := io.ReadFull(src, data[:webpHeaderBytes]); err != nil {
				return 0, 0, err
			}
			if chunkType == "VP8X" {
				width := 1 + int(data[4]) + int(data[5])<<8 + int(data[6])<<16
				height := 1 + int(data[7]) + int(data[8])<<8 + int(data[9])<<16
				return width, height, nil
			}
			width := int(binary.LittleEndian.Uint16(data[6:8]) & 0x3FFF)
			height := int(binary.LittleEndian.Uint16(data[8:10]) & 0x3FFF)
			return width, height, nil
		case "VP8L":
			if chunkSize < 5 {
				return 0, 0, errors.New("webp chunk \"VP8L\" too short")
			}
			if _, err := io.ReadFull(src, data[:5]); err != nil {
				return 0, 0, err
			}
			if data[0] != 0x2f {
				return 0, 0, errors.New("invalid VP8L signature")
			}
			bits := binary.LittleEndian.Uint32(data[1:5])
			width := int(bits&0x3FFF) + 1
			height := int((bits>>14)&0x3FFF) + 1
			return width, height, nil
		}

		skip := chunkSize + chunkSize%2
		if _, err := src.Seek(skip, io.SeekCurrent); err != nil {
			return 0, 0, err
		}
		offset += skip
	}
}
