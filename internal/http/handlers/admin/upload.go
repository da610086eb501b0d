package admin

import (
	handlershared "github.com/ecat-taratra/backend/internal/http/handlers/shared"
	"github.com/ecat-taratra/backend/internal/http/response"
	"github.com/ecat-taratra/backend/internal/i18n"
	"github.com/ecat-taratra/backend/internal/service"

	"github.com/gin-gonic/gin"
)

var uploadErrorRules = []handlershared.MappedError{
	{Target: service.ErrUploadTooLarge, Code: response.CodeTooLarge, Key: "error.upload_too_large"},
	{Target: service.ErrUploadInvalid, Code: response.CodeBadRequest, Key: "error.upload_invalid"},
}

// UploadImage 图片上传
func (h *Handler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.file_missing", nil)
		return
	}

	result, err := h.UploadService.SaveImage(file)
	if err != nil {
		respondMapped(c, err, uploadErrorRules, response.CodeInternal, "error.upload_failed")
		return
	}

	handlershared.RequestLog(c).Infow("admin_upload_image", "path", result.RelativePath, "size", file.Size)
	response.Success(c, gin.H{
		"filename": result.Filename,
		"url":      result.URL,
		"message":  i18n.T(i18n.ResolveLocale(c), "message.upload_success"),
	})
}
