package response

const (
	CodeOK              = 0
	CodeBadRequest      = 400
	CodeUnauthorized    = 401
	CodeForbidden       = 403
	CodeNotFound        = 404
	CodeConflict        = 409
	CodeTooLarge        = 413
	CodeTooManyRequests = 429
	CodeInternal        = 500
)

// httpStatus 业务状态码映射为 HTTP 状态码
func httpStatus(code int) int {
	if code >= 400 && code < 600 {
		return code
	}
	if code == CodeOK {
		return 200
	}
	return 500
}
