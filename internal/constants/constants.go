package constants

// 应用信息
const (
	AppName = "ECAT TARATRA"
)

// 服务运行模式
const (
	ServerModeDebug   = "debug"
	ServerModeRelease = "release"
)

// 请求上下文 key
const (
	ContextKeyRequestID     = "request_id"
	ContextKeyAdminID       = "admin_id"
	ContextKeyAdminIdentity = "admin_identity"
	ContextKeyAdminRole     = "admin_role"
)

// 请求头
const (
	HeaderRequestID = "X-Request-ID"
)

// 验证码场景
const (
	CaptchaSceneContactMessage = "contact_message"
)

// 异步队列
const (
	QueueDefault      = "default"
	TaskContactNotify = "contact:notify"
)

// 上传
const (
	UploadURLPrefix = "/uploads"
)
