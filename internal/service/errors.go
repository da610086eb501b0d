package service

import "errors"

var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("not found")
	// ErrAdminEmailExists 邮箱已被其他管理员使用
	ErrAdminEmailExists = errors.New("admin email already exists")
	// ErrLastAdmin 不能删除最后一个管理员
	ErrLastAdmin = errors.New("cannot delete the last admin")
	// ErrContentInvalid 内容缺少必填字段
	ErrContentInvalid = errors.New("content invalid")
	// ErrPasswordRequired 密码为空
	ErrPasswordRequired = errors.New("password is required")
	// ErrUploadInvalid 上传文件不合法
	ErrUploadInvalid = errors.New("invalid upload")
	// ErrUploadTooLarge 上传文件超过大小限制
	ErrUploadTooLarge = errors.New("upload too large")
	// ErrCaptchaRequired 缺少验证码
	ErrCaptchaRequired = errors.New("captcha required")
	// ErrCaptchaInvalid 验证码错误
	ErrCaptchaInvalid = errors.New("captcha invalid")
	// ErrCaptchaDisabled 验证码未启用
	ErrCaptchaDisabled = errors.New("captcha disabled")
	// ErrEmailServiceDisabled 邮件服务未启用
	ErrEmailServiceDisabled = errors.New("email service disabled")
	// ErrEmailServiceNotConfigured 邮件服务配置不完整
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	// ErrEmailRecipientRejected 收件人被拒收
	ErrEmailRecipientRejected = errors.New("email recipient rejected")
	// ErrInvalidEmail 邮箱格式错误
	ErrInvalidEmail = errors.New("invalid email")
)
