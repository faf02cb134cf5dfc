package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusConflict - 409: 资源冲突.
	StatusConflict = 409
	// StatusMethodNotAllowed - 405: 请求方法不允许.
	StatusMethodNotAllowed = 405
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
)

// 报名相关错误码 (100xxx).
// 前端依赖每个错误码对应的稳定字符串，见 message.go。
const (
	// ErrMissingFields - 400: 必填字段缺失.
	ErrMissingFields int = iota + 100000
	// ErrInvalidPhone - 400: 手机号格式错误.
	ErrInvalidPhone
	// ErrInvalidEmail - 400: 邮箱格式错误.
	ErrInvalidEmail
	// ErrDuplicate - 409: 重复报名.
	ErrDuplicate
)

// 认证相关错误码 (101xxx).
const (
	// ErrInvalidCredentials - 401: 用户名或密码错误.
	ErrInvalidCredentials int = iota + 101000
	// ErrUnauthorized - 401: 令牌缺失、无效或已过期.
	ErrUnauthorized
)

// 通用错误码 (105xxx).
const (
	// ErrServer - 500: 未知服务器错误.
	ErrServer int = iota + 105000
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase
	// ErrMethodNotAllowed - 405: 请求方法不允许.
	ErrMethodNotAllowed
)
