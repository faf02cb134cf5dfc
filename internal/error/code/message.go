package code

// codeKeys 错误码到线上协议错误字符串的映射。
// 这些字符串是对外契约的一部分，前端按字符串分支，禁止改动。
var codeKeys = map[int]string{
	ErrMissingFields:      "missing_fields",
	ErrInvalidPhone:       "invalid_phone",
	ErrInvalidEmail:       "invalid_email",
	ErrDuplicate:          "duplicate",
	ErrInvalidCredentials: "invalid_credentials",
	ErrUnauthorized:       "unauthorized",
	ErrServer:             "server_error",
	ErrDatabase:           "db_error",
	ErrMethodNotAllowed:   "method_not_allowed",
}

// codeStatus 错误码到HTTP状态码的映射
var codeStatus = map[int]int{
	ErrMissingFields:      StatusBadRequest,
	ErrInvalidPhone:       StatusBadRequest,
	ErrInvalidEmail:       StatusBadRequest,
	ErrDuplicate:          StatusConflict,
	ErrInvalidCredentials: StatusUnauthorized,
	ErrUnauthorized:       StatusUnauthorized,
	ErrServer:             StatusInternalServerError,
	ErrDatabase:           StatusInternalServerError,
	ErrMethodNotAllowed:   StatusMethodNotAllowed,
}

// GetKey 返回错误码对应的协议错误字符串
func GetKey(errorCode int) string {
	if key, ok := codeKeys[errorCode]; ok {
		return key
	}
	return codeKeys[ErrServer]
}

// GetStatus 返回错误码对应的HTTP状态码
func GetStatus(errorCode int) int {
	if status, ok := codeStatus[errorCode]; ok {
		return status
	}
	return StatusInternalServerError
}
