package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"techblaze-registration-service/internal/infrastructure/config"
)

// InterfaceTokenService 管理员令牌的签发与校验
type InterfaceTokenService interface {
	Issue() (string, error)
	Verify(token string) bool
}

// TokenService 实现简单的签名令牌方案：
// base64(payload) + "." + base64(HMAC-SHA256(secret, base64(payload)))。
// 不是JWT——没有JOSE头，exp为毫秒时间戳，与既有前端的令牌格式保持一致。
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// tokenPayload 令牌载荷
type tokenPayload struct {
	Admin bool  `json:"admin"`
	Exp   int64 `json:"exp"` // 过期时间，epoch毫秒
}

// NewTokenService 创建一个新的令牌服务
func NewTokenService(cfg *config.Config) InterfaceTokenService {
	return &TokenService{
		secret: []byte(cfg.TokenSecret),
		ttl:    cfg.TokenTTL,
	}
}

// Issue 签发管理员令牌，有效期由配置固定
func (s *TokenService) Issue() (string, error) {
	payload := tokenPayload{
		Admin: true,
		Exp:   time.Now().Add(s.ttl).UnixMilli(),
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	encoded := base64.StdEncoding.EncodeToString(raw)
	return encoded + "." + s.sign(encoded), nil
}

// Verify 校验令牌。任何解析失败、载荷不合法、过期或签名不匹配
// 都会返回false，绝不向上抛错。
func (s *TokenService) Verify(token string) bool {
	if token == "" {
		return false
	}

	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return false
	}

	raw, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}

	var payload tokenPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return false
	}

	if !payload.Admin || time.Now().UnixMilli() > payload.Exp {
		return false
	}

	sig, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}

	expected, err := base64.StdEncoding.DecodeString(s.sign(parts[0]))
	if err != nil {
		return false
	}

	// 签名必须逐字节相等
	return hmac.Equal(sig, expected)
}

// sign 对编码后的载荷计算HMAC-SHA256签名并base64编码
func (s *TokenService) sign(encodedPayload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(encodedPayload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
