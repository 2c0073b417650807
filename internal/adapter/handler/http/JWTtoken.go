package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
)

// JWTTokenService signs the browser session cookie. The token only carries
// the session id; API tokens stay in the session backend.
type JWTTokenService struct {
	secretKey []byte
	duration  time.Duration
	logger    ports.LoggerPort
}

func NewJWTTokenService(secretKey string, duration time.Duration, logger ports.LoggerPort) *JWTTokenService {
	return &JWTTokenService{
		secretKey: []byte(secretKey),
		duration:  duration,
		logger:    logger,
	}
}

func (j *JWTTokenService) CreateToken(payload *domain.SessionTokenPayload) (string, error) {
	const op = "http.JWTTokenService.CreateToken"

	issuedAt := payload.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}
	claims := jwt.MapClaims{
		"sid": payload.SessionID.String(),
		"iat": issuedAt.Unix(),
	}
	if j.duration > 0 {
		claims["exp"] = issuedAt.Add(j.duration).Unix()
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

func (j *JWTTokenService) VerifyToken(token string) (*domain.SessionTokenPayload, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		j.logger.Warn("Failed to parse session token", map[string]interface{}{
			"error":  err.Error(),
			"method": "VerifyToken",
		})
		return nil, err
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("failed to verify")
	}

	sid, ok := claims["sid"].(string)
	if !ok {
		return nil, errors.New("invalid sid claim")
	}
	sessionID, err := uuid.Parse(sid)
	if err != nil {
		return nil, errors.New("invalid parse sid")
	}

	payload := &domain.SessionTokenPayload{SessionID: sessionID}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		payload.IssuedAt = iat.Time
	}
	return payload, nil
}
