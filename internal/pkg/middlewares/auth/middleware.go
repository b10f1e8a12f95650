package auth

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"takeout/pkg/logger"
)

const leeway = 30 * time.Second

var (
	errMissingToken = errors.New("missing bearer token")
	errBadSubject   = errors.New("subject claim is missing or malformed")
)

// Middleware проверяет HS256 токен из заголовка Authorization и кладет ID из claim в контекст.
func Middleware(log handlerLogger, secret []byte, claim Claim) func(http.Handler) http.Handler {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(leeway),
	)
	keyFunc := func(*jwt.Token) (any, error) {
		return secret, nil
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := authenticate(r, parser, keyFunc, claim)
			if err != nil {
				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				).Warn("unauthorized request")

				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), claim, id)))
		})
	}
}

func authenticate(r *http.Request, parser *jwt.Parser, keyFunc jwt.Keyfunc, claim Claim) (int64, error) {
	header := r.Header.Get("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return 0, errMissingToken
	}

	claims := jwt.MapClaims{}
	if _, err := parser.ParseWithClaims(strings.TrimSpace(raw), claims, keyFunc); err != nil {
		return 0, fmt.Errorf("parse token: %w", err)
	}

	return subjectID(claims[string(claim)])
}

// subjectID принимает ID как JSON-число или строку.
func subjectID(value any) (int64, error) {
	var id int64
	switch v := value.(type) {
	case float64:
		if v != math.Trunc(v) || v > math.MaxInt64 {
			return 0, errBadSubject
		}
		id = int64(v)
	case string:
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, errBadSubject
		}
		id = parsed
	default:
		return 0, errBadSubject
	}

	if id <= 0 {
		return 0, errBadSubject
	}
	return id, nil
}

// IssueToken подписывает токен с ID субъекта; используется тестами и утилитами выдачи.
func IssueToken(secret []byte, claim Claim, id int64, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		string(claim): id,
		"iat":         now.Unix(),
		"exp":         now.Add(ttl).Unix(),
	})
	return token.SignedString(secret)
}
