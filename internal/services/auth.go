package services

import (
  "context"
  "errors"
  "fmt"
  "time"

  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"

  "github.com/ysagp/attendance-analytics/internal/logger"
  "github.com/ysagp/attendance-analytics/internal/requestdata"
)

// ErrUnauthenticated is the distinct error kind the breakdown callable
// surfaces before any document read happens. Account management itself lives
// in the hosting platform; this service only verifies the bearer token it
// issued.
var ErrUnauthenticated = errors.New("unauthenticated")

type JWTClaims struct {
  jwt.RegisteredClaims
}

type AuthService interface {
  SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type authService struct {
  log          *logger.Logger
  jwtSecretKey string
}

func NewAuthService(baseLog *logger.Logger, jwtSecretKey string) AuthService {
  serviceLog := baseLog.With("service", "AuthService")
  return &authService{log: serviceLog, jwtSecretKey: jwtSecretKey}
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
  if tokenString == "" {
    return ctx, ErrUnauthenticated
  }
  parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
    if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
      return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
    }
    return []byte(as.jwtSecretKey), nil
  }, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
  if err != nil {
    as.log.Debug("Token parse failed", "error", err)
    return ctx, ErrUnauthenticated
  }
  claims, ok := parsedToken.Claims.(*JWTClaims)
  if !ok || !parsedToken.Valid {
    return ctx, ErrUnauthenticated
  }
  if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
    return ctx, ErrUnauthenticated
  }
  userID, err := uuid.Parse(claims.Subject)
  if err != nil {
    as.log.Debug("Token subject is not a user id", "error", err)
    return ctx, ErrUnauthenticated
  }
  rd := &requestdata.RequestData{
    TokenString: tokenString,
    UserID:      userID,
  }
  return requestdata.WithRequestData(ctx, rd), nil
}
