package services

import (
  "context"
  "errors"
  "testing"
  "time"

  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"

  "github.com/ysagp/attendance-analytics/internal/requestdata"
)

const testSecret = "test-secret"

func signToken(t *testing.T, subject string, ttl time.Duration) string {
  t.Helper()
  claims := JWTClaims{
    RegisteredClaims: jwt.RegisteredClaims{
      Subject:   subject,
      ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
      IssuedAt:  jwt.NewNumericDate(time.Now()),
    },
  }
  token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
  if err != nil {
    t.Fatalf("sign token: %v", err)
  }
  return token
}

func TestAuthValidToken(t *testing.T) {
  svc := NewAuthService(testLogger(t), testSecret)
  userID := uuid.New()

  ctx, err := svc.SetContextFromToken(context.Background(), signToken(t, userID.String(), time.Hour))
  if err != nil {
    t.Fatalf("SetContextFromToken: %v", err)
  }
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID != userID {
    t.Fatalf("request data not set: %+v", rd)
  }
}

func TestAuthRejections(t *testing.T) {
  svc := NewAuthService(testLogger(t), testSecret)
  userID := uuid.New().String()

  cases := []struct {
    name  string
    token string
  }{
    {name: "empty_token", token: ""},
    {name: "garbage_token", token: "not.a.jwt"},
    {name: "expired_token", token: signToken(t, userID, -time.Hour)},
    {name: "non_uuid_subject", token: signToken(t, "admin", time.Hour)},
    {
      name: "wrong_secret",
      token: func() string {
        claims := jwt.RegisteredClaims{Subject: userID, ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
        s, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
        return s
      }(),
    },
  }
  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      _, err := svc.SetContextFromToken(context.Background(), tc.token)
      if !errors.Is(err, ErrUnauthenticated) {
        t.Fatalf("got %v, want ErrUnauthenticated", err)
      }
    })
  }
}
