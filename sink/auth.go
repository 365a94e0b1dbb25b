// FILE: lixenwraith/tlog/sink/auth.go
package sink

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultJWTTTL = 5 * time.Minute

// bearer supplies the Authorization token for HTTP batches. Signed tokens
// are cached and reissued once half their lifetime has passed.
type bearer struct {
	static string

	secret  []byte
	issuer  string
	ttl     time.Duration
	cached  string
	renewAt time.Time
}

func newBearer(opts HTTPOptions) *bearer {
	switch {
	case len(opts.JWTSecret) > 0:
		ttl := opts.JWTTTL
		if ttl <= 0 {
			ttl = defaultJWTTTL
		}
		return &bearer{secret: opts.JWTSecret, issuer: opts.JWTIssuer, ttl: ttl}
	case opts.AuthToken != "":
		return &bearer{static: opts.AuthToken}
	default:
		return nil
	}
}

func (b *bearer) token(now time.Time) (string, error) {
	if b.secret == nil {
		return b.static, nil
	}
	if b.cached != "" && now.Before(b.renewAt) {
		return b.cached, nil
	}

	claims := jwt.RegisteredClaims{
		Issuer:    b.issuer,
		Subject:   "log-batch",
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(b.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(b.secret)
	if err != nil {
		return "", err
	}

	b.cached = signed
	b.renewAt = now.Add(b.ttl / 2)
	return signed, nil
}
