package auth

import (
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"

	"github.com/platemate/deliverycore/internal/adapter/config"
	"github.com/platemate/deliverycore/internal/core/domain"
	"github.com/platemate/deliverycore/internal/core/port"
)

const tokenDuration = 24 * time.Hour

// PasetoToken verifies bearer tokens issued by the identity provider. The
// symmetric key comes from config and must match the provider's; the core
// only trusts the subject id and role claim carried in the payload.
type PasetoToken struct {
	parser *paseto.Parser
	key    *paseto.V4SymmetricKey
}

func New(cfg *config.Auth) (port.TokenService, error) {
	parser := paseto.NewParser()

	var key paseto.V4SymmetricKey
	if cfg.TokenKey == "" {
		// Without a shared key only tokens minted by this process verify.
		key = paseto.NewV4SymmetricKey()
	} else {
		var err error
		key, err = paseto.V4SymmetricKeyFromHex(cfg.TokenKey)
		if err != nil {
			return nil, fmt.Errorf("error parsing token key: %w", err)
		}
	}

	s := PasetoToken{
		parser: &parser,
		key:    &key,
	}

	return &s, nil
}

func (p *PasetoToken) CreateToken(subject string, role string) (string, error) {
	token := paseto.NewToken()
	token.SetExpiration(time.Now().Add(tokenDuration))

	payload := port.TokenPayload{Subject: subject, Role: role}
	if err := token.Set("payload", payload); err != nil {
		return "", domain.ErrInvalidToken
	}

	return token.V4Encrypt(*p.key, nil), nil
}

func (p *PasetoToken) VerifyToken(token string) (*port.TokenPayload, error) {
	parsedToken, err := p.parser.ParseV4Local(*p.key, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	payload := port.TokenPayload{}
	if err := parsedToken.Get("payload", &payload); err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &payload, nil
}
