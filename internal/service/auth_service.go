package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mvcampos/painel-iptv/internal/config"
	"github.com/mvcampos/painel-iptv/internal/domain"
	"github.com/mvcampos/painel-iptv/internal/metrics"
	"github.com/mvcampos/painel-iptv/pkg/logger"
)

// SessionClaims claims do token de sessão
type SessionClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// AuthService autentica as duas chaves de acesso do painel e emite o token
// de sessão. Exatamente duas senhas são aceitas, cada uma mapeando para um
// papel; qualquer outro valor é rejeitado com o mesmo erro genérico, sem
// bloqueio nem limite de tentativas.
type AuthService struct {
	cfg     *config.Config
	metrics metrics.ClientMetrics
	log     *logger.Logger
}

// NewAuthService cria o serviço de autenticação
func NewAuthService(cfg *config.Config, m metrics.ClientMetrics, log *logger.Logger) *AuthService {
	return &AuthService{
		cfg:     cfg,
		metrics: m,
		log:     log,
	}
}

// Login compara a senha com as duas chaves configuradas e devolve o token
// de sessão do papel correspondente. A comparação é exata: senha vazia ou
// com caixa diferente é rejeitada.
func (s *AuthService) Login(password string) (string, domain.Session, error) {
	var scope domain.OwnerScope

	switch password {
	case s.cfg.Auth.OwnerPassword:
		scope = domain.ScopeOwner
	case s.cfg.Auth.PartnerPassword:
		scope = domain.ScopePartner
	default:
		s.metrics.IncLoginRejected()
		return "", domain.Session{}, domain.ErrInvalidCredentials
	}

	session := domain.NewSession(scope)
	token, err := s.issueToken(session)
	if err != nil {
		return "", domain.Session{}, err
	}

	s.metrics.IncLogin(string(scope))
	s.log.Infow("Login successful", "scope", scope)
	return token, session, nil
}

// issueToken emite o JWT da sessão. O token não expira: a sessão original
// vivia só em memória e morria no logout ou no recarregamento da página.
func (s *AuthService) issueToken(session domain.Session) (string, error) {
	claims := SessionClaims{
		Scope: string(session.Scope),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(session.IssuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// ValidateToken valida o token e reconstrói a sessão do chamador.
func (s *AuthService) ValidateToken(tokenString string) (domain.Session, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	scope := domain.OwnerScope(claims.Scope)
	if !scope.Valid() {
		return domain.Session{}, domain.ErrInvalidScope
	}

	session := domain.Session{Scope: scope}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	} else {
		session.IssuedAt = time.Now()
	}

	return session, nil
}
