package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hugohenrick/liora/internal/domain/user"
)

// Erros específicos
var (
	ErrInvalidToken  = errors.New("token inválido")
	ErrExpiredToken  = errors.New("token expirado")
	ErrInvalidClaims = errors.New("claims inválidas")
	ErrMissingJWTKey = errors.New("chave secreta JWT não configurada")
)

// SupabaseClaims representa as claims dos access tokens emitidos pelo Supabase Auth.
// O ID do usuário vem em "sub".
type SupabaseClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService valida os tokens do serviço de autenticação
type JWTService struct {
	secretKey []byte
	issuer    string
}

// NewJWTService cria uma nova instância de JWTService.
// issuer é opcional; quando informado, tokens de outro emissor são rejeitados.
func NewJWTService(secret, issuer string) (*JWTService, error) {
	if secret == "" {
		return nil, ErrMissingJWTKey
	}

	return &JWTService{
		secretKey: []byte(secret),
		issuer:    issuer,
	}, nil
}

// GenerateToken gera um token no formato do Supabase. Usado em testes e ferramentas locais.
func (s *JWTService) GenerateToken(u *user.User, expiresIn time.Duration) (string, error) {
	now := time.Now()
	role := u.Role
	if role == "" {
		role = user.RoleAuthenticated
	}

	claims := SupabaseClaims{
		Email: u.Email,
		Role:  string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   u.ID,
			Audience:  jwt.ClaimStrings{string(user.RoleAuthenticated)},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateToken valida um token e retorna o usuário autenticado
func (s *JWTService) ValidateToken(tokenString string) (*user.User, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &SupabaseClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	}, opts...)

	if err != nil {
		// Verificar se o erro é de token expirado
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SupabaseClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidClaims
	}

	return &user.User{
		ID:    claims.Subject,
		Email: claims.Email,
		Role:  user.Role(claims.Role),
	}, nil
}
