package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"personalsite/internal/config"
	"personalsite/internal/models"
	"personalsite/internal/repository"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, emailOrName, password string) (*models.User, string, error)
	IssueToken(user *models.User) (string, error)
	VerifyToken(tokenString string) *models.Claims
	EnsureAdmin(ctx context.Context) error
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*models.User, string, error) {
	// логин администратора зарезервирован и не регистрируется
	if req.Email == s.cfg.AdminUsername || req.Name == s.cfg.AdminUsername {
		return nil, "", fmt.Errorf("это имя зарезервировано: %w", repository.ErrConflict)
	}

	user := &models.User{
		Email:  req.Email,
		Name:   req.Name,
		Role:   models.RoleUser,
		Avatar: fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", req.Email),
		Bio:    "",
	}

	// уникальность email/имени окончательно гарантирует индекс в БД
	err := s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login не различает "нет такого пользователя" и "неверный пароль"
func (s *authService) Login(ctx context.Context, emailOrName, password string) (*models.User, string, error) {
	user, err := s.userRepo.ValidateCredentials(ctx, emailOrName, password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка генерации токена: %w", err)
	}

	return user, token, nil
}

func (s *authService) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": user.UserID,
		"email":  user.Email,
		"role":   user.Role,
		"name":   user.Name,
		"iat":    now.Unix(),
		"exp":    now.Add(s.cfg.AuthTokenDuration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

// VerifyToken возвращает nil при любой проблеме: нет токена, битая подпись,
// истёкший срок. Ошибки наружу не отдаются, отсутствие сессии — не исключение.
func (s *authService) VerifyToken(tokenString string) *models.Claims {
	if tokenString == "" {
		return nil
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})

	if err != nil || !token.Valid {
		return nil
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	userID, ok1 := mapClaims["userId"].(string)
	email, ok2 := mapClaims["email"].(string)
	role, ok3 := mapClaims["role"].(string)
	name, ok4 := mapClaims["name"].(string)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil
	}

	claims := &models.Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		Name:   name,
	}

	if iat, ok := mapClaims["iat"].(float64); ok {
		claims.IssuedAt = time.Unix(int64(iat), 0)
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.ExpiresAt = time.Unix(int64(exp), 0)
	}

	return claims
}

// EnsureAdmin идемпотентно поддерживает ровно одну учётку администратора.
// Пароль перехешируется на каждом старте, чтобы ротация в окружении
// вступала в силу сразу.
func (s *authService) EnsureAdmin(ctx context.Context) error {
	if s.cfg.AdminUsername == "" || s.cfg.AdminPassword == "" {
		return errors.New("ADMIN_USERNAME и ADMIN_PASSWORD не настроены")
	}

	admin, err := s.userRepo.GetUserByIdentity(ctx, s.cfg.AdminUsername)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("ошибка поиска администратора: %w", err)
		}

		admin = &models.User{
			Email:  s.cfg.AdminUsername,
			Name:   "Admin",
			Role:   models.RoleAdmin,
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=admin",
			Bio:    "Администратор сайта",
		}

		if err := s.userRepo.CreateUser(ctx, admin, s.cfg.AdminPassword); err != nil {
			return fmt.Errorf("ошибка создания администратора: %w", err)
		}

		log.Println("Учётная запись администратора создана")
		return nil
	}

	if err := s.userRepo.UpdatePassword(ctx, admin.UserID, s.cfg.AdminPassword); err != nil {
		return fmt.Errorf("ошибка обновления пароля администратора: %w", err)
	}

	log.Println("Пароль администратора обновлён")
	return nil
}
