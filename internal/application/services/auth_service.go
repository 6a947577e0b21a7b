package services

import (
	"github.com/google/uuid"
	"tutorial-service/internal/application/command"
	"tutorial-service/internal/application/interfaces"
	"tutorial-service/internal/application/mapper"
	"tutorial-service/internal/domain/apperrors"
	"tutorial-service/internal/domain/entities"
	"tutorial-service/internal/domain/repositories"
	"tutorial-service/internal/infrastructure"
)

type AuthService struct {
	userRepo    repositories.UserRepository
	jwtService  *infrastructure.JWTService
	rateLimiter *infrastructure.RateLimiter
}

func NewAuthService(
	userRepo repositories.UserRepository,
	jwtService *infrastructure.JWTService,
	rateLimiter *infrastructure.RateLimiter,
) interfaces.AuthService {
	return &AuthService{
		userRepo:    userRepo,
		jwtService:  jwtService,
		rateLimiter: rateLimiter,
	}
}

// Login verifies the email/password pair and issues a token. Unknown email
// and wrong password both come back as ErrInvalidCredentials so a caller
// cannot probe which part was wrong.
func (s *AuthService) Login(loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	if s.rateLimiter != nil && !s.rateLimiter.Allow(loginCommand.Email) {
		return nil, apperrors.ErrTooManyRequests
	}

	user, err := s.userRepo.FindByEmail(loginCommand.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := user.CheckPassword(loginCommand.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.Id.String(), user.Name)
	if err != nil {
		return nil, err
	}

	result := command.LoginUserCommandResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(user),
	}

	return &result, nil
}

// Authenticate resolves a token to its Identity. Expired, tampered and
// malformed tokens all resolve to no identity; so does a token whose subject
// was deleted after issuance.
func (s *AuthService) Authenticate(token string) (*entities.User, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, nil
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, nil
	}

	user, err := s.userRepo.FindById(id)
	if err != nil {
		return nil, err
	}

	return user, nil
}
