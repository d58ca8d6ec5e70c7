package user

import (
	"context"
	"errors"
	"strings"

	"meal-planner/domain"
	"meal-planner/entities"
	"meal-planner/pkg/jwt"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.UserResponse, error)
		UpdatePreferences(ctx context.Context, userID string, req domain.UpdatePreferencesRequest) (domain.UserResponse, error)
		GetProfile(ctx context.Context, userID string) (domain.Profile, error)
		GetDailyPlanSubscribers(ctx context.Context) ([]*entities.User, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepository.CheckUserByEmail(ctx, email)
	if err != nil {
		return domain.UserResponse{}, err
	}
	if exists {
		return domain.UserResponse{}, domain.ErrEmailAlreadyExists
	}
	if !IsActivityLevel(req.ActivityLevel) {
		return domain.UserResponse{}, domain.ErrInvalidActivityLevel
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorf("hash password: %v", err)
		return domain.UserResponse{}, domain.ErrHashPassword
	}

	user := &entities.User{
		ID:            uuid.New(),
		Name:          req.Name,
		Email:         email,
		Password:      string(hashed),
		Role:          domain.RoleUser,
		Sex:           req.Sex,
		Age:           req.Age,
		WeightKg:      req.WeightKg,
		HeightCm:      req.HeightCm,
		ActivityLevel: req.ActivityLevel,
	}
	setGoals(user, CalculateGoals(user.Sex, user.Age, user.WeightKg, user.HeightCm, user.ActivityLevel))

	if err := s.userRepository.RegisterUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}
	return ToResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	return domain.LoginResponse{
		Token: s.jwtService.GenerateTokenUser(user.ID.String(), user.Role),
		Role:  user.Role,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return ToResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}

	goals, explicit, err := explicitGoals(req)
	if err != nil {
		return domain.UserResponse{}, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}

	statsChanged := false
	if req.Sex != "" && req.Sex != user.Sex {
		user.Sex = req.Sex
		statsChanged = true
	}
	if req.Age > 0 && req.Age != user.Age {
		user.Age = req.Age
		statsChanged = true
	}
	if req.WeightKg > 0 && req.WeightKg != user.WeightKg {
		user.WeightKg = req.WeightKg
		statsChanged = true
	}
	if req.HeightCm > 0 && req.HeightCm != user.HeightCm {
		user.HeightCm = req.HeightCm
		statsChanged = true
	}
	if req.ActivityLevel != "" {
		if !IsActivityLevel(req.ActivityLevel) {
			return domain.UserResponse{}, domain.ErrInvalidActivityLevel
		}
		if req.ActivityLevel != user.ActivityLevel {
			user.ActivityLevel = req.ActivityLevel
			statsChanged = true
		}
	}

	switch {
	case explicit:
		setGoals(user, goals)
	case statsChanged:
		setGoals(user, CalculateGoals(user.Sex, user.Age, user.WeightKg, user.HeightCm, user.ActivityLevel))
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}
	return ToResponse(user), nil
}

// explicitGoals reports whether req sets goals. Goals are all-or-nothing.
func explicitGoals(req domain.UpdateProfileRequest) (domain.Macros, bool, error) {
	given := 0
	for _, g := range []*float64{req.CalorieGoal, req.ProteinGoal, req.CarbGoal, req.FatGoal} {
		if g != nil {
			given++
		}
	}
	switch given {
	case 0:
		return domain.Macros{}, false, nil
	case 4:
		return domain.Macros{
			Calories:      *req.CalorieGoal,
			Protein:       *req.ProteinGoal,
			Carbohydrates: *req.CarbGoal,
			Fat:           *req.FatGoal,
		}, true, nil
	default:
		return domain.Macros{}, false, domain.ErrIncompleteGoals
	}
}

func (s *userService) UpdatePreferences(ctx context.Context, userID string, req domain.UpdatePreferencesRequest) (domain.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}

	if req.PreferredTags != nil {
		user.PreferredTags = domain.NormalizeTags(req.PreferredTags)
	}
	if req.AvoidedTags != nil {
		user.AvoidedTags = domain.NormalizeTags(req.AvoidedTags)
	}
	if req.Allergens != nil {
		user.Allergens = domain.NormalizeTags(req.Allergens)
	}
	if req.DailyPlanEmail != nil {
		user.DailyPlanEmail = *req.DailyPlanEmail
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}
	return ToResponse(user), nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}
	return ToProfile(user), nil
}

func (s *userService) GetDailyPlanSubscribers(ctx context.Context) ([]*entities.User, error) {
	return s.userRepository.GetDailyPlanSubscribers(ctx)
}

func (s *userService) getUser(ctx context.Context, userID string) (*entities.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func setGoals(user *entities.User, goals domain.Macros) {
	user.CalorieGoal = goals.Calories
	user.ProteinGoal = goals.Protein
	user.CarbGoal = goals.Carbohydrates
	user.FatGoal = goals.Fat
}
