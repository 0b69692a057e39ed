package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/WorkNestHQ/job_service/internal/domain"
	"github.com/WorkNestHQ/job_service/internal/dto"
	"github.com/WorkNestHQ/job_service/internal/helper"
	"github.com/WorkNestHQ/job_service/internal/interfaces"
	"github.com/WorkNestHQ/job_service/internal/repository"
	"gorm.io/gorm"
)

type UserService interface {
	Register(input dto.RegisterRequest) (*dto.LoginResponse, error)
	Login(input dto.UserLogin) (*dto.LoginResponse, error)
	GetProfile(userID uint) (*domain.User, error)
	UpdateProfile(userID uint, input dto.UpdateUserProfile) (*domain.User, error)
}

type userService struct {
	repo     repository.UserRepository
	auth     helper.Auth
	producer interfaces.ProducerHandler
}

func NewUserService(
	repo repository.UserRepository,
	producer interfaces.ProducerHandler,
	auth helper.Auth,
) UserService {
	return &userService{
		repo:     repo,
		producer: producer,
		auth:     auth,
	}
}

func (u *userService) Register(input dto.RegisterRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	role := strings.TrimSpace(input.Role)

	if !domain.ValidRole(role) {
		return nil, errors.New("invalid role")
	}
	if role == domain.RoleEmployer && strings.TrimSpace(input.CompanyName) == "" {
		return nil, errors.New("Company name is required for employers")
	}

	// The unique index on users.email is the real guard; this lookup just
	// gives a friendlier failure for the common case.
	existing, err := u.repo.FindUserByEmail(email)
	if err == nil && existing != nil && existing.ID != 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := u.auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	newUser := &domain.User{
		Email:        email,
		PasswordHash: hashed,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         role,
		IsVerified:   false,
		IsActive:     true,
	}
	if role == domain.RoleEmployer {
		newUser.CompanyName = strings.TrimSpace(input.CompanyName)
	}

	usr, err := u.repo.CreateUser(newUser)
	if err != nil {
		if helper.IsDuplicateEmail(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := u.auth.GenerateToken(usr.ID, usr.Role)
	if err != nil {
		return nil, err
	}

	u.publishRegistered(usr)

	return &dto.LoginResponse{Token: token, User: usr}, nil
}

func (u *userService) Login(input dto.UserLogin) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	// Unknown email and wrong password collapse into one failure so the
	// endpoint cannot be used to enumerate accounts.
	user, err := u.repo.FindUserByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := u.auth.VerifyPassword(input.Password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := u.auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user.LastLogin = &now
	if err := u.repo.SaveUser(user); err != nil {
		log.Printf("update last login error: %v", err)
	}

	return &dto.LoginResponse{Token: token, User: user}, nil
}

func (u *userService) GetProfile(userID uint) (*domain.User, error) {
	user, err := u.repo.FindUserById(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies only the allow-listed fields carried by the DTO.
// Email and role have no representation there and stay immutable.
func (u *userService) UpdateProfile(userID uint, input dto.UpdateUserProfile) (*domain.User, error) {
	user, err := u.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Location != nil {
		user.Location = *input.Location
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Skills != nil {
		user.Skills = *input.Skills
	}
	if input.Experience != nil {
		user.Experience = *input.Experience
	}
	if input.Education != nil {
		user.Education = *input.Education
	}
	if input.CompanyName != nil {
		user.CompanyName = *input.CompanyName
	}
	if input.CompanySize != nil {
		user.CompanySize = *input.CompanySize
	}
	if input.CompanyWebsite != nil {
		user.CompanyWebsite = *input.CompanyWebsite
	}
	if input.CompanyDescription != nil {
		user.CompanyDescription = *input.CompanyDescription
	}

	if err := u.repo.SaveUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userService) publishRegistered(usr *domain.User) {
	payload, err := json.Marshal(dto.UserRegisteredEvent{
		UserID: usr.ID,
		Email:  usr.Email,
		Role:   usr.Role,
	})
	if err != nil {
		return
	}
	if err := u.producer.PublishMessage([]byte(fmt.Sprintf("user.registered:%d", usr.ID)), payload); err != nil {
		log.Printf("publish user.registered error: %v", err)
	}
}
