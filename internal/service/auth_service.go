package service

import (
	"errors"

	"lsv_backend/internal/config"
	"lsv_backend/internal/model"
	"lsv_backend/internal/repository"
	"lsv_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Users *repository.UserRepository
	Cfg   *config.Config
}

func NewAuthService(users *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{Users: users, Cfg: cfg}
}

type RegisterReq struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	Age           int    `json:"age"`
	IsRightHanded *bool  `json:"isRightHanded"`
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResp struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

func (s *AuthService) Register(req RegisterReq) (*AuthResp, error) {
	if _, err := s.Users.FindByEmail(req.Email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, util.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:         req.Email,
		HashPassword:  string(hashed),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Age:           req.Age,
		IsRightHanded: req.IsRightHanded,
		Role:          model.RoleUser,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &AuthResp{Token: token, User: user}, nil
}

func (s *AuthService) Login(req LoginReq) (*AuthResp, error) {
	user, err := s.Users.FindByEmail(req.Email)
	if errors.Is(err, util.ErrUserNotFound) {
		return nil, util.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashPassword), []byte(req.Password)) != nil {
		return nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &AuthResp{Token: token, User: user}, nil
}

func (s *AuthService) GetProfile(userID string) (*model.User, error) {
	return s.Users.FindByID(userID)
}
