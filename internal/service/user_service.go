package service

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/inkwell/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService wraps user account operations backing the auth endpoints.
type UserService struct {
	db *gorm.DB
}

// RegisterInput 表示注册时接受的字段。
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
}

// NewUserService creates a UserService instance.
func NewUserService(gdb *gorm.DB) *UserService {
	return &UserService{db: gdb}
}

// Register 校验输入并创建一个 bcrypt 哈希密码的用户。
// 邮箱已被占用时返回 ErrEmailTaken。
func (s *UserService) Register(input RegisterInput) (*db.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if verr := validateRegister(name, email, input.Password); verr != nil {
		return nil, verr
	}

	var existing db.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := db.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Avatar:   strings.TrimSpace(input.Avatar),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Authenticate 验证邮箱与密码。未知邮箱与密码错误返回同一个错误，
// 避免泄露账号是否存在。
func (s *UserService) Authenticate(email, password string) (*db.User, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	var user db.User
	if err := s.db.Where("email = ?", normalized).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// Get fetches a user by id.
func (s *UserService) Get(id string) (*db.User, error) {
	var user db.User
	if err := s.db.First(&user, "users.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func validateRegister(name, email, password string) *ValidationError {
	verr := &ValidationError{}

	nameLen := len([]rune(name))
	if nameLen < 2 || nameLen > 50 {
		verr.add("name", "name must be between 2 and 50 characters")
	}

	if _, err := mail.ParseAddress(email); err != nil {
		verr.add("email", "please enter a valid email")
	}

	if len(password) < 6 {
		verr.add("password", "password must be at least 6 characters long")
	}

	return verr.orNil()
}
