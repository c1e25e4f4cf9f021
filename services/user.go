package services

import (
	"errors"
	"time"

	"meghmart/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Users handles registration, login and the existence checks the rest of the
// system relies on.
type Users struct {
	db        *gorm.DB
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewUsers(gdb *gorm.DB, jwtSecret string, tokenTTL time.Duration) *Users {
	return &Users{db: gdb, jwtSecret: []byte(jwtSecret), tokenTTL: tokenTTL}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

func (s *Users) Register(in RegisterInput) (*models.User, error) {
	var n int64
	if err := s.db.Model(&models.User{}).Where("email = ?", in.Email).Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, errf(KindDuplicate, "user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  string(hash),
		Phone:     in.Phone,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Users) Login(email, password string) (*models.User, string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", errf(KindNotFound, "invalid email or password")
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", errf(KindPermissionDenied, "invalid email or password")
	}

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"admin": user.IsAdmin,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *Users) Get(id uint) (*models.User, error) {
	return findUser(s.db, id)
}

// ParseToken verifies a token and returns the user id and admin flag.
func (s *Users) ParseToken(tokenString string) (uint, bool, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errf(KindPermissionDenied, "unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, false, errf(KindPermissionDenied, "invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false, errf(KindPermissionDenied, "invalid token claims")
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, false, errf(KindPermissionDenied, "invalid token subject")
	}
	admin, _ := claims["admin"].(bool)
	return uint(sub), admin, nil
}
