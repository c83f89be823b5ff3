package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"invigileye_backend/internals/constants"
	userModel "invigileye_backend/internals/features/users/user/model"
	authMw "invigileye_backend/internals/middlewares/auth"
)

const accessTTL = 12 * time.Hour

var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticate looks the user up by (username, role) and checks the password.
func Authenticate(ctx context.Context, db *gorm.DB, username, password, role string) (*userModel.UserModel, error) {
	var u userModel.UserModel
	err := db.WithContext(ctx).
		Where("username = ? AND role = ?", username, role).
		Take(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !VerifyPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

// VerifyPassword: bcrypt when stored looks like a bcrypt hash, plain comparison otherwise.
func VerifyPassword(stored, given string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

func isBcryptHash(s string) bool {
	return len(s) == 60 && (strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$"))
}

// IssueAccessToken signs an HS256 token valid for 12h from now.
func IssueAccessToken(u *userModel.UserModel, secret string, now time.Time) (string, error) {
	claims := authMw.Claims{
		Role: u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(u.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTTL)),
		},
	}
	if u.Email != nil {
		claims.Email = *u.Email
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func ListInvigilators(ctx context.Context, db *gorm.DB) ([]userModel.UserModel, error) {
	var rows []userModel.UserModel
	err := db.WithContext(ctx).
		Where("role = ?", constants.RoleInvigilator).
		Order("full_name ASC, id ASC").
		Find(&rows).Error
	return rows, err
}
