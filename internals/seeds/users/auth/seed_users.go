package user

import (
	"encoding/json"
	"log"
	"os"

	"invigileye_backend/internals/constants"
	"invigileye_backend/internals/features/users/user/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserSeed struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// DefaultUsers are the accounts a fresh database starts with.
var DefaultUsers = []UserSeed{
	{ID: 1, Username: "admin", Password: "admin123", Role: constants.RoleAdmin, FullName: "Admin User", Email: "admin@invigleye.com"},
	{ID: 2, Username: "invigilator", Password: "invig123", Role: constants.RoleInvigilator, FullName: "John Doe", Email: "john@invigleye.com"},
	{ID: 3, Username: "invigilator2", Password: "invig123", Role: constants.RoleInvigilator, FullName: "Jane Smith", Email: "jane@invigleye.com"},
}

// SeedUsersFromJSON reads seeds from filePath, falling back to DefaultUsers when the
// file does not exist.
func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	inputs := DefaultUsers

	if filePath != "" {
		file, err := os.ReadFile(filePath)
		switch {
		case err == nil:
			var parsed []UserSeed
			if err := json.Unmarshal(file, &parsed); err != nil {
				log.Printf("❌ Failed to decode %s: %v (using defaults)", filePath, err)
			} else {
				inputs = parsed
			}
		case !os.IsNotExist(err):
			log.Printf("❌ Failed to read %s: %v (using defaults)", filePath, err)
		}
	}

	if err := SeedUsers(db, inputs); err != nil {
		log.Printf("❌ Failed to seed users: %v", err)
	}
}

// SeedUsers inserts every seed whose username is not taken yet. Existing rows are left alone.
func SeedUsers(db *gorm.DB, inputs []UserSeed) error {
	for _, data := range inputs {
		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		u := model.UserModel{
			ID:       data.ID,
			Username: data.Username,
			Password: string(hashed),
			Role:     data.Role,
			FullName: strPtr(data.FullName),
			Email:    strPtr(data.Email),
		}

		res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&u)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			log.Printf("✅ Seeded user '%s'", data.Username)
		}
	}
	return nil
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
