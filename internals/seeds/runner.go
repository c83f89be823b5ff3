package seeds

import (
	users "invigileye_backend/internals/seeds/users/auth"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {

	//* User
	users.SeedUsersFromJSON(db, "internals/seeds/users/auth/data_users.json")

}
