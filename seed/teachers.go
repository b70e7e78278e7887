package seed

import "github.com/ti/docstore/dependencies/database"

// Roles.
const (
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

type teacher struct {
	Username    string
	DisplayName string
	Password    string
	Role        string
}

func (t teacher) document(hashedPassword string) database.Document {
	return database.Document{
		database.IDField: t.Username,
		"username":       t.Username,
		"display_name":   t.DisplayName,
		"password":       hashedPassword,
		"role":           t.Role,
	}
}

var teachers = []teacher{
	{Username: "mrodriguez", DisplayName: "Ms. Rodriguez", Password: "art123", Role: RoleTeacher},
	{Username: "mchen", DisplayName: "Mr. Chen", Password: "chess456", Role: RoleTeacher},
	{Username: "principal", DisplayName: "Principal Martinez", Password: "admin789", Role: RoleAdmin},
}
