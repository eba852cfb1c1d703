// internal/domain/models/roles.go
package models

// Role is a profile type option for the UI.
type Role struct {
	Value string // The value stored in the kullanicilar collection
	Label string // The display label in the UI
}

// AllRoles contains the profile types a user can pick. The values double
// as the display labels; the collection stores the Turkish word itself.
var AllRoles = []Role{
	{Value: "Öğrenci", Label: "Öğrenci"},
	{Value: "Öğretmen", Label: "Öğretmen"},
	{Value: "Ebeveyn", Label: "Ebeveyn"},
}

const (
	RoleStudent = "Öğrenci"
	RoleTeacher = "Öğretmen"
	RoleParent  = "Ebeveyn"
)

// IsValidRole checks if a value is a known profile type.
func IsValidRole(value string) bool {
	for _, r := range AllRoles {
		if r.Value == value {
			return true
		}
	}
	return false
}

// Sinif options for the student class-level dropdown.
var AllSinifs = []string{"5", "6", "7", "8", "9", "10", "11", "12", "Mezun"}

// TrackRequired reports whether the given class level needs an alan
// (track) choice. Only grades 9 through 12 pick a track.
func TrackRequired(sinif string) bool {
	switch sinif {
	case "9", "10", "11", "12":
		return true
	}
	return false
}

// AllAlans contains the track options for grades 9-12.
var AllAlans = []string{"Sayısal", "Eşit Ağırlık", "Sözel", "Dil"}
