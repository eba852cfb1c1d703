// internal/domain/models/user.go
package models

// User is a record in the kullanicilar collection. Identity key is the
// email address, not the OAuth subject id: every login looks the record up
// by email and creates it on first sight.
//
// JSON tags are the collection's field names (Turkish where the schema is).
//
// NOTE:
//   - ConsentAccepted is one-way: once true the consent form is never
//     shown again.
//   - Role and the role-dependent fields (Sinif/Alan/Brans) lock after
//     first save; the profile form renders them read-only from then on.
type User struct {
	ID              ID     `json:"id,omitempty"`
	Email           string `json:"email"`
	FirstName       string `json:"isim,omitempty"`
	LastName        string `json:"soyisim,omitempty"`
	ConsentAccepted bool   `json:"termsAccepted"`
	Role            string `json:"role,omitempty"`  // Öğrenci | Öğretmen | Ebeveyn
	Sinif           string `json:"sinif,omitempty"` // class level, students only
	Alan            string `json:"alan,omitempty"`  // track, grades 9-12 only
	Brans           string `json:"brans,omitempty"` // subject, teachers only
	BirthDate       string `json:"dogum_tarihi,omitempty"`
}

// FullName joins the first and last name, tolerating either being empty.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
