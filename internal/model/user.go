package model

// User mirrors a row of the users table. The stored bcrypt hash never
// leaves the API: JSON marshalling skips it and handlers respond with
// Profile() instead.
type User struct {
	ID                           int64  `db:"id" json:"id"`
	Name                         string `db:"name" json:"name"`
	Email                        string `db:"email" json:"email"`
	Password                     string `db:"password" json:"-"`
	Phone                        string `db:"phone" json:"phone"`
	DateOfBirth                  string `db:"dateOfBirth" json:"dateOfBirth"`
	BloodGroup                   string `db:"bloodGroup" json:"bloodGroup"`
	EmergencyContactName         string `db:"emergencyContactName" json:"-"`
	EmergencyContactPhone        string `db:"emergencyContactPhone" json:"-"`
	EmergencyContactRelationship string `db:"emergencyContactRelationship" json:"-"`
	CreatedAt                    string `db:"createdAt" json:"-"`
}

// EmergencyContact is the nested shape the client expects on profile
// responses; the table keeps the three columns flat.
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

type UserProfile struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	DateOfBirth      string           `json:"dateOfBirth"`
	BloodGroup       string           `json:"bloodGroup"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
}

// Profile strips the credential columns and nests the emergency contact.
func (u *User) Profile() *UserProfile {
	return &UserProfile{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Phone:       u.Phone,
		DateOfBirth: u.DateOfBirth,
		BloodGroup:  u.BloodGroup,
		EmergencyContact: EmergencyContact{
			Name:         u.EmergencyContactName,
			Phone:        u.EmergencyContactPhone,
			Relationship: u.EmergencyContactRelationship,
		},
	}
}

// UpdateProfileRequest carries the mutable profile fields. Email and
// password are immutable through the profile endpoint.
type UpdateProfileRequest struct {
	Name             string            `json:"name"`
	Phone            string            `json:"phone"`
	DateOfBirth      string            `json:"dateOfBirth"`
	BloodGroup       string            `json:"bloodGroup"`
	EmergencyContact *EmergencyContact `json:"emergencyContact"`
}
