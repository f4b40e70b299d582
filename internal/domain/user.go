package domain

// User is an account record keyed by username. Password holds a bcrypt hash
// and must be blanked before the record leaves the API.
type User struct {
	Username string `json:"username" bson:"username"`
	Password string `json:"password,omitempty" bson:"password"`
	Admin    bool   `json:"admin" bson:"admin"`
}
