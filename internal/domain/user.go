package domain

import "fmt"

// User is the single cached entity. ID is zero until the first save.
type User struct {
	ID        int64  `json:"userId"`
	Name      string `json:"name"`
	Followers int64  `json:"followers"`
}

// String renders the user for log lines.
func (u User) String() string {
	return fmt.Sprintf("User{userId=%d, name='%s', followers=%d}", u.ID, u.Name, u.Followers)
}

// UpdateUserRequest is the body of PUT /users.
type UpdateUserRequest struct {
	UserID    int64  `json:"userId" binding:"required,gt=0"`
	Name      string `json:"name"`
	Followers int64  `json:"followers" binding:"gte=0"`
}

// ToUser converts the request to the domain value passed to the service.
func (r *UpdateUserRequest) ToUser() User {
	return User{
		ID:        r.UserID,
		Name:      r.Name,
		Followers: r.Followers,
	}
}
