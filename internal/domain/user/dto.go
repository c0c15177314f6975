package user

// UserResponse represents account data in API responses
type UserResponse struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	FullName   string  `json:"full_name"`
	Role       string  `json:"role"`
	AvatarURL  string  `json:"avatar_url"`
	EmployeeID *string `json:"employee_id,omitempty"`
}

// ToResponse maps the entity to its API shape. The password hash never
// leaves the service layer.
func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		FullName:   u.FullName,
		Role:       string(u.Role),
		AvatarURL:  u.AvatarURL,
		EmployeeID: u.EmployeeID,
	}
}

func ToResponses(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToResponse(u))
	}
	return responses
}
