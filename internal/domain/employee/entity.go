package employee

type EmploymentStatus string

const (
	StatusFullTime EmploymentStatus = "Full Time"
	StatusPartTime EmploymentStatus = "Part Time"
	StatusContract EmploymentStatus = "Contract"
	StatusOnLeave  EmploymentStatus = "On Leave"
)

// Employee is a hospital staff directory record, independent of whether the
// person has a system account.
type Employee struct {
	ID                 string           `json:"id"`
	FirstName          string           `json:"first_name"`
	LastName           string           `json:"last_name"`
	Email              string           `json:"email"`
	Phone              string           `json:"phone"`
	Role               string           `json:"role"`
	Department         string           `json:"department"`
	Status             EmploymentStatus `json:"status"`
	JoinDate           string           `json:"join_date"`
	AvatarURL          string           `json:"avatar_url"`
	Skills             []string         `json:"skills"`
	PerformanceRating  float64          `json:"performance_rating"`
	RecentAchievements []string         `json:"recent_achievements,omitempty"`
	Bio                *string          `json:"bio,omitempty"`
}

// FullName joins first and last name the way the directory displays it.
func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
