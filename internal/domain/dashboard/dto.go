package dashboard

// DepartmentCount is a head count per department, in first-appearance order.
type DepartmentCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type SummaryResponse struct {
	TotalEmployees        int               `json:"total_employees"`
	FullTimeEmployees     int               `json:"full_time_employees"`
	AveragePerformance    float64           `json:"average_performance"`
	EmployeesByDepartment []DepartmentCount `json:"employees_by_department"`
}
