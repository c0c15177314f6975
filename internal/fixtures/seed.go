package fixtures

import (
	"github.com/shopspring/decimal"
	"github.com/waron-hospital/hr-backend-go/internal/domain/attendance"
	"github.com/waron-hospital/hr-backend-go/internal/domain/employee"
	"github.com/waron-hospital/hr-backend-go/internal/domain/master/department"
	"github.com/waron-hospital/hr-backend-go/internal/domain/payroll"
	"github.com/waron-hospital/hr-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func strPtr(s string) *string { return &s }

func rupiah(amount int64) decimal.Decimal { return decimal.NewFromInt(amount) }

// hashOf returns a bcrypt hash of the given password. Seed accounts use
// their username as the password; this is demo data only and any real
// deployment replaces the directory wholesale.
func hashOf(password string) *string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic("fixtures: bcrypt failed: " + err.Error())
	}
	return strPtr(string(hash))
}

// ==========================================
// SEED DATA
// ==========================================

// Users returns the demo account directory: one admin, one HR manager and
// one staff account, the latter two linked to employee records.
func Users() []user.User {
	return []user.User{
		{
			ID:           "USR-001",
			Username:     "admin",
			FullName:     "Dr. Hendra Gunawan",
			Role:         user.RoleAdmin,
			AvatarURL:    "https://ui-avatars.com/api/?name=Hendra+Gunawan&background=0d9488&color=fff",
			PasswordHash: hashOf("admin"),
		},
		{
			ID:           "USR-002",
			Username:     "hr",
			FullName:     "Linda Kusuma",
			Role:         user.RoleHRManager,
			AvatarURL:    "https://picsum.photos/id/338/200/200",
			EmployeeID:   strPtr("EMP-005"),
			PasswordHash: hashOf("hr"),
		},
		{
			ID:           "USR-003",
			Username:     "staff",
			FullName:     "Sarah Wijaya",
			Role:         user.RoleStaff,
			AvatarURL:    "https://picsum.photos/id/64/200/200",
			EmployeeID:   strPtr("EMP-001"),
			PasswordHash: hashOf("staff"),
		},
	}
}

func Employees() []employee.Employee {
	return []employee.Employee{
		{
			ID:                 "EMP-001",
			FirstName:          "Sarah",
			LastName:           "Wijaya",
			Email:              "sarah.wijaya@waronhospital.com",
			Phone:              "+62 812-3456-7890",
			Role:               "Senior Cardiologist",
			Department:         department.Cardiology,
			Status:             employee.StatusFullTime,
			JoinDate:           "2018-03-15",
			AvatarURL:          "https://picsum.photos/id/64/200/200",
			Skills:             []string{"Cardiac Surgery", "Echocardiography", "Patient Care", "Team Leadership"},
			PerformanceRating:  4.8,
			RecentAchievements: []string{"Led successful heart transplant", "Published research paper on arrhythmia"},
		},
		{
			ID:                 "EMP-002",
			FirstName:          "Budi",
			LastName:           "Santoso",
			Email:              "budi.santoso@waronhospital.com",
			Phone:              "+62 811-2233-4455",
			Role:               "Head Nurse",
			Department:         department.Nursing,
			Status:             employee.StatusFullTime,
			JoinDate:           "2015-06-01",
			AvatarURL:          "https://picsum.photos/id/91/200/200",
			Skills:             []string{"Emergency Triage", "Staff Management", "ICU Care"},
			PerformanceRating:  4.9,
			RecentAchievements: []string{"Organized COVID-19 vaccination drive", "Employee of the month - June 2023"},
		},
		{
			ID:                "EMP-003",
			FirstName:         "Jessica",
			LastName:          "Tan",
			Email:             "jessica.tan@waronhospital.com",
			Phone:             "+62 813-9988-7766",
			Role:              "Neurologist",
			Department:        department.Neurology,
			Status:            employee.StatusPartTime,
			JoinDate:          "2020-01-10",
			AvatarURL:         "https://picsum.photos/id/65/200/200",
			Skills:            []string{"Brain Mapping", "Stroke Rehabilitation", "Clinical Research"},
			PerformanceRating: 4.5,
		},
		{
			ID:                 "EMP-004",
			FirstName:          "Ahmad",
			LastName:           "Fauzi",
			Email:              "ahmad.fauzi@waronhospital.com",
			Phone:              "+62 855-1212-3434",
			Role:               "Laboratory Technician",
			Department:         department.Laboratory,
			Status:             employee.StatusContract,
			JoinDate:           "2022-11-20",
			AvatarURL:          "https://picsum.photos/id/177/200/200",
			Skills:             []string{"Blood Analysis", "Equipment Maintenance", "Safety Protocols"},
			PerformanceRating:  4.2,
			RecentAchievements: []string{"Optimized lab testing workflow"},
		},
		{
			ID:                 "EMP-005",
			FirstName:          "Linda",
			LastName:           "Kusuma",
			Email:              "linda.kusuma@waronhospital.com",
			Phone:              "+62 818-0099-8877",
			Role:               "HR Manager",
			Department:         department.Administration,
			Status:             employee.StatusFullTime,
			JoinDate:           "2019-09-01",
			AvatarURL:          "https://picsum.photos/id/338/200/200",
			Skills:             []string{"Recruitment", "Conflict Resolution", "Payroll Management"},
			PerformanceRating:  4.7,
			RecentAchievements: []string{"Implemented new HRIS system"},
		},
		{
			ID:                 "EMP-006",
			FirstName:          "Dr. Ryan",
			LastName:           "Pratama",
			Email:              "ryan.pratama@waronhospital.com",
			Phone:              "+62 812-5555-6666",
			Role:               "Pediatrician",
			Department:         department.Pediatrics,
			Status:             employee.StatusFullTime,
			JoinDate:           "2021-04-12",
			AvatarURL:          "https://picsum.photos/id/342/200/200",
			Skills:             []string{"Child Development", "Vaccination", "Pediatric Emergency"},
			PerformanceRating:  4.6,
			RecentAchievements: []string{"Started free weekend clinic for underprivileged children"},
		},
	}
}

func Attendance() []attendance.Record {
	return []attendance.Record{
		// EMP-001 Sarah (Cardiology) - mostly Pagi
		{ID: "ATT-001", EmployeeID: "EMP-001", EmployeeName: "Sarah Wijaya", Date: "2023-10-25", CheckIn: "07:55", CheckOut: "16:00", Shift: attendance.ShiftPagi, Status: attendance.StatusPresent},
		{ID: "ATT-001b", EmployeeID: "EMP-001", EmployeeName: "Sarah Wijaya", Date: "2023-10-24", CheckIn: "07:50", CheckOut: "16:10", Shift: attendance.ShiftPagi, Status: attendance.StatusPresent},
		{ID: "ATT-001c", EmployeeID: "EMP-001", EmployeeName: "Sarah Wijaya", Date: "2023-10-23", CheckIn: "08:10", CheckOut: "16:00", Shift: attendance.ShiftPagi, Status: attendance.StatusLate},

		// EMP-002 Budi (Nursing) - rotating shifts
		{ID: "ATT-002", EmployeeID: "EMP-002", EmployeeName: "Budi Santoso", Date: "2023-10-25", CheckIn: "07:30", CheckOut: "14:30", Shift: attendance.ShiftPagi, Status: attendance.StatusPresent},
		{ID: "ATT-002b", EmployeeID: "EMP-002", EmployeeName: "Budi Santoso", Date: "2023-10-24", CheckIn: "14:00", CheckOut: "21:00", Shift: attendance.ShiftSiang, Status: attendance.StatusPresent},
		{ID: "ATT-002c", EmployeeID: "EMP-002", EmployeeName: "Budi Santoso", Date: "2023-10-23", CheckIn: "21:00", CheckOut: "07:00", Shift: attendance.ShiftMalam, Status: attendance.StatusPresent},

		// EMP-003 Jessica (Neurology) - middle shift and leave
		{ID: "ATT-003", EmployeeID: "EMP-003", EmployeeName: "Jessica Tan", Date: "2023-10-25", CheckIn: "10:00", CheckOut: "18:00", Shift: attendance.ShiftMiddle, Status: attendance.StatusPresent},
		{ID: "ATT-003b", EmployeeID: "EMP-003", EmployeeName: "Jessica Tan", Date: "2023-10-24", CheckIn: attendance.AbsentTime, CheckOut: attendance.AbsentTime, Shift: attendance.ShiftPagi, Status: attendance.StatusLeave},

		// EMP-004 Ahmad (Lab)
		{ID: "ATT-004", EmployeeID: "EMP-004", EmployeeName: "Ahmad Fauzi", Date: "2023-10-25", CheckIn: "08:00", CheckOut: "16:00", Shift: attendance.ShiftPagi, Status: attendance.StatusPresent},
		{ID: "ATT-004b", EmployeeID: "EMP-004", EmployeeName: "Ahmad Fauzi", Date: "2023-10-24", CheckIn: "08:00", CheckOut: "16:00", Shift: attendance.ShiftPagi, Status: attendance.StatusPresent},

		// EMP-005 Linda (Admin)
		{ID: "ATT-005", EmployeeID: "EMP-005", EmployeeName: "Linda Kusuma", Date: "2023-10-25", CheckIn: attendance.AbsentTime, CheckOut: attendance.AbsentTime, Shift: attendance.ShiftPagi, Status: attendance.StatusLeave},
		{ID: "ATT-005b", EmployeeID: "EMP-005", EmployeeName: "Linda Kusuma", Date: "2023-10-24", CheckIn: "08:00", CheckOut: "17:00", Shift: attendance.ShiftPagi, Status: attendance.StatusPresent},

		// EMP-006 Ryan (Pediatrics)
		{ID: "ATT-006", EmployeeID: "EMP-006", EmployeeName: "Dr. Ryan Pratama", Date: "2023-10-25", CheckIn: "14:00", CheckOut: "21:00", Shift: attendance.ShiftSiang, Status: attendance.StatusPresent},
		{ID: "ATT-006b", EmployeeID: "EMP-006", EmployeeName: "Dr. Ryan Pratama", Date: "2023-10-24", CheckIn: "14:00", CheckOut: "21:00", Shift: attendance.ShiftSiang, Status: attendance.StatusPresent},
		{ID: "ATT-006c", EmployeeID: "EMP-006", EmployeeName: "Dr. Ryan Pratama", Date: "2023-10-23", CheckIn: "21:00", CheckOut: "07:00", Shift: attendance.ShiftMalam, Status: attendance.StatusPresent},
	}
}

func Payroll() []payroll.Record {
	return []payroll.Record{
		{ID: "PAY-001", EmployeeID: "EMP-001", EmployeeName: "Sarah Wijaya", Month: "October 2023", BasicSalary: rupiah(25000000), Allowances: rupiah(5000000), Deductions: rupiah(1000000), NetSalary: rupiah(29000000), Status: payroll.StatusPaid},
		{ID: "PAY-002", EmployeeID: "EMP-002", EmployeeName: "Budi Santoso", Month: "October 2023", BasicSalary: rupiah(12000000), Allowances: rupiah(2000000), Deductions: rupiah(500000), NetSalary: rupiah(13500000), Status: payroll.StatusPaid},
		{ID: "PAY-003", EmployeeID: "EMP-003", EmployeeName: "Jessica Tan", Month: "October 2023", BasicSalary: rupiah(15000000), Allowances: rupiah(0), Deductions: rupiah(200000), NetSalary: rupiah(14800000), Status: payroll.StatusProcessing},
		{ID: "PAY-004", EmployeeID: "EMP-004", EmployeeName: "Ahmad Fauzi", Month: "October 2023", BasicSalary: rupiah(6000000), Allowances: rupiah(500000), Deductions: rupiah(200000), NetSalary: rupiah(6300000), Status: payroll.StatusPending},
	}
}

func Departments() []string {
	return department.Defaults()
}
