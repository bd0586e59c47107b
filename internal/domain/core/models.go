package core

const (
	StatusActive     = "active"
	StatusOnLeave    = "on_leave"
	StatusTerminated = "terminated"
)

type Employee struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Position      string    `json:"position"`
	Department    string    `json:"department"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Nationality   string    `json:"nationality"`
	Gender        string    `json:"gender"`
	MaritalStatus string    `json:"maritalStatus"`
	Status        string    `json:"status"`
	JoinDate      string    `json:"joinDate"`
	BaseSalary    float64   `json:"baseSalary"`
	Penalties     []Penalty `json:"penalties"`
	Image         string    `json:"image,omitempty"`
}

// Penalty amounts are frozen at creation time: AmountDeducted is computed
// from the violation percentage in force when the penalty was applied and
// never recomputed, even if the ViolationType is later edited or deleted.
type Penalty struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employeeId"`
	ViolationID    string  `json:"violationId"`
	Date           string  `json:"date"`
	AmountDeducted float64 `json:"amountDeducted"`
}

type ViolationType struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	DeductionPercentage float64 `json:"deductionPercentage"`
}

type WorkSettings struct {
	WorkingDays []string `json:"workingDays"`
	StartTime   string   `json:"startTime"`
	EndTime     string   `json:"endTime"`
}
