package attendance

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
)

// Record is immutable once created; there is no edit or delete operation.
// EmployeeName is a snapshot taken at creation time and is not refreshed
// when the employee record changes or is removed.
type Record struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Date         string `json:"date"`
	CheckIn      string `json:"checkIn"`
	CheckOut     string `json:"checkOut"`
	Status       string `json:"status"`
	Notes        string `json:"notes,omitempty"`
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPresent, StatusAbsent, StatusLate:
		return true
	}
	return false
}
