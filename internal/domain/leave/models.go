package leave

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Request struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Type         string `json:"type"`
	Duration     string `json:"duration"`
	From         string `json:"from"`
	To           string `json:"to"`
	Status       string `json:"status"`
}
