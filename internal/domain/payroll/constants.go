package payroll

// WorkingDaysPerMonth is the fixed divisor for the daily rate. It is
// deliberately not derived from the configured work schedule.
const WorkingDaysPerMonth = 30
