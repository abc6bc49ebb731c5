package task

// Task is a projection result: it is rebuilt from the event log on every
// read and never stored. Date is a calendar date ("2006-01-02") or empty;
// Time is a 24-hour "15:04" string or empty.
type Task struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}
