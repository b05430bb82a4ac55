package response

// NotifyReport summarizes a notification fan-out run.
type NotifyReport struct {
	Total  int      `json:"total"`
	Sent   int      `json:"sent"`
	Failed []string `json:"failed"`
}
