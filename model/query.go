package model

// QueryRequest is a single finance query as received from a caller
type QueryRequest struct {
	Action    string
	BeginTime string
	EndTime   string
	PayMode   string
}

// HasTimeRange reports whether both ends of the time range were supplied
func (q QueryRequest) HasTimeRange() bool {
	return q.BeginTime != "" && q.EndTime != ""
}

// Credentials identify the Tencent Cloud account queries are issued against
type Credentials struct {
	SecretID  string
	SecretKey string
	Region    string
}

// IsComplete returns true if both the secret id and key are set
func (c Credentials) IsComplete() bool {
	return c.SecretID != "" && c.SecretKey != ""
}
