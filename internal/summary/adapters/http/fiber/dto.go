package fiber

// SummaryRowResponse is one occupied bucket. Counters are numbers on the
// wire, never strings.
type SummaryRowResponse struct {
	Date      string `json:"date" example:"2019-10-31T09:00:00Z"`
	Enters    int64  `json:"enters"`
	Leaves    int64  `json:"leaves"`
	Comments  int64  `json:"comments"`
	Highfives int64  `json:"highfives"`
}

type SummaryResponse struct {
	Events []SummaryRowResponse `json:"events"`
}

type StatusResponse struct {
	Status string `json:"status" example:"error"`
}
