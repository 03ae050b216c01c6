package meeting

type SaveMeetingRequest struct {
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	CoupleName string `json:"couple_name" binding:"required"`
	Location   string `json:"location"`
	Notes      string `json:"notes"`
}
