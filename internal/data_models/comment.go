package dto

type CreateCommentRequest struct {
	Text   string  `json:"commento"`
	TaskID uint    `json:"idTask"`
	Hours  float64 `json:"oreDedicate"`
}

type UpdateCommentRequest struct {
	Text  string  `json:"commento"`
	Hours float64 `json:"oreDedicate"`
}

type TotalHoursResponse struct {
	TotalHours float64 `json:"totalHours"`
}
