package dto

type CreateAttachmentRequest struct {
	Data string `json:"allegato"`
}
