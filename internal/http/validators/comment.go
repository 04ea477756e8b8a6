package validators

import (
	"unicode/utf8"

	dto "github.com/AMSkillPower/TaskMngrCommenti/internal/data_models"
	apperrors "github.com/AMSkillPower/TaskMngrCommenti/internal/errors"
)

const maxCommentLen = 4000

func ValidateCreateCommentRequest(r *dto.CreateCommentRequest) error {
	return validateComment(r.Text, r.Hours)
}

func ValidateUpdateCommentRequest(r *dto.UpdateCommentRequest) error {
	return validateComment(r.Text, r.Hours)
}

func validateComment(text string, hours float64) error {
	if utf8.RuneCountInString(text) > maxCommentLen {
		return apperrors.Validation("commento must be at most %d characters", maxCommentLen)
	}
	if hours > maxHours {
		return apperrors.Validation("oreDedicate must be at most %.2f", maxHours)
	}
	return nil
}
