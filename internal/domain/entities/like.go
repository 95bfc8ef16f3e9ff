package entities

import "time"

// Like representa a relação "usuário curtiu prompt".
// O par (UserID, PromptID) é único: um usuário tem no máximo um like
// por prompt. Likes são criados e removidos apenas pela operação de
// toggle, nunca diretamente.
type Like struct {
	ID        string
	UserID    string
	PromptID  string
	CreatedAt time.Time
}
