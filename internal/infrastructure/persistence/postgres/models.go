package postgres

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           string  `gorm:"type:uuid;primary_key"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string  `gorm:"type:varchar(500)"`
	PasswordHash *string `gorm:"type:varchar(255)"` // NULL para contas externas
	AvatarURL    *string `gorm:"type:varchar(500)"`
	CreatedAt    int64   `gorm:"autoCreateTime"`
	UpdatedAt    int64   `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// PromptModel é o model GORM para prompts
type PromptModel struct {
	ID          string `gorm:"type:uuid;primary_key"`
	UserID      string `gorm:"type:uuid;not null;index"`
	Title       string `gorm:"type:varchar(255);not null"`
	PromptText  string `gorm:"type:text;not null"`
	Model       string `gorm:"type:varchar(255);not null"`
	Params      string `gorm:"type:text"`
	BeforeImage string `gorm:"type:varchar(1000);not null"`
	AfterImage  string `gorm:"type:varchar(1000);not null"`
	LikesCount  int64  `gorm:"not null;default:0;index"`
	CreatedAt   int64  `gorm:"autoCreateTime;index"`
	UpdatedAt   int64  `gorm:"autoUpdateTime"`

	User UserModel `gorm:"foreignKey:UserID"`
}

func (PromptModel) TableName() string {
	return "prompts"
}

// LikeModel é o model GORM para likes.
// O índice único composto (user_id, prompt_id) garante no máximo um like
// por usuário por prompt, mesmo sob submissão dupla concorrente.
// O FK com ON DELETE CASCADE é a segunda linha de defesa contra likes
// órfãos; a exclusão transacional no service é a primeira.
type LikeModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	UserID    string `gorm:"type:uuid;not null;uniqueIndex:idx_user_prompt"`
	PromptID  string `gorm:"type:uuid;not null;uniqueIndex:idx_user_prompt;index"`
	CreatedAt int64  `gorm:"autoCreateTime"`

	Prompt PromptModel `gorm:"foreignKey:PromptID;constraint:OnDelete:CASCADE"`
}

func (LikeModel) TableName() string {
	return "likes"
}
