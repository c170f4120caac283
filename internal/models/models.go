package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"     json:"id"`
	Email        string     `gorm:"uniqueIndex;not null"     json:"email"`
	Username     string     `gorm:"uniqueIndex;not null"     json:"username"`
	PasswordHash string     `gorm:"not null"                 json:"-"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	BirthDate    *time.Time `json:"birth_date"`
	Country      string     `json:"country"`
	NativeLang   string     `json:"native_lang"`
	TargetLang   string     `json:"target_lang"`
	LockedUntil  *time.Time `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Blocked is true while the lockout window is open.
func (u *User) Blocked() bool {
	return u.LockedUntil != nil && u.LockedUntil.After(time.Now().UTC())
}

type UserRole struct {
	ID     uint      `gorm:"primaryKey;autoIncrement"                json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_user_role" json:"user_id"`
	Role   string    `gorm:"not null;uniqueIndex:idx_user_role"      json:"role"`
}

type PasswordResetToken struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	TokenHash string    `gorm:"uniqueIndex;not null"     json:"-"`
	ExpiresAt int64     `gorm:"not null"                 json:"expires_at"`
	Used      bool      `gorm:"default:false"            json:"used"`
}

type Lesson struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"not null"                 json:"title"`
	Description string `json:"description"`
	Level       string `gorm:"not null"                 json:"level"`
	Body        string `json:"body"`
	AudioURL    string `json:"audio_url"`
}

type Quiz struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title    string `gorm:"not null"                 json:"title"`
	LessonID *uint  `gorm:"index"                    json:"lesson_id"`
}

type QuizQuestion struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	QuizID       uint   `gorm:"index;not null"           json:"quiz_id"`
	Question     string `gorm:"not null"                 json:"question"`
	OptionA      string `gorm:"not null"                 json:"option_a"`
	OptionB      string `gorm:"not null"                 json:"option_b"`
	OptionC      string `gorm:"not null"                 json:"option_c"`
	OptionD      string `gorm:"not null"                 json:"option_d"`
	CorrectIndex int    `gorm:"not null"                 json:"correct_index"`
}

type VocabularyCategory struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"not null"                 json:"name"`
	ImageURL string `json:"image_url"`
}

type VocabularyWord struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID    uint   `gorm:"index;not null"           json:"category_id"`
	Word          string `gorm:"not null"                 json:"word"`
	Translation   string `gorm:"not null"                 json:"translation"`
	Transcription string `json:"transcription"`
	AudioURL      string `json:"audio_url"`
}

type PronunciationItem struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Text     string `gorm:"not null"                 json:"text"`
	AudioURL string `json:"audio_url"`
	Tips     string `json:"tips"`
}

type KidLesson struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title      string `gorm:"not null"                 json:"title"`
	PictureURL string `json:"picture_url"`
	Body       string `json:"body"`
}

type KidQuizQuestion struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	KidLessonID  *uint  `gorm:"index"                    json:"kid_lesson_id"`
	Question     string `gorm:"not null"                 json:"question"`
	PictureURL   string `json:"picture_url"`
	OptionA      string `gorm:"not null"                 json:"option_a"`
	OptionB      string `gorm:"not null"                 json:"option_b"`
	OptionC      string `gorm:"not null"                 json:"option_c"`
	OptionD      string `gorm:"not null"                 json:"option_d"`
	CorrectIndex int    `gorm:"not null"                 json:"correct_index"`
}

type Name struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"not null"                 json:"name"`
	Meaning string `json:"meaning"`
	Origin  string `json:"origin"`
}
