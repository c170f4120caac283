package transport

type RegisterRequest struct {
	UserName        string `json:"userName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Country         string `json:"country"`
}

type LoginRequest struct {
	EmailOrUserName string `json:"emailOrUserName"`
	Password        string `json:"password"`
}

type LoginResponse struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	Username  string   `json:"username"`
	IsBlocked bool     `json:"isBlocked"`
	Roles     []string `json:"role"`
	Token     string   `json:"token"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Email           string `json:"email"`
	Token           string `json:"token"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type UserSummary struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	Username  string   `json:"username"`
	IsBlocked bool     `json:"isBlocked"`
	Roles     []string `json:"role"`
}

type PatchUserRequest struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	BirthDate  *string `json:"birth_date"`
	Country    *string `json:"country"`
	NativeLang *string `json:"native_lang"`
	TargetLang *string `json:"target_lang"`
}

type CreateLessonRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Level       string `json:"level"`
	Body        string `json:"body"`
	AudioURL    string `json:"audio_url"`
}

type PatchLessonRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Level       *string `json:"level"`
	Body        *string `json:"body"`
	AudioURL    *string `json:"audio_url"`
}

type CreateQuizRequest struct {
	Title    string `json:"title"`
	LessonID *uint  `json:"lesson_id"`
}

type PatchQuizRequest struct {
	Title    *string `json:"title"`
	LessonID *uint   `json:"lesson_id"`
}

type CreateQuizQuestionRequest struct {
	QuizID       uint   `json:"quiz_id"`
	Question     string `json:"question"`
	OptionA      string `json:"option_a"`
	OptionB      string `json:"option_b"`
	OptionC      string `json:"option_c"`
	OptionD      string `json:"option_d"`
	CorrectIndex int    `json:"correct_index"`
}

type PatchQuizQuestionRequest struct {
	Question     *string `json:"question"`
	OptionA      *string `json:"option_a"`
	OptionB      *string `json:"option_b"`
	OptionC      *string `json:"option_c"`
	OptionD      *string `json:"option_d"`
	CorrectIndex *int    `json:"correct_index"`
}

type CreateVocabularyCategoryRequest struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

type PatchVocabularyCategoryRequest struct {
	Name     *string `json:"name"`
	ImageURL *string `json:"image_url"`
}

type CreateVocabularyWordRequest struct {
	CategoryID    uint   `json:"category_id"`
	Word          string `json:"word"`
	Translation   string `json:"translation"`
	Transcription string `json:"transcription"`
	AudioURL      string `json:"audio_url"`
}

type PatchVocabularyWordRequest struct {
	Word          *string `json:"word"`
	Translation   *string `json:"translation"`
	Transcription *string `json:"transcription"`
	AudioURL      *string `json:"audio_url"`
}

type CreatePronunciationItemRequest struct {
	Text     string `json:"text"`
	AudioURL string `json:"audio_url"`
	Tips     string `json:"tips"`
}

type PatchPronunciationItemRequest struct {
	Text     *string `json:"text"`
	AudioURL *string `json:"audio_url"`
	Tips     *string `json:"tips"`
}

type CreateKidLessonRequest struct {
	Title      string `json:"title"`
	PictureURL string `json:"picture_url"`
	Body       string `json:"body"`
}

type PatchKidLessonRequest struct {
	Title      *string `json:"title"`
	PictureURL *string `json:"picture_url"`
	Body       *string `json:"body"`
}

type CreateKidQuizQuestionRequest struct {
	KidLessonID  *uint  `json:"kid_lesson_id"`
	Question     string `json:"question"`
	PictureURL   string `json:"picture_url"`
	OptionA      string `json:"option_a"`
	OptionB      string `json:"option_b"`
	OptionC      string `json:"option_c"`
	OptionD      string `json:"option_d"`
	CorrectIndex int    `json:"correct_index"`
}

type PatchKidQuizQuestionRequest struct {
	Question     *string `json:"question"`
	PictureURL   *string `json:"picture_url"`
	OptionA      *string `json:"option_a"`
	OptionB      *string `json:"option_b"`
	OptionC      *string `json:"option_c"`
	OptionD      *string `json:"option_d"`
	CorrectIndex *int    `json:"correct_index"`
}

type CreateNameRequest struct {
	Name    string `json:"name"`
	Meaning string `json:"meaning"`
	Origin  string `json:"origin"`
}

type PatchNameRequest struct {
	Name    *string `json:"name"`
	Meaning *string `json:"meaning"`
	Origin  *string `json:"origin"`
}
