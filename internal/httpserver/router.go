package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	mw "github.com/kmarchuk/lingua_school/internal/middleware"
)

type Deps struct {
	AuthHandler          *AuthHTTP
	UsersHandler         *UsersHTTP
	LessonsHandler       *LessonsHTTP
	QuizzesHandler       *QuizzesHTTP
	VocabularyHandler    *VocabularyHTTP
	PronunciationHandler *PronunciationHTTP
	KidLessonsHandler    *KidLessonsHTTP
	NamesHandler         *NamesHTTP
	SearchHandler        *SearchHTTP
	JWTSecret            []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = HTTPErrorHandler

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	authMW := mw.NewBearerAuth(d.JWTSecret)

	auth := e.Group("/api/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)
	auth.POST("/forgot-password", d.AuthHandler.ForgotPassword)
	auth.POST("/reset-password", d.AuthHandler.ResetPassword)
	auth.POST("/logout", d.AuthHandler.Logout, authMW.RequireAuth)
	auth.POST("/block/:userId", d.AuthHandler.Block, authMW.RequireAdmin)
	auth.POST("/unblock/:userId", d.AuthHandler.Unblock, authMW.RequireAdmin)

	users := e.Group("/api/users", authMW.RequireAuth)
	users.GET("", d.UsersHandler.GetUsers, authMW.RequireAdmin)
	users.GET("/:id", d.UsersHandler.GetUser)
	users.PATCH("/:id", d.UsersHandler.PatchUser)
	users.DELETE("/:id", d.UsersHandler.DeleteUser, authMW.RequireAdmin)

	lessons := e.Group("/api/lessons")
	lessons.GET("", d.LessonsHandler.GetLessons)
	lessons.GET("/:id", d.LessonsHandler.GetLesson)
	lessons.POST("", d.LessonsHandler.CreateLesson, authMW.RequireAdmin)
	lessons.PATCH("/:id", d.LessonsHandler.PatchLesson, authMW.RequireAdmin)
	lessons.DELETE("/:id", d.LessonsHandler.DeleteLesson, authMW.RequireAdmin)

	quizzes := e.Group("/api/quizzes")
	quizzes.GET("", d.QuizzesHandler.GetQuizzes)
	quizzes.GET("/:id", d.QuizzesHandler.GetQuiz)
	quizzes.POST("", d.QuizzesHandler.CreateQuiz, authMW.RequireAdmin)
	quizzes.PATCH("/:id", d.QuizzesHandler.PatchQuiz, authMW.RequireAdmin)
	quizzes.DELETE("/:id", d.QuizzesHandler.DeleteQuiz, authMW.RequireAdmin)

	questions := e.Group("/api/quiz-questions")
	questions.GET("", d.QuizzesHandler.GetQuizQuestions)
	questions.GET("/:id", d.QuizzesHandler.GetQuizQuestion)
	questions.POST("", d.QuizzesHandler.CreateQuizQuestion, authMW.RequireAdmin)
	questions.PATCH("/:id", d.QuizzesHandler.PatchQuizQuestion, authMW.RequireAdmin)
	questions.DELETE("/:id", d.QuizzesHandler.DeleteQuizQuestion, authMW.RequireAdmin)

	categories := e.Group("/api/vocabulary/categories")
	categories.GET("", d.VocabularyHandler.GetCategories)
	categories.GET("/:id", d.VocabularyHandler.GetCategory)
	categories.POST("", d.VocabularyHandler.CreateCategory, authMW.RequireAdmin)
	categories.PATCH("/:id", d.VocabularyHandler.PatchCategory, authMW.RequireAdmin)
	categories.DELETE("/:id", d.VocabularyHandler.DeleteCategory, authMW.RequireAdmin)

	words := e.Group("/api/vocabulary/words")
	words.GET("", d.VocabularyHandler.GetWords)
	words.GET("/:id", d.VocabularyHandler.GetWord)
	words.POST("", d.VocabularyHandler.CreateWord, authMW.RequireAdmin)
	words.PATCH("/:id", d.VocabularyHandler.PatchWord, authMW.RequireAdmin)
	words.DELETE("/:id", d.VocabularyHandler.DeleteWord, authMW.RequireAdmin)

	pronunciation := e.Group("/api/pronunciation")
	pronunciation.GET("", d.PronunciationHandler.GetItems)
	pronunciation.GET("/:id", d.PronunciationHandler.GetItem)
	pronunciation.POST("", d.PronunciationHandler.CreateItem, authMW.RequireAdmin)
	pronunciation.PATCH("/:id", d.PronunciationHandler.PatchItem, authMW.RequireAdmin)
	pronunciation.DELETE("/:id", d.PronunciationHandler.DeleteItem, authMW.RequireAdmin)

	kidLessons := e.Group("/api/kid-lessons")
	kidLessons.GET("", d.KidLessonsHandler.GetKidLessons)
	kidLessons.GET("/:id", d.KidLessonsHandler.GetKidLesson)
	kidLessons.POST("", d.KidLessonsHandler.CreateKidLesson, authMW.RequireAdmin)
	kidLessons.PATCH("/:id", d.KidLessonsHandler.PatchKidLesson, authMW.RequireAdmin)
	kidLessons.DELETE("/:id", d.KidLessonsHandler.DeleteKidLesson, authMW.RequireAdmin)

	kidQuestions := e.Group("/api/kid-quiz-questions")
	kidQuestions.GET("", d.KidLessonsHandler.GetKidQuizQuestions)
	kidQuestions.GET("/:id", d.KidLessonsHandler.GetKidQuizQuestion)
	kidQuestions.POST("", d.KidLessonsHandler.CreateKidQuizQuestion, authMW.RequireAdmin)
	kidQuestions.PATCH("/:id", d.KidLessonsHandler.PatchKidQuizQuestion, authMW.RequireAdmin)
	kidQuestions.DELETE("/:id", d.KidLessonsHandler.DeleteKidQuizQuestion, authMW.RequireAdmin)

	names := e.Group("/api/names")
	names.GET("", d.NamesHandler.GetNames)
	names.GET("/:id", d.NamesHandler.GetName)
	names.POST("", d.NamesHandler.CreateName, authMW.RequireAdmin)
	names.PATCH("/:id", d.NamesHandler.PatchName, authMW.RequireAdmin)
	names.DELETE("/:id", d.NamesHandler.DeleteName, authMW.RequireAdmin)

	e.GET("/api/search/lessons", d.SearchHandler.SearchLessons)
}
