package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/kmarchuk/lingua_school/internal/events"
	"github.com/kmarchuk/lingua_school/internal/logging"
	"github.com/kmarchuk/lingua_school/internal/models"
	"github.com/kmarchuk/lingua_school/internal/repo"
	"github.com/kmarchuk/lingua_school/internal/transport"
)

const LessonIndex = "lessons"

type LessonsService struct {
	Repo     *repo.GormRepo
	ES       *elasticsearch.Client
	Producer *events.Producer
}

// indexLesson keeps the search index loosely in sync. Failures are logged,
// never surfaced to the caller.
func (s *LessonsService) indexLesson(ctx context.Context, lesson *models.Lesson) {
	if s.ES == nil {
		return
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(lesson); err != nil {
		logging.FromContext(ctx).Error("lesson_index_error", "error", err)
		return
	}

	res, err := s.ES.Index(
		LessonIndex,
		&buf,
		s.ES.Index.WithDocumentID(fmt.Sprint(lesson.ID)),
		s.ES.Index.WithContext(ctx),
	)
	if err != nil {
		logging.FromContext(ctx).Error("lesson_index_error", "error", err)
		return
	}
	res.Body.Close()
}

func (s *LessonsService) deindexLesson(ctx context.Context, id uint) {
	if s.ES == nil {
		return
	}

	res, err := s.ES.Delete(LessonIndex, fmt.Sprint(id), s.ES.Delete.WithContext(ctx))
	if err != nil {
		logging.FromContext(ctx).Error("lesson_deindex_error", "error", err)
		return
	}
	res.Body.Close()
}

func (s *LessonsService) publish(ctx context.Context, event map[string]any) {
	if err := s.Producer.PublishEvent(ctx, events.ContentTopic, fmt.Sprint(event["lessonID"]), event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "error", err)
	}
}

func (s *LessonsService) GetLesson(ctx context.Context, id uint) (*models.Lesson, error) {
	return s.Repo.GetLesson(ctx, id)
}

func (s *LessonsService) GetLessons(ctx context.Context, offset, limit int) (int64, []models.Lesson, error) {
	return s.Repo.GetLessons(ctx, offset, limit)
}

func (s *LessonsService) CreateLesson(ctx context.Context, req transport.CreateLessonRequest) (*models.Lesson, error) {
	ve := &ValidationError{}
	if req.Title == "" {
		ve.add("title", "title is required")
	}
	if req.Level == "" {
		ve.add("level", "level is required")
	}
	if err := ve.orNil(); err != nil {
		return nil, err
	}

	lesson := &models.Lesson{
		Title:       req.Title,
		Description: req.Description,
		Level:       req.Level,
		Body:        req.Body,
		AudioURL:    req.AudioURL,
	}

	created, err := s.Repo.CreateLesson(ctx, lesson)
	if err != nil {
		return nil, err
	}

	s.indexLesson(ctx, created)
	s.publish(ctx, map[string]any{
		"type":     "lesson_created",
		"lessonID": created.ID,
		"title":    created.Title,
	})

	return created, nil
}

func (s *LessonsService) PatchLesson(ctx context.Context, req transport.PatchLessonRequest, id uint) (*models.Lesson, error) {
	if req.Title != nil && *req.Title == "" {
		ve := &ValidationError{}
		ve.add("title", "title cannot be empty")
		return nil, ve
	}

	lesson, err := s.Repo.PatchLesson(ctx, req, id)
	if err != nil {
		return nil, err
	}

	s.indexLesson(ctx, lesson)
	return lesson, nil
}

func (s *LessonsService) DeleteLesson(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteLesson(ctx, id); err != nil {
		return err
	}

	s.deindexLesson(ctx, id)
	s.publish(ctx, map[string]any{
		"type":     "lesson_deleted",
		"lessonID": id,
	})

	return nil
}
