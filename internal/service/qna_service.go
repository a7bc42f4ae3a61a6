package service

import (
	"fmt"
	"strings"

	"studyhub/internal/model"
	"studyhub/internal/repository"
)

// QnaService wraps the question collection with validation and the
// answer-notification side effect.
type QnaService struct {
	questions     *repository.QuestionRepository
	users         *repository.UserRepository
	notifications *NotificationService
}

func NewQnaService(questions *repository.QuestionRepository, users *repository.UserRepository, notifications *NotificationService) *QnaService {
	return &QnaService{questions: questions, users: users, notifications: notifications}
}

// Submit posts a new question authored by the logged-in user.
func (s *QnaService) Submit(title, content, image string) (model.Question, error) {
	user := s.users.Current()
	if user == nil {
		return model.Question{}, ErrNotLoggedIn
	}

	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return model.Question{}, invalid("title", "required")
	}
	if content == "" {
		return model.Question{}, invalid("content", "required")
	}

	created := s.questions.Add(model.Question{
		Title:       title,
		Content:     content,
		Author:      user.Name,
		AuthorEmail: user.Email,
		Image:       strings.TrimSpace(image),
	})

	s.notifications.Add(model.CategoryGeneral, "Your question has been posted!", model.NotificationSuccess)
	return created, nil
}

// AddAnswer appends an answer to the question. An unknown question id is a
// silent no-op returning nil. When someone other than the question's author
// answers, the author gets a notification.
func (s *QnaService) AddAnswer(questionID, content string) (*model.Answer, error) {
	user := s.users.Current()
	if user == nil {
		return nil, ErrNotLoggedIn
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, invalid("content", "required")
	}

	question, ok := s.questions.Find(questionID)
	if !ok {
		return nil, nil
	}

	answer := s.questions.AddAnswer(questionID, model.Answer{
		Content:     content,
		Author:      user.Name,
		AuthorEmail: user.Email,
	})

	if answer != nil && question.AuthorEmail != user.Email {
		s.notifications.Add(model.CategoryQuestionAnswers,
			fmt.Sprintf("New answer on %q.", question.Title), model.NotificationInfo)
	}
	return answer, nil
}

// Search filters questions by a case-insensitive substring; an empty query
// returns the full collection.
func (s *QnaService) Search(query string) []model.Question {
	return s.questions.Search(query)
}

func (s *QnaService) All() []model.Question {
	return s.questions.All()
}
