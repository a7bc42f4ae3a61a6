package repository

import (
	"strings"
	"sync"
	"time"

	"studyhub/internal/logger"
	"studyhub/internal/model"
	"studyhub/internal/store"
)

// QuestionRepository holds the Q&A collection, most recent first.
type QuestionRepository struct {
	mu        sync.RWMutex
	store     *store.Store
	log       *logger.Logger
	ids       *idGenerator
	questions []model.Question
}

func NewQuestionRepository(st *store.Store, log *logger.Logger) *QuestionRepository {
	r := &QuestionRepository{store: st, log: log, ids: newIDGenerator()}
	if _, err := st.Load(store.KeyQuestions, &r.questions); err != nil {
		log.Warn("load questions, starting empty", "error", err)
		r.questions = nil
	}
	return r
}

// Add assigns a fresh id and timestamp, prepends the question and persists.
func (r *QuestionRepository) Add(question model.Question) model.Question {
	question.ID = r.ids.Next()
	question.CreatedAt = time.Now()
	if question.Answers == nil {
		question.Answers = []model.Answer{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.questions = append([]model.Question{question}, r.questions...)
	r.persist()
	return question
}

// AddAnswer appends an answer to the parent question. Returns nil when the
// question is absent (silent no-op).
func (r *QuestionRepository) AddAnswer(questionID string, answer model.Answer) *model.Answer {
	answer.ID = r.ids.Next()
	answer.CreatedAt = time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.questions {
		if r.questions[i].ID != questionID {
			continue
		}
		r.questions[i].Answers = append(r.questions[i].Answers, answer)
		r.persist()
		return &answer
	}
	return nil
}

// Update applies a mutator to the question with the given id and persists.
// Unknown ids are a silent no-op.
func (r *QuestionRepository) Update(id string, mutate func(*model.Question)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.questions {
		if r.questions[i].ID == id {
			mutate(&r.questions[i])
			r.persist()
			return true
		}
	}
	return false
}

func (r *QuestionRepository) Find(id string) (model.Question, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, question := range r.questions {
		if question.ID == id {
			return question, true
		}
	}
	return model.Question{}, false
}

func (r *QuestionRepository) All() []model.Question {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Question, len(r.questions))
	copy(out, r.questions)
	return out
}

// Search matches a case-insensitive substring against title, content and
// every answer's content. An empty query means "no filter".
func (r *QuestionRepository) Search(query string) []model.Question {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return r.All()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Question
	for _, question := range r.questions {
		if matchesQuery(question, query) {
			out = append(out, question)
		}
	}
	return out
}

func matchesQuery(question model.Question, query string) bool {
	if strings.Contains(strings.ToLower(question.Title), query) ||
		strings.Contains(strings.ToLower(question.Content), query) {
		return true
	}
	for _, answer := range question.Answers {
		if strings.Contains(strings.ToLower(answer.Content), query) {
			return true
		}
	}
	return false
}

func (r *QuestionRepository) persist() {
	if err := r.store.Save(store.KeyQuestions, r.questions); err != nil {
		r.log.Warn("persist questions", "error", err)
	}
}
