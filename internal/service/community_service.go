package service

import (
	"strings"

	"studyhub/internal/model"
	"studyhub/internal/repository"
)

// CommunityService wraps the community board.
type CommunityService struct {
	posts         *repository.PostRepository
	users         *repository.UserRepository
	notifications *NotificationService
}

func NewCommunityService(posts *repository.PostRepository, users *repository.UserRepository, notifications *NotificationService) *CommunityService {
	return &CommunityService{posts: posts, users: users, notifications: notifications}
}

// SharePost publishes a new post authored by the logged-in user.
func (s *CommunityService) SharePost(content string) (model.CommunityPost, error) {
	user := s.users.Current()
	if user == nil {
		return model.CommunityPost{}, ErrNotLoggedIn
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return model.CommunityPost{}, invalid("content", "required")
	}

	post := s.posts.Add(model.CommunityPost{
		Content:     content,
		Author:      user.Name,
		AuthorEmail: user.Email,
	})

	s.notifications.Add(model.CategoryGeneral, "Your post has been shared!", model.NotificationSuccess)
	return post, nil
}

// LikePost increments a post's like counter; unknown ids are a silent no-op.
func (s *CommunityService) LikePost(id string) {
	s.posts.Like(id)
}

func (s *CommunityService) Posts() []model.CommunityPost {
	return s.posts.All()
}
