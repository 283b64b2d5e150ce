package services

import (
	"errors"

	"blogapi/models"

	"gorm.io/gorm"
)

var ErrAuthorNotFound = errors.New("author does not exist")

type PostService struct {
	db          *gorm.DB
	userService *UserService
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{
		db:          db,
		userService: NewUserService(db),
	}
}

// GetAllPosts returns every non-deleted post in insertion order.
// Soft-deleted rows are excluded by gorm's default scope.
func (s *PostService) GetAllPosts() ([]models.Post, error) {
	posts := []models.Post{}
	err := s.db.Find(&posts).Error
	return posts, err
}

func (s *PostService) CreatePost(req *models.CreatePostRequest) (*models.Post, error) {
	exists, err := s.userService.UserExists(req.AuthorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrAuthorNotFound
	}

	post := &models.Post{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: req.AuthorID,
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}

	return post, nil
}

func (s *PostService) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	err := s.db.First(&post, id).Error
	return &post, err
}

// UpdatePost mutates title and content only. The author is fixed at
// creation.
func (s *PostService) UpdatePost(id uint, req *models.UpdatePostRequest) (*models.Post, error) {
	post, err := s.GetPostByID(id)
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Content = req.Content

	if err := s.db.Save(post).Error; err != nil {
		return nil, err
	}

	return post, nil
}

// DeletePost sets the soft-delete tombstone. A post that is missing or
// already tombstoned reports gorm.ErrRecordNotFound.
func (s *PostService) DeletePost(id uint) error {
	post, err := s.GetPostByID(id)
	if err != nil {
		return err
	}
	return s.db.Delete(post).Error
}
