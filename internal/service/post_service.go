package service

import (
	"context"
	"io"
	"log"
	"strings"
	"unicode/utf8"

	"whisp/internal/config"
	"whisp/internal/models"
	"whisp/internal/notifier"
	"whisp/internal/repository"
	"whisp/internal/storage"
)

type PostService interface {
	CreatePost(ctx context.Context, author *models.User, content string, imageURL *string) (*models.Post, error)
	ListPosts(ctx context.Context, authorID, viewerID string) ([]models.PostProjection, error)
	GetPost(ctx context.Context, postID, viewerID string) (*models.PostProjection, error)
	DeletePost(ctx context.Context, viewer *models.User, postID string) error
	ModeratorDeletePost(ctx context.Context, moderator *models.User, postID string) error
	UploadImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, error)
}

type postService struct {
	postRepo repository.PostRepository
	likeRepo repository.LikeRepository
	storage  storage.Storage
	notify   notifier.Notifier
	cfg      *config.Config
}

func NewPostService(postRepo repository.PostRepository, likeRepo repository.LikeRepository, storage storage.Storage, notify notifier.Notifier, cfg *config.Config) PostService {
	return &postService{
		postRepo: postRepo,
		likeRepo: likeRepo,
		storage:  storage,
		notify:   notify,
		cfg:      cfg,
	}
}

// CreatePost validates and persists a post. An attached image makes any
// content acceptable; without one, content must be non-empty and within
// the length cap.
func (p *postService) CreatePost(ctx context.Context, author *models.User, content string, imageURL *string) (*models.Post, error) {
	hasImage := imageURL != nil && *imageURL != ""
	if (content == "" || utf8.RuneCountInString(content) > p.cfg.MaxContentLength) && !hasImage {
		return nil, ErrInvalidContent
	}

	post := &models.Post{
		AuthorID: author.UserID,
		Content:  content,
		ImageURL: imageURL,
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	// Best effort: the post is already committed.
	if err := p.notify.PostCreated(ctx, author, post); err != nil {
		log.Printf("Failed to notify post created: %v", err)
	}

	return post, nil
}

func (p *postService) ListPosts(ctx context.Context, authorID, viewerID string) ([]models.PostProjection, error) {
	return p.postRepo.List(ctx, authorID, viewerID)
}

func (p *postService) GetPost(ctx context.Context, postID, viewerID string) (*models.PostProjection, error) {
	return p.postRepo.GetProjection(ctx, postID, viewerID)
}

// DeletePost removes a post the viewer authored. Likes go first, then
// the post; a crash in between leaves an orphaned like row, which has no
// observable effect once the post is gone.
func (p *postService) DeletePost(ctx context.Context, viewer *models.User, postID string) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.AuthorID != viewer.UserID {
		return ErrForbidden
	}

	return p.deleteWithNotify(ctx, viewer, post)
}

// ModeratorDeletePost removes any post, ownership aside. Admins only.
func (p *postService) ModeratorDeletePost(ctx context.Context, moderator *models.User, postID string) error {
	if !moderator.IsAdmin {
		return ErrForbidden
	}

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	return p.deleteWithNotify(ctx, moderator, post)
}

func (p *postService) deleteWithNotify(ctx context.Context, actor *models.User, post *models.Post) error {
	err := p.likeRepo.DeleteByPostID(ctx, post.PostID)
	if err != nil {
		return err
	}

	err = p.postRepo.Delete(ctx, post.PostID)
	if err != nil {
		return err
	}

	// Best effort: the post row is gone, a leftover object only wastes
	// bucket space.
	if post.ImageURL != nil && *post.ImageURL != "" {
		if objectName := p.objectName(*post.ImageURL); objectName != "" {
			if err := p.storage.DeleteImage(ctx, objectName); err != nil {
				log.Printf("Failed to delete image object: %v", err)
			}
		}
	}

	if err := p.notify.PostDeleted(ctx, actor, post); err != nil {
		log.Printf("Failed to notify post deleted: %v", err)
	}

	return nil
}

// objectName recovers the bucket object path from a stored image URL.
// URLs outside our public prefix yield "" and are left alone.
func (p *postService) objectName(imageURL string) string {
	prefix := strings.TrimSuffix(p.cfg.MinIO.PublicURL, "/") + "/" + p.cfg.MinIO.BucketName + "/"
	if !strings.HasPrefix(imageURL, prefix) {
		return ""
	}
	return strings.TrimPrefix(imageURL, prefix)
}

func (p *postService) UploadImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	_, imageURL, err := p.storage.UploadImage(ctx, fileName, file, size)
	if err != nil {
		return "", err
	}

	return imageURL, nil
}
