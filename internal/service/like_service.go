package service

import (
	"context"

	"whisp/internal/models"
	"whisp/internal/repository"
)

// LikeState is the public like aggregate for one post.
type LikeState struct {
	Count int  `json:"count"`
	Liked bool `json:"liked"`
}

type LikeService interface {
	LikePost(ctx context.Context, viewer *models.User, postID string) error
	UnlikePost(ctx context.Context, viewer *models.User, postID string) error
	GetLikeState(ctx context.Context, postID, viewerID string) (*LikeState, error)
}

type likeService struct {
	likeRepo repository.LikeRepository
}

func NewLikeService(likeRepo repository.LikeRepository) LikeService {
	return &likeService{likeRepo: likeRepo}
}

// LikePost records the like or surfaces repository.ErrAlreadyLiked when
// the pair exists. Callers treat that as "already in the desired state".
func (s *likeService) LikePost(ctx context.Context, viewer *models.User, postID string) error {
	like := &models.Like{
		UserID: viewer.UserID,
		PostID: postID,
	}

	return s.likeRepo.Create(ctx, like)
}

// UnlikePost succeeds whether or not a like existed.
func (s *likeService) UnlikePost(ctx context.Context, viewer *models.User, postID string) error {
	return s.likeRepo.Delete(ctx, viewer.UserID, postID)
}

func (s *likeService) GetLikeState(ctx context.Context, postID, viewerID string) (*LikeState, error) {
	count, err := s.likeRepo.CountByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	state := &LikeState{Count: count}

	if viewerID != "" {
		liked, err := s.likeRepo.Exists(ctx, viewerID, postID)
		if err != nil {
			return nil, err
		}
		state.Liked = liked
	}

	return state, nil
}
