package handlers

import (
	"context"
	"net/http"

	"github.com/hamsafar-mirza/backend/internal/api/loaders"
	"github.com/hamsafar-mirza/backend/internal/domain/entities"
	"github.com/hamsafar-mirza/backend/internal/domain/repositories"
)

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewPostHandler creates a new post handler
func NewPostHandler(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *PostHandler {
	return &PostHandler{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// ListPosts handles GET /api/posts. Each post is hydrated with its author,
// place and city through the request's loaders, so the feed costs one
// batched read per referenced entity type.
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	posts, err := h.postRepo.GetAll(ctx)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}

	details, err := hydratePosts(ctx, posts)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"posts": details,
		"count": len(details),
	})
}

// GetPost handles GET /api/posts/{id}; the detail view includes comments
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("id")
	if postID == "" {
		respondWithError(w, http.StatusBadRequest, "post ID is required")
		return
	}
	ctx := r.Context()

	post, err := h.postRepo.GetByID(ctx, postID)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}
	if post == nil {
		respondWithError(w, http.StatusNotFound, "post not found")
		return
	}

	details, err := hydratePosts(ctx, []entities.Post{*post})
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}
	detail := details[0]

	comments, err := h.commentRepo.GetByPostID(ctx, postID)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}
	detail.Comments = comments

	respondWithJSON(w, http.StatusOK, detail)
}

// GetPostComments handles GET /api/posts/{id}/comments
func (h *PostHandler) GetPostComments(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("id")
	if postID == "" {
		respondWithError(w, http.StatusBadRequest, "post ID is required")
		return
	}

	comments, err := h.commentRepo.GetByPostID(r.Context(), postID)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"comments": comments,
		"count":    len(comments),
	})
}

// hydratePosts resolves author, place and city for each post. Dangling
// references stay nil; the post itself is still served.
func hydratePosts(ctx context.Context, posts []entities.Post) ([]entities.PostWithDetails, error) {
	l := loaders.For(ctx)

	userThunks := make([]func() (*entities.User, error), len(posts))
	placeThunks := make([]func() (*entities.Place, error), len(posts))
	cityThunks := make([]func() (*entities.City, error), len(posts))
	for i, post := range posts {
		userThunks[i] = l.UserLoader.Load(ctx, post.UserID)
		if post.PlaceID != nil {
			placeThunks[i] = l.PlaceLoader.Load(ctx, *post.PlaceID)
		}
		if post.CityID != nil {
			cityThunks[i] = l.CityLoader.Load(ctx, *post.CityID)
		}
	}

	details := make([]entities.PostWithDetails, len(posts))
	for i, post := range posts {
		detail := entities.PostWithDetails{Post: post}

		author, err := userThunks[i]()
		if err != nil {
			return nil, err
		}
		detail.Author = author

		if placeThunks[i] != nil {
			place, err := placeThunks[i]()
			if err != nil {
				return nil, err
			}
			detail.Place = place
		}
		if cityThunks[i] != nil {
			city, err := cityThunks[i]()
			if err != nil {
				return nil, err
			}
			detail.City = city
		}

		details[i] = detail
	}
	return details, nil
}
