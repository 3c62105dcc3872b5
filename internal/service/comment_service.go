package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/workboard-api/internal/domain"
	"github.com/phrazzld/workboard-api/internal/platform/logger"
	"github.com/phrazzld/workboard-api/internal/store"
	"gorm.io/gorm"
)

// AddCommentParams holds the fields of a new comment.
type AddCommentParams struct {
	CardID  uuid.UUID
	UserID  string
	Content string
}

// CommentService provides comment-related operations
type CommentService interface {
	// AddComment adds a comment to an existing card.
	// Returns store.ErrCardReference if the card does not exist.
	AddComment(ctx context.Context, params AddCommentParams) (*domain.Comment, error)

	// CommentsByCard returns the comments of a card, newest first.
	CommentsByCard(ctx context.Context, cardID uuid.UUID) ([]domain.Comment, error)

	// DeleteComment removes a comment.
	DeleteComment(ctx context.Context, commentID uuid.UUID, userID string) error
}

type commentServiceImpl struct {
	lists    store.ListStore
	cards    store.CardStore
	comments store.CommentStore
	recorder *ActivityRecorder
	logger   *slog.Logger
}

// NewCommentService creates a new CommentService
// It returns an error if any of the required dependencies are nil.
func NewCommentService(
	lists store.ListStore,
	cards store.CardStore,
	comments store.CommentStore,
	recorder *ActivityRecorder,
	logger *slog.Logger,
) (CommentService, error) {
	if lists == nil {
		return nil, domain.NewValidationError("lists", "cannot be nil", domain.ErrValidation)
	}
	if cards == nil {
		return nil, domain.NewValidationError("cards", "cannot be nil", domain.ErrValidation)
	}
	if comments == nil {
		return nil, domain.NewValidationError("comments", "cannot be nil", domain.ErrValidation)
	}
	if recorder == nil {
		return nil, domain.NewValidationError("recorder", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &commentServiceImpl{
		lists:    lists,
		cards:    cards,
		comments: comments,
		recorder: recorder,
		logger:   logger.With(slog.String("component", "comment_service")),
	}, nil
}

// boardOfCard resolves the board a card belongs to through its list.
func (s *commentServiceImpl) boardOfCard(ctx context.Context, tx *gorm.DB, card *domain.Card) (uuid.UUID, error) {
	list, err := s.lists.WithTx(tx).GetByID(ctx, card.ListID)
	if err != nil {
		return uuid.Nil, err
	}
	return list.BoardID, nil
}

func (s *commentServiceImpl) AddComment(ctx context.Context, params AddCommentParams) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	attr := slog.String("card_id", params.CardID.String())

	comment, err := domain.NewComment(params.CardID, params.UserID, params.Content)
	if err != nil {
		return nil, fail(ctx, log, commentServiceName, "add", "invalid comment", err, attr)
	}

	err = s.recorder.Run(ctx, func(ctx context.Context, tx *gorm.DB, rec *TxRecorder) error {
		card, err := s.cards.WithTx(tx).GetByID(ctx, params.CardID)
		if err != nil {
			if store.IsNotFoundError(err) {
				return store.ErrCardReference
			}
			return err
		}
		boardID, err := s.boardOfCard(ctx, tx, card)
		if err != nil {
			return err
		}
		if err := s.comments.WithTx(tx).Create(ctx, comment); err != nil {
			return err
		}
		return rec.Record(ctx, boardID, comment.UserID, domain.ActivityCommentAdded,
			fmt.Sprintf("Added comment to card '%s'", card.Title))
	})
	if err != nil {
		return nil, fail(ctx, log, commentServiceName, "add", "failed to add comment", err, attr)
	}

	log.Info("comment added", attr, slog.String("comment_id", comment.ID.String()))
	return comment, nil
}

func (s *commentServiceImpl) CommentsByCard(ctx context.Context, cardID uuid.UUID) ([]domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	attr := slog.String("card_id", cardID.String())

	if _, err := s.cards.GetByID(ctx, cardID); err != nil {
		return nil, fail(ctx, log, commentServiceName, "list", "failed to retrieve card", err, attr)
	}
	comments, err := s.comments.ListByCard(ctx, cardID)
	if err != nil {
		return nil, fail(ctx, log, commentServiceName, "list", "failed to list comments", err, attr)
	}
	return comments, nil
}

func (s *commentServiceImpl) DeleteComment(ctx context.Context, commentID uuid.UUID, userID string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	attr := slog.String("comment_id", commentID.String())

	if err := requireUser(userID); err != nil {
		return fail(ctx, log, commentServiceName, "delete", "invalid comment delete", err, attr)
	}

	err := s.recorder.Run(ctx, func(ctx context.Context, tx *gorm.DB, rec *TxRecorder) error {
		comments := s.comments.WithTx(tx)

		comment, err := comments.GetByID(ctx, commentID)
		if err != nil {
			return err
		}
		card, err := s.cards.WithTx(tx).GetByID(ctx, comment.CardID)
		if err != nil {
			return err
		}
		boardID, err := s.boardOfCard(ctx, tx, card)
		if err != nil {
			return err
		}
		if err := comments.Delete(ctx, commentID); err != nil {
			return err
		}
		return rec.Record(ctx, boardID, userID, domain.ActivityCommentDeleted,
			fmt.Sprintf("Deleted comment from card '%s'", card.Title))
	})
	if err != nil {
		return fail(ctx, log, commentServiceName, "delete", "failed to delete comment", err, attr)
	}

	log.Info("comment deleted", attr)
	return nil
}
