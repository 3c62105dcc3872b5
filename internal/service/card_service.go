package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/workboard-api/internal/domain"
	"github.com/phrazzld/workboard-api/internal/platform/logger"
	"github.com/phrazzld/workboard-api/internal/store"
	"gorm.io/gorm"
)

// CreateCardParams holds the fields of a new card. Nil optional fields take
// their defaults: medium priority, todo status and a position after the
// last card of the list.
type CreateCardParams struct {
	ListID      uuid.UUID
	Title       string
	Description *string
	Priority    *domain.CardPriority
	Status      *domain.CardStatus
	Position    *int
	DueDate     *time.Time
	AssignedTo  *string
	UserID      string
}

// MoveCardParams describes where a card is moved to.
type MoveCardParams struct {
	ListID uuid.UUID
	// Status optionally changes the card's status along with the move.
	Status *domain.CardStatus
	// Position is left unchanged when nil.
	Position *int
}

// CardService provides card-related operations
type CardService interface {
	// CreateCard creates a card in an existing list.
	// Returns store.ErrListReference if the list does not exist.
	CreateCard(ctx context.Context, params CreateCardParams) (*domain.Card, error)

	// GetCard retrieves a card by its ID
	GetCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error)

	// CardsByList returns the cards of a list ordered by position.
	// Returns store.ErrListNotFound if the list does not exist.
	CardsByList(ctx context.Context, listID uuid.UUID) ([]domain.Card, error)

	// CardsByAssignee returns the cards assigned to a user, soonest due first.
	CardsByAssignee(ctx context.Context, userID string) ([]domain.Card, error)

	// UpdateCard applies a partial update. A patch carrying ListID is
	// handled as a move.
	UpdateCard(ctx context.Context, cardID uuid.UUID, patch domain.CardPatch, userID string) (*domain.Card, error)

	// MoveCard moves a card to another list, optionally changing its status.
	// Returns store.ErrListReference, leaving the card untouched, if the
	// target list does not exist.
	MoveCard(ctx context.Context, cardID uuid.UUID, params MoveCardParams, userID string) (*domain.Card, error)

	// DeleteCard removes a card with its comments.
	DeleteCard(ctx context.Context, cardID uuid.UUID, userID string) error
}

// cardServiceImpl implements the CardService interface
type cardServiceImpl struct {
	lists    store.ListStore
	cards    store.CardStore
	recorder *ActivityRecorder
	logger   *slog.Logger
}

// NewCardService creates a new CardService
// It returns an error if any of the required dependencies are nil.
func NewCardService(
	lists store.ListStore,
	cards store.CardStore,
	recorder *ActivityRecorder,
	logger *slog.Logger,
) (CardService, error) {
	if lists == nil {
		return nil, domain.NewValidationError("lists", "cannot be nil", domain.ErrValidation)
	}
	if cards == nil {
		return nil, domain.NewValidationError("cards", "cannot be nil", domain.ErrValidation)
	}
	if recorder == nil {
		return nil, domain.NewValidationError("recorder", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &cardServiceImpl{
		lists:    lists,
		cards:    cards,
		recorder: recorder,
		logger:   logger.With(slog.String("component", "card_service")),
	}, nil
}

// referencedList loads the list a card is written to, reporting a missing
// list as an invalid reference rather than a missing resource.
func referencedList(ctx context.Context, lists store.ListStore, listID uuid.UUID) (*domain.List, error) {
	list, err := lists.GetByID(ctx, listID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrListReference
		}
		return nil, err
	}
	return list, nil
}

// CreateCard implements CardService.CreateCard
func (s *cardServiceImpl) CreateCard(ctx context.Context, params CreateCardParams) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	attr := slog.String("list_id", params.ListID.String())

	if err := requireUser(params.UserID); err != nil {
		return nil, fail(ctx, log, cardServiceName, "create", "invalid card", err, attr)
	}

	var card *domain.Card
	err := s.recorder.Run(ctx, func(ctx context.Context, tx *gorm.DB, rec *TxRecorder) error {
		cards := s.cards.WithTx(tx)

		list, err := referencedList(ctx, s.lists.WithTx(tx), params.ListID)
		if err != nil {
			return err
		}

		position := 0
		if params.Position != nil {
			position = *params.Position
		} else {
			count, err := cards.CountByList(ctx, list.ID)
			if err != nil {
				return err
			}
			position = count
		}

		card, err = domain.NewCard(list.ID, params.Title, position)
		if err != nil {
			return err
		}
		card.Description = params.Description
		if params.Priority != nil {
			card.Priority = *params.Priority
		}
		if params.Status != nil {
			card.Status = *params.Status
		}
		if params.DueDate != nil {
			due := params.DueDate.UTC()
			card.DueDate = &due
		}
		if params.AssignedTo != nil && *params.AssignedTo != "" {
			card.AssignedTo = params.AssignedTo
		}
		if err := card.Validate(); err != nil {
			return err
		}

		if err := cards.Create(ctx, card); err != nil {
			return err
		}
		return rec.Record(ctx, list.BoardID, params.UserID, domain.ActivityCardCreated,
			fmt.Sprintf("Created card '%s'", card.Title))
	})
	if err != nil {
		return nil, fail(ctx, log, cardServiceName, "create", "failed to create card", err, attr)
	}

	log.Info("card created", attr, slog.String("card_id", card.ID.String()))
	return card, nil
}

// GetCard implements CardService.GetCard
func (s *cardServiceImpl) GetCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return nil, fail(ctx, log, cardServiceName, "get", "failed to retrieve card", err,
			slog.String("card_id", cardID.String()))
	}
	return card, nil
}

// CardsByList implements CardService.CardsByList
func (s *cardServiceImpl) CardsByList(ctx context.Context, listID uuid.UUID) ([]domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	attr := slog.String("list_id", listID.String())

	if _, err := s.lists.GetByID(ctx, listID); err != nil {
		return nil, fail(ctx, log, cardServiceName, "list", "failed to retrieve list", err, attr)
	}
	cards, err := s.cards.ListByList(ctx, listID)
	if err != nil {
		return nil, fail(ctx, log, cardServiceName, "list", "failed to list cards", err, attr)
	}
	return cards, nil
}

// CardsByAssignee implements CardService.CardsByAssignee
func (s *cardServiceImpl) CardsByAssignee(ctx context.Context, userID string) ([]domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := requireUser(userID); err != nil {
		return nil, fail(ctx, log, cardServiceName, "list_assigned", "invalid assignee", err)
	}
	cards, err := s.cards.ListByAssignee(ctx, userID)
	if err != nil {
		return nil, fail(ctx, log, cardServiceName, "list_assigned", "failed to list cards", err,
			slog.String("user_id", userID))
	}
	return cards, nil
}

// UpdateCard implements CardService.UpdateCard
func (s *cardServiceImpl) UpdateCard(
	ctx context.Context,
	cardID uuid.UUID,
	patch domain.CardPatch,
	userID string,
) (*domain.Card, error) {
	op, done := "update", "card updated"
	if patch.ListID != nil {
		op, done = "move", "card moved"
	}
	log := logger.FromContextOrDefault(ctx, s.logger)
	attr := slog.String("card_id", cardID.String())

	if err := requireUser(userID); err != nil {
		return nil, fail(ctx, log, cardServiceName, op, "invalid card update", err, attr)
	}
	if patch.IsEmpty() {
		err := domain.NewValidationError("", "no fields to update", domain.ErrEmptyPatch)
		return nil, fail(ctx, log, cardServiceName, op, "invalid card update", err, attr)
	}

	var card *domain.Card
	err := s.recorder.Run(ctx, func(ctx context.Context, tx *gorm.DB, rec *TxRecorder) error {
		var err error
		if patch.ListID != nil {
			card, err = s.move(ctx, tx, rec, cardID, patch, userID)
		} else {
			card, err = s.update(ctx, tx, rec, cardID, patch, userID)
		}
		return err
	})
	if err != nil {
		return nil, fail(ctx, log, cardServiceName, op, "failed to "+op+" card", err, attr)
	}

	log.Info(done, attr,
		slog.String("list_id", card.ListID.String()))
	return card, nil
}

// MoveCard implements CardService.MoveCard
func (s *cardServiceImpl) MoveCard(
	ctx context.Context,
	cardID uuid.UUID,
	params MoveCardParams,
	userID string,
) (*domain.Card, error) {
	listID := params.ListID
	return s.UpdateCard(ctx, cardID, domain.CardPatch{
		ListID:   &listID,
		Status:   params.Status,
		Position: params.Position,
	}, userID)
}

// update applies a patch that keeps the card in its list.
func (s *cardServiceImpl) update(
	ctx context.Context,
	tx *gorm.DB,
	rec *TxRecorder,
	cardID uuid.UUID,
	patch domain.CardPatch,
	userID string,
) (*domain.Card, error) {
	cards := s.cards.WithTx(tx)

	card, err := cards.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	list, err := s.lists.WithTx(tx).GetByID(ctx, card.ListID)
	if err != nil {
		return nil, err
	}
	if err := card.Apply(patch); err != nil {
		return nil, err
	}
	if err := cards.Update(ctx, card); err != nil {
		return nil, err
	}

	activity := domain.ActivityCardUpdated
	description := fmt.Sprintf("Updated card '%s'", card.Title)
	if patch.OnlyAssigns() {
		activity = domain.ActivityCardAssigned
		if card.AssignedTo != nil {
			description = fmt.Sprintf("Assigned card '%s' to %s", card.Title, *card.AssignedTo)
		} else {
			description = fmt.Sprintf("Unassigned card '%s'", card.Title)
		}
	}
	return card, rec.Record(ctx, list.BoardID, userID, activity, description)
}

// move validates the target list before touching the card, then applies
// the patch. The activity is recorded on the target list's board.
func (s *cardServiceImpl) move(
	ctx context.Context,
	tx *gorm.DB,
	rec *TxRecorder,
	cardID uuid.UUID,
	patch domain.CardPatch,
	userID string,
) (*domain.Card, error) {
	cards := s.cards.WithTx(tx)
	lists := s.lists.WithTx(tx)

	card, err := cards.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	to, err := referencedList(ctx, lists, *patch.ListID)
	if err != nil {
		return nil, err
	}
	from, err := lists.GetByID(ctx, card.ListID)
	if err != nil {
		return nil, err
	}

	if err := card.Apply(patch); err != nil {
		return nil, err
	}
	if err := cards.Update(ctx, card); err != nil {
		return nil, err
	}

	return card, rec.Record(ctx, to.BoardID, userID, domain.ActivityCardMoved,
		fmt.Sprintf("Moved card '%s' from list '%s' to list '%s'", card.Title, from.Name, to.Name))
}

// DeleteCard implements CardService.DeleteCard
func (s *cardServiceImpl) DeleteCard(ctx context.Context, cardID uuid.UUID, userID string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	attr := slog.String("card_id", cardID.String())

	if err := requireUser(userID); err != nil {
		return fail(ctx, log, cardServiceName, "delete", "invalid card delete", err, attr)
	}

	err := s.recorder.Run(ctx, func(ctx context.Context, tx *gorm.DB, rec *TxRecorder) error {
		cards := s.cards.WithTx(tx)

		card, err := cards.GetByID(ctx, cardID)
		if err != nil {
			return err
		}
		list, err := s.lists.WithTx(tx).GetByID(ctx, card.ListID)
		if err != nil {
			return err
		}
		if err := cards.Delete(ctx, cardID); err != nil {
			return err
		}
		return rec.Record(ctx, list.BoardID, userID, domain.ActivityCardDeleted,
			fmt.Sprintf("Deleted card '%s'", card.Title))
	})
	if err != nil {
		return fail(ctx, log, cardServiceName, "delete", "failed to delete card", err, attr)
	}

	log.Info("card deleted", attr)
	return nil
}
