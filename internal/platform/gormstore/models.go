package gormstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/workboard-api/internal/domain"
)

// The models mirror the migrated tables column for column. The schema is
// owned by the goose migrations; AutoMigrate is never run against them.

type boardModel struct {
	ID          uuid.UUID `gorm:"primaryKey"`
	Name        string
	Description *string
	Color       *string
	OwnerID     string
	IsArchived  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (boardModel) TableName() string { return "boards" }

func boardToModel(b *domain.Board) *boardModel {
	return &boardModel{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Color:       b.Color,
		OwnerID:     b.OwnerID,
		IsArchived:  b.IsArchived,
		CreatedAt:   b.CreatedAt.UTC(),
		UpdatedAt:   b.UpdatedAt.UTC(),
	}
}

func (m *boardModel) toDomain() domain.Board {
	return domain.Board{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Color:       m.Color,
		OwnerID:     m.OwnerID,
		IsArchived:  m.IsArchived,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

type listModel struct {
	ID         uuid.UUID `gorm:"primaryKey"`
	BoardID    uuid.UUID
	Name       string
	Position   int
	IsArchived bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (listModel) TableName() string { return "lists" }

func listToModel(l *domain.List) *listModel {
	return &listModel{
		ID:         l.ID,
		BoardID:    l.BoardID,
		Name:       l.Name,
		Position:   l.Position,
		IsArchived: l.IsArchived,
		CreatedAt:  l.CreatedAt.UTC(),
		UpdatedAt:  l.UpdatedAt.UTC(),
	}
}

func (m *listModel) toDomain() domain.List {
	return domain.List{
		ID:         m.ID,
		BoardID:    m.BoardID,
		Name:       m.Name,
		Position:   m.Position,
		IsArchived: m.IsArchived,
		CreatedAt:  m.CreatedAt.UTC(),
		UpdatedAt:  m.UpdatedAt.UTC(),
	}
}

type cardModel struct {
	ID          uuid.UUID `gorm:"primaryKey"`
	ListID      uuid.UUID
	Title       string
	Description *string
	Priority    string
	Status      string
	Position    int
	DueDate     *time.Time
	AssignedTo  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (cardModel) TableName() string { return "cards" }

func cardToModel(c *domain.Card) *cardModel {
	return &cardModel{
		ID:          c.ID,
		ListID:      c.ListID,
		Title:       c.Title,
		Description: c.Description,
		Priority:    string(c.Priority),
		Status:      string(c.Status),
		Position:    c.Position,
		DueDate:     utcPtr(c.DueDate),
		AssignedTo:  c.AssignedTo,
		CreatedAt:   c.CreatedAt.UTC(),
		UpdatedAt:   c.UpdatedAt.UTC(),
	}
}

func (m *cardModel) toDomain() domain.Card {
	return domain.Card{
		ID:          m.ID,
		ListID:      m.ListID,
		Title:       m.Title,
		Description: m.Description,
		Priority:    domain.CardPriority(m.Priority),
		Status:      domain.CardStatus(m.Status),
		Position:    m.Position,
		DueDate:     utcPtr(m.DueDate),
		AssignedTo:  m.AssignedTo,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

type commentModel struct {
	ID        uuid.UUID `gorm:"primaryKey"`
	CardID    uuid.UUID
	UserID    string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (commentModel) TableName() string { return "comments" }

func commentToModel(c *domain.Comment) *commentModel {
	return &commentModel{
		ID:        c.ID,
		CardID:    c.CardID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt.UTC(),
		UpdatedAt: c.UpdatedAt.UTC(),
	}
}

func (m *commentModel) toDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		CardID:    m.CardID,
		UserID:    m.UserID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

type activityModel struct {
	ID           uuid.UUID `gorm:"primaryKey"`
	BoardID      uuid.UUID
	UserID       string
	ActivityType string
	Description  string
	CreatedAt    time.Time
}

func (activityModel) TableName() string { return "activity_logs" }

func activityToModel(a *domain.ActivityLog) *activityModel {
	return &activityModel{
		ID:           a.ID,
		BoardID:      a.BoardID,
		UserID:       a.UserID,
		ActivityType: string(a.Type),
		Description:  a.Description,
		CreatedAt:    a.CreatedAt.UTC(),
	}
}

func (m *activityModel) toDomain() domain.ActivityLog {
	return domain.ActivityLog{
		ID:          m.ID,
		BoardID:     m.BoardID,
		UserID:      m.UserID,
		Type:        domain.ActivityType(m.ActivityType),
		Description: m.Description,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
