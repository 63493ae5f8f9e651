package infra_postgres_content

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/memeparty/server/internal/model"
	usecase_game "github.com/memeparty/server/internal/usecase/game"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type contentDTO struct {
	ID       int64          `db:"id"`
	MediaURL string         `db:"media_url"`
	Title    sql.NullString `db:"title"`
}

// PickRandom returns one random active content item. Fine at this
// catalog size; revisit ORDER BY random() if the table ever grows big.
func (d *Driver) PickRandom(ctx context.Context) (*model.ContentItem, error) {
	var dto contentDTO

	query := `
		SELECT id, media_url, title
		FROM content_items
		WHERE is_active
		ORDER BY random()
		LIMIT 1
	`

	err := d.db.GetContext(ctx, &dto, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, usecase_game.ErrNoContent
		}
		return nil, err
	}

	item := &model.ContentItem{
		ID:       dto.ID,
		MediaURL: dto.MediaURL,
	}
	if dto.Title.Valid {
		title := dto.Title.String
		item.Title = &title
	}
	return item, nil
}
