package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/pkg/errors"
	"go.uber.org/zap"
)

const poiColumns = `id, kind, name, category, description, address, owner_id,
	rating, rating_count, lat, lon, created_at, updated_at`

// poiRow - строка таблицы pois; координаты допускают NULL
type poiRow struct {
	ID          string          `db:"id"`
	Kind        string          `db:"kind"`
	Name        string          `db:"name"`
	Category    string          `db:"category"`
	Description sql.NullString  `db:"description"`
	Address     sql.NullString  `db:"address"`
	OwnerID     sql.NullString  `db:"owner_id"`
	Rating      float64         `db:"rating"`
	RatingCount int             `db:"rating_count"`
	Lat         sql.NullFloat64 `db:"lat"`
	Lon         sql.NullFloat64 `db:"lon"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (r poiRow) toDomain() *domain.PointOfInterest {
	p := &domain.PointOfInterest{
		ID:          r.ID,
		Kind:        domain.POIKind(r.Kind),
		Name:        r.Name,
		Category:    r.Category,
		Description: nullString(r.Description),
		Address:     nullString(r.Address),
		OwnerID:     nullString(r.OwnerID),
		Rating:      r.Rating,
		RatingCount: r.RatingCount,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.RatingCount == 0 {
		p.Rating = 0
	}
	if r.Lat.Valid && r.Lon.Valid {
		p.Location = &domain.Point{Lat: r.Lat.Float64, Lon: r.Lon.Float64}
	}
	return p
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

type poiRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPOIRepository(db *DB) repository.POIRepository {
	return &poiRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *poiRepository) GetByID(ctx context.Context, id string) (*domain.PointOfInterest, error) {
	query := `SELECT ` + poiColumns + ` FROM pois WHERE id = $1`

	var row poiRow
	err := r.db.GetContext(ctx, &row, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrPOINotFound
	}
	if err != nil {
		r.logger.Error("Failed to get POI by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return row.toDomain(), nil
}

// List возвращает записи в порядке создания; ранжирование делает пакет ranking
func (r *poiRepository) List(ctx context.Context, filter domain.POIFilter) ([]*domain.PointOfInterest, error) {
	query := `SELECT ` + poiColumns + ` FROM pois WHERE 1 = 1`
	args := []interface{}{}
	argIdx := 1

	if filter.Kind != "" {
		query += fmt.Sprintf(" AND kind = $%d", argIdx)
		args = append(args, string(filter.Kind))
		argIdx++
	}

	if len(filter.Categories) > 0 {
		query += fmt.Sprintf(" AND category = ANY($%d)", argIdx)
		args = append(args, pq.Array(filter.Categories))
	}

	query += " ORDER BY created_at, id"

	var rows []poiRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.logger.Error("Failed to list POIs",
			zap.String("kind", string(filter.Kind)),
			zap.Strings("categories", filter.Categories),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	pois := make([]*domain.PointOfInterest, 0, len(rows))
	for _, row := range rows {
		pois = append(pois, row.toDomain())
	}

	return pois, nil
}

// ApplyRating пересчитывает среднее инкрементально в одном UPDATE
func (r *poiRepository) ApplyRating(ctx context.Context, id string, score int) (*domain.PointOfInterest, error) {
	query := `
		UPDATE pois
		SET rating = (rating * rating_count + $2) / (rating_count + 1),
			rating_count = rating_count + 1,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + poiColumns

	var row poiRow
	err := r.db.GetContext(ctx, &row, query, id, score)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrPOINotFound
	}
	if err != nil {
		r.logger.Error("Failed to apply rating",
			zap.String("id", id),
			zap.Int("score", score),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	return row.toDomain(), nil
}

type statsRow struct {
	Kind        string       `db:"kind"`
	Category    string       `db:"category"`
	Total       int          `db:"total"`
	Rated       int          `db:"rated"`
	RatingSum   float64      `db:"rating_sum"`
	LastUpdated sql.NullTime `db:"last_updated"`
}

func (r *poiRepository) Stats(ctx context.Context) (*domain.DirectoryStats, error) {
	query := `
		SELECT
			kind,
			category,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE rating_count > 0) AS rated,
			COALESCE(SUM(rating) FILTER (WHERE rating_count > 0), 0) AS rating_sum,
			MAX(updated_at) AS last_updated
		FROM pois
		GROUP BY kind, category
		ORDER BY kind, category
	`

	var rows []statsRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		r.logger.Error("Failed to get directory stats", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	stats := &domain.DirectoryStats{
		ByKind:     make(map[domain.POIKind]int),
		ByCategory: make(map[string]int),
	}

	var ratingSum float64
	for _, row := range rows {
		stats.Total += row.Total
		stats.Rated += row.Rated
		stats.ByKind[domain.POIKind(row.Kind)] += row.Total
		stats.ByCategory[row.Category] += row.Total
		ratingSum += row.RatingSum
		if row.LastUpdated.Valid && row.LastUpdated.Time.After(stats.LastUpdated) {
			stats.LastUpdated = row.LastUpdated.Time
		}
	}
	if stats.Rated > 0 {
		stats.AverageRating = ratingSum / float64(stats.Rated)
	}

	return stats, nil
}
