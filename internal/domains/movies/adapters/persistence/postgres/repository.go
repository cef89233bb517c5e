package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	movietypes "github.com/movieshelf/movie-shelf-api/internal/domains/movies/application/types"
	"github.com/movieshelf/movie-shelf-api/internal/domains/movies/domain"
	"github.com/movieshelf/movie-shelf-api/internal/domains/movies/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists movies in PostgreSQL using GORM.
type Repository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db, now: time.Now}
	if db != nil {
		_ = db.AutoMigrate(&movieRecord{})
	}
	return repo
}

// WithClock overrides the time source used to evaluate the month window.
func (r *Repository) WithClock(now func() time.Time) {
	if now != nil {
		r.now = now
	}
}

// movieRecord maps the movie aggregate to a relational table.
type movieRecord struct {
	ID        string    `gorm:"primaryKey;column:id;size:36"`
	OwnerID   int64     `gorm:"column:owner_id;index:idx_movies_owner_created"`
	Title     string    `gorm:"column:title"`
	Released  string    `gorm:"column:released"`
	Genre     string    `gorm:"column:genre"`
	Director  string    `gorm:"column:director"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_movies_owner_created"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (movieRecord) TableName() string { return "movies" }

// Create inserts a new record for the owner. Records are immutable once written.
func (r *Repository) Create(ctx context.Context, ownerID int64, movie ports.CatalogMovie) (*movietypes.MovieProjection, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	aggregate, err := domain.NewMovie(ownerID, movie.Title, movie.Released, movie.Genre, movie.Director)
	if err != nil {
		return nil, err
	}
	record := movieRecord{
		ID:       uuid.NewString(),
		OwnerID:  aggregate.OwnerID,
		Title:    aggregate.Title,
		Released: aggregate.Released,
		Genre:    aggregate.Genre,
		Director: aggregate.Director,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return record.toProjection(), nil
}

// ListByOwner returns the owner's records in creation order.
func (r *Repository) ListByOwner(ctx context.Context, ownerID int64) ([]*movietypes.MovieProjection, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []movieRecord
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at, id").
		Find(&records).Error; err != nil {
		return nil, err
	}
	list := make([]*movietypes.MovieProjection, 0, len(records))
	for i := range records {
		list = append(list, records[i].toProjection())
	}
	return list, nil
}

// CountByOwnerInMonth counts records created within the calendar month
// containing the clock's current instant, inclusive of the first instant and
// exclusive of the start of the next month.
func (r *Repository) CountByOwnerInMonth(ctx context.Context, ownerID int64) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	start, end := domain.MonthWindow(r.now())
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&movieRecord{}).
		Where("owner_id = ? AND created_at >= ? AND created_at < ?", ownerID, start, end).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres movie repository not configured")
	}
	return nil
}

func (rec movieRecord) toProjection() *movietypes.MovieProjection {
	return movietypes.NewMovieProjection(&domain.Movie{
		ID:       rec.ID,
		OwnerID:  rec.OwnerID,
		Title:    rec.Title,
		Released: rec.Released,
		Genre:    rec.Genre,
		Director: rec.Director,
	}, rec.CreatedAt, rec.UpdatedAt)
}
