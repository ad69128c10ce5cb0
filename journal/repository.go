package journal

import (
	"context"

	"github.com/google/uuid"

	"github.com/ishwor/authcookbook/database"
)

// Repository persists journal entries.
type Repository struct {
	db *database.DB
}

// NewRepository creates a journal repository.
func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the journals table.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&Journal{})
}

// List returns all journal entries, newest first.
func (r *Repository) List(ctx context.Context) ([]Journal, error) {
	var journals []Journal
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&journals).Error
	if err != nil {
		return nil, database.FromDatabase(err, "journal")
	}
	return journals, nil
}

// Get returns a single entry by id.
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (Journal, error) {
	var j Journal
	err := r.db.WithContext(ctx).First(&j, "id = ?", id).Error
	if err != nil {
		return Journal{}, database.FromDatabase(err, "journal")
	}
	return j, nil
}

// Create stores a new entry.
func (r *Repository) Create(ctx context.Context, title, content string) (Journal, error) {
	j := Journal{Title: title, Content: content}
	if err := r.db.WithContext(ctx).Create(&j).Error; err != nil {
		return Journal{}, database.FromDatabase(err, "journal")
	}
	return j, nil
}

// Update replaces the title and content of an existing entry.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, title, content string) (Journal, error) {
	j, err := r.Get(ctx, id)
	if err != nil {
		return Journal{}, err
	}
	j.Title = title
	j.Content = content
	if err := r.db.WithContext(ctx).Save(&j).Error; err != nil {
		return Journal{}, database.FromDatabase(err, "journal")
	}
	return j, nil
}

// Delete removes an entry by id.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	j, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&j).Error; err != nil {
		return database.FromDatabase(err, "journal")
	}
	return nil
}
