package notes

import (
	"context"

	"github.com/Toxic209/noteForge/internal/server/models"
)

// Repository reads the notes attached to a user record. The account service
// only ever lists notes (for the profile projection); note authoring lives in
// a separate component.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Note, error)
}
