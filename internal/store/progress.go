package store

import (
	"context"
	"fmt"

	"github.com/opsprep/tcoprep/ent"
	"github.com/opsprep/tcoprep/ent/moduleprogress"
)

// progressRepo implements ProgressRepo with one upsert row per
// (user, module, section).
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Upsert(ctx context.Context, data ModuleProgressData) error {
	existing, err := r.client.ModuleProgress.Query().
		Where(
			moduleprogress.UserID(data.UserID),
			moduleprogress.ModuleID(data.ModuleID),
			moduleprogress.SectionID(data.SectionID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query module progress: %w", err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetStatus(data.Status).
			AddTimeSpentMinutes(data.TimeSpentMinutes).
			Save(ctx)
	} else {
		_, err = r.client.ModuleProgress.Create().
			SetUserID(data.UserID).
			SetModuleID(data.ModuleID).
			SetSectionID(data.SectionID).
			SetStatus(data.Status).
			SetTimeSpentMinutes(data.TimeSpentMinutes).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("upsert module progress: %w", err)
	}
	return nil
}
