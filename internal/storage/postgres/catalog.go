package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"internmatch-bot/internal/models"
)

const internshipsTable = "internships"

var catalogColumns = []string{
	"id", "title", "company", "location", "job_type", "duration",
	"salary", "salary_display", "description", "requirements", "skills",
	"posted", "posted_at", "applicants", "match_score",
	"company_size", "experience_level", "work_mode", "is_remote",
}

type catalogRow struct {
	models.JobRecord
	Requirements pq.StringArray `db:"requirements"`
	Skills       pq.StringArray `db:"skills"`
}

func (r catalogRow) record() models.JobRecord {
	job := r.JobRecord
	job.Requirements = []string(r.Requirements)
	job.Skills = []string(r.Skills)
	return job
}

// LoadCatalog reads every internship ordered by id. The catalog is
// read-only for the lifetime of the process.
func (s *Store) LoadCatalog(ctx context.Context) ([]models.JobRecord, error) {
	var rows []catalogRow

	_, err := s.sess.
		Select(catalogColumns...).
		From(internshipsTable).
		OrderBy("id").
		LoadContext(ctx, &rows)

	if err != nil {
		s.logger.Error("failed to load catalog", zap.Error(err))
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	catalog := make([]models.JobRecord, 0, len(rows))
	for _, r := range rows {
		catalog = append(catalog, r.record())
	}

	s.logger.Info("catalog loaded", zap.Int("jobs", len(catalog)))
	return catalog, nil
}
