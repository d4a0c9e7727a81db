package postgres

import (
	"reflect"
	"testing"

	"github.com/lib/pq"

	"internmatch-bot/internal/models"
)

func TestCatalogRowRecord(t *testing.T) {
	r := catalogRow{
		JobRecord: models.JobRecord{
			ID:       3,
			Title:    "Junior Product Analyst Intern",
			WorkMode: models.WorkOnsite,
		},
		Requirements: pq.StringArray{"Excel/SQL proficiency"},
		Skills:       pq.StringArray{"Data Analysis", "SQL"},
	}

	job := r.record()
	if job.ID != 3 || job.WorkMode != models.WorkOnsite {
		t.Errorf("record() = %+v", job)
	}
	if !reflect.DeepEqual(job.Skills, []string{"Data Analysis", "SQL"}) {
		t.Errorf("Skills = %v", job.Skills)
	}
	if !job.HasSkill("SQL") {
		t.Error("HasSkill(SQL) = false after conversion")
	}
	if len(job.Requirements) != 1 {
		t.Errorf("Requirements = %v", job.Requirements)
	}
}

func TestCatalogColumnsCoverRow(t *testing.T) {
	tagged := map[string]bool{}
	collect := func(typ reflect.Type) {
		for i := 0; i < typ.NumField(); i++ {
			if tag := typ.Field(i).Tag.Get("db"); tag != "" && tag != "-" {
				tagged[tag] = true
			}
		}
	}
	collect(reflect.TypeOf(models.JobRecord{}))
	collect(reflect.TypeOf(catalogRow{}))

	for _, col := range catalogColumns {
		if !tagged[col] {
			t.Errorf("column %q has no db-tagged field", col)
		}
		delete(tagged, col)
	}
	for tag := range tagged {
		t.Errorf("db tag %q is not selected", tag)
	}
}
