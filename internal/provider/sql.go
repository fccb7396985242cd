package provider

import (
	"context"

	"github.com/akyairhashvil/conciergerie/internal/database"
	"github.com/akyairhashvil/conciergerie/internal/models"
)

// SQL serves the lists stored in the SQLite database.
type SQL struct {
	repo database.ItemRepository
}

func NewSQL(repo database.ItemRepository) *SQL {
	return &SQL{repo: repo}
}

func (s *SQL) Tasks(ctx context.Context) ([]models.Task, error) {
	return s.repo.GetTasks(ctx)
}

func (s *SQL) Suggestions(ctx context.Context) ([]models.Suggestion, error) {
	return s.repo.GetSuggestions(ctx)
}

func (s *SQL) TodayTasks(ctx context.Context) ([]models.TodayTask, error) {
	return s.repo.GetTodayTasks(ctx)
}

func (s *SQL) Connections(ctx context.Context) ([]models.Connection, error) {
	return s.repo.GetConnections(ctx)
}

// Seed writes every list of ds into repo, replacing what was there.
func Seed(ctx context.Context, repo database.ItemRepository, ds DataSet) error {
	if err := ds.Validate(); err != nil {
		return err
	}
	if err := repo.ReplaceTasks(ctx, ds.Tasks); err != nil {
		return err
	}
	if err := repo.ReplaceSuggestions(ctx, ds.Suggestions); err != nil {
		return err
	}
	if err := repo.ReplaceTodayTasks(ctx, ds.Today); err != nil {
		return err
	}
	return repo.ReplaceConnections(ctx, ds.Connections)
}

// Snapshot reads all four lists from p into a data set.
func Snapshot(ctx context.Context, p Provider) (DataSet, error) {
	var ds DataSet
	var err error
	if ds.Tasks, err = p.Tasks(ctx); err != nil {
		return DataSet{}, err
	}
	if ds.Suggestions, err = p.Suggestions(ctx); err != nil {
		return DataSet{}, err
	}
	if ds.Today, err = p.TodayTasks(ctx); err != nil {
		return DataSet{}, err
	}
	if ds.Connections, err = p.Connections(ctx); err != nil {
		return DataSet{}, err
	}
	return ds, nil
}
