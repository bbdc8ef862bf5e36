package repositories

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/jkivisto/maturemark/internal/errors"
	"github.com/jkivisto/maturemark/internal/kvstore"
	"github.com/jkivisto/maturemark/internal/models"
)

// projectsKey is the fixed record key holding the full project list.
const projectsKey = "devops_assessment_projects"

// ErrProjectNotFound marks a lookup of a project id that does not exist.
var ErrProjectNotFound = errors.NewSentinel("project not found")

// ProjectRepository persists the project collection as one JSON tree under a
// fixed key. Every write rewrites the whole list, so concurrent writers are
// last-write-wins. That is acceptable for a single-user tool and a known
// limitation otherwise.
type ProjectRepository struct {
	store  *kvstore.Store
	logger *slog.Logger
}

func NewProjectRepository(store *kvstore.Store, logger *slog.Logger) *ProjectRepository {
	return &ProjectRepository{
		store:  store,
		logger: logger.With("source", "ProjectRepository"),
	}
}

// Load returns all projects. A store that has never been written reads as an
// empty list.
func (r *ProjectRepository) Load(ctx context.Context) ([]models.Project, error) {
	raw, err := r.store.Get(ctx, projectsKey)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return []models.Project{}, nil
		}
		return nil, errors.Wrap(err, "load projects")
	}

	var projects []models.Project
	if err = json.Unmarshal(raw, &projects); err != nil {
		return nil, errors.Wrap(err, "decode projects")
	}
	return projects, nil
}

// Get returns the project with the given id or ErrProjectNotFound.
func (r *ProjectRepository) Get(ctx context.Context, id string) (*models.Project, error) {
	projects, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, errors.Wrap(ErrProjectNotFound, "get project", slog.String("projectID", id))
}

// Upsert inserts the project if its id is new and fully replaces it otherwise.
func (r *ProjectRepository) Upsert(ctx context.Context, project models.Project) error {
	projects, err := r.Load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range projects {
		if projects[i].ID == project.ID {
			projects[i] = project
			replaced = true
			break
		}
	}
	if !replaced {
		projects = append(projects, project)
	}

	raw, err := json.Marshal(projects)
	if err != nil {
		return errors.Wrap(err, "encode projects")
	}
	if err = r.store.Set(ctx, projectsKey, raw); err != nil {
		return errors.Wrap(err, "save projects", slog.String("projectID", project.ID))
	}
	return nil
}
