package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avalder/pathwise/ent"
	"github.com/avalder/pathwise/ent/learningpath"
	"github.com/avalder/pathwise/internal/errs"
	"github.com/avalder/pathwise/internal/path"
)

// PathRepo implements path.Repo over the learning_paths table.
type PathRepo struct {
	client *ent.Client
}

func (r *PathRepo) Get(ctx context.Context, userID, subjectID string) (*path.LearningPath, error) {
	row, err := r.client.LearningPath.Query().
		Where(
			learningpath.UserID(userID),
			learningpath.SubjectID(subjectID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errs.NotFound("no path for user %s subject %s", userID, subjectID)
		}
		return nil, storeErr(err, "query learning path")
	}
	return pathFromRow(row)
}

func (r *PathRepo) Create(ctx context.Context, p *path.LearningPath) error {
	nodes, err := nodesToMaps(p.Nodes)
	if err != nil {
		return storeErr(err, "encode path nodes")
	}

	_, err = r.client.LearningPath.Create().
		SetUserID(p.UserID).
		SetSubjectID(p.SubjectID).
		SetNodes(nodes).
		SetCurrentNodeIndex(p.CurrentNodeIndex).
		SetCompletionRate(p.CompletionRate).
		SetAverageScore(p.AverageScore).
		SetLastUpdated(p.LastUpdated).
		SetVersion(1).
		Save(ctx)
	if err != nil {
		if isConstraint(err) {
			return errs.AlreadyExists("path exists for user %s subject %s", p.UserID, p.SubjectID)
		}
		return storeErr(err, "create learning path")
	}
	p.Version = 1
	return nil
}

func (r *PathRepo) Update(ctx context.Context, p *path.LearningPath) error {
	nodes, err := nodesToMaps(p.Nodes)
	if err != nil {
		return storeErr(err, "encode path nodes")
	}

	n, err := r.client.LearningPath.Update().
		Where(
			learningpath.UserID(p.UserID),
			learningpath.SubjectID(p.SubjectID),
			learningpath.Version(p.Version),
		).
		SetNodes(nodes).
		SetCurrentNodeIndex(p.CurrentNodeIndex).
		SetCompletionRate(p.CompletionRate).
		SetAverageScore(p.AverageScore).
		SetLastUpdated(p.LastUpdated).
		SetVersion(p.Version + 1).
		Save(ctx)
	if err != nil {
		return storeErr(err, "update learning path")
	}
	if n == 0 {
		return errs.Conflict("path for user %s subject %s was modified concurrently", p.UserID, p.SubjectID)
	}
	p.Version++
	return nil
}

func pathFromRow(row *ent.LearningPath) (*path.LearningPath, error) {
	nodes, err := nodesFromMaps(row.Nodes)
	if err != nil {
		return nil, storeErr(err, "decode path nodes")
	}
	return &path.LearningPath{
		UserID:           row.UserID,
		SubjectID:        row.SubjectID,
		Nodes:            nodes,
		CurrentNodeIndex: row.CurrentNodeIndex,
		CompletionRate:   row.CompletionRate,
		AverageScore:     row.AverageScore,
		LastUpdated:      row.LastUpdated,
		Version:          row.Version,
	}, nil
}

func nodesToMaps(nodes []path.Node) ([]map[string]any, error) {
	b, err := json.Marshal(nodes)
	if err != nil {
		return nil, fmt.Errorf("marshal nodes: %w", err)
	}
	var out []map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("unmarshal node maps: %w", err)
	}
	return out, nil
}

func nodesFromMaps(raw []map[string]any) ([]path.Node, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("marshal node maps: %w", err)
	}
	var out []path.Node
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("unmarshal nodes: %w", err)
	}
	return out, nil
}
