// Package cascade moves a folder and everything beneath it into or out of
// the trash.
package cascade

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"docuvault/internal/database"
	"docuvault/internal/domain"
	"docuvault/internal/tree"

	"github.com/google/uuid"
)

type Operation string

const (
	OpTrash   Operation = "trash"
	OpRestore Operation = "restore"
)

type Options struct {
	// InTx runs the whole cascade inside one transaction. Without it each
	// folder and its files are written as separate statements, and a failure
	// part way leaves the subtree partially updated.
	InTx bool
}

// Result describes what a cascade touched.
type Result struct {
	FolderIDs []string
	Files     int64
}

type Engine struct {
	store  database.Store
	opts   Options
	logger *slog.Logger
	now    func() time.Time
}

func NewEngine(store database.Store, opts Options, logger *slog.Logger) *Engine {
	return &Engine{
		store:  store,
		opts:   opts,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// SoftDelete marks folderID, every folder below it and every file directly
// in any of those folders as deleted, all with the same timestamp.
func (e *Engine) SoftDelete(ctx context.Context, ownerID uuid.UUID, folderID string) (*Result, error) {
	folder, err := e.store.GetFolderByID(ctx, folderID, ownerID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, domain.NotFound("folder not found")
	}

	stamp := e.now()
	return e.apply(ctx, OpTrash, ownerID, folderID, &stamp)
}

// Restore clears the deleted state of folderID and of its whole subtree,
// including items that had been trashed on their own before.
func (e *Engine) Restore(ctx context.Context, ownerID uuid.UUID, folderID string) (*Result, error) {
	folder, err := e.store.GetFolderByID(ctx, folderID, ownerID)
	if err != nil {
		return nil, err
	}
	if folder == nil || !folder.IsDeleted {
		return nil, domain.NotFound("folder not found in trash")
	}

	return e.apply(ctx, OpRestore, ownerID, folderID, nil)
}

func (e *Engine) apply(ctx context.Context, op Operation, ownerID uuid.UUID, folderID string, stamp *time.Time) (*Result, error) {
	start := time.Now()

	var res *Result
	var err error
	if e.opts.InTx {
		err = e.store.ExecTx(ctx, func(q database.Querier) error {
			res, err = walk(ctx, q, op, ownerID, folderID, stamp)
			return err
		})
	} else {
		res, err = walk(ctx, e.store, op, ownerID, folderID, stamp)
	}

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	cascadeDuration.WithLabelValues(string(op), outcome).Observe(time.Since(start).Seconds())

	if err != nil {
		e.logger.Error("cascade failed",
			"operation", op,
			"folder_id", folderID,
			"in_tx", e.opts.InTx,
			"error", err,
		)
		return nil, err
	}

	nodesTouched.WithLabelValues(string(op), "folder").Add(float64(len(res.FolderIDs)))
	nodesTouched.WithLabelValues(string(op), "file").Add(float64(res.Files))
	e.logger.Debug("cascade applied",
		"operation", op,
		"folder_id", folderID,
		"folders", len(res.FolderIDs),
		"files", res.Files,
	)
	return res, nil
}

// walk loads the owner's hierarchy once, then writes each folder in
// parent-first order followed by the files it directly contains.
func walk(ctx context.Context, q database.Querier, op Operation, ownerID uuid.UUID, folderID string, stamp *time.Time) (*Result, error) {
	links, err := q.ListFolderLinks(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load hierarchy: %w", err)
	}

	ids := tree.NewArena(links).Subtree(folderID)
	if ids == nil {
		return nil, domain.NotFound("folder not found")
	}

	res := &Result{FolderIDs: ids}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := q.SetFolderTrashed(ctx, id, ownerID, stamp); err != nil {
			return nil, fmt.Errorf("%s folder %s: %w", op, id, err)
		}
		n, err := q.SetFolderFilesTrashed(ctx, id, ownerID, stamp)
		if err != nil {
			return nil, fmt.Errorf("%s files in folder %s: %w", op, id, err)
		}
		res.Files += n
	}
	return res, nil
}
