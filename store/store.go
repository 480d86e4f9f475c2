package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BaSui01/agentport/types"
	"github.com/BaSui01/agentport/workflow"
)

// WorkflowRecord is one stored workflow definition.
type WorkflowRecord struct {
	ID         string `gorm:"primaryKey"`
	Name       string `gorm:"index"`
	Definition []byte
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ExportRecord is one stored target document produced from a workflow.
type ExportRecord struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	WorkflowID string `gorm:"index"`
	Target     string `gorm:"index"`
	Document   []byte
	CreatedAt  time.Time
}

// Store is a local catalog of workflow definitions and their exports.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets a custom logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		s.logger = l.With(zap.String("component", "store"))
	}
}

// Open opens (or creates) the catalog at the given SQLite DSN and migrates
// its schema. Use ":memory:" for an ephemeral catalog.
func Open(dsn string, opts ...Option) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		return nil, types.WrapError(types.ErrStorage, "open workflow catalog", err)
	}
	if err := db.AutoMigrate(&WorkflowRecord{}, &ExportRecord{}); err != nil {
		return nil, types.WrapError(types.ErrStorage, "migrate workflow catalog", err)
	}

	s := &Store{db: db, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SaveWorkflow inserts or updates one workflow definition by id.
func (s *Store) SaveWorkflow(g *workflow.Graph) error {
	if g == nil {
		return types.NewError(types.ErrStorage, "workflow graph is nil")
	}
	def, err := json.Marshal(g)
	if err != nil {
		return types.WrapError(types.ErrSerialization, "marshal workflow definition", err)
	}

	rec := WorkflowRecord{ID: g.ID, Name: g.Name, Definition: def}
	if err := s.db.Save(&rec).Error; err != nil {
		return types.WrapError(types.ErrStorage, "save workflow", err)
	}
	s.logger.Debug("workflow saved", zap.String("workflow_id", g.ID))
	return nil
}

// GetWorkflow loads one workflow definition by id.
func (s *Store) GetWorkflow(id string) (*workflow.Graph, error) {
	var rec WorkflowRecord
	if err := s.db.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewError(types.ErrNotFound, fmt.Sprintf("workflow %q not found", id))
		}
		return nil, types.WrapError(types.ErrStorage, "load workflow", err)
	}

	var g workflow.Graph
	if err := json.Unmarshal(rec.Definition, &g); err != nil {
		return nil, types.WrapError(types.ErrSerialization, "unmarshal workflow definition", err)
	}
	return &g, nil
}

// ListWorkflows returns the ids and names of every stored workflow, newest
// first.
func (s *Store) ListWorkflows() ([]WorkflowRecord, error) {
	var recs []WorkflowRecord
	if err := s.db.Select("id", "name", "created_at", "updated_at").
		Order("updated_at desc").Find(&recs).Error; err != nil {
		return nil, types.WrapError(types.ErrStorage, "list workflows", err)
	}
	return recs, nil
}

// DeleteWorkflow removes one workflow and its stored exports.
func (s *Store) DeleteWorkflow(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&ExportRecord{}, "workflow_id = ?", id).Error; err != nil {
			return types.WrapError(types.ErrStorage, "delete workflow exports", err)
		}
		if err := tx.Delete(&WorkflowRecord{}, "id = ?", id).Error; err != nil {
			return types.WrapError(types.ErrStorage, "delete workflow", err)
		}
		return nil
	})
}

// SaveExport stores one target document produced from a workflow.
func (s *Store) SaveExport(workflowID, target string, document any) error {
	data, err := json.Marshal(document)
	if err != nil {
		return types.WrapError(types.ErrSerialization, "marshal export document", err)
	}
	rec := ExportRecord{WorkflowID: workflowID, Target: target, Document: data}
	if err := s.db.Create(&rec).Error; err != nil {
		return types.WrapError(types.ErrStorage, "save export", err)
	}
	return nil
}

// ExportsFor returns every stored export of a workflow, newest first.
func (s *Store) ExportsFor(workflowID string) ([]ExportRecord, error) {
	var recs []ExportRecord
	if err := s.db.Where("workflow_id = ?", workflowID).
		Order("created_at desc").Find(&recs).Error; err != nil {
		return nil, types.WrapError(types.ErrStorage, "list exports", err)
	}
	return recs, nil
}
