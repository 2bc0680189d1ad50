package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mind-engage/reductionlab/internal/curve"
)

// rows per INSERT; keeps every statement well under SQLite's bind limit
const insertBatch = 500

type sampleRow struct {
	CurveID    string  `db:"curve_id"`
	Idx        int     `db:"idx"`
	Efficiency float64 `db:"efficiency"`
	Reduction  float64 `db:"reduction"`
}

type SQLStore struct {
	db *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

// SaveCurve writes the curve and its samples in one transaction and returns
// the new curve id.
func (s *SQLStore) SaveCurve(ctx context.Context, c curve.Curve, stepsPerUnit, xMax int) (string, error) {
	id := uuid.NewString()
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, tx.Rebind(`INSERT INTO curves (id,steps_per_unit,x_max,points,created_at)
			VALUES (?,?,?,?,?)`),
			id, stepsPerUnit, xMax, c.Len(), time.Now().Unix()); err != nil {
			return fmt.Errorf("insert curve: %w", err)
		}
		rows := make([]sampleRow, 0, insertBatch)
		for i := 0; i < c.Len(); i++ {
			p := c.At(i)
			rows = append(rows, sampleRow{CurveID: id, Idx: i, Efficiency: p.X, Reduction: p.Y})
			if len(rows) == insertBatch || i == c.Len()-1 {
				if _, err := tx.NamedExecContext(ctx, `INSERT INTO curve_samples (curve_id,idx,efficiency,reduction)
					VALUES (:curve_id,:idx,:efficiency,:reduction)`, rows); err != nil {
					return fmt.Errorf("insert samples: %w", err)
				}
				rows = rows[:0]
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// LoadCurve reads a stored curve back, re-checking the ascending order.
func (s *SQLStore) LoadCurve(ctx context.Context, id string) (curve.Curve, CurveSummary, error) {
	var sum CurveSummary
	err := s.db.GetContext(ctx, &sum, s.db.Rebind(`SELECT id,steps_per_unit,x_max,points,created_at FROM curves WHERE id=?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return curve.Curve{}, CurveSummary{}, ErrNotFound
		}
		return curve.Curve{}, CurveSummary{}, err
	}
	var rows []sampleRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(`SELECT curve_id,idx,efficiency,reduction
		FROM curve_samples WHERE curve_id=? ORDER BY idx`), id); err != nil {
		return curve.Curve{}, CurveSummary{}, err
	}
	pts := make([]curve.Point, len(rows))
	for i, r := range rows {
		pts[i] = curve.Point{X: r.Efficiency, Y: r.Reduction}
	}
	c, err := curve.FromPoints(pts)
	if err != nil {
		return curve.Curve{}, CurveSummary{}, err
	}
	return c, sum, nil
}

// ListCurves returns the most recent curves first.
func (s *SQLStore) ListCurves(ctx context.Context, limit int) ([]CurveSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	out := []CurveSummary{}
	err := s.db.SelectContext(ctx, &out, s.db.Rebind(`SELECT id,steps_per_unit,x_max,points,created_at
		FROM curves ORDER BY created_at DESC, id LIMIT ?`), limit)
	return out, err
}

// withTx runs fn in a transaction, committing only when fn returns nil.
func (s *SQLStore) withTx(ctx context.Context, fn func(*sqlx.Tx) error) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if e := tx.Commit(); e != nil {
			err = fmt.Errorf("commit: %w", e)
		}
	}()
	err = fn(tx)
	return
}
