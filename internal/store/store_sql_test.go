package store_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mind-engage/reductionlab/internal/curve"
	"github.com/mind-engage/reductionlab/internal/db"
	"github.com/mind-engage/reductionlab/internal/store"
)

func openTestStore(t *testing.T) *store.SQLStore {
	t.Helper()
	ctx := context.Background()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	dbh, err := db.Open(ctx, db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("db.Open: %v", err)
	}
	t.Cleanup(func() { _ = dbh.Close() })
	return store.NewSQLStore(dbh)
}

func TestSaveAndLoadCurve(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	c := curve.MustSample(10, 20)

	id, err := s.SaveCurve(ctx, c, 10, 20)
	if err != nil {
		t.Fatalf("SaveCurve: %v", err)
	}
	got, sum, err := s.LoadCurve(ctx, id)
	if err != nil {
		t.Fatalf("LoadCurve: %v", err)
	}
	if sum.Points != 201 || sum.StepsPerUnit != 10 || sum.XMax != 20 {
		t.Errorf("summary = %+v", sum)
	}
	if got.Len() != c.Len() {
		t.Fatalf("len = %d, want %d", got.Len(), c.Len())
	}
	for i := 0; i < c.Len(); i++ {
		if got.At(i) != c.At(i) {
			t.Fatalf("sample %d = %+v, want %+v", i, got.At(i), c.At(i))
		}
	}
	if p := got.Nearest(5.03); p.X != 5 {
		t.Errorf("loaded curve Nearest(5.03) = %+v", p)
	}
}

func TestSaveLargeCurveInBatches(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	c := curve.MustSample(100, 20) // 2001 samples, several insert batches

	id, err := s.SaveCurve(ctx, c, 100, 20)
	if err != nil {
		t.Fatalf("SaveCurve: %v", err)
	}
	got, _, err := s.LoadCurve(ctx, id)
	if err != nil {
		t.Fatalf("LoadCurve: %v", err)
	}
	if got.Len() != 2001 || got.At(2000).X != 20 {
		t.Errorf("loaded len=%d last=%+v", got.Len(), got.At(got.Len()-1))
	}
}

func TestLoadMissingCurve(t *testing.T) {
	s := openTestStore(t)
	if _, _, err := s.LoadCurve(context.Background(), "nope"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListCurves(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	empty, err := s.ListCurves(ctx, 0)
	if err != nil || len(empty) != 0 {
		t.Fatalf("empty list = %v, %v", empty, err)
	}
	for _, steps := range []int{2, 4, 8} {
		if _, err := s.SaveCurve(ctx, curve.MustSample(steps, 5), steps, 5); err != nil {
			t.Fatal(err)
		}
	}
	list, err := s.ListCurves(ctx, 2)
	if err != nil {
		t.Fatalf("ListCurves: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2 (limit)", len(list))
	}
	all, _ := s.ListCurves(ctx, 10)
	if len(all) != 3 {
		t.Errorf("len = %d, want 3", len(all))
	}
}
