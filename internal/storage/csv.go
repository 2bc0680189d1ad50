package storage

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mind-engage/reductionlab/internal/curve"
)

// CurveKey is where a curve's CSV lives in a BlobStore.
func CurveKey(id string) string { return "curves/" + id + ".csv" }

// WriteCurveCSV writes "efficiency,reduction" rows with full float precision.
func WriteCurveCSV(w io.Writer, c curve.Curve) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"efficiency", "reduction"}); err != nil {
		return err
	}
	for i := 0; i < c.Len(); i++ {
		p := c.At(i)
		rec := []string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCurveCSV parses what WriteCurveCSV produced.
func ReadCurveCSV(r io.Reader) (curve.Curve, error) {
	recs, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return curve.Curve{}, err
	}
	if len(recs) == 0 {
		return curve.Curve{}, fmt.Errorf("csv: missing header")
	}
	pts := make([]curve.Point, 0, len(recs)-1)
	for i, rec := range recs[1:] {
		if len(rec) != 2 {
			return curve.Curve{}, fmt.Errorf("csv: row %d has %d fields", i+2, len(rec))
		}
		x, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return curve.Curve{}, fmt.Errorf("csv: row %d: %w", i+2, err)
		}
		y, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return curve.Curve{}, fmt.Errorf("csv: row %d: %w", i+2, err)
		}
		pts = append(pts, curve.Point{X: x, Y: y})
	}
	return curve.FromPoints(pts)
}

// PutCurveCSV stores c as CSV under CurveKey(id).
func PutCurveCSV(bs BlobStore, id string, c curve.Curve) (string, error) {
	var buf bytes.Buffer
	if err := WriteCurveCSV(&buf, c); err != nil {
		return "", err
	}
	return bs.Put(CurveKey(id), &buf)
}
