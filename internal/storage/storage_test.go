package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mind-engage/reductionlab/internal/curve"
)

func TestFSStorePutGet(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key, err := s.Put("a/b.txt", strings.NewReader("hello"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	rc, err := s.Get(key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer rc.Close()
	b, _ := io.ReadAll(rc)
	if string(b) != "hello" {
		t.Errorf("got %q", b)
	}
	u, err := s.URL(key)
	if err != nil || !strings.HasPrefix(u, "file://") || !strings.HasSuffix(u, "/a/b.txt") {
		t.Errorf("URL = %q, %v", u, err)
	}
}

func TestFSStoreKeysStayUnderBase(t *testing.T) {
	base := t.TempDir()
	s, _ := NewFSStore(base)
	if _, err := s.Put("", strings.NewReader("x")); err == nil {
		t.Error("empty key: want error")
	}
	if _, err := s.Put("../../escape.txt", strings.NewReader("x")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "escape.txt")); err != nil {
		t.Errorf("escaping key was not confined to base: %v", err)
	}
}

func TestCurveCSVRoundTrip(t *testing.T) {
	s, _ := NewFSStore(t.TempDir())
	c := curve.MustSample(10, 20)
	key, err := PutCurveCSV(s, "ref", c)
	if err != nil {
		t.Fatalf("PutCurveCSV: %v", err)
	}
	if key != "curves/ref.csv" {
		t.Errorf("key = %q", key)
	}
	rc, err := s.Get(key)
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	got, err := ReadCurveCSV(rc)
	if err != nil {
		t.Fatalf("ReadCurveCSV: %v", err)
	}
	if got.Len() != 201 {
		t.Fatalf("len = %d", got.Len())
	}
	for i := 0; i < c.Len(); i++ {
		if got.At(i) != c.At(i) {
			t.Fatalf("sample %d = %+v, want %+v", i, got.At(i), c.At(i))
		}
	}
}

func TestReadCurveCSVErrors(t *testing.T) {
	for _, in := range []string{"", "efficiency,reduction\nx,1\n", "efficiency,reduction\n1,0.5\n0,0\n"} {
		if _, err := ReadCurveCSV(strings.NewReader(in)); err == nil {
			t.Errorf("ReadCurveCSV(%q): want error", in)
		}
	}
}
