package store

import (
	"context"
	"errors"
	"testing"
)

type fakeRowQuerier struct {
	scanVal int
	scanErr error
}

func (f *fakeRowQuerier) Exec(_ context.Context, _ string, _ ...any) (CommandTag, error) {
	return nil, nil
}

func (f *fakeRowQuerier) Query(_ context.Context, _ string, _ ...any) (Rows, error) {
	return nil, nil
}

func (f *fakeRowQuerier) QueryRow(_ context.Context, _ string, _ ...any) Row {
	return fakeRow{val: f.scanVal, err: f.scanErr}
}

type fakeRow struct {
	val int
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) > 0 {
		if p, ok := dest[0].(*int); ok {
			*p = r.val
		}
	}
	return nil
}

func TestScalar(t *testing.T) {
	q := &fakeRowQuerier{scanVal: 42}
	n, err := Scalar[int](context.Background(), q, "select count(*) from t")
	if err != nil {
		t.Fatalf("Scalar: %v", err)
	}
	if n != 42 {
		t.Fatalf("got %d want 42", n)
	}
}

func TestScalarScanError(t *testing.T) {
	q := &fakeRowQuerier{scanErr: errors.New("boom")}
	if _, err := Scalar[int](context.Background(), q, "select 1"); err == nil {
		t.Fatalf("expected scan error")
	}
}
