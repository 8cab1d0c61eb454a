package dbhelpers

import (
	"errors"
	"testing"
)

func TestWalkCursorPaging(t *testing.T) {
	tests := []struct {
		total   int
		skip    int
		take    int
		visited []int // expected row ordinals, 1-based
	}{
		{total: 4, skip: 0, take: 0, visited: []int{1, 2, 3, 4}},
		{total: 4, skip: 0, take: -1, visited: []int{1, 2, 3, 4}},
		{total: 4, skip: 2, take: 3, visited: []int{3, 4}},
		{total: 4, skip: 1, take: 2, visited: []int{2, 3}},
		{total: 4, skip: 4, take: 0, visited: nil},
		{total: 4, skip: 9, take: 2, visited: nil},
		{total: 0, skip: 0, take: 5, visited: nil},
		{total: 6, skip: 0, take: 6, visited: []int{1, 2, 3, 4, 5, 6}},
		{total: 3, skip: 0, take: 1, visited: []int{1}},
	}

	for _, tt := range tests {
		rows := make([][]any, tt.total)
		for i := range rows {
			rows[i] = []any{i + 1}
		}
		cur := &fakeCursor{columns: []string{"n"}, rows: rows}

		var visited []int
		err := WalkCursor(cur, Page{Skip: tt.skip, Take: tt.take}, func(cur Cursor) error {
			values, err := cur.Values()
			if err != nil {
				return err
			}
			visited = append(visited, values[0].(int))
			return nil
		})
		if err != nil {
			t.Errorf("total=%d skip=%d take=%d: %v", tt.total, tt.skip, tt.take, err)
			continue
		}
		if len(visited) != len(tt.visited) {
			t.Errorf("total=%d skip=%d take=%d: visited %v, want %v", tt.total, tt.skip, tt.take, visited, tt.visited)
			continue
		}
		for i := range visited {
			if visited[i] != tt.visited[i] {
				t.Errorf("total=%d skip=%d take=%d: visited %v, want %v", tt.total, tt.skip, tt.take, visited, tt.visited)
				break
			}
		}
	}
}

func TestWalkCursorNegativeSkip(t *testing.T) {
	cur := &fakeCursor{columns: []string{"n"}, rows: [][]any{{1}}}
	err := WalkCursor(cur, Page{Skip: -1}, func(Cursor) error { return nil })
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("want ErrInvalidArgument, got %v", err)
	}
}

func TestWalkCursorVisitError(t *testing.T) {
	cur := &fakeCursor{columns: []string{"n"}, rows: [][]any{{1}, {2}}}
	boom := errors.New("boom")
	var visits int
	err := WalkCursor(cur, Page{}, func(Cursor) error {
		visits++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("want visit error, got %v", err)
	}
	if visits != 1 {
		t.Errorf("visits = %d, want 1", visits)
	}
}
