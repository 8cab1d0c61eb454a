package colbind

import (
	"reflect"
	"testing"
)

type Audit struct {
	CreatedBy string
}

type account struct {
	UserID  int
	Name    string
	Balance float64 `sql:"bal"`
	Audit
	secret  string //nolint:unused // must be skipped
	Ignored string `sql:"-"`
}

func TestPlanCaseInsensitiveMatching(t *testing.T) {
	for _, col := range []string{"UserId", "userid", "USERID"} {
		plan, err := For(reflect.TypeOf(account{}), []string{col})
		if err != nil {
			t.Fatal(err)
		}
		var row account
		if err := plan.Scan(reflect.ValueOf(&row).Elem(), []any{int64(7)}); err != nil {
			t.Fatal(err)
		}
		if row.UserID != 7 {
			t.Errorf("column %q: UserID = %d, want 7", col, row.UserID)
		}
	}
}

func TestPlanTagOverridesFieldName(t *testing.T) {
	plan, err := For(reflect.TypeOf(account{}), []string{"bal", "balance"})
	if err != nil {
		t.Fatal(err)
	}
	var row account
	if err := plan.Scan(reflect.ValueOf(&row).Elem(), []any{1.5, 9.9}); err != nil {
		t.Fatal(err)
	}
	// "bal" binds via the tag; "balance" no longer matches anything
	if row.Balance != 1.5 {
		t.Errorf("Balance = %v, want 1.5", row.Balance)
	}
}

func TestPlanIgnoresUnmatchedColumnsAndFields(t *testing.T) {
	plan, err := For(reflect.TypeOf(account{}), []string{"name", "no_such_column", "ignored", "secret"})
	if err != nil {
		t.Fatal(err)
	}
	var row account
	err = plan.Scan(reflect.ValueOf(&row).Elem(), []any{"alice", "dropped", "dropped", "dropped"})
	if err != nil {
		t.Fatal(err)
	}
	if row.Name != "alice" {
		t.Errorf("Name = %q, want alice", row.Name)
	}
	if row.Ignored != "" || row.secret != "" {
		t.Errorf("ignored fields were assigned: %+v", row)
	}
	if row.UserID != 0 {
		t.Errorf("unmatched field UserID = %d, want 0", row.UserID)
	}
}

func TestPlanEmbeddedFields(t *testing.T) {
	plan, err := For(reflect.TypeOf(account{}), []string{"createdby"})
	if err != nil {
		t.Fatal(err)
	}
	var row account
	if err := plan.Scan(reflect.ValueOf(&row).Elem(), []any{"admin"}); err != nil {
		t.Fatal(err)
	}
	if row.CreatedBy != "admin" {
		t.Errorf("CreatedBy = %q, want admin", row.CreatedBy)
	}
}

func TestPlanReusedAcrossRows(t *testing.T) {
	columns := []string{"userid", "name"}
	first, err := For(reflect.TypeOf(account{}), columns)
	if err != nil {
		t.Fatal(err)
	}
	second, err := For(reflect.TypeOf(account{}), columns)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("plan was not reused from the cache")
	}

	// same type, different column shape gets its own plan
	other, err := For(reflect.TypeOf(account{}), []string{"name"})
	if err != nil {
		t.Fatal(err)
	}
	if other == first {
		t.Error("distinct column shapes must not share a plan")
	}

	// column lists of the same length are still distinct keys
	swapped, err := For(reflect.TypeOf(account{}), []string{"name", "userid"})
	if err != nil {
		t.Fatal(err)
	}
	if swapped == first {
		t.Error("column lists of equal length must not share a plan")
	}
	var row account
	if err := swapped.Scan(reflect.ValueOf(&row).Elem(), []any{"alice", int64(3)}); err != nil {
		t.Fatal(err)
	}
	if row.Name != "alice" || row.UserID != 3 {
		t.Errorf("row = %+v, want Name=alice UserID=3", row)
	}
}

func TestPlanRequiresStruct(t *testing.T) {
	if _, err := For(reflect.TypeOf(0), []string{"n"}); err == nil {
		t.Error("want error for non-struct row type")
	}
}

func TestPlanCellCountMismatch(t *testing.T) {
	plan, err := For(reflect.TypeOf(account{}), []string{"name"})
	if err != nil {
		t.Fatal(err)
	}
	var row account
	if err := plan.Scan(reflect.ValueOf(&row).Elem(), []any{"a", "b"}); err == nil {
		t.Error("want error for cell count mismatch")
	}
}
