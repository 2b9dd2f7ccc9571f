package migrations

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

type fakeExecer struct {
	statements []string
	failOn     string
}

func (f *fakeExecer) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	if f.failOn != "" && strings.Contains(sql, f.failOn) {
		return pgconn.CommandTag{}, errors.New("exec failed")
	}
	f.statements = append(f.statements, sql)
	return pgconn.CommandTag{}, nil
}

func TestApplyMigrationRecordsVersionThroughSameExecutor(t *testing.T) {
	exec := &fakeExecer{}

	err := applyMigration(context.Background(), exec, "CREATE TABLE events (id BIGSERIAL);", "001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(exec.statements) != 2 {
		t.Fatalf("expected DDL and version insert on one executor, got %d statements", len(exec.statements))
	}
	if !strings.Contains(exec.statements[1], "INSERT INTO schema_migrations") {
		t.Errorf("expected version insert after the DDL, got %q", exec.statements[1])
	}
}

func TestApplyMigrationFailedDDLSkipsVersionRecord(t *testing.T) {
	exec := &fakeExecer{failOn: "CREATE TABLE"}

	err := applyMigration(context.Background(), exec, "CREATE TABLE events (id BIGSERIAL);", "001")
	if err == nil {
		t.Fatal("expected the DDL failure to surface")
	}

	for _, sql := range exec.statements {
		if strings.Contains(sql, "schema_migrations") {
			t.Errorf("version must not be recorded when the DDL fails, got %q", sql)
		}
	}
}
