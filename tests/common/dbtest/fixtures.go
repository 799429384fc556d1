//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	sqlc "course-marketplace/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// PlatformAdminEmail is seeded by SeedReferenceData.
const PlatformAdminEmail = "admin@platform.test"

func InsertUser(t *testing.T, db DBLike, u sqlc.Users) uuid.UUID {
	t.Helper()

	owned := u.OwnedCourseIds
	if owned == nil {
		owned = []uuid.UUID{}
	}
	_, err := db.Exec(context.Background(),
		"INSERT INTO users (id, name, email, role, owned_course_ids) VALUES ($1, $2, $3, $4, $5)",
		u.ID, u.Name, u.Email, u.Role, owned)
	require.NoError(t, err)
	return u.ID
}

func InsertCourse(t *testing.T, db DBLike, c sqlc.Courses) uuid.UUID {
	t.Helper()

	structure := c.Structure
	if len(structure) == 0 {
		structure = []byte("{}")
	}
	_, err := db.Exec(context.Background(),
		"INSERT INTO courses (id, title, price, author_id, completion_policy, structure) VALUES ($1, $2, $3::numeric, $4, $5, $6)",
		c.ID, c.Title, c.Price.String(), c.AuthorID, c.CompletionPolicy, structure)
	require.NoError(t, err)
	return c.ID
}

func InsertTrack(t *testing.T, db DBLike, tr sqlc.Tracks) uuid.UUID {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO tracks (id, title, price, author_id, course_ids) VALUES ($1, $2, $3::numeric, $4, $5)",
		tr.ID, tr.Title, tr.Price.String(), tr.AuthorID, tr.CourseIds)
	require.NoError(t, err)
	return tr.ID
}

func InsertCoupon(t *testing.T, db DBLike, c sqlc.Coupons) string {
	t.Helper()

	usedBy := c.UsedBy
	if usedBy == nil {
		usedBy = []uuid.UUID{}
	}
	_, err := db.Exec(context.Background(),
		`INSERT INTO coupons (code, discount_percentage, valid_until, max_uses, max_uses_per_user, used_count, used_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.Code, c.DiscountPercentage, c.ValidUntil, c.MaxUses, c.MaxUsesPerUser, int32(len(usedBy)), usedBy)
	require.NoError(t, err)
	return c.Code
}

// OwnedCourses reads owned_course_ids straight from the table.
func OwnedCourses(t *testing.T, db DBLike, userID uuid.UUID) []uuid.UUID {
	t.Helper()

	var owned []uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT owned_course_ids FROM users WHERE id = $1", userID).Scan(&owned)
	require.NoError(t, err)
	return owned
}

// CountJobs counts outbox rows for a topic.
func CountJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)
	return n
}

// JobTopics lists outbox topics in enqueue order.
func JobTopics(t *testing.T, db DBLike) []string {
	t.Helper()

	rows, err := db.Query(context.Background(), "SELECT topic FROM notification_jobs ORDER BY created_at, id")
	require.NoError(t, err)
	defer rows.Close()

	var topics []string
	for rows.Next() {
		var topic string
		require.NoError(t, rows.Scan(&topic))
		topics = append(topics, topic)
	}
	require.NoError(t, rows.Err())
	return topics
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO users (id, name, email, role) VALUES
		    (gen_random_uuid(), 'Platform Admin', $1, 'admin')
		ON CONFLICT (email) DO NOTHING;
	`, PlatformAdminEmail)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
