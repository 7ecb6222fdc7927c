//go:build integration

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, name, email string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id",
		name, email).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestItem(t *testing.T, db DBLike, ownerID int64, name, description string, available bool, requestID *int64) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO items (name, description, available, owner_id, request_id) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		name, description, available, ownerID, requestID).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestBooking(t *testing.T, db DBLike, itemID, bookerID int64, start, end time.Time, status string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO bookings (start_date, end_date, item_id, booker_id, status) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		start, end, itemID, bookerID, status).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestRequest(t *testing.T, db DBLike, requesterID int64, description string, created time.Time) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO item_requests (description, requester_id, created) VALUES ($1, $2, $3) RETURNING id",
		description, requesterID, created).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestComment(t *testing.T, db DBLike, itemID, authorID int64, text string, created time.Time) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO comments (text, item_id, author_id, created) VALUES ($1, $2, $3, $4) RETURNING id",
		text, itemID, authorID, created).Scan(&id)
	require.NoError(t, err)

	return id
}
