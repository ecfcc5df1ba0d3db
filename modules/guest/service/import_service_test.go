package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsvp-manager/core/database"
	"rsvp-manager/modules/guest/repository"
)

// fakeDatabase accepts every insert so service-level flows can run without
// Postgres.
type fakeDatabase struct {
	inserts int
}

var _ database.IDatabase = (*fakeDatabase)(nil)

func (f *fakeDatabase) ExecContext(ctx context.Context, query string, args ...any) error {
	f.inserts++
	return nil
}

func (f *fakeDatabase) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return sql.ErrNoRows
}

func (f *fakeDatabase) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return nil
}

func (f *fakeDatabase) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return nil
}

func (f *fakeDatabase) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return nil, nil
}

func (f *fakeDatabase) NamedQueryContext(ctx context.Context, query string, arg any) (*sqlx.Rows, error) {
	return nil, nil
}

func (f *fakeDatabase) NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error) {
	return nil, nil
}

func (f *fakeDatabase) SQLx() *sqlx.DB { return nil }

func importSvc() *ImportService {
	return &ImportService{events: []string{"sangeet", "wedding"}}
}

func TestZipRowIsCaseInsensitive(t *testing.T) {
	row := zipRow(
		[]string{"Name", "PHONE", "Invited Events"},
		[]string{"Asha", "+911234567890", "wedding"},
	)

	assert.Equal(t, "Asha", row["name"])
	assert.Equal(t, "+911234567890", row["phone"])
	assert.Equal(t, "wedding", row["invited events"])
}

func TestZipRowShortRecord(t *testing.T) {
	row := zipRow([]string{"name", "phone", "email"}, []string{"Asha", "+91123"})

	assert.Equal(t, "Asha", row["name"])
	_, ok := row["email"]
	assert.False(t, ok)
}

func TestMapRowFullRow(t *testing.T) {
	req, reason := importSvc().mapRow(map[string]string{
		"name":           "Asha Patel",
		"phone":          " +911234567890 ",
		"email":          "asha@example.com",
		"side":           "Bride",
		"invitedevents":  "sangeet, wedding",
		"sangeet_guests": "3",
		"wedding_guests": "2",
	})
	require.Empty(t, reason)

	assert.Equal(t, "Asha Patel", req.Name)
	assert.Equal(t, "+911234567890", req.Phone)
	assert.Equal(t, "bride", req.Side)
	assert.Equal(t, []string{"sangeet", "wedding"}, req.InvitedEvents)
	assert.Equal(t, map[string]int{"sangeet": 3, "wedding": 2}, req.EventGuests)
}

func TestMapRowRequiresNameAndPhone(t *testing.T) {
	_, reason := importSvc().mapRow(map[string]string{"phone": "+91123"})
	assert.Equal(t, "missing required field: name", reason)

	_, reason = importSvc().mapRow(map[string]string{"name": "Asha", "phone": "  "})
	assert.Equal(t, "missing required field: phone", reason)
}

func TestMapRowRejectsUnknownSide(t *testing.T) {
	_, reason := importSvc().mapRow(map[string]string{
		"name":  "Asha",
		"phone": "+91123",
		"side":  "neutral",
	})
	assert.NotEmpty(t, reason)
}

func TestImportRejectedRowDoesNotStopLaterRows(t *testing.T) {
	db := &fakeDatabase{}
	svc := NewGuestService(repository.NewGuestRepository(db))
	imp := NewImportService(svc, []string{"sangeet", "wedding"})

	csvData := "Name,Phone,Side,InvitedEvents\n" +
		"Asha Patel,+911234567890,bride,\"sangeet, wedding\"\n" +
		",+910000000000,bride,wedding\n" +
		"Rohan Mehta,+919876543210,groom,wedding\n"

	resp, appErr := imp.Import(context.Background(), strings.NewReader(csvData))
	require.Nil(t, appErr)

	assert.Equal(t, 2, resp.Imported)
	assert.Equal(t, 2, db.inserts)
	require.Len(t, resp.Failed, 1)
	assert.Equal(t, 3, resp.Failed[0].Row)
	assert.Equal(t, "missing required field: name", resp.Failed[0].Reason)
}

func TestImportRequiresNameAndPhoneColumns(t *testing.T) {
	imp := NewImportService(NewGuestService(repository.NewGuestRepository(&fakeDatabase{})), []string{"wedding"})

	_, appErr := imp.Import(context.Background(), strings.NewReader("name,email\nAsha,asha@example.com\n"))
	require.NotNil(t, appErr)
}

func TestMapRowHeadcountFallsBackToOne(t *testing.T) {
	req, reason := importSvc().mapRow(map[string]string{
		"name":           "Asha",
		"phone":          "+91123",
		"invited_events": "wedding",
		"wedding_guests": "not-a-number",
	})
	require.Empty(t, reason)
	assert.Equal(t, map[string]int{"wedding": 1}, req.EventGuests)
}
