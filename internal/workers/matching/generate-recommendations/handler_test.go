package generaterecommendations

import (
	"context"
	"errors"
	"testing"
	"time"

	errs "alumni-connect-workers/internal/common/errors"
	"alumni-connect-workers/internal/common/logger"
	"alumni-connect-workers/internal/matching"
	"alumni-connect-workers/internal/models"
	"alumni-connect-workers/internal/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	profileColumns    = []string{"id", "name", "role", "branch", "headline", "bio", "skills", "year_of_passing"}
	connectionColumns = []string{"requester_id", "responder_id", "status"}
	fixedNow          = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
)

func setupHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	mock.MatchExpectationsInOrder(false)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	log := logger.NewTestLogger(t)
	loader := store.NewLoader(
		store.NewProfileStore(db, nil, log),
		store.NewProfileCache(rdb, time.Minute, log),
	)
	h := NewHandler(&Config{Timeout: 5 * time.Second, PoolLimit: 20}, loader, log)
	h.now = func() time.Time { return fixedNow }
	return h, mock
}

func ids(ms []matching.MatchScore) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.CandidateID
	}
	return out
}

func requester() *models.Profile {
	return &models.Profile{ID: "u1", Role: models.RoleStudent, Branch: "CS", Skills: []string{"Python", "SQL"}}
}

func TestHandler_Execute_InlinePool(t *testing.T) {
	handler, mock := setupHandler(t)

	out, err := handler.Execute(context.Background(), &Input{
		Requester: requester(),
		Pool: []models.Profile{
			{ID: "u3", Role: models.RoleStudent, Branch: "ECE"},
			{ID: "u5", Role: models.RoleAlumni, Branch: "CS", Skills: []string{"Python", "SQL"}},
			{ID: "u2", Role: models.RoleAlumni, Branch: "CS", Skills: []string{"Python", "Java"}},
			{ID: "u4", Role: models.RoleAlumni},
		},
		ExcludeIDs: []string{"u5"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"u2", "u4", "u3"}, ids(out.ConnectWith))
	assert.Equal(t, []string{"u3"}, ids(out.SimilarProfiles))
	assert.Equal(t, []string{"u2", "u4"}, ids(out.Mentors))

	assert.Equal(t, []string{"u2", "u4", "u3"}, ids(out.View.TopMatches))
	assert.Equal(t, []string{"u2", "u4"}, ids(out.View.Mentors))
	assert.Equal(t, []string{"u3"}, ids(out.View.Peers))

	assert.NotEmpty(t, out.RecommendationID)
	assert.Equal(t, fixedNow, out.GeneratedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_LoadsPoolAndConnections(t *testing.T) {
	handler, mock := setupHandler(t)

	mock.ExpectQuery("FROM users WHERE id = \\$1").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(profileColumns).
			AddRow("u1", "Asha", "student", "CS", "", "", `["Python","SQL"]`, 2026))
	mock.ExpectQuery("FROM users WHERE id <> \\$1 AND status = 'approved'").
		WithArgs("u1", 20).
		WillReturnRows(sqlmock.NewRows(profileColumns).
			AddRow("u2", "Ravi", "alumni", "CS", "", "", `["Python","Java"]`, 2015).
			AddRow("u3", "Mei", "student", "ECE", "", "", `[]`, 2027))
	mock.ExpectQuery("FROM connections").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(connectionColumns).
			AddRow("u3", "u1", "accepted"))

	out, err := handler.Execute(context.Background(), &Input{UserID: "u1"})

	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, ids(out.ConnectWith))
	assert.Empty(t, out.SimilarProfiles)
	assert.NotNil(t, out.SimilarProfiles)
	assert.Equal(t, []string{"u2"}, ids(out.Mentors))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     *Input
		setupMock func(sqlmock.Sqlmock)
		errorCode errs.ErrorCode
	}{
		{
			name:      "no requester",
			input:     &Input{},
			setupMock: func(sqlmock.Sqlmock) {},
			errorCode: errs.ErrCodeInvalidInput,
		},
		{
			name: "pool entry without id",
			input: &Input{
				Requester:  requester(),
				Pool:       []models.Profile{{Role: models.RoleAlumni}},
				ExcludeIDs: []string{},
			},
			setupMock: func(sqlmock.Sqlmock) {},
			errorCode: errs.ErrCodeProfileInvalid,
		},
		{
			name:  "pool query fails",
			input: &Input{Requester: requester(), ExcludeIDs: []string{}},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM users WHERE id <> \\$1").
					WithArgs("u1", 20).
					WillReturnError(errors.New("pq: too many connections"))
			},
			errorCode: errs.ErrCodeCandidatePool,
		},
		{
			name:  "connection query fails",
			input: &Input{Requester: requester(), Pool: []models.Profile{}},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM connections").
					WithArgs("u1").
					WillReturnError(errors.New("pq: relation \"connections\" does not exist"))
			},
			errorCode: errs.ErrCodeQueryExecutionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mock := setupHandler(t)
			tt.setupMock(mock)

			_, err := handler.Execute(context.Background(), tt.input)

			require.Error(t, err)
			assert.True(t, errs.HasCode(err, tt.errorCode), err.Error())
		})
	}
}

func TestParseInput(t *testing.T) {
	input, err := parseInput(`{"userId":"u1","excludeIds":[]}`)
	require.NoError(t, err)
	assert.NotNil(t, input.ExcludeIDs)
	assert.Nil(t, input.Pool)

	_, err = parseInput(`{"excludeIds":["u2"]}`)
	assert.True(t, errs.HasCode(err, errs.ErrCodeInvalidInput))
}
