package querypostgresql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	errs "alumni-connect-workers/internal/common/errors"
	"alumni-connect-workers/internal/common/logger"
	"alumni-connect-workers/internal/common/resilience"
	"alumni-connect-workers/internal/models"
	"alumni-connect-workers/internal/store"
)

// ==========================
// Test Helper Functions
// ==========================

var profileColumns = []string{"id", "name", "role", "branch", "headline", "bio", "skills", "year_of_passing"}

func createTestConfig() *Config {
	return &Config{
		Timeout: 5 * time.Second,
	}
}

func createTestLogger(t *testing.T) logger.Logger {
	return logger.NewZapAdapter(zaptest.NewLogger(t))
}

func setupHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := createTestLogger(t)
	return NewHandler(createTestConfig(), store.NewProfileStore(db, nil, log), log), mock
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_Success(t *testing.T) {
	tests := []struct {
		name           string
		input          *Input
		mockQuery      func(mock sqlmock.Sqlmock)
		validateOutput func(t *testing.T, output *Output)
	}{
		{
			name: "profile",
			input: &Input{
				QueryType:  string(models.QueryTypeProfile),
				Parameters: map[string]interface{}{"userId": "u1"},
			},
			mockQuery: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM users WHERE id = \$1`).
					WithArgs("u1").
					WillReturnRows(sqlmock.NewRows(profileColumns).
						AddRow("u1", "Asha", "student", "CS", "Aspiring data engineer", "", `["Python"]`, 2026))
			},
			validateOutput: func(t *testing.T, output *Output) {
				assert.Equal(t, 1, output.RowCount)
				p := output.Data.(models.Profile)
				assert.Equal(t, "Asha", p.Name)
				assert.Equal(t, []string{"Python"}, p.Skills)
				assert.Equal(t, 2026, p.GraduationYear)
			},
		},
		{
			name: "candidate pool with limit",
			input: &Input{
				QueryType:  string(models.QueryTypeCandidatePool),
				Parameters: map[string]interface{}{"userId": "u1", "limit": float64(2)},
			},
			mockQuery: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM users WHERE id <> \$1 AND status = 'approved' ORDER BY id LIMIT \$2`).
					WithArgs("u1", 2).
					WillReturnRows(sqlmock.NewRows(profileColumns).
						AddRow("u2", "Ravi", "alumni", "CS", "", "", `[]`, 2015).
						AddRow("u3", "Mei", "student", "ECE", "", "", `[]`, 2027))
			},
			validateOutput: func(t *testing.T, output *Output) {
				assert.Equal(t, 2, output.RowCount)
				pool := output.Data.([]models.Profile)
				assert.Equal(t, "u2", pool[0].ID)
			},
		},
		{
			name: "connection ids",
			input: &Input{
				QueryType:  string(models.QueryTypeConnectionIDs),
				Parameters: map[string]interface{}{"userId": "u1"},
			},
			mockQuery: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM connections`).
					WithArgs("u1").
					WillReturnRows(sqlmock.NewRows([]string{"requester_id", "responder_id", "status"}).
						AddRow("u1", "u4", "accepted").
						AddRow("u9", "u1", "accepted"))
			},
			validateOutput: func(t *testing.T, output *Output) {
				assert.Equal(t, 2, output.RowCount)
				assert.Equal(t, []string{"u4", "u9"}, output.Data)
			},
		},
		{
			name: "activity counters",
			input: &Input{
				QueryType:  string(models.QueryTypeActivityCounters),
				Parameters: map[string]interface{}{"userId": "u1"},
			},
			mockQuery: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM posts WHERE author_id`).
					WithArgs("u1").
					WillReturnRows(sqlmock.NewRows([]string{"c", "p", "cm", "s", "e"}).AddRow(3, 1, 0, 2, 5))
			},
			validateOutput: func(t *testing.T, output *Output) {
				assert.Equal(t, models.ActivityCounters{Connections: 3, Posts: 1, SkillCount: 2, Endorsements: 5}, output.Data)
			},
		},
		{
			name:  "approved jobs",
			input: &Input{QueryType: string(models.QueryTypeApprovedJobs)},
			mockQuery: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM jobs WHERE status = 'approved'`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "title", "company", "location", "job_type", "branch", "skills"}).
						AddRow("j1", "SRE intern", "Acme", "Remote", "internship", "CS", `["Go","Linux"]`))
			},
			validateOutput: func(t *testing.T, output *Output) {
				jobs := output.Data.([]models.Job)
				require.Len(t, jobs, 1)
				assert.Equal(t, []string{"Go", "Linux"}, jobs[0].Skills)
			},
		},
		{
			name: "upcoming events after a given time",
			input: &Input{
				QueryType:  string(models.QueryTypeUpcomingEvents),
				Parameters: map[string]interface{}{"after": "2026-05-01T00:00:00Z"},
			},
			mockQuery: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM events WHERE status = 'approved' AND start_date > \$1`).
					WithArgs(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)).
					WillReturnRows(sqlmock.NewRows([]string{"id", "title", "category", "branch", "location", "start_date"}))
			},
			validateOutput: func(t *testing.T, output *Output) {
				assert.Equal(t, 0, output.RowCount)
				assert.Equal(t, []models.Event{}, output.Data)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mock := setupHandler(t)
			tt.mockQuery(mock)

			output, err := handler.Execute(context.Background(), tt.input)

			require.NoError(t, err)
			assert.GreaterOrEqual(t, output.QueryExecutionTime, int64(0))
			tt.validateOutput(t, output)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// ==========================
// Error Handling Tests
// ==========================

func TestHandler_Execute_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     *Input
		mockQuery func(mock sqlmock.Sqlmock)
		errorCode errs.ErrorCode
	}{
		{
			name:      "unknown query type",
			input:     &Input{QueryType: "mentor_directory"},
			mockQuery: func(sqlmock.Sqlmock) {},
			errorCode: errs.ErrCodeInvalidQueryType,
		},
		{
			name:      "missing userId",
			input:     &Input{QueryType: string(models.QueryTypeProfile)},
			mockQuery: func(sqlmock.Sqlmock) {},
			errorCode: errs.ErrCodeInvalidInput,
		},
		{
			name: "malformed timestamp",
			input: &Input{
				QueryType:  string(models.QueryTypeUpcomingEvents),
				Parameters: map[string]interface{}{"after": "yesterday"},
			},
			mockQuery: func(sqlmock.Sqlmock) {},
			errorCode: errs.ErrCodeInvalidInput,
		},
		{
			name: "profile not found",
			input: &Input{
				QueryType:  string(models.QueryTypeProfile),
				Parameters: map[string]interface{}{"userId": "u404"},
			},
			mockQuery: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM users`).WithArgs("u404").WillReturnRows(sqlmock.NewRows(profileColumns))
			},
			errorCode: errs.ErrCodeProfileNotFound,
		},
		{
			name:  "query failure",
			input: &Input{QueryType: string(models.QueryTypePopulation)},
			mockQuery: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM users WHERE status = 'approved'`).WillReturnError(errors.New("syntax error"))
			},
			errorCode: errs.ErrCodeQueryExecutionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mock := setupHandler(t)
			tt.mockQuery(mock)

			output, err := handler.Execute(context.Background(), tt.input)

			assert.Nil(t, output)
			require.Error(t, err)
			assert.True(t, errs.HasCode(err, tt.errorCode), err.Error())
		})
	}
}

func TestHandler_Execute_Timeout(t *testing.T) {
	handler, mock := setupHandler(t)
	mock.ExpectQuery(`FROM jobs`).
		WillDelayFor(200 * time.Millisecond).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := handler.Execute(ctx, &Input{QueryType: string(models.QueryTypeApprovedJobs)})

	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrCodeQueryTimeout), err.Error())
}

func TestHandler_Execute_OpenBreaker(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	log := createTestLogger(t)
	cfg := resilience.DefaultBreakerConfig("postgres-test")
	cfg.FailureThreshold = 1
	breaker := resilience.NewBreaker(cfg, log)
	handler := NewHandler(createTestConfig(), store.NewProfileStore(db, breaker, log), log)

	mock.ExpectQuery(`FROM jobs`).WillReturnError(errors.New("connection refused"))
	input := &Input{QueryType: string(models.QueryTypeApprovedJobs)}

	_, err = handler.Execute(context.Background(), input)
	assert.True(t, errs.HasCode(err, errs.ErrCodeQueryExecutionFailed))

	_, err = handler.Execute(context.Background(), input)
	assert.True(t, errs.HasCode(err, errs.ErrCodeDatabaseConnectionFailed), err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParseInput(t *testing.T) {
	input, err := parseInput(`{"queryType":"candidate_pool","parameters":{"userId":"u1","limit":25}}`)
	require.NoError(t, err)
	assert.Equal(t, "candidate_pool", input.QueryType)
	assert.Equal(t, float64(25), input.Parameters["limit"])

	_, err = parseInput(`{"queryType":"mentor_directory"}`)
	assert.True(t, errs.HasCode(err, errs.ErrCodeInvalidInput))
}

// ==========================
// Benchmarks
// ==========================

func BenchmarkHandler_Execute_Profile(b *testing.B) {
	db, mock, err := sqlmock.New()
	if err != nil {
		b.Fatal(err)
	}
	defer db.Close()

	zapLogger, _ := zap.NewProduction()
	log := logger.NewZapAdapter(zapLogger)
	handler := NewHandler(createTestConfig(), store.NewProfileStore(db, nil, log), log)
	input := &Input{
		QueryType:  string(models.QueryTypeProfile),
		Parameters: map[string]interface{}{"userId": "u1"},
	}

	for i := 0; i < b.N; i++ {
		mock.ExpectQuery(`FROM users WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows(profileColumns).
				AddRow("u1", "Asha", "student", "CS", "", "", `[]`, 2026))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = handler.Execute(context.Background(), input)
	}
}
