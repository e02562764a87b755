package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jawadkoroth/Jobpilotai/internal/config"
	m "github.com/jawadkoroth/Jobpilotai/internal/model"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported test users and seeded rows
var (
	TestUser1 = m.User{
		ID:    uuid.MustParse("7c1d2a4e-5b8f-4c3d-9e2a-1f0b6d8c4a11"),
		Email: "alice@example.com",
		Role:  "authenticated",
	}
	TestUser2 = m.User{
		ID:    uuid.MustParse("3e9b6f10-2c4d-4a8e-b7f1-5d6c0a9e8b22"),
		Email: "bob@example.com",
		Role:  "authenticated",
	}

	TestResumeOld m.Resume
	TestResumeNew m.Resume
	TestApplied   m.Application
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	cfg := config.DBConfig{
		UseConnStr:    true,
		DBName:        dbName,
		ConnectionStr: fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(cfg)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts two résumés and one application for TestUser1.
func seedTestData(db *DBinstanceStruct) error {
	now := time.Now().UTC()

	TestResumeOld = m.Resume{
		UserID:      TestUser1.ID,
		Filename:    "old.pdf",
		URL:         "https://storage.example.com/resumes/old.pdf",
		TextContent: "Old resume text",
		CreatedAt:   now.Add(-48 * time.Hour),
	}
	TestResumeNew = m.Resume{
		UserID:      TestUser1.ID,
		Filename:    "new.pdf",
		URL:         "https://storage.example.com/resumes/new.pdf",
		TextContent: "New resume text",
		CreatedAt:   now.Add(-time.Hour),
	}
	if err := db.Create(&TestResumeOld).Error; err != nil {
		return err
	}
	if err := db.Create(&TestResumeNew).Error; err != nil {
		return err
	}

	TestApplied = m.Application{
		UserID:    TestUser1.ID,
		JobID:     "job3",
		ResumeURL: TestResumeNew.URL,
		Status:    m.ApplicationStatusApplied,
		AppliedAt: now.Add(-24 * time.Hour),
	}
	return db.Create(&TestApplied).Error
}
