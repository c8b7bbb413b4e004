package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// SetupPostgresForIntegration provides a ready postgres DSN for the
// integration suite. It honours TEST_DB_DSN for CI setups with an external
// database and otherwise starts a throwaway container. The returned cleanup
// tears the container down.
func SetupPostgresForIntegration() (string, func()) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		waitForPostgres(dsn)
		return dsn, func() {}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "catalogue",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=catalogue sslmode=disable", host, port.Port())
	waitForPostgres(dsn)

	return dsn, func() {
		_ = pg.Terminate(ctx)
	}
}

func waitForPostgres(dsn string) {
	var err error
	for i := 0; i < 10; i++ {
		var db *sql.DB
		db, err = sql.Open("postgres", dsn)
		if err == nil {
			err = db.Ping()
			_ = db.Close()
			if err == nil {
				return
			}
		}
		time.Sleep(time.Second)
	}
	log.Fatalf("postgres not reachable: %v", err)
}
