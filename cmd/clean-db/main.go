// Command-line tool to clean the database by dropping the JobPilot tables.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/jawadkoroth/Jobpilotai/internal/config"
	"github.com/jawadkoroth/Jobpilotai/internal/database"
)

var tables = []string{"applications", "resumes", "stored_objects"}

func main() {
	fmt.Printf("⚠️ WARNING: This command will DROP the tables %s of your database.\n", strings.Join(tables, ", "))
	fmt.Println("This action is irreversible. Do you want to continue? (yes/no): ")

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
	input = strings.TrimSpace(strings.ToLower(input))

	if input != "yes" {
		fmt.Println("Operation cancelled.")
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.Fatalf("Database failed to connect: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	if err := dropTables(db); err != nil {
		log.Fatal(err)
	}

	fmt.Println("✅ All tables dropped successfully.")
}

func dropTables(db *gorm.DB) error {
	for _, table := range tables {
		if err := db.Exec("DROP TABLE IF EXISTS " + pq.QuoteIdentifier(table) + " CASCADE").Error; err != nil {
			return fmt.Errorf("failed to drop %s: %w", table, err)
		}
		fmt.Printf("Dropped %s\n", table)
	}
	return nil
}
