package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/naborly/naborly/config"
	"github.com/naborly/naborly/routes"
	"github.com/naborly/naborly/store"
	"github.com/naborly/naborly/utils"
)

func main() {
	migrate := flag.Bool("migrate", false, "create the database, seed it and import the dataset files, then exit")
	flag.Parse()

	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	if *migrate {
		if err := runMigration(cfg); err != nil {
			utils.Sugar.Errorf("migration failed: %v", err)
			os.Exit(1)
		}
		return
	}

	st := store.New(cfg)
	defer st.Close()

	r := routes.SetupRouter(st)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}

// runMigration builds the database from scratch: schema, sample rows, then a
// replay of the dataset files. Safe to run against an existing database; the
// seed skips itself, the imports do not.
func runMigration(cfg config.AppConfig) error {
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return err
	}

	sql, err := store.OpenSQL(cfg.DatabasePath())
	if err != nil {
		return err
	}
	defer sql.Close()

	if err := sql.Migrate(); err != nil {
		return err
	}
	if err := sql.Seed(); err != nil {
		return err
	}

	complaints, err := sql.ImportComplaintsFromJSON(cfg.ComplaintsPath())
	if err != nil {
		return err
	}
	providers, vendors, err := sql.ImportServicesFromJSON(cfg.ListingsPath())
	if err != nil {
		return err
	}

	fmt.Printf("database ready at %s\n", cfg.DatabasePath())
	fmt.Printf("imported %d complaints, %d providers, %d vendors\n", complaints, providers, vendors)
	return nil
}
