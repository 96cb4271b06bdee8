package main

import (
	"log"

	"github.com/edustack/school-fees-api/app"
	"github.com/edustack/school-fees-api/config"
)

// @title School Fees Backend API
// @version 0.1
// @description Fee templates, assignments, payment ledger and reminders for the school back office.
// @license.name MIT
// @host localhost:5000
// @BasePath /
func main() {
	if err := config.LoadENV(); err != nil {
		log.Printf("could not load .env: %v", err)
	}
	if err := app.SetupAndRunApp(); err != nil {
		panic(err)
	}
}
