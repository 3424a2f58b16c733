// Copyright (C) 2023 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/minimaply/minimaply/cmd/minimaply/api"
	"github.com/minimaply/minimaply/internal/auth"
	"github.com/minimaply/minimaply/internal/database"
)

func initLogger() {
	loggingHandler := tint.NewHandler(os.Stdout, &tint.Options{
		AddSource: true,
		Level:     slog.LevelDebug,
	})
	logger := slog.New(loggingHandler)
	slog.SetDefault(logger)
}

func main() {
	initLogger()

	godotenv.Load() // nolint:errcheck

	ory := auth.GetOryAPIClient(os.Getenv("ORY_KRATOS"))

	port := os.Getenv("POSTGRES_PORT")
	if port == "" {
		port = "5432"
	}

	db, err := database.NewConnection(os.Getenv("POSTGRES_HOST"), os.Getenv("POSTGRES_USER"), os.Getenv("POSTGRES_PASSWORD"), os.Getenv("POSTGRES_DB"), port)
	if err != nil {
		slog.Error("failed to connect to database", "err", err)
		panic(err)
	}

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrations(db); err != nil {
			slog.Error("failed to run database migrations", "err", err)
			panic(err)
		}
	}

	api.Start(db, ory)
}
