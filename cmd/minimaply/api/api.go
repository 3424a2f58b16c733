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

package api

import (
	"log/slog"
	"os"
	"time"

	"github.com/minimaply/minimaply/internal/accesscontrol"
	"github.com/minimaply/minimaply/internal/auth"
	"github.com/minimaply/minimaply/internal/core"
	"github.com/minimaply/minimaply/internal/core/audit"
	"github.com/minimaply/minimaply/internal/core/claim"
	"github.com/minimaply/minimaply/internal/core/event"
	"github.com/minimaply/minimaply/internal/core/report"
	"github.com/minimaply/minimaply/internal/database/repositories"
	"github.com/minimaply/minimaply/internal/echohttp"
	"github.com/minimaply/minimaply/internal/ratelimit"
	"github.com/ory/client-go"
)

// reports allowed per client IP within a single window
const reportRateLimit = 5

// Start wires the repositories, services and controllers together and
// blocks serving the API.
func Start(db core.DB, oryApiClient *client.APIClient) {
	// create all repositories
	claimRepository := repositories.NewClaimRepository(db)
	reportRepository := repositories.NewReportRepository(db)
	eventRepository := repositories.NewEventRepository(db)
	providerRepository := repositories.NewProviderRepository(db)
	profileRepository := repositories.NewProfileRepository(db)
	auditLogRepository := repositories.NewAuditLogRepository(db)

	auditRecorder := audit.NewRecorder(auditLogRepository)
	roleAuthority := accesscontrol.NewProfileRoleAuthority(profileRepository)

	// create all services
	claimService := claim.NewService(claimRepository, eventRepository, providerRepository, profileRepository, auditRecorder)
	reportService := report.NewService(reportRepository, eventRepository, ratelimit.NewFixedWindow(reportRateLimit, time.Hour), auditRecorder)

	// create all controllers
	claimController := claim.NewHTTPController(claimService)
	reportController := report.NewHTTPController(reportService)
	eventController := event.NewHTTPController(eventRepository)
	auditController := audit.NewHTTPController(auditLogRepository)

	server := echohttp.Server()

	apiV1Router := server.Group("/api/v1")
	// apply the health route without any session middleware
	apiV1Router.GET("/health", func(c core.Context) error {
		return c.String(200, "ok")
	})

	sessionMiddleware := auth.SessionMiddleware(oryApiClient)

	apiV1Router.GET("/whoami", func(c core.Context) error {
		return c.JSON(200, map[string]string{
			"userId": core.GetSession(c).GetUserID(),
		})
	}, sessionMiddleware, core.SessionRequiredMiddleware())

	// public read model
	apiV1Router.GET("/events", eventController.List)
	apiV1Router.GET("/events/:slug", eventController.Read)

	// claims always need a signed in user
	apiV1Router.POST("/claims", claimController.Create, sessionMiddleware, core.SessionRequiredMiddleware())

	// reports work anonymously - the session is attached when present
	apiV1Router.POST("/reports", reportController.Create, sessionMiddleware)

	adminRouter := apiV1Router.Group("/admin", sessionMiddleware, core.SessionRequiredMiddleware(), core.AccessControlMiddleware(roleAuthority, accesscontrol.RoleAdmin))

	adminRouter.GET("/claims", claimController.List)
	adminRouter.PATCH("/claims/:claimID", claimController.Resolve)
	adminRouter.GET("/reports", reportController.List)
	adminRouter.PATCH("/reports/:reportID", reportController.Resolve)
	adminRouter.GET("/audit-logs", auditController.List)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	slog.Error("server stopped", "err", server.Start(":"+port))
}
