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

package report_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/minimaply/minimaply/internal/core/audit"
	"github.com/minimaply/minimaply/internal/core/report"
	"github.com/minimaply/minimaply/internal/database/models"
	"github.com/minimaply/minimaply/internal/ratelimit"
	"github.com/minimaply/minimaply/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func setupReportController(f reportFixture, limiter ratelimit.Limiter, req *http.Request) (*report.HTTPController, echo.Context, *httptest.ResponseRecorder) {
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	sut := report.NewHTTPController(report.NewService(f.reports, f.events, limiter, audit.NewRecorder(f.auditLogs)))

	e := echo.New()
	rec := httptest.NewRecorder()

	return sut, e.NewContext(req, rec), rec
}

// reports do not require a session at all
func TestCreateReportWithoutSession(t *testing.T) {
	f := newReportFixture()
	sut, c, rec := setupReportController(f, ratelimit.NewFixedWindow(5, time.Hour), httptest.NewRequest(echo.POST, "/", testutils.ReaderFromAny(reportRequest(f.event.ID))))

	err := sut.Create(c)

	assert.NoError(t, err)
	assert.Equal(t, 201, rec.Code)
	if assert.Len(t, f.reports.Reports, 1) {
		assert.Nil(t, f.reports.Reports[0].ReporterID)
	}
}

func TestCreateReportAttachesSessionIdentity(t *testing.T) {
	f := newReportFixture()
	userID := uuid.New()
	sut, c, _ := setupReportController(f, ratelimit.NewFixedWindow(5, time.Hour), httptest.NewRequest(echo.POST, "/", testutils.ReaderFromAny(reportRequest(f.event.ID))))
	c.Set("session", testutils.NewSessionMock(userID.String()))

	err := sut.Create(c)

	assert.NoError(t, err)
	if assert.Len(t, f.reports.Reports, 1) {
		assert.Equal(t, userID, *f.reports.Reports[0].ReporterID)
	}
}

func TestCreateReportValidatesRequest(t *testing.T) {
	f := newReportFixture()
	body := report.SubmitReportRequest{EventID: f.event.ID.String()}

	sut, c, _ := setupReportController(f, ratelimit.NewFixedWindow(5, time.Hour), httptest.NewRequest(echo.POST, "/", testutils.ReaderFromAny(body)))

	if err := sut.Create(c); assert.Error(t, err) {
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
	}
	assert.Empty(t, f.reports.Reports)
}

func TestCreateReportRateLimited(t *testing.T) {
	f := newReportFixture()
	limiter := ratelimit.NewFixedWindow(0, time.Hour)

	sut, c, _ := setupReportController(f, limiter, httptest.NewRequest(echo.POST, "/", testutils.ReaderFromAny(reportRequest(f.event.ID))))

	if err := sut.Create(c); assert.Error(t, err) {
		assert.Equal(t, 429, err.(*echo.HTTPError).Code)
	}
}

// an old client may still send "resolved" - it lands as action_taken
func TestResolveReportAcceptsLegacyResolvedStatus(t *testing.T) {
	f := newReportFixture()
	open := seedOpenReport(&f, "203.0.113.7")

	body := report.ResolveReportRequest{Status: "resolved"}
	sut, c, rec := setupReportController(f, ratelimit.NewFixedWindow(5, time.Hour), httptest.NewRequest(echo.PATCH, "/", testutils.ReaderFromAny(body)))
	c.Set("session", testutils.NewSessionMock(uuid.New().String()))
	c.SetParamNames("reportID")
	c.SetParamValues(open.ID.String())

	err := sut.Resolve(c)

	assert.NoError(t, err)
	assert.Equal(t, 200, rec.Code)

	stored, _ := f.reports.ReadWithEvent(open.ID)
	assert.Equal(t, models.ReportStatusActionTaken, stored.Status)
}

func TestResolveReportRejectsUnknownStatus(t *testing.T) {
	f := newReportFixture()
	open := seedOpenReport(&f, "203.0.113.7")

	body := map[string]any{"status": "escalated"}
	sut, c, _ := setupReportController(f, ratelimit.NewFixedWindow(5, time.Hour), httptest.NewRequest(echo.PATCH, "/", testutils.ReaderFromAny(body)))
	c.Set("session", testutils.NewSessionMock(uuid.New().String()))
	c.SetParamNames("reportID")
	c.SetParamValues(open.ID.String())

	if err := sut.Resolve(c); assert.Error(t, err) {
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
	}

	stored, _ := f.reports.ReadWithEvent(open.ID)
	assert.Equal(t, models.ReportStatusOpen, stored.Status)
}

func TestResolveUnknownReportReturns404(t *testing.T) {
	f := newReportFixture()
	sut, c, _ := setupReportController(f, ratelimit.NewFixedWindow(5, time.Hour), httptest.NewRequest(echo.PATCH, "/", testutils.ReaderFromAny(report.ResolveReportRequest{Status: "reviewed"})))
	c.Set("session", testutils.NewSessionMock(uuid.New().String()))
	c.SetParamNames("reportID")
	c.SetParamValues(uuid.New().String())

	if err := sut.Resolve(c); assert.Error(t, err) {
		assert.Equal(t, 404, err.(*echo.HTTPError).Code)
	}
}

func TestListReportsDefaultsToOpen(t *testing.T) {
	f := newReportFixture()
	seedOpenReport(&f, "203.0.113.7")

	sut, c, rec := setupReportController(f, ratelimit.NewFixedWindow(5, time.Hour), httptest.NewRequest(echo.GET, "/", nil))

	err := sut.List(c)

	assert.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"open"`)
}
