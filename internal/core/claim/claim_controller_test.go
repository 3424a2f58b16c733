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

package claim_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/minimaply/minimaply/internal/core/audit"
	"github.com/minimaply/minimaply/internal/core/claim"
	"github.com/minimaply/minimaply/internal/database/models"
	"github.com/minimaply/minimaply/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func setupClaimController(f claimFixture, req *http.Request) (*claim.HTTPController, echo.Context, *httptest.ResponseRecorder) {
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	sut := claim.NewHTTPController(claim.NewService(f.claims, f.events, f.providers, f.profiles, audit.NewRecorder(f.auditLogs)))

	e := echo.New()
	rec := httptest.NewRecorder()

	return sut, e.NewContext(req, rec), rec
}

func TestCreateClaimWithoutSession(t *testing.T) {
	f := newClaimFixture()
	sut, c, _ := setupClaimController(f, httptest.NewRequest(echo.POST, "/", testutils.ReaderFromAny(validRequest(f.event.ID))))

	if err := sut.Create(c); assert.Error(t, err) {
		assert.Equal(t, 401, err.(*echo.HTTPError).Code)
	}
}

func TestCreateClaim(t *testing.T) {
	f := newClaimFixture()
	userID := uuid.New()
	sut, c, rec := setupClaimController(f, httptest.NewRequest(echo.POST, "/", testutils.ReaderFromAny(validRequest(f.event.ID))))
	c.Set("session", testutils.NewSessionMock(userID.String()))

	err := sut.Create(c)

	assert.NoError(t, err)
	assert.Equal(t, 201, rec.Code)
	if assert.Len(t, f.claims.Claims, 1) {
		assert.Equal(t, userID, f.claims.Claims[0].UserID)
		assert.Equal(t, models.ClaimStatusPending, f.claims.Claims[0].Status)
	}
}

// a user id smuggled into the request body must never become the claim
// owner - the session identity always wins
func TestCreateClaimIgnoresBodyIdentity(t *testing.T) {
	f := newClaimFixture()
	sessionUserID := uuid.New()
	forgedUserID := uuid.New()

	body := map[string]any{
		"eventId":      f.event.ID.String(),
		"businessName": "Fremde Firma",
		"contactName":  "Impostor",
		"contactEmail": "impostor@example.com",
		"websiteUrl":   "https://example.com",
		"userId":       forgedUserID.String(),
	}

	sut, c, _ := setupClaimController(f, httptest.NewRequest(echo.POST, "/", testutils.ReaderFromAny(body)))
	c.Set("session", testutils.NewSessionMock(sessionUserID.String()))

	err := sut.Create(c)

	assert.NoError(t, err)
	if assert.Len(t, f.claims.Claims, 1) {
		assert.Equal(t, sessionUserID, f.claims.Claims[0].UserID)
		assert.NotEqual(t, forgedUserID, f.claims.Claims[0].UserID)
	}
}

func TestCreateClaimValidatesRequest(t *testing.T) {
	f := newClaimFixture()
	req := validRequest(f.event.ID)
	req.ContactEmail = "not-an-email"

	sut, c, _ := setupClaimController(f, httptest.NewRequest(echo.POST, "/", testutils.ReaderFromAny(req)))
	c.Set("session", testutils.NewSessionMock(uuid.New().String()))

	if err := sut.Create(c); assert.Error(t, err) {
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
	}
	assert.Empty(t, f.claims.Claims)
}

func TestCreateClaimWithoutEvidence(t *testing.T) {
	f := newClaimFixture()
	req := validRequest(f.event.ID)
	req.WebsiteURL = nil

	sut, c, _ := setupClaimController(f, httptest.NewRequest(echo.POST, "/", testutils.ReaderFromAny(req)))
	c.Set("session", testutils.NewSessionMock(uuid.New().String()))

	if err := sut.Create(c); assert.Error(t, err) {
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
	}
}

func TestResolveClaimWithInvalidID(t *testing.T) {
	f := newClaimFixture()
	sut, c, _ := setupClaimController(f, httptest.NewRequest(echo.PATCH, "/", testutils.ReaderFromAny(claim.ResolveClaimRequest{Status: "approved"})))
	c.Set("session", testutils.NewSessionMock(uuid.New().String()))
	c.SetParamNames("claimID")
	c.SetParamValues("not-a-uuid")

	if err := sut.Resolve(c); assert.Error(t, err) {
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
	}
}

func TestResolveClaimValidatesDecision(t *testing.T) {
	f := newClaimFixture()
	pending := seedPendingClaim(&f, uuid.New())

	sut, c, _ := setupClaimController(f, httptest.NewRequest(echo.PATCH, "/", testutils.ReaderFromAny(claim.ResolveClaimRequest{Status: "maybe"})))
	c.Set("session", testutils.NewSessionMock(uuid.New().String()))
	c.SetParamNames("claimID")
	c.SetParamValues(pending.ID.String())

	if err := sut.Resolve(c); assert.Error(t, err) {
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
	}

	stored, _ := f.claims.ReadWithEvent(pending.ID)
	assert.Equal(t, models.ClaimStatusPending, stored.Status)
}

func TestResolveUnknownClaimReturns404(t *testing.T) {
	f := newClaimFixture()
	sut, c, _ := setupClaimController(f, httptest.NewRequest(echo.PATCH, "/", testutils.ReaderFromAny(claim.ResolveClaimRequest{Status: "approved"})))
	c.Set("session", testutils.NewSessionMock(uuid.New().String()))
	c.SetParamNames("claimID")
	c.SetParamValues(uuid.New().String())

	if err := sut.Resolve(c); assert.Error(t, err) {
		assert.Equal(t, 404, err.(*echo.HTTPError).Code)
	}
}

func TestListClaimsDefaultsToPending(t *testing.T) {
	f := newClaimFixture()
	seedPendingClaim(&f, uuid.New())

	sut, c, rec := setupClaimController(f, httptest.NewRequest(echo.GET, "/", nil))

	err := sut.List(c)

	assert.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
}
