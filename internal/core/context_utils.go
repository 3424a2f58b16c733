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
package core

import (
	"net"
	"strings"

	"github.com/google/uuid"
)

type AuthSession interface {
	GetUserID() string
}

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

// GetSessionUserID returns the authenticated user's identity, or
// uuid.Nil and false when the request carries no valid session. This is
// the only place workflow code may take an actor identity from - request
// bodies are attacker controlled.
func GetSessionUserID(ctx Context) (uuid.UUID, bool) {
	session, ok := ctx.Get("session").(AuthSession)
	if !ok {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(session.GetUserID())
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

// GetClientIP extracts the caller address, preferring proxy headers.
func GetClientIP(ctx Context) string {
	if forwarded := ctx.Request().Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if realIP := ctx.Request().Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	if host, _, err := net.SplitHostPort(ctx.Request().RemoteAddr); err == nil {
		return host
	}
	return "unknown"
}

func SanitizeParam(param string) string {
	return strings.TrimSpace(param)
}
