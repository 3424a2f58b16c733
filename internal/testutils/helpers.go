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
package testutils

import (
	"bytes"
	"encoding/json"
	"io"
)

// ReaderFromAny marshals the value to JSON for use as a request body.
func ReaderFromAny(v any) io.Reader {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return bytes.NewReader(b)
}

type SessionMock struct {
	userID string
}

func NewSessionMock(userID string) SessionMock {
	return SessionMock{userID: userID}
}

func (s SessionMock) GetUserID() string {
	return s.userID
}
