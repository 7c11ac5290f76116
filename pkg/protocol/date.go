// Copyright (C) 2025 Signet Project
//
// This file is part of signet-go.
//
// signet-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// signet-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with signet-go.  If not, see <https://www.gnu.org/licenses/>.

package protocol

import "time"

// DateFormat is the layout of the date string used in the signing
// string, e.g. "Thu Jan 1 00:00:00 1970 GMT". The day of month is not
// zero padded.
const DateFormat = "Mon Jan 2 15:04:05 2006 MST"

// gmt pins rendering to a zero-offset zone whose abbreviation is GMT,
// which is what other implementations of the scheme emit. time.UTC
// would render the token as UTC instead.
var gmt = time.FixedZone("GMT", 0)

// Now returns the current instant as a protocol date string.
func Now() string {
	return FormatTime(time.Now())
}

// FormatTime renders t as a protocol date string in GMT, regardless of
// the location attached to t or the host timezone.
func FormatTime(t time.Time) string {
	return t.In(gmt).Format(DateFormat)
}
