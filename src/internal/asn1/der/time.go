// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package asn1der

import (
	"time"
)

var (
	// YYMMDDhhmm[ss](Z|±hhmm)
	utcLayouts = []string{"060102150405Z0700", "0601021504Z0700"}
	// YYYYMMDDhhmmss[.fff](Z|±hhmm); time.Parse accepts the fraction without
	// it being spelled out in the layout.
	generalizedLayouts = []string{"20060102150405Z0700"}
)

func parseTime(tag int, c []byte, at int) (time.Time, error) {
	layouts := generalizedLayouts
	if tag == TagUTCTime {
		layouts = utcLayouts
	}

	s := string(c)
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if tag == TagUTCTime && t.Year() >= 2050 {
			// two-digit years 50..99 belong to the 1900s
			t = t.AddDate(-100, 0, 0)
		}
		return t.UTC(), nil
	}

	name := "GeneralizedTime"
	if tag == TagUTCTime {
		name = "UTCTime"
	}
	return time.Time{}, unsupported(at, "%s %q", name, s)
}
