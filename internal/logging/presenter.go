// Copyright (c) 2025 Tunestat
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
	"strings"

	apperrors "tunestat/cli/internal/errors"
)

// PresentError formats an error for user display. Kind-typed errors get a
// short human heading; raw engine errors are shown as-is.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch apperrors.KindOf(err) {
	case apperrors.BadDatabase:
		msg = msg + "\n   Check the path passed via --db, TUNESTAT_DB, or the config file."
	case apperrors.OpenFailed:
		msg = msg + "\n   The file may be locked by another process or not be a database."
	}
	if strings.TrimSpace(context) == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", context, msg)
}
