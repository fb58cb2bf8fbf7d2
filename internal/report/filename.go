package report

import (
	"fmt"
	"time"
)

// Filename builds the download name <base>_<YYYY-MM-DD>.<ext>. The date is taken in UTC.
func Filename(base string, at time.Time, ext string) string {
	return fmt.Sprintf("%s_%s.%s", base, at.UTC().Format(time.DateOnly), ext)
}
