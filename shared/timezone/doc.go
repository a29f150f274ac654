// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Initialise once at start-up:
//     timezone.Init(cfg.App.Timezone)
//
//  2. Current time and calendar day in the app timezone:
//     now := timezone.Now()
//     today := timezone.Today()
//
//  3. Parsing request dates:
//     checkIn, err := timezone.ParseDate("2024-01-01")
//
//  4. Stay length:
//     nights := timezone.DaysBetween(checkIn, checkOut)
//
// Supported timezone formats:
// - Standard timezone names only: "UTC", "Asia/Jakarta", "America/New_York", "Europe/London"
//
// The timezone is configured via the APP_TIMEZONE environment variable. Until Init is called
// the package works in UTC.
package timezone
