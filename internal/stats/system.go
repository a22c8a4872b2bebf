// Package stats computes collection counts shown on the dashboard.
// Archived albums are reported separately and excluded from every other figure.
package stats

import "context"

// System reports collection statistics.
type System interface {
	Summary(ctx context.Context) (*Stats, error)
}
