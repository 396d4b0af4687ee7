package gateway

import "context"

// SettingsRepository stores the single merchant settings row. Get seeds
// and returns DefaultSettings when nothing has been saved yet.
type SettingsRepository interface {
	Get(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, s *Settings) error
}
