package config

import (
	"testing"
)

func TestSearchOrDefault(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
		want SearchConfig
	}{
		{
			name: "nil config",
			cfg:  nil,
			want: SearchConfig{NearbyDefaultRadius: 5, FavoritesDefaultRadius: 50, TopDefaultLimit: 10, TopMaxLimit: 50},
		},
		{
			name: "missing search section",
			cfg:  &Config{},
			want: SearchConfig{NearbyDefaultRadius: 5, FavoritesDefaultRadius: 50, TopDefaultLimit: 10, TopMaxLimit: 50},
		},
		{
			name: "partial overrides",
			cfg:  &Config{Search: &SearchConfig{NearbyDefaultRadius: 2.5, TopMaxLimit: 20}},
			want: SearchConfig{NearbyDefaultRadius: 2.5, FavoritesDefaultRadius: 50, TopDefaultLimit: 10, TopMaxLimit: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg.SearchOrDefault()
			if *got != tt.want {
				t.Fatalf("SearchOrDefault() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}
