package pagination_test

import (
	"testing"

	"elastic-views/internal/common/pagination"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	config := pagination.DefaultConfig()

	if config.PageParam != "p" {
		t.Errorf("DefaultConfig() PageParam = %q, want \"p\"", config.PageParam)
	}
	if config.PageSize != 25 {
		t.Errorf("DefaultConfig() PageSize = %d, want 25", config.PageSize)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("with all env vars set", func(t *testing.T) {
		t.Setenv("PAGINATION_PAGE_PARAM", "page")
		t.Setenv("PAGINATION_PAGE_SIZE", "30")

		config := pagination.LoadFromEnv()

		if config.PageParam != "page" {
			t.Errorf("LoadFromEnv() PageParam = %q, want \"page\"", config.PageParam)
		}
		if config.PageSize != 30 {
			t.Errorf("LoadFromEnv() PageSize = %d, want 30", config.PageSize)
		}
	})

	t.Run("with no env vars (fallback to defaults)", func(t *testing.T) {
		t.Setenv("PAGINATION_PAGE_PARAM", "")
		t.Setenv("PAGINATION_PAGE_SIZE", "")

		config := pagination.LoadFromEnv()

		if config != pagination.DefaultConfig() {
			t.Errorf("LoadFromEnv() = %+v, want %+v", config, pagination.DefaultConfig())
		}
	})

	t.Run("with invalid env vars (fallback to defaults)", func(t *testing.T) {
		t.Setenv("PAGINATION_PAGE_SIZE", "abc")

		config := pagination.LoadFromEnv()

		if config.PageSize != 25 {
			t.Errorf("LoadFromEnv() PageSize = %d, want 25 (default on invalid)", config.PageSize)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  pagination.Config
		wantErr bool
	}{
		{name: "valid", config: pagination.Config{PageParam: "p", PageSize: 50}},
		{name: "empty param", config: pagination.Config{PageParam: "", PageSize: 50}, wantErr: true},
		{name: "zero size", config: pagination.Config{PageParam: "p", PageSize: 0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
